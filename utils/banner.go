package utils

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
	"github.com/jedib0t/go-pretty/v6/text"
)

var activeSpinner *spinner.Spinner

func DrawBanner() {
	banner := figure.NewColorFigure("Budget Doctor", "standard", "cyan", true)
	banner.Print()
}

func StartSpinner() {
	activeSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	activeSpinner.Suffix = text.FgHiBlue.Sprint(" Checking your cloud spend...")
	activeSpinner.Start()
}

func StopSpinner() {
	if activeSpinner != nil {
		activeSpinner.Stop()
		activeSpinner = nil
	}
}
