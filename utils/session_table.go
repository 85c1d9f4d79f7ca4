package utils

import (
	"fmt"
	"sort"

	"github.com/elC0mpa/budget-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawSessionTable renders the session self-cost ledger rollup
func DrawSessionTable(session model.SessionSummary) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🧾  SESSION API COSTS"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	if session.CallCount == 0 {
		fmt.Printf(" %s\n", text.FgHiGreen.Sprint("No metered API calls made this session."))
		return
	}

	apis := make([]model.APIUsage, 0, len(session.PerAPI))
	for _, usage := range session.PerAPI {
		apis = append(apis, usage)
	}
	sort.Slice(apis, func(i, j int) bool {
		return apis[i].TotalCost > apis[j].TotalCost
	})

	tw := table.Table{}
	tw.AppendHeader(table.Row{"API", "Calls", "Input Tokens", "Output Tokens", "Cost"})

	for _, usage := range apis {
		inputTokens := ""
		outputTokens := ""
		if usage.InputTokens > 0 || usage.OutputTokens > 0 {
			inputTokens = fmt.Sprintf("%d", usage.InputTokens)
			outputTokens = fmt.Sprintf("%d", usage.OutputTokens)
		}
		tw.AppendRow(table.Row{
			text.FgGreen.Sprint(string(usage.API)),
			usage.CallCount,
			inputTokens,
			outputTokens,
			text.FgYellow.Sprintf("%.6f USD", usage.TotalCost),
		})
	}

	tw.AppendFooter(table.Row{
		text.FgHiGreen.Sprint("Total"),
		session.CallCount,
		"", "",
		text.FgHiGreen.Sprintf("%.6f USD", session.TotalCost),
	})

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	fmt.Println(tw.Render())
}
