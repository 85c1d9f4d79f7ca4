package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/budget-doctor/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

var chartStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawForecastChart renders the projected period totals as a bar chart,
// followed by the days-to-threshold diagnosis.
func DrawForecastChart(accountID string, forecast model.ForecastResult) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 📈  BUDGET DOCTOR FORECAST"))
	fmt.Printf(" Account ID: %s\n", text.FgBlue.Sprint(accountID))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	if forecast.InsufficientHistory {
		fmt.Printf(" %s\n", text.FgHiYellow.Sprint("Not enough history to forecast growth. Check back after a couple of days."))
		return
	}

	bc := barchart.New(130, 20)
	indexedColors := assignRankedColors(forecast.Projections)

	for idx, projection := range forecast.Projections {
		data := barchart.BarData{
			Label: fmt.Sprintf("+%dd: %.2f", projection.PeriodOffset*model.ProjectionPeriodDays, projection.Amount),
			Values: []barchart.BarValue{
				{
					Value: projection.Amount,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[idx])),
				},
			},
		}

		bc.Push(data)
	}

	fmt.Println()

	bc.Draw()
	s := lipgloss.JoinHorizontal(lipgloss.Top,
		chartStyle.Render(bc.View()),
	)

	fmt.Println(s)

	fmt.Printf(" Daily growth rate: %s\n", text.FgHiWhite.Sprintf("%.4f USD/day", forecast.DailyGrowthRate))
	fmt.Printf(" Next 30 days: %s\n", text.FgHiWhite.Sprintf("%.2f USD", forecast.MonthlyProjection))
	fmt.Printf(" Warning limit: %s\n", describeThreshold(forecast.DaysToWarning))
	fmt.Printf(" Critical limit: %s\n", describeThreshold(forecast.DaysToCritical))
}

func describeThreshold(days model.DaysToThreshold) string {
	switch days.Outcome {
	case model.OutcomeReached:
		if days.Days <= 30 {
			return text.FgHiRed.Sprintf("crossed in ~%d days", days.Days)
		}
		return text.FgHiYellow.Sprintf("crossed in ~%d days", days.Days)
	case model.OutcomeAlreadyAtOrOver:
		return text.FgHiRed.Sprint("already at or over")
	case model.OutcomeNoGrowth:
		return text.FgHiGreen.Sprint("never at current growth")
	case model.OutcomeBeyondHorizon:
		return text.FgHiGreen.Sprint("more than 10 years out")
	default:
		return text.FgHiYellow.Sprint("not enough history")
	}
}

func assignRankedColors(projections []model.Projection) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	type amountWithIndex struct {
		index int
		value float64
	}

	amountsToSort := make([]amountWithIndex, len(projections))
	for i, projection := range projections {
		amountsToSort[i] = amountWithIndex{
			index: i,
			value: projection.Amount,
		}
	}

	sort.Slice(amountsToSort, func(i, j int) bool {
		return amountsToSort[i].value > amountsToSort[j].value
	})

	resultColors := make([]string, len(projections))
	for rank, sortedAmount := range amountsToSort {
		originalIndex := sortedAmount.index
		if rank < len(palette) {
			resultColors[originalIndex] = palette[rank]
		}
	}

	return resultColors
}
