package utils

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/budget-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var panelStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#F4D060")).
	Padding(0, 1)

// DrawSummaryTable renders the reconciled usage summary: a budget health
// panel followed by the per-service cost breakdown.
func DrawSummaryTable(summary *model.UsageSummary) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🩺  BUDGET DOCTOR DIAGNOSIS"))
	if summary.Account != nil {
		fmt.Printf(" %s: %s (%s)\n",
			strings.ToUpper(summary.Account.Provider),
			text.FgBlue.Sprint(summary.Account.AccountID),
			summary.Account.AccountName)
	}
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	drawBudgetPanel(summary)
	drawBreakdownTable(summary)

	if !summary.Reconciliation.Reconciled {
		fmt.Printf(" %s breakdown differs from reported total by %.4f (tolerance %.4f)\n",
			text.FgHiRed.Sprint("⚠"),
			summary.Reconciliation.Delta,
			summary.Reconciliation.Tolerance)
	}
	if summary.RejectedRecords > 0 {
		fmt.Printf(" %s %d malformed billing record(s) rejected\n",
			text.FgHiYellow.Sprint("⚠"), summary.RejectedRecords)
	}
}

func drawBudgetPanel(summary *model.UsageSummary) {
	stateColor := healthColor(summary.Status.State)

	lines := []string{
		fmt.Sprintf("State: %s", stateColor.Sprint(string(summary.Status.State))),
		fmt.Sprintf("Spend: %s", text.FgHiWhite.Sprintf("%.2f USD", summary.Observation.TotalAmount)),
		fmt.Sprintf("Utilization: %s of critical limit", stateColor.Sprintf("%.1f%%", summary.Status.UtilizationPercent)),
		fmt.Sprintf("Advice: %s", summary.Status.Recommendation),
	}

	fmt.Println(panelStyle.Render(strings.Join(lines, "\n")))
}

func drawBreakdownTable(summary *model.UsageSummary) {
	tw := table.Table{}
	tw.AppendHeader(table.Row{"Service", "Cost", "Pre-Tax", "Tax", "Usage", "Unit Cost"})

	items := make([]model.LineItem, len(summary.Observation.LineItems))
	copy(items, summary.Observation.LineItems)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Amount > items[j].Amount
	})

	for _, item := range items {
		tw.AppendRow(populateBreakdownRow(item))
	}

	tw.AppendFooter(table.Row{
		text.FgHiGreen.Sprint("Total"),
		text.FgHiGreen.Sprintf("%.2f USD", summary.Observation.TotalAmount),
		"", "", "", "",
	})

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	fmt.Println(tw.Render())
}

func populateBreakdownRow(item model.LineItem) table.Row {
	row := make(table.Row, 6)
	row[0] = text.FgGreen.Sprint(item.DisplayName)
	row[1] = text.FgYellow.Sprintf("%.2f", item.Amount)
	row[2] = ""
	row[3] = ""
	row[4] = ""
	row[5] = ""

	if item.HasTaxSplit() {
		row[2] = fmt.Sprintf("%.2f", *item.PreTaxAmount)
		row[3] = fmt.Sprintf("%.2f", item.TaxAmount)
	}
	if item.UsageQuantity != nil {
		row[4] = fmt.Sprintf("%.2f %s", *item.UsageQuantity, item.UsageUnit)
	}
	if unitCost, ok := item.UnitCost(); ok {
		row[5] = fmt.Sprintf("%.6f", unitCost)
	}

	return row
}

// DrawInstanceTable lists running compute instances alongside the diagnosis
func DrawInstanceTable(instances []model.InstanceUsage) {
	if len(instances) == 0 {
		return
	}

	tw := table.Table{}
	tw.AppendHeader(table.Row{"Instance ID", "Name", "Type", "State"})
	for _, instance := range instances {
		tw.AppendRow(table.Row{
			instance.ID,
			text.FgGreen.Sprint(instance.Name),
			instance.InstanceType,
			instance.State,
		})
	}
	tw.SetStyle(table.StyleRounded)
	fmt.Println(tw.Render())
}

func healthColor(state model.HealthState) text.Color {
	switch state {
	case model.StateCritical:
		return text.FgHiRed
	case model.StateWarning:
		return text.FgRed
	case model.StateCaution:
		return text.FgHiYellow
	default:
		return text.FgHiGreen
	}
}
