package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/gridnote/heatcurve/internal/engine"
)

// defaultSummaryWidth is used when the caller does not know the terminal width.
const defaultSummaryWidth = 64

// RenderScenarioSummary renders a boxed, styled summary of the three
// scenarios plus the derived savings figures. A width of 0 selects the
// default box width.
func RenderScenarioSummary(res engine.Result, width int) string {
	if width <= 0 {
		width = defaultSummaryWidth
	}

	var content strings.Builder

	content.WriteString(HeaderStyle.Render("ANNUAL COST SUMMARY"))
	content.WriteString("\n\n")

	writeCostLine(&content, "Baseline (gas heat)", res.Baseline, nil, nil)
	writeCostLine(&content, "All-electric", res.AllElectric,
		&res.AllElectricSavings, res.AllElectricPayback)
	if res.Hybrid != nil {
		writeCostLine(&content, "Hybrid dispatch", *res.Hybrid,
			res.HybridSavings, res.HybridPayback)
	} else {
		content.WriteString(LabelStyle.Render("Hybrid dispatch:      "))
		content.WriteString(InfoStyle.Render("n/a (seasonal mode, no COP table)"))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Delivery-charge savings:   "))
	content.WriteString(ValueStyle.Render(FormatDollars(res.DFCSavings)))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Gas heating alone:         "))
	content.WriteString(ValueStyle.Render(FormatDollars(res.GasHeatCost)))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Heat pump heating alone:   "))
	content.WriteString(ValueStyle.Render(FormatDollars(res.HeatPumpHeatCost)))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Fuel-switch savings:       "))
	content.WriteString(ValueStyle.Render(
		FormatDollars(engine.ClampNonNegative(res.FuelSwitchSavings))))

	return BoxStyle.Width(width).Render(content.String())
}

// writeCostLine appends one scenario line: cost, optional savings delta, and
// optional payback period.
func writeCostLine(b *strings.Builder, label string, cost float64, savings, payback *float64) {
	b.WriteString(LabelStyle.Render(fmt.Sprintf("%-22s", label+":")))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%12s", FormatDollars(cost))))
	if savings != nil {
		b.WriteString("  ")
		b.WriteString(RenderSavingsDelta(*savings))
	}
	if payback != nil {
		b.WriteString(LabelStyle.Render("  payback "))
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%.1f yr", *payback)))
	}
	b.WriteString("\n")
}

// RenderSavingsDelta renders a styled annual savings figure with a
// directional arrow: positive savings mean the bill goes down (green ↓),
// negative savings mean it goes up (orange ↑).
func RenderSavingsDelta(savings float64) string {
	rounded := math.Round(savings*centsMultiplier) / centsMultiplier

	var icon string
	var color lipgloss.Color
	switch {
	case rounded > 0:
		icon = IconArrowDown
		color = ColorOK
	case rounded < 0:
		icon = IconArrowUp
		color = ColorWarning
	default:
		icon = IconArrowRight
		color = ColorMuted
	}

	style := lipgloss.NewStyle().Foreground(color).Bold(true)
	return style.Render(fmt.Sprintf("%s %s", FormatDollars(math.Abs(rounded)), icon))
}

// RenderDispatchMatrix renders the per-bin hybrid dispatch table: each
// temperature bin's heat share, interpolated COP, per-unit costs under both
// fuels, and the fuel the dispatch chose.
func RenderDispatchMatrix(bins []engine.BinRow) string {
	columns := []table.Column{
		{Title: "Temp °F", Width: 8},
		{Title: "Share %", Width: 8},
		{Title: "COP", Width: 6},
		{Title: "HP $/MMBtu", Width: 11},
		{Title: "Gas $/MMBtu", Width: 12},
		{Title: "Cheaper", Width: 10},
	}

	rows := make([]table.Row, len(bins))
	for i, b := range bins {
		rows[i] = table.Row{
			fmt.Sprintf("%.0f", b.Temp),
			fmt.Sprintf("%.1f", b.HeatSharePct),
			fmt.Sprintf("%.2f", b.COP),
			FormatDollarsCents(b.HeatPumpCost),
			FormatDollarsCents(b.GasCost),
			b.Fuel,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(matrixStyles())
	return t.View()
}

// matrixStyles restyles the bubbles table to match the shared palette.
func matrixStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(ColorHeader).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true)
	s.Selected = lipgloss.NewStyle()
	return s
}

// RenderCrossoverLine renders the crossover result as a single line: the
// parity temperature when one exists, or the solver's descriptive note.
func RenderCrossoverLine(c engine.Crossover) string {
	if c.Temp != nil {
		return LabelStyle.Render("Cost parity at ") +
			ValueStyle.Render(fmt.Sprintf("%.1f°F", *c.Temp)) +
			LabelStyle.Render(" (heat pump cheaper above, gas cheaper below)")
	}
	return InfoStyle.Render(c.Note)
}

// SweepRow is one rendered point of a sensitivity sweep.
type SweepRow struct {
	Value              float64
	Baseline           float64
	AllElectric        float64
	Hybrid             *float64
	AllElectricSavings float64
}

// RenderSweepTable renders sweep results with the swept parameter name as
// the first column header.
func RenderSweepTable(param string, rows []SweepRow) string {
	columns := []table.Column{
		{Title: param, Width: max(len(param), 10)},
		{Title: "Baseline", Width: 10},
		{Title: "All-electric", Width: 13},
		{Title: "Hybrid", Width: 10},
		{Title: "Savings", Width: 10},
	}

	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		hybrid := "n/a"
		if r.Hybrid != nil {
			hybrid = FormatDollars(*r.Hybrid)
		}
		tableRows[i] = table.Row{
			fmt.Sprintf("%g", r.Value),
			FormatDollars(r.Baseline),
			FormatDollars(r.AllElectric),
			hybrid,
			FormatDollars(r.AllElectricSavings),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithHeight(len(tableRows)+1),
	)
	t.SetStyles(matrixStyles())
	return t.View()
}
