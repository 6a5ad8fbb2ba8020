// Package tui renders heatcurve results for terminals: styled scenario
// summaries and dispatch matrices used by both the CLI table output and the
// interactive bubbletea calculator.
package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Color palette shared by all views.
const (
	ColorHeader  = lipgloss.Color("39")  // blue
	ColorLabel   = lipgloss.Color("245") // gray
	ColorValue   = lipgloss.Color("252") // light gray
	ColorOK      = lipgloss.Color("42")  // green
	ColorWarning = lipgloss.Color("214") // orange
	ColorMuted   = lipgloss.Color("240") // dark gray
)

// Directional icons for savings deltas.
const (
	IconArrowUp    = "↑"
	IconArrowDown  = "↓"
	IconArrowRight = "→"
)

// centsMultiplier rounds dollar figures to cents for display.
const centsMultiplier = 100

// Shared styles.
//
//nolint:gochecknoglobals // Style palette is intentionally package-global
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	BoxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorHeader).
			Padding(0, 1)
)

// dollars is the currency printer; it inserts thousands separators so large
// annual figures stay readable.
//
//nolint:gochecknoglobals // message printers are safe for concurrent use
var dollars = message.NewPrinter(language.English)

// FormatDollars renders an annual dollar amount to the nearest dollar with
// thousands separators. Halves round away from zero, so $1,234.50 shows as
// $1,235 rather than the half-to-even result of %.0f alone.
func FormatDollars(v float64) string {
	return dollars.Sprintf("$%.0f", math.Round(v))
}

// FormatDollarsCents renders a per-unit dollar amount with cents precision.
func FormatDollarsCents(v float64) string {
	return dollars.Sprintf("$%.2f", v)
}
