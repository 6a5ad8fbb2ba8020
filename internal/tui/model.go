package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridnote/heatcurve/internal/config"
	"github.com/gridnote/heatcurve/internal/engine"
	"github.com/gridnote/heatcurve/internal/logging"
)

// State represents the current mode of the interactive calculator.
type State int

const (
	// StateBrowsing indicates the user is moving between fields.
	StateBrowsing State = iota
	// StateEditing indicates a field value is being typed.
	StateEditing
	// StateQuitting indicates the application is exiting.
	StateQuitting
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// fieldRow is one editable rate input in the field list.
type fieldRow struct {
	label  string
	get    func(*engine.RateInputs) float64
	set    func(*engine.RateInputs, float64)
	format string
}

// Model is the Bubble Tea model for the interactive calculator. Every
// committed edit triggers a full synchronous recompute of the scenario
// result; the engine is fast enough that no async machinery is needed.
type Model struct {
	ctx context.Context
	cfg *config.Config

	fields  []fieldRow
	focused int

	state      State
	editBuffer string

	result engine.Result

	width  int
	height int
}

// NewModel creates the calculator model seeded from a scenario file and
// computes the initial result.
func NewModel(ctx context.Context, cfg *config.Config) *Model {
	m := &Model{
		ctx:    ctx,
		cfg:    cfg,
		fields: rateFields(),
		state:  StateBrowsing,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.recompute()
	return m
}

// rateFields lists the editable inputs in display order.
func rateFields() []fieldRow {
	return []fieldRow{
		{"Non-heating kWh/yr", func(r *engine.RateInputs) float64 { return r.NonHeatingKWh },
			func(r *engine.RateInputs, v float64) { r.NonHeatingKWh = v }, "%.0f"},
		{"Supply ¢/kWh", func(r *engine.RateInputs) float64 { return r.SupplyCents },
			func(r *engine.RateInputs, v float64) { r.SupplyCents = v }, "%.3f"},
		{"Transmission ¢/kWh", func(r *engine.RateInputs) float64 { return r.TransmissionCents },
			func(r *engine.RateInputs, v float64) { r.TransmissionCents = v }, "%.3f"},
		{"Delivery (std) ¢/kWh", func(r *engine.RateInputs) float64 { return r.DeliveryNonHeatCents },
			func(r *engine.RateInputs, v float64) { r.DeliveryNonHeatCents = v }, "%.3f"},
		{"Delivery (elec heat) ¢/kWh", func(r *engine.RateInputs) float64 { return r.DeliveryElectricHeatCents },
			func(r *engine.RateInputs, v float64) { r.DeliveryElectricHeatCents = v }, "%.3f"},
		{"Gas supply $/therm", func(r *engine.RateInputs) float64 { return r.GasSupplyRate },
			func(r *engine.RateInputs, v float64) { r.GasSupplyRate = v }, "%.4f"},
		{"Gas delivery $/therm", func(r *engine.RateInputs) float64 { return r.GasDeliveryRate },
			func(r *engine.RateInputs, v float64) { r.GasDeliveryRate = v }, "%.4f"},
		{"Furnace AFUE", func(r *engine.RateInputs) float64 { return r.FurnaceAFUE },
			func(r *engine.RateInputs, v float64) { r.FurnaceAFUE = v }, "%.2f"},
		{"Heat load MMBtu/yr", func(r *engine.RateInputs) float64 { return r.HeatLoadMMBtu },
			func(r *engine.RateInputs, v float64) { r.HeatLoadMMBtu = v }, "%.1f"},
		{"Seasonal COP", func(r *engine.RateInputs) float64 { return r.SeasonalCOP },
			func(r *engine.RateInputs, v float64) { r.SeasonalCOP = v }, "%.2f"},
		{"Gross equipment cost $", func(r *engine.RateInputs) float64 { return r.GrossCost },
			func(r *engine.RateInputs, v float64) { r.GrossCost = v }, "%.0f"},
		{"Tax credits $", func(r *engine.RateInputs) float64 { return r.TaxCredits },
			func(r *engine.RateInputs, v float64) { r.TaxCredits = v }, "%.0f"},
	}
}

// recompute runs the engine against the current scenario snapshot.
func (m *Model) recompute() {
	m.result = engine.Compute(m.ctx, m.cfg.EngineInput())
	logging.FromContext(m.ctx).Debug().
		Str("component", "tui").
		Str("operation", "recompute").
		Float64("baseline", m.result.Baseline).
		Msg("scenario recomputed")
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.state == StateEditing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

// updateBrowsing handles navigation keys.
func (m *Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.state = StateQuitting
		return m, tea.Quit
	case "up", "k":
		if m.focused > 0 {
			m.focused--
		}
	case "down", "j":
		if m.focused < len(m.fields)-1 {
			m.focused++
		}
	case "enter":
		field := m.fields[m.focused]
		m.editBuffer = strconv.FormatFloat(field.get(&m.cfg.Rates), 'g', -1, 64)
		m.state = StateEditing
	case "m":
		if m.cfg.Mode == config.ModeTable {
			m.cfg.Mode = config.ModeSeasonal
		} else {
			m.cfg.Mode = config.ModeTable
		}
		m.recompute()
	case "r":
		m.cfg.Rates = engine.DefaultRateInputs()
		m.recompute()
	}
	return m, nil
}

// updateEditing handles keys while a field value is being typed. Committing
// an unparseable buffer keeps the previous value; the calculator degrades
// rather than erroring, like the engine it fronts.
func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateBrowsing
		m.editBuffer = ""
	case "enter":
		if v, err := strconv.ParseFloat(strings.TrimSpace(m.editBuffer), 64); err == nil {
			m.fields[m.focused].set(&m.cfg.Rates, v)
			m.recompute()
		}
		m.state = StateBrowsing
		m.editBuffer = ""
	case "backspace":
		if len(m.editBuffer) > 0 {
			m.editBuffer = m.editBuffer[:len(m.editBuffer)-1]
		}
	default:
		if len(msg.String()) == 1 && strings.ContainsAny(msg.String(), "0123456789.-eE+") {
			m.editBuffer += msg.String()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.state == StateQuitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(HeaderStyle.Render("HEATCURVE"))
	b.WriteString(LabelStyle.Render(fmt.Sprintf("  mode: %s", m.cfg.Mode)))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		cursor := "  "
		if i == m.focused {
			cursor = HeaderStyle.Render("▸ ")
		}
		value := fmt.Sprintf(f.format, f.get(&m.cfg.Rates))
		if i == m.focused && m.state == StateEditing {
			value = ValueStyle.Render(m.editBuffer + "▏")
		} else {
			value = ValueStyle.Render(value)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n",
			cursor, LabelStyle.Render(fmt.Sprintf("%-28s", f.label)), value))
	}

	b.WriteString("\n")
	b.WriteString(RenderScenarioSummary(m.result, m.width-4))
	b.WriteString("\n")
	b.WriteString(RenderCrossoverLine(m.result.Crossover))
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render(
		"↑/↓ move · enter edit/commit · esc cancel · m mode · r reset · q quit"))
	b.WriteString("\n")

	return b.String()
}
