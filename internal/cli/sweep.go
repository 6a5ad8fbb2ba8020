package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gridnote/heatcurve/internal/engine"
	"github.com/gridnote/heatcurve/internal/logging"
	"github.com/gridnote/heatcurve/internal/tui"
)

// sweepConcurrency bounds the number of scenario evaluations in flight.
const sweepConcurrency = 8

// minSweepSteps is the smallest sweep that says anything useful.
const minSweepSteps = 2

// sweepParams holds the parameters for the sweep command execution.
type sweepParams struct {
	param  string
	from   float64
	to     float64
	steps  int
	output string
}

// SweepRow is one evaluated point of a sensitivity sweep.
type SweepRow struct {
	Value              float64  `json:"value"`
	Baseline           float64  `json:"baseline"`
	AllElectric        float64  `json:"allElectric"`
	Hybrid             *float64 `json:"hybrid"`
	AllElectricSavings float64  `json:"allElectricSavings"`
}

// sweepSetters maps --param names to scenario field setters.
//
//nolint:gochecknoglobals // Static flag-name dispatch table
var sweepSetters = map[string]func(*engine.RateInputs, float64){
	"non-heating-kwh":              func(r *engine.RateInputs, v float64) { r.NonHeatingKWh = v },
	"supply-cents":                 func(r *engine.RateInputs, v float64) { r.SupplyCents = v },
	"transmission-cents":           func(r *engine.RateInputs, v float64) { r.TransmissionCents = v },
	"delivery-non-heat-cents":      func(r *engine.RateInputs, v float64) { r.DeliveryNonHeatCents = v },
	"delivery-electric-heat-cents": func(r *engine.RateInputs, v float64) { r.DeliveryElectricHeatCents = v },
	"gas-supply":                   func(r *engine.RateInputs, v float64) { r.GasSupplyRate = v },
	"gas-delivery":                 func(r *engine.RateInputs, v float64) { r.GasDeliveryRate = v },
	"afue":                         func(r *engine.RateInputs, v float64) { r.FurnaceAFUE = v },
	"heat-load":                    func(r *engine.RateInputs, v float64) { r.HeatLoadMMBtu = v },
	"seasonal-cop":                 func(r *engine.RateInputs, v float64) { r.SeasonalCOP = v },
	"gross-cost":                   func(r *engine.RateInputs, v float64) { r.GrossCost = v },
	"tax-credits":                  func(r *engine.RateInputs, v float64) { r.TaxCredits = v },
}

// sweepParamNames returns the supported --param values, sorted for help text.
func sweepParamNames() []string {
	names := make([]string, 0, len(sweepSetters))
	for name := range sweepSetters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSweepCmd creates the "sweep" subcommand, which evaluates the scenario
// engine across a range of values for one rate input to show how sensitive
// the savings picture is to that input.
func NewSweepCmd() *cobra.Command {
	var params sweepParams

	cmd := &cobra.Command{
		Use:     "sweep",
		Short:   "Sensitivity sweep over one rate input",
		Example: sweepExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeSweep(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.param, "param", "gas-supply",
		"Rate input to sweep: "+strings.Join(sweepParamNames(), ", "))
	cmd.Flags().Float64Var(&params.from, "from", 0, "Sweep range start")
	cmd.Flags().Float64Var(&params.to, "to", 0, "Sweep range end")
	cmd.Flags().IntVar(&params.steps, "steps", 10, "Number of evaluation points")
	cmd.Flags().StringVar(&params.output, "output", defaultOutputFormat(),
		"Output format: table, json, or ndjson")

	return cmd
}

const sweepExample = `  # How gas prices move the savings picture
  heatcurve sweep --param gas-supply --from 0.3 --to 1.2 --steps 19

  # Furnace efficiency sensitivity, as JSON
  heatcurve sweep --param afue --from 0.7 --to 0.99 --steps 30 --output json`

// executeSweep fans the evaluation points out over an errgroup and collects
// rows in sweep order. Each evaluation gets its own input copy; the engine
// itself is pure, so concurrent calls cannot race.
func executeSweep(cmd *cobra.Command, params sweepParams) error {
	ctx := cmd.Context()

	format, err := ParseOutputFormat(params.output)
	if err != nil {
		return err
	}
	setter, ok := sweepSetters[params.param]
	if !ok {
		return fmt.Errorf("unknown sweep parameter %q: must be one of %s",
			params.param, strings.Join(sweepParamNames(), ", "))
	}
	if params.steps < minSweepSteps {
		return fmt.Errorf("steps must be >= %d, got %d", minSweepSteps, params.steps)
	}
	if params.to == params.from {
		return fmt.Errorf("sweep range is empty: from and to are both %g", params.from)
	}

	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("operation", "sweep").Str("param", params.param).
		Float64("from", params.from).Float64("to", params.to).
		Int("steps", params.steps).Msg("starting sensitivity sweep")

	rows := make([]SweepRow, params.steps)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sweepConcurrency)

	stride := (params.to - params.from) / float64(params.steps-1)
	for i := range params.steps {
		g.Go(func() error {
			value := params.from + float64(i)*stride
			in := cfg.EngineInput()
			setter(&in.Rates, value)

			res := engine.Compute(gctx, in)
			rows[i] = SweepRow{
				Value:              value,
				Baseline:           res.Baseline,
				AllElectric:        res.AllElectric,
				Hybrid:             res.Hybrid,
				AllElectricSavings: res.AllElectricSavings,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	switch format {
	case OutputJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case OutputNDJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		for _, row := range rows {
			if err := enc.Encode(row); err != nil {
				return err
			}
		}
		return nil
	default:
		cmd.Println(tui.RenderSweepTable(params.param, rows2tui(rows)))
		return nil
	}
}

// rows2tui converts CLI sweep rows to the tui package's render rows.
func rows2tui(rows []SweepRow) []tui.SweepRow {
	out := make([]tui.SweepRow, len(rows))
	for i, r := range rows {
		out[i] = tui.SweepRow{
			Value:              r.Value,
			Baseline:           r.Baseline,
			AllElectric:        r.AllElectric,
			Hybrid:             r.Hybrid,
			AllElectricSavings: r.AllElectricSavings,
		}
	}
	return out
}
