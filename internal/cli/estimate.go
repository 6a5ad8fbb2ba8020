package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridnote/heatcurve/internal/config"
	"github.com/gridnote/heatcurve/internal/engine"
	"github.com/gridnote/heatcurve/internal/logging"
	"github.com/gridnote/heatcurve/internal/tui"
)

// estimateParams holds the parameters for the estimate command execution.
type estimateParams struct {
	output string
	mode   string
}

// NewEstimateCmd creates the "estimate" subcommand, which evaluates the
// Baseline, All-Electric, and Hybrid scenarios for the loaded scenario file
// plus any flag overrides.
//
// Registered flags:
//   - --output: table, json, or ndjson (default depends on terminal)
//   - --mode: table (binned COP dispatch) or seasonal (single fallback COP)
//   - --cop-table / --bins: inline "x:y" lists overriding the scenario file
//   - one flag per rate input (see registerRateFlags)
func NewEstimateCmd() *cobra.Command {
	var params estimateParams

	cmd := &cobra.Command{
		Use:     "estimate",
		Short:   "Estimate annual heating costs, savings, and payback",
		Example: estimateExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeEstimate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.output, "output", defaultOutputFormat(),
		"Output format: table, json, or ndjson")
	cmd.Flags().StringVar(&params.mode, "mode", "",
		"Calculation mode: table or seasonal (default from scenario file)")
	registerScenarioOverrideFlags(cmd)

	return cmd
}

const estimateExample = `  # Styled summary plus dispatch matrix
  heatcurve estimate

  # Machine-readable result with run ID
  heatcurve estimate --output json

  # Per-bin dispatch rows, one JSON object per line
  heatcurve estimate --output ndjson

  # What if gas prices spike?
  heatcurve estimate --gas-supply 0.95

  # Ignore the COP table and use a flat seasonal efficiency
  heatcurve estimate --mode seasonal --seasonal-cop 2.8`

// registerScenarioOverrideFlags registers one flag per scenario input so any
// value can be overridden without editing the scenario file.
func registerScenarioOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("non-heating-kwh", 0, "Annual non-heating electricity usage (kWh/yr)")
	cmd.Flags().Float64("supply-cents", 0, "Electric supply rate (cents/kWh)")
	cmd.Flags().Float64("transmission-cents", 0, "Electric transmission rate (cents/kWh)")
	cmd.Flags().Float64("delivery-non-heat-cents", 0, "Delivery rate, standard class (cents/kWh)")
	cmd.Flags().Float64("delivery-electric-heat-cents", 0, "Delivery rate, electric-heat class (cents/kWh)")
	cmd.Flags().Float64("gas-supply", 0, "Gas supply rate ($/therm)")
	cmd.Flags().Float64("gas-delivery", 0, "Gas delivery rate ($/therm)")
	cmd.Flags().Float64("afue", 0, "Gas furnace AFUE (0-1)")
	cmd.Flags().Float64("heat-load", 0, "Annual heat load (MMBtu/yr)")
	cmd.Flags().Float64("seasonal-cop", 0, "Fallback seasonal COP")
	cmd.Flags().Float64("gross-cost", 0, "Gross equipment cost ($)")
	cmd.Flags().Float64("tax-credits", 0, "Tax credits ($)")
	cmd.Flags().String("cop-table", "", "Inline COP table, e.g. '17:2.0, 47:3.2'")
	cmd.Flags().String("bins", "", "Inline weather bins, e.g. '20:30, 40:70'")
}

// applyScenarioOverrides copies changed override flags onto the loaded
// scenario. Only flags the user actually set are applied.
func applyScenarioOverrides(cmd *cobra.Command, cfg *config.Config, mode string) error {
	if mode != "" {
		if mode != config.ModeTable && mode != config.ModeSeasonal {
			return fmt.Errorf("invalid mode %q: must be %s or %s", mode, config.ModeTable, config.ModeSeasonal)
		}
		cfg.Mode = mode
	}

	rateTargets := map[string]*float64{
		"non-heating-kwh":              &cfg.Rates.NonHeatingKWh,
		"supply-cents":                 &cfg.Rates.SupplyCents,
		"transmission-cents":           &cfg.Rates.TransmissionCents,
		"delivery-non-heat-cents":      &cfg.Rates.DeliveryNonHeatCents,
		"delivery-electric-heat-cents": &cfg.Rates.DeliveryElectricHeatCents,
		"gas-supply":                   &cfg.Rates.GasSupplyRate,
		"gas-delivery":                 &cfg.Rates.GasDeliveryRate,
		"afue":                         &cfg.Rates.FurnaceAFUE,
		"heat-load":                    &cfg.Rates.HeatLoadMMBtu,
		"seasonal-cop":                 &cfg.Rates.SeasonalCOP,
		"gross-cost":                   &cfg.Rates.GrossCost,
		"tax-credits":                  &cfg.Rates.TaxCredits,
	}
	for name, target := range rateTargets {
		if cmd.Flags().Changed(name) {
			v, err := cmd.Flags().GetFloat64(name)
			if err != nil {
				return err
			}
			*target = v
		}
	}

	if cmd.Flags().Changed("cop-table") {
		cfg.COPTable, _ = cmd.Flags().GetString("cop-table")
	}
	if cmd.Flags().Changed("bins") {
		cfg.Bins, _ = cmd.Flags().GetString("bins")
	}
	return nil
}

// executeEstimate loads the scenario, applies overrides, runs the engine
// once, and renders the chosen output format.
func executeEstimate(cmd *cobra.Command, params estimateParams) error {
	ctx := cmd.Context()

	format, err := ParseOutputFormat(params.output)
	if err != nil {
		return err
	}

	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	if err := applyScenarioOverrides(cmd, cfg, params.mode); err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("operation", "estimate").Str("mode", cfg.Mode).
		Msg("starting scenario estimation")

	res := engine.Compute(ctx, cfg.EngineInput())

	switch format {
	case OutputJSON:
		return writeResultJSON(cmd.OutOrStdout(), logging.GetOrGenerateTraceID(ctx), res)
	case OutputNDJSON:
		return writeBinsNDJSON(cmd.OutOrStdout(), res)
	default:
		cmd.Println(tui.RenderScenarioSummary(res, 0))
		if len(res.Bins) > 0 {
			cmd.Println()
			cmd.Println(tui.RenderDispatchMatrix(res.Bins))
		}
		cmd.Println()
		cmd.Println(tui.RenderCrossoverLine(res.Crossover))
		return nil
	}
}
