package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/gridnote/heatcurve/internal/engine"
	"github.com/gridnote/heatcurve/internal/logging"
	"github.com/gridnote/heatcurve/internal/tui"
)

// crossoverParams holds the parameters for the crossover command execution.
type crossoverParams struct {
	output string
	series bool
}

// NewCrossoverCmd creates the "crossover" subcommand, which locates the
// outdoor temperature where heat pump and gas cost per unit heat are equal
// and optionally dumps the full cost-curve series for charting.
func NewCrossoverCmd() *cobra.Command {
	var params crossoverParams

	cmd := &cobra.Command{
		Use:     "crossover",
		Short:   "Find the heat pump vs gas cost-parity temperature",
		Example: crossoverExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCrossover(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.output, "output", defaultOutputFormat(),
		"Output format: table, json, or ndjson")
	cmd.Flags().BoolVar(&params.series, "series", false,
		"Include the full per-degree cost curve in table output")

	return cmd
}

const crossoverExample = `  # Crossover temperature for the current scenario
  heatcurve crossover

  # Full cost curve as JSON for the line chart
  heatcurve crossover --output json

  # Per-degree curve rows, one JSON object per line
  heatcurve crossover --output ndjson`

// executeCrossover runs the solver against the scenario's COP table.
func executeCrossover(cmd *cobra.Command, params crossoverParams) error {
	ctx := cmd.Context()

	format, err := ParseOutputFormat(params.output)
	if err != nil {
		return err
	}

	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	table := engine.ParsePairs(cfg.COPTable)
	rates := engine.NewRates(cfg.Rates.Sanitize())
	crossover := engine.SolveCrossover(table, rates)

	log := logging.FromContext(ctx)
	log.Debug().Str("operation", "crossover").
		Int("cop_points", len(table)).
		Int("series_points", len(crossover.Series)).
		Bool("found", crossover.Temp != nil).
		Msg("crossover analysis complete")

	switch format {
	case OutputJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(crossover)
	case OutputNDJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		for _, p := range crossover.Series {
			if err := enc.Encode(p); err != nil {
				return err
			}
		}
		return nil
	default:
		cmd.Println(tui.RenderCrossoverLine(crossover))
		if params.series {
			cmd.Println()
			for _, p := range crossover.Series {
				cmd.Printf("%6.1f°F  hp $%6.2f  gas $%6.2f\n", p.Temp, p.HeatPumpCost, p.GasCost)
			}
		}
		return nil
	}
}
