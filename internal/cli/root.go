// Package cli wires the heatcurve calculation engine to its command-line
// surface: scenario estimation, crossover analysis, parameter sweeps, an
// interactive TUI, and scenario file management.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gridnote/heatcurve/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the heatcurve CLI.
// It wires up logging and the estimate, crossover, sweep, tui, and config
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "heatcurve",
		Short:   "Heat pump vs gas heating cost calculator",
		Long:    "heatcurve: estimate annual cost, savings, and payback of replacing gas heating with an electric heat pump, including hybrid per-bin dispatch",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringP("config", "c", "heatcurve.yaml", "path to scenario file")
	cmd.AddCommand(
		NewEstimateCmd(),
		NewCrossoverCmd(),
		NewSweepCmd(),
		NewTUICmd(),
		newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Estimate all three scenarios from the default scenario file
  heatcurve estimate

  # Same, as JSON for downstream charting
  heatcurve estimate --output json

  # Override a rate without touching the scenario file
  heatcurve estimate --gas-supply 0.61 --afue 0.92

  # Where does the heat pump stop being the cheaper fuel?
  heatcurve crossover

  # Sensitivity of savings to the gas supply rate
  heatcurve sweep --param gas-supply --from 0.3 --to 1.2 --steps 19

  # Interactive calculator
  heatcurve tui

  # Write a starter scenario file
  heatcurve config init`

// loadScenario reads the scenario file named by the persistent --config flag.
// A missing file silently yields the built-in defaults.
func loadScenario(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// defaultOutputFormat picks table output for interactive terminals and JSON
// when stdout is a pipe.
func defaultOutputFormat() string {
	if isTerminal(os.Stdout) {
		return string(OutputTable)
	}
	return string(OutputJSON)
}
