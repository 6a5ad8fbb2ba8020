package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gridnote/heatcurve/internal/tui"
)

// NewTUICmd creates the "tui" subcommand, the interactive calculator: rate
// fields are edited in place and every change triggers a full synchronous
// recompute of the scenario result.
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive heat pump cost calculator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return fmt.Errorf("tui requires an interactive terminal")
			}

			cfg, err := loadScenario(cmd)
			if err != nil {
				return err
			}

			model := tui.NewModel(cmd.Context(), cfg)
			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running tui: %w", err)
			}
			return nil
		},
	}
}
