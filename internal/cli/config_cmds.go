package cli

import (
	"github.com/spf13/cobra"

	"github.com/gridnote/heatcurve/internal/config"
)

// newConfigCmd groups the scenario file management subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the scenario file",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigValidateCmd())
	return cmd
}

// newConfigInitCmd creates "config init", which writes a starter scenario
// file with every default rate, the starter COP table, and starter bins.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter scenario file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			if err := config.Default().Write(path, force); err != nil {
				return err
			}
			cmd.Printf("Wrote starter scenario to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing scenario file")
	return cmd
}

// newConfigValidateCmd creates "config validate", which loads the scenario
// file and reports schema or mode problems. Rate values are not judged here;
// the engine falls back to defaults for anything non-finite.
func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the scenario file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			cmd.Printf("Scenario %s is valid (version %s, mode %s)\n", path, cfg.Version, cfg.Mode)
			return nil
		},
	}
}
