package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gridnote/heatcurve/internal/config"
	"github.com/gridnote/heatcurve/internal/logging"
)

// EnvLogLevel overrides the configured log level when set.
const EnvLogLevel = "HEATCURVE_LOG_LEVEL"

// setupLogging configures logging based on the scenario file, environment,
// and CLI flags, and attaches the resulting logger plus a per-invocation
// trace ID to the command context.
func setupLogging(cmd *cobra.Command) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}
	if envLevel := os.Getenv(EnvLogLevel); envLevel != "" && !debug {
		loggingCfg.Level = envLevel
	}

	config.InitLogger(loggingCfg)
	logger = logging.ComponentLogger(config.GetLogger(), "cli")

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logging.WithContext(ctx, logger.With().Str("trace_id", traceID).Logger())
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")
	return nil
}
