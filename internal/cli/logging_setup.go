package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/jsonscrub/internal/config"
	"github.com/rshade/jsonscrub/internal/logging"
)

// setupLogging configures logging from config file, environment, and CLI
// flags, then attaches the logger and a trace ID to the command context.
func setupLogging(cmd *cobra.Command) {
	loggingCfg := config.New().Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	log := logging.NewLogger(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(log, "cli")

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logging.WithContext(ctx, log)
	cmd.SetContext(ctx)

	logger.Debug().Str("trace_id", traceID).Str("command", cmd.Name()).Msg("command started")
}
