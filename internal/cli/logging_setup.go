package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/recipefind/internal/config"
	"github.com/rshade/recipefind/internal/logging"
)

// annotationLogMode marks commands that own the terminal. Such commands only
// log to a file; without one they get a disabled logger.
const (
	annotationLogMode = "recipefind/log-mode"
	logModeFileOnly   = "file-only"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
	}

	fileOnly := cmd.Annotations[annotationLogMode] == logModeFileOnly
	if debug && !fileOnly {
		loggingCfg.File = ""
	}

	var result logging.LogPathResult
	if fileOnly && loggingCfg.File == "" {
		result = logging.LogPathResult{Logger: zerolog.Nop()}
	} else {
		result = logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
		if fileOnly && !result.UsingFile {
			_ = result.Close()
			result = logging.LogPathResult{Logger: zerolog.Nop()}
		}
	}
	logger = logging.ComponentLogger(result.Logger, "cli")

	if !fileOnly {
		if result.UsingFile {
			logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
		} else if result.FallbackUsed {
			logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
		}
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(_ *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
