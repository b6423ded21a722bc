package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/artie-labs/anonymize/lib/config"
	"github.com/artie-labs/anonymize/lib/dataio/utils"
	"github.com/artie-labs/anonymize/lib/logger"
	"github.com/artie-labs/anonymize/lib/redact"
	"github.com/artie-labs/anonymize/lib/telemetry/metrics"
	"github.com/artie-labs/anonymize/processes/job"
)

func main() {
	// Parse args into settings.
	settings, err := config.LoadSettings(os.Args[1:])
	if err != nil {
		logger.Fatal("Failed to load settings", slog.Any("err", redact.Error(err)))
	}

	// Initialize default logger
	log, loggingToSentry := logger.NewLogger(settings)
	slog.SetDefault(log)

	// Errors can carry cell values and cloud credentials, scrub them before they reach the logs or Sentry.
	fatal := func(msg string, err error) {
		slog.Error(msg, slog.Any("err", redact.Error(err)))
		if loggingToSentry {
			sentry.Flush(2 * time.Second)
		}
		os.Exit(1)
	}

	ctx := config.InjectSettingsIntoContext(context.Background(), settings)
	ctx = metrics.InjectMetricsClientIntoCtx(ctx, metrics.LoadExporter(settings.Config))

	slog.Info("Config is loaded",
		slog.String("input", settings.Config.Input),
		slog.String("output", settings.Config.Output),
		slog.Int("k", settings.Config.K),
		slog.String("scope", string(settings.Config.MergeScope)),
	)

	source, err := utils.NewSource(ctx, settings.Config, settings.Config.Input)
	if err != nil {
		fatal("Failed to create source", err)
	}

	sink, err := utils.NewSink(ctx, settings.Config, settings.Config.Output)
	if err != nil {
		fatal("Failed to create sink", err)
	}

	if _, err = job.Run(ctx, job.Args{Source: source, Sink: sink}); err != nil {
		fatal("Failed to anonymize dataset", err)
	}

	if err = utils.Close(source, sink); err != nil {
		slog.Warn("Failed to close storage clients", slog.Any("err", redact.Error(err)))
	}

	if loggingToSentry {
		sentry.Flush(2 * time.Second)
	}
}
