package metrics

import (
	"log/slog"
	"slices"

	"github.com/artie-labs/anonymize/lib/config"
	"github.com/artie-labs/anonymize/lib/config/constants"
	"github.com/artie-labs/anonymize/lib/telemetry/metrics/base"
	"github.com/artie-labs/anonymize/lib/telemetry/metrics/datadog"
)

var supportedExporterKinds = []constants.ExporterKind{constants.Datadog}

func exporterKindValid(kind constants.ExporterKind) bool {
	return slices.Contains(supportedExporterKinds, kind)
}

func LoadExporter(cfg config.Config) base.Client {
	kind := cfg.Telemetry.Metrics.Provider
	if !exporterKindValid(kind) {
		slog.Info("Invalid or no exporter kind passed in, skipping...", slog.Any("exporterKind", kind))
		return NullMetricsProvider{}
	}

	statsClient, err := datadog.NewDatadogClient(cfg.Telemetry.Metrics.Settings)
	if err != nil {
		slog.Error("Metrics client error", slog.Any("err", err), slog.Any("provider", kind))
		return NullMetricsProvider{}
	}

	slog.Info("Metrics client loaded", slog.Any("provider", kind))
	return statsClient
}
