package job

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/artie-labs/anonymize/lib"
	"github.com/artie-labs/anonymize/lib/anonymizer"
	"github.com/artie-labs/anonymize/lib/config"
	"github.com/artie-labs/anonymize/lib/config/constants"
	"github.com/artie-labs/anonymize/lib/dataio"
	"github.com/artie-labs/anonymize/lib/telemetry/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const heartbeatInterval = 30 * time.Second

type Report struct {
	RunID          string               `json:"runID"`
	K              int                  `json:"k"`
	Scope          constants.MergeScope `json:"scope"`
	Input          string               `json:"input"`
	Output         string               `json:"output"`
	Rows           int                  `json:"rows"`
	RemovedColumns []string             `json:"removedColumns"`
	State          anonymizer.State     `json:"state"`
	Utility        float64              `json:"utility"`
	ExactUtility   string               `json:"exactUtility"`
	MergeEvents    int                  `json:"mergeEvents"`
	Groups         int                  `json:"groups"`
	SmallestGroup  int                  `json:"smallestGroup"`
}

type Args struct {
	Source dataio.Source
	Sink   dataio.Sink
}

// Run loads the input, anonymizes it and saves the result. Nothing is saved if anonymization fails.
func Run(ctx context.Context, args Args) (Report, error) {
	settings, err := config.FromContext(ctx)
	if err != nil {
		return Report{}, err
	}

	cfg := settings.Config
	report := Report{
		RunID:  uuid.NewString(),
		K:      cfg.K,
		Scope:  cfg.MergeScope,
		Input:  cfg.Input,
		Output: cfg.Output,
	}

	start := time.Now()
	tags := map[string]string{
		"what":  "success",
		"scope": string(cfg.MergeScope),
		"k":     strconv.Itoa(cfg.K),
	}

	log := slog.With(slog.String("runID", report.RunID))
	if err = run(ctx, cfg, args, &report, log); err != nil {
		tags["what"] = "failed"
		metrics.FromContext(ctx).Timing("duration", time.Since(start), tags)
		return Report{}, err
	}

	tags["state"] = string(report.State)
	metricsClient := metrics.FromContext(ctx)
	metricsClient.Timing("duration", time.Since(start), tags)
	metricsClient.Gauge("utility", report.Utility, tags)
	metricsClient.Count("rows", int64(report.Rows), tags)
	metricsClient.Count("merge_events", int64(report.MergeEvents), tags)

	if cfg.ReportPath != "" {
		if err = writeReport(cfg.ReportPath, report); err != nil {
			return Report{}, err
		}
	}

	log.Info("Anonymized dataset",
		slog.Float64("utility", report.Utility),
		slog.Int("rows", report.Rows),
		slog.Int("groups", report.Groups),
		slog.Int("smallestGroup", report.SmallestGroup),
		slog.Duration("duration", time.Since(start)),
	)
	return report, nil
}

func run(ctx context.Context, cfg config.Config, args Args, report *Report, log *slog.Logger) error {
	dataset, err := args.Source.Load(ctx, cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	log.Info("Loaded dataset", slog.String("input", cfg.Input), slog.Int("rows", dataset.RowCount()))
	engine := anonymizer.NewEngine(dataset, anonymizer.Args{Scope: cfg.MergeScope, Parallelism: cfg.Parallelism})
	stop := lib.NewHeartbeats(log, heartbeatInterval, heartbeatInterval, "anonymize").Start()
	err = engine.Anonymize(cfg.K)
	stop()
	if err != nil {
		return fmt.Errorf("failed to anonymize dataset: %w", err)
	}

	anonymized, err := engine.ExportDataset()
	if err != nil {
		return err
	}

	stop = lib.NewHeartbeats(log, heartbeatInterval, heartbeatInterval, "save").Start()
	err = args.Sink.Save(ctx, anonymized, cfg.Output)
	stop()
	if err != nil {
		return fmt.Errorf("failed to save dataset: %w", err)
	}

	groups := engine.Groups()
	report.Rows = anonymized.RowCount()
	report.RemovedColumns = engine.RemovedColumns()
	report.State = engine.State()
	report.Utility = engine.MeasureUtility()
	report.ExactUtility = engine.ExactUtility()
	report.MergeEvents = engine.MergeEvents()
	report.Groups = groups.Len()
	report.SmallestGroup = groups.Smallest()
	return nil
}

func writeReport(fp string, report Report) error {
	bytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err = os.WriteFile(fp, bytes, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
