package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"benchreport/internal/benchmark"
	"benchreport/internal/chart"
	"benchreport/internal/config"
	apperrors "benchreport/internal/errors"
	"benchreport/internal/jmh"
	"benchreport/internal/report"
	"benchreport/internal/telemetry"
	"benchreport/internal/ui"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Replaced in tests.
var (
	appFs           = afero.NewOsFs()
	newRenderer     = func() chart.Renderer { return chart.NewPlotRenderer() }
	newHistoryStore = func(path string) (benchmark.Store, error) { return benchmark.NewSQLiteStore(path) }
	now             = time.Now
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Write the Markdown report (the default command)",
	Args:  cobra.NoArgs,
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	s, err := config.Current()
	if err != nil {
		return err
	}
	return convert(cmd.OutOrStdout(), s)
}

// convert runs the whole pipeline. Nothing is written when the input cannot
// be loaded.
func convert(out io.Writer, s config.Settings) error {
	records, err := jmh.Load(appFs, s.Input)
	if err != nil {
		return err
	}
	telemetry.LogDebug("Loaded benchmark results", "path", s.Input, "records", len(records))

	var metrics *telemetry.Metrics
	if s.MetricsFile != "" {
		metrics = telemetry.NewMetrics()
	}

	var graphs []report.Graph
	if s.Report.GenerateCharts {
		groups := chart.GroupRecords(records)
		images, err := chart.RenderAll(appFs, s.GraphsDir, groups, newRenderer(), s.ImageFormat, s.InterpolationMethod)
		if err != nil {
			return err
		}
		docDir := filepath.Dir(s.Output)
		for _, img := range images {
			ui.Info(out, "📈 Graph saved: %s", img.Path)
			graphs = append(graphs, report.Graph{Title: img.Title(), Ref: img.Ref(docDir)})
			if metrics != nil {
				metrics.ChartRendered()
			}
		}
	}

	doc := report.Build(records, graphs, s.Report)
	if err := report.Write(appFs, s.Output, doc); err != nil {
		return err
	}
	ui.Success(out, "✅ Markdown written to %s", s.Output)

	if metrics != nil {
		for _, rec := range records {
			metrics.ObserveRecord(sampleOf(rec))
		}
		if err := metrics.WriteTextfile(appFs, s.MetricsFile); err != nil {
			return &apperrors.WriteError{Path: s.MetricsFile, Err: err}
		}
		telemetry.LogDebug("Metrics written", "path", s.MetricsFile)
	}

	if s.HistoryDB != "" {
		if _, err := recordRun(out, s, records); err != nil {
			return err
		}
	}
	return nil
}

func sampleOf(rec jmh.Record) telemetry.Sample {
	sample := telemetry.Sample{
		Benchmark: rec.Benchmark,
		Mode:      rec.Mode,
		Params:    report.FormatParams(rec.Params, false),
		Unit:      rec.PrimaryMetric.ScoreUnit,
	}
	if f, ok := rec.PrimaryMetric.Score.Float(); ok {
		sample.Score = &f
	}
	if f, ok := rec.PrimaryMetric.ScoreError.Float(); ok {
		sample.Error = &f
	}
	return sample
}

// recordRun stores records as a new run in the history database.
func recordRun(out io.Writer, s config.Settings, records []jmh.Record) (int64, error) {
	store, err := newHistoryStore(s.HistoryDB)
	if err != nil {
		return 0, fmt.Errorf("failed to open history %s: %w", s.HistoryDB, err)
	}
	defer store.Close()

	run := benchmark.FromRecords(records, s.Input, now())
	id, err := store.Save(run)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	telemetry.LogInfo("Run recorded", "id", id, "results", len(run.Results), "db", s.HistoryDB)
	ui.Info(out, "🗄  Run #%d recorded in %s", id, s.HistoryDB)
	return id, nil
}
