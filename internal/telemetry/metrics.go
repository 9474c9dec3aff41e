package telemetry

import (
	"bytes"
	"fmt"

	"benchreport/internal/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/afero"
)

// Metrics collects report figures for the node_exporter textfile collector.
type Metrics struct {
	registry   *prometheus.Registry
	score      *prometheus.GaugeVec
	scoreError *prometheus.GaugeVec
	records    prometheus.Counter
	charts     prometheus.Counter
}

var benchmarkLabels = []string{"benchmark", "mode", "params", "unit"}

// NewMetrics registers the report metrics on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		score: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchreport_score",
			Help: "Primary metric score of a benchmark.",
		}, benchmarkLabels),
		scoreError: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchreport_score_error",
			Help: "Primary metric score error of a benchmark.",
		}, benchmarkLabels),
		records: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "benchreport_records_total",
			Help: "Number of benchmark records written to the report.",
		}),
		charts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "benchreport_charts_total",
			Help: "Number of comparison charts rendered.",
		}),
	}
	m.registry.MustRegister(m.score, m.scoreError, m.records, m.charts)
	return m
}

// Sample is one record as seen by the metrics.
type Sample struct {
	Benchmark string
	Mode      string
	Params    string
	Unit      string
	Score     *float64
	Error     *float64
}

// ObserveRecord counts a record and sets its score gauges. Non-numeric
// scores are counted but not exported as gauges.
func (m *Metrics) ObserveRecord(s Sample) {
	m.records.Inc()
	labels := prometheus.Labels{
		"benchmark": s.Benchmark,
		"mode":      s.Mode,
		"params":    s.Params,
		"unit":      s.Unit,
	}
	if s.Score != nil {
		m.score.With(labels).Set(*s.Score)
	}
	if s.Error != nil {
		m.scoreError.With(labels).Set(*s.Error)
	}
}

// ChartRendered counts one rendered chart.
func (m *Metrics) ChartRendered() {
	m.charts.Inc()
}

// WriteTextfile writes all metrics in the text exposition format to path,
// creating its directory.
func (m *Metrics) WriteTextfile(fs afero.Fs, path string) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metric %s: %w", mf.GetName(), err)
		}
	}

	if err := utils.WriteFile(fs, path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
