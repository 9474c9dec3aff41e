package benchmark

import (
	"time"

	"benchreport/internal/jmh"
	"benchreport/internal/report"
)

// Result represents a single benchmark result.
type Result struct {
	Benchmark string  `json:"benchmark"`
	Mode      string  `json:"mode"`
	Params    string  `json:"params"`
	Score     float64 `json:"score"`
	Error     float64 `json:"error"`
	Unit      string  `json:"unit"`
}

// Key identifies the same measurement across runs.
func (r Result) Key() string {
	return r.Benchmark + "|" + r.Params + "|" + r.Mode
}

// Run represents a collection of benchmark results from a single execution.
type Run struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source,omitempty"` // input file the run was read from
	Results   []Result  `json:"results"`
}

// FromRecords builds a run from parsed records. Records without a numeric
// score are skipped; a non-numeric error is stored as 0.
func FromRecords(records []jmh.Record, source string, ts time.Time) Run {
	run := Run{Timestamp: ts, Source: source}
	for _, rec := range records {
		score, ok := rec.PrimaryMetric.Score.Float()
		if !ok {
			continue
		}
		scoreErr, _ := rec.PrimaryMetric.ScoreError.Float()
		run.Results = append(run.Results, Result{
			Benchmark: rec.Benchmark,
			Mode:      rec.Mode,
			Params:    report.FormatParams(rec.Params, false),
			Score:     score,
			Error:     scoreErr,
			Unit:      rec.PrimaryMetric.ScoreUnit,
		})
	}
	return run
}
