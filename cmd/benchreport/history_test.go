package main

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"benchreport/internal/benchmark"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_Disabled(t *testing.T) {
	setup(t)

	_, err := executeCommand("history", "compare")
	assert.ErrorIs(t, err, errNoHistory)

	_, err = executeCommand("history", "record")
	assert.ErrorIs(t, err, errNoHistory)
}

func TestHistoryRecord(t *testing.T) {
	env := setup(t)
	env.writeInput(t, "/data/jmh.json", sampleResults)

	out, err := executeCommand("history", "record", "/data/jmh.json", "--history-db", "runs.db")
	require.NoError(t, err)
	assert.Contains(t, out, "Run #1 recorded in runs.db")

	require.Len(t, env.store.runs, 1)
	assert.Equal(t, "/data/jmh.json", env.store.runs[0].Source)
	assert.Equal(t, "size=10", env.store.runs[0].Results[0].Params)
}

func TestHistoryRecord_SaveFailure(t *testing.T) {
	env := setup(t)
	env.writeInput(t, "/data/jmh.json", sampleResults)
	env.store.saveErr = errors.New("disk full")

	_, err := executeCommand("history", "record", "/data/jmh.json", "--history-db", "runs.db")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestHistoryCompare_NotEnoughRuns(t *testing.T) {
	env := setup(t)
	env.store.runs = []benchmark.Run{{ID: 1}}

	out, err := executeCommand("history", "compare", "--history-db", "runs.db")
	require.NoError(t, err)
	assert.Contains(t, out, "Not enough history")
}

func TestHistoryCompare(t *testing.T) {
	env := setup(t)
	env.store.runs = []benchmark.Run{
		{ID: 1, Results: []benchmark.Result{
			{Benchmark: "a.B.fast", Mode: "thrpt", Params: "-", Score: 100, Unit: "ops/s"},
			{Benchmark: "a.B.lat", Mode: "avgt", Params: "-", Score: 10, Unit: "ms/op"},
		}},
		{ID: 2, Results: []benchmark.Result{
			{Benchmark: "a.B.fast", Mode: "thrpt", Params: "-", Score: 105, Unit: "ops/s"},
			{Benchmark: "a.B.lat", Mode: "avgt", Params: "-", Score: 8, Unit: "ms/op"},
		}},
	}

	out, err := executeCommand("history", "compare", "--history-db", "runs.db")
	require.NoError(t, err)
	assert.Contains(t, out, "Run #1 (N/A) vs run #2 (N/A)")
	assert.Contains(t, out, "+5.00%")
	assert.Contains(t, out, "-20.00%")
	assert.Contains(t, out, "No regressions above 10.0%")
}

func TestHistoryCompare_Regression(t *testing.T) {
	env := setup(t)
	env.store.runs = []benchmark.Run{
		{ID: 1, Results: []benchmark.Result{{Benchmark: "a.B.fast", Mode: "thrpt", Params: "-", Score: 100, Unit: "ops/s"}}},
		{ID: 2, Results: []benchmark.Result{{Benchmark: "a.B.fast", Mode: "thrpt", Params: "-", Score: 95, Unit: "ops/s"}}},
	}

	out, err := executeCommand("history", "compare", "--history-db", "runs.db", "--threshold", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 benchmark(s) regressed by more than 2.0%")
	assert.Contains(t, out, "Regression: a.B.fast [-] thrpt: -5.00%")
}

func TestHistory_SQLiteRoundTrip(t *testing.T) {
	env := setup(t)
	newHistoryStore = func(path string) (benchmark.Store, error) { return benchmark.NewSQLiteStore(path) }
	db := filepath.Join(t.TempDir(), "history.db")

	env.writeInput(t, "/data/jmh.json", sampleResults)
	now = func() time.Time { return time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	_, err := executeCommand("history", "record", "/data/jmh.json", "--history-db", db)
	require.NoError(t, err)

	now = func() time.Time { return time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC) }
	_, err = executeCommand("--input", "/data/jmh.json", "--output", "/site/bench.md", "--charts=false", "--history-db", db)
	require.NoError(t, err)

	now = func() time.Time { return time.Date(2026, 10, 2, 6, 0, 0, 0, time.UTC) }
	out, err := executeCommand("history", "compare", "--history-db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Run #1 (1d ago) vs run #2 (6h ago)")
	assert.Contains(t, out, "+0.00%")
}
