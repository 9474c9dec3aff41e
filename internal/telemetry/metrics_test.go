package telemetry

import (
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestMetrics_ObserveRecord(t *testing.T) {
	m := NewMetrics()

	m.ObserveRecord(Sample{Benchmark: "Foo.parse", Mode: "thrpt", Params: "size=10", Unit: "ops/ms", Score: ptr(12.5), Error: ptr(0.5)})
	m.ObserveRecord(Sample{Benchmark: "Foo.broken", Mode: "thrpt", Params: "-", Unit: "ops/ms"})
	m.ChartRendered()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.records))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.charts))
	assert.Equal(t, 1, testutil.CollectAndCount(m.score))
	assert.Equal(t, 12.5, testutil.ToFloat64(m.score.WithLabelValues("Foo.parse", "thrpt", "size=10", "ops/ms")))
	assert.Equal(t, 0.5, testutil.ToFloat64(m.scoreError.WithLabelValues("Foo.parse", "thrpt", "size=10", "ops/ms")))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.ObserveRecord(Sample{Benchmark: "Foo.parse", Mode: "avgt", Params: "-", Unit: "ms/op", Score: ptr(3)})

	fs := afero.NewMemMapFs()
	path := filepath.Join("textfile", "metrics", "benchreport.prom")
	require.NoError(t, m.WriteTextfile(fs, path))

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `benchreport_score{benchmark="Foo.parse",mode="avgt",params="-",unit="ms/op"} 3`)
	assert.Contains(t, string(data), "benchreport_records_total 1")
}

func TestMetrics_WriteTextfile_ReadOnly(t *testing.T) {
	m := NewMetrics()
	err := m.WriteTextfile(afero.NewReadOnlyFs(afero.NewMemMapFs()), "out/benchreport.prom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out/benchreport.prom")
}
