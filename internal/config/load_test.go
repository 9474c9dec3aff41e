package config

import (
	"os"
	"path/filepath"
	"testing"

	"benchreport/internal/report"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	defer viper.Reset()

	t.Run("Defaults", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())

		require.NoError(t, Load(""))

		s, err := Current()
		require.NoError(t, err)
		assert.Equal(t, DefaultInput, s.Input)
		assert.Equal(t, DefaultOutput, s.Output)
		assert.Equal(t, DefaultGraphsDir, s.GraphsDir)
		assert.Equal(t, "png", s.ImageFormat)
		assert.Equal(t, "benchmarkInterpolation", s.InterpolationMethod)
		assert.True(t, s.Report.IncludeParams)
		assert.True(t, s.Report.IncludePercentiles)
		assert.True(t, s.Report.GenerateCharts)
		assert.Equal(t, report.DefaultFooter, s.Report.Footer)
		assert.Equal(t, 10.0, s.HistoryThreshold)
		assert.Empty(t, s.HistoryDB)
	})

	t.Run("Load From Env", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())
		t.Setenv("BENCHREPORT_VARIANT", "basic")
		t.Setenv("BENCHREPORT_FOOTER_INDEX_LINK", "../index.md")

		require.NoError(t, Load(""))

		s, err := Current()
		require.NoError(t, err)
		assert.Equal(t, "basic", s.Variant)
		assert.False(t, s.Report.IncludeParams)
		assert.False(t, s.Report.GenerateCharts)
		assert.Equal(t, "../index.md", s.Report.Footer.IndexLink)
	})

	t.Run("Load From File", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		t.Chdir(dir)
		content := "variant: params\ninclude_percentiles: true\noutput: out/report.md\nfooter:\n  heading: Links\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "benchreport.yaml"), []byte(content), 0644))

		require.NoError(t, Load(""))

		s, err := Current()
		require.NoError(t, err)
		assert.Equal(t, "out/report.md", s.Output)
		assert.True(t, s.Report.IncludeParams)
		assert.True(t, s.Report.IncludePercentiles)
		assert.False(t, s.Report.GenerateCharts)
		assert.Equal(t, "Links", s.Report.Footer.Heading)
	})

	t.Run("Explicit Missing File", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())
		assert.Error(t, Load("does-not-exist.yaml"))
	})
}

func TestBindFlags(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("input", DefaultInput, "")
	fs.Bool("charts", true, "")
	fs.String("unrelated", "", "")
	require.NoError(t, BindFlags(fs))

	// Unchanged flags do not override the variant.
	s, err := Current()
	require.NoError(t, err)
	assert.Equal(t, DefaultInput, s.Input)

	require.NoError(t, fs.Parse([]string{"--input", "results.json", "--charts=false"}))
	s, err = Current()
	require.NoError(t, err)
	assert.Equal(t, "results.json", s.Input)
	assert.False(t, s.Report.GenerateCharts)
	assert.True(t, s.Report.IncludePercentiles)
}

func TestCurrent_UnknownVariant(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()
	viper.Set(KeyVariant, "fancy")

	_, err := Current()
	assert.Error(t, err)
}
