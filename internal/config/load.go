package config

import (
	"errors"
	"fmt"
	"strings"

	"benchreport/internal/chart"
	"benchreport/internal/report"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyInput               = "input"
	KeyOutput              = "output"
	KeyGraphsDir           = "graphs_dir"
	KeyImageFormat         = "image_format"
	KeyVariant             = "variant"
	KeyIncludeParams       = "include_params"
	KeyIncludePercentiles  = "include_percentiles"
	KeyGenerateCharts      = "generate_charts"
	KeyInterpolationMethod = "interpolation_method"
	KeyTitle               = "title"
	KeyFooterHeading       = "footer.heading"
	KeyFooterIndexLabel    = "footer.index_label"
	KeyFooterIndexLink     = "footer.index_link"
	KeyVerbose             = "verbose"
	KeyLogFile             = "log_file"
	KeyMetricsFile         = "metrics_file"
	KeyHistoryDB           = "history.db"
	KeyHistoryThreshold    = "history.threshold"
)

// Default paths, relative to the working directory.
const (
	DefaultInput     = "build/reports/benchmarks/jmh-results.json"
	DefaultOutput    = "docs-site/benchmarks.md"
	DefaultGraphsDir = "docs-site/static/benchmark-graphs"
)

// Load initializes the configuration from file and environment variables.
// A missing default config file is not an error; a missing explicit one is.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("benchreport")
	}

	viper.SetEnvPrefix("BENCHREPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault(KeyInput, DefaultInput)
	viper.SetDefault(KeyOutput, DefaultOutput)
	viper.SetDefault(KeyGraphsDir, DefaultGraphsDir)
	viper.SetDefault(KeyImageFormat, chart.FormatPNG)
	viper.SetDefault(KeyVariant, report.PresetFull)
	viper.SetDefault(KeyInterpolationMethod, chart.DefaultInterpolationMethod)
	viper.SetDefault(KeyTitle, report.DefaultTitle)
	viper.SetDefault(KeyFooterHeading, report.DefaultFooter.Heading)
	viper.SetDefault(KeyFooterIndexLabel, report.DefaultFooter.IndexLabel)
	viper.SetDefault(KeyFooterIndexLink, report.DefaultFooter.IndexLink)
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyMetricsFile, "")
	viper.SetDefault(KeyHistoryDB, "")
	viper.SetDefault(KeyHistoryThreshold, 10.0)
}

// BindFlags binds command flags to their configuration keys. Flags are
// looked up by the key name with "_" and "." replaced by "-".
func BindFlags(fs *pflag.FlagSet) error {
	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		key := flagKey(f.Name)
		if key == "" {
			return
		}
		if err := viper.BindPFlag(key, f); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

var flagKeys = map[string]string{
	"input":                KeyInput,
	"output":               KeyOutput,
	"graphs-dir":           KeyGraphsDir,
	"image-format":         KeyImageFormat,
	"variant":              KeyVariant,
	"include-params":       KeyIncludeParams,
	"include-percentiles":  KeyIncludePercentiles,
	"charts":               KeyGenerateCharts,
	"interpolation-method": KeyInterpolationMethod,
	"title":                KeyTitle,
	"verbose":              KeyVerbose,
	"log-file":             KeyLogFile,
	"metrics-file":         KeyMetricsFile,
	"history-db":           KeyHistoryDB,
	"threshold":            KeyHistoryThreshold,
}

func flagKey(name string) string {
	return flagKeys[name]
}

// Settings is the typed view of the configuration.
type Settings struct {
	Input               string
	Output              string
	GraphsDir           string
	ImageFormat         string
	Variant             string
	InterpolationMethod string
	Report              report.Options

	Verbose     bool
	LogFile     string
	MetricsFile string

	HistoryDB        string
	HistoryThreshold float64
}

// Current reads the settings from viper. Explicitly set include_* and
// generate_charts keys override the chosen variant.
func Current() (Settings, error) {
	opts, err := report.PresetFor(viper.GetString(KeyVariant))
	if err != nil {
		return Settings{}, err
	}
	if viper.IsSet(KeyIncludeParams) {
		opts.IncludeParams = viper.GetBool(KeyIncludeParams)
	}
	if viper.IsSet(KeyIncludePercentiles) {
		opts.IncludePercentiles = viper.GetBool(KeyIncludePercentiles)
	}
	if viper.IsSet(KeyGenerateCharts) {
		opts.GenerateCharts = viper.GetBool(KeyGenerateCharts)
	}
	opts.Title = viper.GetString(KeyTitle)
	opts.Footer = report.Footer{
		Heading:    viper.GetString(KeyFooterHeading),
		IndexLabel: viper.GetString(KeyFooterIndexLabel),
		IndexLink:  viper.GetString(KeyFooterIndexLink),
	}

	return Settings{
		Input:               viper.GetString(KeyInput),
		Output:              viper.GetString(KeyOutput),
		GraphsDir:           viper.GetString(KeyGraphsDir),
		ImageFormat:         strings.ToLower(viper.GetString(KeyImageFormat)),
		Variant:             viper.GetString(KeyVariant),
		InterpolationMethod: viper.GetString(KeyInterpolationMethod),
		Report:              opts,
		Verbose:             viper.GetBool(KeyVerbose),
		LogFile:             viper.GetString(KeyLogFile),
		MetricsFile:         viper.GetString(KeyMetricsFile),
		HistoryDB:           viper.GetString(KeyHistoryDB),
		HistoryThreshold:    viper.GetFloat64(KeyHistoryThreshold),
	}, nil
}
