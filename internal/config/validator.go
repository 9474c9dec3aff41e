package config

import (
	"fmt"
	"strings"

	"benchreport/internal/chart"
	"benchreport/internal/report"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	opts, err := report.PresetFor(viper.GetString(KeyVariant))
	if err != nil {
		errors = append(errors, err.Error())
	}
	charts := opts.GenerateCharts
	if viper.IsSet(KeyGenerateCharts) {
		charts = viper.GetBool(KeyGenerateCharts)
	}

	switch format := strings.ToLower(viper.GetString(KeyImageFormat)); format {
	case chart.FormatPNG, chart.FormatSVG:
	default:
		errors = append(errors, fmt.Sprintf("image_format must be %s or %s, got: %q", chart.FormatPNG, chart.FormatSVG, format))
	}

	for _, key := range []string{KeyInput, KeyOutput} {
		if strings.TrimSpace(viper.GetString(key)) == "" {
			errors = append(errors, fmt.Sprintf("%s must not be empty", key))
		}
	}

	if charts && strings.TrimSpace(viper.GetString(KeyGraphsDir)) == "" {
		errors = append(errors, "graphs_dir must not be empty when charts are generated")
	}

	if viper.IsSet(KeyHistoryThreshold) {
		threshold := viper.GetFloat64(KeyHistoryThreshold)
		if threshold < 0 {
			errors = append(errors, fmt.Sprintf("history.threshold must not be negative, got: %v", threshold))
		}
	}

	// If there are any errors, return them
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	return nil
}
