package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		setup     func()
		wantError bool
		errMsg    string
	}{
		{
			name:      "Defaults",
			setup:     func() {},
			wantError: false,
		},
		{
			name: "SVG Images",
			setup: func() {
				viper.Set(KeyImageFormat, "SVG")
			},
			wantError: false,
		},
		{
			name: "Unknown Variant",
			setup: func() {
				viper.Set(KeyVariant, "fancy")
			},
			wantError: true,
			errMsg:    `unknown report variant "fancy"`,
		},
		{
			name: "Unsupported Image Format",
			setup: func() {
				viper.Set(KeyImageFormat, "gif")
			},
			wantError: true,
			errMsg:    "image_format must be png or svg",
		},
		{
			name: "Empty Output",
			setup: func() {
				viper.Set(KeyOutput, " ")
			},
			wantError: true,
			errMsg:    "output must not be empty",
		},
		{
			name: "Charts Without Directory",
			setup: func() {
				viper.Set(KeyGenerateCharts, true)
				viper.Set(KeyGraphsDir, "")
			},
			wantError: true,
			errMsg:    "graphs_dir must not be empty",
		},
		{
			name: "Negative Threshold",
			setup: func() {
				viper.Set(KeyHistoryThreshold, -1)
			},
			wantError: true,
			errMsg:    "history.threshold must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()
			SetDefaults()
			tt.setup()

			err := ValidateConfig()
			if (err != nil) != tt.wantError {
				t.Fatalf("ValidateConfig() error = %v, wantError %v", err, tt.wantError)
			}
			if tt.wantError && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateConfig() error = %v, want message containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()
	viper.Set(KeyVariant, "fancy")
	viper.Set(KeyImageFormat, "gif")

	err := ValidateConfig()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "unknown report variant") || !strings.Contains(err.Error(), "image_format") {
		t.Errorf("expected both problems to be reported, got: %v", err)
	}
}
