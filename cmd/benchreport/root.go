package main

import (
	"fmt"
	"os"

	"benchreport/internal/chart"
	"benchreport/internal/config"
	apperrors "benchreport/internal/errors"
	"benchreport/internal/report"
	"benchreport/internal/telemetry"

	"github.com/spf13/cobra"
)

var exit = os.Exit
var cfgFile string

// rootCmd converts the configured JMH results when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "benchreport",
	Short: "Turn JMH benchmark results into a Markdown report",
	Long: `benchreport reads the JSON results written by JMH and produces a
Markdown page with a results table and, optionally, one bar chart per
benchmark class comparing its methods and parameter sets.`,
	Args:              cobra.NoArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
	RunE:              runConvert,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Wrap Execute in panic recovery for graceful shutdown
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		exit(apperrors.ExitCode(err))
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./benchreport.yaml)")
	pf.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	pf.String("log-file", "", "Also write JSON logs to this file")

	pf.StringP("input", "i", config.DefaultInput, "JMH JSON results file")
	pf.StringP("output", "o", config.DefaultOutput, "Markdown file to write")
	pf.String("graphs-dir", config.DefaultGraphsDir, "Directory for chart images")
	pf.String("image-format", chart.FormatPNG, "Chart image format (png or svg)")
	pf.String("variant", report.PresetFull, "Report variant (full, params or basic)")
	pf.Bool("include-params", true, "Include the Params column (overrides the variant)")
	pf.Bool("include-percentiles", true, "Include the Percentiles column (overrides the variant)")
	pf.Bool("charts", true, "Generate charts (overrides the variant)")
	pf.String("interpolation-method", chart.DefaultInterpolationMethod, "Method whose charts are labelled by parameter index; empty disables")
	pf.String("title", report.DefaultTitle, "Report title")
	pf.String("metrics-file", "", "Write Prometheus metrics to this textfile")
	pf.String("history-db", "", "SQLite database recording every run")
	pf.Float64("threshold", 10.0, "Percentage change counted as a regression")
}

// initConfig loads the configuration for the command being run, validates it
// and sets up logging.
func initConfig(cmd *cobra.Command, args []string) error {
	if err := config.Load(cfgFile); err != nil {
		return err
	}
	if err := config.BindFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	if err := config.ValidateConfig(); err != nil {
		return err
	}

	s, err := config.Current()
	if err != nil {
		return err
	}
	telemetry.InitLogger(s.Verbose, s.LogFile)
	return nil
}
