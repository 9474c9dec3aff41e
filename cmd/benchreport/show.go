package main

import (
	"fmt"

	"benchreport/internal/config"
	"benchreport/internal/jmh"
	"benchreport/internal/report"
	"benchreport/internal/ui"

	"github.com/spf13/cobra"
)

var (
	showMarkdown bool
	showWidth    int
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print benchmark results in the terminal",
	Long: `Loads a JMH results file (the configured input by default) and prints
the records as a table. With --markdown the report that convert would write
is rendered instead, without charts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showMarkdown, "markdown", false, "Render the Markdown report instead of a table")
	showCmd.Flags().IntVar(&showWidth, "width", 100, "Word wrap width for --markdown")
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := config.Current()
	if err != nil {
		return err
	}
	path := s.Input
	if len(args) == 1 {
		path = args[0]
	}

	records, err := jmh.Load(appFs, path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showMarkdown {
		opts := s.Report
		opts.GenerateCharts = false
		doc := report.Build(records, nil, opts)
		fmt.Fprint(out, ui.RenderMarkdown(doc.Render(), showWidth))
		return nil
	}

	if len(records) == 0 {
		ui.Warn(out, "No benchmark results in %s", path)
		return nil
	}

	opts := s.Report
	headers := []string{"Benchmark"}
	if opts.IncludeParams {
		headers = append(headers, "Params")
	}
	headers = append(headers, "Mode", "Score", "Error", "Units")

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		r := report.NewRow(rec, opts)
		row := []string{r.Name}
		if opts.IncludeParams {
			row = append(row, report.FormatParams(rec.Params, false))
		}
		row = append(row, r.Mode, r.Score, "±"+r.Error, r.Unit)
		rows = append(rows, row)
	}

	ui.Header(out, path)
	fmt.Fprintln(out, ui.Table(headers, rows, nil))
	return nil
}
