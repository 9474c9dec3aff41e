package main

import (
	"errors"
	"fmt"
	"strconv"

	"benchreport/internal/benchmark"
	"benchreport/internal/config"
	"benchreport/internal/jmh"
	"benchreport/internal/ui"
	"benchreport/internal/utils"

	"github.com/spf13/cobra"
)

var errNoHistory = errors.New("history is disabled: set history.db or pass --history-db")

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Record runs and compare them against earlier ones",
}

var historyRecordCmd = &cobra.Command{
	Use:   "record [file]",
	Short: "Store a results file as a new run",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistoryRecord,
}

var historyCompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the latest run with the one before it",
	Long: `Compares every benchmark present in the two most recent runs. For
throughput (thrpt) a higher score is better, for every other mode a lower
one is. The command fails when any benchmark got worse by more than the
threshold percentage.`,
	Args: cobra.NoArgs,
	RunE: runHistoryCompare,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyRecordCmd)
	historyCmd.AddCommand(historyCompareCmd)
}

func runHistoryRecord(cmd *cobra.Command, args []string) error {
	s, err := config.Current()
	if err != nil {
		return err
	}
	if s.HistoryDB == "" {
		return errNoHistory
	}
	if len(args) == 1 {
		s.Input = args[0]
	}

	records, err := jmh.Load(appFs, s.Input)
	if err != nil {
		return err
	}
	_, err = recordRun(cmd.OutOrStdout(), s, records)
	return err
}

func runHistoryCompare(cmd *cobra.Command, args []string) error {
	s, err := config.Current()
	if err != nil {
		return err
	}
	if s.HistoryDB == "" {
		return errNoHistory
	}

	store, err := newHistoryStore(s.HistoryDB)
	if err != nil {
		return fmt.Errorf("failed to open history %s: %w", s.HistoryDB, err)
	}
	defer store.Close()

	prev, curr, err := benchmark.LatestPair(store)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	out := cmd.OutOrStdout()
	if prev == nil {
		ui.Warn(out, "Not enough history to compare (need at least two runs).")
		return nil
	}

	comps := benchmark.Compare(*prev, *curr, s.HistoryThreshold)
	if len(comps) == 0 {
		ui.Warn(out, "No benchmarks in common between run #%d and run #%d.", prev.ID, curr.ID)
		return nil
	}

	rows := make([][]string, len(comps))
	marks := make([]ui.Mark, len(comps))
	for i, c := range comps {
		rows[i] = []string{
			c.Benchmark,
			c.Params,
			c.Mode,
			strconv.FormatFloat(c.Prev, 'f', 6, 64),
			strconv.FormatFloat(c.Curr, 'f', 6, 64),
			fmt.Sprintf("%+.2f%%", c.Diff),
			c.Unit,
		}
		switch {
		case c.Regression:
			marks[i] = ui.MarkRegression
		case c.Improvement:
			marks[i] = ui.MarkImprovement
		}
	}

	t := now()
	ui.Header(out, fmt.Sprintf("Run #%d (%s) vs run #%d (%s)",
		prev.ID, utils.FormatAge(prev.Timestamp, t), curr.ID, utils.FormatAge(curr.Timestamp, t)))
	fmt.Fprintln(out, ui.Table(
		[]string{"Benchmark", "Params", "Mode", "Previous", "Current", "Change", "Units"},
		rows, marks,
	))

	if regs := benchmark.Regressions(comps); len(regs) > 0 {
		for _, r := range regs {
			ui.Error(out, "Regression: %s", r)
		}
		return fmt.Errorf("%d benchmark(s) regressed by more than %.1f%%", len(regs), s.HistoryThreshold)
	}
	ui.Success(out, "No regressions above %.1f%%", s.HistoryThreshold)
	return nil
}
