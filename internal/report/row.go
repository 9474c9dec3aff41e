package report

import (
	"strings"

	"benchreport/internal/jmh"
)

// Row is the display form of one record.
type Row struct {
	Name        string
	Params      string
	Mode        string
	Score       string
	Error       string
	Unit        string
	Percentiles string
}

// NewRow formats rec. Fields that are not numeric keep their raw text.
func NewRow(rec jmh.Record, opts Options) Row {
	id := rec.ID()
	name := id.Method
	if opts.QualifiedNames {
		name = id.Qualified()
	}
	return Row{
		Name:        name,
		Params:      FormatParams(rec.Params, true),
		Mode:        rec.Mode,
		Score:       FormatNumber(rec.PrimaryMetric.Score),
		Error:       FormatNumber(rec.PrimaryMetric.ScoreError),
		Unit:        rec.PrimaryMetric.ScoreUnit,
		Percentiles: FormatPercentiles(rec.PrimaryMetric.ScorePercentiles),
	}
}

// Rows formats every record in input order.
func Rows(records []jmh.Record, opts Options) []Row {
	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = NewRow(rec, opts)
	}
	return rows
}

type column struct {
	title string
	rule  string
	value func(Row) string
}

var (
	colBenchmark   = column{"Benchmark", "-----------", func(r Row) string { return "`" + r.Name + "`" }}
	colParams      = column{"Params", "--------", func(r Row) string { return r.Params }}
	colMode        = column{"Mode", "------", func(r Row) string { return r.Mode }}
	colScore       = column{"Score", "-------", func(r Row) string { return r.Score }}
	colError       = column{"Error", "-------", func(r Row) string { return "±" + r.Error }}
	colUnits       = column{"Units", "--------", func(r Row) string { return r.Unit }}
	colPercentiles = column{"Percentiles", "--------------", func(r Row) string { return r.Percentiles }}
)

func columns(opts Options) []column {
	cols := []column{colBenchmark}
	if opts.IncludeParams {
		cols = append(cols, colParams)
	}
	cols = append(cols, colMode, colScore, colError, colUnits)
	if opts.IncludePercentiles {
		cols = append(cols, colPercentiles)
	}
	return cols
}

// Header returns the table header and its separator line.
func Header(opts Options) (string, string) {
	cols := columns(opts)
	titles := make([]string, len(cols))
	rules := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.title
		rules[i] = c.rule
	}
	return "| " + strings.Join(titles, " | ") + " |", "|" + strings.Join(rules, "|") + "|"
}

// Markdown renders the row as a table line.
func (r Row) Markdown(opts Options) string {
	cols := columns(opts)
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = c.value(r)
	}
	return "| " + strings.Join(cells, " | ") + " |"
}
