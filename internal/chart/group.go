// Package chart groups benchmark records by class and draws one comparison
// bar chart per group.
package chart

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"benchreport/internal/jmh"
	"benchreport/internal/report"
)

// DefaultInterpolationMethod is the benchmark method whose groups are
// labelled by placeholder count instead of by parameters.
const DefaultInterpolationMethod = "benchmarkInterpolation"

var placeholderPattern = regexp.MustCompile(`\$\{[^}]+\}`)

// Member is one drawable record of a group.
type Member struct {
	ID     jmh.Identifier
	Params string
	Score  float64
	Error  float64
	Unit   string
}

// Group collects the records that share a class-level identifier.
type Group struct {
	Key     string
	Members []Member
}

// GroupRecords groups records by FullClass. Groups keep first-seen order and
// members keep input order. Records without a numeric score are skipped.
func GroupRecords(records []jmh.Record) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, rec := range records {
		score, ok := rec.PrimaryMetric.Score.Float()
		if !ok {
			continue
		}
		scoreErr, _ := rec.PrimaryMetric.ScoreError.Float()

		id := rec.ID()
		m := Member{
			ID:     id,
			Params: report.FormatParams(rec.Params, false),
			Score:  score,
			Error:  scoreErr,
			Unit:   rec.PrimaryMetric.ScoreUnit,
		}

		i, seen := index[id.FullClass]
		if !seen {
			i = len(groups)
			index[id.FullClass] = i
			groups = append(groups, Group{Key: id.FullClass})
		}
		groups[i].Members = append(groups[i].Members, m)
	}
	return groups
}

// Methods returns the distinct method names of the group in first-seen order.
func (g Group) Methods() []string {
	var methods []string
	seen := make(map[string]bool)
	for _, m := range g.Members {
		if !seen[m.ID.Method] {
			seen[m.ID.Method] = true
			methods = append(methods, m.ID.Method)
		}
	}
	return methods
}

// Unit is the unit of the first member.
func (g Group) Unit() string {
	if len(g.Members) == 0 {
		return ""
	}
	return g.Members[0].Unit
}

// Labels returns one category label per member.
//
// A group made only of interpolationMethod benchmarks is labelled by the
// number of ${...} placeholders in each parameter string. Otherwise the
// parameter string is used, falling back to the method name when no member
// has parameters. An empty interpolationMethod disables the special case.
func (g Group) Labels(interpolationMethod string) []string {
	labels := make([]string, len(g.Members))

	methods := g.Methods()
	if interpolationMethod != "" && len(methods) == 1 && methods[0] == interpolationMethod {
		for i, m := range g.Members {
			n := len(placeholderPattern.FindAllString(m.Params, -1))
			labels[i] = fmt.Sprintf("param %d -> %d variable(s)", i, n)
		}
		return labels
	}

	allEmpty := true
	for _, m := range g.Members {
		if m.Params != report.NoParams {
			allEmpty = false
			break
		}
	}
	for i, m := range g.Members {
		if allEmpty {
			labels[i] = m.ID.Method
		} else {
			labels[i] = m.Params
		}
	}
	return labels
}

// FileName is the image file name for the group.
func (g Group) FileName(format string) string {
	return g.Key + "_comparison." + format
}

// Chart is the data of one bar chart.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Ticks  []string
	Values []float64
	Errors []float64
}

// Chart builds the chart for the group.
func (g Group) Chart(interpolationMethod string) Chart {
	unit := g.Unit()
	labels := g.Labels(interpolationMethod)

	c := Chart{
		Title:  "Benchmark: " + strings.Join(g.Methods(), ", "),
		XLabel: "Params",
		YLabel: unit,
		Ticks:  make([]string, len(g.Members)),
		Values: make([]float64, len(g.Members)),
		Errors: make([]float64, len(g.Members)),
	}
	for i, m := range g.Members {
		c.Ticks[i] = fmt.Sprintf("%s\n(%s %s)", labels[i], strconv.FormatFloat(m.Score, 'f', 6, 64), unit)
		c.Values[i] = m.Score
		c.Errors[i] = m.Error
	}
	return c
}
