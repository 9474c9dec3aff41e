package benchmark

import "fmt"

// ModeThroughput is the only JMH mode where a higher score is better.
const ModeThroughput = "thrpt"

type Comparison struct {
	Result
	Prev        float64
	Curr        float64
	Diff        float64 // Percentage change
	Regression  bool
	Improvement bool
}

// HigherIsBetter reports whether a rising score is an improvement in mode.
func HigherIsBetter(mode string) bool {
	return mode == ModeThroughput
}

// Compare runs comparison between two runs.
// It returns a list of comparisons for benchmarks present in both runs, in
// the order of curr. A change worse than threshold percent is a regression;
// a change better than threshold percent is an improvement.
func Compare(prev, curr Run, threshold float64) []Comparison {
	prevMap := make(map[string]Result)
	for _, r := range prev.Results {
		prevMap[r.Key()] = r
	}

	var comparisons []Comparison
	for _, c := range curr.Results {
		p, ok := prevMap[c.Key()]
		if !ok {
			continue
		}
		comp := Comparison{
			Result: c,
			Prev:   p.Score,
			Curr:   c.Score,
		}
		if p.Score != 0 {
			comp.Diff = (c.Score - p.Score) / p.Score * 100
		}

		worse := comp.Diff
		if HigherIsBetter(c.Mode) {
			worse = -worse
		}
		comp.Regression = worse > threshold
		comp.Improvement = -worse > threshold

		comparisons = append(comparisons, comp)
	}
	return comparisons
}

// Regressions filters the comparisons flagged as regressions.
func Regressions(comps []Comparison) []Comparison {
	var out []Comparison
	for _, c := range comps {
		if c.Regression {
			out = append(out, c)
		}
	}
	return out
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s [%s] %s: %+.2f%%", c.Benchmark, c.Params, c.Mode, c.Diff)
}
