package report

import (
	"sort"
	"strconv"
	"strings"

	"benchreport/internal/jmh"
)

// NoParams is shown for records without parameters.
const NoParams = "-"

// FormatNumber renders a numeric value with 10 decimal places and passes
// anything else through as raw text.
func FormatNumber(v jmh.Value) string {
	return formatFixed(v, 10)
}

// FormatParams renders params as "k=v, k=v", or NoParams when empty.
// With escape set, "$" is escaped so Markdown renderers do not treat it as math.
func FormatParams(params jmh.Params, escape bool) string {
	if len(params) == 0 {
		return NoParams
	}
	pairs := make([]string, len(params))
	for i, p := range params {
		pairs[i] = p.Name + "=" + p.Value
	}
	out := strings.Join(pairs, ", ")
	if escape {
		out = strings.ReplaceAll(out, "$", `\$`)
	}
	return out
}

// FormatPercentiles renders percentiles as "P50.0=1.234568, P99.0=5.000000",
// ordered by the numeric value of the key.
func FormatPercentiles(percentiles jmh.Percentiles) string {
	sorted := make(jmh.Percentiles, len(percentiles))
	copy(sorted, percentiles)
	sort.SliceStable(sorted, func(i, j int) bool {
		ki, iok := parseKey(sorted[i].Key)
		kj, jok := parseKey(sorted[j].Key)
		switch {
		case iok && jok:
			return ki < kj
		case iok != jok:
			return iok
		default:
			return sorted[i].Key < sorted[j].Key
		}
	})

	parts := make([]string, len(sorted))
	for i, p := range sorted {
		parts[i] = "P" + p.Key + "=" + formatFixed(p.Value, 6)
	}
	return strings.Join(parts, ", ")
}

func formatFixed(v jmh.Value, prec int) string {
	if f, ok := v.Float(); ok {
		return strconv.FormatFloat(f, 'f', prec, 64)
	}
	return v.String()
}

func parseKey(key string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(key), 64)
	return f, err == nil
}
