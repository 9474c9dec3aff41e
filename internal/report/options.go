// Package report turns benchmark records into a Markdown document.
package report

import "fmt"

// Preset names.
const (
	PresetFull   = "full"
	PresetParams = "params"
	PresetBasic  = "basic"
)

// Options selects the columns and sections of a report.
type Options struct {
	IncludeParams      bool
	IncludePercentiles bool
	GenerateCharts     bool
	// QualifiedNames renders the benchmark column as Class.method instead of method.
	QualifiedNames bool

	Title  string
	Footer Footer
}

// Footer is the trailing block that links back to the index page.
type Footer struct {
	Heading    string
	IndexLabel string
	IndexLink  string
}

// DefaultTitle is the document heading used when none is configured.
const DefaultTitle = "🧪 Benchmark Results"

// DefaultFooter links to ./index.md.
var DefaultFooter = Footer{
	Heading:    "📁 Related Files",
	IndexLabel: "Home",
	IndexLink:  "./index.md",
}

// PresetFor returns the options of a named preset.
func PresetFor(name string) (Options, error) {
	opts := Options{Title: DefaultTitle, Footer: DefaultFooter}
	switch name {
	case PresetFull, "":
		opts.IncludeParams = true
		opts.IncludePercentiles = true
		opts.GenerateCharts = true
		opts.QualifiedNames = true
	case PresetParams:
		opts.IncludeParams = true
		opts.QualifiedNames = true
	case PresetBasic:
	default:
		return Options{}, fmt.Errorf("unknown report variant %q (want %s, %s or %s)", name, PresetFull, PresetParams, PresetBasic)
	}
	return opts, nil
}
