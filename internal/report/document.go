package report

import (
	"fmt"

	apperrors "benchreport/internal/errors"
	"benchreport/internal/jmh"
	"benchreport/internal/utils"

	"github.com/spf13/afero"
)

// GraphsHeading opens the chart section.
const GraphsHeading = "## 📈 Benchmark Graphs"

// Graph is a rendered chart referenced from the document.
type Graph struct {
	Title string
	// Ref is the image path relative to the document, with forward slashes.
	Ref string
}

// Document is a complete report.
type Document struct {
	Options Options
	Rows    []Row
	Graphs  []Graph
}

// Build assembles a document from records and already rendered graphs.
func Build(records []jmh.Record, graphs []Graph, opts Options) Document {
	return Document{
		Options: opts,
		Rows:    Rows(records, opts),
		Graphs:  graphs,
	}
}

// Lines returns the document line by line.
func (d Document) Lines() []string {
	title := d.Options.Title
	if title == "" {
		title = DefaultTitle
	}
	header, rule := Header(d.Options)

	lines := []string{"# " + title, "", header, rule}
	for _, row := range d.Rows {
		lines = append(lines, row.Markdown(d.Options))
	}

	if d.Options.GenerateCharts {
		lines = append(lines, "\n---\n", GraphsHeading+"\n")
		for _, g := range d.Graphs {
			lines = append(lines,
				"### "+g.Title,
				fmt.Sprintf("![%s](%s)", g.Title, g.Ref),
				"",
			)
		}
	}

	return append(lines, d.footer())
}

func (d Document) footer() string {
	f := d.Options.Footer
	if f == (Footer{}) {
		f = DefaultFooter
	}
	return fmt.Sprintf("\n\n---\n\n## %s\n\n* [%s](%s)\n\n---\n", f.Heading, f.IndexLabel, f.IndexLink)
}

// Render returns the full Markdown text.
func (d Document) Render() string {
	return utils.JoinLines(d.Lines())
}

// Write creates the parent directory of path and overwrites path with the document.
func Write(fs afero.Fs, path string, d Document) error {
	if err := utils.WriteLines(fs, path, d.Lines()); err != nil {
		return &apperrors.WriteError{Path: path, Err: err}
	}
	return nil
}
