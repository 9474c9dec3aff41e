package ui

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderMarkdown renders a Markdown document for the terminal. The input is
// returned unchanged if it cannot be rendered.
func RenderMarkdown(text string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return out
}

// Mark tags a table cell for highlighting.
type Mark int

const (
	MarkNone Mark = iota
	MarkRegression
	MarkImprovement
)

// Table renders rows under headers with a rounded border. marks, when not
// nil, selects a highlight per row.
func Table(headers []string, rows [][]string, marks []Mark) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			if row >= 0 && row < len(marks) {
				switch marks[row] {
				case MarkRegression:
					return regressionStyle
				case MarkImprovement:
					return improvementStyle
				}
			}
			return tableCellStyle
		})
	return t.String()
}
