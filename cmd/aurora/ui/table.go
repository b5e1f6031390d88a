package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SceneTable renders static tabular data, used by the `aurora scenes`
// subcommand to print the catalog without entering the TUI.
type SceneTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewSceneTable creates a table with the given title and headers.
func NewSceneTable(title string, headers ...string) *SceneTable {
	return &SceneTable{
		Title:   title,
		Headers: headers,
	}
}

// AddRow appends a row.
func (t *SceneTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table with the provided styles.
func (t *SceneTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	writeRow := func(cells []string, style lipgloss.Style) {
		parts := make([]string, 0, len(cells))
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			parts = append(parts, padRight(cell, widths[i]))
		}
		sb.WriteString(style.Render(strings.Join(parts, "  ")))
		sb.WriteString("\n")
	}

	writeRow(t.Headers, styles.Bold)

	total := 0
	for _, w := range widths {
		total += w + 2
	}
	sb.WriteString(styles.Divider.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		writeRow(row, styles.Body)
	}

	return sb.String()
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
