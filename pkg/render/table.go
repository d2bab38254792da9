package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vidtools/yt-extract/internal/domain"
)

// Supported table formats.
const (
	FormatMarkdown = "markdown"
	FormatGrid     = "grid"
)

// Formats lists the accepted -format values.
func Formats() []string {
	return []string{FormatMarkdown, FormatGrid}
}

// ValidFormat reports whether format is a known table format.
func ValidFormat(format string) bool {
	switch format {
	case FormatMarkdown, FormatGrid:
		return true
	}
	return false
}

// Render builds a table for the given videos and column selection. Markdown
// output escapes pipes in cell values so the table stays parseable.
func Render(videos []domain.Video, columnIDs []string, format string) (string, error) {
	cols, err := Resolve(columnIDs)
	if err != nil {
		return "", err
	}

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Label
	}

	rows := make([][]string, len(videos))
	for i, v := range videos {
		row := make([]string, len(cols))
		for j, c := range cols {
			cell := c.Extract(v)
			if format == FormatMarkdown {
				cell = escapePipes(cell)
			}
			row[j] = cell
		}
		rows[i] = row
	}

	switch format {
	case FormatMarkdown:
		return markdownTable(headers, rows), nil
	case FormatGrid:
		return gridTable(headers, rows), nil
	default:
		return "", fmt.Errorf("unknown table format %q (expected one of %s)", format, strings.Join(Formats(), ", "))
	}
}

func markdownTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		StyleFunc(cellStyle).
		Headers(headers...).
		Rows(rows...)
	return t.Render()
}

func gridTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.ASCIIBorder()).
		BorderRow(true).
		StyleFunc(cellStyle).
		Headers(headers...).
		Rows(rows...)
	return t.Render()
}

func cellStyle(int, int) lipgloss.Style {
	return lipgloss.NewStyle().Padding(0, 1)
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
