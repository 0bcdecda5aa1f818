package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func NewUnstyledTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderHeader(false).
		Headers(headers...)
}

// NewTable creates a bordered table with a highlighted header and alternating row
// colours.
func NewTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case row%2 == 0:
				return RowStyle
			default:
				return RowStyleOdd
			}
		}).
		Headers(headers...)
}

// RenderTable renders rows below headers in a single call. Plain tables drop the
// borders and colours, for piping into other tools.
func RenderTable(headers []string, rows [][]string, plain bool) string {
	if plain {
		return NewUnstyledTable(headers...).Rows(rows...).Render()
	}

	return NewTable(headers...).Rows(rows...).Render()
}
