// Package styles holds the lipgloss styles used for command output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#f4722b")

	Gray  = lipgloss.Color("#3e3e3e")
	White = lipgloss.Color("#cccccc")
	// Whiter is used for odd rows.
	Whiter = lipgloss.Color("#aaaaaa")

	Blu   = lipgloss.Color("#5885A2")
	Green = lipgloss.Color("#4d7455")

	Title = lipgloss.NewStyle().Bold(true).Foreground(Accent)

	HeaderStyle = lipgloss.NewStyle().Foreground(Blu).Bold(true).Align(lipgloss.Left).Padding(0, 1)
	RowStyle    = lipgloss.NewStyle().Foreground(White).Padding(0, 1)
	RowStyleOdd = lipgloss.NewStyle().Foreground(Whiter).Padding(0, 1)
	BorderStyle = lipgloss.NewStyle().Foreground(Gray)

	Label       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	Value       = lipgloss.NewStyle().Foreground(White)
	NoticeStyle = lipgloss.NewStyle().Foreground(Green)
)

// KeyValue renders a single "label: value" line.
func KeyValue(label string, value string) string {
	return Label.Render(label+":") + " " + Value.Render(value)
}
