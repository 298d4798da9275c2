// Package output renders human-readable summaries of hook runs.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/push-hooks/internal/shared"
)

// Row is one line of a status list.
type Row struct {
	Name   string
	Status string
	OK     bool
}

// ListRenderer provides list formatting.
type ListRenderer struct {
	titleStyle  lipgloss.Style
	itemStyle   lipgloss.Style
	bulletStyle lipgloss.Style
	okStyle     lipgloss.Style
	failStyle   lipgloss.Style
	bullet      string
	indent      string
}

// NewListRenderer creates a new list renderer with default styling.
func NewListRenderer() *ListRenderer {
	return &ListRenderer{
		titleStyle:  lipgloss.NewStyle().Bold(true).Foreground(shared.Mauve),
		itemStyle:   lipgloss.NewStyle().Foreground(shared.Text),
		bulletStyle: lipgloss.NewStyle().Foreground(shared.Blue),
		okStyle:     shared.SuccessStyle,
		failStyle:   shared.ErrorStyle,
		bullet:      "•",
		indent:      "  ",
	}
}

// RenderStatus formats rows in the order given, aligning the names and
// colouring each status by outcome.
func (l *ListRenderer) RenderStatus(title string, rows []Row) string {
	var sb strings.Builder

	if title != "" {
		sb.WriteString(l.titleStyle.Render(title))
		sb.WriteString("\n")
	}

	maxNameLen := 0
	for _, row := range rows {
		if len(row.Name) > maxNameLen {
			maxNameLen = len(row.Name)
		}
	}

	for _, row := range rows {
		sb.WriteString(l.indent)
		sb.WriteString(l.bulletStyle.Render(l.bullet))
		sb.WriteString(" ")
		sb.WriteString(l.itemStyle.Render(fmt.Sprintf("%-*s", maxNameLen, row.Name)))
		sb.WriteString("  ")
		if row.OK {
			sb.WriteString(l.okStyle.Render(row.Status))
		} else {
			sb.WriteString(l.failStyle.Render(row.Status))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
