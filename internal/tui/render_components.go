package tui

import (
	"strings"

	"github.com/akyairhashvil/nusui/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// padCell right-pads a rendered cell to a fixed display width.
// Styled content is measured by its visible width, not byte length.
func padCell(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// renderGrid renders a fixed-width table from pre-styled cells.
func renderGrid(rows [][]string) string {
	var out []string
	for _, row := range rows {
		var cells []string
		for _, cell := range row {
			cells = append(cells, padCell(cell, config.TableCellWidth))
		}
		out = append(out, strings.Join(cells, " "))
	}
	return strings.Join(out, "\n")
}

// renderBar renders a horizontal bar scaled to max, with the given
// fill rune.
func renderBar(value, max float64, width int, fill string) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	n := int(value / max * float64(width))
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return strings.Repeat(fill, n)
}

// section renders titled content inside a rounded box sized to the
// terminal.
func (m MainModel) section(title, content string) string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	innerWidth := m.contentWidth() - lipgloss.Width(frame.Render(""))
	if innerWidth < 1 {
		innerWidth = 1
	}
	body := content
	if title != "" {
		body = m.theme.Header.Width(innerWidth).Render(title) + "\n" + content
	}
	return frame.Width(innerWidth).Render(body)
}

func (m MainModel) contentWidth() int {
	w := m.width
	if w < config.MinContentWidth {
		w = config.MinContentWidth
	}
	return w
}

// wrapText wraps prose to the content width, preserving blank lines.
func (m MainModel) wrapText(s string) string {
	width := m.contentWidth() - 6
	if width < 20 {
		width = 20
	}
	return ansi.Wrap(s, width, "")
}
