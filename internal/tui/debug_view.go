package tui

import (
	"fmt"
	"strconv"

	"github.com/akyairhashvil/nusui/internal/gear"
	"github.com/charmbracelet/lipgloss"
)

// viewDebugMatrix shows the raw crossing classification, one cell per
// combination, plus the thresholds that produced it.
func (m MainModel) viewDebugMatrix() string {
	cfg := m.session.Config()
	matrix, err := m.session.Matrix()
	if err != nil {
		return m.section(m.strs.DebugTitle, m.theme.StatusFail.Render(err.Error()))
	}

	header := []string{m.theme.Dim.Render("")}
	for _, s := range cfg.Sprockets {
		header = append(header, m.theme.Header.Render(strconv.Itoa(s)+"T"))
	}
	rows := [][]string{header}
	for i, row := range matrix {
		cells := []string{m.theme.Value.Render(strconv.Itoa(cfg.Chainrings[i]) + "T")}
		for _, cell := range row {
			if cell.Crossing {
				cells = append(cells, m.theme.Crossing.Render("X"))
			} else {
				cells = append(cells, m.theme.Safe.Render("O"))
			}
		}
		rows = append(rows, cells)
	}

	th := gear.ThresholdsFor(cfg)
	lines := []string{
		m.theme.Label.Render(fmt.Sprintf(m.strs.DebugChainrings, cfg.Chainrings)),
		m.theme.Label.Render(fmt.Sprintf(m.strs.DebugSprockets, cfg.Sprockets)),
		"",
		renderGrid(rows),
		"",
		m.theme.Dim.Render(fmt.Sprintf("extreme=%d large=%d small=%d medium_large=%d medium_small=%d",
			th.ExtremeCount, th.ExtremeCountLarge, th.ExtremeCountSmall, th.MediumExtremeLarge, th.MediumExtremeSmall)),
		"",
		m.theme.Dim.Render(m.wrapText(m.strs.DebugLegend)),
	}
	return m.section(m.strs.DebugTitle, lipgloss.JoinVertical(lipgloss.Left, lines...))
}
