package tui

import (
	"fmt"
	"strconv"

	"github.com/akyairhashvil/nusui/internal/config"
	"github.com/akyairhashvil/nusui/internal/gear"
	"github.com/akyairhashvil/nusui/internal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	visualSubTable = iota
	visualSubSpeed
	visualSubDevelopment
	visualSubCount
)

type visualTabState struct {
	sub int
}

func (m MainModel) updateVisualTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "right", "]":
		m.visualTab.sub = (m.visualTab.sub + 1) % visualSubCount
	case "left", "[":
		m.visualTab.sub = (m.visualTab.sub + visualSubCount - 1) % visualSubCount
	}
	return m, nil
}

func (m MainModel) viewVisualTab() string {
	if !m.session.Configured() {
		return m.section("", m.theme.Warn.Render(m.strs.NotConfigured))
	}
	matrix, err := m.session.Matrix()
	if err != nil {
		return m.section("", m.theme.StatusFail.Render(err.Error()))
	}

	subs := []string{m.strs.VisualTableTab, m.strs.VisualSpeedTab, m.strs.VisualDevTab}
	var subBar []string
	for i, name := range subs {
		style := m.theme.Tab
		if i == m.visualTab.sub {
			style = m.theme.ActiveTab
		}
		subBar = append(subBar, style.Render(name))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, subBar...)

	var body string
	switch m.visualTab.sub {
	case visualSubTable:
		body = m.renderGearTable(matrix)
	case visualSubSpeed:
		body = m.renderSpeedChart(matrix)
	case visualSubDevelopment:
		body = m.renderDevelopment(matrix)
	}
	return m.section("", lipgloss.JoinVertical(lipgloss.Left, bar, "", body))
}

func (m MainModel) renderGearTable(matrix models.GearMatrix) string {
	cfg := m.session.Config()

	header := []string{m.theme.Dim.Render("")}
	for _, s := range cfg.Sprockets {
		header = append(header, m.theme.Header.Render(strconv.Itoa(s)+"T"))
	}
	rows := [][]string{header}
	for i, row := range matrix {
		cells := []string{m.theme.Value.Render(strconv.Itoa(cfg.Chainrings[i]) + "T")}
		for _, cell := range row {
			if cell.Crossing {
				cells = append(cells, m.theme.Crossing.Render(config.CrossingMask))
			} else {
				cells = append(cells, m.theme.Safe.Render(FormatSpeed(cell.SpeedKmh)))
			}
		}
		rows = append(rows, cells)
	}

	crossings, total := gear.CountCrossings(matrix)
	lines := []string{
		m.theme.Header.Render(fmt.Sprintf(m.strs.GearTableTitle, m.session.CadenceRPM())),
		"",
		renderGrid(rows),
		"",
		m.theme.Dim.Render(m.wrapText(fmt.Sprintf(m.strs.GearTableNote, cfg.WheelSize, cfg.WheelCircumferenceMeters))),
	}
	if crossings > 0 {
		lines = append(lines, "", m.theme.Warn.Render(m.wrapText(fmt.Sprintf(m.strs.CrossingCount, crossings, total))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m MainModel) renderSpeedChart(matrix models.GearMatrix) string {
	maxSpeed := 0.0
	for _, row := range matrix {
		for _, cell := range row {
			if cell.SpeedKmh > maxSpeed {
				maxSpeed = cell.SpeedKmh
			}
		}
	}

	lines := []string{
		m.theme.Header.Render(fmt.Sprintf(m.strs.SpeedChartTitle, m.session.CadenceRPM())),
		"",
	}
	for _, row := range matrix {
		shown := row
		if len(shown) > config.ChartRows {
			shown = shown[:config.ChartRows]
		}
		for _, cell := range shown {
			marker := m.theme.Safe.Render("o")
			barStyle := m.theme.Safe
			if cell.Crossing {
				marker = m.theme.Crossing.Render("x")
				barStyle = m.theme.Crossing
			}
			label := padCell(FormatGear(cell.Chainring, cell.Sprocket), 9)
			bar := barStyle.Render(renderBar(cell.SpeedKmh, maxSpeed, config.ChartBarWidth, "="))
			lines = append(lines, fmt.Sprintf("%s %s %s %s", m.theme.Label.Render(label), marker, bar, m.theme.Value.Render(FormatSpeed(cell.SpeedKmh))))
		}
		lines = append(lines, "")
	}
	lines = append(lines, m.theme.Dim.Render(m.strs.SpeedChartLegend))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m MainModel) renderDevelopment(matrix models.GearMatrix) string {
	maxDev := 0.0
	for _, row := range matrix {
		for _, cell := range row {
			if cell.DevelopmentMeters > maxDev {
				maxDev = cell.DevelopmentMeters
			}
		}
	}

	lines := []string{
		m.theme.Header.Render(m.strs.DevTitle),
		m.theme.Dim.Render(m.wrapText(m.strs.DevBlurb)),
		"",
	}
	for _, row := range matrix {
		for _, cell := range row {
			barStyle := m.theme.Safe
			marker := " "
			if cell.Crossing {
				barStyle = m.theme.Crossing
				marker = "x"
			}
			label := padCell(FormatGear(cell.Chainring, cell.Sprocket), 9)
			bar := barStyle.Render(renderBar(cell.DevelopmentMeters, maxDev, config.ChartBarWidth, "#"))
			lines = append(lines, fmt.Sprintf("%s %s %s %s", m.theme.Label.Render(label), marker, bar, m.theme.Value.Render(FormatDevelopment(cell.DevelopmentMeters))))
		}
		lines = append(lines, "")
	}
	lines = append(lines, m.theme.Dim.Render(m.strs.DevLegend))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
