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
	techSubRatio = iota
	techSubPower
	techSubOverlap
	techSubCount
)

type techTabState struct {
	sub     int
	gearIdx int
}

func (m MainModel) updateTechTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "right", "]":
		m.techTab.sub = (m.techTab.sub + 1) % techSubCount
	case "left", "[":
		m.techTab.sub = (m.techTab.sub + techSubCount - 1) % techSubCount
	case "up", "k":
		if m.techTab.sub == techSubPower {
			m.cycleGear(-1)
		}
	case "down", "j":
		if m.techTab.sub == techSubPower {
			m.cycleGear(1)
		}
	}
	return m, nil
}

func (m *MainModel) cycleGear(delta int) {
	cfg := m.session.Config()
	n := cfg.NumChainrings() * cfg.NumSprockets()
	if n == 0 {
		return
	}
	m.techTab.gearIdx = (m.techTab.gearIdx + delta + n) % n
}

func (m MainModel) viewTechTab() string {
	if !m.session.Configured() {
		return m.section(m.strs.TechTitle, m.theme.Warn.Render(m.strs.NotConfigured))
	}
	matrix, err := m.session.Matrix()
	if err != nil {
		return m.section(m.strs.TechTitle, m.theme.StatusFail.Render(err.Error()))
	}

	subs := []string{m.strs.RatioTab, m.strs.PowerTab, m.strs.OverlapTab}
	var subBar []string
	for i, name := range subs {
		style := m.theme.Tab
		if i == m.techTab.sub {
			style = m.theme.ActiveTab
		}
		subBar = append(subBar, style.Render(name))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, subBar...)

	var body string
	switch m.techTab.sub {
	case techSubRatio:
		body = m.renderRatioChart(matrix)
	case techSubPower:
		body = m.renderPowerTable(matrix)
	case techSubOverlap:
		body = m.renderOverlapReport()
	}
	return m.section(m.strs.TechTitle, lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Dim.Render(m.wrapText(m.strs.TechIntro)),
		bar,
		"",
		body,
	))
}

func (m MainModel) renderRatioChart(matrix models.GearMatrix) string {
	maxRatio := 0.0
	for _, row := range matrix {
		for _, cell := range row {
			if cell.Ratio > maxRatio {
				maxRatio = cell.Ratio
			}
		}
	}

	lines := []string{
		m.theme.Header.Render(m.strs.RatioTitle),
		m.theme.Dim.Render(m.wrapText(m.strs.RatioExplanation)),
		"",
	}
	for _, row := range matrix {
		for _, cell := range row {
			barStyle := m.theme.Label
			if cell.Ratio >= config.OptimalRatioMin && cell.Ratio <= config.OptimalRatioMax {
				barStyle = m.theme.Optimal
			}
			marker := " "
			if cell.Crossing {
				barStyle = m.theme.Crossing
				marker = "x"
			}
			label := padCell(FormatGear(cell.Chainring, cell.Sprocket), 9)
			bar := barStyle.Render(renderBar(cell.Ratio, maxRatio, config.ChartBarWidth, "#"))
			lines = append(lines, fmt.Sprintf("%s %s %s %s", m.theme.Label.Render(label), marker, bar, m.theme.Value.Render(FormatRatio(cell.Ratio))))
		}
		lines = append(lines, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// selectedGear maps the flat selection index onto a matrix cell.
func (m MainModel) selectedGear(matrix models.GearMatrix) models.GearCell {
	cfg := m.session.Config()
	cols := cfg.NumSprockets()
	if cols == 0 || len(matrix) == 0 {
		return models.GearCell{}
	}
	idx := m.techTab.gearIdx
	i := idx / cols
	j := idx % cols
	if i >= len(matrix) {
		i = 0
	}
	return matrix[i][j]
}

func (m MainModel) renderPowerTable(matrix models.GearMatrix) string {
	cell := m.selectedGear(matrix)
	cfg := m.session.Config()

	header := []string{
		m.theme.Header.Render("RPM"),
		m.theme.Header.Render("km/h"),
		m.theme.Header.Render("W"),
	}
	rows := [][]string{header}
	for cad := config.PowerCurveCadenceMin; cad <= config.PowerCurveCadenceMax; cad += config.PowerCurveCadenceStep {
		speed := gear.SpeedKmh(cell.Ratio, cad, cfg.WheelCircumferenceMeters)
		power := gear.EstimatedPower(speed, 0)
		cadStyle := m.theme.Label
		if cad >= config.OptimalCadenceMin && cad <= config.OptimalCadenceMax {
			cadStyle = m.theme.Optimal
		}
		rows = append(rows, []string{
			cadStyle.Render(strconv.Itoa(cad)),
			m.theme.Value.Render(FormatSpeed(speed)),
			m.theme.Value.Render(fmt.Sprintf("%.1f", power)),
		})
	}

	lines := []string{
		m.theme.Header.Render(fmt.Sprintf(m.strs.PowerTitle, cell.Chainring, cell.Sprocket)),
		m.theme.Dim.Render(m.wrapText(m.strs.PowerExplanation)),
		"",
		renderGrid(rows),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m MainModel) renderOverlapReport() string {
	report, err := m.session.Overlap()
	if err != nil {
		return m.theme.StatusFail.Render(err.Error())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Header.Render(m.strs.OverlapTitle),
		"",
		m.renderOverlapText(report),
	)
}

// renderOverlapText renders the overlap report as locale-aware prose.
func (m MainModel) renderOverlapText(report models.OverlapReport) string {
	if len(report.Pairs) == 0 {
		return m.theme.Dim.Render(m.strs.OverlapNeedTwo)
	}

	var lines []string
	for _, pair := range report.Pairs {
		headerFmt := m.strs.OverlapPairFull
		if pair.Filtered {
			headerFmt = m.strs.OverlapPairFiltered
		}
		lines = append(lines, m.theme.Label.Render(fmt.Sprintf(headerFmt, pair.Chainring1, pair.Chainring2)))
		if pair.HasOverlap {
			lines = append(lines,
				m.theme.Value.Render(fmt.Sprintf(m.strs.OverlapRangeLine, pair.Start, pair.End)),
				m.theme.Value.Render(fmt.Sprintf(m.strs.OverlapPctLine, pair.Pct)),
				m.theme.Dim.Render(m.wrapText(m.strs.OverlapEval[pair.Rating])),
			)
		} else {
			lines = append(lines, m.theme.Warn.Render(m.strs.OverlapNone))
		}
		lines = append(lines, "")
	}

	if report.HasUsableRange {
		lines = append(lines, m.theme.Value.Render(fmt.Sprintf(m.strs.UsableRangeLine, report.UsableRange)))
	} else {
		lines = append(lines, m.theme.Warn.Render(m.strs.UsableRangeMissing))
	}
	lines = append(lines,
		m.theme.Value.Render(fmt.Sprintf(m.strs.TotalRangeLine, report.TotalRange)),
		m.theme.Dim.Render(m.wrapText(m.strs.RangeEval[report.TotalRating])),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
