package tui

import (
	"fmt"

	"github.com/akyairhashvil/nusui/internal/config"
	"github.com/akyairhashvil/nusui/internal/models"
	"github.com/akyairhashvil/nusui/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	recommendFieldSpeed = iota
	recommendFieldSlope
	recommendFieldCount
)

type recommendTabState struct {
	focused     int
	targetSpeed float64
	slope       float64
	result      *models.RecommendationResult
	resultErr   error
}

func newRecommendTabState() recommendTabState {
	return recommendTabState{
		targetSpeed: config.DefaultTargetSpeed,
		slope:       config.DefaultSlope,
	}
}

func (m MainModel) updateRecommendTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.recommendTab.focused > 0 {
			m.recommendTab.focused--
		}
	case "down", "j":
		if m.recommendTab.focused < recommendFieldCount-1 {
			m.recommendTab.focused++
		}
	case "left":
		m.adjustRecommendField(-1)
	case "right":
		m.adjustRecommendField(1)
	case "enter", " ":
		return m.computeRecommendation()
	}
	return m, nil
}

func (m *MainModel) adjustRecommendField(delta int) {
	switch m.recommendTab.focused {
	case recommendFieldSpeed:
		m.recommendTab.targetSpeed = util.ClampFloat(m.recommendTab.targetSpeed+float64(delta), config.MinTargetSpeed, config.MaxTargetSpeed)
	case recommendFieldSlope:
		m.recommendTab.slope = util.ClampFloat(m.recommendTab.slope+float64(delta), config.MinSlope, config.MaxSlope)
	}
	m.recommendTab.result = nil
	m.recommendTab.resultErr = nil
}

func (m MainModel) computeRecommendation() (tea.Model, tea.Cmd) {
	if !m.session.Configured() {
		m.setStatus(m.strs.NotConfigured, true)
		return m, nil
	}
	query := models.RecommendationQuery{
		TargetSpeedKmh: m.recommendTab.targetSpeed,
		SlopePercent:   m.recommendTab.slope,
		CadenceRPM:     m.session.CadenceRPM(),
	}
	result, err := m.session.Recommend(query)
	if err != nil {
		m.recommendTab.result = nil
		m.recommendTab.resultErr = err
		return m, nil
	}
	m.recommendTab.result = &result
	m.recommendTab.resultErr = nil
	return m, nil
}

func (m MainModel) viewRecommendTab() string {
	field := func(idx int, label, value string) string {
		lead := "  "
		labelStyle := m.theme.Label
		if idx == m.recommendTab.focused {
			lead = "> "
			labelStyle = m.theme.Focused
		}
		return lead + labelStyle.Render(label+": ") + m.theme.Value.Render(value)
	}

	rows := []string{
		field(recommendFieldSpeed, m.strs.TargetSpeedLabel, FormatSpeed(m.recommendTab.targetSpeed)),
		field(recommendFieldSlope, m.strs.SlopeLabel, FormatPercent(m.recommendTab.slope)),
		m.theme.Dim.Render("  " + m.strs.SlopeHint),
		"",
		m.theme.Dim.Render("  " + m.strs.CalculateHint),
	}

	if m.recommendTab.resultErr != nil {
		rows = append(rows, "", m.theme.StatusFail.Render(m.recommendTab.resultErr.Error()))
	} else if r := m.recommendTab.result; r != nil {
		rows = append(rows, "", m.renderRecommendation(*r))
	}
	return m.section(m.strs.RecommendTitle, lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m MainModel) renderRecommendation(r models.RecommendationResult) string {
	cfg := m.session.Config()
	rows := []string{
		m.theme.Optimal.Render(fmt.Sprintf(m.strs.RecommendedGear, r.Chainring, r.Sprocket)),
		m.theme.Label.Render(fmt.Sprintf(m.strs.UseGearLine,
			chainringPosition(m.strs, cfg, r.ChainringIdx), cfg.NumChainrings(),
			r.SprocketIdx+1, cfg.NumSprockets())),
		"",
		m.theme.Label.Render(m.strs.EstimatedSpeed+": ") + m.theme.Value.Render(FormatSpeed(r.SpeedKmh)+" km/h"),
		m.theme.Label.Render(m.strs.GearRatioLabel+": ") + m.theme.Value.Render(FormatRatio(r.Ratio)),
		m.theme.Label.Render(m.strs.DevelopmentLabel+": ") + m.theme.Value.Render(FormatDevelopment(r.DevelopmentMeters)),
	}
	if r.Crossing {
		rows = append(rows, "", m.theme.Warn.Render(m.wrapText(m.strs.CrossingWarning)))
		if reason, ok := m.strs.CrossingReasons[r.Reason]; ok {
			rows = append(rows, m.theme.Crossing.Render(m.wrapText(reason)))
		}
	}
	rows = append(rows, "", m.theme.Label.Render(m.strs.AdviceLabel+": ")+m.theme.Safe.Render(m.wrapText(m.strs.Advice[r.Advice])))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
