package tui

import (
	"fmt"

	"github.com/akyairhashvil/nusui/internal/gear"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Rows of the configuration form, top to bottom.
const (
	configRowBikeType = iota
	configRowWheel
	configRowCadence
	configRowManual
	configRowVisualize
	configRowCount
)

type configTabState struct {
	focusedRow int
}

func (m MainModel) updateConfigTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.configTab.focusedRow > 0 {
			m.configTab.focusedRow--
		}
	case "down", "j":
		if m.configTab.focusedRow < configRowCount-1 {
			m.configTab.focusedRow++
		}
	case "left":
		m.adjustConfigRow(-1)
	case "right":
		m.adjustConfigRow(1)
	case "enter", " ":
		switch m.configTab.focusedRow {
		case configRowManual:
			return m.openManual()
		case configRowVisualize:
			return m.visualize()
		}
	}
	return m, nil
}

func (m *MainModel) adjustConfigRow(delta int) {
	switch m.configTab.focusedRow {
	case configRowBikeType:
		m.session.CycleBikeType(delta)
	case configRowWheel:
		m.session.CycleWheel(delta)
	case configRowCadence:
		m.session.AdjustCadence(delta)
	}
	m.statusMessage = ""
}

func (m MainModel) visualize() (tea.Model, tea.Cmd) {
	bt := m.session.BikeType()
	if len(bt.Chainrings) == 0 && !m.session.Configured() {
		// The custom type has no preset gearing.
		return m.openManual()
	}
	if len(bt.Chainrings) > 0 {
		if err := m.session.ApplyPreset(); err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
	}
	m.tab = TabVisual
	m.setStatus(m.strs.ConfigSaved, false)
	return m, nil
}

func (m MainModel) viewConfigTab() string {
	var rows []string

	row := func(idx int, label, value string) string {
		lead := "  "
		labelStyle := m.theme.Label
		if idx == m.configTab.focusedRow {
			lead = "> "
			labelStyle = m.theme.Focused
		}
		return lead + labelStyle.Render(label+": ") + m.theme.Value.Render(value)
	}
	button := func(idx int, label string) string {
		style := m.theme.Dim
		lead := "  "
		if idx == m.configTab.focusedRow {
			style = m.theme.Focused
			lead = "> "
		}
		return lead + style.Render("[ "+label+" ]")
	}

	bt := m.session.BikeType()
	bikeName := m.strs.BikeTypeNames[bt.Value]
	if bikeName == "" {
		bikeName = bt.Value
	}

	rows = append(rows,
		m.theme.Dim.Render(m.wrapText(m.strs.ConfigIntro)),
		"",
		row(configRowBikeType, m.strs.BikeTypeLabel, bikeName),
		row(configRowWheel, m.strs.WheelSizeLabel, m.session.WheelKey()),
		row(configRowCadence, m.strs.CadenceLabel, fmt.Sprintf("%d RPM", m.session.CadenceRPM())),
		m.theme.Dim.Render("  "+m.strs.CadenceHint),
		"",
		button(configRowManual, m.strs.ManualButton),
		button(configRowVisualize, m.strs.VisualizeButton),
	)

	if m.session.Configured() {
		cfg := m.session.Config()
		rows = append(rows, "",
			"  "+m.theme.Label.Render(m.strs.ChainringsLabel+": ")+m.theme.Value.Render(FormatTeethList(cfg.Chainrings)),
			"  "+m.theme.Label.Render(m.strs.SprocketsLabel+": ")+m.theme.Value.Render(FormatTeethList(cfg.Sprockets)),
		)
	}

	return m.section(m.strs.ConfigTitle, lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// --- Manual gearing entry ---

const (
	manualFieldChainrings = iota
	manualFieldSprockets
)

type manualState struct {
	inputs   [2]textinput.Model
	focused  int
	errorMsg string
}

func newManualState() manualState {
	var s manualState
	for i := range s.inputs {
		ti := textinput.New()
		ti.CharLimit = 60
		ti.Width = 46
		s.inputs[i] = ti
	}
	s.inputs[manualFieldChainrings].Placeholder = "24,34,42"
	s.inputs[manualFieldSprockets].Placeholder = "11,13,15,18,21,24,28"
	return s
}

func (m MainModel) openManual() (tea.Model, tea.Cmd) {
	m.manual.errorMsg = ""
	if m.session.Configured() {
		cfg := m.session.Config()
		m.manual.inputs[manualFieldChainrings].SetValue(FormatTeethList(cfg.Chainrings))
		m.manual.inputs[manualFieldSprockets].SetValue(FormatTeethList(cfg.Sprockets))
	}
	m.manual.focused = manualFieldChainrings
	m.manual.inputs[manualFieldChainrings].Focus()
	m.manual.inputs[manualFieldSprockets].Blur()
	m.overlay = OverlayManual
	return m, textinput.Blink
}

func (m MainModel) updateManual(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.overlay = OverlayNone
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.manual.inputs[m.manual.focused].Blur()
		m.manual.focused = 1 - m.manual.focused
		m.manual.inputs[m.manual.focused].Focus()
		return m, textinput.Blink
	case "enter":
		return m.submitManual()
	}

	var cmd tea.Cmd
	m.manual.inputs[m.manual.focused], cmd = m.manual.inputs[m.manual.focused].Update(msg)
	return m, cmd
}

func (m MainModel) submitManual() (tea.Model, tea.Cmd) {
	chainrings, err := gear.ParseTeeth(m.manual.inputs[manualFieldChainrings].Value())
	if err != nil {
		m.manual.errorMsg = err.Error()
		return m, nil
	}
	sprockets, err := gear.ParseTeeth(m.manual.inputs[manualFieldSprockets].Value())
	if err != nil {
		m.manual.errorMsg = err.Error()
		return m, nil
	}
	if len(chainrings) == 0 || len(sprockets) == 0 {
		m.manual.errorMsg = m.strs.NeedGears
		return m, nil
	}
	if err := m.session.SetGearing(chainrings, sprockets); err != nil {
		m.manual.errorMsg = err.Error()
		return m, nil
	}
	m.overlay = OverlayNone
	m.tab = TabVisual
	m.setStatus(m.strs.ConfigSaved, false)
	return m, nil
}

func (m MainModel) viewManual() string {
	field := func(idx int, label, example string) string {
		labelStyle := m.theme.Label
		if idx == m.manual.focused {
			labelStyle = m.theme.Focused
		}
		return lipgloss.JoinVertical(
			lipgloss.Left,
			labelStyle.Render(label),
			m.theme.Input.Render(m.manual.inputs[idx].View()),
			m.theme.Dim.Render(example),
		)
	}

	rows := []string{
		field(manualFieldChainrings, m.strs.ChainringsLabel, m.strs.ChainringsExample),
		"",
		field(manualFieldSprockets, m.strs.SprocketsLabel, m.strs.SprocketsExample),
	}
	if m.manual.errorMsg != "" {
		rows = append(rows, "", m.theme.StatusFail.Render(m.manual.errorMsg))
	}
	return m.section(m.strs.ManualTitle, lipgloss.JoinVertical(lipgloss.Left, rows...))
}
