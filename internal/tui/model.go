package tui

import (
	"fmt"

	"github.com/akyairhashvil/nusui/internal/catalog"
	"github.com/akyairhashvil/nusui/internal/config"
	"github.com/akyairhashvil/nusui/internal/locale"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab identifies a top-level screen.
type Tab int

const (
	TabIntro Tab = iota
	TabConfig
	TabVisual
	TabRecommend
	TabTechnical
)

// Mode selects how much detail the interface exposes.
type Mode int

const (
	ModeBeginner Mode = iota
	ModeTechnical
)

// Overlay identifies a full-screen layer drawn over the active tab.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayHelp
	OverlayAbout
	OverlayDebug
	OverlayManual
)

// MainModel is the root bubbletea model.
type MainModel struct {
	width  int
	height int

	theme Theme
	loc   locale.Locale
	strs  locale.Strings
	mode  Mode

	tab     Tab
	overlay Overlay

	session *Session

	configTab    configTabState
	visualTab    visualTabState
	recommendTab recommendTabState
	techTab      techTabState
	manual       manualState

	statusMessage string
	statusIsError bool
}

func NewMainModel(cat *catalog.Catalog) MainModel {
	return MainModel{
		theme:        CurrentTheme,
		loc:          locale.EN,
		strs:         locale.For(locale.EN),
		mode:         ModeBeginner,
		tab:          TabIntro,
		session:      NewSession(cat),
		recommendTab: newRecommendTabState(),
		manual:       newManualState(),
	}
}

// WithLocale returns a copy of the model starting in the given locale.
func (m MainModel) WithLocale(l locale.Locale) MainModel {
	m.loc = l
	m.strs = locale.For(l)
	return m
}

func (m MainModel) Init() tea.Cmd {
	return textinput.Blink
}

// visibleTabs lists the tabs reachable in the current mode. The
// technical tab only exists in technical mode.
func (m MainModel) visibleTabs() []Tab {
	tabs := []Tab{TabIntro, TabConfig, TabVisual, TabRecommend}
	if m.mode == ModeTechnical {
		tabs = append(tabs, TabTechnical)
	}
	return tabs
}

func (m *MainModel) cycleTab(delta int) {
	tabs := m.visibleTabs()
	idx := 0
	for i, t := range tabs {
		if t == m.tab {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(tabs)) % len(tabs)
	m.tab = tabs[idx]
	m.statusMessage = ""
}

func (m *MainModel) setStatus(msg string, isError bool) {
	m.statusMessage = msg
	m.statusIsError = isError
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.overlay == OverlayManual {
			return m.updateManual(msg)
		}
		if m.overlay != OverlayNone {
			switch msg.String() {
			case "esc", "q", "?", "x":
				m.overlay = OverlayNone
			}
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.cycleTab(1)
		return m, nil
	case "shift+tab":
		m.cycleTab(-1)
		return m, nil
	case "m":
		if m.mode == ModeBeginner {
			m.mode = ModeTechnical
		} else {
			m.mode = ModeBeginner
			if m.tab == TabTechnical {
				m.tab = TabRecommend
			}
		}
		return m, nil
	case "l":
		m.loc = locale.Next(m.loc)
		m.strs = locale.For(m.loc)
		return m, nil
	case "?":
		m.overlay = OverlayHelp
		return m, nil
	case "a":
		m.overlay = OverlayAbout
		return m, nil
	case "x":
		if m.session.Configured() {
			m.overlay = OverlayDebug
		} else {
			m.setStatus(m.strs.NotConfigured, true)
		}
		return m, nil
	case "e":
		return m.exportReport()
	}

	switch m.tab {
	case TabConfig:
		return m.updateConfigTab(msg)
	case TabVisual:
		return m.updateVisualTab(msg)
	case TabRecommend:
		return m.updateRecommendTab(msg)
	case TabTechnical:
		return m.updateTechTab(msg)
	}
	return m, nil
}

func (m MainModel) exportReport() (tea.Model, tea.Cmd) {
	if !m.session.Configured() {
		m.setStatus(m.strs.NotConfigured, true)
		return m, nil
	}
	path, err := GeneratePDFReport(m.session, m.strs)
	if err != nil {
		m.setStatus(fmt.Sprintf("PDF: %v", err), true)
		return m, nil
	}
	m.setStatus(fmt.Sprintf("PDF: %s", path), false)
	return m, nil
}

func (m MainModel) View() string {
	var body string
	switch m.overlay {
	case OverlayHelp:
		body = m.viewHelp()
	case OverlayAbout:
		body = m.viewAbout()
	case OverlayDebug:
		body = m.viewDebugMatrix()
	case OverlayManual:
		body = m.viewManual()
	default:
		switch m.tab {
		case TabIntro:
			body = m.viewIntro()
		case TabConfig:
			body = m.viewConfigTab()
		case TabVisual:
			body = m.viewVisualTab()
		case TabRecommend:
			body = m.viewRecommendTab()
		case TabTechnical:
			body = m.viewTechTab()
		}
	}

	return m.theme.Base.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	))
}

func (m MainModel) renderHeader() string {
	modeName := m.strs.ModeBeginner
	if m.mode == ModeTechnical {
		modeName = m.strs.ModeTechnical
	}
	title := fmt.Sprintf("%s  |  %s: %s  |  v%s", m.strs.AppTitle, m.strs.ModeLabel, modeName, versionLabel())

	var tabs []string
	names := map[Tab]string{
		TabIntro:     m.strs.TabIntro,
		TabConfig:    m.strs.TabConfig,
		TabVisual:    m.strs.TabVisual,
		TabRecommend: m.strs.TabRecommend,
		TabTechnical: m.strs.TabTechnical,
	}
	for _, t := range m.visibleTabs() {
		style := m.theme.Tab
		if t == m.tab && m.overlay == OverlayNone {
			style = m.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(names[t]))
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	innerWidth := m.contentWidth() - lipgloss.Width(frame.Render(""))
	if innerWidth < 1 {
		innerWidth = 1
	}
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Header.Width(innerWidth).Render(truncate(title, innerWidth)),
		lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Top, tabs...)),
	)
	return frame.Width(innerWidth).Render(content)
}

func (m MainModel) renderFooter() string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	innerWidth := m.contentWidth() - lipgloss.Width(frame.Render(""))
	if innerWidth < 1 {
		innerWidth = 1
	}

	var content string
	if m.statusMessage != "" {
		style := m.theme.StatusOK
		if m.statusIsError {
			style = m.theme.StatusFail
		}
		content = lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, style.Render(truncate(m.statusMessage, innerWidth)))
	} else if m.overlay == OverlayManual {
		content = m.theme.Dim.Render(m.strs.TeethPrompt)
	} else {
		hints := m.strs.KeyHints
		if m.width > 0 && m.width < config.CompactModeThreshold {
			hints = truncate(hints, innerWidth)
		}
		content = lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, m.theme.Dim.Render(hints))
	}
	return frame.Width(innerWidth).Render(content)
}

func (m MainModel) viewIntro() string {
	return m.section(m.strs.IntroTitle, m.theme.Label.Render(m.wrapText(m.strs.IntroText)))
}

func (m MainModel) viewHelp() string {
	return m.section(m.strs.HelpTitle, m.theme.Label.Render(m.wrapText(m.strs.HelpText)))
}

func (m MainModel) viewAbout() string {
	return m.section(m.strs.AboutTitle, m.theme.Label.Render(m.wrapText(m.strs.AboutText)))
}
