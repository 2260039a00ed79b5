package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name       string
	Base       lipgloss.Style
	Border     lipgloss.Color
	Header     lipgloss.Style
	Tab        lipgloss.Style
	ActiveTab  lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Safe       lipgloss.Style
	Crossing   lipgloss.Style
	Optimal    lipgloss.Style
	Input      lipgloss.Style
	Focused    lipgloss.Style
	Dim        lipgloss.Style
	Highlight  lipgloss.Style
	Warn       lipgloss.Style
	StatusOK   lipgloss.Style
	StatusFail lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Border:     lipgloss.Color("63"),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Tab:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		ActiveTab:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(0, 1).Underline(true),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Safe:       lipgloss.NewStyle().Foreground(lipgloss.Color("41")),
		Crossing:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Optimal:    lipgloss.NewStyle().Foreground(lipgloss.Color("41")).Bold(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Warn:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		StatusOK:   lipgloss.NewStyle().Foreground(lipgloss.Color("41")),
		StatusFail: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	},
	"dracula": {
		Name:       "Dracula",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Border:     lipgloss.Color("62"),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center),
		Tab:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 1),
		ActiveTab:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Padding(0, 1).Underline(true),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		Safe:       lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Crossing:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Optimal:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Warn:       lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		StatusOK:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		StatusFail: lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
