package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func technicalModel(t *testing.T) MainModel {
	t.Helper()
	m := configuredModel(t)
	m = press(t, m, 'm')
	m.tab = TabTechnical
	return m
}

func TestTechTabRequiresConfiguration(t *testing.T) {
	m := setupTestModel(t)
	m = press(t, m, 'm')
	m.tab = TabTechnical
	if !strings.Contains(m.View(), m.strs.NotConfigured) {
		t.Fatalf("expected not-configured message")
	}
}

func TestRatioChartShowsExplanation(t *testing.T) {
	m := technicalModel(t)
	m.techTab.sub = techSubRatio
	view := m.View()
	if !strings.Contains(view, m.strs.RatioTitle) {
		t.Fatalf("expected ratio title")
	}
}

func TestPowerTableListsCadenceSteps(t *testing.T) {
	m := technicalModel(t)
	m.techTab.sub = techSubPower
	view := m.View()
	for _, cad := range []string{"60", "80", "108"} {
		if !strings.Contains(view, cad) {
			t.Fatalf("expected cadence %s in power table", cad)
		}
	}
}

func TestPowerTableGearSelectionWraps(t *testing.T) {
	m := technicalModel(t)
	m.techTab.sub = techSubPower
	cfg := m.session.Config()
	n := cfg.NumChainrings() * cfg.NumSprockets()

	m = pressKey(t, m, tea.KeyUp)
	if m.techTab.gearIdx != n-1 {
		t.Fatalf("expected selection to wrap to %d, got %d", n-1, m.techTab.gearIdx)
	}
	m = pressKey(t, m, tea.KeyDown)
	if m.techTab.gearIdx != 0 {
		t.Fatalf("expected selection to wrap back to 0, got %d", m.techTab.gearIdx)
	}
}

func TestOverlapReportForRoadDouble(t *testing.T) {
	m := technicalModel(t)
	m.techTab.sub = techSubOverlap
	view := m.View()
	if !strings.Contains(view, fmt.Sprintf(m.strs.OverlapPairFiltered, 50, 34)) {
		t.Fatalf("expected filtered pair header for 50/34")
	}
	// Road double usable ratios do not overlap.
	if !strings.Contains(view, m.strs.OverlapNone) {
		t.Fatalf("expected no-overlap line")
	}
}

func TestOverlapReportSingleChainring(t *testing.T) {
	m := technicalModel(t)
	if err := m.session.SetGearing([]int{42}, []int{14, 16, 18}); err != nil {
		t.Fatalf("SetGearing failed: %v", err)
	}
	m.techTab.sub = techSubOverlap
	if !strings.Contains(m.View(), m.strs.OverlapNeedTwo) {
		t.Fatalf("expected single-chainring message")
	}
}
