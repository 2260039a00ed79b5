package tui

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/nusui/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

func TestVisualTabRequiresConfiguration(t *testing.T) {
	m := setupTestModel(t)
	m.tab = TabVisual
	if !strings.Contains(m.View(), m.strs.NotConfigured) {
		t.Fatalf("expected not-configured message")
	}
}

func TestGearTableMasksCrossings(t *testing.T) {
	m := configuredModel(t)
	m.tab = TabVisual
	m.visualTab.sub = visualSubTable

	view := m.View()
	if !strings.Contains(view, config.CrossingMask) {
		t.Fatalf("expected crossing mask %q in gear table", config.CrossingMask)
	}
	// The road double at 7 sprockets masks 4 of 14 combinations.
	if !strings.Contains(view, "4") || !strings.Contains(view, "14") {
		t.Fatalf("expected crossing count note")
	}
}

func TestGearTableShowsTeethHeaders(t *testing.T) {
	m := configuredModel(t)
	m.tab = TabVisual
	view := m.View()
	for _, want := range []string{"50T", "34T", "14T", "28T"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in gear table view", want)
		}
	}
}

func TestVisualSubviewCycling(t *testing.T) {
	m := configuredModel(t)
	m.tab = TabVisual

	m = pressKey(t, m, tea.KeyRight)
	if m.visualTab.sub != visualSubSpeed {
		t.Fatalf("expected speed chart subview, got %d", m.visualTab.sub)
	}
	if !strings.Contains(m.View(), m.strs.SpeedChartLegend) {
		t.Fatalf("expected speed chart legend")
	}

	m = pressKey(t, m, tea.KeyRight)
	if m.visualTab.sub != visualSubDevelopment {
		t.Fatalf("expected development subview, got %d", m.visualTab.sub)
	}
	if !strings.Contains(m.View(), m.strs.DevTitle) {
		t.Fatalf("expected development title")
	}

	m = pressKey(t, m, tea.KeyRight)
	if m.visualTab.sub != visualSubTable {
		t.Fatalf("expected wraparound to the table subview")
	}
	m = pressKey(t, m, tea.KeyLeft)
	if m.visualTab.sub != visualSubDevelopment {
		t.Fatalf("expected left to wrap backwards")
	}
}

func TestSpeedChartMarksCrossings(t *testing.T) {
	m := configuredModel(t)
	m.tab = TabVisual
	m.visualTab.sub = visualSubSpeed
	view := m.View()
	if !strings.Contains(view, "x") {
		t.Fatalf("expected crossing marker in speed chart")
	}
	if !strings.Contains(view, "o") {
		t.Fatalf("expected safe marker in speed chart")
	}
}
