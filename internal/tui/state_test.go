package tui

import (
	"testing"

	"github.com/akyairhashvil/nusui/internal/catalog"
	"github.com/akyairhashvil/nusui/internal/config"
	"github.com/akyairhashvil/nusui/internal/testutil"
)

func configuredSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(catalog.Default())
	if err := s.SetGearing([]int{34, 50}, []int{14, 16, 18, 20, 22, 24, 28}); err != nil {
		t.Fatalf("SetGearing failed: %v", err)
	}
	return s
}

func TestSessionDefaults(t *testing.T) {
	s := NewSession(catalog.Default())
	if s.Configured() {
		t.Fatalf("expected a fresh session to be unconfigured")
	}
	if s.CadenceRPM() != config.DefaultCadence {
		t.Fatalf("expected default cadence %d, got %d", config.DefaultCadence, s.CadenceRPM())
	}
	cat := s.catalog.WheelCategory(s.BikeType().Value)
	if s.WheelKey() != cat.Default {
		t.Fatalf("expected default wheel %q, got %q", cat.Default, s.WheelKey())
	}
}

func TestSessionWheelChangeFlowsIntoConfig(t *testing.T) {
	s := configuredSession(t)
	before := s.Config().WheelSize
	s.CycleWheel(1)
	after := s.Config()
	if after.WheelSize == before {
		t.Fatalf("expected wheel size change to reach the config")
	}
	circ, err := s.catalog.WheelCircumference(after.WheelSize)
	if err != nil {
		t.Fatalf("WheelCircumference failed: %v", err)
	}
	if after.WheelCircumferenceMeters != circ {
		t.Fatalf("expected circumference %v, got %v", circ, after.WheelCircumferenceMeters)
	}
}

func TestSessionMatrixCachedUntilChange(t *testing.T) {
	s := configuredSession(t)
	m1, err := s.Matrix()
	if err != nil {
		t.Fatalf("Matrix failed: %v", err)
	}
	m2, err := s.Matrix()
	if err != nil {
		t.Fatalf("Matrix failed: %v", err)
	}
	if &m1[0] != &m2[0] {
		t.Fatalf("expected cached matrix between calls")
	}

	s.AdjustCadence(5)
	m3, err := s.Matrix()
	if err != nil {
		t.Fatalf("Matrix failed: %v", err)
	}
	if m3[0][0].SpeedKmh == m1[0][0].SpeedKmh {
		t.Fatalf("expected cadence change to change speeds")
	}
}

func TestSessionRejectsInvalidGearing(t *testing.T) {
	s := NewSession(catalog.Default())
	if err := s.SetGearing([]int{5}, []int{14}); err == nil {
		t.Fatalf("expected teeth below the minimum to be rejected")
	}
	if s.Configured() {
		t.Fatalf("expected session to stay unconfigured after a rejected gearing")
	}
}

func TestSessionRecommendUsesCurrentSetup(t *testing.T) {
	s := configuredSession(t)
	query := testutil.NewQuery().WithTargetSpeed(40).WithSlope(0).WithCadence(s.CadenceRPM()).Build()
	result, err := s.Recommend(query)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if result.Chainring != 50 || result.Sprocket != 14 {
		t.Fatalf("expected 50/14, got %d/%d", result.Chainring, result.Sprocket)
	}

	want := testutil.NewDrivetrain().Build()
	got := s.Config()
	if len(got.Chainrings) != len(want.Chainrings) || got.Chainrings[0] != want.Chainrings[0] {
		t.Fatalf("expected the builder default drivetrain to match the session setup")
	}
}

func TestSessionBikeTypeCycleWraps(t *testing.T) {
	s := NewSession(catalog.Default())
	n := len(s.BikeTypes())
	for i := 0; i < n; i++ {
		s.CycleBikeType(1)
	}
	if s.BikeTypeIdx() != 0 {
		t.Fatalf("expected bike type cursor to wrap, got %d", s.BikeTypeIdx())
	}
}
