package gear

import (
	"errors"
	"math"
	"testing"
)

const floatTol = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestRatioExactDivision(t *testing.T) {
	tests := []struct {
		chainring int
		sprocket  int
		want      float64
	}{
		{50, 14, 50.0 / 14.0},
		{34, 34, 1.0},
		{24, 34, 24.0 / 34.0},
		{42, 11, 42.0 / 11.0},
	}
	for _, tt := range tests {
		got, err := Ratio(tt.chainring, tt.sprocket)
		if err != nil {
			t.Fatalf("Ratio(%d, %d) returned error: %v", tt.chainring, tt.sprocket, err)
		}
		if got != tt.want {
			t.Fatalf("Ratio(%d, %d) = %v, want %v", tt.chainring, tt.sprocket, got, tt.want)
		}
	}
}

func TestRatioZeroSprocket(t *testing.T) {
	_, err := Ratio(50, 0)
	if err == nil {
		t.Fatal("expected error for zero-tooth sprocket")
	}
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestSpeedScalesLinearlyWithCadence(t *testing.T) {
	ratio := 50.0 / 14.0
	circ := 2.105
	for _, cadence := range []int{60, 75, 90} {
		single := SpeedKmh(ratio, cadence, circ)
		double := SpeedKmh(ratio, 2*cadence, circ)
		if !almostEqual(double, 2*single, floatTol) {
			t.Fatalf("SpeedKmh at %d RPM doubled = %v, want %v", cadence, double, 2*single)
		}
	}
}

func TestSpeedKmhKnownValue(t *testing.T) {
	// Road 50/14 on 700x25C at 90 RPM lands near 40.6 km/h.
	ratio := 50.0 / 14.0
	speed := SpeedKmh(ratio, 90, 2.105)
	want := ratio * 2.105 * 90 * 60 / 1000
	if speed != want {
		t.Fatalf("SpeedKmh = %v, want %v", speed, want)
	}
	if !almostEqual(speed, 40.6, 0.05) {
		t.Fatalf("SpeedKmh = %v, expected about 40.6", speed)
	}
}

func TestDevelopmentIndependentOfCadence(t *testing.T) {
	ratio := 42.0 / 16.0
	circ := 2.068
	if got := DevelopmentMeters(ratio, circ); got != ratio*circ {
		t.Fatalf("DevelopmentMeters = %v, want %v", got, ratio*circ)
	}
}

func TestEstimatedPowerCubicLaw(t *testing.T) {
	if got := EstimatedPower(10, 0); !almostEqual(got, 4.0, floatTol) {
		t.Fatalf("EstimatedPower(10, 0) = %v, want 4.0", got)
	}
	// Doubling speed multiplies power by eight.
	base := EstimatedPower(15, 0)
	if got := EstimatedPower(30, 0); !almostEqual(got, 8*base, floatTol) {
		t.Fatalf("EstimatedPower(30, 0) = %v, want %v", got, 8*base)
	}
	// Slope scales the coefficient linearly.
	flat := EstimatedPower(20, 0)
	climb := EstimatedPower(20, 10)
	if !almostEqual(climb, flat*1.1, floatTol) {
		t.Fatalf("EstimatedPower(20, 10) = %v, want %v", climb, flat*1.1)
	}
	descent := EstimatedPower(20, -10)
	if !almostEqual(descent, flat*0.9, floatTol) {
		t.Fatalf("EstimatedPower(20, -10) = %v, want %v", descent, flat*0.9)
	}
}
