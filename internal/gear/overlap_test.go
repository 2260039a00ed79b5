package gear

import (
	"testing"

	"github.com/akyairhashvil/nusui/internal/models"
)

func mustMatrix(t *testing.T, cfg models.DrivetrainConfig) models.GearMatrix {
	t.Helper()
	matrix, err := BuildMatrix(cfg, 90)
	if err != nil {
		t.Fatalf("BuildMatrix failed: %v", err)
	}
	return matrix
}

func TestComputeOverlapSingleChainring(t *testing.T) {
	cfg := testConfig([]int{38}, []int{14, 16, 18, 20})
	report := ComputeOverlap(mustMatrix(t, cfg))
	if len(report.Pairs) != 0 {
		t.Fatalf("expected no pairs for single chainring, got %d", len(report.Pairs))
	}
}

func TestComputeOverlapRoadDouble(t *testing.T) {
	// Usable ranges on the road double do not meet: the big ring's
	// lightest usable gear (50/22) is still harder than the small
	// ring's hardest usable gear (34/18).
	cfg := NewConfig([]int{50, 34}, []int{14, 16, 18, 20, 22, 24, 28}, "700x25C", 2.105)
	report := ComputeOverlap(mustMatrix(t, cfg))

	if len(report.Pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(report.Pairs))
	}
	pair := report.Pairs[0]
	if pair.Chainring1 != 50 || pair.Chainring2 != 34 {
		t.Fatalf("pair rings = %d/%d", pair.Chainring1, pair.Chainring2)
	}
	if !pair.Filtered {
		t.Fatal("expected filtered (usable-only) comparison")
	}
	if pair.HasOverlap {
		t.Fatalf("expected no overlap, got %v..%v", pair.Start, pair.End)
	}

	// Total range 3.571/1.214 is just under 3x.
	if report.TotalRating != models.RangeLimited {
		t.Fatalf("total rating = %v, want limited", report.TotalRating)
	}
	if !report.HasUsableRange {
		t.Fatal("expected a usable range")
	}
}

func TestComputeOverlapTripleMTB(t *testing.T) {
	cfg := NewConfig([]int{42, 34, 24}, []int{14, 16, 18, 20, 22, 24, 34}, "26x2.1", 2.068)
	report := ComputeOverlap(mustMatrix(t, cfg))

	if len(report.Pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(report.Pairs))
	}

	// 42 vs 34: usable ranges barely touch (2.1..3.0 against
	// 1.417..2.125), a sliver under 3%.
	first := report.Pairs[0]
	if !first.Filtered || !first.HasOverlap {
		t.Fatalf("first pair = %+v, want filtered overlap", first)
	}
	if first.Pct < 2 || first.Pct > 4 {
		t.Fatalf("first pair pct = %v, want about 2.8", first.Pct)
	}
	if first.Rating != models.OverlapLow {
		t.Fatalf("first pair rating = %v, want low", first.Rating)
	}

	// 34 vs 24: no overlap at all between usable gears.
	second := report.Pairs[1]
	if second.HasOverlap {
		t.Fatalf("second pair = %+v, want no overlap", second)
	}

	// 3.0 down to 24/34 spans over 4x.
	if report.TotalRating != models.RangeModerate {
		t.Fatalf("total rating = %v, want moderate", report.TotalRating)
	}
}

func TestComputeOverlapDegeneratePointRange(t *testing.T) {
	// One sprocket and equal rings: every combination crosses (the
	// double thresholds swallow a one-cog cassette), ranges collapse
	// to a point, and the overlap is defined as 100% instead of a
	// division by zero.
	cfg := testConfig([]int{34, 34}, []int{17})
	report := ComputeOverlap(mustMatrix(t, cfg))

	if len(report.Pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(report.Pairs))
	}
	pair := report.Pairs[0]
	if pair.Filtered {
		t.Fatal("expected fallback to full ranges")
	}
	if !pair.HasOverlap || pair.Pct != 100 {
		t.Fatalf("pair = %+v, want 100%% overlap", pair)
	}
	if pair.Rating != models.OverlapHigh {
		t.Fatalf("rating = %v, want high", pair.Rating)
	}
	if report.HasUsableRange {
		t.Fatal("no usable gears should exist")
	}
	if report.TotalRange != 1 {
		t.Fatalf("total range = %v, want 1", report.TotalRange)
	}
}
