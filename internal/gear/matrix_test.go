package gear

import (
	"errors"
	"testing"

	"github.com/akyairhashvil/nusui/internal/models"
)

func TestBuildMatrixDimensionsAndCells(t *testing.T) {
	cfg := NewConfig([]int{34, 50}, []int{14, 16, 18, 20, 22, 24, 28}, "700x25C", 2.105)
	matrix, err := BuildMatrix(cfg, 90)
	if err != nil {
		t.Fatalf("BuildMatrix failed: %v", err)
	}
	if len(matrix) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(matrix))
	}
	for i, row := range matrix {
		if len(row) != 7 {
			t.Fatalf("row %d: expected 7 cells, got %d", i, len(row))
		}
	}

	cell := matrix[0][0]
	if cell.Chainring != 50 || cell.Sprocket != 14 {
		t.Fatalf("cell (0,0) = %d/%d, want 50/14", cell.Chainring, cell.Sprocket)
	}
	wantRatio := 50.0 / 14.0
	if cell.Ratio != wantRatio {
		t.Fatalf("cell (0,0) ratio = %v, want %v", cell.Ratio, wantRatio)
	}
	if cell.SpeedKmh != SpeedKmh(wantRatio, 90, 2.105) {
		t.Fatalf("cell (0,0) speed = %v", cell.SpeedKmh)
	}
	if cell.DevelopmentMeters != wantRatio*2.105 {
		t.Fatalf("cell (0,0) development = %v", cell.DevelopmentMeters)
	}
	if cell.Crossing {
		t.Fatal("cell (0,0) flagged as crossing")
	}

	// Large ring, largest sprockets: flagged with the reason attached.
	flagged := matrix[0][6]
	if !flagged.Crossing || flagged.Reason != models.CrossingLargeLarge {
		t.Fatalf("cell (0,6) = (%v, %v), want crossing large/large", flagged.Crossing, flagged.Reason)
	}
}

func TestBuildMatrixRejectsInvalidConfig(t *testing.T) {
	cfg := models.DrivetrainConfig{Chainrings: []int{50}, WheelCircumferenceMeters: 2.1}
	if _, err := BuildMatrix(cfg, 90); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestCountCrossings(t *testing.T) {
	cfg := NewConfig([]int{50, 34}, []int{14, 16, 18, 20, 22, 24, 28}, "700x25C", 2.105)
	matrix, err := BuildMatrix(cfg, 90)
	if err != nil {
		t.Fatalf("BuildMatrix failed: %v", err)
	}
	crossings, total := CountCrossings(matrix)
	if total != 14 {
		t.Fatalf("total = %d, want 14", total)
	}
	// extremeCount = 2 per ring on a 7-speed cassette.
	if crossings != 4 {
		t.Fatalf("crossings = %d, want 4", crossings)
	}
}
