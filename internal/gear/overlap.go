package gear

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/akyairhashvil/nusui/internal/models"
)

// Overlap percentage cut points and total-range cut points.
const (
	overlapLowPct      = 10
	overlapModeratePct = 30

	rangeLimitedMax  = 3
	rangeModerateMax = 5
)

// ComputeOverlap analyzes how the ratio ranges of adjacent chainrings
// overlap, and the drivetrain's total ratio span. Per-chainring ranges
// exclude crossing combinations when both sides keep at least one
// usable gear; otherwise the full ranges are compared. A drivetrain
// with fewer than two chainrings has nothing to overlap and yields an
// empty report.
func ComputeOverlap(matrix models.GearMatrix) models.OverlapReport {
	var report models.OverlapReport
	if len(matrix) <= 1 {
		return report
	}

	for i := 0; i < len(matrix)-1; i++ {
		report.Pairs = append(report.Pairs, overlapPair(matrix[i], matrix[i+1]))
	}

	var usable, all []float64
	for _, row := range matrix {
		for _, cell := range row {
			all = append(all, cell.Ratio)
			if !cell.Crossing {
				usable = append(usable, cell.Ratio)
			}
		}
	}
	if len(usable) > 0 {
		report.HasUsableRange = true
		report.UsableRange = floats.Max(usable) / floats.Min(usable)
	}
	report.TotalRange = floats.Max(all) / floats.Min(all)
	switch {
	case report.TotalRange < rangeLimitedMax:
		report.TotalRating = models.RangeLimited
	case report.TotalRange < rangeModerateMax:
		report.TotalRating = models.RangeModerate
	default:
		report.TotalRating = models.RangeWide
	}
	return report
}

func overlapPair(row1, row2 []models.GearCell) models.OverlapPair {
	pair := models.OverlapPair{
		Chainring1: row1[0].Chainring,
		Chainring2: row2[0].Chainring,
	}

	ratios1, ratios2 := usableRatios(row1), usableRatios(row2)
	if len(ratios1) > 0 && len(ratios2) > 0 {
		pair.Filtered = true
	} else {
		ratios1, ratios2 = allRatios(row1), allRatios(row2)
	}

	min1, max1 := floats.Min(ratios1), floats.Max(ratios1)
	min2, max2 := floats.Min(ratios2), floats.Max(ratios2)

	start := math.Max(min1, min2)
	end := math.Min(max1, max2)
	if start > end {
		return pair
	}

	pair.HasOverlap = true
	pair.Start = start
	pair.End = end
	if max1 == min1 {
		// Single usable ratio on the reference ring: the range is a
		// point, treat it as fully overlapped instead of dividing by
		// zero.
		pair.Pct = 100
	} else {
		pair.Pct = (end - start) / (max1 - min1) * 100
	}
	switch {
	case pair.Pct < overlapLowPct:
		pair.Rating = models.OverlapLow
	case pair.Pct < overlapModeratePct:
		pair.Rating = models.OverlapModerate
	default:
		pair.Rating = models.OverlapHigh
	}
	return pair
}

func usableRatios(row []models.GearCell) []float64 {
	var out []float64
	for _, cell := range row {
		if !cell.Crossing {
			out = append(out, cell.Ratio)
		}
	}
	return out
}

func allRatios(row []models.GearCell) []float64 {
	out := make([]float64, len(row))
	for j, cell := range row {
		out[j] = cell.Ratio
	}
	return out
}
