package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/nusui/internal/config"
	"github.com/akyairhashvil/nusui/internal/gear"
	"github.com/akyairhashvil/nusui/internal/locale"
	"github.com/akyairhashvil/nusui/internal/models"
	"github.com/akyairhashvil/nusui/internal/util"
	"github.com/go-pdf/fpdf"
)

// GeneratePDFReport writes a gear report for the current setup and
// returns the path of the generated file.
func GeneratePDFReport(session *Session, strs locale.Strings) (string, error) {
	matrix, err := session.Matrix()
	if err != nil {
		return "", err
	}
	cfg := session.Config()

	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are latin-1; translate accented strings.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr(strs.AppTitle))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("%s: %s", strs.ChainringsLabel, FormatTeethList(cfg.Chainrings))))
	pdf.Ln(6)
	pdf.Cell(0, 8, tr(fmt.Sprintf("%s: %s", strs.SprocketsLabel, FormatTeethList(cfg.Sprockets))))
	pdf.Ln(6)
	pdf.Cell(0, 8, tr(fmt.Sprintf(strs.GearTableNote, cfg.WheelSize, cfg.WheelCircumferenceMeters)))
	pdf.Ln(10)

	// Speed table
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, tr(fmt.Sprintf(strs.GearTableTitle, session.CadenceRPM())))
	pdf.Ln(10)

	const cellW, cellH = 18.0, 7.0
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(cellW, cellH, "", "1", 0, "C", false, 0, "")
	for _, s := range cfg.Sprockets {
		pdf.CellFormat(cellW, cellH, fmt.Sprintf("%dT", s), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for i, row := range matrix {
		pdf.CellFormat(cellW, cellH, fmt.Sprintf("%dT", cfg.Chainrings[i]), "1", 0, "C", false, 0, "")
		for _, cell := range row {
			text := config.CrossingMask
			if !cell.Crossing {
				text = FormatSpeed(cell.SpeedKmh)
			}
			pdf.CellFormat(cellW, cellH, text, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	crossings, total := gear.CountCrossings(matrix)
	if crossings > 0 {
		pdf.MultiCell(0, 6, tr(fmt.Sprintf(strs.CrossingCount, crossings, total)), "", "", false)
		pdf.Ln(4)
	}

	// Overlap report
	if report, err := session.Overlap(); err == nil && len(report.Pairs) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, tr(strs.OverlapTitle))
		pdf.Ln(10)
		pdf.SetFont("Arial", "", 11)
		for _, pair := range report.Pairs {
			headerFmt := strs.OverlapPairFull
			if pair.Filtered {
				headerFmt = strs.OverlapPairFiltered
			}
			pdf.MultiCell(0, 6, tr(fmt.Sprintf(headerFmt, pair.Chainring1, pair.Chainring2)), "", "", false)
			if pair.HasOverlap {
				pdf.MultiCell(0, 6, tr(fmt.Sprintf(strs.OverlapRangeLine, pair.Start, pair.End)), "", "", false)
				pdf.MultiCell(0, 6, tr(fmt.Sprintf(strs.OverlapPctLine, pair.Pct)), "", "", false)
				pdf.MultiCell(0, 6, tr(strs.OverlapEval[pair.Rating]), "", "", false)
			} else {
				pdf.MultiCell(0, 6, tr(strs.OverlapNone), "", "", false)
			}
			pdf.Ln(2)
		}
		if report.HasUsableRange {
			pdf.MultiCell(0, 6, tr(fmt.Sprintf(strs.UsableRangeLine, report.UsableRange)), "", "", false)
		} else {
			pdf.MultiCell(0, 6, tr(strs.UsableRangeMissing), "", "", false)
		}
		pdf.MultiCell(0, 6, tr(fmt.Sprintf(strs.TotalRangeLine, report.TotalRange)), "", "", false)
		pdf.MultiCell(0, 6, tr(strs.RangeEval[report.TotalRating]), "", "", false)
	}

	// Recommendation for the default riding conditions
	query := models.RecommendationQuery{
		TargetSpeedKmh: config.DefaultTargetSpeed,
		SlopePercent:   config.DefaultSlope,
		CadenceRPM:     session.CadenceRPM(),
	}
	if rec, err := session.Recommend(query); err == nil {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, tr(strs.RecommendTitle))
		pdf.Ln(10)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s: %s, %s: %.1f%%", strs.TargetSpeedLabel, FormatSpeed(query.TargetSpeedKmh), strs.SlopeLabel, query.SlopePercent)), "", "", false)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf(strs.RecommendedGear, rec.Chainring, rec.Sprocket)), "", "", false)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s: %s km/h, %s: %s, %s: %s",
			strs.EstimatedSpeed, FormatSpeed(rec.SpeedKmh),
			strs.GearRatioLabel, FormatRatio(rec.Ratio),
			strs.DevelopmentLabel, FormatDevelopment(rec.DevelopmentMeters))), "", "", false)
		pdf.MultiCell(0, 6, tr(strs.Advice[rec.Advice]), "", "", false)
	}

	reportRoot := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(reportRoot, 0o755); err != nil {
		return "", err
	}
	filename := filepath.Join(reportRoot, fmt.Sprintf("gear_report_%s.pdf", time.Now().Format("20060102_150405")))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", err
	}
	return filename, nil
}
