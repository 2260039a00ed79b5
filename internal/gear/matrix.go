package gear

import "github.com/akyairhashvil/nusui/internal/models"

// BuildMatrix computes the full combination table for a drivetrain at
// one cadence: ratio, speed, development and crossing verdict per
// (chainring, sprocket) pair. The matrix is chainring-major and small
// enough that nothing is cached.
func BuildMatrix(cfg models.DrivetrainConfig, cadenceRPM int) (models.GearMatrix, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	matrix := make(models.GearMatrix, len(cfg.Chainrings))
	for i, chainring := range cfg.Chainrings {
		row := make([]models.GearCell, len(cfg.Sprockets))
		for j, sprocket := range cfg.Sprockets {
			ratio, err := Ratio(chainring, sprocket)
			if err != nil {
				return nil, err
			}
			crossing, reason := IsChainCrossing(cfg, i, j)
			row[j] = models.GearCell{
				ChainringIdx:      i,
				SprocketIdx:       j,
				Chainring:         chainring,
				Sprocket:          sprocket,
				Ratio:             ratio,
				SpeedKmh:          SpeedKmh(ratio, cadenceRPM, cfg.WheelCircumferenceMeters),
				DevelopmentMeters: DevelopmentMeters(ratio, cfg.WheelCircumferenceMeters),
				Crossing:          crossing,
				Reason:            reason,
			}
		}
		matrix[i] = row
	}
	return matrix, nil
}

// CountCrossings tallies crossing combinations against the total.
func CountCrossings(matrix models.GearMatrix) (crossings, total int) {
	for _, row := range matrix {
		for _, cell := range row {
			total++
			if cell.Crossing {
				crossings++
			}
		}
	}
	return crossings, total
}
