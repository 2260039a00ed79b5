package gear

import (
	"math"

	"github.com/akyairhashvil/nusui/internal/models"
)

// Each percent of slope scales the attainable speed down by 0.1% of
// the flat-ground value. A teaching simplification, kept exact.
const slopeSpeedPenalty = 0.1

// Recommend picks the combination whose slope-adjusted speed is
// closest to the target. Crossing combinations are skipped; only when
// every combination crosses does a second pass consider them, and the
// result is then flagged. Ties go to the earliest chainring, then the
// earliest sprocket.
func Recommend(cfg models.DrivetrainConfig, query models.RecommendationQuery) (models.RecommendationResult, error) {
	if err := Validate(cfg); err != nil {
		return models.RecommendationResult{}, err
	}

	bestI, bestJ, found := searchClosest(cfg, query, true)
	crossing := false
	reason := models.CrossingNone
	if !found {
		bestI, bestJ, _ = searchClosest(cfg, query, false)
		crossing, reason = IsChainCrossing(cfg, bestI, bestJ)
	}

	chainring := cfg.Chainrings[bestI]
	sprocket := cfg.Sprockets[bestJ]
	ratio, err := Ratio(chainring, sprocket)
	if err != nil {
		return models.RecommendationResult{}, err
	}

	return models.RecommendationResult{
		ChainringIdx:      bestI,
		SprocketIdx:       bestJ,
		Chainring:         chainring,
		Sprocket:          sprocket,
		Ratio:             ratio,
		SpeedKmh:          SpeedKmh(ratio, query.CadenceRPM, cfg.WheelCircumferenceMeters),
		DevelopmentMeters: DevelopmentMeters(ratio, cfg.WheelCircumferenceMeters),
		Crossing:          crossing,
		Reason:            reason,
		Advice:            AdviceFor(query.SlopePercent),
	}, nil
}

// searchClosest scans chainring-major, sprocket-minor. The strict less
// comparison keeps the first minimal pair.
func searchClosest(cfg models.DrivetrainConfig, query models.RecommendationQuery, skipCrossings bool) (bestI, bestJ int, found bool) {
	minDiff := math.Inf(1)
	for i, chainring := range cfg.Chainrings {
		for j, sprocket := range cfg.Sprockets {
			if skipCrossings {
				if crossing, _ := IsChainCrossing(cfg, i, j); crossing {
					continue
				}
			}
			ratio := float64(chainring) / float64(sprocket)
			speed := SpeedKmh(ratio, query.CadenceRPM, cfg.WheelCircumferenceMeters)
			adjusted := speed * (1 - query.SlopePercent/100*slopeSpeedPenalty)
			diff := math.Abs(adjusted - query.TargetSpeedKmh)
			if diff < minDiff {
				minDiff = diff
				bestI, bestJ = i, j
				found = true
			}
		}
	}
	return bestI, bestJ, found
}

// AdviceFor buckets terrain advice by slope. The boundaries are exact:
// 0% is flat because it fails both climb comparisons, and -5% is not
// yet a descent.
func AdviceFor(slopePercent float64) models.AdviceCategory {
	switch {
	case slopePercent > 8:
		return models.AdviceSteepClimb
	case slopePercent > 0:
		return models.AdviceMildClimb
	case slopePercent < -5:
		return models.AdviceDescent
	default:
		return models.AdviceFlat
	}
}
