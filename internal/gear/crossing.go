package gear

import (
	"math"

	"github.com/akyairhashvil/nusui/internal/models"
)

// Fractions of the cassette treated as extreme, per drivetrain kind.
const (
	doubleExtremeFraction  = 0.35
	tripleExtremeFraction  = 0.4
	tripleMediumFraction   = 0.15
	generalExtremeFraction = 0.3
)

// CrossingThresholds are the sprocket counts considered extreme for a
// configuration. Which fields are meaningful depends on the chainring
// count: ExtremeCount for doubles and the general rule, the other four
// for triples.
type CrossingThresholds struct {
	ExtremeCount       int
	ExtremeCountLarge  int
	ExtremeCountSmall  int
	MediumExtremeLarge int
	MediumExtremeSmall int
}

// ThresholdsFor computes the extreme-sprocket counts the classifier
// applies to cfg. Exposed so diagnostic views can show the numbers
// behind the verdicts.
func ThresholdsFor(cfg models.DrivetrainConfig) CrossingThresholds {
	n := cfg.NumSprockets()
	switch cfg.NumChainrings() {
	case 2:
		return CrossingThresholds{
			ExtremeCount: atLeast(2, round(float64(n)*doubleExtremeFraction)),
		}
	case 3:
		// Large and small counts share a formula today but stay
		// independent values so they can be tuned apart.
		return CrossingThresholds{
			ExtremeCountLarge:  atLeast(2, round(float64(n)*tripleExtremeFraction)),
			ExtremeCountSmall:  atLeast(2, round(float64(n)*tripleExtremeFraction)),
			MediumExtremeLarge: atLeast(1, round(float64(n)*tripleMediumFraction)),
			MediumExtremeSmall: atLeast(1, round(float64(n)*tripleMediumFraction)),
		}
	default:
		return CrossingThresholds{
			ExtremeCount: atLeast(1, round(float64(n)*generalExtremeFraction)),
		}
	}
}

// IsChainCrossing decides whether the combination at (chainringIdx,
// sprocketIdx) bends the chain into an unhealthy diagonal. Chainring
// index 0 is the largest ring, sprocket index 0 the smallest cog.
func IsChainCrossing(cfg models.DrivetrainConfig, chainringIdx, sprocketIdx int) (bool, models.CrossingReason) {
	numChainrings := cfg.NumChainrings()
	numSprockets := cfg.NumSprockets()

	// A single chainring cannot put the chain at a diagonal relative
	// to itself.
	if numChainrings <= 1 {
		return false, models.CrossingNone
	}

	t := ThresholdsFor(cfg)

	switch numChainrings {
	case 2:
		if chainringIdx == 0 && sprocketIdx >= numSprockets-t.ExtremeCount {
			return true, models.CrossingLargeLarge
		}
		if chainringIdx == numChainrings-1 && sprocketIdx < t.ExtremeCount {
			return true, models.CrossingSmallSmall
		}
	case 3:
		if chainringIdx == 0 && sprocketIdx >= numSprockets-t.ExtremeCountLarge {
			return true, models.CrossingLargeLarge
		}
		if chainringIdx == numChainrings-1 && sprocketIdx < t.ExtremeCountSmall {
			return true, models.CrossingSmallSmall
		}
		if chainringIdx == 1 && (sprocketIdx >= numSprockets-t.MediumExtremeLarge || sprocketIdx < t.MediumExtremeSmall) {
			return true, models.CrossingMiddleExtreme
		}
	default:
		if chainringIdx == 0 && sprocketIdx >= numSprockets-t.ExtremeCount {
			return true, models.CrossingLargeLarge
		}
		if chainringIdx == numChainrings-1 && sprocketIdx < t.ExtremeCount {
			return true, models.CrossingSmallSmall
		}
		// Intermediate rings only cross at the absolute cassette ends.
		if chainringIdx > 0 && chainringIdx < numChainrings-1 {
			if sprocketIdx == 0 || sprocketIdx >= numSprockets-1 {
				return true, models.CrossingIntermediateExtreme
			}
		}
	}

	return false, models.CrossingNone
}

func round(v float64) int {
	return int(math.Round(v))
}

func atLeast(floor, v int) int {
	if v < floor {
		return floor
	}
	return v
}
