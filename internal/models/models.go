package models

// CrossingReason identifies why a chainring/sprocket combination puts the
// chain at an unhealthy diagonal. The zero value means no crossing.
type CrossingReason int

const (
	CrossingNone CrossingReason = iota
	CrossingLargeLarge
	CrossingSmallSmall
	CrossingMiddleExtreme
	CrossingIntermediateExtreme
)

// String returns the canonical English phrasing. Display layers may
// translate; logic must never branch on these strings.
func (r CrossingReason) String() string {
	switch r {
	case CrossingLargeLarge:
		return "Large chainring with large sprocket: increases wear and reduces efficiency"
	case CrossingSmallSmall:
		return "Small chainring with small sprocket: increases wear and reduces efficiency"
	case CrossingMiddleExtreme:
		return "Middle chainring with extreme sprocket: may cause wear"
	case CrossingIntermediateExtreme:
		return "Intermediate chainring with extreme sprocket: may cause wear"
	}
	return ""
}

// DrivetrainConfig describes one bicycle drivetrain. It is an immutable
// value replaced wholesale on reconfiguration; no partial mutation.
//
// Chainrings are ordered largest to smallest (index 0 = largest) and
// Sprockets smallest to largest (index 0 = smallest). The classifier's
// index arithmetic depends on this ordering, so constructors sort, not
// readers.
type DrivetrainConfig struct {
	Chainrings []int
	Sprockets  []int
	WheelSize  string
	// WheelCircumferenceMeters is resolved from the wheel catalog at
	// construction time.
	WheelCircumferenceMeters float64
}

// NumChainrings returns the chainring count.
func (c DrivetrainConfig) NumChainrings() int { return len(c.Chainrings) }

// NumSprockets returns the sprocket count.
func (c DrivetrainConfig) NumSprockets() int { return len(c.Sprockets) }

// BikeType is a preset drivetrain for a common style of bicycle.
// Display names live in the locale tables, keyed by Value.
type BikeType struct {
	Value      string
	Chainrings []int
	Sprockets  []int
}

// GearCell is one entry of the combination matrix: everything derivable
// for a single (chainring, sprocket) pair at a given cadence. Ephemeral,
// recomputed on demand.
type GearCell struct {
	ChainringIdx      int
	SprocketIdx       int
	Chainring         int
	Sprocket          int
	Ratio             float64
	SpeedKmh          float64
	DevelopmentMeters float64
	Crossing          bool
	Reason            CrossingReason
}

// GearMatrix is the full combination table, chainring-major.
type GearMatrix [][]GearCell

// AdviceCategory buckets terrain advice by slope.
type AdviceCategory string

const (
	AdviceSteepClimb AdviceCategory = "steep_climb"
	AdviceMildClimb  AdviceCategory = "mild_climb"
	AdviceDescent    AdviceCategory = "descent"
	AdviceFlat       AdviceCategory = "flat"
)

// RecommendationQuery describes the riding conditions to find a gear for.
type RecommendationQuery struct {
	TargetSpeedKmh float64
	SlopePercent   float64
	CadenceRPM     int
}

// RecommendationResult is the gear picked for a query.
// Crossing is true only when every combination crossed the chain and the
// engine had to fall back to a crossing pair.
type RecommendationResult struct {
	ChainringIdx      int
	SprocketIdx       int
	Chainring         int
	Sprocket          int
	Ratio             float64
	SpeedKmh          float64
	DevelopmentMeters float64
	Crossing          bool
	Reason            CrossingReason
	Advice            AdviceCategory
}

// OverlapRating classifies the usable-ratio overlap between two adjacent
// chainrings.
type OverlapRating string

const (
	OverlapLow      OverlapRating = "low"
	OverlapModerate OverlapRating = "moderate"
	OverlapHigh     OverlapRating = "high"
)

// RangeRating classifies the total gear range of a drivetrain.
type RangeRating string

const (
	RangeLimited  RangeRating = "limited"
	RangeModerate RangeRating = "moderate"
	RangeWide     RangeRating = "wide"
)

// OverlapPair reports the ratio overlap between two adjacent chainrings.
// Filtered is true when both sides had usable (non-crossing) gears and
// the ranges exclude crossing combinations.
type OverlapPair struct {
	Chainring1 int
	Chainring2 int
	Filtered   bool
	HasOverlap bool
	Start      float64
	End        float64
	Pct        float64
	Rating     OverlapRating
}

// OverlapReport aggregates per-pair overlap plus the drivetrain's total
// ratio range with and without crossing combinations.
type OverlapReport struct {
	Pairs []OverlapPair

	// UsableRange is max/min over non-crossing ratios only; HasUsableRange
	// is false when every combination crosses.
	HasUsableRange bool
	UsableRange    float64

	// TotalRange is max/min over every combination.
	TotalRange  float64
	TotalRating RangeRating
}
