package config

// Cadence limits (RPM).
const (
	MinCadence        = 60
	MaxCadence        = 100
	DefaultCadence    = 80
	OptimalCadenceMin = 80
	OptimalCadenceMax = 90
)

// Tooth-count limits for chainrings and sprockets.
const (
	MinTeeth = 11
	MaxTeeth = 53
)

// Recommendation form ranges.
const (
	MinTargetSpeed     = 5
	MaxTargetSpeed     = 50
	DefaultTargetSpeed = 20

	MinSlope     = -10
	MaxSlope     = 20
	DefaultSlope = 0
)

// PowerCoefficient is the k in the simplified power model
// watts ~ k * (1 + slope/100) * v^3. A drag proxy for teaching
// purposes, not a calibrated physical model.
const PowerCoefficient = 0.004

// Gear ratios between these bounds are comfortable for most riding.
const (
	OptimalRatioMin = 2.5
	OptimalRatioMax = 5.0
)

// Application settings.
const (
	AppName    = "nusui"
	AppVersion = "1.0"
)
