// Package gear is the drivetrain domain core: gear math, the
// chain-crossing classifier, the combination matrix, overlap analysis
// and the gear recommendation engine. Everything here is a pure
// function over an immutable DrivetrainConfig; presentation layers
// render the results and never recompute them.
package gear

import (
	"sort"
	"strconv"
	"strings"

	"github.com/akyairhashvil/nusui/internal/config"
	"github.com/akyairhashvil/nusui/internal/models"
)

// NewConfig assembles a drivetrain configuration from raw teeth lists.
// Inputs may arrive in any order; chainrings are sorted largest first
// and sprockets smallest first, the ordering every index-based rule in
// this package relies on.
func NewConfig(chainrings, sprockets []int, wheelSize string, wheelCircumferenceMeters float64) models.DrivetrainConfig {
	cr := make([]int, len(chainrings))
	copy(cr, chainrings)
	sp := make([]int, len(sprockets))
	copy(sp, sprockets)

	sort.Sort(sort.Reverse(sort.IntSlice(cr)))
	sort.Ints(sp)

	return models.DrivetrainConfig{
		Chainrings:               cr,
		Sprockets:                sp,
		WheelSize:                wheelSize,
		WheelCircumferenceMeters: wheelCircumferenceMeters,
	}
}

// ParseTeeth parses a comma-separated teeth list ("24, 34,42"). An
// empty or blank input yields an empty list; any non-integer entry is
// an ErrInvalidConfiguration.
func ParseTeeth(input string) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	parts := strings.Split(input, ",")
	teeth := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, configErr("teeth", "not a whole number: %q", strings.TrimSpace(p))
		}
		teeth = append(teeth, n)
	}
	return teeth, nil
}

// Validate rejects configurations the rest of the package must never
// see: empty teeth lists or tooth counts outside [MinTeeth, MaxTeeth].
// Arithmetic on a validated configuration does not fail.
func Validate(cfg models.DrivetrainConfig) error {
	if len(cfg.Chainrings) == 0 {
		return configErr("chainrings", "at least one chainring is required")
	}
	if len(cfg.Sprockets) == 0 {
		return configErr("sprockets", "at least one sprocket is required")
	}
	for _, t := range cfg.Chainrings {
		if t < config.MinTeeth || t > config.MaxTeeth {
			return configErr("chainrings", "tooth count %d out of range [%d, %d]", t, config.MinTeeth, config.MaxTeeth)
		}
	}
	for _, t := range cfg.Sprockets {
		if t < config.MinTeeth || t > config.MaxTeeth {
			return configErr("sprockets", "tooth count %d out of range [%d, %d]", t, config.MinTeeth, config.MaxTeeth)
		}
	}
	return nil
}
