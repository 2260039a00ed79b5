// Package catalog holds the static reference data the application is
// seeded with: wheel sizes with their circumferences, bike-type presets,
// and the wheel-size categories offered per bike type. The data is plain
// values injected into consumers, so tests can substitute their own.
package catalog

import (
	"fmt"

	"github.com/akyairhashvil/nusui/internal/models"
)

// WheelSize pairs a size label with its circumference in meters.
type WheelSize struct {
	Key                 string
	CircumferenceMeters float64
}

// WheelCategory is the subset of wheel sizes offered for one bike type,
// with the preselected default.
type WheelCategory struct {
	Default string
	Sizes   []string
}

// ErrUnknownWheelSize is returned when a size label is not in the catalog.
var ErrUnknownWheelSize = fmt.Errorf("unknown wheel size")

// Catalog is the read-only reference data set.
type Catalog struct {
	wheelOrder      []string
	wheelSizes      map[string]float64
	bikeTypes       []models.BikeType
	wheelCategories map[string]WheelCategory
}

// New builds a catalog from explicit data. Later duplicates of a wheel
// key overwrite earlier ones; order of first appearance is preserved.
func New(wheels []WheelSize, bikeTypes []models.BikeType, categories map[string]WheelCategory) *Catalog {
	c := &Catalog{
		wheelSizes:      make(map[string]float64, len(wheels)),
		bikeTypes:       bikeTypes,
		wheelCategories: categories,
	}
	for _, w := range wheels {
		if _, seen := c.wheelSizes[w.Key]; !seen {
			c.wheelOrder = append(c.wheelOrder, w.Key)
		}
		c.wheelSizes[w.Key] = w.CircumferenceMeters
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultWheelSizes(), defaultBikeTypes(), defaultWheelCategories())
}

// WheelCircumference resolves a size label to meters.
func (c *Catalog) WheelCircumference(key string) (float64, error) {
	circ, ok := c.wheelSizes[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWheelSize, key)
	}
	return circ, nil
}

// WheelSizeKeys lists every size label in catalog order.
func (c *Catalog) WheelSizeKeys() []string {
	out := make([]string, len(c.wheelOrder))
	copy(out, c.wheelOrder)
	return out
}

// BikeTypes lists the presets in display order.
func (c *Catalog) BikeTypes() []models.BikeType {
	out := make([]models.BikeType, len(c.bikeTypes))
	copy(out, c.bikeTypes)
	return out
}

// BikeType looks up a preset by its value key.
func (c *Catalog) BikeType(value string) (models.BikeType, bool) {
	for _, bt := range c.bikeTypes {
		if bt.Value == value {
			return bt, true
		}
	}
	return models.BikeType{}, false
}

// WheelCategory returns the wheel-size choices for a bike type. Unknown
// types fall back to the full catalog with the road default.
func (c *Catalog) WheelCategory(bikeValue string) WheelCategory {
	if cat, ok := c.wheelCategories[bikeValue]; ok {
		return cat
	}
	return WheelCategory{Default: "700C", Sizes: c.WheelSizeKeys()}
}
