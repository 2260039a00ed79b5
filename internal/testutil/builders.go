package testutil

import (
	"github.com/akyairhashvil/nusui/internal/config"
	"github.com/akyairhashvil/nusui/internal/gear"
	"github.com/akyairhashvil/nusui/internal/models"
)

// ConfigBuilder provides fluent API for creating test drivetrain configs.
type ConfigBuilder struct {
	chainrings    []int
	sprockets     []int
	wheelSize     string
	circumference float64
}

func NewDrivetrain() *ConfigBuilder {
	return &ConfigBuilder{
		chainrings:    []int{34, 50},
		sprockets:     []int{14, 16, 18, 20, 22, 24, 28},
		wheelSize:     "700x25C",
		circumference: 2.105,
	}
}

func (b *ConfigBuilder) WithChainrings(teeth ...int) *ConfigBuilder {
	b.chainrings = teeth
	return b
}

func (b *ConfigBuilder) WithSprockets(teeth ...int) *ConfigBuilder {
	b.sprockets = teeth
	return b
}

func (b *ConfigBuilder) WithWheel(size string, circumferenceMeters float64) *ConfigBuilder {
	b.wheelSize = size
	b.circumference = circumferenceMeters
	return b
}

func (b *ConfigBuilder) Build() models.DrivetrainConfig {
	return gear.NewConfig(b.chainrings, b.sprockets, b.wheelSize, b.circumference)
}

// QueryBuilder provides fluent API for creating test recommendation queries.
type QueryBuilder struct {
	query models.RecommendationQuery
}

func NewQuery() *QueryBuilder {
	return &QueryBuilder{
		query: models.RecommendationQuery{
			TargetSpeedKmh: config.DefaultTargetSpeed,
			SlopePercent:   config.DefaultSlope,
			CadenceRPM:     config.DefaultCadence,
		},
	}
}

func (b *QueryBuilder) WithTargetSpeed(kmh float64) *QueryBuilder {
	b.query.TargetSpeedKmh = kmh
	return b
}

func (b *QueryBuilder) WithSlope(pct float64) *QueryBuilder {
	b.query.SlopePercent = pct
	return b
}

func (b *QueryBuilder) WithCadence(rpm int) *QueryBuilder {
	b.query.CadenceRPM = rpm
	return b
}

func (b *QueryBuilder) Build() models.RecommendationQuery {
	return b.query
}
