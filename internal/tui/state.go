package tui

import (
	"github.com/akyairhashvil/nusui/internal/catalog"
	"github.com/akyairhashvil/nusui/internal/config"
	"github.com/akyairhashvil/nusui/internal/gear"
	"github.com/akyairhashvil/nusui/internal/models"
	"github.com/akyairhashvil/nusui/internal/util"
)

// Session holds the rider's bicycle setup and the derived analyses.
// Derived values are cached and recomputed lazily after any change.
type Session struct {
	catalog *catalog.Catalog

	bikeTypeIdx int
	wheelIdx    int
	cadenceRPM  int

	config     models.DrivetrainConfig
	configured bool

	matrix        models.GearMatrix
	matrixCadence int
	overlap       *models.OverlapReport
}

func NewSession(cat *catalog.Catalog) *Session {
	s := &Session{
		catalog:    cat,
		cadenceRPM: config.DefaultCadence,
	}
	s.resetWheel()
	return s
}

func (s *Session) BikeTypes() []models.BikeType {
	return s.catalog.BikeTypes()
}

func (s *Session) BikeType() models.BikeType {
	types := s.catalog.BikeTypes()
	if s.bikeTypeIdx >= len(types) {
		return models.BikeType{}
	}
	return types[s.bikeTypeIdx]
}

func (s *Session) BikeTypeIdx() int { return s.bikeTypeIdx }

func (s *Session) CycleBikeType(delta int) {
	n := len(s.catalog.BikeTypes())
	if n == 0 {
		return
	}
	s.bikeTypeIdx = (s.bikeTypeIdx + delta + n) % n
	s.resetWheel()
	s.invalidate()
}

// resetWheel snaps the wheel selection to the default for the
// current bike type's category.
func (s *Session) resetWheel() {
	cat := s.catalog.WheelCategory(s.BikeType().Value)
	s.wheelIdx = 0
	for i, key := range cat.Sizes {
		if key == cat.Default {
			s.wheelIdx = i
			break
		}
	}
}

func (s *Session) WheelSizes() []string {
	return s.catalog.WheelCategory(s.BikeType().Value).Sizes
}

func (s *Session) WheelKey() string {
	sizes := s.WheelSizes()
	if len(sizes) == 0 {
		return ""
	}
	if s.wheelIdx >= len(sizes) {
		return sizes[0]
	}
	return sizes[s.wheelIdx]
}

func (s *Session) CycleWheel(delta int) {
	sizes := s.WheelSizes()
	n := len(sizes)
	if n == 0 {
		return
	}
	s.wheelIdx = (s.wheelIdx + delta + n) % n
	s.invalidate()
}

func (s *Session) CadenceRPM() int { return s.cadenceRPM }

func (s *Session) AdjustCadence(delta int) {
	s.cadenceRPM = util.Clamp(s.cadenceRPM+delta, config.MinCadence, config.MaxCadence)
	s.invalidate()
}

func (s *Session) Configured() bool { return s.configured }

func (s *Session) Config() models.DrivetrainConfig { return s.config }

// ApplyPreset builds the drivetrain from the selected bike type's
// preset gearing and the selected wheel. The custom type carries no
// preset and must be configured manually.
func (s *Session) ApplyPreset() error {
	bt := s.BikeType()
	return s.SetGearing(bt.Chainrings, bt.Sprockets)
}

// SetGearing installs a drivetrain with the given teeth on the
// currently selected wheel.
func (s *Session) SetGearing(chainrings, sprockets []int) error {
	circ, err := s.catalog.WheelCircumference(s.WheelKey())
	if err != nil {
		return err
	}
	cfg := gear.NewConfig(chainrings, sprockets, s.WheelKey(), circ)
	if err := gear.Validate(cfg); err != nil {
		return err
	}
	s.config = cfg
	s.configured = true
	s.invalidate()
	return nil
}

func (s *Session) invalidate() {
	s.matrix = nil
	s.overlap = nil
	if s.configured {
		// Wheel changes must flow into the stored config.
		if circ, err := s.catalog.WheelCircumference(s.WheelKey()); err == nil {
			s.config.WheelSize = s.WheelKey()
			s.config.WheelCircumferenceMeters = circ
		}
	}
}

// Matrix returns the gear matrix for the current setup, computing it
// on first use after a change.
func (s *Session) Matrix() (models.GearMatrix, error) {
	if s.matrix != nil && s.matrixCadence == s.cadenceRPM {
		return s.matrix, nil
	}
	matrix, err := gear.BuildMatrix(s.config, s.cadenceRPM)
	if err != nil {
		return nil, err
	}
	s.matrix = matrix
	s.matrixCadence = s.cadenceRPM
	return matrix, nil
}

// Overlap returns the overlap report for the current setup.
func (s *Session) Overlap() (models.OverlapReport, error) {
	if s.overlap != nil {
		return *s.overlap, nil
	}
	matrix, err := s.Matrix()
	if err != nil {
		return models.OverlapReport{}, err
	}
	report := gear.ComputeOverlap(matrix)
	s.overlap = &report
	return report, nil
}

// Recommend answers a "which gear should I use" query for the
// current setup.
func (s *Session) Recommend(query models.RecommendationQuery) (models.RecommendationResult, error) {
	return gear.Recommend(s.config, query)
}
