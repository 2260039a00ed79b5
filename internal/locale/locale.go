// Package locale holds the display-string tables. The application
// logic is written once; only these tables differ between languages.
// Format strings keep their verb order identical across tables so the
// render layer can use either interchangeably.
package locale

import "github.com/akyairhashvil/nusui/internal/models"

// Locale identifies a string table.
type Locale string

const (
	EN Locale = "en"
	ES Locale = "es"
)

// Strings is one complete display-string table.
type Strings struct {
	AppTitle string

	TabIntro     string
	TabConfig    string
	TabVisual    string
	TabRecommend string
	TabTechnical string

	ModeLabel     string
	ModeBeginner  string
	ModeTechnical string

	BikeTypeNames map[string]string

	ConfigTitle     string
	ConfigIntro     string
	BikeTypeLabel   string
	WheelSizeLabel  string
	CadenceLabel    string
	CadenceHint     string
	ManualButton    string
	VisualizeButton string

	ManualTitle       string
	ChainringsLabel   string
	SprocketsLabel    string
	TeethPrompt       string
	ChainringsExample string
	SprocketsExample  string
	ConfigSaved       string
	NeedGears         string
	NotConfigured     string

	VisualTableTab   string
	VisualSpeedTab   string
	VisualDevTab     string
	GearTableTitle   string // cadence RPM
	GearTableNote    string // wheel size, circumference
	CrossingCount    string // crossing count, total
	SpeedChartTitle  string // cadence RPM
	SpeedChartLegend string
	DevTitle         string
	DevBlurb         string
	DevLegend        string

	RecommendTitle   string
	TargetSpeedLabel string
	SlopeLabel       string
	SlopeHint        string
	CalculateHint    string
	RecommendedGear  string // chainring teeth, sprocket teeth
	UseGearLine      string // ring description, ring count, sprocket position, sprocket count
	EstimatedSpeed   string
	GearRatioLabel   string
	DevelopmentLabel string
	CrossingWarning  string
	AdviceLabel      string
	Advice           map[models.AdviceCategory]string

	ChainringLarge  string
	ChainringMiddle string
	ChainringSmall  string

	TechTitle        string
	TechIntro        string
	RatioTab         string
	PowerTab         string
	OverlapTab       string
	RatioTitle       string
	RatioExplanation string
	PowerTitle       string // chainring teeth, sprocket teeth
	PowerExplanation string
	OverlapTitle     string

	OverlapNeedTwo      string
	OverlapPairFiltered string // ring1 teeth, ring2 teeth
	OverlapPairFull     string // ring1 teeth, ring2 teeth
	OverlapRangeLine    string // start, end
	OverlapPctLine      string // percent
	OverlapEval         map[models.OverlapRating]string
	OverlapNone         string
	UsableRangeLine     string // range factor
	UsableRangeMissing  string
	TotalRangeLine      string // range factor
	RangeEval           map[models.RangeRating]string

	CrossingReasons map[models.CrossingReason]string

	DebugTitle      string
	DebugLegend     string
	DebugChainrings string // teeth list
	DebugSprockets  string // teeth list

	IntroTitle string
	IntroText  string
	HelpTitle  string
	HelpText   string
	AboutTitle string
	AboutText  string

	KeyHints string
}

var tables = map[Locale]Strings{
	EN: english,
	ES: spanish,
}

// For returns the table for a locale, defaulting to English.
func For(l Locale) Strings {
	if s, ok := tables[l]; ok {
		return s
	}
	return english
}

// Next cycles through the available locales.
func Next(l Locale) Locale {
	if l == EN {
		return ES
	}
	return EN
}
