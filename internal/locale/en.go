package locale

import "github.com/akyairhashvil/nusui/internal/models"

var english = Strings{
	AppTitle: "Ñu-sui: learn how to use your bike gears",

	TabIntro:     "Introduction",
	TabConfig:    "My Bicycle",
	TabVisual:    "Visualization",
	TabRecommend: "Which Gear to Use?",
	TabTechnical: "Technical Analysis",

	ModeLabel:     "Mode",
	ModeBeginner:  "Beginner",
	ModeTechnical: "Technical/Sport",

	BikeTypeNames: map[string]string{
		"mtb":    "MTB (Mountain)",
		"road":   "Road",
		"urban":  "Urban/Commuter",
		"custom": "Custom",
	},

	ConfigTitle:     "Configure your bicycle",
	ConfigIntro:     "Let's configure your bicycle step by step. If you don't know some data, you can use the default values.",
	BikeTypeLabel:   "Bicycle type",
	WheelSizeLabel:  "Wheel size",
	CadenceLabel:    "Usual cadence (pedal strokes per minute)",
	CadenceHint:     "A cadence of 70-90 RPM is suitable for most cyclists.",
	ManualButton:    "Configure manually",
	VisualizeButton: "Visualize my bicycle",

	ManualTitle:       "Manual gear configuration",
	ChainringsLabel:   "Chainrings (front)",
	SprocketsLabel:    "Sprockets (rear)",
	TeethPrompt:       "Enter the number of teeth separated by commas",
	ChainringsExample: "Example: 24,34,42 for triple chainring or 34,50 for double chainring",
	SprocketsExample:  "Example: 11,12,14,16,18,21,24,28,32,36 for a 10-speed cassette",
	ConfigSaved:       "Gear configuration saved successfully",
	NeedGears:         "You must configure at least one chainring and one sprocket",
	NotConfigured:     "Please configure your bicycle first in the 'My Bicycle' tab",

	VisualTableTab:   "Gear table",
	VisualSpeedTab:   "Speed chart",
	VisualDevTab:     "Development",
	GearTableTitle:   "Estimated speeds (km/h) at %d RPM",
	GearTableNote:    "Speeds are calculated with wheel size: %s (%.3fm circumference)",
	CrossingCount:    "Speeds for %d of %d combinations are not shown because they cause 'chain crossing', which increases component wear and reduces efficiency. These combinations are marked with '---'.",
	SpeedChartTitle:  "Speeds at %d RPM",
	SpeedChartLegend: "o = safe combinations   x = chain crossing combinations (avoid)",
	DevTitle:         "Gear Development",
	DevBlurb:         "Development indicates the distance traveled in meters for each complete pedal stroke.",
	DevLegend:        "Bars marked 'x' cause chain crossing; avoid them for prolonged periods.",

	RecommendTitle:   "Which gear should I use?",
	TargetSpeedLabel: "Desired speed (km/h)",
	SlopeLabel:       "Slope (%)",
	SlopeHint:        "0% = flat terrain, positive values = uphill, negative values = downhill",
	CalculateHint:    "Press enter to calculate the recommended gear",
	RecommendedGear:  "Recommended gear: %dT / %dT",
	UseGearLine:      "Use the %s chainring (of %d) and sprocket #%d (of %d)",
	EstimatedSpeed:   "Estimated speed",
	GearRatioLabel:   "Gear ratio",
	DevelopmentLabel: "Development",
	CrossingWarning:  "WARNING: This combination crosses the chain. No optimal combination was found that does not cross the chain for the specified speed and slope. It is recommended to use this gear only briefly and adjust the target speed.",
	AdviceLabel:      "Tip",
	Advice: map[models.AdviceCategory]string{
		models.AdviceSteepClimb: "For steep slopes, maintain a high cadence and use lighter gears to avoid straining your knees.",
		models.AdviceMildClimb:  "Maintain a constant cadence. If you feel you're exerting too much force, switch to a lighter gear.",
		models.AdviceDescent:    "On descents, you can use harder gears or simply stop pedaling if the speed is high.",
		models.AdviceFlat:       "On flat terrain, try to maintain a comfortable cadence (80-90 RPM) and adjust the gear according to the wind and your physical condition.",
	},

	ChainringLarge:  "large",
	ChainringMiddle: "middle",
	ChainringSmall:  "small",

	TechTitle:        "Technical Analysis",
	TechIntro:        "This tab contains technical analyses for experienced cyclists.",
	RatioTab:         "Gear ratio",
	PowerTab:         "Cadence vs Power",
	OverlapTab:       "Overlap",
	RatioTitle:       "Gear ratio analysis",
	RatioExplanation: "The gear ratio is the number of teeth on the chainring divided by the number of teeth on the sprocket. Values above 5.0 are very hard gears for descents or speed, 2.5-5.0 is the optimal range for normal use, and values below 2.5 are light gears for climbing.",
	PowerTitle:       "Speed and power for combination %dT / %dT",
	PowerExplanation: "The power is an estimate based on a simplified model, considering the aerodynamic resistance that increases exponentially with speed. For the same gear, increasing cadence linearly increases speed, while required power grows much faster.",
	OverlapTitle:     "Gear overlap analysis",

	OverlapNeedTwo:      "At least two chainrings are needed to analyze overlap.",
	OverlapPairFiltered: "Between chainring %dT and %dT (without chain crossings):",
	OverlapPairFull:     "Between chainring %dT and %dT (including chain crossings):",
	OverlapRangeLine:    "- Overlap range: %.2f to %.2f",
	OverlapPctLine:      "- Overlap percentage: %.1f%%",
	OverlapEval: map[models.OverlapRating]string{
		models.OverlapLow:      "- Evaluation: Low overlap. There may be 'gaps' when changing chainrings.",
		models.OverlapModerate: "- Evaluation: Moderate overlap. Balanced configuration.",
		models.OverlapHigh:     "- Evaluation: High overlap. There are many redundant gears.",
	},
	OverlapNone:        "- There is no overlap between usable gears.",
	UsableRangeLine:    "Total gear range (without chain crossings): %.2fx",
	UsableRangeMissing: "Cannot calculate range without chain crossings.",
	TotalRangeLine:     "Total gear range (including chain crossings): %.2fx",
	RangeEval: map[models.RangeRating]string{
		models.RangeLimited:  "Evaluation: Limited range. Suitable for uniform terrain or specific use.",
		models.RangeModerate: "Evaluation: Moderate range. Good for general use.",
		models.RangeWide:     "Evaluation: Wide range. Excellent versatility for different terrains.",
	},

	CrossingReasons: map[models.CrossingReason]string{
		models.CrossingLargeLarge:          "Large chainring with large sprocket: increases wear and reduces efficiency",
		models.CrossingSmallSmall:          "Small chainring with small sprocket: increases wear and reduces efficiency",
		models.CrossingMiddleExtreme:       "Middle chainring with extreme sprocket: may cause wear",
		models.CrossingIntermediateExtreme: "Intermediate chainring with extreme sprocket: may cause wear",
	},

	DebugTitle:      "Chain Crossing Matrix (X = crossing, O = safe)",
	DebugLegend:     "Combinations marked with X should be avoided for prolonged periods: they increase wear on the chain, chainrings, sprockets, and derailleur, reduce pedaling efficiency, and increase the risk of the chain coming off.",
	DebugChainrings: "Chainrings: %v",
	DebugSprockets:  "Sprockets: %v",

	IntroTitle: "Ñu-sui: Learn how to use your bike gears!",
	IntroText: `Hello! This app will help you understand how to use your bicycle gears.

Learning to use gears properly will allow you to:
  - Pedal with less effort
  - Maintain a comfortable speed
  - Climb hills more easily
  - Prevent premature wear on your bicycle

It's like choosing the right gear in a car, but for your bicycle.

What are gears?
  Gears are combinations of 'chainrings' (front) and 'sprockets' (rear)
  that determine how far your bicycle moves with each pedal stroke.

Chainrings (front)
  Toothed discs attached to the pedals. The larger ones are for speed on
  flat terrain, the smaller ones for climbing hills.

Sprockets (rear)
  Toothed discs on the rear wheel. The smaller ones are for speed, the
  larger ones for easier pedaling uphill.

Cadence
  The speed at which you pedal (revolutions per minute). Ideally,
  maintain between 70-90 RPM.`,

	HelpTitle: "How to use this application",
	HelpText: `1. MY BICYCLE: select the bicycle type most similar to yours, adjust
   the wheel size and your usual cadence, or configure manually if you
   know the exact teeth of your drivetrain.

2. VISUALIZATION: explore the gear table to see what speed you'll reach
   with each combination, the speed chart, and the development per
   pedal stroke.

3. WHICH GEAR TO USE?: set your desired speed and the slope of the
   terrain to get a personalized recommendation.

4. TECHNICAL ANALYSIS (technical mode only): gear ratio, power, and
   overlap analyses for experienced cyclists.

CHAIN CROSSING: extreme combinations (large/large or small/small) put
the chain at a pronounced diagonal angle, causing wear and loss of
efficiency. These combinations are marked or filtered. The golden rule:
use combinations where the chain works as straight as possible.`,

	AboutTitle: "Bicycle Speed Calculator",
	AboutText: `The term "Ñu-sui" means "cyclist" in Zapoteco, a native language from
Oaxaca, Mexico. An educational tool for cyclists of all levels.

This application helps you understand and optimize the use of your
bicycle gears to improve your pedaling experience.`,

	KeyHints: "tab/shift+tab switch tabs - m mode - l language - x crossing matrix - ? help - e export PDF - q quit",
}
