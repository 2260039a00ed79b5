package config

// Layout constants.
const (
	// MinContentWidth is the smallest terminal width the tabs render into.
	MinContentWidth = 40

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 70

	// TableCellWidth is the width of one speed/ratio table cell.
	TableCellWidth = 7

	// ChartBarWidth is the maximum width of a horizontal chart bar.
	ChartBarWidth = 40

	// ChartRows is the height of the speed chart plot area.
	ChartRows = 12
)

// Display limits.
const (
	// CrossingMask replaces speeds for combinations that cross the chain.
	CrossingMask = "---"

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Power curve sampling: cadences evaluated for the cadence/power table.
const (
	PowerCurveCadenceMin  = 60
	PowerCurveCadenceMax  = 108
	PowerCurveCadenceStep = 2
)
