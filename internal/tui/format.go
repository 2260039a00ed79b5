package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/nusui/internal/config"
	"github.com/akyairhashvil/nusui/internal/locale"
	"github.com/akyairhashvil/nusui/internal/models"
	"github.com/charmbracelet/x/ansi"
)

// FormatSpeed formats a speed in km/h for display (e.g., "40.6").
func FormatSpeed(kmh float64) string {
	return fmt.Sprintf("%.1f", kmh)
}

// FormatRatio formats a gear ratio (e.g., "3.57").
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f", ratio)
}

// FormatDevelopment formats a development in meters per pedal stroke.
func FormatDevelopment(meters float64) string {
	return fmt.Sprintf("%.2f m", meters)
}

// FormatPercent formats a percentage with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatTeethList renders a teeth slice for display (e.g., "24, 34, 42").
func FormatTeethList(teeth []int) string {
	parts := make([]string, len(teeth))
	for i, t := range teeth {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, ", ")
}

// FormatGear renders a chainring/sprocket pair (e.g., "50T/14T").
func FormatGear(chainring, sprocket int) string {
	return fmt.Sprintf("%dT/%dT", chainring, sprocket)
}

// chainringPosition describes a chainring by its place in the drivetrain,
// matching how riders talk about it (large, middle, small, or "#n").
func chainringPosition(strs locale.Strings, cfg models.DrivetrainConfig, chainringIdx int) string {
	n := cfg.NumChainrings()
	switch {
	case n == 1 || chainringIdx == 0:
		return strs.ChainringLarge
	case chainringIdx == n-1:
		return strs.ChainringSmall
	case n == 3:
		return strs.ChainringMiddle
	default:
		return fmt.Sprintf("#%d", chainringIdx+1)
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	suffix := config.TruncationSuffix
	if width <= ansi.StringWidth(suffix) {
		return ansi.Truncate(s, width, "")
	}
	return ansi.Truncate(s, width, suffix)
}
