package catalog

import "github.com/akyairhashvil/nusui/internal/models"

// Road sizes use the French designation (700x25C etc.), MTB and kids
// sizes the inch designation. Circumferences are rollout meters.
func defaultWheelSizes() []WheelSize {
	return []WheelSize{
		{"700x18C", 2.07},
		{"700x19C", 2.08},
		{"700x20C", 2.086},
		{"700x23C", 2.096},
		{"700x25C", 2.105},
		{"700x26C", 2.115},
		{"700C", 2.13},
		{"700x28C", 2.136},
		{"700x30C", 2.146},
		{"700x32C", 2.155},
		{"700x35C", 2.168},
		{"700x38C", 2.18},
		{"700x40C", 2.2},
		{"700x44C", 2.235},
		{"700x45C", 2.242},
		{"700x47C", 2.268},
		{"650x20C", 1.938},
		{"650x23C", 1.944},
		{"650x35A", 2.09},
		{"650x38B", 2.105},
		{"650x38A", 2.125},
		{"12x1.75", 0.935},
		{"12x1.95", 0.94},
		{"14x1.50", 1.02},
		{"14x1.75", 1.055},
		{"16x1.50", 1.185},
		{"16x1.75", 1.195},
		{"16x2.00", 1.245},
		{"16x1-1/8", 1.29},
		{"16x1-3/8", 1.3},
		{"18x1.50", 1.34},
		{"18x1.75", 1.35},
		{"20x1.25", 1.45},
		{"20x1.35", 1.46},
		{"20x1.50", 1.49},
		{"20x1.75", 1.515},
		{"20x1.95", 1.565},
		{"20x1-1/8", 1.545},
		{"20x1-3/8", 1.615},
		{"22x1-3/8", 1.77},
		{"22x1-1/2", 1.785},
		{"24x3/4", 1.785},
		{"24x1", 1.753},
		{"24x1-1/8", 1.795},
		{"24x1-1/4", 1.905},
		{"24x1.75", 1.89},
		{"24x2.00", 1.925},
		{"24x2.125", 1.965},
		{"26x7/8", 1.92},
		{"26x1.25", 1.95},
		{"26x1.40", 2.005},
		{"26x1.50", 2.01},
		{"26x1.75", 2.023},
		{"26x1.95", 2.05},
		{"26x2.00", 2.055},
		{"26x2.1", 2.068},
		{"26x2.125", 2.07},
		{"26x2.35", 2.083},
		{"26x3.00", 2.17},
		{"26x1-1.0", 1.913},
		{"26x1", 1.952},
		{"26x1-1/8", 1.97},
		{"26x1-3/8", 2.068},
		{"26x1-1/2", 2.1},
		{"27x1", 2.145},
		{"27x1-1/8", 2.155},
		{"27x1-1/4", 2.161},
		{"27x1-3/8", 2.169},
		{"27.5x1.50", 2.079},
		{"27.5x1.95", 2.09},
		{"27.5x2.10", 2.148},
		{"27.5x2.25", 2.182},
		{"29x2.25", 2.281},
		{"29x2.1", 2.288},
		{"29x2.2", 2.298},
		{"29x2.3", 2.326},
	}
}

// Preset teeth lists are stored as commonly advertised; configuration
// constructors sort them into the ordering the classifier expects.
func defaultBikeTypes() []models.BikeType {
	return []models.BikeType{
		{Value: "mtb", Chainrings: []int{24, 34, 42}, Sprockets: []int{14, 16, 18, 20, 22, 24, 34}},
		{Value: "road", Chainrings: []int{34, 50}, Sprockets: []int{14, 16, 18, 20, 22, 24, 28}},
		{Value: "urban", Chainrings: []int{24, 34, 42}, Sprockets: []int{14, 16, 18, 20, 22, 24, 28}},
		{Value: "custom", Chainrings: nil, Sprockets: nil},
	}
}

func defaultWheelCategories() map[string]WheelCategory {
	all := make([]string, 0, len(defaultWheelSizes()))
	for _, w := range defaultWheelSizes() {
		all = append(all, w.Key)
	}
	return map[string]WheelCategory{
		"mtb":    {Default: "26x2.1", Sizes: []string{"26x2.1", "26x2.35", "27.5x2.10", "27.5x2.25", "29x2.1", "29x2.25", "29x2.3"}},
		"road":   {Default: "700x25C", Sizes: []string{"700x23C", "700x25C", "700x28C", "700C"}},
		"urban":  {Default: "700x35C", Sizes: []string{"700x35C", "700x38C", "700x40C", "26x1.75"}},
		"custom": {Default: "700C", Sizes: all},
	}
}
