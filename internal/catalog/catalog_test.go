package catalog

import (
	"errors"
	"testing"

	"github.com/akyairhashvil/nusui/internal/models"
)

func TestDefaultWheelLookup(t *testing.T) {
	c := Default()

	circ, err := c.WheelCircumference("700x25C")
	if err != nil {
		t.Fatalf("WheelCircumference failed: %v", err)
	}
	if circ != 2.105 {
		t.Fatalf("700x25C = %v, want 2.105", circ)
	}

	circ, err = c.WheelCircumference("26x2.1")
	if err != nil {
		t.Fatalf("WheelCircumference failed: %v", err)
	}
	if circ != 2.068 {
		t.Fatalf("26x2.1 = %v, want 2.068", circ)
	}
}

func TestUnknownWheelSize(t *testing.T) {
	_, err := Default().WheelCircumference("31x9.9")
	if !errors.Is(err, ErrUnknownWheelSize) {
		t.Fatalf("expected ErrUnknownWheelSize, got %v", err)
	}
}

func TestWheelSizesAllPositiveAndDistinct(t *testing.T) {
	c := Default()
	keys := c.WheelSizeKeys()
	if len(keys) < 70 {
		t.Fatalf("expected the full size table, got %d entries", len(keys))
	}
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if seen[key] {
			t.Fatalf("duplicate wheel size %q", key)
		}
		seen[key] = true
		circ, err := c.WheelCircumference(key)
		if err != nil {
			t.Fatalf("lookup %q failed: %v", key, err)
		}
		if circ <= 0 {
			t.Fatalf("wheel size %q has circumference %v", key, circ)
		}
	}
}

func TestBikeTypePresets(t *testing.T) {
	c := Default()

	road, ok := c.BikeType("road")
	if !ok {
		t.Fatal("road preset missing")
	}
	if len(road.Chainrings) != 2 || len(road.Sprockets) != 7 {
		t.Fatalf("road preset = %v / %v", road.Chainrings, road.Sprockets)
	}

	mtb, ok := c.BikeType("mtb")
	if !ok {
		t.Fatal("mtb preset missing")
	}
	if len(mtb.Chainrings) != 3 {
		t.Fatalf("mtb chainrings = %v", mtb.Chainrings)
	}

	custom, ok := c.BikeType("custom")
	if !ok {
		t.Fatal("custom preset missing")
	}
	if len(custom.Chainrings) != 0 || len(custom.Sprockets) != 0 {
		t.Fatalf("custom preset should be empty, got %v / %v", custom.Chainrings, custom.Sprockets)
	}

	if _, ok := c.BikeType("recumbent"); ok {
		t.Fatal("unexpected preset")
	}
}

func TestWheelCategories(t *testing.T) {
	c := Default()

	tests := []struct {
		bike        string
		wantDefault string
	}{
		{"mtb", "26x2.1"},
		{"road", "700x25C"},
		{"urban", "700x35C"},
		{"custom", "700C"},
	}
	for _, tt := range tests {
		cat := c.WheelCategory(tt.bike)
		if cat.Default != tt.wantDefault {
			t.Fatalf("%s default = %q, want %q", tt.bike, cat.Default, tt.wantDefault)
		}
		if len(cat.Sizes) == 0 {
			t.Fatalf("%s has no sizes", tt.bike)
		}
		// Every offered size must resolve, and the default must be
		// among the offered sizes.
		foundDefault := false
		for _, size := range cat.Sizes {
			if _, err := c.WheelCircumference(size); err != nil {
				t.Fatalf("%s offers unresolvable size %q", tt.bike, size)
			}
			if size == cat.Default {
				foundDefault = true
			}
		}
		if !foundDefault {
			t.Fatalf("%s default %q not in its size list", tt.bike, cat.Default)
		}
	}

	// Unknown bike types fall back to the full list.
	fallback := c.WheelCategory("recumbent")
	if fallback.Default != "700C" || len(fallback.Sizes) != len(c.WheelSizeKeys()) {
		t.Fatalf("fallback category = %+v", fallback)
	}
}

func TestInjectedCatalog(t *testing.T) {
	c := New(
		[]WheelSize{{"test", 2.0}, {"test", 2.5}},
		[]models.BikeType{{Value: "lab", Chainrings: []int{40}, Sprockets: []int{20}}},
		nil,
	)
	circ, err := c.WheelCircumference("test")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if circ != 2.5 {
		t.Fatalf("duplicate key should keep last value, got %v", circ)
	}
	if keys := c.WheelSizeKeys(); len(keys) != 1 {
		t.Fatalf("duplicate key should appear once in order, got %v", keys)
	}
}
