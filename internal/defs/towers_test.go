package defs

import (
	"testing"

	"radius-defense/internal/config"
)

func TestTowerLibraryCoversCategories(t *testing.T) {
	lib := NewTowerLibrary(config.Default().Tower)
	for _, c := range Categories {
		def, ok := lib[c]
		if !ok {
			t.Fatalf("Missing definition for %s", c)
		}
		if def.Category != c {
			t.Errorf("Definition for %s has category %s", c, def.Category)
		}
		if def.Combat.BulletCount < 1 || def.Combat.FireInterval <= 0 {
			t.Errorf("%s has unusable combat stats %+v", c, def.Combat)
		}
	}
}

func TestRadiusTowerUsesTowerConfig(t *testing.T) {
	tc := config.Default().Tower
	tc.BulletCount = 7
	def := NewTowerLibrary(tc)[CategoryRadius]
	if def.Combat.BulletCount != 7 {
		t.Errorf("Expected 7 bullets, got %d", def.Combat.BulletCount)
	}
	if def.Combat.Homing {
		t.Error("Radius tower should fire a fan, not homing bullets")
	}
}

func TestCategoryString(t *testing.T) {
	tests := map[TowerCategory]string{
		CategoryBasic:     "Basic",
		CategorySniper:    "Sniper",
		CategoryRadius:    "Radius",
		TowerCategory(42): "Unknown",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(c), got, want)
		}
	}
	if TowerCategory(-1).Valid() || !CategoryRadius.Valid() {
		t.Error("Valid() misreports category range")
	}
}
