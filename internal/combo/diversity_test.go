package combo

import (
	"math"
	"testing"

	"github.com/jmylchreest/combinator/internal/colour"
	"github.com/jmylchreest/combinator/internal/palette"
)

func TestPairDistance(t *testing.T) {
	red, blue := entry("red", "#ff0000"), entry("blue", "#0000ff")
	c := combination(red, blue)
	inv := c.Inverse()

	if got := PairDistance(c, c, false); got != 0 {
		t.Errorf("PairDistance(c, c) = %v, want 0", got)
	}
	if got := PairDistance(c, inv, true); got != 0 {
		t.Errorf("PairDistance(c, inverse, mirror) = %v, want 0", got)
	}

	direct := colour.Distance(c.HSL1, inv.HSL1)
	if got := PairDistance(c, inv, false); math.Abs(got-direct) > 1e-9 {
		t.Errorf("PairDistance(c, inverse, direct) = %v, want %v", got, direct)
	}

	other := combination(entry("green", "#00ff00"), entry("yellow", "#ffff00"))
	if PairDistance(c, other, true) > PairDistance(c, other, false) {
		t.Error("mirror distance should never exceed direct distance")
	}
	if PairDistance(c, other, false) != PairDistance(other, c, false) {
		t.Error("PairDistance() should be symmetric")
	}
}

func TestFilterDiverseDisabled(t *testing.T) {
	items := tailwindPairs(50)
	for _, minTotal := range []float64{0, -5, math.NaN()} {
		got := FilterDiverse(items, minTotal, false)
		if len(got) != len(items) {
			t.Errorf("FilterDiverse(minTotal=%v) kept %d, want %d", minTotal, len(got), len(items))
		}
	}
}

func TestFilterDiverseEmpty(t *testing.T) {
	if got := FilterDiverse(nil, 10, false); len(got) != 0 {
		t.Errorf("FilterDiverse(nil) = %v, want empty", got)
	}
}

func TestFilterDiverseKeepsFirst(t *testing.T) {
	items := tailwindPairs(30)
	got := FilterDiverse(items, 1000, false)
	if len(got) != 1 || got[0].Key() != items[0].Key() {
		t.Errorf("FilterDiverse() = %v, want only %s", keys(got), items[0].Key())
	}
}

func TestFilterDiverseProperty(t *testing.T) {
	p := palette.TundraPalette()
	cache := BuildCache(p.Entries, black, colour.LevelA)

	for _, excludeInverse := range []bool{false, true} {
		candidates := Enumerate(p.Entries, cache, Thresholds{MinBgContrast: 1.4}, excludeInverse)
		for _, minTotal := range []float64{5, 15, 30} {
			kept := FilterDiverse(candidates, minTotal, excludeInverse)
			if len(kept) == 0 {
				t.Fatalf("FilterDiverse(%v, %v) kept nothing", minTotal, excludeInverse)
			}
			for i := range kept {
				for j := i + 1; j < len(kept); j++ {
					if d := PairDistance(kept[i], kept[j], excludeInverse); d < minTotal {
						t.Errorf("%s and %s are %.2f apart, want >= %v", kept[i].Key(), kept[j].Key(), d, minTotal)
					}
				}
			}
		}
	}
}

func TestFilterDiverseMirrorRule(t *testing.T) {
	c := combination(entry("red", "#ff0000"), entry("blue", "#0000ff"))
	items := []Combination{c, c.Inverse()}

	if got := FilterDiverse(items, 10, false); len(got) != 2 {
		t.Errorf("with inverses kept, FilterDiverse() = %v, want both orientations", keys(got))
	}
	if got := FilterDiverse(items, 10, true); len(got) != 1 {
		t.Errorf("with inverses excluded, FilterDiverse() = %v, want one", keys(got))
	}
}

func TestFilterDiversePreservesOrder(t *testing.T) {
	items := tailwindPairs(200)
	kept := FilterDiverse(items, 20, false)

	pos := make(map[string]int, len(items))
	for i, c := range items {
		pos[c.Key()] = i
	}
	for i := 1; i < len(kept); i++ {
		if pos[kept[i-1].Key()] >= pos[kept[i].Key()] {
			t.Fatalf("FilterDiverse() reordered %s and %s", kept[i-1].Key(), kept[i].Key())
		}
	}
}
