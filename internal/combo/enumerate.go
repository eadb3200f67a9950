package combo

import (
	"math"

	"github.com/jmylchreest/combinator/internal/colour"
	"github.com/jmylchreest/combinator/internal/palette"
)

// Enumerate returns every admissible pair drawn from active. Entries that
// fail text contrast, or are missing from the cache, are dropped before
// pairing. Pairs are visited i<j in the order of active; each admitted pair
// emits (a, b) followed by (b, a) unless excludeInverse is set.
func Enumerate(active []palette.Entry, cache Cache, t Thresholds, excludeInverse bool) []Combination {
	t = t.Normalise()

	valid := make([]palette.Entry, 0, len(active))
	for _, e := range active {
		if cache.Passes(e.ID) {
			valid = append(valid, e)
		}
	}

	var candidates []Combination
	for i, c1 := range valid {
		d1 := cache[c1.ID]
		for _, c2 := range valid[i+1:] {
			if c1.ID == c2.ID {
				continue
			}
			d2 := cache[c2.ID]
			if !admits(d1, d2, t) {
				continue
			}

			candidates = append(candidates, Combination{C1: c1, C2: c2, HSL1: d1.HSL, HSL2: d2.HSL})
			if !excludeInverse {
				candidates = append(candidates, Combination{C1: c2, C2: c1, HSL1: d2.HSL, HSL2: d1.HSL})
			}
		}
	}

	return candidates
}

// admits applies the per-pair constraints.
func admits(a, b ColourData, t Thresholds) bool {
	// Distinct ids can still share a colour.
	if a.RGB == b.RGB {
		return false
	}

	bg := colour.Contrast(a.RGB, b.RGB)
	if bg <= 1.0 || bg < t.MinBgContrast {
		return false
	}

	return colour.HueDistance(a.HSL.H, b.HSL.H) >= t.MinHueDistance &&
		math.Abs(a.HSL.S-b.HSL.S) >= t.MinSatDistance &&
		math.Abs(a.HSL.L-b.HSL.L) >= t.MinLumDistance
}
