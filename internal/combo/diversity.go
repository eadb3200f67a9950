package combo

import (
	"math"

	"github.com/jmylchreest/combinator/internal/colour"
)

// PairDistance is the average perceptual distance between corresponding
// members of two combinations. With mirrorEquivalent set the crossed pairing
// is also tried and the smaller distance wins, so a pair and its inverse
// count as the same thing.
func PairDistance(a, b Combination, mirrorEquivalent bool) float64 {
	direct := (colour.Distance(a.HSL1, b.HSL1) + colour.Distance(a.HSL2, b.HSL2)) / 2
	if !mirrorEquivalent {
		return direct
	}
	cross := (colour.Distance(a.HSL1, b.HSL2) + colour.Distance(a.HSL2, b.HSL1)) / 2
	return math.Min(direct, cross)
}

// FilterDiverse keeps, in order, each candidate whose PairDistance to every
// combination already kept is at least minTotal. The first candidate is
// always kept. A minTotal of zero or less returns candidates unchanged.
//
// When excludeInverse is false only the direct pairing is measured, so a
// pair and its mirror may both survive as distinct role assignments.
func FilterDiverse(candidates []Combination, minTotal float64, excludeInverse bool) []Combination {
	if !(minTotal > 0) {
		return candidates
	}

	kept := make([]Combination, 0, len(candidates))
	for _, candidate := range candidates {
		diverse := true
		for _, k := range kept {
			if PairDistance(candidate, k, excludeInverse) < minTotal {
				diverse = false
				break
			}
		}
		if diverse {
			kept = append(kept, candidate)
		}
	}
	return kept
}
