package combo

import (
	"cmp"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
)

const (
	// MaxSequenced caps how many combinations are actively ordered. Anything
	// beyond it is appended in its original order.
	MaxSequenced = 500

	// Lookahead is how many items of a tier are scored per placement.
	Lookahead = 20

	tierCount = 4

	// neighbourWindow placed items are scored against, most recent weighted 1,
	// then 1/2, 1/4, ...
	neighbourWindow = 5

	// rotationWindow is how far back a colour counts as recently used.
	rotationWindow = 6

	// rotationBonus is added for each member whose colour has not been used
	// in either role within rotationWindow.
	rotationBonus = 12.0

	// rolePenalty is subtracted each time a member repeats a recent colour in
	// the same role.
	rolePenalty = 20.0
)

// Mode selects the sequencing strategy.
type Mode string

const (
	// ModeTiered spreads quality tiers round-robin and scores a lookahead
	// window against several recent neighbours.
	ModeTiered Mode = "tiered"
	// ModeNearest is the fast mode: repeatedly place the remaining pair
	// furthest from the last one placed.
	ModeNearest Mode = "nearest"
)

// ValidModes returns the supported sequencing modes.
func ValidModes() []Mode {
	return []Mode{ModeTiered, ModeNearest}
}

// String implements pflag.Value.
func (m Mode) String() string {
	return string(m)
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	mode := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(ValidModes(), mode) {
		return fmt.Errorf("invalid sequence mode: %s (valid modes: %v)", s, ValidModes())
	}
	*m = mode
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "mode"
}

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// NewSeededShuffler returns a Shuffler that always produces the same
// permutations for the same seed.
func NewSeededShuffler(seed uint64) Shuffler {
	return rand.New(rand.NewPCG(seed, seed^0xda3e39cb94b95bdb))
}

// Sequencer orders accepted combinations for display so neighbours look
// different from each other. It only reorders; the set of combinations is
// never changed.
type Sequencer struct {
	Mode Mode
	// Rand drives within-tier shuffling. Nil uses the global source.
	Rand Shuffler
}

// Sequence returns items in display order. Lists of zero or one item are
// returned as is; otherwise a new slice is returned and items is untouched.
func (s Sequencer) Sequence(items []Combination) []Combination {
	if len(items) <= 1 {
		return items
	}
	if s.Mode == ModeNearest {
		return sequenceNearest(items)
	}
	return s.sequenceTiered(items)
}

func (s Sequencer) shuffler() Shuffler {
	if s.Rand == nil {
		return globalShuffler{}
	}
	return s.Rand
}

func (s Sequencer) sequenceTiered(items []Combination) []Combination {
	head := items[:min(len(items), MaxSequenced)]
	tail := items[len(head):]

	tiers := partitionTiers(head)
	shuffle := s.shuffler()
	for _, tier := range tiers {
		shuffle.Shuffle(len(tier), func(i, j int) { tier[i], tier[j] = tier[j], tier[i] })
	}

	out := make([]Combination, 0, len(items))
	next := 0
	for len(out) < len(head) {
		t := nextTier(tiers, next)
		if t < 0 {
			break
		}
		next = t + 1

		window := tiers[t][:min(Lookahead, len(tiers[t]))]
		best, bestScore := 0, math.Inf(-1)
		for i, candidate := range window {
			if sc := placementScore(candidate, out); sc > bestScore {
				best, bestScore = i, sc
			}
		}

		out = append(out, tiers[t][best])
		tiers[t] = slices.Delete(tiers[t], best, best+1)
	}

	for _, tier := range tiers {
		out = append(out, tier...)
	}
	return append(out, tail...)
}

// partitionTiers splits items into quartiles by internal distance, loudest
// first. Ties keep their input order.
func partitionTiers(items []Combination) [][]Combination {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Combination) int {
		return cmp.Compare(b.InternalDistance(), a.InternalDistance())
	})

	n := len(sorted)
	tiers := make([][]Combination, tierCount)
	for k := range tierCount {
		tiers[k] = slices.Clone(sorted[k*n/tierCount : (k+1)*n/tierCount])
	}
	return tiers
}

// nextTier returns the first non-empty tier at or after start, wrapping, or
// -1 when every tier is empty.
func nextTier(tiers [][]Combination, start int) int {
	for k := range len(tiers) {
		idx := (start + k) % len(tiers)
		if len(tiers[idx]) > 0 {
			return idx
		}
	}
	return -1
}

// placementScore rates candidate as the next item after placed.
func placementScore(candidate Combination, placed []Combination) float64 {
	var weighted, weights float64
	w := 1.0
	for k := 1; k <= neighbourWindow && k <= len(placed); k++ {
		weighted += w * PairDistance(candidate, placed[len(placed)-k], true)
		weights += w
		w /= 2
	}

	score := 0.0
	if weights > 0 {
		score = weighted / weights
	}

	recent := placed[max(0, len(placed)-rotationWindow):]
	for _, id := range []string{candidate.C1.ID, candidate.C2.ID} {
		if !usedRecently(recent, id) {
			score += rotationBonus
		}
	}
	for _, r := range recent {
		if r.C1.ID == candidate.C1.ID {
			score -= rolePenalty
		}
		if r.C2.ID == candidate.C2.ID {
			score -= rolePenalty
		}
	}

	return score
}

func usedRecently(recent []Combination, id string) bool {
	for _, r := range recent {
		if r.C1.ID == id || r.C2.ID == id {
			return true
		}
	}
	return false
}

// sequenceNearest starts from the first item and repeatedly appends the
// remaining item furthest from the last one placed, for up to MaxSequenced
// placements.
func sequenceNearest(items []Combination) []Combination {
	pool := slices.Clone(items[1:])
	out := make([]Combination, 1, len(items))
	out[0] = items[0]

	for len(pool) > 0 && len(out) < MaxSequenced {
		last := out[len(out)-1]
		best, bestDist := 0, -1.0
		for i, candidate := range pool {
			if d := PairDistance(last, candidate, true); d > bestDist {
				best, bestDist = i, d
			}
		}
		out = append(out, pool[best])
		pool = slices.Delete(pool, best, best+1)
	}

	return append(out, pool...)
}
