package combo

import (
	"github.com/jmylchreest/combinator/internal/colour"
	"github.com/jmylchreest/combinator/internal/palette"
)

var (
	black = colour.RGB{}
	white = colour.RGB{R: 255, G: 255, B: 255}
)

func entry(id, hex string) palette.Entry {
	return palette.Entry{Name: id, Shade: palette.BaseShade, Hex: hex, ID: id}
}

func combination(a, b palette.Entry) Combination {
	return Combination{C1: a, C2: b, HSL1: a.RGB().HSL(), HSL2: b.RGB().HSL()}
}

// tailwindPairs returns the first n forward pairs of the Tailwind palette.
func tailwindPairs(n int) []Combination {
	entries := palette.TailwindPalette().Entries
	out := make([]Combination, 0, n)
	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			if len(out) == n {
				return out
			}
			out = append(out, combination(entries[i], entries[j]))
		}
	}
	return out
}

func keys(items []Combination) []string {
	out := make([]string, len(items))
	for i, c := range items {
		out[i] = c.Key()
	}
	return out
}

func keyCounts(items []Combination) map[string]int {
	counts := make(map[string]int, len(items))
	for _, c := range items {
		counts[c.Key()]++
	}
	return counts
}
