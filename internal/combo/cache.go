package combo

import (
	"strconv"
	"strings"

	"github.com/jmylchreest/combinator/internal/colour"
	"github.com/jmylchreest/combinator/internal/palette"
)

// ColourData is the per-entry data the enumerator needs, computed once per
// palette, text colour and contrast level.
type ColourData struct {
	RGB                colour.RGB `json:"rgb"`
	HSL                colour.HSL `json:"hsl"`
	PassesTextContrast bool       `json:"passes_text_contrast"`
}

// Cache maps entry ids to their precomputed colour data.
type Cache map[string]ColourData

// Passes reports whether id is known and passes text contrast.
func (c Cache) Passes(id string) bool {
	return c[id].PassesTextContrast
}

// PassesContrast returns the per-id text contrast results.
func (c Cache) PassesContrast() map[string]bool {
	out := make(map[string]bool, len(c))
	for id, data := range c {
		out[id] = data.PassesTextContrast
	}
	return out
}

// BuildCache decodes every palette entry and checks it against the text
// colour at the given level's threshold.
func BuildCache(entries []palette.Entry, text colour.RGB, level colour.ContrastLevel) Cache {
	threshold := level.Threshold()
	cache := make(Cache, len(entries))
	for _, e := range entries {
		rgb := e.RGB()
		cache[e.ID] = ColourData{
			RGB:                rgb,
			HSL:                colour.RGBToHSL(rgb),
			PassesTextContrast: colour.Contrast(rgb, text) >= threshold,
		}
	}
	return cache
}

// cacheKey fingerprints every input BuildCache depends on. Any change to an
// entry's id or hex, the text colour or the threshold produces a new key.
// Ids and hexes are quoted so no field can borrow another's separators.
func cacheKey(entries []palette.Entry, text colour.RGB, level colour.ContrastLevel) string {
	var b strings.Builder
	b.Grow(len(entries)*28 + 32)
	b.WriteString(text.Hex())
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(level.Threshold(), 'g', -1, 64))
	for _, e := range entries {
		b.WriteByte('|')
		b.WriteString(strconv.Quote(e.ID))
		b.WriteByte('=')
		b.WriteString(strconv.Quote(e.Hex))
	}
	return b.String()
}
