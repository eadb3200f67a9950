// Package combo generates, filters and orders two-colour background
// combinations that stay legible under a shared text colour.
package combo

import (
	"github.com/jmylchreest/combinator/internal/colour"
	"github.com/jmylchreest/combinator/internal/palette"
)

// Combination is an ordered pair of palette entries used as the two
// backgrounds of a two-tone layout. HSL values are carried alongside so the
// filter and sequencer never re-derive them.
type Combination struct {
	C1   palette.Entry `json:"c1"`
	C2   palette.Entry `json:"c2"`
	HSL1 colour.HSL    `json:"hsl1"`
	HSL2 colour.HSL    `json:"hsl2"`
}

// Inverse returns the combination with the two roles swapped.
func (c Combination) Inverse() Combination {
	return Combination{C1: c.C2, C2: c.C1, HSL1: c.HSL2, HSL2: c.HSL1}
}

// Key returns "c1id/c2id".
func (c Combination) Key() string {
	return c.C1.ID + "/" + c.C2.ID
}

// InternalDistance is the perceptual distance between the pair's own two
// colours; loud pairs score high, subtle pairs low.
func (c Combination) InternalDistance() float64 {
	return colour.Distance(c.HSL1, c.HSL2)
}
