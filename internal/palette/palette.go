// Package palette provides the colour tables combinations are drawn from and
// the selection of entries a caller has made active.
package palette

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jmylchreest/combinator/internal/colour"
)

// Entry is a single named palette colour.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Shade string `json:"shade" yaml:"shade"`
	Hex   string `json:"hex" yaml:"hex"`
	ID    string `json:"id" yaml:"id"`
}

// RGB decodes the entry's hex value.
func (e Entry) RGB() colour.RGB {
	return colour.HexToRGB(e.Hex)
}

// Label returns "name shade", or just the name for single-shade palettes.
func (e Entry) Label() string {
	if e.Shade == "" || e.Shade == BaseShade {
		return e.Name
	}
	return e.Name + " " + e.Shade
}

// BaseShade is the shade used by palettes without tonal ramps.
const BaseShade = "base"

// Palette is an ordered collection of entries with unique ids.
type Palette struct {
	Name    string
	Entries []Entry
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int {
	return len(p.Entries)
}

// Get returns the entry with the given id.
func (p *Palette) Get(id string) (Entry, bool) {
	for _, e := range p.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Names returns the distinct entry names in palette order.
func (p *Palette) Names() []string {
	var names []string
	for _, e := range p.Entries {
		if !slices.Contains(names, e.Name) {
			names = append(names, e.Name)
		}
	}
	return names
}

// Shades returns the distinct shades in palette order.
func (p *Palette) Shades() []string {
	var shades []string
	for _, e := range p.Entries {
		if !slices.Contains(shades, e.Shade) {
			shades = append(shades, e.Shade)
		}
	}
	return shades
}

// Validate checks that every entry has a decodable hex value and a unique id.
func (p *Palette) Validate() error {
	if len(p.Entries) == 0 {
		return fmt.Errorf("palette %q has no colours", p.Name)
	}
	seen := make(map[string]bool, len(p.Entries))
	for i, e := range p.Entries {
		if e.ID == "" {
			return fmt.Errorf("entry %d (%s): missing id", i+1, e.Name)
		}
		if seen[e.ID] {
			return fmt.Errorf("entry %d: duplicate id %q", i+1, e.ID)
		}
		seen[e.ID] = true
		if _, err := colour.ParseHex(e.Hex); err != nil {
			return fmt.Errorf("entry %d (%s): invalid hex %q: %w", i+1, e.ID, e.Hex, err)
		}
	}
	return nil
}

// EntryID builds the conventional "name-shade" id, optionally prefixed with a
// palette slug. Base-shade entries omit the shade.
func EntryID(prefix, name, shade string) string {
	id := slugify(name)
	if shade != "" && shade != BaseShade {
		id += "-" + slugify(shade)
	}
	if prefix != "" {
		id = prefix + "-" + id
	}
	return id
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "-")
}
