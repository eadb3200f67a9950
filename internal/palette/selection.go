package palette

import (
	"slices"
)

// Selection is the set of entry ids a caller has made active. Toggle helpers
// return a new Selection and never modify the receiver, so a selection can be
// handed to a generation run and edited afterwards without affecting it.
type Selection map[string]struct{}

// NewSelection returns a selection containing ids.
func NewSelection(ids ...string) Selection {
	sel := make(Selection, len(ids))
	for _, id := range ids {
		sel.Add(id)
	}
	return sel
}

// Add adds id to the selection in place.
func (s Selection) Add(id string) {
	s[id] = struct{}{}
}

// Has reports whether id is selected.
func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of selected ids.
func (s Selection) Len() int {
	return len(s)
}

// IDs returns the selected ids sorted.
func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clone returns a copy of the selection.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Active returns the entries that are selected, in entry order. Selected ids
// that are not among the entries are ignored.
func (s Selection) Active(entries []Entry) []Entry {
	active := make([]Entry, 0, len(s))
	for _, e := range entries {
		if s.Has(e.ID) {
			active = append(active, e)
		}
	}
	return active
}

// ToggleID adds id when absent and removes it when present.
func (s Selection) ToggleID(id string) Selection {
	next := s.Clone()
	if next.Has(id) {
		delete(next, id)
	} else {
		next.Add(id)
	}
	return next
}

// ToggleName toggles every passing entry with the given name. When all of
// them are selected they are removed, otherwise they are all added. A name
// with a single entry toggles that entry whether or not it passes.
func (s Selection) ToggleName(p *Palette, name string, passes func(id string) bool) Selection {
	var all, ids []string
	for _, e := range p.Entries {
		if e.Name != name {
			continue
		}
		all = append(all, e.ID)
		if passes(e.ID) {
			ids = append(ids, e.ID)
		}
	}
	if len(all) == 1 {
		return s.ToggleID(all[0])
	}
	return s.toggleGroup(ids)
}

// ToggleShade toggles every passing entry of a shade. A shade with no passing
// entries leaves the selection unchanged.
func (s Selection) ToggleShade(p *Palette, shade string, passes func(id string) bool) Selection {
	var ids []string
	for _, e := range p.Entries {
		if e.Shade == shade && passes(e.ID) {
			ids = append(ids, e.ID)
		}
	}
	return s.toggleGroup(ids)
}

func (s Selection) toggleGroup(ids []string) Selection {
	next := s.Clone()
	if len(ids) == 0 {
		return next
	}
	allSelected := true
	for _, id := range ids {
		if !next.Has(id) {
			allSelected = false
			break
		}
	}
	for _, id := range ids {
		if allSelected {
			delete(next, id)
		} else {
			next.Add(id)
		}
	}
	return next
}

// SelectAllPassing returns a selection of every entry that passes.
func SelectAllPassing(p *Palette, passes func(id string) bool) Selection {
	sel := NewSelection()
	for _, e := range p.Entries {
		if passes(e.ID) {
			sel.Add(e.ID)
		}
	}
	return sel
}
