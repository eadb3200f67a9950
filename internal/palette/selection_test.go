package palette

import (
	"slices"
	"testing"
)

func passAll(string) bool { return true }

func TestToggleIDDoesNotMutate(t *testing.T) {
	orig := NewSelection("a")
	added := orig.ToggleID("b")
	removed := orig.ToggleID("a")

	if !added.Has("a") || !added.Has("b") {
		t.Errorf("ToggleID(b) = %v", added.IDs())
	}
	if removed.Len() != 0 {
		t.Errorf("ToggleID(a) = %v, want empty", removed.IDs())
	}
	if orig.Len() != 1 || !orig.Has("a") {
		t.Errorf("original selection changed: %v", orig.IDs())
	}
}

func TestActiveIgnoresUnknownIDs(t *testing.T) {
	p := TundraPalette()
	sel := NewSelection("tundra-cyan", "nope", "tundra-vibrant-blue")

	active := sel.Active(p.Entries)
	if len(active) != 2 {
		t.Fatalf("Active() returned %d entries, want 2", len(active))
	}
	// Palette order, not selection order.
	if active[0].ID != "tundra-vibrant-blue" || active[1].ID != "tundra-cyan" {
		t.Errorf("Active() = %v", active)
	}
}

func TestToggleName(t *testing.T) {
	p := TailwindPalette()
	only500 := func(id string) bool { return id == "red-500" || id == "red-600" }

	sel := NewSelection().ToggleName(p, "red", only500)
	if got, want := sel.IDs(), []string{"red-500", "red-600"}; !slices.Equal(got, want) {
		t.Fatalf("ToggleName() = %v, want %v", got, want)
	}

	// All passing shades selected: toggle removes them.
	sel = sel.ToggleName(p, "red", only500)
	if sel.Len() != 0 {
		t.Errorf("second ToggleName() = %v, want empty", sel.IDs())
	}

	// Partially selected: toggle completes the group.
	sel = NewSelection("red-500").ToggleName(p, "red", only500)
	if sel.Len() != 2 {
		t.Errorf("partial ToggleName() = %v, want both shades", sel.IDs())
	}
}

func TestToggleNameSingleEntry(t *testing.T) {
	p := TundraPalette()
	never := func(string) bool { return false }

	sel := NewSelection().ToggleName(p, "magenta", never)
	if !sel.Has("tundra-magenta") {
		t.Errorf("ToggleName() on single entry = %v, want tundra-magenta", sel.IDs())
	}
	sel = sel.ToggleName(p, "magenta", never)
	if sel.Len() != 0 {
		t.Errorf("second ToggleName() = %v, want empty", sel.IDs())
	}
}

func TestToggleShade(t *testing.T) {
	p := TailwindPalette()

	sel := NewSelection().ToggleShade(p, "500", passAll)
	if sel.Len() != 22 {
		t.Errorf("ToggleShade(500) selected %d, want 22", sel.Len())
	}

	none := func(string) bool { return false }
	start := NewSelection("red-500")
	if got := start.ToggleShade(p, "500", none); got.Len() != 1 || !got.Has("red-500") {
		t.Errorf("ToggleShade with no passing entries changed selection: %v", got.IDs())
	}
}

func TestSelectAllPassing(t *testing.T) {
	p := TundraPalette()
	odd := func(id string) bool { return len(id)%2 == 1 }

	sel := SelectAllPassing(p, odd)
	for _, e := range p.Entries {
		if sel.Has(e.ID) != odd(e.ID) {
			t.Errorf("SelectAllPassing() Has(%s) = %v", e.ID, sel.Has(e.ID))
		}
	}
}
