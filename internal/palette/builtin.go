package palette

import (
	"fmt"
	"slices"
	"strings"
)

// Built-in palette names.
const (
	Tailwind = "tailwind"
	Tundra   = "tundra"
	NewYork  = "newyork"
)

// TailwindShades are the tonal steps of every Tailwind colour, lightest first.
var TailwindShades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// tailwindDefaultShades are selected when the Tailwind palette is first opened.
var tailwindDefaultShades = []string{"400", "500", "600", "700"}

var tailwindRamps = []struct {
	name   string
	shades [11]string
}{
	{"slate", [11]string{"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a", "#020617"}},
	{"gray", [11]string{"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827", "#030712"}},
	{"zinc", [11]string{"#fafafa", "#f4f4f5", "#e4e4e7", "#d4d4d8", "#a1a1aa", "#71717a", "#52525b", "#3f3f46", "#27272a", "#18181b", "#09090b"}},
	{"neutral", [11]string{"#fafafa", "#f5f5f5", "#e5e5e5", "#d4d4d4", "#a3a3a3", "#737373", "#525252", "#404040", "#262626", "#171717", "#0a0a0a"}},
	{"stone", [11]string{"#fafaf9", "#f5f5f4", "#e7e5e4", "#d6d3d1", "#a8a29e", "#78716c", "#57534e", "#44403c", "#292524", "#1c1917", "#0c0a09"}},
	{"red", [11]string{"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a"}},
	{"orange", [11]string{"#fff7ed", "#ffedd5", "#fed7aa", "#fdba74", "#fb923c", "#f97316", "#ea580c", "#c2410c", "#9a3412", "#7c2d12", "#431407"}},
	{"amber", [11]string{"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f", "#451a03"}},
	{"yellow", [11]string{"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12", "#422006"}},
	{"lime", [11]string{"#f7fee7", "#ecfccb", "#d9f99d", "#bef264", "#a3e635", "#84cc16", "#65a30d", "#4d7c0f", "#3f6212", "#365314", "#1a2e05"}},
	{"green", [11]string{"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d", "#052e16"}},
	{"emerald", [11]string{"#ecfdf5", "#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399", "#10b981", "#059669", "#047857", "#065f46", "#064e3b", "#022c22"}},
	{"teal", [11]string{"#f0fdfa", "#ccfbf1", "#99f6e4", "#5eead4", "#2dd4bf", "#14b8a6", "#0d9488", "#0f766e", "#115e59", "#134e4a", "#042f2e"}},
	{"cyan", [11]string{"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63", "#083344"}},
	{"sky", [11]string{"#f0f9ff", "#e0f2fe", "#bae6fd", "#7dd3fc", "#38bdf8", "#0ea5e9", "#0284c7", "#0369a1", "#075985", "#0c4a6e", "#082f49"}},
	{"blue", [11]string{"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554"}},
	{"indigo", [11]string{"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81", "#1e1b4b"}},
	{"violet", [11]string{"#f5f3ff", "#ede9fe", "#ddd6fe", "#c4b5fd", "#a78bfa", "#8b5cf6", "#7c3aed", "#6d28d9", "#5b21b6", "#4c1d95", "#2e1065"}},
	{"purple", [11]string{"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87", "#3b0764"}},
	{"fuchsia", [11]string{"#fdf4ff", "#fae8ff", "#f5d0fe", "#f0abfc", "#e879f9", "#d946ef", "#c026d3", "#a21caf", "#86198f", "#701a75", "#4a044e"}},
	{"pink", [11]string{"#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6", "#ec4899", "#db2777", "#be185d", "#9d174d", "#831843", "#500724"}},
	{"rose", [11]string{"#fff1f2", "#ffe4e6", "#fecdd3", "#fda4af", "#fb7185", "#f43f5e", "#e11d48", "#be123c", "#9f1239", "#881337", "#4c0519"}},
}

// BuiltinNames returns the names of the built-in palettes.
func BuiltinNames() []string {
	return []string{Tundra, NewYork, Tailwind}
}

// Builtin returns a built-in palette by name.
func Builtin(name string) (*Palette, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Tailwind:
		return TailwindPalette(), nil
	case Tundra:
		return TundraPalette(), nil
	case NewYork, "new-york", "ny":
		return NewYorkPalette(), nil
	default:
		return nil, fmt.Errorf("unknown palette: %s (valid palettes: %v)", name, BuiltinNames())
	}
}

// TailwindPalette returns the Tailwind CSS colour ramps, ids "name-shade".
func TailwindPalette() *Palette {
	entries := make([]Entry, 0, len(tailwindRamps)*len(TailwindShades))
	for _, ramp := range tailwindRamps {
		for i, shade := range TailwindShades {
			entries = append(entries, Entry{
				Name:  ramp.name,
				Shade: shade,
				Hex:   ramp.shades[i],
				ID:    ramp.name + "-" + shade,
			})
		}
	}
	return &Palette{Name: Tailwind, Entries: entries}
}

// TundraPalette returns the 14 colour Tundra palette.
func TundraPalette() *Palette {
	return &Palette{Name: Tundra, Entries: []Entry{
		{Name: "vibrant-blue", Shade: BaseShade, Hex: "#0B00F5", ID: "tundra-vibrant-blue"},
		{Name: "deep-purple", Shade: BaseShade, Hex: "#7800C6", ID: "tundra-deep-purple"},
		{Name: "lime-green", Shade: BaseShade, Hex: "#0CF406", ID: "tundra-lime-green"},
		{Name: "magenta", Shade: BaseShade, Hex: "#FF00FF", ID: "tundra-magenta"},
		{Name: "sunny-yellow", Shade: BaseShade, Hex: "#FCEE21", ID: "tundra-sunny-yellow"},
		{Name: "cyan", Shade: BaseShade, Hex: "#00FFFF", ID: "tundra-cyan"},
		{Name: "bright-red", Shade: BaseShade, Hex: "#FF1010", ID: "tundra-bright-red"},
		{Name: "dusty-blue", Shade: BaseShade, Hex: "#4B8AC4", ID: "tundra-dusty-blue"},
		{Name: "lavender", Shade: BaseShade, Hex: "#A378C4", ID: "tundra-lavender"},
		{Name: "forest-green", Shade: BaseShade, Hex: "#009245", ID: "tundra-forest-green"},
		{Name: "pastel-pink", Shade: BaseShade, Hex: "#D884D8", ID: "tundra-pastel-pink"},
		{Name: "warm-brown", Shade: BaseShade, Hex: "#8C6239", ID: "tundra-warm-brown"},
		{Name: "sky-blue", Shade: BaseShade, Hex: "#34CBF4", ID: "tundra-sky-blue"},
		{Name: "burnt-orange", Shade: BaseShade, Hex: "#F45516", ID: "tundra-burnt-orange"},
	}}
}

// NewYorkPalette returns the 24 colour New York palette (8 hues in dark,
// medium and light rows).
func NewYorkPalette() *Palette {
	return &Palette{Name: NewYork, Entries: []Entry{
		{Name: "red-dark", Shade: BaseShade, Hex: "#D72A38", ID: "ny-red-dark"},
		{Name: "blue-dark", Shade: BaseShade, Hex: "#06284C", ID: "ny-blue-dark"},
		{Name: "purple-dark", Shade: BaseShade, Hex: "#573A68", ID: "ny-purple-dark"},
		{Name: "green-dark", Shade: BaseShade, Hex: "#045F48", ID: "ny-green-dark"},
		{Name: "yellow-dark", Shade: BaseShade, Hex: "#A28C4D", ID: "ny-yellow-dark"},
		{Name: "burgundy-dark", Shade: BaseShade, Hex: "#692239", ID: "ny-burgundy-dark"},
		{Name: "olive-dark", Shade: BaseShade, Hex: "#37461E", ID: "ny-olive-dark"},
		{Name: "teal-dark", Shade: BaseShade, Hex: "#425A60", ID: "ny-teal-dark"},
		{Name: "red-medium", Shade: BaseShade, Hex: "#FC504B", ID: "ny-red-medium"},
		{Name: "blue-medium", Shade: BaseShade, Hex: "#3D55A5", ID: "ny-blue-medium"},
		{Name: "purple-medium", Shade: BaseShade, Hex: "#6E5F9E", ID: "ny-purple-medium"},
		{Name: "green-medium", Shade: BaseShade, Hex: "#07947A", ID: "ny-green-medium"},
		{Name: "yellow-medium", Shade: BaseShade, Hex: "#D1C06A", ID: "ny-yellow-medium"},
		{Name: "burgundy-medium", Shade: BaseShade, Hex: "#97434E", ID: "ny-burgundy-medium"},
		{Name: "olive-medium", Shade: BaseShade, Hex: "#6F7653", ID: "ny-olive-medium"},
		{Name: "teal-medium", Shade: BaseShade, Hex: "#9BADB4", ID: "ny-teal-medium"},
		{Name: "red-light", Shade: BaseShade, Hex: "#FBA0A4", ID: "ny-red-light"},
		{Name: "blue-light", Shade: BaseShade, Hex: "#C9ECFB", ID: "ny-blue-light"},
		{Name: "purple-light", Shade: BaseShade, Hex: "#D6D5F0", ID: "ny-purple-light"},
		{Name: "green-light", Shade: BaseShade, Hex: "#A7E4C8", ID: "ny-green-light"},
		{Name: "yellow-light", Shade: BaseShade, Hex: "#EFE587", ID: "ny-yellow-light"},
		{Name: "burgundy-light", Shade: BaseShade, Hex: "#E5C6CF", ID: "ny-burgundy-light"},
		{Name: "olive-light", Shade: BaseShade, Hex: "#E0E5D7", ID: "ny-olive-light"},
		{Name: "teal-light", Shade: BaseShade, Hex: "#D2DDE2", ID: "ny-teal-light"},
	}}
}

// DefaultSelection returns the ids a palette starts with: every entry, or
// shades 400-700 for Tailwind.
func DefaultSelection(p *Palette) Selection {
	sel := NewSelection()
	for _, e := range p.Entries {
		if p.Name == Tailwind && !slices.Contains(tailwindDefaultShades, e.Shade) {
			continue
		}
		sel.Add(e.ID)
	}
	return sel
}
