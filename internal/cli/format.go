package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/jmylchreest/combinator/internal/colour"
	"github.com/jmylchreest/combinator/internal/combo"
	"github.com/jmylchreest/combinator/internal/palette"
)

// Output formats.
const (
	formatTable   = "table"
	formatHex     = "hex"
	formatJSON    = "json"
	formatPreview = "preview"
)

const swatchWidth = 10

func isValidFormat(format string) bool {
	return slices.Contains([]string{formatTable, formatHex, formatJSON, formatPreview}, format)
}

// report is everything a formatter may print about one run.
type report struct {
	Palette    string
	TextColour colour.RGB
	Level      colour.ContrastLevel
	Thresholds combo.Thresholds
	Result     combo.Result
	Shown      []combo.Combination
}

func writeReport(w io.Writer, format string, r report) error {
	switch format {
	case formatTable:
		_, err := io.WriteString(w, formatCombinationTable(r))
		return err
	case formatHex:
		_, err := io.WriteString(w, formatHexList(r))
		return err
	case formatJSON:
		data, err := json.MarshalIndent(newJSONReport(r), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatPreview:
		_, err := io.WriteString(w, formatSwatches(r))
		return err
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func formatCombinationTable(r report) string {
	headers := []string{"#", "Background 1", "Background 2", "Contrast", "Hue", "Distance"}
	preview := !colour.DisableColourOutput
	if preview {
		headers = append(headers, "Preview")
	}

	table := NewTable(headers)
	for i, c := range r.Shown {
		first, second := c.C1.RGB(), c.C2.RGB()
		row := []string{
			strconv.Itoa(i + 1),
			c.C1.ID + " " + c.C1.Hex,
			c.C2.ID + " " + c.C2.Hex,
			fmt.Sprintf("%.2f", colour.Contrast(first, second)),
			fmt.Sprintf("%.0f", colour.HueDistance(c.HSL1.H, c.HSL2.H)),
			fmt.Sprintf("%.1f", c.InternalDistance()),
		}
		if preview {
			row = append(row, colour.PairPreview(first, second, r.TextColour, "Aa", swatchWidth/2))
		}
		table.AddRow(row)
	}

	return table.Render() + fmt.Sprintf("\n%d of %d combinations (text %s, level %s)\n",
		len(r.Shown), r.Result.TotalCount, r.TextColour.Hex(), r.Level)
}

func formatHexList(r report) string {
	var out []byte
	for _, c := range r.Shown {
		out = fmt.Appendf(out, "%s %s\n", c.C1.RGB().Hex(), c.C2.RGB().Hex())
	}
	return string(out)
}

func formatSwatches(r report) string {
	var out []byte
	for _, c := range r.Shown {
		swatch := colour.PairPreview(c.C1.RGB(), c.C2.RGB(), r.TextColour, "Text", swatchWidth)
		out = fmt.Appendf(out, "%s  %s / %s\n", swatch, c.C1.Label(), c.C2.Label())
	}
	return string(out)
}

type jsonColour struct {
	palette.Entry
	HSL colour.HSL `json:"hsl"`
}

type jsonCombination struct {
	First      jsonColour `json:"first"`
	Second     jsonColour `json:"second"`
	BgContrast float64    `json:"bg_contrast"`
	Distance   float64    `json:"distance"`
}

type jsonReport struct {
	Palette        string               `json:"palette"`
	TextColour     string               `json:"text_colour"`
	Level          colour.ContrastLevel `json:"level"`
	Thresholds     combo.Thresholds     `json:"thresholds"`
	TotalCount     int                  `json:"total_count"`
	PassesContrast map[string]bool      `json:"passes_contrast"`
	Combinations   []jsonCombination    `json:"combinations"`
}

func newJSONReport(r report) jsonReport {
	out := jsonReport{
		Palette:        r.Palette,
		TextColour:     r.TextColour.Hex(),
		Level:          r.Level,
		Thresholds:     r.Thresholds,
		TotalCount:     r.Result.TotalCount,
		PassesContrast: r.Result.PassesContrast,
		Combinations:   make([]jsonCombination, len(r.Shown)),
	}
	for i, c := range r.Shown {
		out.Combinations[i] = jsonCombination{
			First:      jsonColour{Entry: c.C1, HSL: c.HSL1},
			Second:     jsonColour{Entry: c.C2, HSL: c.HSL2},
			BgContrast: colour.Contrast(c.C1.RGB(), c.C2.RGB()),
			Distance:   c.InternalDistance(),
		}
	}
	return out
}
