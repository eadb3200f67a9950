package cli

import (
	"strings"
	"testing"

	"github.com/jmylchreest/combinator/internal/colour"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"ID", "Hex"})

	table.AddRow([]string{"tundra-cyan", "#00FFFF"})
	table.AddRow([]string{"tundra-magenta"})
	table.AddRow([]string{"tundra-lime-green", "#0CF406", "extra"})

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d columns, want 2", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"ID", "Hex", "Passes"})
	table.AddRow([]string{"ny-red-dark", "#D72A38", "yes"})
	table.AddRow([]string{"ny-blue-dark", "#06284C", "no"})

	output := table.Render()
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d:\n%s", len(lines), output)
	}
	if !strings.HasPrefix(lines[1], "------------") {
		t.Errorf("Expected separator line, got %q", lines[1])
	}
	for _, want := range []string{"ny-red-dark", "#06284C", "Passes"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output should contain %q", want)
		}
	}

	col := strings.Index(lines[0], "Hex")
	for _, line := range lines[2:] {
		if line[col] != '#' {
			t.Errorf("Hex column misaligned in %q", line)
		}
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if output := NewTable(nil).Render(); output != "" {
		t.Errorf("Expected empty string for table without headers, got %q", output)
	}

	output := NewTable([]string{"Name", "Colours"}).Render()
	if strings.Count(output, "\n") != 2 {
		t.Errorf("Expected header and separator only, got %q", output)
	}
}

func TestTableRenderWithColourSequences(t *testing.T) {
	prev := colour.DisableColourOutput
	colour.DisableColourOutput = false
	defer func() { colour.DisableColourOutput = prev }()

	red := colour.RGB{R: 255}
	table := NewTable([]string{"Swatch", "Hex"})
	table.AddRow([]string{colour.ColourPreview(red, 4), red.Hex()})
	table.AddRow([]string{"plain", "#000000"})

	lines := strings.Split(table.Render(), "\n")

	if got := visibleLen(lines[1]); got != visibleLen(lines[0]) {
		t.Errorf("separator width %d, header width %d", got, visibleLen(lines[0]))
	}
	if visibleLen(lines[2]) != visibleLen(lines[3]) {
		t.Errorf("rows differ in visible width: %q vs %q", lines[2], lines[3])
	}
}

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"\033[48;2;255;0;0m    \033[0m", 4},
		{"\033[48;2;0;0;0m\033[38;2;255;255;255mAa\033[0m", 2},
		{"\033", 1},
	}

	for _, tt := range tests {
		if got := visibleLen(tt.input); got != tt.want {
			t.Errorf("visibleLen(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"tundra", 8, "tundra  "},
		{"newyork", 7, "newyork"},
		{"tailwind", 3, "tailwind"},
		{"", 3, "   "},
		{"\033[31mx\033[0m", 3, "\033[31mx\033[0m  "},
	}

	for _, tt := range tests {
		if result := padRight(tt.input, tt.width); result != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
		}
	}
}

func TestTableWrap(t *testing.T) {
	table := NewTable([]string{"ID", "Note"})
	table.SetColumnMaxWidth(1, 10)
	table.AddRow([]string{"a", "passes level AA on both backgrounds"})

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	if len(lines) < 5 {
		t.Fatalf("Expected wrapped row across several lines, got %d lines", len(lines))
	}
	for _, line := range lines[2:] {
		if note := strings.TrimSpace(line[strings.Index(lines[0], "Note"):]); len(note) > 10 {
			t.Errorf("wrapped line %q exceeds 10 columns", note)
		}
	}
}
