package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/combinator/internal/colour"
	"github.com/jmylchreest/combinator/internal/combo"
	"github.com/jmylchreest/combinator/internal/palette"
)

type palettesOptions struct {
	file     string
	template Template
	level    colour.ContrastLevel
	preview  bool
}

func newPalettesCmd(g *globalOptions) *cobra.Command {
	o := &palettesOptions{
		template: TemplateLight,
		level:    colour.LevelA,
	}

	cmd := &cobra.Command{
		Use:   "palettes [name]",
		Short: "List palettes or the colours of one palette",
		Long: `Without arguments, list the built-in palettes. With a palette name (or
--file), list its colours together with their contrast against the
template's text colour and whether they pass the chosen level.

Examples:
  # List built-in palettes
  combinator palettes

  # Which Tailwind colours carry white text at AA?
  combinator palettes tailwind -t dark -l AA

  # Inspect a palette file with swatches
  combinator palettes --file brand.json --preview`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalettes(cmd, g, o, args)
		},
	}

	cmd.Flags().StringVar(&o.file, "file", "", "list the colours of a palette file")
	cmd.Flags().VarP(&o.template, "template", "t", "text colour template (light, dark)")
	cmd.Flags().VarP(&o.level, "level", "l", "contrast level (A, AA, AAA)")
	cmd.Flags().BoolVar(&o.preview, "preview", false, "show colour swatches")

	return cmd
}

func runPalettes(cmd *cobra.Command, g *globalOptions, o *palettesOptions, args []string) error {
	logger := g.logger(cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	if len(args) == 0 && o.file == "" {
		return listPalettes(out)
	}
	if len(args) > 0 && o.file != "" {
		return fmt.Errorf("a palette name and --file cannot be used together")
	}

	src := sourceOptions{file: o.file}
	if len(args) > 0 {
		src.name = args[0]
	}
	p, err := loadPalette(src, logger)
	if err != nil {
		return err
	}

	configureColour(out, o.preview)
	_, err = io.WriteString(out, formatPaletteTable(p, o.template.TextColour(), o.level, o.preview))
	return err
}

func listPalettes(w io.Writer) error {
	table := NewTable([]string{"Name", "Colours", "Selected by default"})
	for _, name := range palette.BuiltinNames() {
		p, err := palette.Builtin(name)
		if err != nil {
			return err
		}
		table.AddRow([]string{
			name,
			strconv.Itoa(p.Len()),
			strconv.Itoa(palette.DefaultSelection(p).Len()),
		})
	}
	_, err := io.WriteString(w, table.Render())
	return err
}

// nameMaxWidth wraps long colour names from palette files.
const nameMaxWidth = 24

func formatPaletteTable(p *palette.Palette, text colour.RGB, level colour.ContrastLevel, preview bool) string {
	cache := combo.BuildCache(p.Entries, text, level)

	headers := []string{"ID", "Name", "Shade", "Hex", "Contrast", "Passes"}
	if preview {
		headers = append(headers, "Preview")
	}

	table := NewTable(headers)
	table.SetColumnMaxWidth(1, nameMaxWidth)
	passing := 0
	for _, e := range p.Entries {
		data := cache[e.ID]
		passes := "no"
		if data.PassesTextContrast {
			passes = "yes"
			passing++
		}
		row := []string{
			e.ID,
			e.Name,
			e.Shade,
			e.Hex,
			fmt.Sprintf("%.2f", colour.Contrast(data.RGB, text)),
			passes,
		}
		if preview {
			row = append(row, colour.ColourPreviewWithText(data.RGB, text, "Text", swatchWidth))
		}
		table.AddRow(row)
	}

	return table.Render() + fmt.Sprintf("\n%d of %d colours pass %s (%.1f:1) against %s\n",
		passing, p.Len(), level, level.Threshold(), text.Hex())
}
