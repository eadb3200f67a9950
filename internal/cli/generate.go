package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/combinator/internal/colour"
	"github.com/jmylchreest/combinator/internal/combo"
	"github.com/jmylchreest/combinator/internal/palette"
)

type generateOptions struct {
	source     sourceOptions
	selection  selectionOptions
	template   Template
	textColour string
	level      colour.ContrastLevel
	thresholds combo.Thresholds
	diverse    bool
	mode       combo.Mode
	exclude    bool
	seed       uint64
	limit      int
	format     string
	output     string
}

func newGenerateCmd(g *globalOptions) *cobra.Command {
	o := &generateOptions{
		source: sourceOptions{
			name:    palette.Tundra,
			colours: palette.DefaultImageConfig().Count,
			seed:    palette.DefaultImageConfig().Seed,
		},
		template:   TemplateLight,
		level:      colour.LevelA,
		thresholds: combo.DefaultThresholds(),
		diverse:    true,
		mode:       combo.ModeTiered,
		format:     formatTable,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate accessible background combinations",
		Long: `Generate every pair of palette colours that can both carry the template's
text colour at the chosen contrast level and that satisfy the distance
thresholds between the two backgrounds.

Examples:
  # Default Tundra palette, black text, level A
  combinator generate

  # White text at AA on the Tailwind 500 and 600 shades
  combinator generate -p tailwind --shades 500,600 -t dark -l AA

  # Every passing shade of red and blue
  combinator generate -p tailwind --names red,blue

  # Keep only clearly different pairs and show swatches
  combinator generate --min-hue 60 --min-total 25 -f preview

  # Colours extracted from a wallpaper, as JSON
  combinator generate -i wallpaper.jpg -c 12 -f json

  # A palette file, reproducible order
  combinator generate --file brand.yaml --seed 42 -n 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				o.source.seed = o.seed
			}
			return runGenerate(cmd, g, o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.source.name, "palette", "p", o.source.name, "built-in palette (tundra, newyork, tailwind)")
	f.StringVar(&o.source.file, "file", "", "load the palette from a text, JSON or YAML file")
	f.StringVarP(&o.source.image, "image", "i", "", "extract the palette from an image")
	f.IntVarP(&o.source.colours, "colours", "c", o.source.colours, "number of colours to extract from --image (1-256)")
	f.StringSliceVarP(&o.selection.ids, "select", "s", nil, "colour ids to combine (default: palette default selection)")
	f.StringSliceVar(&o.selection.names, "names", nil, "colour names to combine, every passing shade of each")
	f.StringSliceVar(&o.selection.shades, "shades", nil, "restrict the selection to these shades (e.g. 400,500)")
	f.BoolVar(&o.selection.allPassing, "all-passing", false, "combine every colour that passes text contrast")
	f.VarP(&o.template, "template", "t", "text colour template (light, dark)")
	f.StringVar(&o.textColour, "text-colour", "", "custom text colour, overrides --template")
	f.VarP(&o.level, "level", "l", "contrast level (A, AA, AAA)")
	f.Float64Var(&o.thresholds.MinBgContrast, "min-bg-contrast", o.thresholds.MinBgContrast, "minimum contrast between the two backgrounds (1-21)")
	f.Float64Var(&o.thresholds.MinHueDistance, "min-hue", 0, "minimum hue distance in degrees (0-180)")
	f.Float64Var(&o.thresholds.MinSatDistance, "min-sat", 0, "minimum saturation distance (0-100)")
	f.Float64Var(&o.thresholds.MinLumDistance, "min-lum", 0, "minimum lightness distance (0-100)")
	f.Float64Var(&o.thresholds.MinTotalDistance, "min-total", 0, "minimum distance between any two results (0 disables)")
	f.BoolVar(&o.diverse, "diverse", o.diverse, "order results so neighbours look different")
	f.Var(&o.mode, "mode", "ordering strategy (tiered, nearest)")
	f.BoolVar(&o.exclude, "exclude-inverse", false, "treat a pair and its swapped roles as one result")
	f.Uint64Var(&o.seed, "seed", 0, "seed for reproducible ordering and image extraction (default: random order, image-derived extraction)")
	f.IntVarP(&o.limit, "limit", "n", 0, "show at most this many results (0 for all)")
	f.StringVarP(&o.format, "format", "f", o.format, "output format (table, hex, json, preview)")
	f.StringVarP(&o.output, "output", "o", "", "output file (default: stdout)")
	cmd.MarkFlagsMutuallyExclusive("file", "image")
	cmd.MarkFlagsMutuallyExclusive("all-passing", "select")
	cmd.MarkFlagsMutuallyExclusive("all-passing", "names")

	return cmd
}

func runGenerate(cmd *cobra.Command, g *globalOptions, o *generateOptions) error {
	logger := g.logger(cmd.ErrOrStderr())

	if !isValidFormat(o.format) {
		return fmt.Errorf("unsupported format: %s (supported: table, hex, json, preview)", o.format)
	}
	if o.limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", o.limit)
	}
	if err := o.thresholds.Validate(); err != nil {
		return fmt.Errorf("invalid thresholds: %w", err)
	}

	text := o.template.TextColour()
	if o.textColour != "" {
		rgb, err := colour.ParseHex(o.textColour)
		if err != nil {
			return fmt.Errorf("invalid text colour: %w", err)
		}
		text = rgb
	}

	p, err := loadPalette(o.source, logger)
	if err != nil {
		return err
	}

	sequencer := combo.Sequencer{Mode: o.mode}
	if cmd.Flags().Changed("seed") {
		sequencer.Rand = combo.NewSeededShuffler(o.seed)
	}
	builder := combo.NewBuilder().WithLogger(logger).WithSequencer(sequencer)
	if !cmd.Flags().Changed("mode") {
		builder = builder.WithEnvConfig()
	}
	gen := builder.Build()

	cache := gen.Cache(p.Entries, text, o.level)

	opts := combo.Options{
		Palette:        p.Entries,
		Selected:       buildSelection(p, o.selection, cache.Passes, logger),
		TextColour:     text,
		Level:          o.level,
		Thresholds:     o.thresholds,
		DiverseSort:    o.diverse,
		ExcludeInverse: o.exclude,
	}
	logger.Debug("generating combinations",
		"palette", p.Name,
		"selected", opts.Selected.Len(),
		"text", text.Hex(),
		"mode", gen.Sequencer().Mode.String(),
	)

	res := gen.Generate(opts)

	shown := res.Combinations
	if o.limit > 0 && len(shown) > o.limit {
		shown = shown[:o.limit]
	}

	rep := report{
		Palette:    p.Name,
		TextColour: text,
		Level:      o.level,
		Thresholds: o.thresholds,
		Result:     res,
		Shown:      shown,
	}

	if o.output == "" {
		w := cmd.OutOrStdout()
		configureColour(w, o.format == formatPreview)
		if err := writeReport(w, o.format, rep); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		file, err := os.Create(o.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		configureColour(file, o.format == formatPreview)
		if err := writeReportTo(file, o.format, rep); err != nil {
			return err
		}
	}

	if g.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Showing %d of %d combinations\n", len(shown), res.TotalCount)
	}
	if o.output != "" && !g.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d combinations to %s\n", len(shown), o.output)
	}
	return nil
}

// writeReportTo writes the report to wc and closes it, returning any close
// error.
func writeReportTo(wc io.WriteCloser, format string, rep report) error {
	if err := writeReport(wc, format, rep); err != nil {
		_ = wc.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
