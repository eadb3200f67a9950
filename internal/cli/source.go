package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/combinator/internal/image"
	"github.com/jmylchreest/combinator/internal/palette"
)

// sourceOptions selects where a palette comes from. At most one of file and
// image may be set; otherwise the named built-in palette is used.
type sourceOptions struct {
	name    string
	file    string
	image   string
	colours int
	seed    uint64
}

func (o sourceOptions) validate() error {
	if o.file != "" && o.image != "" {
		return fmt.Errorf("--file and --image cannot be used together")
	}
	if o.image != "" && !image.IsImageFile(o.image) {
		return fmt.Errorf("unsupported image format: %s (supported: %s)",
			o.image, strings.Join(image.SupportedImageExtensions(), ", "))
	}
	return nil
}

func loadPalette(o sourceOptions, logger hclog.Logger) (*palette.Palette, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	switch {
	case o.file != "":
		logger.Debug("loading palette file", "path", o.file)
		p, err := palette.LoadFile(o.file)
		if err != nil {
			return nil, fmt.Errorf("failed to load palette: %w", err)
		}
		return p, nil

	case o.image != "":
		cfg := palette.DefaultImageConfig()
		cfg.Path = o.image
		cfg.Count = o.colours
		cfg.Seed = o.seed
		logger.Debug("extracting palette from image", "path", o.image, "colours", o.colours)
		p, err := palette.FromImage(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to build palette from image: %w", err)
		}
		logger.Debug("extracted palette", "colours", p.Len())
		return p, nil

	default:
		p, err := palette.Builtin(o.name)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

// selectionOptions describe which palette entries to combine.
type selectionOptions struct {
	ids        []string
	names      []string
	shades     []string
	allPassing bool
}

// buildSelection returns the ids to combine. Explicit ids and names win over
// the palette default; a name selects every passing shade of that colour.
// Shades on their own select every passing entry of each shade; alongside
// ids, names or all-passing they restrict that set instead.
func buildSelection(p *palette.Palette, o selectionOptions, passes func(id string) bool, logger hclog.Logger) palette.Selection {
	var base palette.Selection
	switch {
	case o.allPassing:
		base = palette.SelectAllPassing(p, passes)
	case len(o.ids) > 0 || len(o.names) > 0:
		base = palette.NewSelection()
		for _, name := range slices.Compact(slices.Sorted(slices.Values(o.names))) {
			if !slices.Contains(p.Names(), name) {
				logger.Warn("ignoring unknown colour name", "name", name)
				continue
			}
			base = base.ToggleName(p, name, passes)
		}
		for _, id := range o.ids {
			if _, ok := p.Get(id); !ok {
				logger.Warn("ignoring unknown colour id", "id", id)
			}
			base.Add(id)
		}
	case len(o.shades) > 0:
		sel := palette.NewSelection()
		for _, shade := range slices.Compact(slices.Sorted(slices.Values(o.shades))) {
			if !slices.Contains(p.Shades(), shade) {
				logger.Warn("ignoring unknown shade", "shade", shade)
				continue
			}
			sel = sel.ToggleShade(p, shade, passes)
		}
		return sel
	default:
		return palette.DefaultSelection(p)
	}

	if len(o.shades) == 0 {
		return base
	}

	sel := palette.NewSelection()
	for _, e := range p.Entries {
		if base.Has(e.ID) && slices.Contains(o.shades, e.Shade) {
			sel.Add(e.ID)
		}
	}
	return sel
}
