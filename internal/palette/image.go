package palette

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/combinator/internal/colour"
	"github.com/jmylchreest/combinator/internal/image"
)

// ImageConfig controls palette extraction from an image.
type ImageConfig struct {
	Path  string
	Count int
	// Seed drives k-means initialisation. Zero derives it from the image
	// content.
	Seed   uint64
	Loader image.Loader
}

// DefaultImageConfig returns the default image extraction settings.
func DefaultImageConfig() ImageConfig {
	return ImageConfig{
		Count:  16,
		Loader: image.NewFileLoader(),
	}
}

// Validate validates the image configuration.
func (c ImageConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("image path cannot be empty")
	}
	if c.Count < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", c.Count)
	}
	if c.Count > 256 {
		return fmt.Errorf("colour count too large: %d (maximum: 256)", c.Count)
	}
	return nil
}

// FromImage extracts the dominant colours of an image into a palette. Entries
// are ordered by dominance and named "image-1", "image-2", ...
func FromImage(cfg ImageConfig) (*Palette, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	loader := cfg.Loader
	if loader == nil {
		loader = image.NewFileLoader()
	}

	img, err := loader.Load(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = image.ContentSeed(img)
	}

	swatches, err := colour.NewKMeansExtractor(seed).Extract(img, cfg.Count)
	if err != nil {
		return nil, fmt.Errorf("failed to extract colours: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(cfg.Path), filepath.Ext(cfg.Path))
	entries := make([]Entry, len(swatches))
	for i, s := range swatches {
		n := fmt.Sprintf("image-%d", i+1)
		entries[i] = Entry{Name: n, Shade: BaseShade, Hex: s.RGB.Hex(), ID: n}
	}

	return newPalette(name, entries)
}
