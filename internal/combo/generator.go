package combo

import (
	"os"
	"strconv"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/combinator/internal/colour"
	"github.com/jmylchreest/combinator/internal/palette"
)

// DefaultCacheSize is how many contrast caches a Generator keeps.
const DefaultCacheSize = 8

// Options are the inputs of one generation run.
type Options struct {
	// Palette is the full ordered palette; Selected picks the active subset.
	Palette  []palette.Entry
	Selected palette.Selection

	TextColour colour.RGB
	Level      colour.ContrastLevel
	Thresholds Thresholds

	// DiverseSort reorders the result for display.
	DiverseSort bool
	// ExcludeInverse treats a pair and its mirror as one combination.
	ExcludeInverse bool
}

// DefaultOptions returns the light template defaults: black text, level A,
// default thresholds, diverse sorting on and inverses kept.
func DefaultOptions() Options {
	return Options{
		TextColour:  colour.RGB{},
		Level:       colour.LevelA,
		Thresholds:  DefaultThresholds(),
		DiverseSort: true,
	}
}

// Result is the output of one generation run.
type Result struct {
	// Combinations in display order.
	Combinations []Combination `json:"combinations"`
	// TotalCount is the number of combinations accepted by the diversity
	// filter, before any display limit the caller applies.
	TotalCount int `json:"total_count"`
	// PassesContrast reports, for every palette id, whether it passes text
	// contrast on its own.
	PassesContrast map[string]bool `json:"passes_contrast"`
	// Cache is the per-entry data the run used.
	Cache Cache `json:"-"`
}

// Generator runs the combination pipeline. It memoises contrast caches by
// their inputs and is safe for concurrent use provided the sequencer's
// Shuffler is (the default global source is; a seeded *rand.Rand is not).
type Generator struct {
	logger    hclog.Logger
	sequencer Sequencer
	cacheSize int

	mu     sync.Mutex
	caches map[string]Cache
	order  []string
}

// Builder provides a fluent interface for constructing a Generator.
type Builder struct {
	logger    hclog.Logger
	sequencer Sequencer
	cacheSize int
	useEnv    bool
}

// NewBuilder creates a new Generator builder with default settings.
func NewBuilder() *Builder {
	return &Builder{
		logger:    hclog.NewNullLogger(),
		sequencer: Sequencer{Mode: ModeTiered},
		cacheSize: DefaultCacheSize,
	}
}

// WithLogger sets the logger stage counts are reported to.
func (b *Builder) WithLogger(logger hclog.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// WithSequencer sets the display sequencer.
func (b *Builder) WithSequencer(s Sequencer) *Builder {
	b.sequencer = s
	return b
}

// WithCacheSize sets how many contrast caches are memoised. Values below 1
// disable memoisation.
func (b *Builder) WithCacheSize(n int) *Builder {
	b.cacheSize = n
	return b
}

// WithEnvConfig reads COMBINATOR_SEQUENCE_MODE and COMBINATOR_CACHE_SIZE.
// Invalid values are ignored.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// Build constructs the Generator with the configured settings.
func (b *Builder) Build() *Generator {
	sequencer := b.sequencer
	cacheSize := b.cacheSize

	if b.useEnv {
		if mode := os.Getenv("COMBINATOR_SEQUENCE_MODE"); mode != "" {
			if err := sequencer.Mode.Set(mode); err != nil {
				b.logger.Warn("ignoring COMBINATOR_SEQUENCE_MODE", "error", err)
			}
		}
		if size := os.Getenv("COMBINATOR_CACHE_SIZE"); size != "" {
			if n, err := strconv.Atoi(size); err == nil {
				cacheSize = n
			} else {
				b.logger.Warn("ignoring COMBINATOR_CACHE_SIZE", "value", size)
			}
		}
	}

	return &Generator{
		logger:    b.logger,
		sequencer: sequencer,
		cacheSize: cacheSize,
		caches:    make(map[string]Cache),
	}
}

// Sequencer returns the generator's display sequencer.
func (g *Generator) Sequencer() Sequencer {
	return g.sequencer
}

// Cache returns the contrast cache for the inputs, building it on first use.
// The returned map is shared and must not be modified.
func (g *Generator) Cache(entries []palette.Entry, text colour.RGB, level colour.ContrastLevel) Cache {
	if g.cacheSize < 1 {
		return BuildCache(entries, text, level)
	}

	key := cacheKey(entries, text, level)

	g.mu.Lock()
	defer g.mu.Unlock()

	if cache, ok := g.caches[key]; ok {
		g.logger.Trace("contrast cache hit", "entries", len(entries))
		return cache
	}

	cache := BuildCache(entries, text, level)
	g.caches[key] = cache
	g.order = append(g.order, key)
	if len(g.order) > g.cacheSize {
		delete(g.caches, g.order[0])
		g.order = g.order[1:]
	}
	g.logger.Trace("contrast cache built", "entries", len(entries), "cached", len(g.caches))
	return cache
}

// Generate runs the pipeline: contrast cache, enumeration, diversity filter
// and, when requested, display sequencing.
func (g *Generator) Generate(opts Options) Result {
	cache := g.Cache(opts.Palette, opts.TextColour, opts.Level)

	active := opts.Selected.Active(opts.Palette)

	thresholds := opts.Thresholds.Normalise()
	candidates := Enumerate(active, cache, thresholds, opts.ExcludeInverse)
	accepted := FilterDiverse(candidates, thresholds.MinTotalDistance, opts.ExcludeInverse)

	g.logger.Debug("combinations generated",
		"palette", len(opts.Palette),
		"active", len(active),
		"candidates", len(candidates),
		"accepted", len(accepted),
		"level", opts.Level.String(),
	)

	display := accepted
	if opts.DiverseSort {
		display = g.sequencer.Sequence(accepted)
	}

	return Result{
		Combinations:   display,
		TotalCount:     len(accepted),
		PassesContrast: cache.PassesContrast(),
		Cache:          cache,
	}
}
