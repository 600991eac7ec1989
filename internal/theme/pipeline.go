package theme

import (
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"

	"tdtint/internal/colour"
)

// GenerateOptions configures a full pipeline run.
type GenerateOptions struct {
	// Name is the theme name. Empty means the default.
	Name string

	// Mode selects the light or dark theme family.
	Mode Mode

	// Extract configures colour extraction.
	Extract colour.ExtractOptions

	// Contrast configures the accessibility repair post-pass.
	Contrast colour.AdjustConfig
}

// DefaultGenerateOptions returns the default pipeline configuration.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Name:     "tdtint theme",
		Mode:     ModeLight,
		Extract:  colour.DefaultExtractOptions(),
		Contrast: colour.DefaultAdjustConfig(),
	}
}

// Generator runs the full image-to-theme pipeline: extraction, semantic
// mapping, expansion, contrast repair and validation. Configuration is
// fixed at construction; runs share no mutable state, so independent
// invocations may proceed concurrently.
type Generator struct {
	opts GenerateOptions
	log  hclog.Logger
}

// NewGenerator creates a Generator. A nil logger defaults to a null logger.
func NewGenerator(opts GenerateOptions, log hclog.Logger) (*Generator, error) {
	if opts.Name == "" {
		opts.Name = "tdtint theme"
	}
	if err := opts.Extract.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator options: %w", err)
	}
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Generator{opts: opts, log: log}, nil
}

// Generate converts a decoded image into a complete theme. Extraction
// failures surface as typed errors; everything after extraction degrades to
// a best-effort, flagged result instead of failing.
func (g *Generator) Generate(img image.Image) (*GeneratedTheme, error) {
	extractor, err := colour.NewExtractor(g.opts.Extract, g.log)
	if err != nil {
		return nil, err
	}

	palette, err := extractor.Extract(img)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}
	g.log.Debug("palette extracted",
		"colours", palette.Len(),
		"grayscale", palette.IsGrayscale(),
		"single", palette.IsSingleColor())

	roles := MapSemanticColors(palette, g.opts.Mode)
	g.log.Debug("semantic roles mapped", "primary", roles.Primary, "accent", roles.Accent)

	builder := NewBuilder(g.log)
	theme := builder.Build(roles, BuildConfig{
		Name:     g.opts.Name,
		Mode:     g.opts.Mode,
		Contrast: g.opts.Contrast,
	})
	return theme, nil
}
