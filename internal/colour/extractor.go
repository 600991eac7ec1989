// Package colour provides colour extraction and analysis functionality.
package colour

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/image/draw"
)

// Extraction error taxonomy. Decode and extraction failures are fatal and
// surface to the caller; they are never retried internally.
var (
	// ErrImageDecode indicates the image surface could not be read.
	ErrImageDecode = errors.New("image surface cannot be decoded")

	// ErrCanvas indicates pixel buffer access failed.
	ErrCanvas = errors.New("pixel buffer access failed")

	// ErrExtraction indicates the quantizer and the fallback sampler both
	// produced zero colours. The pipeline cannot proceed without at least one.
	ErrExtraction = errors.New("colour extraction produced no colours")
)

// Algorithm represents the colour quantization algorithm type.
type Algorithm string

const (
	// AlgorithmMedianCut uses median cut quantization for colour extraction.
	AlgorithmMedianCut Algorithm = "mediancut"

	// AlgorithmKMeans uses k-means clustering for colour extraction.
	// Not yet implemented - placeholder for future.
	AlgorithmKMeans Algorithm = "kmeans"
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmMedianCut,
		// Future algorithms will be added here
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// Quantizer reduces an image's pixels to a representative set of colours.
type Quantizer interface {
	// Quantize extracts up to count representative colours from the pixels.
	// The quality parameter controls the sampling density (1 = every pixel).
	Quantize(pixels []RGB, count int) ([]RGB, error)
}

// NewQuantizer creates a new Quantizer based on the specified algorithm.
// Returns an error if the algorithm is not recognized or not yet implemented.
func NewQuantizer(alg Algorithm) (Quantizer, error) {
	switch alg {
	case AlgorithmMedianCut:
		return NewMedianCutQuantizer(), nil
	case AlgorithmKMeans:
		return nil, fmt.Errorf("k-means algorithm not yet implemented")
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}

// ExtractOptions holds configuration for colour extraction.
type ExtractOptions struct {
	// Algorithm selects the quantization algorithm.
	Algorithm Algorithm

	// ColorCount is the number of dominant colours to extract.
	ColorCount int

	// Quality is the pixel sampling step; 1 samples every pixel,
	// 10 samples every tenth pixel.
	Quality int

	// MaxSize is the maximum long-edge size the image is downscaled to
	// before quantization. Images are never upscaled.
	MaxSize int
}

// DefaultExtractOptions returns the default extraction configuration.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		Algorithm:  AlgorithmMedianCut,
		ColorCount: 10,
		Quality:    10,
		MaxSize:    400,
	}
}

// Validate validates the extraction configuration.
func (o ExtractOptions) Validate() error {
	if !IsValidAlgorithm(o.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s", o.Algorithm)
	}
	if o.ColorCount < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", o.ColorCount)
	}
	if o.ColorCount > 256 {
		return fmt.Errorf("colour count too large: %d (maximum: 256)", o.ColorCount)
	}
	if o.Quality < 1 {
		return fmt.Errorf("quality must be at least 1, got %d", o.Quality)
	}
	if o.MaxSize < 1 {
		return fmt.Errorf("max size must be at least 1, got %d", o.MaxSize)
	}
	return nil
}

// Extractor extracts ranked dominant colours from an image.
type Extractor struct {
	opts ExtractOptions
	log  hclog.Logger
}

// NewExtractor creates an Extractor with the given options.
// A nil logger defaults to a null logger.
func NewExtractor(opts ExtractOptions, log hclog.Logger) (*Extractor, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid extraction options: %w", err)
	}
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Extractor{opts: opts, log: log.Named("extractor")}, nil
}

// Extract extracts the dominant colour palette from an image.
// The image is downscaled to fit within MaxSize (never upscaled), quantized,
// and the resulting colours are returned sorted by descending vibrancy.
// When the quantizer fails or returns nothing, a direct pixel sampling
// fallback is used. Deterministic for identical image bytes and options.
func (e *Extractor) Extract(img image.Image) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: image is nil", ErrCanvas)
	}
	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, fmt.Errorf("%w: image has no pixels", ErrCanvas)
	}

	scaled := downscale(img, e.opts.MaxSize)
	sb := scaled.Bounds()
	e.log.Debug("image prepared for quantization",
		"original", fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
		"scaled", fmt.Sprintf("%dx%d", sb.Dx(), sb.Dy()))

	pixels := samplePixels(scaled, e.opts.Quality)

	colors := e.quantize(pixels)
	if len(colors) == 0 {
		e.log.Debug("quantizer produced no colours, using fallback sampler")
		colors = fallbackSample(scaled, e.opts.ColorCount)
	}
	if len(colors) == 0 {
		return nil, ErrExtraction
	}

	extracted := make([]ExtractedColor, len(colors))
	for i, rgb := range colors {
		extracted[i] = NewExtractedColor(rgb)
	}

	// Descending by vibrancy; ties keep quantizer order.
	sort.SliceStable(extracted, func(i, j int) bool {
		return extracted[i].Vibrancy > extracted[j].Vibrancy
	})

	return NewPalette(extracted), nil
}

// quantize runs the configured quantization algorithm, swallowing failures
// so the caller can fall back to direct sampling.
func (e *Extractor) quantize(pixels []RGB) []RGB {
	q, err := NewQuantizer(e.opts.Algorithm)
	if err != nil {
		e.log.Debug("quantizer unavailable", "error", err)
		return nil
	}

	colors, err := q.Quantize(pixels, e.opts.ColorCount)
	if err != nil {
		e.log.Debug("quantization failed", "error", err)
		return nil
	}
	return colors
}

// downscale resizes an image to fit within maxSize on the long edge,
// preserving aspect ratio. Images already within bounds are returned as-is;
// upscaling never happens.
func downscale(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	longEdge := max(width, height)
	if longEdge <= maxSize {
		return img
	}

	scale := float64(maxSize) / float64(longEdge)
	newWidth := max(int(float64(width)*scale), 1)
	newHeight := max(int(float64(height)*scale), 1)

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// samplePixels walks the image at the given sampling step and collects
// opaque pixels. Pixels with alpha below 128 are skipped.
func samplePixels(img image.Image, quality int) []RGB {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	total := width * height

	pixels := make([]RGB, 0, total/quality+1)
	for i := 0; i < total; i += quality {
		x := bounds.Min.X + i%width
		y := bounds.Min.Y + i/width
		r, g, b, a := img.At(x, y).RGBA()
		if a>>8 < 128 {
			continue
		}
		pixels = append(pixels, RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
	}
	return pixels
}
