// Package colour provides colour extraction and analysis functionality.
package colour

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a bare lowercase hex string (e.g., "1a2b3c").
// Theme property values never carry a # prefix.
func (rgb RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// RGBToColor converts an RGB value to a color.Color (RGBA).
func RGBToColor(rgb RGB) color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// Distance calculates the Euclidean distance to another colour in RGB space.
func (rgb RGB) Distance(other RGB) float64 {
	dr := float64(rgb.R) - float64(other.R)
	dg := float64(rgb.G) - float64(other.G)
	db := float64(rgb.B) - float64(other.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// ExtractedColor is a dominant colour extracted from an image together with
// its derived metrics.
type ExtractedColor struct {
	RGB RGB    `json:"rgb"`
	Hex string `json:"hex"`

	// Vibrancy scores saturated mid-lightness colours highest, range [0, 1].
	// Colours near black or white score low even when frequent.
	Vibrancy float64 `json:"vibrancy"`

	// Brightness is the perceptual brightness 0.299R + 0.587G + 0.114B,
	// range [0, 255]. This is not the WCAG relative luminance.
	Brightness float64 `json:"brightness"`
}

// NewExtractedColor builds an ExtractedColor with its metrics from an RGB value.
func NewExtractedColor(rgb RGB) ExtractedColor {
	return ExtractedColor{
		RGB:        rgb,
		Hex:        rgb.Hex(),
		Vibrancy:   Vibrancy(rgb),
		Brightness: Brightness(rgb),
	}
}

// Brightness calculates the perceptual brightness of a colour.
// Returns a value between 0 (darkest) and 255 (lightest).
func Brightness(rgb RGB) float64 {
	return 0.299*float64(rgb.R) + 0.587*float64(rgb.G) + 0.114*float64(rgb.B)
}

// Vibrancy calculates how suitable a colour is as a theme accent.
// Defined as saturation × (1 − 2·|lightness − 0.5|) in HSL space, range [0, 1].
func Vibrancy(rgb RGB) float64 {
	_, s, l := RGBToHSL(rgb)
	v := s * (1 - 2*math.Abs(l-0.5))
	if v < 0 {
		return 0
	}
	return v
}

// Palette is an ordered collection of extracted colours, sorted by
// descending vibrancy.
type Palette struct {
	Colors []ExtractedColor
}

// NewPalette creates a new Palette from the given colours.
// The colours are expected to already be in descending vibrancy order;
// the extractor guarantees this.
func NewPalette(colors []ExtractedColor) *Palette {
	return &Palette{Colors: colors}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (ExtractedColor, error) {
	if index < 0 || index >= len(p.Colors) {
		return ExtractedColor{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colors))
	}
	return p.Colors[index], nil
}

// ToHex converts the palette colours to bare hex strings.
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexColors[i] = c.Hex
	}
	return hexColors
}

// IsGrayscale reports whether every colour in the palette is (near) gray.
// A colour counts as gray when the spread between its channels is below 20.
func (p *Palette) IsGrayscale() bool {
	for _, c := range p.Colors {
		spread := math.Max(
			math.Abs(float64(c.RGB.R)-float64(c.RGB.G)),
			math.Max(
				math.Abs(float64(c.RGB.G)-float64(c.RGB.B)),
				math.Abs(float64(c.RGB.R)-float64(c.RGB.B)),
			),
		)
		if spread >= 20 {
			return false
		}
	}
	return true
}

// IsSingleColor reports whether the palette is effectively a single colour.
// True when every colour is within Euclidean RGB distance 50 of the first,
// or when the palette has at most one colour.
func (p *Palette) IsSingleColor() bool {
	if len(p.Colors) <= 1 {
		return true
	}
	first := p.Colors[0].RGB
	for _, c := range p.Colors[1:] {
		if c.RGB.Distance(first) >= 50 {
			return false
		}
	}
	return true
}

// PaletteJSON represents the palette in JSON output format.
type PaletteJSON struct {
	Count  int              `json:"count"`
	Colors []ExtractedColor `json:"colors"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(PaletteJSON{
		Count:  len(p.Colors),
		Colors: p.Colors,
	}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colors) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Colors))
	for i, c := range p.Colors {
		result += fmt.Sprintf("  %2d: #%s (%s) vibrancy=%.2f\n", i+1, c.Hex, c.RGB.String(), c.Vibrancy)
	}
	return result
}
