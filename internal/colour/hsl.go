// Package colour provides colour extraction and analysis functionality.
package colour

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hexTokenPattern = regexp.MustCompile(`^[0-9a-f]{6}([0-9a-f]{2})?$`)

// NormalizeHex normalizes a hex colour string to 6 lowercase hex digits:
// the # prefix is stripped, 3-digit shorthand is expanded and a trailing
// alpha pair is dropped. Returns an error for anything else.
func NormalizeHex(hex string) (string, error) {
	h := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(hex), "#"))

	if len(h) == 3 {
		h = fmt.Sprintf("%c%c%c%c%c%c", h[0], h[0], h[1], h[1], h[2], h[2])
	}
	if len(h) == 8 {
		h = h[:6]
	}
	if !hexTokenPattern.MatchString(h) || len(h) != 6 {
		return "", fmt.Errorf("invalid hex colour: %q", hex)
	}
	return h, nil
}

// IsHexToken reports whether a value is a valid theme colour token:
// 6 lowercase hex digits, optionally followed by a 2-digit alpha pair,
// never prefixed with #. The check is case-insensitive.
func IsHexToken(value string) bool {
	return hexTokenPattern.MatchString(strings.ToLower(value))
}

// HexToRGB parses a hex colour string into an RGB value.
// Accepts the same inputs as NormalizeHex.
func HexToRGB(hex string) (RGB, error) {
	h, err := NormalizeHex(hex)
	if err != nil {
		return RGB{}, err
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour: %q", hex)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// RGBToHSL converts RGB to HSL colour space.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func RGBToHSL(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := max(r, max(g, b))
	minVal := min(r, min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l = (maxVal + minVal) / 2.0

	// Saturation.
	if delta == 0 {
		s = 0
		h = 0
		return
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	// Hue.
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return
}

// HSLToRGB converts HSL to RGB colour space.
// h is hue (0-360), s is saturation (0-1), l is lightness (0-1).
func HSLToRGB(h, s, l float64) RGB {
	if s == 0 {
		// Achromatic (grey).
		v := uint8(clamp01(l)*255 + 0.5)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToRGB(p, q, h+120)
	g := hueToRGB(p, q, h)
	b := hueToRGB(p, q, h-120)

	return RGB{
		R: uint8(clamp01(r)*255 + 0.5),
		G: uint8(clamp01(g)*255 + 0.5),
		B: uint8(clamp01(b)*255 + 0.5),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	// Normalize t to 0-360 range.
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// Lighten increases the lightness of a colour by the given amount
// (0-1 scale), clamped to white.
func Lighten(rgb RGB, amount float64) RGB {
	h, s, l := RGBToHSL(rgb)
	return HSLToRGB(h, s, clamp01(l+amount))
}

// Darken decreases the lightness of a colour by the given amount
// (0-1 scale), clamped to black.
func Darken(rgb RGB, amount float64) RGB {
	h, s, l := RGBToHSL(rgb)
	return HSLToRGB(h, s, clamp01(l-amount))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
