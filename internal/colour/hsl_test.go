package colour

import (
	"testing"
)

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain six digits",
			input: "419fd9",
			want:  "419fd9",
		},
		{
			name:  "hash prefix",
			input: "#419fd9",
			want:  "419fd9",
		},
		{
			name:  "uppercase",
			input: "419FD9",
			want:  "419fd9",
		},
		{
			name:  "three digit shorthand",
			input: "#fa0",
			want:  "ffaa00",
		},
		{
			name:  "alpha suffix dropped",
			input: "419fd94c",
			want:  "419fd9",
		},
		{
			name:  "surrounding whitespace",
			input: "  #ffffff ",
			want:  "ffffff",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "wrong length",
			input:   "12345",
			wantErr: true,
		},
		{
			name:    "non hex characters",
			input:   "gggggg",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("NormalizeHex(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsHexToken(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"six digits", "419fd9", true},
		{"eight digits with alpha", "419fd94c", true},
		{"uppercase accepted", "419FD9", true},
		{"hash prefix rejected", "#419fd9", false},
		{"three digits rejected", "fa0", false},
		{"seven digits rejected", "419fd94", false},
		{"empty rejected", "", false},
		{"non hex rejected", "window", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHexToken(tt.value); got != tt.want {
				t.Errorf("IsHexToken(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{
			name:  "telegram blue",
			input: "419fd9",
			want:  RGB{R: 65, G: 159, B: 217},
		},
		{
			name:  "white",
			input: "#ffffff",
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:  "black",
			input: "000000",
			want:  RGB{R: 0, G: 0, B: 0},
		},
		{
			name:    "invalid",
			input:   "not-a-colour",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToRGB(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HexToRGB(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("HexToRGB(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name  string
		rgb   RGB
		wantH float64
		wantS float64
		wantL float64
	}{
		{
			name:  "pure red",
			rgb:   RGB{R: 255, G: 0, B: 0},
			wantH: 0, wantS: 1, wantL: 0.5,
		},
		{
			name:  "pure green",
			rgb:   RGB{R: 0, G: 255, B: 0},
			wantH: 120, wantS: 1, wantL: 0.5,
		},
		{
			name:  "pure blue",
			rgb:   RGB{R: 0, G: 0, B: 255},
			wantH: 240, wantS: 1, wantL: 0.5,
		},
		{
			name:  "white",
			rgb:   RGB{R: 255, G: 255, B: 255},
			wantH: 0, wantS: 0, wantL: 1,
		},
		{
			name:  "black",
			rgb:   RGB{R: 0, G: 0, B: 0},
			wantH: 0, wantS: 0, wantL: 0,
		},
	}

	const epsilon = 0.001
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.rgb)
			if absDiff(h, tt.wantH) > epsilon || absDiff(s, tt.wantS) > epsilon || absDiff(l, tt.wantL) > epsilon {
				t.Errorf("RGBToHSL(%+v) = (%.3f, %.3f, %.3f), want (%.3f, %.3f, %.3f)",
					tt.rgb, h, s, l, tt.wantH, tt.wantS, tt.wantL)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	colors := []RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 255, G: 255, B: 255},
		{R: 0, G: 0, B: 0},
		{R: 128, G: 128, B: 128},
		{R: 65, G: 159, B: 217},
		{R: 43, G: 82, B: 120},
	}

	for _, c := range colors {
		h, s, l := RGBToHSL(c)
		back := HSLToRGB(h, s, l)

		// Rounding through HSL may move a channel by at most one step.
		if channelDiff(c.R, back.R) > 1 || channelDiff(c.G, back.G) > 1 || channelDiff(c.B, back.B) > 1 {
			t.Errorf("round trip %+v -> (%.2f, %.3f, %.3f) -> %+v drifted more than 1 per channel",
				c, h, s, l, back)
		}
	}
}

func TestLightenDarken(t *testing.T) {
	white := RGB{R: 255, G: 255, B: 255}
	black := RGB{R: 0, G: 0, B: 0}

	if got := Lighten(black, 1); got != white {
		t.Errorf("Lighten(black, 1) = %+v, want white", got)
	}
	if got := Darken(white, 1); got != black {
		t.Errorf("Darken(white, 1) = %+v, want black", got)
	}

	// Lightening must not change hue for a chromatic colour.
	base := RGB{R: 65, G: 159, B: 217}
	hBefore, _, lBefore := RGBToHSL(base)
	lighter := Lighten(base, 0.1)
	hAfter, _, lAfter := RGBToHSL(lighter)

	if absDiff(hBefore, hAfter) > 1.5 {
		t.Errorf("Lighten changed hue: %.2f -> %.2f", hBefore, hAfter)
	}
	if lAfter <= lBefore {
		t.Errorf("Lighten did not increase lightness: %.3f -> %.3f", lBefore, lAfter)
	}

	// Already at the extreme: clamped, not wrapped.
	if got := Lighten(white, 0.5); got != white {
		t.Errorf("Lighten(white, 0.5) = %+v, want white", got)
	}
	if got := Darken(black, 0.5); got != black {
		t.Errorf("Darken(black, 0.5) = %+v, want black", got)
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

func channelDiff(a, b uint8) int {
	if a > b {
		return int(a) - int(b)
	}
	return int(b) - int(a)
}
