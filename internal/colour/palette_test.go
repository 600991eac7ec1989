package colour

import (
	"math"
	"testing"
)

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{"black", RGB{R: 0, G: 0, B: 0}, "000000"},
		{"white", RGB{R: 255, G: 255, B: 255}, "ffffff"},
		{"telegram blue", RGB{R: 65, G: 159, B: 217}, "419fd9"},
		{"single digit channels", RGB{R: 1, G: 2, B: 3}, "010203"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRGBDistance(t *testing.T) {
	a := RGB{R: 0, G: 0, B: 0}
	b := RGB{R: 255, G: 255, B: 255}

	if got := a.Distance(a); got != 0 {
		t.Errorf("Distance to self = %f, want 0", got)
	}

	want := math.Sqrt(3 * 255 * 255)
	if got := a.Distance(b); math.Abs(got-want) > 0.001 {
		t.Errorf("Distance(black, white) = %f, want %f", got, want)
	}

	if a.Distance(b) != b.Distance(a) {
		t.Error("Distance is not symmetric")
	}
}

func TestBrightness(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want float64
	}{
		{"black", RGB{}, 0},
		{"white", RGB{R: 255, G: 255, B: 255}, 255},
		{"pure red", RGB{R: 255}, 0.299 * 255},
		{"pure green", RGB{G: 255}, 0.587 * 255},
		{"pure blue", RGB{B: 255}, 0.114 * 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Brightness(tt.rgb); math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Brightness(%+v) = %f, want %f", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestVibrancy(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want float64
	}{
		{"pure red is maximally vibrant", RGB{R: 255}, 1},
		{"white is not vibrant", RGB{R: 255, G: 255, B: 255}, 0},
		{"black is not vibrant", RGB{}, 0},
		{"gray is not vibrant", RGB{R: 128, G: 128, B: 128}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Vibrancy(tt.rgb); math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Vibrancy(%+v) = %f, want %f", tt.rgb, got, tt.want)
			}
		})
	}

	// A saturated mid-lightness colour beats a washed-out one.
	saturated := Vibrancy(RGB{R: 65, G: 159, B: 217})
	washedOut := Vibrancy(RGB{R: 210, G: 225, B: 235})
	if saturated <= washedOut {
		t.Errorf("Vibrancy(saturated) = %f <= Vibrancy(washed out) = %f", saturated, washedOut)
	}
}

func TestNewExtractedColor(t *testing.T) {
	c := NewExtractedColor(RGB{R: 65, G: 159, B: 217})

	if c.Hex != "419fd9" {
		t.Errorf("Hex = %q, want 419fd9", c.Hex)
	}
	if c.Vibrancy <= 0 || c.Vibrancy > 1 {
		t.Errorf("Vibrancy = %f, want in (0, 1]", c.Vibrancy)
	}
	if c.Brightness <= 0 || c.Brightness >= 255 {
		t.Errorf("Brightness = %f, want in (0, 255)", c.Brightness)
	}
}

func TestPaletteGet(t *testing.T) {
	palette := NewPalette([]ExtractedColor{
		NewExtractedColor(RGB{R: 255}),
		NewExtractedColor(RGB{G: 255}),
	})

	c, err := palette.Get(0)
	if err != nil {
		t.Fatalf("Get(0) returned error: %v", err)
	}
	if c.Hex != "ff0000" {
		t.Errorf("Get(0).Hex = %q, want ff0000", c.Hex)
	}

	if _, err := palette.Get(2); err == nil {
		t.Error("Get(2) on a 2-colour palette should fail")
	}
	if _, err := palette.Get(-1); err == nil {
		t.Error("Get(-1) should fail")
	}
}

func TestPaletteToHex(t *testing.T) {
	palette := NewPalette([]ExtractedColor{
		NewExtractedColor(RGB{R: 255}),
		NewExtractedColor(RGB{B: 255}),
	})

	got := palette.ToHex()
	want := []string{"ff0000", "0000ff"}
	if len(got) != len(want) {
		t.Fatalf("ToHex() returned %d colours, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ToHex()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPaletteIsGrayscale(t *testing.T) {
	tests := []struct {
		name   string
		colors []RGB
		want   bool
	}{
		{
			name:   "empty palette",
			colors: nil,
			want:   true,
		},
		{
			name:   "pure grays",
			colors: []RGB{{R: 10, G: 10, B: 10}, {R: 200, G: 200, B: 200}},
			want:   true,
		},
		{
			name:   "near grays within spread",
			colors: []RGB{{R: 100, G: 110, B: 105}},
			want:   true,
		},
		{
			name:   "one chromatic colour",
			colors: []RGB{{R: 10, G: 10, B: 10}, {R: 255, G: 0, B: 0}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors := make([]ExtractedColor, len(tt.colors))
			for i, rgb := range tt.colors {
				colors[i] = NewExtractedColor(rgb)
			}
			if got := NewPalette(colors).IsGrayscale(); got != tt.want {
				t.Errorf("IsGrayscale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaletteIsSingleColor(t *testing.T) {
	tests := []struct {
		name   string
		colors []RGB
		want   bool
	}{
		{
			name:   "empty palette",
			colors: nil,
			want:   true,
		},
		{
			name:   "one colour",
			colors: []RGB{{R: 255}},
			want:   true,
		},
		{
			name:   "tight cluster",
			colors: []RGB{{R: 200, G: 30, B: 30}, {R: 210, G: 40, B: 35}},
			want:   true,
		},
		{
			name:   "spread out colours",
			colors: []RGB{{R: 255}, {B: 255}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors := make([]ExtractedColor, len(tt.colors))
			for i, rgb := range tt.colors {
				colors[i] = NewExtractedColor(rgb)
			}
			if got := NewPalette(colors).IsSingleColor(); got != tt.want {
				t.Errorf("IsSingleColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaletteToJSON(t *testing.T) {
	palette := NewPalette([]ExtractedColor{NewExtractedColor(RGB{R: 255})})

	data, err := palette.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("ToJSON returned empty output")
	}
}
