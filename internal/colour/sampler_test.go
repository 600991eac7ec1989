package colour

import (
	"image"
	"image/color"
	"testing"
)

func TestFallbackSampleDedupes(t *testing.T) {
	// Two bands of nearly identical colour collapse to one sample.
	img := image.NewRGBA(image.Rect(0, 0, 20, 2))
	for x := 0; x < 20; x++ {
		img.SetRGBA(x, 0, color.RGBA{R: 200, G: 10, B: 10, A: 255})
		img.SetRGBA(x, 1, color.RGBA{R: 205, G: 12, B: 11, A: 255})
	}

	colors := fallbackSample(img, 8)
	if len(colors) != 1 {
		t.Errorf("fallbackSample returned %d colours, want 1 after dedupe", len(colors))
	}
}

func TestFallbackSampleSkipsTransparent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	// Only one opaque pixel in an otherwise transparent image.
	img.SetRGBA(3, 3, color.RGBA{R: 65, G: 159, B: 217, A: 255})

	colors := fallbackSample(img, 4)
	if len(colors) != 1 {
		t.Fatalf("fallbackSample returned %d colours, want 1", len(colors))
	}
	if colors[0].Hex() != "419fd9" {
		t.Errorf("fallbackSample colour = %q, want 419fd9", colors[0].Hex())
	}
}

func TestFallbackSampleStopsAtColourCount(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 16),
				G: uint8(y * 16),
				B: uint8(255 - x*16),
				A: 255,
			})
		}
	}

	colors := fallbackSample(img, 3)
	if len(colors) > 3 {
		t.Errorf("fallbackSample returned %d colours, want at most 3", len(colors))
	}
	if len(colors) == 0 {
		t.Error("fallbackSample returned no colours")
	}
}
