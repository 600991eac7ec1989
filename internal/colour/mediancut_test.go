package colour

import (
	"testing"
)

func TestMedianCutQuantizeErrors(t *testing.T) {
	q := NewMedianCutQuantizer()

	if _, err := q.Quantize(nil, 4); err == nil {
		t.Error("expected error for empty pixel slice")
	}
	if _, err := q.Quantize([]RGB{{R: 255}}, 0); err == nil {
		t.Error("expected error for zero colour count")
	}
}

func TestMedianCutQuantizeUniform(t *testing.T) {
	pixels := make([]RGB, 100)
	for i := range pixels {
		pixels[i] = RGB{R: 65, G: 159, B: 217}
	}

	q := NewMedianCutQuantizer()
	colors, err := q.Quantize(pixels, 8)
	if err != nil {
		t.Fatalf("Quantize returned error: %v", err)
	}

	// A single distinct colour cannot be split into more buckets.
	if len(colors) != 1 {
		t.Fatalf("Quantize returned %d colours, want 1", len(colors))
	}
	if colors[0] != (RGB{R: 65, G: 159, B: 217}) {
		t.Errorf("Quantize returned %+v, want the input colour", colors[0])
	}
}

func TestMedianCutQuantizeTwoColours(t *testing.T) {
	// An even red/blue split cuts exactly at the colour boundary, so both
	// buckets stay pure.
	var pixels []RGB
	for i := 0; i < 50; i++ {
		pixels = append(pixels, RGB{R: 255})
	}
	for i := 0; i < 50; i++ {
		pixels = append(pixels, RGB{B: 255})
	}

	q := NewMedianCutQuantizer()
	colors, err := q.Quantize(pixels, 2)
	if err != nil {
		t.Fatalf("Quantize returned error: %v", err)
	}

	if len(colors) != 2 {
		t.Fatalf("Quantize returned %d colours, want 2", len(colors))
	}
	found := map[string]bool{}
	for _, c := range colors {
		found[c.Hex()] = true
	}
	if !found["ff0000"] || !found["0000ff"] {
		t.Errorf("Quantize returned %v, want pure red and pure blue", colors)
	}
}

func TestMedianCutQuantizeDeterministic(t *testing.T) {
	var pixels []RGB
	for i := 0; i < 256; i++ {
		pixels = append(pixels, RGB{
			R: uint8(i),
			G: uint8((i * 7) % 256),
			B: uint8((i * 13) % 256),
		})
	}

	q := NewMedianCutQuantizer()
	first, err := q.Quantize(pixels, 8)
	if err != nil {
		t.Fatalf("Quantize returned error: %v", err)
	}
	second, err := q.Quantize(pixels, 8)
	if err != nil {
		t.Fatalf("Quantize returned error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("runs returned %d and %d colours", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("colour %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestMedianCutQuantizeDoesNotMutateInput(t *testing.T) {
	pixels := []RGB{{R: 255}, {G: 255}, {B: 255}, {R: 128, G: 128}}
	original := make([]RGB, len(pixels))
	copy(original, pixels)

	q := NewMedianCutQuantizer()
	if _, err := q.Quantize(pixels, 2); err != nil {
		t.Fatalf("Quantize returned error: %v", err)
	}

	for i := range pixels {
		if pixels[i] != original[i] {
			t.Fatalf("input slice was reordered at index %d", i)
		}
	}
}
