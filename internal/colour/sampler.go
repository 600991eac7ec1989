// Package colour provides colour extraction and analysis functionality.
package colour

import (
	"image"
)

// maxFallbackSamplesPerColour bounds the work done by the fallback sampler:
// at most colorCount × 100 pixels are inspected.
const maxFallbackSamplesPerColour = 100

// fallbackDedupeDistance is the minimum Euclidean RGB distance between two
// colours kept by the fallback sampler.
const fallbackDedupeDistance = 30.0

// fallbackSample extracts colours by walking the raw pixel buffer directly.
// Used when quantization fails or produces nothing. The stride is computed
// so at most colorCount × 100 pixels are sampled; pixels with alpha below
// 128 are skipped and near-duplicates are dropped.
//
// This is a best-effort heuristic: pathological images (e.g. stripes aligned
// with the stride) can produce unrepresentative results.
func fallbackSample(img image.Image, colorCount int) []RGB {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	total := width * height
	if total == 0 {
		return nil
	}

	maxSamples := colorCount * maxFallbackSamplesPerColour
	stride := max(total/maxSamples, 1)

	colors := make([]RGB, 0, colorCount)
	for i := 0; i < total && len(colors) < colorCount; i += stride {
		x := bounds.Min.X + i%width
		y := bounds.Min.Y + i/width

		r, g, b, a := img.At(x, y).RGBA()
		if a>>8 < 128 {
			continue
		}

		candidate := RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		if isNearDuplicate(candidate, colors) {
			continue
		}
		colors = append(colors, candidate)
	}

	return colors
}

// isNearDuplicate reports whether the candidate is within the dedupe
// distance of any already-kept colour.
func isNearDuplicate(candidate RGB, kept []RGB) bool {
	for _, c := range kept {
		if candidate.Distance(c) < fallbackDedupeDistance {
			return true
		}
	}
	return false
}
