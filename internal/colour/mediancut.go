// Package colour provides colour extraction and analysis functionality.
package colour

import (
	"fmt"
	"sort"
)

// MedianCutQuantizer implements colour quantization using the median cut
// algorithm. Unlike clustering approaches it is fully deterministic: the
// same pixels always produce the same palette.
type MedianCutQuantizer struct{}

// NewMedianCutQuantizer creates a new MedianCutQuantizer.
func NewMedianCutQuantizer() *MedianCutQuantizer {
	return &MedianCutQuantizer{}
}

// Quantize extracts up to count representative colours from the pixels.
// Returned colours are ordered by descending bucket population, which is
// the quantizer's notion of dominance.
func (q *MedianCutQuantizer) Quantize(pixels []RGB, count int) ([]RGB, error) {
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels to quantize")
	}

	// Work on a copy: splitting sorts sub-ranges in place.
	work := make([]RGB, len(pixels))
	copy(work, pixels)

	boxes := []colorBox{newColorBox(work)}
	for len(boxes) < count {
		idx := widestBox(boxes)
		if idx < 0 {
			// No box can be split further; fewer distinct colours than requested.
			break
		}
		left, right := boxes[idx].split()
		boxes[idx] = left
		boxes = append(boxes, right)
	}

	// Dominant first: larger buckets represent larger image regions.
	sort.SliceStable(boxes, func(i, j int) bool {
		return len(boxes[i].pixels) > len(boxes[j].pixels)
	})

	colors := make([]RGB, len(boxes))
	for i, b := range boxes {
		colors[i] = b.average()
	}
	return colors, nil
}

// colorBox is a axis-aligned box in RGB space holding a range of pixels.
type colorBox struct {
	pixels     []RGB
	rMin, rMax uint8
	gMin, gMax uint8
	bMin, bMax uint8
}

func newColorBox(pixels []RGB) colorBox {
	box := colorBox{
		pixels: pixels,
		rMin:   255, gMin: 255, bMin: 255,
	}
	for _, p := range pixels {
		box.rMin = min(box.rMin, p.R)
		box.rMax = max(box.rMax, p.R)
		box.gMin = min(box.gMin, p.G)
		box.gMax = max(box.gMax, p.G)
		box.bMin = min(box.bMin, p.B)
		box.bMax = max(box.bMax, p.B)
	}
	return box
}

// longestRange returns the widest channel of the box: 0=R, 1=G, 2=B,
// together with its width.
func (b colorBox) longestRange() (channel, width int) {
	rRange := int(b.rMax) - int(b.rMin)
	gRange := int(b.gMax) - int(b.gMin)
	bRange := int(b.bMax) - int(b.bMin)

	channel, width = 0, rRange
	if gRange > width {
		channel, width = 1, gRange
	}
	if bRange > width {
		channel, width = 2, bRange
	}
	return channel, width
}

// canSplit reports whether the box holds at least two pixels spanning more
// than a single colour on some channel.
func (b colorBox) canSplit() bool {
	if len(b.pixels) < 2 {
		return false
	}
	_, width := b.longestRange()
	return width > 0
}

// split sorts the box's pixels along its widest channel and cuts at the
// median, producing two boxes.
func (b colorBox) split() (colorBox, colorBox) {
	channel, _ := b.longestRange()

	sort.SliceStable(b.pixels, func(i, j int) bool {
		switch channel {
		case 0:
			return b.pixels[i].R < b.pixels[j].R
		case 1:
			return b.pixels[i].G < b.pixels[j].G
		default:
			return b.pixels[i].B < b.pixels[j].B
		}
	})

	median := len(b.pixels) / 2
	return newColorBox(b.pixels[:median]), newColorBox(b.pixels[median:])
}

// average returns the mean colour of the box.
func (b colorBox) average() RGB {
	if len(b.pixels) == 0 {
		return RGB{}
	}

	var rSum, gSum, bSum uint64
	for _, p := range b.pixels {
		rSum += uint64(p.R)
		gSum += uint64(p.G)
		bSum += uint64(p.B)
	}
	n := uint64(len(b.pixels))
	return RGB{
		R: uint8(rSum / n),
		G: uint8(gSum / n),
		B: uint8(bSum / n),
	}
}

// widestBox returns the index of the splittable box with the widest channel
// range, or -1 when no box can be split.
func widestBox(boxes []colorBox) int {
	best := -1
	bestWidth := 0
	for i, b := range boxes {
		if !b.canSplit() {
			continue
		}
		_, width := b.longestRange()
		if width > bestWidth {
			best = i
			bestWidth = width
		}
	}
	return best
}
