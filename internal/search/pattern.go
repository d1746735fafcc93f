package search

import (
	"errors"
	"fmt"
)

const (
	// MaxPatternPixels is the largest needle, in pixels, that BuildPattern accepts.
	MaxPatternPixels = 800 * 600

	// MaxPatternThreshold is the largest possible brightness difference
	// between two pixels (3 * 255).
	MaxPatternThreshold = 3 * 255

	// noBrightness stands in for "no sample taken yet". It sits far enough
	// below 0 that |b - noBrightness| >= MaxPatternThreshold for every
	// brightness b, so the first pixel is always sampled.
	noBrightness = -4 * MaxPatternThreshold
)

// ErrPatternTooLarge is returned when the needle exceeds MaxPatternPixels.
var ErrPatternTooLarge = errors.New("pattern too large")

// PixelGrid is read-only random access to a decoded image.
//
// RGBAt is only called with 0 <= x < Width() and 0 <= y < Height().
type PixelGrid interface {
	Width() int
	Height() int
	RGBAt(x, y int) (r, g, b uint8)
}

// Sample is a single needle pixel kept in a Pattern.
type Sample struct {
	DX int   `json:"dx"` // X offset within the needle
	DY int   `json:"dy"` // Y offset within the needle
	R  uint8 `json:"r"`
	G  uint8 `json:"g"`
	B  uint8 `json:"b"`
}

// Pattern is the reduced form of a needle used during a scan.
//
// Samples are in row-major order of the needle. Width and Height are the
// needle's dimensions, which bound the candidate windows.
type Pattern struct {
	Width   int
	Height  int
	Samples []Sample
}

// Len returns the number of samples in the pattern.
func (p *Pattern) Len() int {
	return len(p.Samples)
}

// BuildPattern reduces small to a Pattern.
//
// Parameters:
//   - small: The needle image.
//   - threshold: Minimum brightness difference (r+g+b) from the previously
//     kept pixel for a pixel to be kept. 0 keeps every pixel. Must be in
//     [0, MaxPatternThreshold].
//
// Returns:
//   - *Pattern: Samples in row-major order. The first pixel is always kept.
//   - error: ErrPatternTooLarge (wrapped) if the needle has more than
//     MaxPatternPixels pixels. Nothing is scanned in that case.
func BuildPattern(small PixelGrid, threshold int) (*Pattern, error) {
	w, h := small.Width(), small.Height()
	if w*h > MaxPatternPixels {
		return nil, fmt.Errorf("%w: %dx%d is %d pixels, limit is %d",
			ErrPatternTooLarge, w, h, w*h, MaxPatternPixels)
	}

	p := &Pattern{Width: w, Height: h}
	if threshold == 0 {
		p.Samples = make([]Sample, 0, w*h)
	}

	last := noBrightness
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := small.RGBAt(x, y)
			brightness := int(r) + int(g) + int(b)
			if abs(brightness-last) < threshold {
				continue
			}
			p.Samples = append(p.Samples, Sample{DX: x, DY: y, R: r, G: g, B: b})
			last = brightness
		}
	}

	return p, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
