package imaging

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a pixel's color in the forms useful when tuning a
// search.
type ColorResult struct {
	X   int      `json:"x"`
	Y   int      `json:"y"`
	Hex string   `json:"hex"` // "#RRGGBB"
	RGB RGBColor `json:"rgb"` // What a tolerance is measured against
	HSL HSLColor `json:"hsl"`

	// Brightness is r+g+b (0-765), the measure the pattern threshold
	// is applied to.
	Brightness int `json:"brightness"`
}

// SampleColor returns the color at (x, y) of a Raster.
//
// Parameters:
//   - r: The raster to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) as hex, RGB, HSL and brightness.
//   - error: Non-nil if the coordinates are outside the raster.
//
// The values are exactly those the search compares, since both read the
// same normalized pixels.
func SampleColor(r *Raster, x, y int) (*ColorResult, error) {
	if x < 0 || x >= r.Width() || y < 0 || y >= r.Height() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, r.Width(), r.Height())
	}

	red, green, blue := r.RGBAt(x, y)
	return &ColorResult{
		X:          x,
		Y:          y,
		Hex:        fmt.Sprintf("#%02X%02X%02X", red, green, blue),
		RGB:        RGBColor{R: red, G: green, B: blue},
		HSL:        rgbToHSL(red, green, blue),
		Brightness: int(red) + int(green) + int(blue),
	}, nil
}

// ParseColor parses "#RRGGBB" or "#RGB" into an opaque color.
func ParseColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// rgbToHSL converts 8-bit RGB to HSL with hue in degrees and saturation
// and lightness in percent, truncated to integers.
func rgbToHSL(r, g, b uint8) HSLColor {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}
