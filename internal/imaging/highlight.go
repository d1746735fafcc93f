package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-grep/internal/search"
)

// DefaultHighlightColor is used when no outline color is given.
const DefaultHighlightColor = "#FF0000"

// HighlightResult contains a haystack with its matches outlined.
type HighlightResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Outlined    int    `json:"outlined"`
}

// DrawMatches returns a copy of img with a w x h rectangle outlined at each
// match. With labels, each outline gets its "x,y" position written above
// it (or inside it when there is no room above).
func DrawMatches(img image.Image, matches []search.Point, w, h int, c color.NRGBA, labels bool) *image.NRGBA {
	dst := imaging.Clone(img)

	for _, m := range matches {
		outline(dst, image.Rect(m.X, m.Y, m.X+w, m.Y+h), c)
	}

	if labels {
		fg := color.NRGBA{255, 255, 255, 255}
		bg := color.NRGBA{c.R, c.G, c.B, 200}
		for _, m := range matches {
			ly := m.Y - labelHeight - 1
			if ly < 0 {
				ly = m.Y + 1
			}
			drawLabel(dst, m.X+1, ly, fmt.Sprintf("%d,%d", m.X, m.Y), fg, bg)
		}
	}

	return dst
}

// HighlightMatches outlines matches on img and returns the result as a
// base64 PNG.
//
// Parameters:
//   - img: The haystack the matches were found in.
//   - matches: Top-left corners, as returned by search.Find.
//   - w, h: The needle's dimensions.
//   - colorHex: Outline color, "#RRGGBB" or "#RGB". Empty or invalid values
//     fall back to DefaultHighlightColor.
//   - labels: Write each match's coordinates next to its outline.
func HighlightMatches(img image.Image, matches []search.Point, w, h int, colorHex string, labels bool) (*HighlightResult, error) {
	c, err := ParseColor(colorHex)
	if err != nil {
		c, _ = ParseColor(DefaultHighlightColor)
	}

	dst := DrawMatches(img, matches, w, h, c, labels)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &HighlightResult{
		Width:       dst.Bounds().Dx(),
		Height:      dst.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Outlined:    len(matches),
	}, nil
}

// outline draws the one-pixel border of r, clipped to img.
func outline(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		setClipped(img, x, r.Min.Y, c)
		setClipped(img, x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		setClipped(img, r.Min.X, y, c)
		setClipped(img, r.Max.X-1, y, c)
	}
}

func setClipped(img *image.NRGBA, x, y int, c color.NRGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetNRGBA(x, y, c)
	}
}

const (
	glyphWidth  = 4
	labelHeight = 7
)

// Simple 3x5 pixel font for digits and comma.
var glyphs = map[rune][5]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	',': {"000", "000", "000", "010", "010"},
}

// drawLabel writes text at (x, y) on a filled background box.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	labelWidth := len(text) * glyphWidth

	for dy := -1; dy < labelHeight-1; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			setClipped(img, x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		if glyph, ok := glyphs[ch]; ok {
			for row, line := range glyph {
				for col, pixel := range line {
					if pixel == '1' {
						setClipped(img, cx+col, y+row, fg)
					}
				}
			}
		}
		cx += glyphWidth
	}
}
