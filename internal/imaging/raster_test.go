package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/image-grep/internal/search"
)

func TestNewRaster(t *testing.T) {
	img := createPatternImage(40, 20)
	r := NewRaster(img)

	if r.Width() != 40 || r.Height() != 20 {
		t.Fatalf("dimensions: got %dx%d, want 40x20", r.Width(), r.Height())
	}

	tests := []struct {
		x, y    int
		r, g, b uint8
	}{
		{0, 0, 255, 0, 0},
		{39, 0, 0, 255, 0},
		{0, 19, 0, 0, 255},
		{39, 19, 255, 255, 255},
	}
	for _, tt := range tests {
		r8, g8, b8 := r.RGBAt(tt.x, tt.y)
		if r8 != tt.r || g8 != tt.g || b8 != tt.b {
			t.Errorf("(%d,%d): got (%d,%d,%d), want (%d,%d,%d)", tt.x, tt.y, r8, g8, b8, tt.r, tt.g, tt.b)
		}
	}
}

func TestNewRaster_OffsetOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 5, 14, 8))
	for y := 5; y < 8; y++ {
		for x := 10; x < 14; x++ {
			src.Set(x, y, color.RGBA{0, 0, 0, 255})
		}
	}
	src.Set(10, 5, color.RGBA{9, 8, 7, 255})

	r := NewRaster(src)
	if r.Width() != 4 || r.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", r.Width(), r.Height())
	}
	if r8, g8, b8 := r.RGBAt(0, 0); r8 != 9 || g8 != 8 || b8 != 7 {
		t.Errorf("(0,0): got (%d,%d,%d), want (9,8,7)", r8, g8, b8)
	}
}

func TestNewRaster_IgnoresAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{200, 100, 50, 10})

	r8, g8, b8 := NewRaster(src).RGBAt(0, 0)
	if r8 != 200 || g8 != 100 || b8 != 50 {
		t.Errorf("got (%d,%d,%d), want (200,100,50)", r8, g8, b8)
	}
}

func TestNewRaster_Paletted(t *testing.T) {
	pal := color.Palette{color.RGBA{0, 0, 0, 255}, color.RGBA{12, 34, 56, 255}}
	src := image.NewPaletted(image.Rect(0, 0, 3, 3), pal)
	src.SetColorIndex(1, 2, 1)

	r8, g8, b8 := NewRaster(src).RGBAt(1, 2)
	if r8 != 12 || g8 != 34 || b8 != 56 {
		t.Errorf("got (%d,%d,%d), want (12,34,56)", r8, g8, b8)
	}
}

func TestRaster_FindCroppedNeedle(t *testing.T) {
	img := createPatternImage(80, 60)
	// Mark a spot so the needle is unique.
	img.Set(30, 20, color.RGBA{1, 2, 3, 255})

	haystack := NewRaster(img)
	needle := NewRaster(img.SubImage(image.Rect(28, 18, 33, 23)))

	res, err := search.Find(haystack, needle, search.DefaultOptions())
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(res.Matches) != 1 || res.Matches[0] != (search.Point{X: 28, Y: 18}) {
		t.Errorf("Matches: got %v, want [{28 18}]", res.Matches)
	}
}
