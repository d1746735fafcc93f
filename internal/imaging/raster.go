package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-grep/internal/search"
)

var _ search.PixelGrid = (*Raster)(nil)

// Raster is a decoded image normalized for searching.
//
// Whatever the source color model (paletted GIF, YCbCr JPEG, 16-bit PNG,
// BMP), the pixels are held as 8-bit non-premultiplied RGBA with the origin
// at (0,0). Alpha is kept in the buffer but never reported by RGBAt.
//
// A Raster is never modified after construction and is safe for concurrent
// reads.
type Raster struct {
	img *image.NRGBA
}

// NewRaster copies img into a new Raster.
func NewRaster(img image.Image) *Raster {
	return &Raster{img: imaging.Clone(img)}
}

// Width returns the width in pixels.
func (r *Raster) Width() int { return r.img.Rect.Dx() }

// Height returns the height in pixels.
func (r *Raster) Height() int { return r.img.Rect.Dy() }

// RGBAt returns the color at (x, y). It does not check bounds; callers keep
// 0 <= x < Width() and 0 <= y < Height().
func (r *Raster) RGBAt(x, y int) (red, green, blue uint8) {
	i := y*r.img.Stride + x*4
	p := r.img.Pix[i : i+3 : i+3]
	return p[0], p[1], p[2]
}

// Image returns the underlying pixels. The caller must not modify them.
func (r *Raster) Image() *image.NRGBA {
	return r.img
}

// LoadRaster loads path through cache and returns it as a Raster.
func LoadRaster(cache *ImageCache, path string) (*Raster, error) {
	return cache.Raster(path)
}
