package imaging

import (
	"encoding/base64"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"
)

func TestCrop(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := Crop(img, 0, 0, 50, 50, "")
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if result.Width != 50 || result.Height != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	if result.SavedPath != "" {
		t.Errorf("SavedPath: got %q, want empty", result.SavedPath)
	}

	if _, err := base64.StdEncoding.DecodeString(result.ImageBase64); err != nil {
		t.Errorf("failed to decode base64: %v", err)
	}
}

func TestCrop_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"x1 negative", -1, 0, 50, 50},
		{"y1 negative", 0, -1, 50, 50},
		{"x2 too large", 0, 0, 101, 50},
		{"y2 too large", 0, 0, 50, 101},
		{"all out of bounds", -1, -1, 200, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Crop(img, tt.x1, tt.y1, tt.x2, tt.y2, "")
			if err == nil {
				t.Error("Crop should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestCrop_InvalidRegion(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"x1 >= x2", 50, 0, 50, 50},
		{"x1 > x2", 60, 0, 50, 50},
		{"y1 >= y2", 0, 50, 50, 50},
		{"y1 > y2", 0, 60, 50, 50},
		{"zero area", 50, 50, 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Crop(img, tt.x1, tt.y1, tt.x2, tt.y2, "")
			if err == nil {
				t.Error("Crop should fail for invalid region")
			}
		})
	}
}

func TestCrop_VerifyContent(t *testing.T) {
	img := createPatternImage(100, 100)

	// Straddles the red and green quadrants.
	result, err := Crop(img, 40, 10, 60, 20, "")
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	croppedImg, err := png.Decode(strings.NewReader(string(decoded)))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}

	r := NewRaster(croppedImg)
	if c, _ := SampleColor(r, 0, 0); c.Hex != "#FF0000" {
		t.Errorf("left pixel: got %s, want #FF0000", c.Hex)
	}
	if c, _ := SampleColor(r, 19, 9); c.Hex != "#00FF00" {
		t.Errorf("right pixel: got %s, want #00FF00", c.Hex)
	}
}

func TestCrop_SaveAndReload(t *testing.T) {
	img := createPatternImage(60, 40)

	for _, ext := range []string{".bmp", ".png"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "needle"+ext)

			result, err := Crop(img, 25, 15, 35, 25, path)
			if err != nil {
				t.Fatalf("Crop failed: %v", err)
			}
			if result.SavedPath != path {
				t.Errorf("SavedPath: got %q, want %q", result.SavedPath, path)
			}

			cache := NewImageCache()
			needle, err := cache.Raster(path)
			if err != nil {
				t.Fatalf("reload failed: %v", err)
			}
			if needle.Width() != 10 || needle.Height() != 10 {
				t.Fatalf("dimensions: got %dx%d, want 10x10", needle.Width(), needle.Height())
			}

			// The needle's top-left is the haystack's (25,15): red.
			r, g, b := needle.RGBAt(0, 0)
			if r != 255 || g != 0 || b != 0 {
				t.Errorf("top-left: got (%d,%d,%d), want (255,0,0)", r, g, b)
			}
			// And its bottom-right is the haystack's (34,24): white.
			r, g, b = needle.RGBAt(9, 9)
			if r != 255 || g != 255 || b != 255 {
				t.Errorf("bottom-right: got (%d,%d,%d), want (255,255,255)", r, g, b)
			}
		})
	}
}

func TestCrop_SaveUnsupportedExtension(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{1, 2, 3, 255})
	path := filepath.Join(t.TempDir(), "needle.xyz")

	if _, err := Crop(img, 0, 0, 5, 5, path); err == nil {
		t.Error("Crop should fail for an unsupported save format")
	}
}
