package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// CropResult describes a needle cut from a larger image.
type CropResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	SavedPath   string `json:"saved_path,omitempty"`
}

// Crop extracts the region (x1,y1)-(x2,y2) from img, x2 and y2 exclusive.
//
// If savePath is not empty the region is also written there; the format
// follows the extension (.bmp, .png, .jpg, .gif, .tif). Cutting a needle
// out of a screenshot and saving it as BMP gives a file that an exact
// search finds again at (x1,y1).
func Crop(img image.Image, x1, y1, x2, y2 int, savePath string) (*CropResult, error) {
	bounds := img.Bounds()

	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	cropped := imaging.Crop(img, image.Rect(x1, y1, x2, y2))

	if savePath != "" {
		if err := imaging.Save(cropped, savePath); err != nil {
			return nil, fmt.Errorf("failed to save cropped image: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("failed to encode cropped image: %w", err)
	}

	return &CropResult{
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		SavedPath:   savePath,
	}, nil
}
