// Package imaging loads images from disk and prepares them for searching.
//
// It is the pixel source for package search: a Raster wraps a decoded image
// and satisfies search.PixelGrid. Around that it provides the helpers used
// by the CLI and the MCP server to work with needles and matches: cropping
// a needle out of a screenshot, sampling colors to pick a tolerance, and
// drawing match outlines onto the haystack.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Formats
//
// BMP, PNG, JPEG and GIF files are decoded. Every image is normalized to
// 8-bit non-premultiplied RGBA before searching, so a needle saved as PNG
// can be found in a BMP screenshot as long as the pixel values agree.
// Alpha is never compared.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Rasters are read-only once built.
package imaging
