// Package search locates a small raster image inside a larger one.
//
// The search runs in two stages. BuildPattern first reduces the small image
// (the needle) to a Pattern: an ordered list of sample points, each carrying
// an offset and a color. Scan then slides a window over the large image (the
// haystack) and checks every sample of the pattern against the haystack pixel
// under it. A window is abandoned on its first mismatching sample.
//
// # Pattern Threshold
//
// The pattern is built by walking the needle row by row and keeping a pixel
// only when its brightness (r+g+b, 0-765) differs from the last kept pixel by
// at least the threshold. A threshold of 0 keeps every pixel. Larger values
// make the pattern smaller and the scan faster, but fewer pixels are checked,
// so false positives become more likely.
//
// # Tolerance
//
// A haystack pixel matches a sample when every channel differs by no more than
// the corresponding Tolerance channel. An all-zero Tolerance means exact
// equality.
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left corner. A match is
// reported as the haystack position of the needle's top-left pixel. Matches
// are reported in row-major order: Y ascending, then X ascending.
//
// # Candidate Windows
//
// By default a window's top-left X ranges over [0, bigWidth-smallWidth) and Y
// over [0, bigHeight-smallHeight). A needle sitting flush against the right or
// bottom edge of the haystack is therefore not reported, which is the
// historical image-grep output. Set Options.FlushEdges to search the
// inclusive range and report edge-aligned matches as well.
//
// # Concurrency
//
// Patterns and grids are read-only during a scan. Scan is sequential.
// ScanParallel splits the candidate rows across goroutines and produces
// exactly the output of Scan.
package search
