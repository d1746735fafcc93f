package search

import (
	"github.com/anthonynsimon/bild/parallel"
)

// Point is a haystack position of a needle's top-left pixel.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Scan slides p over big and returns the top-left corner of every window
// in which all samples match under tol.
//
// Windows are visited Y ascending, then X ascending, and matches are
// returned in that order. If maxMatches is greater than zero the scan stops
// as soon as that many matches have been found. flush selects the inclusive
// window range (see CandidateBounds).
//
// The returned slice is never nil.
func Scan(big PixelGrid, p *Pattern, tol Tolerance, maxMatches int, flush bool) []Point {
	maxX, maxY := CandidateBounds(big.Width(), big.Height(), p.Width, p.Height, flush)

	matches := make([]Point, 0)
	for y := 0; y < maxY; y++ {
		for x := 0; x < maxX; x++ {
			if !matchAt(big, p, tol, x, y) {
				continue
			}
			matches = append(matches, Point{X: x, Y: y})
			if maxMatches > 0 && len(matches) == maxMatches {
				return matches
			}
		}
	}
	return matches
}

// ScanParallel returns exactly what Scan returns for the same arguments,
// spreading the candidate rows over GOMAXPROCS goroutines.
//
// Each row collects its own matches, so no locking is needed. The rows are
// joined in order afterwards and cut to maxMatches, which keeps the first N
// matches in scan order. A row stops early once it alone holds maxMatches
// matches, since nothing after that can be reported.
func ScanParallel(big PixelGrid, p *Pattern, tol Tolerance, maxMatches int, flush bool) []Point {
	maxX, maxY := CandidateBounds(big.Width(), big.Height(), p.Width, p.Height, flush)

	rows := make([][]Point, maxY)
	parallel.Line(maxY, func(start, end int) {
		for y := start; y < end; y++ {
			var row []Point
			for x := 0; x < maxX; x++ {
				if !matchAt(big, p, tol, x, y) {
					continue
				}
				row = append(row, Point{X: x, Y: y})
				if maxMatches > 0 && len(row) == maxMatches {
					break
				}
			}
			rows[y] = row
		}
	})

	matches := make([]Point, 0)
	for _, row := range rows {
		matches = append(matches, row...)
		if maxMatches > 0 && len(matches) >= maxMatches {
			return matches[:maxMatches]
		}
	}
	return matches
}

// matchAt reports whether every sample of p matches big with the needle's
// top-left corner at (x, y). It stops at the first mismatch.
//
// The caller guarantees x < big.Width()-p.Width+1 and likewise for y, so
// x+DX and y+DY are always inside big.
func matchAt(big PixelGrid, p *Pattern, tol Tolerance, x, y int) bool {
	for _, s := range p.Samples {
		r, g, b := big.RGBAt(x+s.DX, y+s.DY)
		if !tol.Match(r, g, b, s) {
			return false
		}
	}
	return true
}
