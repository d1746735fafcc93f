package search

// CandidateBounds returns the exclusive upper limits for a window's top-left
// corner: windows are evaluated at 0 <= x < maxX and 0 <= y < maxY.
//
// Without flush the limits are big-small, so a needle aligned with the
// haystack's right or bottom edge is never tested. With flush they are
// big-small+1. Either way, for any sample offset dx < smallW and x < maxX,
// x+dx < bigW holds, so pixel access stays in range.
//
// If the needle does not fit in either dimension both limits are 0.
func CandidateBounds(bigW, bigH, smallW, smallH int, flush bool) (maxX, maxY int) {
	maxX = bigW - smallW
	maxY = bigH - smallH
	if flush {
		maxX++
		maxY++
	}
	if maxX <= 0 || maxY <= 0 {
		return 0, 0
	}
	return maxX, maxY
}
