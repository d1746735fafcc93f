package search

// Tolerance is the maximum per-channel absolute difference for a haystack
// pixel to match a pattern sample.
type Tolerance struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Uniform returns a Tolerance with the same value on every channel.
func Uniform(v uint8) Tolerance {
	return Tolerance{R: v, G: v, B: v}
}

// IsExact reports whether every channel is zero.
func (t Tolerance) IsExact() bool {
	return t.R == 0 && t.G == 0 && t.B == 0
}

// Match reports whether the color (r, g, b) matches s.
//
// Channels are checked red, green, blue and the first failing channel ends
// the check.
func (t Tolerance) Match(r, g, b uint8, s Sample) bool {
	if t.IsExact() {
		return r == s.R && g == s.G && b == s.B
	}
	return absDiff(r, s.R) <= t.R && absDiff(g, s.G) <= t.G && absDiff(b, s.B) <= t.B
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
