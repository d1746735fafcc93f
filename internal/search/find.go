package search

import (
	"fmt"
)

// Options controls a Find call.
type Options struct {
	// Tolerance is the per-channel difference allowed between a haystack
	// pixel and a pattern sample.
	Tolerance Tolerance `json:"tolerance"`

	// PatternThreshold is the brightness step used by BuildPattern.
	// Valid range is 0 to MaxPatternThreshold.
	PatternThreshold int `json:"pattern_threshold"`

	// MaxMatches stops the scan after this many matches. 0 reports all.
	MaxMatches int `json:"max_matches"`

	// Parallel spreads candidate rows across goroutines. The result is the
	// same as a sequential scan.
	Parallel bool `json:"parallel"`

	// FlushEdges also tests windows whose needle touches the haystack's
	// right or bottom edge.
	FlushEdges bool `json:"flush_edges"`
}

// DefaultOptions returns exact matching with every pixel sampled and no
// match limit.
func DefaultOptions() Options {
	return Options{
		Tolerance:        Uniform(0),
		PatternThreshold: 0,
		MaxMatches:       0,
	}
}

// Validate checks the ranges Find relies on.
func (o Options) Validate() error {
	if o.PatternThreshold < 0 || o.PatternThreshold > MaxPatternThreshold {
		return fmt.Errorf("pattern threshold %d outside range 0-%d", o.PatternThreshold, MaxPatternThreshold)
	}
	if o.MaxMatches < 0 {
		return fmt.Errorf("max matches must be >= 0, got %d", o.MaxMatches)
	}
	return nil
}

// Result is the outcome of a Find call.
type Result struct {
	// Matches holds top-left corners in scan order (Y, then X).
	Matches []Point `json:"matches"`

	// Count is len(Matches).
	Count int `json:"count"`

	// PatternSamples is how many needle pixels were kept in the pattern.
	PatternSamples int `json:"pattern_samples"`

	// Windows is the number of candidate windows in the haystack.
	Windows int `json:"windows"`

	// LimitReached is set when MaxMatches was hit and the scan stopped early.
	LimitReached bool `json:"limit_reached"`
}

// Find locates small inside big.
//
// Parameters:
//   - big: The haystack.
//   - small: The needle. Only read while the pattern is built.
//   - opts: Tolerance, threshold and limits. See Options.
//
// Returns:
//   - *Result: Matches in scan order plus pattern and window counts.
//   - error: A validation error, or ErrPatternTooLarge (wrapped) when the
//     needle exceeds MaxPatternPixels. A needle larger than the haystack
//     is not an error; it yields no matches.
func Find(big, small PixelGrid, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	p, err := BuildPattern(small, opts.PatternThreshold)
	if err != nil {
		return nil, err
	}

	var matches []Point
	if opts.Parallel {
		matches = ScanParallel(big, p, opts.Tolerance, opts.MaxMatches, opts.FlushEdges)
	} else {
		matches = Scan(big, p, opts.Tolerance, opts.MaxMatches, opts.FlushEdges)
	}

	maxX, maxY := CandidateBounds(big.Width(), big.Height(), p.Width, p.Height, opts.FlushEdges)
	return &Result{
		Matches:        matches,
		Count:          len(matches),
		PatternSamples: p.Len(),
		Windows:        maxX * maxY,
		LimitReached:   opts.MaxMatches > 0 && len(matches) == opts.MaxMatches,
	}, nil
}
