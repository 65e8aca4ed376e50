// core/score/length.go
package score

import "tpsrank-core/classify"

// lengthRule is one piecewise branch over residue counts. Bounds are
// inclusive unless the matching *Open flag is set.
type lengthRule struct {
	lo, hi         int
	loOpen, hiOpen bool
	score          float64
}

func (r lengthRule) match(n int) bool {
	if r.loOpen {
		if n <= r.lo {
			return false
		}
	} else if n < r.lo {
		return false
	}
	if r.hiOpen {
		if n >= r.hi {
			return false
		}
	} else if n > r.hi {
		return false
	}
	return true
}

// Rules are evaluated top to bottom; the first match wins, which is how the
// boundary overlaps (700 in the sesq table, for one) resolve.
var sesqLengthRules = []lengthRule{
	{lo: 500, hi: 700, score: 1.0},
	{lo: 700, hi: 900, score: 0.2},
	{lo: 250, hi: 500, hiOpen: true, score: 0.6},
	{lo: 200, hi: 250, loOpen: true, hiOpen: true, score: 0.1},
}

var diLengthRules = []lengthRule{
	{lo: 650, hi: 900, score: 1.0},
	{lo: 450, hi: 700, hiOpen: true, score: 0.75},
	{lo: 900, hi: 1200, loOpen: true, score: 0.5},
	{lo: 200, hi: 450, loOpen: true, hiOpen: true, score: 0.1},
}

var otherLengthRules = []lengthRule{
	{lo: 500, hi: 700, score: 0.7},
	{lo: 700, hi: 900, score: 0.2},
	{lo: 250, hi: 500, hiOpen: true, score: 0.5},
	{lo: 650, hi: 900, score: 0.7}, // shadowed by rows 1-2, kept as written
	{lo: 450, hi: 700, hiOpen: true, score: 0.6},
	{lo: 900, hi: 1200, loOpen: true, score: 0.4},
	{lo: 200, hi: 450, loOpen: true, hiOpen: true, score: 0.1},
}

// LengthScore returns the length preference for a candidate of the given
// predicted type. Lengths outside every branch (missing sequences included,
// which arrive as 0) score 0.
func LengthScore(t classify.Type, length int) float64 {
	var rules []lengthRule
	switch t {
	case classify.Sesq:
		rules = sesqLengthRules
	case classify.Di:
		rules = diLengthRules
	default:
		rules = otherLengthRules
	}
	for _, r := range rules {
		if r.match(length) {
			return r.score
		}
	}
	return 0
}
