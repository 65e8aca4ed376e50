// core/score/arch.go
package score

import (
	"tpsrank-core/classify"
	"tpsrank-core/pfam"
)

// Architecture preferences are exact ordered lookups keyed by
// pfam.Architecture.Key(); token order and partial_ prefixes distinguish
// entries. Architectures absent from a table score 0.
//
// For the two classes of interest the full-length two-domain layout is the
// most common characterized architecture (1.0), with observed truncated
// variants at 0.5. Everything else tops out at 0.5/0.25.
var (
	diArchScores = map[string]float64{
		"PF01397|PF03936":         1.0,
		"partial_PF01397|PF03936": 0.5,
		"PF01397|partial_PF03936": 0.5,
		"PF03936":                 0.5,
	}
	sesqArchScores = map[string]float64{
		"PF01397|PF03936":         1.0,
		"PF03936":                 0.5,
		"partial_PF01397|PF03936": 0.5,
	}
	otherArchScores = map[string]float64{
		"PF01397|PF03936":         0.5,
		"PF13249|PF13243":         0.5,
		"PF03936":                 0.25,
		"partial_PF01397|PF03936": 0.25,
		"PF01397|partial_PF03936": 0.25,
	}
)

// ArchScore returns the architecture preference for a candidate of the
// given predicted type. Candidates without a parsed architecture score 0.
func ArchScore(t classify.Type, arch pfam.Architecture, has bool) float64 {
	if !has {
		return 0
	}
	key := arch.Key()
	switch t {
	case classify.Di:
		return diArchScores[key]
	case classify.Sesq:
		return sesqArchScores[key]
	}
	return otherArchScores[key]
}
