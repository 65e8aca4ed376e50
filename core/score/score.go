// core/score/score.go
package score

import (
	"sort"

	"tpsrank-core/candidate"
	"tpsrank-core/classify"
)

// Scored is a candidate plus its sub-scores. Immutable once computed; the
// only artifact the pipeline ever sorts.
type Scored struct {
	candidate.Record
	ArchScore     float64
	TypeScore     float64
	DistScore     float64 // normalized to [0,1]; enters Total with weight 2
	CompleteScore float64
	LengthScore   float64
	Total         float64
}

// TypeScore returns 1 for the two classes of interest (di, sesq), else 0.
func TypeScore(t classify.Type) float64 {
	if t == classify.Di || t == classify.Sesq {
		return 1
	}
	return 0
}

// CompletenessScore returns 1 when the sequence starts with methionine.
func CompletenessScore(startsWithM bool) float64 {
	if startsWithM {
		return 1
	}
	return 0
}

// NormalizeDistances maps each distance to (d-min)/(max-min) over the whole
// slice. A zero-range column (all distances equal, including a single
// candidate) normalizes to 0 everywhere; zeroRange reports that so callers
// can log it once.
func NormalizeDistances(dists []float64) (norm []float64, zeroRange bool) {
	if len(dists) == 0 {
		return nil, false
	}
	min, max := dists[0], dists[0]
	for _, d := range dists[1:] {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	norm = make([]float64, len(dists))
	if max == min {
		return norm, true
	}
	span := max - min
	for i, d := range dists {
		norm[i] = (d - min) / span
	}
	return norm, false
}

// Rank scores every candidate and returns them ordered by descending total
// score. Candidates with equal totals keep their input order.
func Rank(cands []candidate.Record) (ranked []Scored, zeroRange bool) {
	if len(cands) == 0 {
		return nil, false
	}
	dists := make([]float64, len(cands))
	for i, c := range cands {
		dists[i] = c.Distance
	}
	norm, zeroRange := NormalizeDistances(dists)

	ranked = make([]Scored, len(cands))
	for i, c := range cands {
		s := Scored{
			Record:        c,
			ArchScore:     ArchScore(c.Type, c.Arch, c.HasArch),
			TypeScore:     TypeScore(c.Type),
			DistScore:     norm[i],
			CompleteScore: CompletenessScore(c.StartsWithM),
			LengthScore:   LengthScore(c.Type, c.Length),
		}
		s.Total = s.ArchScore + s.TypeScore + 2*s.DistScore + s.CompleteScore + s.LengthScore
		ranked[i] = s
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Total > ranked[j].Total })
	return ranked, zeroRange
}
