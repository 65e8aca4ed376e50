// core/candidate/combine.go
package candidate

import (
	"tpsrank-core/classify"
	"tpsrank-core/neighbor"
	"tpsrank-core/pfam"
)

// SkipStats lists source IDs that fell outside the candidate universe.
// Callers log them; they are never an error.
type SkipStats struct {
	Classification []string
	Architecture   []string
}

// Combine builds one Record per distance-table row, in table order, joining
// the predicted type and domain architecture where rows exist. The distance
// table alone defines the candidate universe: classification or architecture
// IDs not present in it are reported in SkipStats and otherwise ignored.
// Either table may be nil, leaving the corresponding fields at defaults.
func Combine(dists []neighbor.DistanceRecord, cls *classify.Table, archs *pfam.Table) ([]Record, SkipStats) {
	universe := make(map[string]struct{}, len(dists))
	recs := make([]Record, 0, len(dists))
	for _, d := range dists {
		universe[d.ID] = struct{}{}
		r := Record{
			ID:        d.ID,
			Distance:  d.Distance,
			ClosestID: d.ClosestID,
			Type:      classify.Unknown,
		}
		if cls != nil {
			if ty, ok := cls.Type(d.ID); ok {
				r.Type = ty
			}
		}
		if archs != nil {
			if a, ok := archs.Architecture(d.ID); ok {
				r.Arch, r.HasArch = a, true
			}
		}
		recs = append(recs, r)
	}

	var stats SkipStats
	if cls != nil {
		for _, id := range cls.IDs() {
			if _, ok := universe[id]; !ok {
				stats.Classification = append(stats.Classification, id)
			}
		}
	}
	if archs != nil {
		for _, id := range archs.IDs() {
			if _, ok := universe[id]; !ok {
				stats.Architecture = append(stats.Architecture, id)
			}
		}
	}
	return recs, stats
}
