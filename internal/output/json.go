// internal/output/json.go
package output

import (
	"io"

	"tpsrank-core/score"
	"tpsrank/internal/jsonutil"
	"tpsrank/pkg/api"
)

// ToAPIScored converts a domain scored candidate to the stable wire schema (v1).
func ToAPIScored(s score.Scored) api.ScoredCandidateV1 {
	v := api.ScoredCandidateV1{
		ID:            s.ID,
		Distance:      s.Distance,
		ClosestID:     s.ClosestID,
		Type:          string(s.Type),
		HasArch:       s.HasArch,
		Length:        s.Length,
		StartsWithM:   s.StartsWithM,
		ArchScore:     s.ArchScore,
		TypeScore:     s.TypeScore,
		DistScore:     s.DistScore,
		CompleteScore: s.CompleteScore,
		LengthScore:   s.LengthScore,
		TotalScore:    s.Total,
	}
	if s.HasArch {
		v.Architecture = append([]string(nil), s.Arch...)
	}
	return v
}

func toAPIScoredList(list []score.Scored) []api.ScoredCandidateV1 {
	out := make([]api.ScoredCandidateV1, 0, len(list))
	for _, s := range list {
		out = append(out, ToAPIScored(s))
	}
	return out
}

// WriteScoredJSON writes a single JSON array of v1 scored candidates (pretty-indented).
func WriteScoredJSON(w io.Writer, list []score.Scored) error {
	return jsonutil.EncodePretty(w, toAPIScoredList(list))
}
