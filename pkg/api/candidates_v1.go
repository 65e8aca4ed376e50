// pkg/api/candidates_v1.go
package api

// ScoredCandidateV1 is the stable JSON/JSONL schema for ranked candidates.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ScoredCandidateV1 struct {
	ID           string   `json:"id"`
	Distance     float64  `json:"distance"`
	ClosestID    string   `json:"closest_characterized_id"`
	Type         string   `json:"type"`
	Architecture []string `json:"architecture,omitempty"`
	HasArch      bool     `json:"has_architecture"`
	Length       int      `json:"length"`
	StartsWithM  bool     `json:"starts_with_m"`

	ArchScore     float64 `json:"architecture_score"`
	TypeScore     float64 `json:"type_score"`
	DistScore     float64 `json:"distance_score"`
	CompleteScore float64 `json:"completeness_score"`
	LengthScore   float64 `json:"length_score"`
	TotalScore    float64 `json:"total_score"`
}
