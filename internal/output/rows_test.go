package output

import (
	"strings"
	"testing"

	"tpsrank-core/candidate"
	"tpsrank-core/classify"
	"tpsrank-core/pfam"
	"tpsrank-core/score"
)

func TestFormatScoredRow(t *testing.T) {
	s := score.Scored{
		Record: candidate.Record{
			ID:          "TPS_17",
			Distance:    1.25,
			ClosestID:   "ref_1",
			Type:        classify.Di,
			Arch:        pfam.Architecture{"PF01397", "PF03936"},
			HasArch:     true,
			Length:      700,
			StartsWithM: true,
		},
		LengthScore: 1,
		Total:       4.5,
	}
	got := FormatScoredRow(s)
	want := "TPS_17\t700\t1.25\tdi\t['PF01397', 'PF03936']\ttrue\t1\t4.5"
	if got != want {
		t.Fatalf("row mismatch:\n got:  %q\n want: %q", got, want)
	}
}

// Candidates without a resolved architecture keep the NA placeholder.
func TestFormatScoredRowNoArch(t *testing.T) {
	s := score.Scored{
		Record: candidate.Record{ID: "u", Type: classify.Unknown},
	}
	got := FormatScoredRow(s)
	if !strings.Contains(got, "\tNA\t") {
		t.Fatalf("expected NA architecture column, got %q", got)
	}
	if !strings.Contains(got, "\tfalse\t") {
		t.Fatalf("expected false Starts-with-M column, got %q", got)
	}
}
