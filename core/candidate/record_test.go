// core/candidate/record_test.go
package candidate

import (
	"strings"
	"testing"

	"tpsrank-core/classify"
	"tpsrank-core/pfam"
)

func TestCandidateHeaderSnapshot(t *testing.T) {
	const want = "id\tdistance\tclosest characterized tps\ttype\tarchitecture"
	if TableHeader != want {
		t.Fatalf("TableHeader = %q, want %q", TableHeader, want)
	}
}

// NA marks an absent architecture; [] is a present, empty one.
func TestFormatRowPlaceholders(t *testing.T) {
	r := Record{ID: "U2", Distance: 3, ClosestID: "C2", Type: classify.Unknown}
	if got := FormatRow(r); got != "U2\t3\tC2\tunknown\tNA" {
		t.Fatalf("FormatRow = %q", got)
	}
	r.Arch, r.HasArch = pfam.Architecture{}, true
	if got := FormatRow(r); got != "U2\t3\tC2\tunknown\t[]" {
		t.Fatalf("FormatRow = %q", got)
	}
}

func TestTableRoundTrip(t *testing.T) {
	a, _ := pfam.ParseList("['PF01397', 'partial_PF03936']")
	in := []Record{
		{ID: "U1", Distance: 0.25, ClosestID: "C1", Type: classify.Di, Arch: a, HasArch: true},
		{ID: "U2", Distance: 3, ClosestID: "C2", Type: classify.Unknown},
	}
	var b strings.Builder
	b.WriteString(TableHeader + "\n")
	for _, r := range in {
		b.WriteString(FormatRow(r) + "\n")
	}
	out, err := ReadTable(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("rows = %d", len(out))
	}
	if out[0].Type != classify.Di || !out[0].HasArch || out[0].Arch.Key() != "PF01397|partial_PF03936" {
		t.Fatalf("row 0 = %+v", out[0])
	}
	if out[1].HasArch || out[1].Distance != 3 {
		t.Fatalf("row 1 = %+v", out[1])
	}
}

func TestReadTableErrors(t *testing.T) {
	bad := []string{
		"",
		"bad header\n",
		TableHeader + "\nU1\t1\tC1\tdi\n",
		TableHeader + "\nU1\tx\tC1\tdi\tNA\n",
		TableHeader + "\nU1\t1\tC1\tditerpene\tNA\n",
		TableHeader + "\nU1\t1\tC1\tdi\tnot-a-list\n",
	}
	for _, in := range bad {
		if _, err := ReadTable(strings.NewReader(in)); err == nil {
			t.Errorf("ReadTable(%q): expected error", in)
		}
	}
}
