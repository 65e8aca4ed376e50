// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"tpsrank-core/candidate"
	"tpsrank-core/neighbor"
	"tpsrank/internal/app"
	"tpsrank/internal/manifest"
	"tpsrank/internal/output"
)

// Six-leaf tree: U1..U4 uncharacterized, C1/C2 characterized.
// Nearest distances: U1->C1 3, U2->C2 3, U3->C2 1, U4->C1 6.
const (
	itestTree  = "((C1:1.0,U1:2.0):1.0,(U2:1.5,(C2:0.5,U3:0.5):1.0):2.0,U4:4.0);\n"
	itestChars = "C1\nC2\n"
	itestClass = "U1\t-\tdi_clustalw\t1e-50\nU3\t-\tsesq_clustalw\t1e-40\n"
	itestArch  = "U1\t['PF01397', 'PF03936']\nU3\t['PF03936']\n"
)

func write(t *testing.T, dir, fn, data string) string {
	t.Helper()
	path := filepath.Join(dir, fn)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return path
}

// itestProteins builds a FASTA where U1 is a 700 aa Met-start sequence,
// U2 600 aa without Met, U3 550 aa Met-start. U4 has no record.
func itestProteins() string {
	return ">U1\nM" + strings.Repeat("A", 699) + "\n" +
		">U2\nG" + strings.Repeat("A", 599) + "\n" +
		">U3\nM" + strings.Repeat("A", 549) + "\n"
}

func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	tree := write(t, dir, "itest.nwk", itestTree)
	chars := write(t, dir, "itest_chars.txt", itestChars)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--tree", tree,
		"--characterized", chars,
	}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	// No annotations: only the distance sub-score separates candidates.
	want := output.ScoredTSVHeader + "\n" +
		"U4\t0\t6\tunknown\tNA\tfalse\t0\t2\n" +
		"U1\t0\t3\tunknown\tNA\tfalse\t0\t0.8\n" +
		"U2\t0\t3\tunknown\tNA\tfalse\t0\t0.8\n" +
		"U3\t0\t1\tunknown\tNA\tfalse\t0\t0\n"
	if out.String() != want {
		t.Fatalf("output mismatch\nwant:\n%s\ngot:\n%s", want, out.String())
	}
}

func TestFullPipelineRanksAnnotated(t *testing.T) {
	dir := t.TempDir()
	tree := write(t, dir, "full.nwk", itestTree)
	chars := write(t, dir, "full_chars.txt", itestChars)
	cls := write(t, dir, "full_class.tsv", itestClass)
	arch := write(t, dir, "full_arch.tsv", itestArch)
	prot := write(t, dir, "full.faa", itestProteins())

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--tree", tree,
		"--characterized", chars,
		"--classification", cls,
		"--architecture", arch,
		"--proteins", prot,
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header + 4 rows, got %d lines:\n%s", len(lines), out.String())
	}
	if lines[0] != output.ScoredTSVHeader {
		t.Fatalf("header = %q", lines[0])
	}

	wantTotals := map[string]float64{"U1": 4.8, "U3": 3.5, "U4": 2.0, "U2": 1.5}
	wantOrder := []string{"U1", "U3", "U4", "U2"}
	for i, row := range lines[1:] {
		f := strings.Split(row, "\t")
		if len(f) != 8 {
			t.Fatalf("row %d: %d columns: %q", i, len(f), row)
		}
		if f[0] != wantOrder[i] {
			t.Fatalf("rank %d = %s, want %s", i, f[0], wantOrder[i])
		}
		total, err := strconv.ParseFloat(f[7], 64)
		if err != nil {
			t.Fatalf("row %d total %q: %v", i, f[7], err)
		}
		if math.Abs(total-wantTotals[f[0]]) > 1e-9 {
			t.Fatalf("%s total = %v, want %v", f[0], total, wantTotals[f[0]])
		}
	}

	// Field-level check on the winner.
	top := strings.Split(lines[1], "\t")
	if top[1] != "700" || top[2] != "3" || top[3] != "di" ||
		top[4] != "['PF01397', 'PF03936']" || top[5] != "true" || top[6] != "1" {
		t.Fatalf("unexpected top row fields: %q", lines[1])
	}
}

func TestParallelMatchesEqualSerial(t *testing.T) {
	dir := t.TempDir()
	tree := write(t, dir, "par.nwk", itestTree)
	chars := write(t, dir, "par_chars.txt", itestChars)

	run := func(threads int) string {
		var out, errB bytes.Buffer
		code := app.Run([]string{
			"--tree", tree,
			"--characterized", chars,
			"--partition-size", "1",
			"--threads", fmt.Sprint(threads),
			"--output", "jsonl",
		}, &out, &errB)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		return out.String()
	}

	serial := run(1)
	parallel := run(4)

	if serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel:%s", serial, parallel)
	}
}

func TestIntermediateTablesAndManifest(t *testing.T) {
	dir := t.TempDir()
	tree := write(t, dir, "mid.nwk", itestTree)
	chars := write(t, dir, "mid_chars.txt", itestChars)
	distOut := filepath.Join(dir, "distances.tsv")
	candOut := filepath.Join(dir, "candidates.tsv")
	manOut := filepath.Join(dir, "run.json")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--tree", tree,
		"--characterized", chars,
		"--distances-out", distOut,
		"--candidates-out", candOut,
		"--manifest", manOut,
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}

	dists, err := neighbor.LoadTable(distOut)
	if err != nil {
		t.Fatalf("load distances: %v", err)
	}
	if len(dists) != 4 || dists[0].ID != "U1" || dists[0].ClosestID != "C1" {
		t.Fatalf("unexpected distance table: %+v", dists)
	}

	cands, err := candidate.LoadTable(candOut)
	if err != nil {
		t.Fatalf("load candidates: %v", err)
	}
	if len(cands) != 4 || cands[3].Distance != 6 {
		t.Fatalf("unexpected candidate table: %+v", cands)
	}

	raw, err := os.ReadFile(manOut)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var man manifest.Manifest
	if err := json.Unmarshal(raw, &man); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if man.RunID == "" || man.Tool != "tpsrank" {
		t.Fatalf("manifest identity: %+v", man)
	}
	if man.Counts.Candidates != 4 || man.Counts.Characterized != 2 {
		t.Fatalf("manifest counts: %+v", man.Counts)
	}
	if man.Top == nil || man.Top.ID != "U4" {
		t.Fatalf("manifest top candidate: %+v", man.Top)
	}
}

func TestTopTruncates(t *testing.T) {
	dir := t.TempDir()
	tree := write(t, dir, "top.nwk", itestTree)
	chars := write(t, dir, "top_chars.txt", itestChars)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"--tree", tree,
		"--characterized", chars,
		"--top", "2",
		"--no-header",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "U4\t") {
		t.Fatalf("best candidate = %q", lines[0])
	}
}

func TestBadTreeExitsOne(t *testing.T) {
	dir := t.TempDir()
	tree := write(t, dir, "bad.nwk", "((A:1.0;\n")
	chars := write(t, dir, "bad_chars.txt", itestChars)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--tree", tree, "--characterized", chars}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("expected exit 1 for malformed tree, got %d", code)
	}
	if errBuf.Len() == 0 {
		t.Fatalf("expected diagnostics on stderr")
	}
}

func TestMissingRequiredFlagExitsTwo(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--characterized", "refs.txt"}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("expected exit 2 for usage error, got %d", code)
	}
	if !strings.Contains(errBuf.String(), "--tree") {
		t.Fatalf("stderr should name the missing flag: %q", errBuf.String())
	}
}
