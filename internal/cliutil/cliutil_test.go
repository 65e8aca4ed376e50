package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	fs.BoolVar(&b, "bool", false, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--bool", "pos1", "--", "pos2"})
	if len(flagArgs) != 1 || len(posArgs) != 2 || posArgs[0] != "pos1" || posArgs[1] != "pos2" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}

func TestExpandPositionalsGlob(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "distances_0.tsv")
	b := filepath.Join(dir, "distances_1.tsv")
	_ = os.WriteFile(a, []byte("x\n"), 0o644)
	_ = os.WriteFile(b, []byte("x\n"), 0o644)
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.tsv")})
	if err != nil || len(got) != 2 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
	if got[0] != a || got[1] != b {
		t.Fatalf("expected sorted paths, got %v", got)
	}
}

// A bare directory positional expands to its *.tsv entries in sorted order.
func TestExpandPositionalsDirectory(t *testing.T) {
	dir := t.TempDir()
	b := filepath.Join(dir, "distances_1.tsv")
	a := filepath.Join(dir, "distances_0.tsv")
	_ = os.WriteFile(b, []byte("x\n"), 0o644)
	_ = os.WriteFile(a, []byte("x\n"), 0o644)
	_ = os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x\n"), 0o644)
	got, err := ExpandPositionals([]string{dir})
	if err != nil {
		t.Fatalf("expand dir: %v", err)
	}
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("expected [%s %s], got %v", a, b, got)
	}
}

func TestExpandPositionalsEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	if _, err := ExpandPositionals([]string{dir}); err == nil {
		t.Fatal("expected error for directory without *.tsv files")
	}
}

func TestExpandPositionalsNoMatch(t *testing.T) {
	dir := t.TempDir()
	if _, err := ExpandPositionals([]string{filepath.Join(dir, "*.tsv")}); err == nil {
		t.Fatal("expected error for glob with no matches")
	}
}
