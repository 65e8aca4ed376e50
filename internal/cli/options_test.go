// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"testing"

	"tpsrank/internal/clibase"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestMinimalOK(t *testing.T) {
	o := mustParse(t,
		"--tree", "t.nwk",
		"--characterized", "refs.txt",
	)
	if o.Tree != "t.nwk" || o.Characterized != "refs.txt" {
		t.Errorf("bad parse %+v", o)
	}
	if o.PartitionSize != 50 || o.Output != "text" || !o.Header {
		t.Errorf("defaults wrong %+v", o)
	}
}

func TestFullOK(t *testing.T) {
	o := mustParse(t,
		"--tree", "t.nwk",
		"--characterized", "refs.txt",
		"--classification", "types.tsv",
		"--architecture", "pfam.tsv",
		"--proteins", "tps.faa",
		"--partition-size", "10",
		"--threads", "4",
		"--output", "jsonl",
		"--top", "20",
		"--no-header",
	)
	if o.Classification != "types.tsv" || o.Proteins != "tps.faa" || o.PartitionSize != 10 {
		t.Errorf("bad parse %+v", o)
	}
	if o.Header {
		t.Error("--no-header should clear Header")
	}
	if o.Output != "jsonl" || o.Top != 20 {
		t.Errorf("output options wrong %+v", o)
	}
}

func TestErrorMissingTree(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--characterized", "refs.txt"})
	if err == nil {
		t.Fatalf("expected error when tree missing")
	}
}

func TestErrorMissingCharacterized(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--tree", "t.nwk"})
	if err == nil {
		t.Fatalf("expected error when characterized list missing")
	}
}

func TestErrorBadOutput(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--tree", "t.nwk", "--characterized", "refs.txt", "--output", "csv",
	})
	if err == nil {
		t.Fatalf("expected error for unknown output format")
	}
}

func TestErrorQuietVerboseConflict(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--tree", "t.nwk", "--characterized", "refs.txt", "--quiet", "--verbose",
	})
	if err == nil {
		t.Fatalf("expected conflict error")
	}
}

func TestExamplesSentinel(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--examples"})
	if !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("want examples sentinel, got %v", err)
	}
}

func TestVersionSkipsValidation(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("--version should parse without required flags: %v %+v", err, o)
	}
}
