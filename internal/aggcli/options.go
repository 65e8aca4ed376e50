// internal/aggcli/options.go
package aggcli

import (
	"flag"
	"fmt"
	"io"

	"tpsrank/internal/clibase"
	"tpsrank/internal/cliutil"
)

// Options holds all CLI flags and positionals for the aggregate stage.
type Options struct {
	clibase.Common

	// Positional partition tables (files, globs, or a directory).
	Paths []string
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "merge per-partition distance tables into one", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "\nUsage:")
		_, _ = fmt.Fprintf(out, "  %s [options] distances_*.tsv\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] runs/\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  Positional arguments name the partition tables. Globs and bare")
		_, _ = fmt.Fprintln(out, "  directories are expanded; indices come from the distances_<k>.tsv")
		_, _ = fmt.Fprintln(out, "  file names and must cover 0..K-1 with no gaps.")
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for the aggregate stage.
func PrintExamples(out io.Writer) {
	clibase.PrintQuickstart(out, clibase.Quickstart{
		Tool:  "tpsrank-aggregate",
		Blurb: "Join partition outputs back into a single distance table.",
		Uses: []clibase.Example{{
			Command: []string{"tpsrank-aggregate runs/ > distances.tsv"},
		}},
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common)
	fs.BoolVar(&help, "h", false, "show this help [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if o.Examples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	if err := clibase.Validate(&o.Common); err != nil {
		return o, err
	}

	paths, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return o, err
	}
	if len(paths) == 0 {
		return o, fmt.Errorf("at least one partition table is required")
	}
	o.Paths = paths
	return o, nil
}
