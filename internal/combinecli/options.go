// internal/combinecli/options.go
package combinecli

import (
	"flag"
	"fmt"
	"io"

	"tpsrank/internal/clibase"
)

// Options holds all CLI flags for the combine stage.
type Options struct {
	clibase.Common

	Distances      string
	Classification string
	Architecture   string
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "join distances with classification and domain architecture", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "\nUsage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --distances distances.tsv\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "      --distances string       Aggregated distance table [*]")
		_, _ = fmt.Fprintln(out, "      --classification string  hmmsearch-style type table (optional)")
		_, _ = fmt.Fprintln(out, "      --architecture string    Pfam architecture table (optional)")
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for the combine stage.
func PrintExamples(out io.Writer) {
	clibase.PrintQuickstart(out, clibase.Quickstart{
		Tool:  "tpsrank-combine",
		Blurb: "Attach type and architecture annotations to each distance record.",
		Uses: []clibase.Example{{
			Command: []string{
				"tpsrank-combine --distances distances.tsv",
				"--classification types.tsv --architecture pfam.tsv > candidates.tsv",
			},
		}},
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common)

	fs.StringVar(&o.Distances, "distances", "", "aggregated distance table [*]")
	fs.StringVar(&o.Classification, "classification", "", "type classification table (optional)")
	fs.StringVar(&o.Architecture, "architecture", "", "domain architecture table (optional)")
	fs.BoolVar(&help, "h", false, "show this help [false]")

	if err := fs.Parse(argv); err != nil {
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

	if o.Distances == "" {
		return o, fmt.Errorf("--distances is required")
	}
	return o, nil
}
