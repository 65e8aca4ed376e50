// internal/scorecli/options.go
package scorecli

import (
	"flag"
	"fmt"
	"io"

	"tpsrank/internal/clibase"
	"tpsrank/internal/output"
)

// Options holds all CLI flags for the scoring stage.
type Options struct {
	clibase.Common

	// Input
	Candidates string
	Proteins   string

	// Output
	Output   string
	Pretty   bool
	Header   bool // true unless --no-header
	Top      int
	Manifest string
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "rank candidate terpene synthases by multi-factor score", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "\nUsage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --candidates candidates.tsv --proteins tps.faa\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "      --candidates string     Combined candidate table [*]")
		_, _ = fmt.Fprintln(out, "      --proteins string       Protein FASTA for length / start-M traits (optional)")

		_, _ = fmt.Fprintln(out, "\nOutput:")
		_, _ = fmt.Fprintf(out, "      --output string         Output format: text | json | jsonl [%s]\n", def("output"))
		_, _ = fmt.Fprintf(out, "      --pretty                Sub-score block under each text row [%s]\n", def("pretty"))
		_, _ = fmt.Fprintf(out, "      --no-header             Suppress header line in text/TSV [%s]\n", def("no-header"))
		_, _ = fmt.Fprintf(out, "      --top int               Keep only the N best candidates (0 = all) [%s]\n", def("top"))
		_, _ = fmt.Fprintln(out, "      --manifest string       Write a JSON run manifest to this path")
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for the scoring stage.
func PrintExamples(out io.Writer) {
	clibase.PrintQuickstart(out, clibase.Quickstart{
		Tool:  "tpsrank-score",
		Blurb: "Rank combined candidates; closest, best-annotated sequences first.",
		Uses: []clibase.Example{{
			Command: []string{
				"tpsrank-score --candidates candidates.tsv",
				"--proteins tps.faa --top 20",
			},
		}},
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common)

	fs.StringVar(&o.Candidates, "candidates", "", "combined candidate table [*]")
	fs.StringVar(&o.Proteins, "proteins", "", "protein FASTA (optional)")
	fs.StringVar(&o.Output, "output", output.FormatText, "output format: text | json | jsonl [text]")
	fs.BoolVar(&o.Pretty, "pretty", false, "sub-score block under each text row [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.IntVar(&o.Top, "top", 0, "keep only the N best candidates (0 = all) [0]")
	fs.StringVar(&o.Manifest, "manifest", "", "write a JSON run manifest to this path")
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
	o.Header = !noHeader

	if o.Candidates == "" {
		return o, fmt.Errorf("--candidates is required")
	}
	if o.Output != output.FormatText && o.Output != output.FormatJSON && o.Output != output.FormatJSONL {
		return o, fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Top < 0 {
		return o, fmt.Errorf("--top must be ≥ 0")
	}
	return o, nil
}
