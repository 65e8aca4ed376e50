// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"tpsrank/internal/clibase"
	"tpsrank/internal/output"
)

// Options holds all CLI flags for the end-to-end pipeline.
type Options struct {
	clibase.Common

	// Input
	Tree           string
	Characterized  string
	Classification string
	Architecture   string
	Proteins       string

	// Partitioning / performance
	PartitionSize int
	Threads       int
	Progress      bool

	// Output
	Output        string
	Pretty        bool
	Header        bool // true unless --no-header
	Top           int
	DistancesOut  string
	CandidatesOut string
	Manifest      string
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "rank uncharacterized terpene synthases for characterization", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "\nUsage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --tree tps.nwk --characterized refs.txt\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "      --tree string            Newick tree file ('-' = stdin, .gz ok) [*]")
		_, _ = fmt.Fprintln(out, "      --characterized string   Characterized IDs, one per line [*]")
		_, _ = fmt.Fprintln(out, "      --classification string  hmmsearch-style type table (optional)")
		_, _ = fmt.Fprintln(out, "      --architecture string    Pfam architecture table (optional)")
		_, _ = fmt.Fprintln(out, "      --proteins string        Protein FASTA for length / start-M traits (optional)")

		_, _ = fmt.Fprintln(out, "\nPerformance:")
		_, _ = fmt.Fprintf(out, "      --partition-size int     Uncharacterized IDs per partition [%s]\n", def("partition-size"))
		_, _ = fmt.Fprintf(out, "      --threads int            Concurrent partition workers (0 = all CPUs) [%s]\n", def("threads"))
		_, _ = fmt.Fprintf(out, "      --progress               Progress bar on stderr [%s]\n", def("progress"))

		_, _ = fmt.Fprintln(out, "\nOutput:")
		_, _ = fmt.Fprintf(out, "      --output string          Output format: text | json | jsonl [%s]\n", def("output"))
		_, _ = fmt.Fprintf(out, "      --pretty                 Sub-score block under each text row [%s]\n", def("pretty"))
		_, _ = fmt.Fprintf(out, "      --no-header              Suppress header line in text/TSV [%s]\n", def("no-header"))
		_, _ = fmt.Fprintf(out, "      --top int                Keep only the N best candidates (0 = all) [%s]\n", def("top"))
		_, _ = fmt.Fprintln(out, "      --distances-out string   Also write the aggregated distance table here")
		_, _ = fmt.Fprintln(out, "      --candidates-out string  Also write the combined candidate table here")
		_, _ = fmt.Fprintln(out, "      --manifest string        Write a JSON run manifest to this path")
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for the pipeline.
func PrintExamples(out io.Writer) {
	clibase.PrintQuickstart(out, clibase.Quickstart{
		Tool:  "tpsrank",
		Blurb: "One command from tree to ranked candidates.",
		Uses: []clibase.Example{{
			Command: []string{
				"tpsrank",
				"--tree tps.nwk",
				"--characterized refs.txt",
				"--classification types.tsv",
				"--architecture pfam.tsv",
				"--proteins tps.faa",
				"--top 20",
			},
		}},
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common)

	fs.StringVar(&o.Tree, "tree", "", "newick tree file [*]")
	fs.StringVar(&o.Characterized, "characterized", "", "characterized ID list [*]")
	fs.StringVar(&o.Classification, "classification", "", "type classification table (optional)")
	fs.StringVar(&o.Architecture, "architecture", "", "domain architecture table (optional)")
	fs.StringVar(&o.Proteins, "proteins", "", "protein FASTA (optional)")

	fs.IntVar(&o.PartitionSize, "partition-size", 50, "uncharacterized IDs per partition [50]")
	fs.IntVar(&o.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.BoolVar(&o.Progress, "progress", false, "progress bar on stderr [false]")

	fs.StringVar(&o.Output, "output", output.FormatText, "output format: text | json | jsonl [text]")
	fs.BoolVar(&o.Pretty, "pretty", false, "sub-score block under each text row [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.IntVar(&o.Top, "top", 0, "keep only the N best candidates (0 = all) [0]")
	fs.StringVar(&o.DistancesOut, "distances-out", "", "also write the aggregated distance table here")
	fs.StringVar(&o.CandidatesOut, "candidates-out", "", "also write the combined candidate table here")
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

	if o.Tree == "" {
		return o, fmt.Errorf("--tree is required")
	}
	if o.Characterized == "" {
		return o, fmt.Errorf("--characterized is required")
	}
	if o.Threads < 0 {
		return o, fmt.Errorf("--threads must be ≥ 0")
	}
	if o.Output != output.FormatText && o.Output != output.FormatJSON && o.Output != output.FormatJSONL {
		return o, fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Top < 0 {
		return o, fmt.Errorf("--top must be ≥ 0")
	}
	return o, nil
}
