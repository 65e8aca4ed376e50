// internal/distcli/options.go
package distcli

import (
	"flag"
	"fmt"
	"io"

	"tpsrank/internal/clibase"
)

// Options holds all CLI flags for the distance stage.
type Options struct {
	clibase.Common

	// Input
	Tree          string
	Characterized string

	// Partitioning
	Partition     int // -1 = all partitions
	PartitionSize int

	// Performance
	Threads  int
	Progress bool

	// Output
	OutDir string
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "nearest-characterized-neighbor distances from a phylogenetic tree", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "\nUsage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --tree tree.nwk --characterized refs.txt\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "      --tree string           Newick tree file ('-' = stdin, .gz ok) [*]")
		_, _ = fmt.Fprintln(out, "      --characterized string  Characterized IDs, one per line [*]")

		_, _ = fmt.Fprintln(out, "\nPartitioning:")
		_, _ = fmt.Fprintf(out, "      --partition int         Compute only partition K (-1 = all) [%s]\n", def("partition"))
		_, _ = fmt.Fprintf(out, "      --partition-size int    Uncharacterized IDs per partition [%s]\n", def("partition-size"))

		_, _ = fmt.Fprintln(out, "\nPerformance:")
		_, _ = fmt.Fprintf(out, "      --threads int           Concurrent partition workers (0 = all CPUs) [%s]\n", def("threads"))
		_, _ = fmt.Fprintf(out, "      --progress              Progress bar on stderr [%s]\n", def("progress"))

		_, _ = fmt.Fprintln(out, "\nOutput:")
		_, _ = fmt.Fprintln(out, "      --out-dir string        Write distances_<k>.tsv per partition here (default: stdout)")
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for the distance stage.
func PrintExamples(out io.Writer) {
	clibase.PrintQuickstart(out, clibase.Quickstart{
		Tool:  "tpsrank-distance",
		Blurb: "Compute tree distances to the nearest characterized terpene synthase.",
		Uses: []clibase.Example{
			{
				Caption: "Whole tree to stdout",
				Command: []string{"tpsrank-distance --tree tps.nwk --characterized refs.txt"},
			},
			{
				Caption: "One partition per cluster job",
				Command: []string{
					"tpsrank-distance --tree tps.nwk --characterized refs.txt",
					"--partition 3 --out-dir runs/",
				},
			},
		},
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common)

	fs.StringVar(&o.Tree, "tree", "", "newick tree file [*]")
	fs.StringVar(&o.Characterized, "characterized", "", "characterized ID list [*]")
	fs.IntVar(&o.Partition, "partition", -1, "partition to compute (-1 = all) [-1]")
	fs.IntVar(&o.PartitionSize, "partition-size", 50, "uncharacterized IDs per partition [50]")
	fs.IntVar(&o.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")
	fs.BoolVar(&o.Progress, "progress", false, "progress bar on stderr [false]")
	fs.StringVar(&o.OutDir, "out-dir", "", "directory for per-partition tables (default: stdout)")
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

	if o.Tree == "" {
		return o, fmt.Errorf("--tree is required")
	}
	if o.Characterized == "" {
		return o, fmt.Errorf("--characterized is required")
	}
	if o.Partition < -1 {
		return o, fmt.Errorf("--partition must be ≥ -1")
	}
	if o.Threads < 0 {
		return o, fmt.Errorf("--threads must be ≥ 0")
	}
	return o, nil
}
