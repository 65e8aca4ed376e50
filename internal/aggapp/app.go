// internal/aggapp/app.go
package aggapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"tpsrank/internal/aggcli"
	"tpsrank/internal/aggregate"
	"tpsrank/internal/clibase"
	"tpsrank/internal/cmdutil"
	"tpsrank/internal/logging"
	"tpsrank/internal/output"
	"tpsrank/internal/version"
	"tpsrank/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := aggcli.NewFlagSet("tpsrank-aggregate")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = aggcli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return cmdutil.FlushExit(outw, stderr, 0)
	}

	opts, err := aggcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			aggcli.PrintExamples(outw)
			return cmdutil.FlushExit(outw, stderr, 0)
		}
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return cmdutil.FlushExit(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return cmdutil.FlushExit(outw, stderr, 2)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "tpsrank-aggregate version %s\n", version.Version)
		return cmdutil.FlushExit(outw, stderr, 0)
	}

	log := logging.New(stderr, "tpsrank-aggregate", opts.Quiet, opts.Verbose)
	defer func() { _ = log.Sync() }()

	select {
	case <-parent.Done():
		return 130
	default:
	}

	inputs, err := aggregate.Collect(opts.Paths)
	if err != nil {
		log.Error("collect partition tables", zap.Error(err))
		return 1
	}
	recs, err := aggregate.Merge(inputs)
	if err != nil {
		log.Error("merge partition tables", zap.Error(err))
		return 1
	}
	log.Info("aggregated", zap.Int("partitions", len(inputs)), zap.Int("records", len(recs)))

	if err := output.WriteDistanceTable(outw, recs); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		log.Error("write output", zap.Error(err))
		return 3
	}
	return cmdutil.FlushExit(outw, stderr, 0)
}
