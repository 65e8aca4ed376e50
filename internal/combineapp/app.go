// internal/combineapp/app.go
package combineapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"tpsrank-core/candidate"
	"tpsrank-core/classify"
	"tpsrank-core/neighbor"
	"tpsrank-core/pfam"
	"tpsrank/internal/clibase"
	"tpsrank/internal/cmdutil"
	"tpsrank/internal/combinecli"
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

	fs := combinecli.NewFlagSet("tpsrank-combine")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = combinecli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return cmdutil.FlushExit(outw, stderr, 0)
	}

	opts, err := combinecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			combinecli.PrintExamples(outw)
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
		_, _ = fmt.Fprintf(outw, "tpsrank-combine version %s\n", version.Version)
		return cmdutil.FlushExit(outw, stderr, 0)
	}

	log := logging.New(stderr, "tpsrank-combine", opts.Quiet, opts.Verbose)
	defer func() { _ = log.Sync() }()

	select {
	case <-parent.Done():
		return 130
	default:
	}

	cands, skips, err := combine(opts, log)
	if err != nil {
		log.Error("combine failed", zap.Error(err))
		return 1
	}
	logSkips(log, skips)
	log.Info("combined", zap.Int("candidates", len(cands)))

	if err := output.WriteCandidateTable(outw, cands); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		log.Error("write output", zap.Error(err))
		return 3
	}
	return cmdutil.FlushExit(outw, stderr, 0)
}

// combine loads the three tables and joins them over the distance universe.
// Classification and architecture tables are optional.
func combine(opts combinecli.Options, log *zap.Logger) ([]candidate.Record, candidate.SkipStats, error) {
	dists, err := neighbor.LoadTable(opts.Distances)
	if err != nil {
		return nil, candidate.SkipStats{}, pkgerrors.Wrap(err, "load distances")
	}

	var cls *classify.Table
	if opts.Classification != "" {
		cls, err = classify.LoadTable(opts.Classification)
		if err != nil {
			return nil, candidate.SkipStats{}, pkgerrors.Wrap(err, "load classification")
		}
	}

	var archs *pfam.Table
	if opts.Architecture != "" {
		archs, err = pfam.LoadTable(opts.Architecture)
		if err != nil {
			return nil, candidate.SkipStats{}, pkgerrors.Wrap(err, "load architecture")
		}
		for _, bad := range archs.BadRows() {
			log.Warn("unparseable architecture, treating as absent",
				zap.Int("line", bad.Line), zap.String("id", bad.ID), zap.Error(bad.Err))
		}
	}

	cands, skips := candidate.Combine(dists, cls, archs)
	return cands, skips, nil
}

// logSkips reports annotation rows whose IDs never appear in the distance
// table. They are dropped from the output, so they must stay visible.
func logSkips(log *zap.Logger, skips candidate.SkipStats) {
	if n := len(skips.Classification); n > 0 {
		log.Warn("classification rows outside distance universe",
			zap.Int("count", n), zap.Strings("ids", skips.Classification))
	}
	if n := len(skips.Architecture); n > 0 {
		log.Warn("architecture rows outside distance universe",
			zap.Int("count", n), zap.Strings("ids", skips.Architecture))
	}
}
