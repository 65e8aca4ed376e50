// internal/distapp/app.go
package distapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"tpsrank-core/neighbor"
	"tpsrank-core/phylo"
	"tpsrank/internal/clibase"
	"tpsrank/internal/cmdutil"
	"tpsrank/internal/common"
	"tpsrank/internal/distcli"
	"tpsrank/internal/logging"
	"tpsrank/internal/output"
	"tpsrank/internal/pipeline"
	"tpsrank/internal/runutil"
	"tpsrank/internal/version"
	"tpsrank/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := distcli.NewFlagSet("tpsrank-distance")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = distcli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return cmdutil.FlushExit(outw, stderr, 0)
	}

	opts, err := distcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			distcli.PrintExamples(outw)
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
		_, _ = fmt.Fprintf(outw, "tpsrank-distance version %s\n", version.Version)
		return cmdutil.FlushExit(outw, stderr, 0)
	}

	log := logging.New(stderr, "tpsrank-distance", opts.Quiet, opts.Verbose)
	defer func() { _ = log.Sync() }()

	size, warns := runutil.ValidatePartitionSize(opts.PartitionSize)
	for _, w := range warns {
		log.Warn(w)
	}

	eng, err := loadEngine(opts.Tree, opts.Characterized, size)
	if err != nil {
		log.Error("setup failed", zap.Error(err))
		return 1
	}
	log.Info("engine ready",
		zap.Int("terminals", eng.NumUncharacterized()+eng.NumCharacterized()),
		zap.Int("characterized", eng.NumCharacterized()),
		zap.Int("partitions", eng.NumPartitions()),
	)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	if opts.Partition >= 0 {
		return runOne(ctx, opts, eng, outw, stderr, log)
	}
	return runAll(ctx, opts, eng, outw, stderr, log)
}

// loadEngine builds the neighbor engine from the two input files.
func loadEngine(treePath, charPath string, size int) (*neighbor.Engine, error) {
	tr, err := phylo.Load(treePath)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load tree")
	}
	set, err := neighbor.LoadCharacterizedSet(charPath)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load characterized set")
	}
	eng, err := neighbor.New(tr, set, size)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "resolve characterized set")
	}
	return eng, nil
}

func runOne(ctx context.Context, opts distcli.Options, eng *neighbor.Engine, outw *bufio.Writer, stderr io.Writer, log *zap.Logger) int {
	if opts.Partition >= eng.NumPartitions() {
		_, _ = fmt.Fprintf(stderr, "error: --partition %d out of range (have %d partitions)\n",
			opts.Partition, eng.NumPartitions())
		return 2
	}
	recs, err := eng.ComputePartition(ctx, opts.Partition)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		log.Error("compute failed", zap.Error(err))
		return 1
	}
	log.Info("partition complete", zap.Int("partition", opts.Partition), zap.Int("records", len(recs)))

	if opts.OutDir != "" {
		if err := writeTableFile(opts.OutDir, opts.Partition, recs); err != nil {
			log.Error("write partition table", zap.Error(err))
			return 3
		}
		return cmdutil.FlushExit(outw, stderr, 0)
	}
	if err := output.WriteDistanceTable(outw, recs); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		log.Error("write output", zap.Error(err))
		return 3
	}
	return cmdutil.FlushExit(outw, stderr, 0)
}

func runAll(ctx context.Context, opts distcli.Options, eng *neighbor.Engine, outw *bufio.Writer, stderr io.Writer, log *zap.Logger) int {
	cfg := pipeline.Config{Threads: runutil.EffectiveThreads(opts.Threads)}

	var bar *pb.ProgressBar
	if opts.Progress && eng.NumPartitions() > 0 {
		bar = pb.Full.Start64(int64(eng.NumPartitions()))
		bar.SetWriter(stderr)
		bar.Set(pb.Bytes, false)
		cfg.OnDone = func(int) { bar.Increment() }
	}

	parts, err := pipeline.ComputeDistances(ctx, cfg, eng)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		log.Error("compute failed", zap.Error(err))
		return 1
	}

	if opts.OutDir != "" {
		for k, recs := range parts {
			if err := writeTableFile(opts.OutDir, k, recs); err != nil {
				log.Error("write partition table", zap.Error(err))
				return 3
			}
		}
		log.Info("partition tables written", zap.Int("partitions", len(parts)), zap.String("dir", opts.OutDir))
		return cmdutil.FlushExit(outw, stderr, 0)
	}

	recs := pipeline.Flatten(parts)
	log.Info("distances complete", zap.Int("records", len(recs)))
	if err := output.WriteDistanceTable(outw, recs); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		log.Error("write output", zap.Error(err))
		return 3
	}
	return cmdutil.FlushExit(outw, stderr, 0)
}

// writeTableFile writes one partition table as <dir>/distances_<k>.tsv.
func writeTableFile(dir string, k int, recs []neighbor.DistanceRecord) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	fn := filepath.Join(dir, common.PartitionFileName(k))
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if err := output.WriteDistanceTable(f, recs); err != nil {
		_ = f.Close()
		return pkgerrors.Wrap(err, fn)
	}
	return f.Close()
}
