// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"tpsrank-core/candidate"
	"tpsrank-core/classify"
	"tpsrank-core/fasta"
	"tpsrank-core/neighbor"
	"tpsrank-core/pfam"
	"tpsrank-core/phylo"
	"tpsrank-core/score"
	"tpsrank/internal/cli"
	"tpsrank/internal/clibase"
	"tpsrank/internal/cmdutil"
	"tpsrank/internal/logging"
	"tpsrank/internal/manifest"
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

	fs := cli.NewFlagSet("tpsrank")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return cmdutil.FlushExit(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			cli.PrintExamples(outw)
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
		_, _ = fmt.Fprintf(outw, "tpsrank version %s\n", version.Version)
		return cmdutil.FlushExit(outw, stderr, 0)
	}

	log := logging.New(stderr, "tpsrank", opts.Quiet, opts.Verbose)
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var man *manifest.Manifest
	if opts.Manifest != "" {
		man = manifest.New("tpsrank")
		man.Inputs = manifest.Inputs{
			Tree:           opts.Tree,
			Characterized:  opts.Characterized,
			Classification: opts.Classification,
			Architecture:   opts.Architecture,
			Proteins:       opts.Proteins,
		}
	}

	size, warns := runutil.ValidatePartitionSize(opts.PartitionSize)
	for _, w := range warns {
		log.Warn(w)
	}

	// Stage 1: distances.
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
	if man != nil {
		man.Counts.Terminals = eng.NumUncharacterized() + eng.NumCharacterized()
		man.Counts.Characterized = eng.NumCharacterized()
		man.Counts.Uncharacterized = eng.NumUncharacterized()
		man.Counts.Partitions = eng.NumPartitions()
	}

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
	dists := pipeline.Flatten(parts)
	log.Info("distances complete", zap.Int("records", len(dists)))

	if opts.DistancesOut != "" {
		if err := writeDistanceFile(opts.DistancesOut, dists); err != nil {
			log.Error("write distance table", zap.Error(err))
			return 3
		}
	}

	// Stage 2: combine annotations.
	cands, err := combineStage(opts, dists, log)
	if err != nil {
		log.Error("combine failed", zap.Error(err))
		return 1
	}

	if opts.CandidatesOut != "" {
		if err := writeCandidateFile(opts.CandidatesOut, cands); err != nil {
			log.Error("write candidate table", zap.Error(err))
			return 3
		}
	}

	// Stage 3: sequence traits.
	if opts.Proteins != "" {
		if err := fillTraits(ctx, opts.Proteins, cands, log); err != nil {
			if errors.Is(err, context.Canceled) {
				return 130
			}
			log.Error("read proteins", zap.Error(err))
			return 1
		}
	}

	// Stage 4: rank.
	ranked, zeroRange := score.Rank(cands)
	if zeroRange && len(ranked) > 0 {
		log.Warn("all distances identical; distance sub-scores zeroed")
	}
	if opts.Top > 0 && len(ranked) > opts.Top {
		ranked = ranked[:opts.Top]
	}
	log.Info("ranked", zap.Int("candidates", len(ranked)))

	in, errCh := writers.StartScoredWriter(outw, opts.Output, opts.Header, opts.Pretty, 64)
	for _, s := range ranked {
		in <- s
	}
	close(in)
	if werr := <-errCh; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		log.Error("write output", zap.Error(werr))
		return 3
	}

	if man != nil {
		man.Counts.Candidates = len(cands)
		ds := make([]float64, len(dists))
		for i, d := range dists {
			ds[i] = d.Distance
		}
		man.SetDistances(ds)
		if len(ranked) > 0 {
			man.Top = &manifest.TopCandidate{ID: ranked[0].ID, TotalScore: ranked[0].Total}
		}
		if err := man.WriteFile(opts.Manifest); err != nil {
			log.Error("write manifest", zap.Error(err))
			return 3
		}
		log.Info("manifest written", zap.String("path", opts.Manifest), zap.String("run_id", man.RunID))
	}

	return cmdutil.FlushExit(outw, stderr, 0)
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

// combineStage joins the distance records with the optional annotation tables.
func combineStage(opts cli.Options, dists []neighbor.DistanceRecord, log *zap.Logger) ([]candidate.Record, error) {
	var cls *classify.Table
	var err error
	if opts.Classification != "" {
		cls, err = classify.LoadTable(opts.Classification)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "load classification")
		}
	}
	var archs *pfam.Table
	if opts.Architecture != "" {
		archs, err = pfam.LoadTable(opts.Architecture)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "load architecture")
		}
		for _, bad := range archs.BadRows() {
			log.Warn("unparseable architecture, treating as absent",
				zap.Int("line", bad.Line), zap.String("id", bad.ID), zap.Error(bad.Err))
		}
	}

	cands, skips := candidate.Combine(dists, cls, archs)
	if n := len(skips.Classification); n > 0 {
		log.Warn("classification rows outside distance universe",
			zap.Int("count", n), zap.Strings("ids", skips.Classification))
	}
	if n := len(skips.Architecture); n > 0 {
		log.Warn("architecture rows outside distance universe",
			zap.Int("count", n), zap.Strings("ids", skips.Architecture))
	}
	return cands, nil
}

// fillTraits attaches protein length and start-M traits to the candidates.
func fillTraits(ctx context.Context, path string, cands []candidate.Record, log *zap.Logger) error {
	traits, err := fasta.ReadTraits(ctx, path)
	if err != nil {
		return err
	}
	missing := 0
	for i := range cands {
		tr, ok := traits[cands[i].ID]
		if !ok {
			missing++
			continue
		}
		cands[i].Length = tr.Length
		cands[i].StartsWithM = tr.StartsWithM
	}
	if missing > 0 {
		log.Warn("candidates without protein record; length and start-M scores zeroed",
			zap.Int("count", missing))
	}
	return nil
}

func writeDistanceFile(path string, recs []neighbor.DistanceRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := output.WriteDistanceTable(f, recs); err != nil {
		_ = f.Close()
		return pkgerrors.Wrap(err, path)
	}
	return f.Close()
}

func writeCandidateFile(path string, recs []candidate.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := output.WriteCandidateTable(f, recs); err != nil {
		_ = f.Close()
		return pkgerrors.Wrap(err, path)
	}
	return f.Close()
}
