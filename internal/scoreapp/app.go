// internal/scoreapp/app.go
package scoreapp

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
	"tpsrank-core/fasta"
	"tpsrank-core/score"
	"tpsrank/internal/clibase"
	"tpsrank/internal/cmdutil"
	"tpsrank/internal/logging"
	"tpsrank/internal/manifest"
	"tpsrank/internal/scorecli"
	"tpsrank/internal/version"
	"tpsrank/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := scorecli.NewFlagSet("tpsrank-score")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = scorecli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return cmdutil.FlushExit(outw, stderr, 0)
	}

	opts, err := scorecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			scorecli.PrintExamples(outw)
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
		_, _ = fmt.Fprintf(outw, "tpsrank-score version %s\n", version.Version)
		return cmdutil.FlushExit(outw, stderr, 0)
	}

	log := logging.New(stderr, "tpsrank-score", opts.Quiet, opts.Verbose)
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var man *manifest.Manifest
	if opts.Manifest != "" {
		man = manifest.New("tpsrank-score")
		man.Inputs.Candidates = opts.Candidates
		man.Inputs.Proteins = opts.Proteins
	}

	cands, err := loadCandidates(ctx, opts, log)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		log.Error("load candidates", zap.Error(err))
		return 1
	}

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
		fillManifest(man, cands, ranked)
		if err := man.WriteFile(opts.Manifest); err != nil {
			log.Error("write manifest", zap.Error(err))
			return 3
		}
		log.Info("manifest written", zap.String("path", opts.Manifest), zap.String("run_id", man.RunID))
	}

	return cmdutil.FlushExit(outw, stderr, 0)
}

// loadCandidates reads the combined table and, when a protein FASTA is
// given, fills in each candidate's sequence traits.
func loadCandidates(ctx context.Context, opts scorecli.Options, log *zap.Logger) ([]candidate.Record, error) {
	cands, err := candidate.LoadTable(opts.Candidates)
	if err != nil {
		return nil, err
	}
	if opts.Proteins == "" {
		return cands, nil
	}

	traits, err := fasta.ReadTraits(ctx, opts.Proteins)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "read proteins")
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
	return cands, nil
}

func fillManifest(man *manifest.Manifest, cands []candidate.Record, ranked []score.Scored) {
	man.Counts.Candidates = len(cands)
	ds := make([]float64, len(cands))
	for i, c := range cands {
		ds[i] = c.Distance
	}
	man.SetDistances(ds)
	if len(ranked) > 0 {
		man.Top = &manifest.TopCandidate{ID: ranked[0].ID, TotalScore: ranked[0].Total}
	}
}
