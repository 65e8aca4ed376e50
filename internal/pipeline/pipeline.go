// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"tpsrank-core/neighbor"
)

// Config controls the partition pipeline.
type Config struct {
	Threads int         // number of concurrent partition workers (<=0: NumCPU)
	OnDone  func(k int) // optional progress hook; called from worker goroutines
}

// Computer is the partition contract the pipeline drives.
type Computer interface {
	NumPartitions() int
	ComputePartition(ctx context.Context, k int) ([]neighbor.DistanceRecord, error)
}

// ComputeDistances runs every partition of eng concurrently and returns the
// per-partition tables indexed by partition number. Workers share nothing but
// the read-only engine; each result lands in its own slot, so the output is
// deterministic regardless of completion order. The first error (including
// context cancellation) aborts the remaining work.
func ComputeDistances(ctx context.Context, cfg Config, eng Computer) ([][]neighbor.DistanceRecord, error) {
	n := eng.NumPartitions()
	results := make([][]neighbor.DistanceRecord, n)
	if n == 0 {
		return results, ctx.Err()
	}

	limit := cfg.Threads
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	if limit > n {
		limit = n
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for k := 0; k < n; k++ {
		k := k
		g.Go(func() error {
			recs, err := eng.ComputePartition(gctx, k)
			if err != nil {
				return err
			}
			results[k] = recs
			if cfg.OnDone != nil {
				cfg.OnDone(k)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Flatten joins per-partition tables in partition order.
func Flatten(parts [][]neighbor.DistanceRecord) []neighbor.DistanceRecord {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]neighbor.DistanceRecord, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
