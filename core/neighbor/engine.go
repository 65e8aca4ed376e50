// core/neighbor/engine.go
package neighbor

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"tpsrank-core/phylo"
)

// Resolution failures distinguish unknown from ambiguous IDs so callers can
// report which input file needs fixing.
var (
	ErrUnknownID   = errors.New("characterized id not found in tree")
	ErrAmbiguousID = errors.New("characterized id matches multiple terminals")
)

// Engine owns one tree's nearest-characterized-neighbor computation. Built
// once per run, then shared read-only by partition workers.
type Engine struct {
	tree  *phylo.Tree
	chars []*phylo.Node // resolved characterized terminals, set order
	uncs  []*phylo.Node // uncharacterized terminals, name-sorted
	size  int
}

// New resolves set against t and prepares the name-sorted uncharacterized
// universe. Every set ID must match exactly one terminal and the remaining
// terminal names must be unique; violations abort before any distance work.
// partitionSize <= 0 selects DefaultPartitionSize.
func New(t *phylo.Tree, set *CharacterizedSet, partitionSize int) (*Engine, error) {
	if partitionSize <= 0 {
		partitionSize = DefaultPartitionSize
	}
	if set.Len() == 0 {
		return nil, fmt.Errorf("characterized set is empty")
	}
	e := &Engine{tree: t, size: partitionSize}
	for _, id := range set.IDs() {
		ns := t.Lookup(id)
		switch len(ns) {
		case 1:
			e.chars = append(e.chars, ns[0])
		case 0:
			return nil, fmt.Errorf("%w: %q", ErrUnknownID, id)
		default:
			return nil, fmt.Errorf("%w: %q (%d terminals)", ErrAmbiguousID, id, len(ns))
		}
	}
	seen := make(map[string]struct{}, t.NumTerminals())
	for _, n := range t.Terminals() {
		if set.Contains(n.Name) {
			continue
		}
		if _, dup := seen[n.Name]; dup {
			return nil, fmt.Errorf("duplicate terminal name %q", n.Name)
		}
		seen[n.Name] = struct{}{}
		e.uncs = append(e.uncs, n)
	}
	sort.Slice(e.uncs, func(i, j int) bool { return e.uncs[i].Name < e.uncs[j].Name })
	return e, nil
}

// NumPartitions returns the partition count over this engine's universe.
func (e *Engine) NumPartitions() int { return NumPartitions(len(e.uncs), e.size) }

// PartitionSize returns the configured chunk size.
func (e *Engine) PartitionSize() int { return e.size }

// NumUncharacterized returns the size of the uncharacterized universe.
func (e *Engine) NumUncharacterized() int { return len(e.uncs) }

// NumCharacterized returns the resolved characterized-terminal count.
func (e *Engine) NumCharacterized() int { return len(e.chars) }

// Partition returns the k-th slice of the name-sorted uncharacterized
// universe. Out-of-range k yields an empty slice, a valid no-op partition.
func (e *Engine) Partition(k int) []*phylo.Node {
	lo, hi := PartitionBounds(len(e.uncs), e.size, k)
	return e.uncs[lo:hi]
}

// ComputePartition emits one DistanceRecord per node of partition k, in
// partition-traversal order. Ties go to the earliest characterized node in
// set order (strict less-than comparison).
func (e *Engine) ComputePartition(ctx context.Context, k int) ([]DistanceRecord, error) {
	part := e.Partition(k)
	recs := make([]DistanceRecord, 0, len(part))
	for _, u := range part {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		best := e.chars[0]
		bestD := e.tree.Distance(u, best)
		for _, c := range e.chars[1:] {
			if d := e.tree.Distance(u, c); d < bestD {
				best, bestD = c, d
			}
		}
		recs = append(recs, DistanceRecord{ID: u.Name, ClosestID: best.Name, Distance: bestD})
	}
	return recs, nil
}

// ComputeAll runs every partition in index order on the calling goroutine.
// Concurrent fan-out belongs to the caller.
func (e *Engine) ComputeAll(ctx context.Context) ([][]DistanceRecord, error) {
	out := make([][]DistanceRecord, e.NumPartitions())
	for k := range out {
		recs, err := e.ComputePartition(ctx, k)
		if err != nil {
			return nil, err
		}
		out[k] = recs
	}
	return out, nil
}
