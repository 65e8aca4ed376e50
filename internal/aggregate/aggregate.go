// internal/aggregate/aggregate.go

// Package aggregate joins per-partition distance tables back into one table.
// Inputs are matched to partition indices by file name; the set of indices
// must be exactly 0..K-1 or the merge refuses to run, since a silent gap
// would drop candidates without a trace.
package aggregate

import (
	"fmt"
	"sort"

	"tpsrank-core/neighbor"
	"tpsrank/internal/common"
)

// Input pairs a partition index with the file that holds its table.
type Input struct {
	Path  string
	Index int
}

// Collect resolves paths to partition inputs via their file names and
// validates completeness. The result is ordered by partition index.
func Collect(paths []string) ([]Input, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no partition files given")
	}
	inputs := make([]Input, 0, len(paths))
	byIndex := make(map[int]string, len(paths))
	for _, p := range paths {
		k, ok := common.PartitionIndexFromPath(p)
		if !ok {
			return nil, fmt.Errorf("%s: file name does not look like distances_<k>.tsv", p)
		}
		if prev, dup := byIndex[k]; dup {
			return nil, fmt.Errorf("partition %d appears twice (%s and %s)", k, prev, p)
		}
		byIndex[k] = p
		inputs = append(inputs, Input{Path: p, Index: k})
	}
	sort.Slice(inputs, func(i, j int) bool { return inputs[i].Index < inputs[j].Index })
	for i, in := range inputs {
		if in.Index != i {
			return nil, fmt.Errorf("missing partition %d: have %d files but indices are not 0..%d", i, len(inputs), len(inputs)-1)
		}
	}
	return inputs, nil
}

// Merge loads every input table in index order and joins the records.
func Merge(inputs []Input) ([]neighbor.DistanceRecord, error) {
	var out []neighbor.DistanceRecord
	for _, in := range inputs {
		recs, err := neighbor.LoadTable(in.Path)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	return out, nil
}
