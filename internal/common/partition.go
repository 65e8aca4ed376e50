// internal/common/partition.go
package common

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// PartitionFileName returns the canonical file name for partition k.
func PartitionFileName(k int) string {
	return fmt.Sprintf("distances_%d.tsv", k)
}

// PartitionIndexFromPath extracts the partition index if the path's base name
// looks like "distances_<k>.tsv" (optionally gzipped). It returns index, ok.
func PartitionIndexFromPath(path string) (int, bool) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, ".tsv")
	const prefix = "distances_"
	if !strings.HasPrefix(base, prefix) {
		return 0, false
	}
	suffix := base[len(prefix):]
	if suffix == "" {
		return 0, false
	}
	k, err := strconv.Atoi(suffix)
	if err != nil || k < 0 {
		return 0, false
	}
	return k, true
}
