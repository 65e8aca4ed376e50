// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"

	"tpsrank-core/neighbor"
)

// EffectiveThreads returns the worker count to use: threads as-is when
// positive, otherwise the number of CPUs.
func EffectiveThreads(threads int) int {
	if threads > 0 {
		return threads
	}
	return runtime.NumCPU()
}

// ValidatePartitionSize decides the effective partition size, returns
// (size, warnings).
// Rules:
//   - size <= 0 → fall back to neighbor.DefaultPartitionSize with a warning
//   - otherwise the requested size is used as-is
func ValidatePartitionSize(size int) (int, []string) {
	if size <= 0 {
		warn := fmt.Sprintf("warning: --partition-size must be positive; using %d", neighbor.DefaultPartitionSize)
		return neighbor.DefaultPartitionSize, []string{warn}
	}
	return size, nil
}

