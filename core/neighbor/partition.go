// core/neighbor/partition.go
package neighbor

// DefaultPartitionSize is the number of uncharacterized terminals handled
// per unit of distance work.
const DefaultPartitionSize = 50

// NumPartitions returns ceil(n/size); 0 when n or size is not positive.
// Deriving the count from n (rather than taking it as a parameter) is what
// makes the tiling gap-free: no configuration can drop trailing nodes.
func NumPartitions(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// PartitionBounds returns the half-open [lo,hi) index range of partition k
// over n items. Any k at or past NumPartitions(n, size) yields an empty
// range: a valid, zero-record unit of work.
func PartitionBounds(n, size, k int) (lo, hi int) {
	if n <= 0 || size <= 0 || k < 0 {
		return 0, 0
	}
	lo = k * size
	if lo > n || lo < 0 {
		return n, n
	}
	hi = lo + size
	if hi > n {
		hi = n
	}
	return lo, hi
}
