// Package pipeline fans partition work out over a worker pool and collects
// per-partition distance tables in index order.
//
// The only contract to implement is Computer (NumPartitions/ComputePartition).
// This keeps the pipeline swappable and testable.
package pipeline
