package pipeline

import "tpsrank-core/neighbor"

// Compile-time check that the core engine satisfies the pipeline contract.
var _ Computer = (*neighbor.Engine)(nil)
