// Package writers runs the async output side of scoring: each writer is a
// goroutine fed over a channel and reports exactly one error on a done
// channel after the final flush.
//
// Presentation knowledge lives here and in internal/output — text tables,
// the --pretty breakdown, JSON and JSONL — so core packages stay
// domain-only and the apps stay orchestration-only. JSON and JSONL encode
// through pkg/api (v1) for a stable wire format. Ranked order is whatever
// order the caller sends; writers never re-sort.
package writers
