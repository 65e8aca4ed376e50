// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"tpsrank-core/score"
	"tpsrank/internal/output"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer
// mallocs. The encoder is tiny and tied to an io.Writer, so it is recreated
// per goroutine.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// StartScoredJSONLWriter streams each scored candidate as one JSON line (v1).
// Broken-pipe errors on the final flush are suppressed; a killed downstream
// consumer is not a failure.
func StartScoredJSONLWriter(out io.Writer, bufSize int) (chan<- score.Scored, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan score.Scored, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)

		for s := range in {
			if err := enc.Encode(output.ToAPIScored(s)); err != nil {
				done <- err
				return
			}
		}
		if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
			done <- err
			return
		}
		done <- nil
	}()

	return in, done
}
