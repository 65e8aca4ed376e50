package writers

import (
	"fmt"
	"io"

	"tpsrank-core/score"
	"tpsrank/internal/output"
	"tpsrank/internal/pretty"
)

// StartScoredWriter spins up a writer goroutine for ranked score.Scored items.
// (Backward-compatible wrapper using pretty.DefaultOptions)
func StartScoredWriter(out io.Writer, format string, header, prettyMode bool, bufSize int) (chan<- score.Scored, <-chan error) {
	return StartScoredWriterWithPrettyOptions(out, format, header, prettyMode, pretty.DefaultOptions, bufSize)
}

// StartScoredWriterWithPrettyOptions allows customizing the pretty renderer.
func StartScoredWriterWithPrettyOptions(out io.Writer, format string, header, prettyMode bool, popt pretty.Options, bufSize int) (chan<- score.Scored, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}

	switch format {
	case output.FormatJSONL:
		return StartScoredJSONLWriter(out, bufSize)

	case output.FormatJSON:
		in := make(chan score.Scored, bufSize)
		errCh := make(chan error, 1)
		go func() {
			var buf []score.Scored
			for s := range in {
				buf = append(buf, s)
			}
			errCh <- output.WriteScoredJSON(out, buf)
		}()
		return in, errCh

	case output.FormatText:
		in := make(chan score.Scored, bufSize)
		errCh := make(chan error, 1)
		var render func(score.Scored) string
		if prettyMode {
			render = func(s score.Scored) string { return pretty.RenderScoredWithOptions(s, popt) }
		}
		go func() {
			errCh <- output.StreamScoredText(out, in, header, render)
		}()
		return in, errCh

	default:
		in := make(chan score.Scored, bufSize)
		errCh := make(chan error, 1)
		go func() {
			for range in {
			}
			errCh <- fmt.Errorf("unsupported output %q", format)
		}()
		return in, errCh
	}
}
