package writers

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// IsBrokenPipe reports whether err means the consumer of our output went
// away: a pipe closed by a downstream tool (`head`, a pager) or a file
// handle already closed underneath the writer. Writer goroutines treat
// these as a clean stop rather than a failure.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed)
}
