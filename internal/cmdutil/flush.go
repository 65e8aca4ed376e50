// internal/cmdutil/flush.go
package cmdutil

import (
	"bufio"
	"fmt"
	"io"

	"tpsrank/internal/writers"
)

// FlushExit flushes the buffered output writer and maps the result to a
// process exit code: okCode on success, okCode on a broken pipe (downstream
// closed early, e.g. `| head`), 3 on any other write failure.
func FlushExit(outw *bufio.Writer, stderr io.Writer, okCode int) int {
	if err := outw.Flush(); err != nil {
		if writers.IsBrokenPipe(err) {
			return okCode
		}
		fmt.Fprintf(stderr, "ERROR: write output: %v\n", err)
		return 3
	}
	return okCode
}
