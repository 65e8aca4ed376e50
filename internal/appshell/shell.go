// Package appshell owns process-level concerns shared by every tpsrank
// binary: signal wiring, argv defaulting, and exit-code normalization.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the entry point every tpsrank app exposes: it receives the
// process context, the raw argv (without the program name), and the two
// output streams, and returns the process exit code.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main wires Ctrl-C/SIGTERM cancellation around fn and exits the process
// with its code. Called as the whole body of each cmd/ main.
func Main(fn RunFunc) {
	os.Exit(run(fn))
}

func run(fn RunFunc) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := fn(ctx, argv, os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		// Interrupted but the app already wound down cleanly: report the
		// conventional 130 so callers can tell a cancel from a success.
		code = 130
	}
	return code
}
