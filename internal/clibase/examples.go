// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is the sentinel a tool's ParseArgs returns once the
// --examples quickstart has been printed; the app maps it to exit 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// Quickstart is the --examples payload for one binary: a one-line blurb
// plus one or more ready-to-paste invocations.
type Quickstart struct {
	Tool  string // binary name as invoked
	Blurb string // one sentence on what the tool does
	Uses  []Example
}

// Example is a single captioned invocation inside a quickstart. Command
// holds the invocation split across lines; continuation lines are indented
// and joined with trailing backslashes when rendered.
type Example struct {
	Caption string // heading above the command; empty means "Example"
	Command []string
}

// PrintQuickstart renders q followed by a one-line tip pointing at --help.
func PrintQuickstart(out io.Writer, q Quickstart) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", q.Tool)
	if q.Blurb != "" {
		_, _ = fmt.Fprintln(out, q.Blurb)
	}
	for _, ex := range q.Uses {
		caption := ex.Caption
		if caption == "" {
			caption = "Example"
		}
		_, _ = fmt.Fprintf(out, "\n%s:\n", caption)
		for i, line := range ex.Command {
			indent, cont := "  ", " \\"
			if i > 0 {
				indent = "    "
			}
			if i == len(ex.Command)-1 {
				cont = ""
			}
			_, _ = fmt.Fprintf(out, "%s%s%s\n", indent, line, cont)
		}
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
