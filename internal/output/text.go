// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"tpsrank-core/score"
)

// StreamScoredText writes scored rows as they arrive on in. When render is
// non-nil each row is followed by its rendered block (used for --pretty).
func StreamScoredText(w io.Writer, in <-chan score.Scored, header bool, render func(score.Scored) string) error {
	if header {
		if _, err := fmt.Fprintln(w, ScoredTSVHeader); err != nil {
			return err
		}
	}
	for s := range in {
		if _, err := fmt.Fprintln(w, FormatScoredRow(s)); err != nil {
			return err
		}
		if render != nil {
			if _, err := io.WriteString(w, render(s)); err != nil {
				return err
			}
		}
	}
	return nil
}
