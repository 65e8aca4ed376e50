// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"

	"tpsrank-core/candidate"
	"tpsrank-core/score"
)

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// FormatScoredRow returns the 8 scored columns (no trailing newline).
func FormatScoredRow(s score.Scored) string {
	arch := candidate.ArchPlaceholder
	if s.HasArch {
		arch = s.Arch.String()
	}
	return fmt.Sprintf("%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s",
		s.ID, s.Length, ftoa(s.Distance), string(s.Type), arch,
		strconv.FormatBool(s.StartsWithM),
		ftoa(s.LengthScore), ftoa(s.Total),
	)
}
