// internal/output/tables.go
package output

import (
	"fmt"
	"io"

	"tpsrank-core/candidate"
	"tpsrank-core/neighbor"
)

// WriteDistanceTable writes a nearest-neighbor distance table with header.
func WriteDistanceTable(w io.Writer, recs []neighbor.DistanceRecord) error {
	if _, err := fmt.Fprintln(w, neighbor.TableHeader); err != nil {
		return err
	}
	for _, r := range recs {
		if _, err := fmt.Fprintln(w, neighbor.FormatRow(r)); err != nil {
			return err
		}
	}
	return nil
}

// WriteCandidateTable writes a combined candidate table with header.
func WriteCandidateTable(w io.Writer, recs []candidate.Record) error {
	if _, err := fmt.Fprintln(w, candidate.TableHeader); err != nil {
		return err
	}
	for _, r := range recs {
		if _, err := fmt.Fprintln(w, candidate.FormatRow(r)); err != nil {
			return err
		}
	}
	return nil
}
