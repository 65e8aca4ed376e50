// core/fasta/traits.go
package fasta

import "context"

// Traits carries the two scoring signals derived from a sequence. Scoring
// never needs the residues themselves, so only these survive the scan.
type Traits struct {
	Length      int
	StartsWithM bool
}

// TraitsOf reduces one record to its traits.
func TraitsOf(r Record) Traits {
	return Traits{
		Length:      len(r.Seq),
		StartsWithM: len(r.Seq) > 0 && r.Seq[0] == 'M',
	}
}

// ReadTraits scans the FASTA at path and returns per-ID traits. The first
// record wins on duplicate IDs, matching the table readers.
func ReadTraits(ctx context.Context, path string) (map[string]Traits, error) {
	out := make(map[string]Traits)
	err := StreamPathCtx(ctx, path, func(r Record) error {
		if _, dup := out[r.ID]; !dup {
			out[r.ID] = TraitsOf(r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
