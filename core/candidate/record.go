// core/candidate/record.go
package candidate

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"tpsrank-core/classify"
	"tpsrank-core/pfam"
	"tpsrank-core/textio"
)

// Record accumulates everything known about one candidate sequence. Fields
// stay at their explicit defaults (Unknown type, HasArch false, zero length)
// when the corresponding source has no row for the ID.
type Record struct {
	ID          string
	Distance    float64
	ClosestID   string
	Type        classify.Type
	Arch        pfam.Architecture
	HasArch     bool
	Length      int
	StartsWithM bool
}

// TableHeader is the canonical first line of a candidate table.
const TableHeader = "id\tdistance\tclosest characterized tps\ttype\tarchitecture"

// ArchPlaceholder marks a candidate with no architecture row. It is
// distinguishable from the empty architecture, which renders as [].
const ArchPlaceholder = "NA"

// FormatRow renders one candidate-table row without a trailing newline.
func FormatRow(r Record) string {
	arch := ArchPlaceholder
	if r.HasArch {
		arch = r.Arch.String()
	}
	return strings.Join([]string{
		r.ID,
		strconv.FormatFloat(r.Distance, 'g', -1, 64),
		r.ClosestID,
		string(r.Type),
		arch,
	}, "\t")
}

// ParseRow parses one non-header candidate-table row.
func ParseRow(line string) (Record, error) {
	f := strings.Split(line, "\t")
	if len(f) != 5 {
		return Record{}, fmt.Errorf("candidate row: %d columns, want 5", len(f))
	}
	d, err := strconv.ParseFloat(f[1], 64)
	if err != nil || d < 0 || math.IsNaN(d) {
		return Record{}, fmt.Errorf("candidate row: bad distance %q", f[1])
	}
	ty, ok := classify.ParseType(f[3])
	if !ok {
		return Record{}, fmt.Errorf("candidate row: bad type %q", f[3])
	}
	r := Record{ID: f[0], Distance: d, ClosestID: f[2], Type: ty}
	if f[4] != ArchPlaceholder {
		arch, err := pfam.ParseList(f[4])
		if err != nil {
			return Record{}, fmt.Errorf("candidate row: %w", err)
		}
		r.Arch, r.HasArch = arch, true
	}
	return r, nil
}

// ReadTable parses a full candidate table: the canonical header, then rows.
func ReadTable(r io.Reader) ([]Record, error) {
	sc := textio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("candidate table: empty input")
	}
	if sc.Text() != TableHeader {
		return nil, fmt.Errorf("candidate table: unexpected header %q", sc.Text())
	}
	var recs []Record
	ln := 1
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := ParseRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln, err)
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// LoadTable reads a candidate table from path ("-" = stdin, gzip by magic).
func LoadTable(path string) ([]Record, error) {
	rc, err := textio.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	recs, err := ReadTable(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
