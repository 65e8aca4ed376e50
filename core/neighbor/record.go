// core/neighbor/record.go
package neighbor

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"tpsrank-core/textio"
)

// DistanceRecord pairs an uncharacterized terminal with its nearest
// characterized terminal by tree-path distance.
type DistanceRecord struct {
	ID        string
	ClosestID string
	Distance  float64
}

// TableHeader is the canonical first line of a distance table. Every
// partition file and the aggregated table carry it exactly once.
const TableHeader = "uncharacterized tps\tclosest characterized tps\tdistance"

// FormatRow renders one table row without a trailing newline.
func FormatRow(r DistanceRecord) string {
	return r.ID + "\t" + r.ClosestID + "\t" + strconv.FormatFloat(r.Distance, 'g', -1, 64)
}

// ParseRow parses one non-header table row.
func ParseRow(line string) (DistanceRecord, error) {
	f := strings.Split(line, "\t")
	if len(f) != 3 {
		return DistanceRecord{}, fmt.Errorf("distance row: %d columns, want 3", len(f))
	}
	d, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return DistanceRecord{}, fmt.Errorf("distance row: bad distance %q", f[2])
	}
	if d < 0 || math.IsNaN(d) {
		return DistanceRecord{}, fmt.Errorf("distance row: invalid distance %v", d)
	}
	return DistanceRecord{ID: f[0], ClosestID: f[1], Distance: d}, nil
}

// ReadTable parses a full distance table: the canonical header line, then
// zero or more rows. Blank lines are skipped.
func ReadTable(r io.Reader) ([]DistanceRecord, error) {
	sc := textio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("distance table: empty input")
	}
	if sc.Text() != TableHeader {
		return nil, fmt.Errorf("distance table: unexpected header %q", sc.Text())
	}
	var recs []DistanceRecord
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

// LoadTable reads a distance table from path ("-" = stdin, gzip by magic).
func LoadTable(path string) ([]DistanceRecord, error) {
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
