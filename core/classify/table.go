// core/classify/table.go
package classify

import (
	"fmt"
	"io"
	"strings"

	"tpsrank-core/textio"
)

// Columns of the classifier's tab-separated report. The sequence ID and the
// winning model label sit at fixed offsets; other columns are ignored.
const (
	colSeqID = 0
	colModel = 2
)

// Table maps sequence IDs to their predicted type. The first row seen for
// an ID wins; later rows for the same ID are ignored.
type Table struct {
	types map[string]Type
	order []string
}

// ReadTable parses a classification report. Lines starting with '#' and
// blank lines are skipped; any other line with fewer than three columns is
// a schema error.
func ReadTable(r io.Reader) (*Table, error) {
	t := &Table{types: make(map[string]Type)}
	sc := textio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) <= colModel {
			return nil, fmt.Errorf("classification line %d: %d columns, want >= %d", ln, len(f), colModel+1)
		}
		id := strings.TrimSpace(f[colSeqID])
		if id == "" {
			return nil, fmt.Errorf("classification line %d: empty sequence id", ln)
		}
		if _, dup := t.types[id]; dup {
			continue
		}
		t.types[id] = NormalizeLabel(strings.TrimSpace(f[colModel]))
		t.order = append(t.order, id)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTable reads a classification report from path ("-" = stdin, gzip by
// magic).
func LoadTable(path string) (*Table, error) {
	rc, err := textio.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	t, err := ReadTable(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Type returns the predicted type for id and whether a row existed.
func (t *Table) Type(id string) (Type, bool) {
	ty, ok := t.types[id]
	return ty, ok
}

// IDs returns all classified IDs in first-seen order.
func (t *Table) IDs() []string { return t.order }

// Len returns the number of distinct classified IDs.
func (t *Table) Len() int { return len(t.order) }
