// core/pfam/table.go
package pfam

import (
	"fmt"
	"io"
	"strings"

	"tpsrank-core/textio"
)

// BadRow records an architecture cell that failed to parse. The sequence
// keeps "no architecture" rather than failing the run.
type BadRow struct {
	Line int
	ID   string
	Err  error
}

// Table maps sequence IDs to their domain architecture. The first row seen
// for an ID wins.
type Table struct {
	archs map[string]Architecture
	order []string
	bad   []BadRow
}

// ReadTable parses the domain-scan report: tab-separated, ID at column 0,
// literal architecture list at column 1. '#' lines and blank lines are
// skipped; a line with fewer than two columns is a schema error, while an
// unparseable list cell only degrades that ID to "no architecture".
func ReadTable(r io.Reader) (*Table, error) {
	t := &Table{archs: make(map[string]Architecture)}
	sc := textio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < 2 {
			return nil, fmt.Errorf("architecture line %d: %d columns, want >= 2", ln, len(f))
		}
		id := strings.TrimSpace(f[0])
		if id == "" {
			return nil, fmt.Errorf("architecture line %d: empty sequence id", ln)
		}
		if _, dup := t.archs[id]; dup {
			continue
		}
		arch, err := ParseList(f[1])
		if err != nil {
			t.bad = append(t.bad, BadRow{Line: ln, ID: id, Err: err})
			continue
		}
		t.archs[id] = arch
		t.order = append(t.order, id)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTable reads a domain-scan report from path ("-" = stdin, gzip by
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

// Architecture returns the architecture for id and whether a parsed row
// existed.
func (t *Table) Architecture(id string) (Architecture, bool) {
	a, ok := t.archs[id]
	return a, ok
}

// IDs returns all IDs with a parsed architecture, in first-seen order.
func (t *Table) IDs() []string { return t.order }

// BadRows returns the rows whose list cell failed to parse.
func (t *Table) BadRows() []BadRow { return t.bad }

// Len returns the number of IDs with a parsed architecture.
func (t *Table) Len() int { return len(t.order) }
