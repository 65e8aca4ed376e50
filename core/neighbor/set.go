// core/neighbor/set.go
package neighbor

import (
	"fmt"
	"strings"

	"tpsrank-core/textio"
)

// CharacterizedSet is the ordered list of functionally characterized
// sequence IDs. Order is file order; it decides distance ties.
type CharacterizedSet struct {
	ids []string
	idx map[string]int
}

// NewCharacterizedSet builds a set from ids, rejecting duplicates.
func NewCharacterizedSet(ids []string) (*CharacterizedSet, error) {
	s := &CharacterizedSet{idx: make(map[string]int, len(ids))}
	for _, id := range ids {
		if _, dup := s.idx[id]; dup {
			return nil, fmt.Errorf("characterized set: duplicate id %q", id)
		}
		s.idx[id] = len(s.ids)
		s.ids = append(s.ids, id)
	}
	return s, nil
}

// LoadCharacterizedSet reads one ID per line ("-" = stdin, gzip by magic).
// Surrounding whitespace is trimmed; blank lines are skipped.
func LoadCharacterizedSet(path string) (*CharacterizedSet, error) {
	rc, err := textio.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var ids []string
	sc := textio.NewScanner(rc)
	for sc.Scan() {
		id := strings.TrimSpace(sc.Text())
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s, err := NewCharacterizedSet(ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// IDs returns the set in file order. The slice is shared; callers must not
// modify it.
func (s *CharacterizedSet) IDs() []string { return s.ids }

// Contains reports membership.
func (s *CharacterizedSet) Contains(id string) bool {
	_, ok := s.idx[id]
	return ok
}

// Len returns the number of IDs.
func (s *CharacterizedSet) Len() int { return len(s.ids) }
