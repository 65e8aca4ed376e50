// core/neighbor/set_test.go
package neighbor

import (
	"os"
	"path/filepath"
	"testing"
)

// File order is preserved; blanks and padding are tolerated.
func TestLoadCharacterizedSet(t *testing.T) {
	p := filepath.Join(t.TempDir(), "chars.txt")
	if err := os.WriteFile(p, []byte("  C1 \n\nC2\n\t\nC3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadCharacterizedSet(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ids := s.IDs()
	if len(ids) != 3 || ids[0] != "C1" || ids[1] != "C2" || ids[2] != "C3" {
		t.Fatalf("ids = %v", ids)
	}
	if !s.Contains("C2") || s.Contains("C9") {
		t.Fatalf("Contains misbehaves")
	}
}

// Duplicate IDs in the list are a data error.
func TestCharacterizedSetDuplicate(t *testing.T) {
	if _, err := NewCharacterizedSet([]string{"A", "B", "A"}); err == nil {
		t.Fatal("expected duplicate-id error")
	}
}

func TestCharacterizedSetEmptyFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(p, []byte("\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadCharacterizedSet(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
}
