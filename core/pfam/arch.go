// core/pfam/arch.go
package pfam

import (
	"fmt"
	"strings"
)

// Architecture is the ordered domain-hit token sequence reported for one
// sequence, e.g. ["PF01397", "partial_PF03936"]. Order is significant and
// partial_ prefixes are preserved: no normalization happens anywhere.
type Architecture []string

// ParseList parses the literal bracket-quoted list encoding produced by the
// domain-scan report, e.g. ['PF01397', 'PF03936'] or [].
func ParseList(s string) (Architecture, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("architecture list: missing brackets in %q", s)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return Architecture{}, nil
	}
	parts := strings.Split(inner, ",")
	arch := make(Architecture, 0, len(parts))
	for _, p := range parts {
		tok, err := unquote(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("architecture list %q: %w", s, err)
		}
		arch = append(arch, tok)
	}
	return arch, nil
}

func unquote(s string) (string, error) {
	if len(s) < 2 {
		return "", fmt.Errorf("bad token %q", s)
	}
	q := s[0]
	if (q != '\'' && q != '"') || s[len(s)-1] != q {
		return "", fmt.Errorf("bad token %q", s)
	}
	tok := s[1 : len(s)-1]
	if tok == "" || strings.ContainsAny(tok, `'"`) {
		return "", fmt.Errorf("bad token %q", s)
	}
	return tok, nil
}

// String renders a in the same literal list encoding it was parsed from.
func (a Architecture) String() string {
	if len(a) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, tok := range a {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(tok)
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}

// Key returns a stable string for exact ordered comparison and map lookup.
func (a Architecture) Key() string { return strings.Join(a, "|") }
