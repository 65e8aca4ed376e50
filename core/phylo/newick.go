// core/phylo/newick.go
package phylo

import (
	"fmt"
	"io"
	"strconv"

	"tpsrank-core/textio"
)

// Parse reads a single rooted tree in Newick form: nested parentheses,
// unquoted labels, optional ":length" branch lengths, terminated by ';'.
// Labels on internal nodes are tolerated. Branch lengths must be >= 0.
func Parse(data []byte) (*Tree, error) {
	p := &parser{data: data}
	p.skipSpace()
	if p.pos == len(p.data) {
		return nil, fmt.Errorf("newick: empty input")
	}
	root, err := p.parseClade()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() != ';' {
		return nil, p.errf("missing ';' terminator")
	}
	p.pos++
	p.skipSpace()
	if p.pos != len(p.data) {
		return nil, p.errf("trailing data after ';'")
	}
	return newTree(root), nil
}

// Read parses one tree from r.
func Read(r io.Reader) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("newick: %w", err)
	}
	return Parse(data)
}

// Load parses one tree from path ("-" = stdin, gzip detected by magic).
func Load(path string) (*Tree, error) {
	rc, err := textio.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	t, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

type parser struct {
	data []byte
	pos  int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.data) {
		return 0
	}
	return p.data[p.pos]
}

func (p *parser) errf(format string, args ...interface{}) error {
	return fmt.Errorf("newick: offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) parseClade() (*Node, error) {
	p.skipSpace()
	n := &Node{}
	if p.peek() == '(' {
		p.pos++
		for {
			child, err := p.parseClade()
			if err != nil {
				return nil, err
			}
			child.Parent = n
			n.Children = append(n.Children, child)
			p.skipSpace()
			if p.peek() == ',' {
				p.pos++
				continue
			}
			if p.peek() != ')' {
				return nil, p.errf("expected ',' or ')'")
			}
			p.pos++
			break
		}
	}
	n.Name = p.parseLabel()
	if n.Terminal() && n.Name == "" {
		return nil, p.errf("unnamed terminal node")
	}
	p.skipSpace()
	if p.peek() == ':' {
		p.pos++
		l, err := p.parseLength()
		if err != nil {
			return nil, err
		}
		if l < 0 {
			return nil, p.errf("negative branch length %v", l)
		}
		n.Length = l
	}
	return n, nil
}

func (p *parser) parseLabel() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case '(', ')', ',', ':', ';', ' ', '\t', '\r', '\n':
			return string(p.data[start:p.pos])
		}
		p.pos++
	}
	return string(p.data[start:p.pos])
}

func (p *parser) parseLength() (float64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			p.pos++
			continue
		}
		break
	}
	if start == p.pos {
		return 0, p.errf("missing branch length after ':'")
	}
	v, err := strconv.ParseFloat(string(p.data[start:p.pos]), 64)
	if err != nil {
		return 0, p.errf("bad branch length %q", string(p.data[start:p.pos]))
	}
	return v, nil
}
