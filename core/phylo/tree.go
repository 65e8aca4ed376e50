// core/phylo/tree.go
package phylo

// Node is one vertex of a rooted tree. Terminal nodes carry the sequence
// name from the input; labels on internal nodes are kept but never indexed.
type Node struct {
	Name     string
	Length   float64 // branch length to the parent; 0 at the root
	Parent   *Node
	Children []*Node

	depth    int
	fromRoot float64 // cumulative branch length root -> node
}

// Terminal reports whether n has no children.
func (n *Node) Terminal() bool { return len(n.Children) == 0 }

// Tree is a rooted phylogram. It is immutable after construction and safe
// to share read-only across goroutines. Terminal-name uniqueness is NOT a
// parse-time requirement; callers that need unique names enforce it against
// Lookup results.
type Tree struct {
	root      *Node
	terminals []*Node            // input (left-to-right) order
	byName    map[string][]*Node // terminal name -> nodes, input order
}

func newTree(root *Node) *Tree {
	t := &Tree{root: root, byName: make(map[string][]*Node)}
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Parent != nil {
			n.depth = n.Parent.depth + 1
			n.fromRoot = n.Parent.fromRoot + n.Length
		}
		if n.Terminal() {
			t.terminals = append(t.terminals, n)
			t.byName[n.Name] = append(t.byName[n.Name], n)
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return t
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root }

// Terminals returns all terminal nodes in input order. The slice is shared;
// callers must not modify it.
func (t *Tree) Terminals() []*Node { return t.terminals }

// NumTerminals returns the terminal-node count.
func (t *Tree) NumTerminals() int { return len(t.terminals) }

// Lookup returns the terminal nodes named name, in input order.
// len==0 means unknown; len>1 means the name is ambiguous in this tree.
func (t *Tree) Lookup(name string) []*Node { return t.byName[name] }

// Distance returns the sum of branch lengths along the unique path between
// two nodes of the same tree.
func (t *Tree) Distance(a, b *Node) float64 {
	l := lca(a, b)
	return a.fromRoot + b.fromRoot - 2*l.fromRoot
}

func lca(a, b *Node) *Node {
	for a.depth > b.depth {
		a = a.Parent
	}
	for b.depth > a.depth {
		b = b.Parent
	}
	for a != b {
		a, b = a.Parent, b.Parent
	}
	return a
}
