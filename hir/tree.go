package hir

import "github.com/viant/llmcc/arena"

// Tree is one compilation unit's arena-allocated HIR node tree, addressed
// by dense HirId. In a target without bump-arenas, this is the "per-unit
// vector of nodes addressed by dense HirId" spec section 9 describes as the
// equivalent; here it's backed by an arena.Handle for parallel per-file
// construction across a worker pool.
type Tree struct {
	handle *arena.Handle[Node]
	byID   []*Node
	root   HirId
}

// NewTree creates an empty Tree backed by handle.
func NewTree(handle *arena.Handle[Node]) *Tree {
	return &Tree{handle: handle, root: NoParent}
}

// New allocates a new Node, assigns it the next dense HirId, and records it
// by id. parent is NoParent for the unit root.
func (t *Tree) New(kindID string, kind Kind, block BlockKind, start, end int, parent HirId, field string) *Node {
	n := t.handle.Alloc()
	n.ID = HirId(len(t.byID))
	n.KindID = kindID
	n.Kind = kind
	n.Block = block
	n.Start = start
	n.End = end
	n.Parent = parent
	n.Field = field
	n.Resolved = NoSym
	n.TypeSym = NoSym
	t.byID = append(t.byID, n)
	if parent >= 0 {
		p := t.byID[parent]
		p.Children = append(p.Children, n.ID)
	} else {
		t.root = n.ID
	}
	return n
}

// Node returns the node for id, or nil if out of range.
func (t *Tree) Node(id HirId) *Node {
	if id < 0 || int(id) >= len(t.byID) {
		return nil
	}
	return t.byID[id]
}

// Root returns the unit's root node id (NoParent if the tree is empty).
func (t *Tree) Root() HirId {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.byID)
}

// Walk visits every node in the subtree rooted at id, parent before children,
// children in source order.
func (t *Tree) Walk(id HirId, visit func(*Node)) {
	n := t.Node(id)
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		t.Walk(c, visit)
	}
}
