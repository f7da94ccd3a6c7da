package hir

import "github.com/viant/llmcc/intern"

// HirId is a unit-local, dense, zero-based node identifier. HirId
// assignment is deterministic given identical source bytes and traversal
// order (spec section 4.3's determinism property).
type HirId int32

// SymId is a process-wide dense symbol identifier, defined here (rather
// than in package symbol) so HIR identifier nodes can reference a resolved
// symbol without an import cycle between hir and symbol.
type SymId int32

// NoSym marks an unresolved symbol reference.
const NoSym SymId = -1

// Node is one arena-allocated HIR record. Children are stored in source
// order; sibling byte ranges are non-overlapping and monotonically
// increasing (spec section 3 invariant).
type Node struct {
	ID        HirId
	KindID    string // front-end token-table identity (grammar node/field/text name)
	Kind      Kind
	Block     BlockKind
	Start     int
	End       int
	Parent    HirId
	Children  []HirId
	Field     string // field label under the parent, e.g. "name", "parameters", "body"

	// SymHint, when not SymNone, marks this node as a definition site the
	// Collector should turn into a Symbol of the corresponding kind.
	SymHint SymbolKind

	// Identifier-only fields.
	Name     intern.NameKey
	Resolved SymId // resolved definition, for a use-site identifier
	TypeSym  SymId // resolved type symbol, when this identifier is typed
}

// HasParent reports whether this node is not the unit root.
func (n *Node) HasParent() bool {
	return n.Parent >= 0
}

// NoParent is the sentinel parent id for a unit's root node.
const NoParent HirId = -1
