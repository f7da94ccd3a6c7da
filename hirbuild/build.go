// Package hirbuild lowers a concrete tree-sitter tree into a hir.Tree,
// driven entirely by a token.Table so the walk itself stays
// language-neutral; only the table differs per front-end. The recursive
// descent (node.Type(), ChildByFieldName/FieldNameForChild, Content(src))
// is the teacher's tree-sitter idiom from
// inspector/golang/inspector_tree_sitter.go, generalized from a per-language
// hardcoded switch into a single table-driven walker.
package hirbuild

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/viant/llmcc/arena"
	"github.com/viant/llmcc/hir"
	"github.com/viant/llmcc/intern"
	"github.com/viant/llmcc/token"
)

// identifierKind is the token-table HIR kind treated as a leaf name token:
// its Content(src) is interned and stored on Node.Name.
var identifierKind = hir.KindIdentifier

// Build lowers root (a concrete tree's root node) into a fresh hir.Tree.
// src is the exact byte slice the tree was parsed from.
func Build(root *sitter.Node, src []byte, table *token.Table, interner *intern.Interner, handle *arena.Handle[hir.Node]) *hir.Tree {
	tree := hir.NewTree(handle)
	b := &builder{src: src, table: table, interner: interner, tree: tree}
	b.visit(root, hir.NoParent, "")
	return tree
}

type builder struct {
	src      []byte
	table    *token.Table
	interner *intern.Interner
	tree     *hir.Tree
}

// visit lowers node (and its subtree) under parent, labeled with field
// (the field name node carries under its parent, or "" at the root/for
// unlabeled children). It returns the new node's id, or hir.NoParent if the
// node was elided (unnamed syntax noise the table doesn't list).
func (b *builder) visit(node *sitter.Node, parent hir.HirId, field string) hir.HirId {
	entry, ok := b.table.Emit(node.Type(), node.IsNamed())
	if !ok {
		return hir.NoParent
	}

	kind := entry.HirKind
	if parent == hir.NoParent {
		kind = hir.KindFile
	}

	n := b.tree.New(entry.KindID, kind, entry.BlockKind, int(node.StartByte()), int(node.EndByte()), parent, field)
	n.SymHint = entry.SymbolHint

	if kind == identifierKind {
		n.Name = b.interner.InternBytes(b.src[node.StartByte():node.EndByte()])
	}

	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		childField := node.FieldNameForChild(i)
		if childField != "" {
			if e, ok := b.table.ResolveField(childField); ok {
				childField = e.Name
			}
		}
		b.visit(child, n.ID, childField)
	}

	return n.ID
}
