// Package block builds the per-unit block graph (spec section 4.7): one
// BasicBlock per HIR node whose token-table entry carries a block_kind,
// with Contains edges from HIR nesting and Calls/DependsOn edges copied
// from the symbol dependency graph Binder already built. Grounded on the
// teacher's analyzer/graph_exporter.go IRNode/IREdge/IRGraph shape,
// specialized from free-form Properties to the typed Relation vocabulary
// symbol.DepKind already defines.
package block

import (
	"github.com/viant/llmcc/hir"
	"github.com/viant/llmcc/symbol"
)

// BlockId is a unit-local, dense, zero-based block identifier.
type BlockId int32

// NoBlock marks the absence of an enclosing block (the unit root's parent).
const NoBlock BlockId = -1

// Relation labels an edge between two blocks; it reuses symbol.DepKind's
// vocabulary so the project linker (C11) can promote a symbol edge to a
// block edge without a translation table.
type Relation = symbol.DepKind

// BasicBlock is one block-bearing HIR node, addressable unit-locally by Id
// and, once the project graph unions units together, by (Unit, Id).
type BasicBlock struct {
	ID     BlockId
	Unit   symbol.UnitIndex
	HirID  hir.HirId
	Kind   hir.BlockKind
	Start  int
	End    int
	Parent BlockId   // NoBlock for the unit root block
	SymID  hir.SymId // hir.NoSym for an anonymous block (e.g. a bare Call site)
}

// Edge is one directed edge between two unit-local blocks.
type Edge struct {
	From BlockId
	To   BlockId
	Kind Relation
}

// Graph is one compilation unit's block graph.
type Graph struct {
	Unit   symbol.UnitIndex
	Blocks []*BasicBlock
	Edges  []Edge

	byHir map[hir.HirId]BlockId
}

// BlockFor returns the block registered at hirID, if any.
func (g *Graph) BlockFor(hirID hir.HirId) (BlockId, bool) {
	id, ok := g.byHir[hirID]
	return id, ok
}

// Build walks tree once, emitting a BasicBlock at every block-bearing node
// and a Contains edge to its nearest block-bearing ancestor, then overlays
// Calls/DependsOn edges synthesized from the symbol table table already
// built (spec section 4.7's two "synthesized locally" rules).
func Build(tree *hir.Tree, table *symbol.Table, unit symbol.UnitIndex) *Graph {
	g := &Graph{Unit: unit, byHir: make(map[hir.HirId]BlockId)}
	root := tree.Node(tree.Root())
	if root == nil {
		return g
	}
	g.walk(tree, root, unit, table, NoBlock)
	g.copyDependsOnEdges(table)
	return g
}

func (g *Graph) walk(tree *hir.Tree, node *hir.Node, unit symbol.UnitIndex, table *symbol.Table, parent BlockId) {
	next := parent
	if node.Block != hir.BlockNone {
		symID := hir.NoSym
		if id, isDef := table.FindByOwner(unit, node.ID); isDef {
			symID = id
		}

		b := &BasicBlock{
			ID:     BlockId(len(g.Blocks)),
			Unit:   g.Unit,
			HirID:  node.ID,
			Kind:   node.Block,
			Start:  node.Start,
			End:    node.End,
			Parent: parent,
			SymID:  symID,
		}
		g.Blocks = append(g.Blocks, b)
		g.byHir[node.ID] = b.ID
		if parent != NoBlock {
			g.Edges = append(g.Edges, Edge{From: b.ID, To: parent, Kind: symbol.Contains})
		}
		next = b.ID

		if node.Block == hir.BlockCall {
			g.synthesizeCallEdge(tree, node, table, b.ID)
		}
	}

	for _, childID := range node.Children {
		if child := tree.Node(childID); child != nil {
			g.walk(tree, child, unit, table, next)
		}
	}
}

// synthesizeCallEdge resolves a Call block's callee via the hir.Node.Resolved
// field Binder already populated, adding a Calls edge only when the
// callee's defining block is in this same unit (spec section 4.7's first
// synthesized-edge rule); cross-unit calls are the project linker's job
// (spec section 4.8 step 3).
func (g *Graph) synthesizeCallEdge(tree *hir.Tree, call *hir.Node, table *symbol.Table, callBlock BlockId) {
	for _, childID := range call.Children {
		child := tree.Node(childID)
		if child == nil || (child.Field != "function" && child.Field != "callee") {
			continue
		}
		if child.Resolved == hir.NoSym {
			return
		}
		callee := table.Get(child.Resolved)
		if callee == nil || callee.Unit != g.Unit {
			return
		}
		if calleeBlock, ok := g.byHir[callee.OwnerHir]; ok {
			g.Edges = append(g.Edges, Edge{From: callBlock, To: calleeBlock, Kind: symbol.Calls})
		}
		return
	}
}

// copyDependsOnEdges copies every named block's symbol's depends set as
// DependsOn block edges, restricted to targets whose defining block lives
// in this same unit (spec section 4.7's second synthesized-edge rule). The
// original edge kind (Calls, Uses, Returns, ...) is collapsed to DependsOn
// here since this is the coarse function-to-function view; the precise
// per-call-site Calls edge is synthesizeCallEdge's job.
func (g *Graph) copyDependsOnEdges(table *symbol.Table) {
	bySym := make(map[hir.SymId]BlockId, len(g.Blocks))
	for _, b := range g.Blocks {
		if b.SymID != hir.NoSym {
			bySym[b.SymID] = b.ID
		}
	}

	for _, b := range g.Blocks {
		if b.SymID == hir.NoSym {
			continue
		}
		sym := table.Get(b.SymID)
		if sym == nil {
			continue
		}
		for _, dep := range sym.Depends() {
			target := table.Get(dep.To)
			if target == nil || target.Unit != g.Unit {
				continue
			}
			toBlock, ok := bySym[dep.To]
			if !ok {
				continue
			}
			g.Edges = append(g.Edges, Edge{From: b.ID, To: toBlock, Kind: symbol.DependsOn})
		}
	}
}
