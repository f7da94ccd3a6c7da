// Package project implements the project graph linker (spec section 4.8):
// unions every compilation unit's block graph, rebuilds a process-wide
// symbol-to-block index, and promotes symbol dependency edges that cross
// a unit boundary into cross-unit block edges. Grounded on
// crates/llmcc-core/src/lib.rs's ProjectGraph/UnitGraph/UnitNode re-exports
// for the union-of-units shape; the promotion algorithm itself follows
// spec section 4.8's four steps directly since the Rust source for this
// specific pass wasn't part of the retrieved example pack.
package project

import (
	"strings"

	"github.com/viant/llmcc/block"
	"github.com/viant/llmcc/hir"
	"github.com/viant/llmcc/source"
	"github.com/viant/llmcc/symbol"
)

// GlobalBlockId addresses a block across the whole project, pairing its
// owning unit with its unit-local BlockId.
type GlobalBlockId struct {
	Unit  symbol.UnitIndex
	Block block.BlockId
}

// CrossEdge is a dependency edge whose endpoints live in different units.
type CrossEdge struct {
	From GlobalBlockId
	To   GlobalBlockId
	Kind symbol.DepKind
}

// Unit bundles one compilation unit's already-built block graph with the
// HIR tree and source file it was built from, so the linker can re-read a
// call's callee text for the step-4 receiver-name fallback.
type Unit struct {
	Index symbol.UnitIndex
	Tree  *hir.Tree
	File  *source.File
	Graph *block.Graph
}

// Graph is the project-wide union of every unit's block graph plus the
// cross-unit edges promoted from the symbol table.
type Graph struct {
	Units      []*Unit
	CrossEdges []CrossEdge

	table      *symbol.Table
	blockOfSym map[hir.SymId]GlobalBlockId
}

// Link builds the project graph from already-bound units (spec section 4.8
// steps 1-4): index every named block by symbol, promote every symbol edge
// whose endpoints cross a unit boundary, then attempt one more resolution
// pass for calls Binder left unresolved, against the project-wide name
// index.
func Link(table *symbol.Table, units []*Unit) *Graph {
	g := &Graph{Units: units, table: table, blockOfSym: make(map[hir.SymId]GlobalBlockId)}
	g.indexBlocksBySymbol()
	g.promoteCrossUnitDependencies()
	g.resolveUnresolvedCalls()
	return g
}

// BlockOf returns the block that defines sym, if any (spec section 4.8
// step 2's rebuilt global index).
func (g *Graph) BlockOf(sym hir.SymId) (GlobalBlockId, bool) {
	id, ok := g.blockOfSym[sym]
	return id, ok
}

// BlockAt dereferences a GlobalBlockId to its BasicBlock.
func (g *Graph) BlockAt(id GlobalBlockId) *block.BasicBlock {
	for _, u := range g.Units {
		if u.Index != id.Unit {
			continue
		}
		for _, b := range u.Graph.Blocks {
			if b.ID == id.Block {
				return b
			}
		}
	}
	return nil
}

func (g *Graph) indexBlocksBySymbol() {
	for _, u := range g.Units {
		for _, b := range u.Graph.Blocks {
			if b.SymID != hir.NoSym {
				g.blockOfSym[b.SymID] = GlobalBlockId{Unit: u.Index, Block: b.ID}
			}
		}
	}
}

// promoteCrossUnitDependencies implements spec section 4.8 step 3: for
// every symbol S and every (T, kind) in S.depends, if T's defining block
// lives in a different unit than S's, add a cross-unit edge of the
// matching relation. Same-unit edges were already synthesized locally by
// block.Build and aren't duplicated here.
func (g *Graph) promoteCrossUnitDependencies() {
	for _, sym := range g.table.All() {
		fromBlock, ok := g.BlockOf(sym.ID)
		if !ok {
			continue
		}
		for _, dep := range sym.Depends() {
			toBlock, ok := g.BlockOf(dep.To)
			if !ok || toBlock.Unit == fromBlock.Unit {
				continue
			}
			g.CrossEdges = append(g.CrossEdges, CrossEdge{From: fromBlock, To: toBlock, Kind: dep.Kind})
		}
	}
}

// resolveUnresolvedCalls implements spec section 4.8 step 4: a call whose
// callee field Binder left unresolved (hir.Node.Resolved == hir.NoSym) gets
// one more attempt against the project-wide name index, keyed by the
// callee text's terminal segment (the receiver in a receiver.method chain
// Binder couldn't type locally is dropped, same as Binder's own terminal-
// segment fallback). A unique match adds a Calls edge, same-unit or cross.
func (g *Graph) resolveUnresolvedCalls() {
	nameIndex := make(map[string][]hir.SymId)
	for _, sym := range g.table.All() {
		if sym.IsGlobal && (sym.Kind == symbol.Function || sym.Kind == symbol.Method) {
			nameIndex[sym.Name] = append(nameIndex[sym.Name], sym.ID)
		}
	}

	for _, u := range g.Units {
		for _, b := range u.Graph.Blocks {
			if b.Kind != hir.BlockCall {
				continue
			}
			g.resolveCallBlock(u, b, nameIndex)
		}
	}
}

func (g *Graph) resolveCallBlock(u *Unit, b *block.BasicBlock, nameIndex map[string][]hir.SymId) {
	node := u.Tree.Node(b.HirID)
	if node == nil {
		return
	}
	for _, childID := range node.Children {
		child := u.Tree.Node(childID)
		if child == nil || child.Kind != hir.KindIdentifier {
			continue
		}
		if child.Field != "function" && child.Field != "callee" {
			continue
		}
		if child.Resolved != hir.NoSym {
			return
		}
		text, err := u.File.Text(child.Start, child.End)
		if err != nil || text == "" {
			return
		}
		matches := nameIndex[lastSegment(text)]
		if len(matches) != 1 {
			return
		}
		calleeID := matches[0]
		calleeBlock, ok := g.BlockOf(calleeID)
		if !ok {
			return
		}
		child.Resolved = calleeID
		if calleeBlock.Unit == u.Index {
			u.Graph.Edges = append(u.Graph.Edges, block.Edge{From: b.ID, To: calleeBlock.Block, Kind: symbol.Calls})
		} else {
			g.CrossEdges = append(g.CrossEdges, CrossEdge{From: GlobalBlockId{Unit: u.Index, Block: b.ID}, To: calleeBlock, Kind: symbol.Calls})
		}
		return
	}
}

func lastSegment(text string) string {
	sep := "::"
	if !strings.Contains(text, "::") && strings.Contains(text, ".") {
		sep = "."
	}
	parts := strings.Split(text, sep)
	return strings.TrimSpace(parts[len(parts)-1])
}
