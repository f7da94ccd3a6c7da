package snapshot

import (
	"sort"

	"github.com/viant/llmcc/block"
	"github.com/viant/llmcc/project"
	"github.com/viant/llmcc/symbol"
)

// SymbolRow is one symbol rendered for comparison: fqn/kind/unit plus its
// sorted dependency edges, spelled out so two runs with different SymId
// assignments (spec section 5: SymId order is not deterministic across
// units) still produce identical YAML.
type SymbolRow struct {
	FQN     string
	Kind    string
	Unit    int32
	Depends []string `yaml:"depends,omitempty"`
}

// SymbolsSnapshot captures every symbol in table as a FQN-sorted view,
// mirroring crates/llmcc-test/src/snapshot/symbols.rs's SymbolsSnapshot.
func SymbolsSnapshot(table *symbol.Table) []SymbolRow {
	symbols := table.All()
	byID := make(map[int64]*symbol.Symbol, len(symbols))
	for _, sym := range symbols {
		byID[int64(sym.ID)] = sym
	}

	rows := make([]SymbolRow, 0, len(symbols))
	for _, sym := range symbols {
		deps := sym.Depends()
		edges := make([]string, 0, len(deps))
		for _, dep := range deps {
			if target, ok := byID[int64(dep.To)]; ok {
				edges = append(edges, dep.Kind.String()+" "+target.FQN)
			}
		}
		sort.Strings(edges)
		rows = append(rows, SymbolRow{
			FQN:     sym.FQN,
			Kind:    sym.Kind.String(),
			Unit:    int32(sym.Unit),
			Depends: edges,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].FQN < rows[j].FQN })
	return rows
}

// BlockRow is one basic block rendered for comparison, addressed by its
// defining symbol's FQN rather than its unit-local BlockId so the view is
// stable across runs.
type BlockRow struct {
	FQN    string `yaml:"fqn,omitempty"`
	Kind   string
	Parent string `yaml:"parent,omitempty"`
}

// BlockEdgeRow is one intra-unit block edge, addressed the same way.
type BlockEdgeRow struct {
	From string
	To   string
	Kind string
}

// BlockGraphSnapshot captures one unit's block graph, mirroring
// crates/llmcc-test/src/snapshot/block_graph.rs's BlockGraphSnapshot.
// Anonymous blocks (bare call sites, hir.NoSym) render with an empty FQN
// rather than being dropped, since edges may still reference them.
func BlockGraphSnapshot(table *symbol.Table, g *block.Graph) (blocks []BlockRow, edges []BlockEdgeRow) {
	label := func(id block.BlockId) string {
		if id == block.NoBlock || int(id) >= len(g.Blocks) {
			return ""
		}
		b := g.Blocks[id]
		if sym := table.Get(b.SymID); sym != nil {
			return sym.FQN
		}
		return ""
	}

	for _, b := range g.Blocks {
		blocks = append(blocks, BlockRow{
			FQN:    label(b.ID),
			Kind:   b.Kind.String(),
			Parent: label(b.Parent),
		})
	}
	for _, e := range g.Edges {
		edges = append(edges, BlockEdgeRow{From: label(e.From), To: label(e.To), Kind: e.Kind.String()})
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].FQN < blocks[j].FQN })
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return blocks, edges
}

// CrossEdgeRow is one project-level cross-unit edge, addressed by the FQN
// of each endpoint's defining symbol.
type CrossEdgeRow struct {
	From string
	To   string
	Kind string
}

// BlockRelationsSnapshot captures every cross-unit edge project.Link
// promoted, mirroring crates/llmcc-test/src/snapshot/block_relations.rs's
// BlockRelationsSnapshot.
func BlockRelationsSnapshot(table *symbol.Table, g *project.Graph) []CrossEdgeRow {
	label := func(gb project.GlobalBlockId) string {
		for _, u := range g.Units {
			if u.Index != gb.Unit {
				continue
			}
			if int(gb.Block) >= len(u.Graph.Blocks) {
				return ""
			}
			b := u.Graph.Blocks[gb.Block]
			if sym := table.Get(b.SymID); sym != nil {
				return sym.FQN
			}
		}
		return ""
	}

	rows := make([]CrossEdgeRow, 0, len(g.CrossEdges))
	for _, e := range g.CrossEdges {
		rows = append(rows, CrossEdgeRow{From: label(e.From), To: label(e.To), Kind: e.Kind.String()})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].From != rows[j].From {
			return rows[i].From < rows[j].From
		}
		return rows[i].To < rows[j].To
	})
	return rows
}
