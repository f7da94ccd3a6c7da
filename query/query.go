// Package query implements the depends/dependents lookups, PageRank, and
// crate/module/project aggregation the project graph is built to answer
// (spec section 4.9). Grounded on spec section 4.9 and, for the
// aggregation pipeline's stage order, on
// crates/llmcc-dot/src/aggregate.rs's render_aggregated_graph (the DOT
// text emitter itself is an explicit Non-goal; this package stops at the
// structured RenderGraph spec section 6 names).
package query

import (
	"github.com/viant/llmcc/hir"
	"github.com/viant/llmcc/project"
	"github.com/viant/llmcc/symbol"
)

// Engine answers queries against an already-linked project graph.
type Engine struct {
	table *symbol.Table
	proj  *project.Graph
}

// New creates an Engine over table and proj, both already fully built.
func New(table *symbol.Table, proj *project.Graph) *Engine {
	return &Engine{table: table, proj: proj}
}

// BlockResult is one rendered hit: `<kind> <short-name>
// [<path>:<start_line>-<end_line>]` plus, unless summary mode, the
// verbatim source text (spec section 6's query result format).
type BlockResult struct {
	Kind      symbol.Kind
	Name      string
	FQN       string
	Path      string
	StartLine int
	EndLine   int
	Text      string // empty in summary mode
}

// Depends returns the symbols that the symbol(s) named name directly
// depend on (one hop), rendered as blocks.
func (e *Engine) Depends(name string, summary bool) []BlockResult {
	var out []BlockResult
	for _, id := range e.roots(name) {
		sym := e.table.Get(id)
		if sym == nil {
			continue
		}
		for _, dep := range sym.Depends() {
			if r, ok := e.render(dep.To, summary); ok {
				out = append(out, r)
			}
		}
	}
	return out
}

// DependsRecursive returns the transitive closure of Depends over name,
// via BFS, excluding name's own symbol(s) unless reachable through a cycle
// back to themselves (spec section 8 property 7).
func (e *Engine) DependsRecursive(name string, summary bool) []BlockResult {
	return e.bfs(e.roots(name), summary, func(id hir.SymId) []hir.SymId {
		sym := e.table.Get(id)
		if sym == nil {
			return nil
		}
		var next []hir.SymId
		for _, dep := range sym.Depends() {
			next = append(next, dep.To)
		}
		return next
	})
}

// Dependents returns the symbols that directly depend on name (the
// inverse of Depends).
func (e *Engine) Dependents(name string, summary bool) []BlockResult {
	var out []BlockResult
	for _, id := range e.roots(name) {
		sym := e.table.Get(id)
		if sym == nil {
			continue
		}
		for _, from := range sym.DependedBy() {
			if r, ok := e.render(from, summary); ok {
				out = append(out, r)
			}
		}
	}
	return out
}

// DependentsRecursive is DependsRecursive's inverse: the transitive
// closure over DependedBy.
func (e *Engine) DependentsRecursive(name string, summary bool) []BlockResult {
	return e.bfs(e.roots(name), summary, func(id hir.SymId) []hir.SymId {
		sym := e.table.Get(id)
		if sym == nil {
			return nil
		}
		return sym.DependedBy()
	})
}

// roots resolves name to every symbol sharing that FQN (usually one; more
// than one only for an ambiguous/colliding name, spec section 7's
// "ambiguous resolutions... a diagnostic is logged but the compile
// continues").
func (e *Engine) roots(name string) []hir.SymId {
	return e.table.FindByName(name)
}

// bfs walks the closure of neighbors starting from roots, excluding the
// roots themselves from the result unless reached back via an edge (spec
// section 8 property 7: "excludes X itself unless reachable via a
// cycle"), and renders every other visited id exactly once.
func (e *Engine) bfs(roots []hir.SymId, summary bool, neighbors func(hir.SymId) []hir.SymId) []BlockResult {
	rootSet := make(map[hir.SymId]bool, len(roots))
	for _, id := range roots {
		rootSet[id] = true
	}

	visited := make(map[hir.SymId]bool, len(roots))
	for _, id := range roots {
		visited[id] = true
	}
	rendered := make(map[hir.SymId]bool, len(roots))

	var out []BlockResult
	queue := append([]hir.SymId(nil), roots...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range neighbors(id) {
			if rootSet[next] {
				// Rediscovering a root through an edge, rather than as one
				// of the initial seeds, proves it sits on a cycle back to
				// itself: render it once, but never re-enqueue it since
				// its neighbors were already walked when it was seeded.
				if !rendered[next] {
					rendered[next] = true
					if r, ok := e.render(next, summary); ok {
						out = append(out, r)
					}
				}
				continue
			}
			if visited[next] {
				continue
			}
			visited[next] = true
			rendered[next] = true
			if r, ok := e.render(next, summary); ok {
				out = append(out, r)
			}
			queue = append(queue, next)
		}
	}
	return out
}

// render locates symID's defining block via the project graph and formats
// it as a BlockResult.
func (e *Engine) render(symID hir.SymId, summary bool) (BlockResult, bool) {
	sym := e.table.Get(symID)
	if sym == nil {
		return BlockResult{}, false
	}
	globalID, ok := e.proj.BlockOf(symID)
	if !ok {
		return BlockResult{}, false
	}
	b := e.proj.BlockAt(globalID)
	if b == nil {
		return BlockResult{}, false
	}

	var path string
	var startLine, endLine int
	var text string
	for _, u := range e.proj.Units {
		if u.Index != globalID.Unit {
			continue
		}
		path = u.File.LogicalPath
		startLine = u.File.LineOf(b.Start)
		endLine = u.File.LineOf(b.End)
		if !summary {
			text, _ = u.File.Text(b.Start, b.End)
		}
		break
	}

	return BlockResult{
		Kind:      sym.Kind,
		Name:      sym.Name,
		FQN:       sym.FQN,
		Path:      path,
		StartLine: startLine,
		EndLine:   endLine,
		Text:      text,
	}, true
}
