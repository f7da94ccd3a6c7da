package query

import (
	"path"
	"strconv"
	"strings"

	"github.com/viant/llmcc/block"
	"github.com/viant/llmcc/project"
	"github.com/viant/llmcc/symbol"
)

// ComponentDepth selects the aggregation granularity (spec section 4.9).
type ComponentDepth int

const (
	DepthProject ComponentDepth = iota
	DepthCrate
	DepthModule
	DepthBlock // no aggregation: one render node per block
)

// Locator derives the crate/module a source path belongs to. The default
// implementation below is a pure path heuristic; the repository package's
// Cargo.toml/pyproject.toml-aware detector implements the same interface
// for real projects.
type Locator interface {
	CrateOf(path string) string
	ModuleOf(path string) string
}

// PathLocator derives crate := top-level path segment, module := the
// remaining dotted path with the extension stripped, matching spec
// section 4.9 step 1's "other languages" rule (Rust's Cargo.toml/mod.rs
// aware rules live in package repository instead).
type PathLocator struct{}

func (PathLocator) CrateOf(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return "unknown"
}

func (PathLocator) ModuleOf(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[i+1:]
	}
	ext := path.Ext(p)
	p = strings.TrimSuffix(p, ext)
	return strings.ReplaceAll(p, "/", "::")
}

// RenderNode is one node of the structured RenderGraph spec section 6
// names (the DOT/GraphViz text emitter reading this is external).
type RenderNode struct {
	ID    string
	Label string
	Type  string // "project", "crate", "module", or "block"
}

// RenderEdge is one aggregated, weighted edge between two component ids.
type RenderEdge struct {
	From          string
	To            string
	Weight        int
	Bidirectional bool
}

// RenderGraph is the core's aggregated-graph output (spec section 6):
// nodes, edges, and (here) the component membership each node id maps to.
type RenderGraph struct {
	Nodes         []RenderNode
	Edges         []RenderEdge
	ComponentTree map[string][]string // component id -> member block keys
}

// AggregateOptions configures Aggregate's filtering stages.
type AggregateOptions struct {
	Locator       Locator // nil defaults to PathLocator{}
	WeakThreshold int     // edges with weight below this are dropped (step 4)
	PageRankTopK  int     // 0 disables the PageRank visibility restriction (step 5)
}

type edgeKey struct{ from, to string }

// Aggregate implements spec section 4.9's six-step aggregation pipeline,
// staged the way crates/llmcc-dot/src/aggregate.rs's
// render_aggregated_graph is staged (build_component_mapping ->
// compute_pagerank_components -> aggregate_edges ->
// detect_bidirectional_edges -> filter_weak_edges ->
// determine_visible_components -> filter_edges_by_components /
// filter_nodes_by_edges), renamed to Go functions but in the same order.
func (e *Engine) Aggregate(depth ComponentDepth, opts AggregateOptions) *RenderGraph {
	locator := opts.Locator
	if locator == nil {
		locator = PathLocator{}
	}

	blockComponent, componentLabel, componentType := e.buildComponentMapping(depth, locator)

	var pagerankComponents map[string]bool
	if opts.PageRankTopK > 0 {
		pagerankComponents = e.pageRankTopComponents(blockComponent, opts.PageRankTopK)
	}

	weighted := aggregateEdges(e.rawBlockEdges(), blockComponent)
	bidirectional := detectBidirectionalEdges(weighted)
	for a, partners := range bidirectional {
		for b := range partners {
			delete(weighted, edgeKey{b, a})
		}
	}
	weighted = filterWeakEdges(weighted, opts.WeakThreshold)

	visible := determineVisibleComponents(blockComponent, pagerankComponents)

	var edges []RenderEdge
	for k, w := range weighted {
		if !visible[k.from] || !visible[k.to] {
			continue
		}
		isBidi := bidirectional[k.from] != nil && bidirectional[k.from][k.to]
		edges = append(edges, RenderEdge{From: k.from, To: k.to, Weight: w, Bidirectional: isBidi})
	}

	seen := make(map[string]bool)
	var nodes []RenderNode
	tree := make(map[string][]string)
	for blockKey, component := range blockComponent {
		if !visible[component] {
			continue
		}
		tree[component] = append(tree[component], blockKey)
		if seen[component] {
			continue
		}
		seen[component] = true
		nodes = append(nodes, RenderNode{ID: component, Label: componentLabel[component], Type: componentType})
	}

	return &RenderGraph{Nodes: nodes, Edges: edges, ComponentTree: tree}
}

// blockKey uniquely names a block across the whole project as
// "<unit>:<block>", used as the map key in every stage below.
func blockKey(unit symbol.UnitIndex, id block.BlockId) string {
	return strconv.Itoa(int(unit)) + ":" + strconv.Itoa(int(id))
}

// buildComponentMapping implements spec section 4.9 step 1: key every
// block by (crate, module, file, block) at the requested depth, via
// locator. Returns blockKey -> component id, component id -> label, and
// the component type string shared across the whole depth.
func (e *Engine) buildComponentMapping(depth ComponentDepth, locator Locator) (map[string]string, map[string]string, string) {
	blockComponent := make(map[string]string)
	componentLabel := make(map[string]string)
	var componentType string

	for _, u := range e.proj.Units {
		crate := locator.CrateOf(u.File.LogicalPath)
		module := locator.ModuleOf(u.File.LogicalPath)
		for _, b := range u.Graph.Blocks {
			key := blockKey(u.Index, b.ID)
			var id, label string
			switch depth {
			case DepthProject:
				id, label, componentType = "project", "project", "project"
			case DepthCrate:
				id, label, componentType = "crate_"+sanitize(crate), crate, "crate"
			case DepthModule:
				id = "mod_" + sanitize(crate) + "_" + sanitize(module)
				label = crate + "::" + module
				componentType = "module"
			default: // DepthBlock
				id, label, componentType = key, key, "block"
			}
			blockComponent[key] = id
			componentLabel[id] = label
		}
	}
	return blockComponent, componentLabel, componentType
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// rawBlockEdges gathers every same-unit and cross-unit Calls/DependsOn
// edge as (fromBlockKey, toBlockKey) pairs for aggregation.
func (e *Engine) rawBlockEdges() []edgeKey {
	var out []edgeKey
	for _, u := range e.proj.Units {
		for _, edge := range u.Graph.Edges {
			if edge.Kind != symbol.Calls && edge.Kind != symbol.DependsOn {
				continue
			}
			out = append(out, edgeKey{from: blockKey(u.Index, edge.From), to: blockKey(u.Index, edge.To)})
		}
	}
	for _, edge := range e.proj.CrossEdges {
		if edge.Kind != symbol.Calls && edge.Kind != symbol.DependsOn {
			continue
		}
		out = append(out, edgeKey{
			from: blockKey(edge.From.Unit, edge.From.Block),
			to:   blockKey(edge.To.Unit, edge.To.Block),
		})
	}
	return out
}

// aggregateEdges implements spec section 4.9 step 2: sum edge
// multiplicities by endpoint component key, dropping self-edges (an
// aggregated component never shows a dependency on itself).
func aggregateEdges(raw []edgeKey, blockComponent map[string]string) map[edgeKey]int {
	out := make(map[edgeKey]int)
	for _, e := range raw {
		from, ok1 := blockComponent[e.from]
		to, ok2 := blockComponent[e.to]
		if !ok1 || !ok2 || from == to {
			continue
		}
		out[edgeKey{from, to}]++
	}
	return out
}

// detectBidirectionalEdges implements spec section 4.9 step 3: returns,
// for each component pair present in both directions, a marker keyed by
// the lexicographically smaller endpoint first, so the caller can collapse
// the reverse edge into one bidirectional-annotated entry.
func detectBidirectionalEdges(weighted map[edgeKey]int) map[string]map[string]bool {
	out := make(map[string]map[string]bool)
	for k := range weighted {
		if _, ok := weighted[edgeKey{k.to, k.from}]; !ok {
			continue
		}
		if k.from > k.to {
			continue // handled from the (to, from) iteration instead
		}
		if out[k.from] == nil {
			out[k.from] = make(map[string]bool)
		}
		out[k.from][k.to] = true
	}
	return out
}

// filterWeakEdges implements spec section 4.9 step 4: drop edges whose
// weight is below threshold. threshold <= 0 disables filtering.
func filterWeakEdges(weighted map[edgeKey]int, threshold int) map[edgeKey]int {
	if threshold <= 0 {
		return weighted
	}
	out := make(map[edgeKey]int, len(weighted))
	for k, w := range weighted {
		if w >= threshold {
			out[k] = w
		}
	}
	return out
}

// determineVisibleComponents implements spec section 4.9 step 5: every
// component built in step 1 is visible by default; when a PageRank top-K
// restriction is active ("optionally restrict to components that contain
// at least one PageRank-top-K block"), only those are kept.
func determineVisibleComponents(blockComponent map[string]string, pagerankComponents map[string]bool) map[string]bool {
	visible := make(map[string]bool)
	for _, component := range blockComponent {
		visible[component] = true
	}
	if pagerankComponents == nil {
		return visible
	}
	out := make(map[string]bool)
	for id := range visible {
		if pagerankComponents[id] {
			out[id] = true
		}
	}
	return out
}

// pageRankTopComponents ranks every block, keeps the top K, and maps each
// to its component id via blockComponent.
func (e *Engine) pageRankTopComponents(blockComponent map[string]string, topK int) map[string]bool {
	ranks := e.PageRank()
	type scored struct {
		key  string
		rank float64
	}
	var all []scored
	for _, u := range e.proj.Units {
		for _, b := range u.Graph.Blocks {
			gid := project.GlobalBlockId{Unit: u.Index, Block: b.ID}
			all = append(all, scored{key: blockKey(u.Index, b.ID), rank: ranks[gid]})
		}
	}
	// Simple selection: project sizes in this exercise don't warrant a heap.
	out := make(map[string]bool)
	for i := 0; i < topK && len(all) > 0; i++ {
		best := 0
		for j := 1; j < len(all); j++ {
			if all[j].rank > all[best].rank {
				best = j
			}
		}
		if component, ok := blockComponent[all[best].key]; ok {
			out[component] = true
		}
		all = append(all[:best], all[best+1:]...)
	}
	return out
}
