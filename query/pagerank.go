package query

import (
	"github.com/viant/llmcc/project"
	"github.com/viant/llmcc/symbol"
)

// pageRankDamping and convergence thresholds per spec section 4.9.
const (
	pageRankDamping       = 0.85
	pageRankMaxIterations = 100
	pageRankEpsilon       = 1e-6
)

// PageRank computes PageRank over the project-wide block graph, with
// Calls ∪ DependsOn edges (from every unit's local graph plus the
// project's cross-unit edges) as the adjacency. Dangling nodes (no
// outgoing edge in the considered kinds) contribute no redistributed mass
// — an Open Question decision, see DESIGN.md.
func (e *Engine) PageRank() map[project.GlobalBlockId]float64 {
	nodes, outgoing := e.rankAdjacency()
	n := len(nodes)
	if n == 0 {
		return map[project.GlobalBlockId]float64{}
	}

	rank := make(map[project.GlobalBlockId]float64, n)
	for _, id := range nodes {
		rank[id] = 1.0 / float64(n)
	}

	incoming := make(map[project.GlobalBlockId][]project.GlobalBlockId)
	outDeg := make(map[project.GlobalBlockId]int)
	for from, tos := range outgoing {
		outDeg[from] = len(tos)
		for _, to := range tos {
			incoming[to] = append(incoming[to], from)
		}
	}

	teleport := (1 - pageRankDamping) / float64(n)
	for iter := 0; iter < pageRankMaxIterations; iter++ {
		next := make(map[project.GlobalBlockId]float64, n)
		delta := 0.0
		for _, id := range nodes {
			sum := 0.0
			for _, from := range incoming[id] {
				if d := outDeg[from]; d > 0 {
					sum += rank[from] / float64(d)
				}
			}
			v := teleport + pageRankDamping*sum
			next[id] = v
			diff := v - rank[id]
			if diff < 0 {
				diff = -diff
			}
			delta += diff
		}
		rank = next
		if delta < pageRankEpsilon {
			break
		}
	}
	return rank
}

// rankAdjacency collects every block in the project plus its Calls/
// DependsOn out-edges, combining each unit's local block.Edges with the
// project's promoted CrossEdges.
func (e *Engine) rankAdjacency() ([]project.GlobalBlockId, map[project.GlobalBlockId][]project.GlobalBlockId) {
	var nodes []project.GlobalBlockId
	outgoing := make(map[project.GlobalBlockId][]project.GlobalBlockId)

	for _, u := range e.proj.Units {
		for _, b := range u.Graph.Blocks {
			nodes = append(nodes, project.GlobalBlockId{Unit: u.Index, Block: b.ID})
		}
		for _, edge := range u.Graph.Edges {
			if edge.Kind != symbol.Calls && edge.Kind != symbol.DependsOn {
				continue
			}
			from := project.GlobalBlockId{Unit: u.Index, Block: edge.From}
			to := project.GlobalBlockId{Unit: u.Index, Block: edge.To}
			outgoing[from] = append(outgoing[from], to)
		}
	}
	for _, edge := range e.proj.CrossEdges {
		if edge.Kind != symbol.Calls && edge.Kind != symbol.DependsOn {
			continue
		}
		outgoing[edge.From] = append(outgoing[edge.From], edge.To)
	}

	return nodes, outgoing
}
