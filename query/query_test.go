package query

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/stretchr/testify/require"

	"github.com/viant/llmcc/arena"
	"github.com/viant/llmcc/bind"
	"github.com/viant/llmcc/block"
	"github.com/viant/llmcc/collect"
	"github.com/viant/llmcc/descriptor"
	"github.com/viant/llmcc/hir"
	"github.com/viant/llmcc/hirbuild"
	"github.com/viant/llmcc/intern"
	"github.com/viant/llmcc/project"
	"github.com/viant/llmcc/source"
	"github.com/viant/llmcc/symbol"
	"github.com/viant/llmcc/token"
)

const pythonTokens = `
default_hir_kind = "Internal"

[[nodes]]
ts_name = "module"
hir_kind = "Scope"
block_kind = "Root"

[[nodes]]
ts_name = "function_definition"
hir_kind = "Scope"
block_kind = "Func"
symbol_kind = "Function"

[[nodes]]
ts_name = "call"
hir_kind = "Internal"
block_kind = "Call"

[[nodes]]
ts_name = "identifier"
hir_kind = "Identifier"
`

func buildUnit(t *testing.T, table *symbol.Table, unitIndex symbol.UnitIndex, unitName, src string) *project.Unit {
	t.Helper()
	cfg, err := token.Decode([]byte(pythonTokens))
	require.NoError(t, err)
	tokenTable := token.NewTable(cfg)

	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	ctree, err := p.ParseCtx(context.Background(), nil, []byte(src))
	require.NoError(t, err)

	file, err := source.NewContent([]byte(src))
	require.NoError(t, err)
	file.LogicalPath = unitName + ".py"

	pool := arena.NewPool[hir.Node](0)
	tree := hirbuild.Build(ctree.RootNode(), file.Content(), tokenTable, intern.New(), pool.Get())

	c := collect.New(table, 1)
	_ = c.Collect(tree, file, unitIndex, unitName)

	b := bind.New(table, descriptor.LangPython)
	b.Bind(tree, file, unitIndex)

	graph := block.Build(tree, table, unitIndex)
	return &project.Unit{Index: unitIndex, Tree: tree, File: file, Graph: graph}
}

func buildEngine(t *testing.T) *Engine {
	t.Helper()
	table := symbol.NewTable()
	a := buildUnit(t, table, 0, "a", "def c():\n    pass\n\ndef b():\n    c()\n")
	proj := project.Link(table, []*project.Unit{a})
	return New(table, proj)
}

func TestDependsAndDependents(t *testing.T) {
	e := buildEngine(t)

	deps := e.Depends("a::b", false)
	require.Len(t, deps, 1)
	require.Equal(t, "c", deps[0].Name)
	require.NotEmpty(t, deps[0].Text)

	dependents := e.Dependents("a::c", true)
	require.Len(t, dependents, 1)
	require.Equal(t, "b", dependents[0].Name)
	require.Empty(t, dependents[0].Text, "summary mode omits source text")
}

func TestDependsRecursiveExcludesSelfUnlessCycle(t *testing.T) {
	table := symbol.NewTable()
	a := buildUnit(t, table, 0, "u", "def c():\n    pass\n\ndef b():\n    c()\n\ndef a():\n    b()\n")
	proj := project.Link(table, []*project.Unit{a})
	e := New(table, proj)

	out := e.DependsRecursive("u::a", false)
	names := map[string]bool{}
	for _, r := range out {
		names[r.Name] = true
	}
	require.True(t, names["b"])
	require.True(t, names["c"])
	require.False(t, names["a"], "a should not include itself absent a cycle")
}

func TestDependsRecursiveIncludesSelfWhenReachedViaCycle(t *testing.T) {
	table := symbol.NewTable()
	a := buildUnit(t, table, 0, "u", "def a():\n    b()\n\ndef b():\n    a()\n")
	proj := project.Link(table, []*project.Unit{a})
	e := New(table, proj)

	out := e.DependsRecursive("u::a", false)
	names := map[string]int{}
	for _, r := range out {
		names[r.Name]++
	}
	require.Equal(t, 1, names["b"])
	require.Equal(t, 1, names["a"], "a should include itself exactly once when reachable via a cycle")
}

func TestPageRankProducesNonNegativeRanks(t *testing.T) {
	e := buildEngine(t)
	ranks := e.PageRank()
	require.NotEmpty(t, ranks)
	for _, r := range ranks {
		require.GreaterOrEqual(t, r, 0.0)
	}
}

func TestAggregateAtProjectDepthCollapsesToOneComponent(t *testing.T) {
	e := buildEngine(t)
	graph := e.Aggregate(DepthProject, AggregateOptions{})
	require.Len(t, graph.Nodes, 1)
	require.Equal(t, "project", graph.Nodes[0].ID)
}
