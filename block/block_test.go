package block

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/stretchr/testify/require"

	"github.com/viant/llmcc/arena"
	"github.com/viant/llmcc/bind"
	"github.com/viant/llmcc/collect"
	"github.com/viant/llmcc/descriptor"
	"github.com/viant/llmcc/hir"
	"github.com/viant/llmcc/hirbuild"
	"github.com/viant/llmcc/intern"
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

func buildBlockGraph(t *testing.T, src string) (*Graph, *symbol.Table) {
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

	pool := arena.NewPool[hir.Node](0)
	tree := hirbuild.Build(ctree.RootNode(), file.Content(), tokenTable, intern.New(), pool.Get())

	symTable := symbol.NewTable()
	c := collect.New(symTable, 1)
	_ = c.Collect(tree, file, 0, "unit0")

	b := bind.New(symTable, descriptor.LangPython)
	b.Bind(tree, file, 0)

	graph := Build(tree, symTable, 0)
	return graph, symTable
}

func TestBuildEmitsBlockPerBlockBearingNode(t *testing.T) {
	src := "def helper():\n    pass\n\ndef main():\n    helper()\n"
	graph, _ := buildBlockGraph(t, src)

	var roots, funcs, calls int
	for _, b := range graph.Blocks {
		switch b.Kind {
		case hir.BlockRoot:
			roots++
		case hir.BlockFunc:
			funcs++
		case hir.BlockCall:
			calls++
		}
	}
	require.Equal(t, 1, roots)
	require.Equal(t, 2, funcs)
	require.Equal(t, 1, calls)
}

func TestBuildContainsEdgesFollowHirNesting(t *testing.T) {
	src := "def main():\n    pass\n"
	graph, _ := buildBlockGraph(t, src)

	require.Len(t, graph.Blocks, 2) // root + main
	var rootID, mainID BlockId
	for _, b := range graph.Blocks {
		if b.Kind == hir.BlockRoot {
			rootID = b.ID
		}
		if b.Kind == hir.BlockFunc {
			mainID = b.ID
		}
	}

	found := false
	for _, e := range graph.Edges {
		if e.From == mainID && e.To == rootID && e.Kind == symbol.Contains {
			found = true
		}
	}
	require.True(t, found, "main block should Contain-edge to its enclosing root block")
}

func TestBuildSynthesizesCallEdgeBetweenFuncBlocks(t *testing.T) {
	src := "def helper():\n    pass\n\ndef main():\n    helper()\n"
	graph, table := buildBlockGraph(t, src)

	var mainBlock, helperBlock BlockId
	for _, b := range graph.Blocks {
		if b.SymID == hir.NoSym {
			continue
		}
		sym := table.Get(b.SymID)
		switch sym.Name {
		case "main":
			mainBlock = b.ID
		case "helper":
			helperBlock = b.ID
		}
	}

	var callBlock BlockId
	for _, b := range graph.Blocks {
		if b.Kind == hir.BlockCall {
			callBlock = b.ID
		}
	}

	foundCallContains := false
	for _, e := range graph.Edges {
		if e.From == callBlock && e.To == mainBlock && e.Kind == symbol.Contains {
			foundCallContains = true
		}
	}
	require.True(t, foundCallContains, "the call site block should be contained by main's block")

	foundCalls := false
	for _, e := range graph.Edges {
		if e.From == callBlock && e.To == helperBlock && e.Kind == symbol.Calls {
			foundCalls = true
		}
	}
	require.True(t, foundCalls, "the call block should have a Calls edge to helper's block")

	foundDependsOn := false
	for _, e := range graph.Edges {
		if e.From == mainBlock && e.To == helperBlock && e.Kind == symbol.DependsOn {
			foundDependsOn = true
		}
	}
	require.True(t, foundDependsOn, "main's block should copy its symbol's Calls dependency as a block-level DependsOn edge")
}
