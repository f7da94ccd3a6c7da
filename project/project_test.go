package project

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

func buildUnit(t *testing.T, table *symbol.Table, unitIndex symbol.UnitIndex, unitName, src string) *Unit {
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

	c := collect.New(table, 1)
	_ = c.Collect(tree, file, unitIndex, unitName)

	b := bind.New(table, descriptor.LangPython)
	b.Bind(tree, file, unitIndex)

	graph := block.Build(tree, table, unitIndex)
	return &Unit{Index: unitIndex, Tree: tree, File: file, Graph: graph}
}

func TestLinkResolvesCrossUnitCall(t *testing.T) {
	table := symbol.NewTable()
	unit0 := buildUnit(t, table, 0, "unit0", "def helper():\n    pass\n")
	unit1 := buildUnit(t, table, 1, "unit1", "def main():\n    helper()\n")

	g := Link(table, []*Unit{unit0, unit1})

	var helperID hir.SymId
	var foundHelper bool
	for _, sym := range table.All() {
		if sym.Name == "helper" {
			helperID, foundHelper = sym.ID, true
		}
	}
	require.True(t, foundHelper)

	helperBlock, ok := g.BlockOf(helperID)
	require.True(t, ok)
	require.Equal(t, symbol.UnitIndex(0), helperBlock.Unit)

	var callBlockID block.BlockId
	for _, b := range unit1.Graph.Blocks {
		if b.Kind == hir.BlockCall {
			callBlockID = b.ID
		}
	}

	found := false
	for _, e := range g.CrossEdges {
		if e.From.Unit == 1 && e.From.Block == callBlockID && e.To == helperBlock && e.Kind == symbol.Calls {
			found = true
		}
	}
	require.True(t, found, "project linker should resolve main's unresolved call to helper in another unit")
}
