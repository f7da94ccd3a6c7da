package typescript

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viant/llmcc/arena"
	"github.com/viant/llmcc/bind"
	"github.com/viant/llmcc/collect"
	"github.com/viant/llmcc/hir"
	"github.com/viant/llmcc/hirbuild"
	"github.com/viant/llmcc/intern"
	"github.com/viant/llmcc/source"
	"github.com/viant/llmcc/symbol"
)

const src = `
function helper(v: number): number {
    return v;
}

class Greeter {
    greet(): number {
        return helper(1);
    }
}
`

func buildUnit(t *testing.T) *symbol.Table {
	t.Helper()
	front := New()

	ctree, err := front.Parse(context.Background(), []byte(src))
	require.NoError(t, err)

	file, err := source.NewContent([]byte(src))
	require.NoError(t, err)

	pool := arena.NewPool[hir.Node](0)
	tree := hirbuild.Build(ctree.RootNode(), file.Content(), front.Tokens, intern.New(), pool.Get())

	table := symbol.NewTable()
	c := collect.New(table, 1)
	c.Collect(tree, file, 0, "mod")

	b := bind.New(table, front.Language)
	b.Bind(tree, file, 0)

	return table
}

func TestTypeScriptFrontCollectsClassAndMethod(t *testing.T) {
	table := buildUnit(t)

	foundHelper, foundGreeter, foundGreet := false, false, false
	for _, sym := range table.All() {
		switch sym.Name {
		case "helper":
			foundHelper = true
			require.Equal(t, symbol.Function, sym.Kind)
		case "Greeter":
			foundGreeter = true
			require.Equal(t, symbol.Class, sym.Kind)
		case "greet":
			foundGreet = true
			require.Equal(t, symbol.Method, sym.Kind)
			require.Equal(t, "mod::Greeter::greet", sym.FQN)
		}
	}
	require.True(t, foundHelper)
	require.True(t, foundGreeter)
	require.True(t, foundGreet)
}

func TestTypeScriptFrontBindsMethodCall(t *testing.T) {
	table := buildUnit(t)

	var greetID, helperID hir.SymId
	foundGreet, foundHelper := false, false
	for _, sym := range table.All() {
		switch sym.Name {
		case "greet":
			greetID, foundGreet = sym.ID, true
		case "helper":
			helperID, foundHelper = sym.ID, true
		}
	}
	require.True(t, foundGreet)
	require.True(t, foundHelper)

	calls := false
	for _, dep := range table.Get(greetID).Depends() {
		if dep.To == helperID && dep.Kind == symbol.Calls {
			calls = true
		}
	}
	require.True(t, calls)
}
