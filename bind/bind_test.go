package bind

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/stretchr/testify/require"

	"github.com/viant/llmcc/arena"
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
ts_name = "class_definition"
hir_kind = "Scope"
block_kind = "Class"
symbol_kind = "Class"

[[nodes]]
ts_name = "call"
hir_kind = "Internal"
block_kind = "Call"

[[nodes]]
ts_name = "identifier"
hir_kind = "Identifier"
`

func buildAndBind(t *testing.T, src string) (*symbol.Table, *hir.Tree, *source.File) {
	t.Helper()
	cfg, err := token.Decode([]byte(pythonTokens))
	require.NoError(t, err)
	table := token.NewTable(cfg)

	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	ctree, err := p.ParseCtx(context.Background(), nil, []byte(src))
	require.NoError(t, err)

	file, err := source.NewContent([]byte(src))
	require.NoError(t, err)

	pool := arena.NewPool[hir.Node](0)
	tree := hirbuild.Build(ctree.RootNode(), file.Content(), table, intern.New(), pool.Get())

	symTable := symbol.NewTable()
	c := collect.New(symTable, 1)
	_ = c.Collect(tree, file, 0, "unit0")

	b := New(symTable, descriptor.LangPython)
	b.Bind(tree, file, 0)

	return symTable, tree, file
}

func TestBindResolvesCallEdge(t *testing.T) {
	src := "def helper():\n    pass\n\ndef main():\n    helper()\n"
	table, _, _ := buildAndBind(t, src)

	var mainID, helperID hir.SymId
	var foundMain, foundHelper bool
	for _, sym := range table.All() {
		switch sym.Name {
		case "main":
			mainID, foundMain = sym.ID, true
		case "helper":
			helperID, foundHelper = sym.ID, true
		}
	}
	require.True(t, foundMain)
	require.True(t, foundHelper)
	main := table.Get(mainID)
	require.NotNil(t, main)

	found := false
	for _, dep := range main.Depends() {
		if dep.To == helperID && dep.Kind == symbol.Calls {
			found = true
		}
	}
	require.True(t, found, "main should have a Calls edge to helper")
}

func TestBindImplTargetDependsOnPropagatesToMembers(t *testing.T) {
	// Hand-built `impl Foo { fn m() {} }` shape: member functions should
	// depend on the resolved impl target.
	pool := arena.NewPool[hir.Node](0)
	tree := hir.NewTree(pool.Get())

	root := tree.New("source_file", hir.KindFile, hir.BlockRoot, 0, 60, hir.NoParent, "")

	structNode := tree.New("struct_item", hir.KindScope, hir.BlockScope, 0, 10, root.ID, "")
	structNode.SymHint = hir.SymStruct
	tree.New("type_identifier", hir.KindIdentifier, hir.BlockNone, 7, 10, structNode.ID, "name")

	impl := tree.New("impl_item", hir.KindScope, hir.BlockScope, 10, 60, root.ID, "")
	impl.SymHint = hir.SymImpl
	tree.New("type_identifier", hir.KindIdentifier, hir.BlockNone, 15, 18, impl.ID, "target")
	fn := tree.New("function_item", hir.KindScope, hir.BlockFunc, 20, 60, impl.ID, "")
	fn.SymHint = hir.SymFunction
	tree.New("identifier", hir.KindIdentifier, hir.BlockNone, 23, 24, fn.ID, "name")

	src := make([]byte, 60)
	for i := range src {
		src[i] = ' '
	}
	copy(src[7:10], "Foo")
	copy(src[15:18], "Foo")
	copy(src[23:24], "m")
	file, err := source.NewContent(src)
	require.NoError(t, err)

	symTable := symbol.NewTable()
	c := collect.New(symTable, 1)
	_ = c.Collect(tree, file, 0, "unit0")

	b := New(symTable, descriptor.LangRust)
	b.Bind(tree, file, 0)

	var fooID, mID hir.SymId
	var foundFoo, foundM bool
	for _, sym := range symTable.All() {
		switch sym.Name {
		case "Foo":
			fooID, foundFoo = sym.ID, true
		case "m":
			mID, foundM = sym.ID, true
		}
	}
	require.True(t, foundFoo)
	require.True(t, foundM)
	m := symTable.Get(mID)
	require.NotNil(t, m)

	found := false
	for _, dep := range m.Depends() {
		if dep.To == fooID && dep.Kind == symbol.DependsOn {
			found = true
		}
	}
	require.True(t, found, "m should depend on its impl target Foo")
}

func TestBindEnumVariantContainsEdge(t *testing.T) {
	// Hand-built `enum Color { Red }` shape.
	pool := arena.NewPool[hir.Node](0)
	tree := hir.NewTree(pool.Get())

	root := tree.New("source_file", hir.KindFile, hir.BlockRoot, 0, 20, hir.NoParent, "")
	enum := tree.New("enum_item", hir.KindScope, hir.BlockScope, 0, 20, root.ID, "")
	enum.SymHint = hir.SymEnum
	tree.New("type_identifier", hir.KindIdentifier, hir.BlockNone, 5, 10, enum.ID, "name")
	variant := tree.New("enum_variant", hir.KindInternal, hir.BlockNone, 13, 16, enum.ID, "")
	variant.SymHint = hir.SymEnumVariant
	tree.New("identifier", hir.KindIdentifier, hir.BlockNone, 13, 16, variant.ID, "name")

	src := make([]byte, 20)
	for i := range src {
		src[i] = ' '
	}
	copy(src[5:10], "Color")
	copy(src[13:16], "Red")
	file, err := source.NewContent(src)
	require.NoError(t, err)

	symTable := symbol.NewTable()
	c := collect.New(symTable, 1)
	_ = c.Collect(tree, file, 0, "unit0")

	b := New(symTable, descriptor.LangRust)
	b.Bind(tree, file, 0)

	var colorID, redID hir.SymId
	var foundColor, foundRed bool
	for _, sym := range symTable.All() {
		switch sym.Name {
		case "Color":
			colorID, foundColor = sym.ID, true
		case "Red":
			redID, foundRed = sym.ID, true
		}
	}
	require.True(t, foundColor)
	require.True(t, foundRed)
	red := symTable.Get(redID)
	require.NotNil(t, red)

	found := false
	for _, dep := range red.Depends() {
		if dep.To == colorID && dep.Kind == symbol.Contains {
			found = true
		}
	}
	require.True(t, found, "Red variant should have a Contains edge to Color")
}

func TestBindFieldCarryingVariantDependsOnPropagatesToEnum(t *testing.T) {
	// Hand-built `struct AskForApproval {}` `enum Op { UserTurn { approval_policy: AskForApproval } }`
	// shape: spec section 8 scenario S3 requires the enclosing enum, not
	// just the variant field, to DependsOn the referenced type.
	pool := arena.NewPool[hir.Node](0)
	tree := hir.NewTree(pool.Get())

	root := tree.New("source_file", hir.KindFile, hir.BlockRoot, 0, 80, hir.NoParent, "")

	structNode := tree.New("struct_item", hir.KindScope, hir.BlockScope, 0, 20, root.ID, "")
	structNode.SymHint = hir.SymStruct
	tree.New("type_identifier", hir.KindIdentifier, hir.BlockNone, 7, 21, structNode.ID, "name")

	enum := tree.New("enum_item", hir.KindScope, hir.BlockScope, 20, 80, root.ID, "")
	enum.SymHint = hir.SymEnum
	tree.New("type_identifier", hir.KindIdentifier, hir.BlockNone, 25, 27, enum.ID, "name")

	variant := tree.New("enum_variant", hir.KindInternal, hir.BlockNone, 30, 80, enum.ID, "")
	variant.SymHint = hir.SymEnumVariant
	tree.New("identifier", hir.KindIdentifier, hir.BlockNone, 30, 38, variant.ID, "name")

	field := tree.New("field_declaration", hir.KindInternal, hir.BlockNone, 40, 80, variant.ID, "")
	field.SymHint = hir.SymField
	tree.New("identifier", hir.KindIdentifier, hir.BlockNone, 40, 55, field.ID, "name")
	tree.New("type_identifier", hir.KindIdentifier, hir.BlockNone, 57, 71, field.ID, "type")

	src := make([]byte, 80)
	for i := range src {
		src[i] = ' '
	}
	copy(src[7:21], "AskForApproval")
	copy(src[25:27], "Op")
	copy(src[30:38], "UserTurn")
	copy(src[40:55], "approval_policy")
	copy(src[57:71], "AskForApproval")
	file, err := source.NewContent(src)
	require.NoError(t, err)

	symTable := symbol.NewTable()
	c := collect.New(symTable, 1)
	_ = c.Collect(tree, file, 0, "unit0")

	b := New(symTable, descriptor.LangRust)
	b.Bind(tree, file, 0)

	var opID, askID hir.SymId
	var foundOp, foundAsk bool
	for _, sym := range symTable.All() {
		switch sym.Name {
		case "Op":
			opID, foundOp = sym.ID, true
		case "AskForApproval":
			askID, foundAsk = sym.ID, true
		}
	}
	require.True(t, foundOp)
	require.True(t, foundAsk)
	op := symTable.Get(opID)
	require.NotNil(t, op)

	found := false
	for _, dep := range op.Depends() {
		if dep.To == askID && dep.Kind == symbol.DependsOn {
			found = true
		}
	}
	require.True(t, found, "Op enum should have a DependsOn edge to AskForApproval")
}
