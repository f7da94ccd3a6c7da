package symbol

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/viant/llmcc/hir"
)

func TestInsertAndFQN(t *testing.T) {
	table := NewTable()
	modScope := NewScope(1, "module", "pkg", hir.HirId(0), table.Globals)
	fnScope := NewScope(2, "function", "Init", hir.HirId(1), modScope)

	fooID, fooFQN := table.Insert(hir.HirId(0), 0, modScope, "Foo", Struct, true)
	require.Equal(t, "pkg::Foo", fooFQN)

	_, valueFQN := table.Insert(hir.HirId(2), 0, fnScope, "value", Variable, false)
	require.Equal(t, "pkg::Init::value", valueFQN)

	// A type and a variable with the same name at the same scope don't collide.
	varID, _ := table.Insert(hir.HirId(3), 0, modScope, "Foo", Variable, false)
	require.False(t, table.Get(varID).Collision)
	require.False(t, table.Get(fooID).Collision)
}

func TestDependencyMutualInverse(t *testing.T) {
	table := NewTable()
	scope := NewScope(1, "module", "pkg", hir.HirId(0), table.Globals)

	fooID, _ := table.Insert(hir.HirId(0), 0, scope, "Foo", Struct, true)
	methodID, _ := table.Insert(hir.HirId(1), 0, scope, "method", Method, true)

	table.AddDependency(methodID, fooID, DependsOn)

	method := table.Get(methodID)
	foo := table.Get(fooID)

	deps := method.Depends()
	require.Len(t, deps, 1)
	require.Equal(t, fooID, deps[0].To)
	require.Equal(t, DependsOn, deps[0].Kind)

	back := foo.DependedBy()
	require.Contains(t, back, methodID)
}

func TestScopeLookupPrefersNearest(t *testing.T) {
	table := NewTable()
	outer := NewScope(1, "module", "pkg", hir.HirId(0), table.Globals)
	inner := NewScope(2, "function", "f", hir.HirId(1), outer)

	outerID, _ := table.Insert(hir.HirId(0), 0, outer, "x", Variable, false)
	innerID, _ := table.Insert(hir.HirId(1), 0, inner, "x", Variable, false)

	got, ok := inner.Lookup(NewKindSet(Variable), "x")
	require.True(t, ok)
	require.Equal(t, innerID, got)
	require.NotEqual(t, outerID, got)
}

func TestInsertCollisionSoftFail(t *testing.T) {
	table := NewTable()
	scope := NewScope(1, "module", "pkg", hir.HirId(0), table.Globals)

	first, _ := table.Insert(hir.HirId(0), 0, scope, "Dup", Function, true)
	second, _ := table.Insert(hir.HirId(1), 0, scope, "Dup", Function, true)

	require.False(t, table.Get(second).IsGlobal)
	require.True(t, table.Get(second).Collision)
	require.NotEqual(t, first, second)

	got, ok := scope.Lookup(NewKindSet(Function), "Dup")
	require.True(t, ok)
	require.Equal(t, first, got, "earlier definition wins on collision")
}
