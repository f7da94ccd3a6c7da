// Package bind implements the Binder, the pipeline's second resolver pass
// (spec section 4.6): resolves every use-site to the definition Collector
// already recorded and emits dependency edges. Grounded on
// crates/llmcc-resolver/src/type_expr.rs's TypeExprResolver (segmented path
// lookup, super:: depth trimming, FQN fallback, terminal-segment fallback)
// and on the teacher's analyzer/node.go walk-and-resolve shape, split into
// the bind half of the two-phase design.
package bind

import (
	"strings"

	"github.com/viant/llmcc/descriptor"
	"github.com/viant/llmcc/hir"
	"github.com/viant/llmcc/symbol"
)

// TypeExprResolver resolves descriptor.TypeExpr values to symbols using the
// same scope machinery Scope.LookupPath uses for plain identifier paths.
type TypeExprResolver struct {
	table *symbol.Table
}

// NewTypeExprResolver creates a resolver backed by table.
func NewTypeExprResolver(table *symbol.Table) *TypeExprResolver {
	return &TypeExprResolver{table: table}
}

func (r *TypeExprResolver) descend(owner hir.SymId, part string, kinds symbol.KindSet) (hir.SymId, bool) {
	sym := r.table.Get(owner)
	if sym == nil {
		return hir.NoSym, false
	}
	scope, ok := r.table.ScopeFor(sym.Unit, sym.OwnerHir)
	if !ok {
		return hir.NoSym, false
	}
	return scope.Lookup(kinds, part)
}

// Resolve resolves expr against scope, unwrapping References and returning
// the symbol a Path ultimately names. Tuple/Callable/ImplTrait/Opaque never
// resolve to a single symbol (ok=false); this matches spec section 4.6's
// "unresolved types remain None; they are not errors".
func (r *TypeExprResolver) Resolve(expr *descriptor.TypeExpr, scope *symbol.Scope) (hir.SymId, bool) {
	if expr == nil {
		return hir.NoSym, false
	}
	switch expr.Tag {
	case descriptor.TypeExprReference:
		inner, _, _ := expr.AsReference()
		return r.Resolve(inner, scope)
	case descriptor.TypeExprPath:
		return r.resolvePath(expr.Segments, scope)
	default:
		return hir.NoSym, false
	}
}

func (r *TypeExprResolver) resolvePath(segments []string, scope *symbol.Scope) (hir.SymId, bool) {
	if len(segments) == 0 {
		return hir.NoSym, false
	}
	qualifier := descriptor.Qualify(segments)
	base := scope
	if qualifier.Tag == descriptor.QualifierSuper {
		if anc := base.Ancestor(qualifier.Levels); anc != nil {
			base = anc
		}
	}
	parts := qualifier.Parts()
	if len(parts) == 0 {
		return hir.NoSym, false
	}

	if id, ok := base.LookupPath(parts, symbol.TypeKindSet, r.descend); ok {
		return id, true
	}

	// FQN fallback: the path may already be fully qualified.
	if ids := r.table.FindByName(strings.Join(parts, "::")); len(ids) > 0 {
		return ids[0], true
	}

	// Terminal-segment fallback: resolve just the last segment in scope,
	// ignoring an unresolved qualifying prefix (e.g. an import alias or a
	// module path Binder's first pass couldn't walk structurally).
	last := parts[len(parts)-1]
	return base.Lookup(symbol.TypeKindSet, last)
}
