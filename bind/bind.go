package bind

import (
	"strings"

	"github.com/viant/llmcc/descriptor"
	"github.com/viant/llmcc/hir"
	"github.com/viant/llmcc/source"
	"github.com/viant/llmcc/symbol"
)

// typeFields are the field labels a type annotation can appear under.
// "target"/"trait" are impl-block specific; the rest cover parameters,
// fields, variables, and return types.
var typeFields = map[string]bool{
	"type": true, "return_type": true, "target": true, "trait": true,
}

// skipFields are identifier field roles Binder resolves through a more
// specific path (definition names, type annotations, call callees) rather
// than the generic use-site fallback.
var skipFields = map[string]bool{
	"name": true, "type": true, "return_type": true, "target": true,
	"trait": true, "function": true, "callee": true,
}

// Binder resolves use-sites recorded by Collector into dependency edges.
type Binder struct {
	table    *symbol.Table
	resolver *TypeExprResolver
	lang     descriptor.LanguageKey
}

// New creates a Binder for one language's front-end, sharing table with the
// Collector pass that already ran.
func New(table *symbol.Table, lang descriptor.LanguageKey) *Binder {
	return &Binder{table: table, resolver: NewTypeExprResolver(table), lang: lang}
}

// frame carries the lexical context threaded down the HIR walk: the
// current scope, the nearest enclosing definition's symbol (edges'
// "from"), and (inside an impl block) its resolved target symbol.
type frame struct {
	scope      *symbol.Scope
	owner      hir.SymId
	enclosing  hir.SymId // nearest enclosing Enum, for variant Contains edges
	implTarget hir.SymId
}

// Bind walks tree, resolving uses and type annotations and recording
// dependency edges into the shared table.
func (b *Binder) Bind(tree *hir.Tree, file *source.File, unit symbol.UnitIndex) {
	root := tree.Node(tree.Root())
	if root == nil {
		return
	}
	scope, _ := b.table.ScopeFor(unit, tree.Root())
	b.walk(tree, root, file, unit, frame{scope: scope, owner: hir.NoSym, enclosing: hir.NoSym, implTarget: hir.NoSym})
}

func (b *Binder) walk(tree *hir.Tree, node *hir.Node, file *source.File, unit symbol.UnitIndex, f frame) {
	if node == nil {
		return
	}

	symID, isDef := b.table.FindByOwner(unit, node.ID)

	next := f
	if scope, ok := b.table.ScopeFor(unit, node.ID); ok {
		next.scope = scope
	}

	if isDef {
		sym := b.table.Get(symID)
		b.resolveTypeFields(tree, node, file, f, sym)

		switch sym.Kind {
		case symbol.Function, symbol.Method:
			next.owner = symID
			if f.implTarget != hir.NoSym {
				b.table.AddDependency(symID, f.implTarget, symbol.DependsOn)
			}
		case symbol.Enum:
			next.enclosing = symID
		case symbol.EnumVariant:
			if f.enclosing != hir.NoSym {
				b.table.AddDependency(symID, f.enclosing, symbol.Contains)
			}
		case symbol.Impl:
			if target, ok := b.resolver.Resolve(b.fieldTypeExpr(tree, node, file, "target"), f.scope); ok {
				next.implTarget = target
			}
		case symbol.Variable, symbol.Constant, symbol.Static, symbol.Field, symbol.Parameter:
			if sym.TypeOf != hir.NoSym && f.owner != hir.NoSym && f.owner != symID {
				b.table.AddDependency(f.owner, sym.TypeOf, symbol.DependsOn)
			}
		}
	}

	if node.Kind == hir.KindIdentifier && !skipFields[node.Field] {
		b.resolveUse(tree, node, file, f)
	}

	if node.Block == hir.BlockCall {
		b.resolveCall(tree, node, file, f)
	}

	for _, childID := range node.Children {
		b.walk(tree, tree.Node(childID), file, unit, next)
	}
}

// resolveTypeFields resolves every type-position child field of node
// ("type", "return_type", "target", "trait") and stores the match as
// sym.TypeOf, per spec section 4.6; when several resolve (an impl's trait
// and target), the last one in child order wins. When sym is a struct-variant field
// (f.enclosing set), the enclosing enum also gets a DependsOn edge to the
// referenced type, per spec section 4.6/8 scenario S3: "enum with
// field-carrying variants DependsOn the referenced types", not just the
// field symbol itself.
func (b *Binder) resolveTypeFields(tree *hir.Tree, node *hir.Node, file *source.File, f frame, sym *symbol.Symbol) {
	for _, childID := range node.Children {
		child := tree.Node(childID)
		if child == nil || !typeFields[child.Field] {
			continue
		}
		text, err := file.Text(child.Start, child.End)
		if err != nil {
			continue
		}
		expr := descriptor.ParseText(b.lang, text)
		if target, ok := b.resolver.Resolve(expr, f.scope); ok {
			sym.TypeOf = target
			if sym.Kind == symbol.Function || sym.Kind == symbol.Method {
				b.table.AddDependency(sym.ID, target, symbol.Returns)
			} else {
				b.table.AddDependency(sym.ID, target, symbol.DependsOn)
			}
			if sym.Kind == symbol.Field && f.enclosing != hir.NoSym {
				b.table.AddDependency(f.enclosing, target, symbol.DependsOn)
			}
		}
	}
}

func (b *Binder) fieldTypeExpr(tree *hir.Tree, node *hir.Node, file *source.File, field string) *descriptor.TypeExpr {
	for _, childID := range node.Children {
		child := tree.Node(childID)
		if child != nil && child.Field == field {
			if text, err := file.Text(child.Start, child.End); err == nil {
				return descriptor.ParseText(b.lang, text)
			}
		}
	}
	return nil
}

// resolveUse resolves a bare-identifier use-site and records a Uses edge
// from the enclosing definition to whatever it names.
func (b *Binder) resolveUse(tree *hir.Tree, node *hir.Node, file *source.File, f frame) {
	if f.owner == hir.NoSym || f.scope == nil {
		return
	}
	text, err := file.Text(node.Start, node.End)
	if err != nil || text == "" {
		return
	}
	if id, ok := f.scope.Lookup(symbol.ValueKindSet, text); ok && id != f.owner {
		b.table.AddDependency(f.owner, id, symbol.Uses)
		node.Resolved = id
	}
}

// resolveCall resolves a call expression's callee (the "function"/"callee"
// field, possibly a dotted/"::"-joined path or a receiver.method chain) and
// records a Calls edge.
func (b *Binder) resolveCall(tree *hir.Tree, node *hir.Node, file *source.File, f frame) {
	if f.owner == hir.NoSym || f.scope == nil {
		return
	}
	var calleeNode *hir.Node
	for _, childID := range node.Children {
		child := tree.Node(childID)
		if child != nil && (child.Field == "function" || child.Field == "callee") {
			calleeNode = child
			break
		}
	}
	if calleeNode == nil {
		return
	}
	text, err := file.Text(calleeNode.Start, calleeNode.End)
	if err != nil || text == "" {
		return
	}

	parts := splitCalleePath(text)
	if len(parts) == 1 {
		if id, ok := f.scope.Lookup(symbol.ValueKindSet, parts[0]); ok {
			b.table.AddDependency(f.owner, id, symbol.Calls)
			calleeNode.Resolved = id
		}
		return
	}
	if id, ok := f.scope.LookupPath(parts, symbol.ValueKindSet, b.resolver.descend); ok {
		b.table.AddDependency(f.owner, id, symbol.Calls)
		calleeNode.Resolved = id
		return
	}
	// receiver.method the receiver's type couldn't resolve locally: fall
	// back to a last-segment scope lookup; the project linker may improve
	// on this via the global name index (spec section 4.8 step 4).
	if id, ok := f.scope.Lookup(symbol.ValueKindSet, parts[len(parts)-1]); ok {
		b.table.AddDependency(f.owner, id, symbol.Calls)
		calleeNode.Resolved = id
	}
}

func splitCalleePath(text string) []string {
	sep := "::"
	if !strings.Contains(text, "::") && strings.Contains(text, ".") {
		sep = "."
	}
	var parts []string
	for _, p := range strings.Split(text, sep) {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
