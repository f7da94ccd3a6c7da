// Package collect implements the Collector, the pipeline's first resolver
// pass (spec section 4.5): a single sweep per unit that creates symbols and
// nested scopes and records fully-qualified names, never resolving a use.
// Grounded on the teacher's analyzer package shape (one walk populating a
// table as it descends, analyzer/node.go's `(a *Analyzer) walk`) but split
// out of the single-pass Analyzer into the collect half of the two-phase
// collect/bind design spec section 2 requires.
package collect

import (
	"strings"

	"github.com/viant/llmcc/hir"
	"github.com/viant/llmcc/source"
	"github.com/viant/llmcc/symbol"
)

// globalKinds are the symbol kinds promoted into the cross-unit FQN index.
// Locals (Variable, Parameter) stay scope-only: two functions each with a
// parameter named "x" must not collide in the global name table.
var globalKinds = symbol.NewKindSet(
	symbol.Function, symbol.Method, symbol.Struct, symbol.Enum, symbol.EnumVariant,
	symbol.Class, symbol.Trait, symbol.Impl, symbol.Module, symbol.TypeAlias,
	symbol.Field, symbol.Constant, symbol.Static, symbol.Import,
)

// Collector walks one unit's HIR tree, pushing scopes and symbols into a
// shared Table.
type Collector struct {
	table     *symbol.Table
	nextScope int
}

// New creates a Collector writing into table. nextScopeID seeds the local
// scope-id counter so scope ids stay unique across units sharing one table.
func New(table *symbol.Table, nextScopeID int) *Collector {
	return &Collector{table: table, nextScope: nextScopeID}
}

// NextScopeID returns the collector's current scope-id cursor, to seed the
// next unit's Collector and keep scope ids globally unique.
func (c *Collector) NextScopeID() int { return c.nextScope }

func (c *Collector) newScopeID() int {
	id := c.nextScope
	c.nextScope++
	return id
}

// Collect walks tree's unit root, returning the file-level scope it pushed
// under the table's globals scope.
func (c *Collector) Collect(tree *hir.Tree, file *source.File, unit symbol.UnitIndex, unitName string) *symbol.Scope {
	fileScope := symbol.NewScope(c.newScopeID(), "file", unitName, tree.Root(), c.table.Globals)
	c.table.RegisterScope(unit, tree.Root(), fileScope)
	c.walk(tree, tree.Root(), fileScope, unit, file)
	return fileScope
}

func (c *Collector) walk(tree *hir.Tree, id hir.HirId, scope *symbol.Scope, unit symbol.UnitIndex, file *source.File) {
	node := tree.Node(id)
	if node == nil {
		return
	}

	target := scope
	definedName := ""

	if kind, ok := symbol.FromHirHint(node.SymHint); ok {
		definedName = c.resolveDefinedName(tree, node, file)
		if definedName == "" {
			definedName = "_"
		}
		symID, _ := c.table.Insert(node.ID, unit, scope, definedName, kind, globalKinds.Contains(kind))
		if kind == symbol.Import {
			c.classifyImport(c.table.Get(symID), definedName, tree, node, file)
		}
	}

	if node.Kind == hir.KindScope {
		name := definedName
		if node.SymHint == hir.SymImpl {
			// Impl members FQN under the target type, not the impl block:
			// spec section 4.5's "impl Foo { fn m }" -> "Foo::m" rule.
			if targetText := c.fieldText(tree, node, "target", file); targetText != "" {
				name = lastSegment(targetText)
			}
		}
		target = symbol.NewScope(c.newScopeID(), node.Block.String(), name, node.ID, scope)
		c.table.RegisterScope(unit, node.ID, target)
	}

	for _, childID := range node.Children {
		c.walk(tree, childID, target, unit, file)
	}
}

// resolveDefinedName finds node's bound name: a direct "name"-labeled
// child first, falling back to unwrapping a chain of nested "declarator"
// fields down to the innermost identifier. tree-sitter-cpp wraps even a
// plain `int add(int a)`'s name in a function_declarator (and pointer/
// reference return types add pointer_declarator/reference_declarator
// layers on top), so a direct one-hop "name" lookup never finds it;
// Rust/Python/TypeScript's definitions all expose "name" directly and
// never reach the fallback.
func (c *Collector) resolveDefinedName(tree *hir.Tree, node *hir.Node, file *source.File) string {
	if name := c.fieldText(tree, node, "name", file); name != "" {
		return name
	}
	cur := node
	for depth := 0; depth < 8; depth++ {
		var next *hir.Node
		for _, childID := range cur.Children {
			if child := tree.Node(childID); child != nil && child.Field == "declarator" {
				next = child
				break
			}
		}
		if next == nil {
			return ""
		}
		if next.Kind == hir.KindIdentifier {
			text, err := file.Text(next.Start, next.End)
			if err != nil {
				return ""
			}
			return text
		}
		cur = next
	}
	return ""
}

// fieldText returns the source text of node's first child labeled field, or
// "" if none exists.
func (c *Collector) fieldText(tree *hir.Tree, node *hir.Node, field string, file *source.File) string {
	for _, childID := range node.Children {
		child := tree.Node(childID)
		if child != nil && child.Field == field {
			if text, err := file.Text(child.Start, child.End); err == nil {
				return text
			}
		}
	}
	return ""
}

// classifyImport applies a textual heuristic for ImportKind since the HIR
// carries no dedicated import-clause shape across all four front-ends:
// a trailing "*" marks a wildcard, a bound name of "_" (what an import with
// no bound name is recorded as) marks a side-effect import, a bound name
// equal to the "source" field text marks a module import, otherwise it's a
// plain item import.
func (c *Collector) classifyImport(sym *symbol.Symbol, name string, tree *hir.Tree, node *hir.Node, file *source.File) {
	if sym == nil {
		return
	}
	sym.ImportSource = c.fieldText(tree, node, "source", file)
	switch {
	case strings.HasSuffix(name, "*"):
		sym.ImportKind = symbol.ImportWildcard
	case name == "_":
		sym.ImportKind = symbol.ImportSideEffect
	case sym.ImportSource != "" && sym.ImportSource == name:
		sym.ImportKind = symbol.ImportModule
	default:
		sym.ImportKind = symbol.ImportItem
	}
}

func lastSegment(path string) string {
	path = strings.TrimSpace(path)
	for _, sep := range []string{"::", "."} {
		if i := strings.LastIndex(path, sep); i >= 0 {
			return path[i+len(sep):]
		}
	}
	return path
}
