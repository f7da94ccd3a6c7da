package token

import "github.com/viant/llmcc/hir"

// Entry is one resolved token-table row: the stable identity of a grammar
// construct plus the HIR/block kind it lowers to.
//
// The Rust original resolves ts_name/field_name against the grammar at
// build time to produce numeric ids (crates/llmcc-tree/src/config.rs). Go
// front-ends here don't have an equivalent offline codegen step over the
// vendored grammar, so the node's tree-sitter type name itself (already a
// stable per-grammar identity exposed at runtime via Node.Type()) is used
// as KindID; see DESIGN.md.
type Entry struct {
	Name       string
	KindID     string
	Repr       string
	HirKind    hir.Kind
	BlockKind  hir.BlockKind
	SymbolHint hir.SymbolKind
}

// Table is a fully resolved token table: name -> Entry lookups keyed
// separately for grammar nodes, fields, and literal text tokens.
type Table struct {
	defaultKind hir.Kind
	nodes       map[string]Entry
	fields      map[string]Entry
	text        map[string]Entry
}

// NewTable resolves a Config into a Table. No grammar handle is required
// because KindID is the grammar name itself (see Entry doc).
func NewTable(cfg *Config) *Table {
	t := &Table{
		defaultKind: ParseHirKind(cfg.DefaultHirKind),
		nodes:       make(map[string]Entry, len(cfg.Nodes)),
		fields:      make(map[string]Entry, len(cfg.Fields)),
		text:        make(map[string]Entry, len(cfg.TextTokens)),
	}
	for _, n := range cfg.Nodes {
		name := n.Name
		if name == "" {
			name = n.TSName
		}
		t.nodes[n.TSName] = Entry{
			Name:       name,
			KindID:     n.TSName,
			Repr:       n.TSName,
			HirKind:    cfg.hirKindOr(n.HirKind),
			BlockKind:  ParseBlockKind(n.BlockKind),
			SymbolHint: ParseSymbolKind(n.SymbolKind),
		}
	}
	for _, f := range cfg.Fields {
		t.fields[f.FieldName] = Entry{
			Name:      f.Name,
			KindID:    f.FieldName,
			Repr:      f.FieldName,
			HirKind:   cfg.hirKindOr(f.HirKind),
			BlockKind: ParseBlockKind(f.BlockKind),
		}
	}
	for _, tt := range cfg.TextTokens {
		t.text[tt.Literal] = Entry{
			Name:      tt.Name,
			KindID:    tt.Literal,
			Repr:      tt.Literal,
			HirKind:   cfg.hirKindOr(tt.HirKind),
			BlockKind: hir.BlockNone,
		}
	}
	return t
}

// DefaultKind returns the table's default_hir_kind.
func (t *Table) DefaultKind() hir.Kind {
	return t.defaultKind
}

// Resolve looks up a grammar node type name, falling back to the text-token
// table (for anonymous/literal nodes) and finally to a synthesized entry
// using the table's default kind.
func (t *Table) Resolve(nodeType string, named bool) Entry {
	if e, ok := t.nodes[nodeType]; ok {
		return e
	}
	if !named {
		if e, ok := t.text[nodeType]; ok {
			return e
		}
	}
	return Entry{Name: nodeType, KindID: nodeType, Repr: nodeType, HirKind: t.defaultKind}
}

// Emit reports whether a concrete-tree node of this type should become a
// HIR node at all, returning its resolved Entry when it should. Named nodes
// always emit; unnamed (punctuation/keyword) nodes emit only when the table
// explicitly lists them as a text token, so bare syntax noise like "," or
// "{" doesn't clutter the HIR tree.
func (t *Table) Emit(nodeType string, named bool) (Entry, bool) {
	if e, ok := t.nodes[nodeType]; ok {
		return e, true
	}
	if named {
		return Entry{Name: nodeType, KindID: nodeType, Repr: nodeType, HirKind: t.defaultKind}, true
	}
	if e, ok := t.text[nodeType]; ok {
		return e, true
	}
	return Entry{}, false
}

// ResolveField looks up a grammar field name (e.g. "name", "parameters").
// The second return is false if the field carries no table entry, in which
// case the caller should still record the field label verbatim.
func (t *Table) ResolveField(fieldName string) (Entry, bool) {
	e, ok := t.fields[fieldName]
	return e, ok
}
