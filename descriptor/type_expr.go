// Package descriptor holds the language-neutral descriptor shapes Collector
// and Binder pass between each other: type expressions, path qualifiers,
// and function/parameter descriptors. Grounded on crates/llmcc-descriptor
// in original_source.
package descriptor

// LanguageKey tags which front-end produced a descriptor.
type LanguageKey string

const (
	LangRust       LanguageKey = "rust"
	LangPython     LanguageKey = "python"
	LangCpp        LanguageKey = "cpp"
	LangTypeScript LanguageKey = "typescript"
)

// TypeExprTag discriminates TypeExpr's variants (Go has no sum types, so
// TypeExpr carries a tag plus the fields relevant to that tag).
type TypeExprTag int

const (
	TypeExprPath TypeExprTag = iota
	TypeExprReference
	TypeExprTuple
	TypeExprCallable
	TypeExprImplTrait
	TypeExprOpaque
	TypeExprUnknown
)

// TypeExpr is the normalized representation of a type annotation across
// languages, mirroring crates/llmcc-descriptor/src/types.rs's enum.
type TypeExpr struct {
	Tag TypeExprTag

	// Path
	Segments []string
	Generics []*TypeExpr

	// Reference
	IsMut    bool
	Lifetime string
	Inner    *TypeExpr

	// Tuple
	Items []*TypeExpr

	// Callable
	Parameters []*TypeExpr
	Result     *TypeExpr

	// ImplTrait
	Bounds string

	// Opaque / Unknown
	Language LanguageKey
	Repr     string
}

// Path builds a TypeExpr{Path}.
func Path(segments []string, generics ...*TypeExpr) *TypeExpr {
	return &TypeExpr{Tag: TypeExprPath, Segments: segments, Generics: generics}
}

// Reference builds a TypeExpr{Reference}.
func Reference(isMut bool, lifetime string, inner *TypeExpr) *TypeExpr {
	return &TypeExpr{Tag: TypeExprReference, IsMut: isMut, Lifetime: lifetime, Inner: inner}
}

// Tuple builds a TypeExpr{Tuple}.
func Tuple(items ...*TypeExpr) *TypeExpr {
	return &TypeExpr{Tag: TypeExprTuple, Items: items}
}

// Callable builds a TypeExpr{Callable}.
func Callable(parameters []*TypeExpr, result *TypeExpr) *TypeExpr {
	return &TypeExpr{Tag: TypeExprCallable, Parameters: parameters, Result: result}
}

// ImplTrait builds a TypeExpr{ImplTrait}.
func ImplTrait(bounds string) *TypeExpr {
	return &TypeExpr{Tag: TypeExprImplTrait, Bounds: bounds}
}

// Opaque builds a TypeExpr{Opaque} for languages without structured parsing
// support for this position.
func Opaque(lang LanguageKey, repr string) *TypeExpr {
	return &TypeExpr{Tag: TypeExprOpaque, Language: lang, Repr: repr}
}

// Unknown builds a fallback TypeExpr for anything not yet modelled.
func Unknown(repr string) *TypeExpr {
	return &TypeExpr{Tag: TypeExprUnknown, Repr: repr}
}

// PathSegments returns the segments of a Path TypeExpr, or nil otherwise.
func (e *TypeExpr) PathSegments() []string {
	if e == nil || e.Tag != TypeExprPath {
		return nil
	}
	return e.Segments
}

// AsReference returns the inner TypeExpr and mutability of a Reference, ok=false otherwise.
func (e *TypeExpr) AsReference() (inner *TypeExpr, isMut bool, ok bool) {
	if e == nil || e.Tag != TypeExprReference {
		return nil, false, false
	}
	return e.Inner, e.IsMut, true
}

// TupleItems returns the items of a Tuple TypeExpr, or nil otherwise.
func (e *TypeExpr) TupleItems() []*TypeExpr {
	if e == nil || e.Tag != TypeExprTuple {
		return nil
	}
	return e.Items
}
