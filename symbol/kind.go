// Package symbol implements the scope/symbol model shared by Collector and
// Binder: definitions, nested scopes, and the dependency edges between
// symbols. Grounded on spec section 4.4 and on the teacher's
// analyzer/linage package (Scope, Identity), generalized from a flat
// single-map scope to a per-kind nested scope so a type and a variable of
// the same name at the same scope don't collide (spec section 3 invariant).
package symbol

import "github.com/viant/llmcc/hir"

// Kind is the kind of a named definition.
type Kind int

const (
	Variable Kind = iota
	Constant
	Static
	Function
	Method
	Struct
	Enum
	EnumVariant
	Class
	Trait
	Impl
	Module
	TypeAlias
	Parameter
	Field
	Import
	Unknown
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "Variable"
	case Constant:
		return "Constant"
	case Static:
		return "Static"
	case Function:
		return "Function"
	case Method:
		return "Method"
	case Struct:
		return "Struct"
	case Enum:
		return "Enum"
	case EnumVariant:
		return "EnumVariant"
	case Class:
		return "Class"
	case Trait:
		return "Trait"
	case Impl:
		return "Impl"
	case Module:
		return "Module"
	case TypeAlias:
		return "TypeAlias"
	case Parameter:
		return "Parameter"
	case Field:
		return "Field"
	case Import:
		return "Import"
	default:
		return "Unknown"
	}
}

// ValueKinds are the symbol kinds looked up when resolving a value-position
// identifier (e.g. a call target or a bare reference).
var ValueKinds = []Kind{Variable, Constant, Static, Function, Method, EnumVariant, Parameter, Field, Import}

// TypeKinds are the symbol kinds looked up when resolving a type-position
// identifier (e.g. a parameter or field annotation).
var TypeKinds = []Kind{Struct, Enum, Class, Trait, TypeAlias, Module}

// ValueKindSet and TypeKindSet are the precomputed KindSet forms of
// ValueKinds/TypeKinds, for callers that look up more than once.
var ValueKindSet = NewKindSet(ValueKinds...)
var TypeKindSet = NewKindSet(TypeKinds...)

// KindSet is a small filter set used by Scope.Lookup to distinguish
// value-position from type-position identifiers.
type KindSet map[Kind]bool

// NewKindSet builds a KindSet from a list of kinds.
func NewKindSet(kinds ...Kind) KindSet {
	s := make(KindSet, len(kinds))
	for _, k := range kinds {
		s[k] = true
	}
	return s
}

// Contains reports whether k is in the set.
func (s KindSet) Contains(k Kind) bool {
	return s[k]
}

// DepKind labels an outgoing dependency edge between two symbols.
type DepKind int

const (
	Calls DepKind = iota
	DependsOn
	TypeOf
	Contains
	Returns
	Uses
)

func (d DepKind) String() string {
	switch d {
	case Calls:
		return "Calls"
	case TypeOf:
		return "TypeOf"
	case Contains:
		return "Contains"
	case Returns:
		return "Returns"
	case Uses:
		return "Uses"
	default:
		return "DependsOn"
	}
}

// FromHirHint converts a HIR node's SymHint to the corresponding symbol
// Kind. ok is false for SymNone, meaning the node defines nothing.
func FromHirHint(h hir.SymbolKind) (Kind, bool) {
	switch h {
	case hir.SymVariable:
		return Variable, true
	case hir.SymConstant:
		return Constant, true
	case hir.SymStatic:
		return Static, true
	case hir.SymFunction:
		return Function, true
	case hir.SymMethod:
		return Method, true
	case hir.SymStruct:
		return Struct, true
	case hir.SymEnum:
		return Enum, true
	case hir.SymEnumVariant:
		return EnumVariant, true
	case hir.SymClass:
		return Class, true
	case hir.SymTrait:
		return Trait, true
	case hir.SymImpl:
		return Impl, true
	case hir.SymModule:
		return Module, true
	case hir.SymTypeAlias:
		return TypeAlias, true
	case hir.SymParameter:
		return Parameter, true
	case hir.SymField:
		return Field, true
	case hir.SymImport:
		return Import, true
	default:
		return Unknown, false
	}
}

// ImportKind refines an Import symbol per spec section 4.5.
type ImportKind int

const (
	ImportUnspecified ImportKind = iota
	ImportModule
	ImportItem
	ImportWildcard
	ImportSideEffect
)

func (k ImportKind) String() string {
	switch k {
	case ImportModule:
		return "Module"
	case ImportWildcard:
		return "Wildcard"
	case ImportSideEffect:
		return "SideEffect"
	default:
		return "Item"
	}
}

// Visibility mirrors descriptor.Visibility but is redeclared here so symbol
// has no import-cycle dependency on descriptor for this one small enum.
type Visibility int

const (
	Unspecified Visibility = iota
	Public
	Private
	Restricted
)
