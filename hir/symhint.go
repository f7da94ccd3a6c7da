package hir

// SymbolKind is a coarse hint, carried by a HIR node, of the kind of
// definition it introduces. It mirrors package symbol's Kind enum but lives
// here (rather than being referenced directly) so hir has no dependency on
// symbol; package symbol converts a SymbolKind to its own Kind.
type SymbolKind int

const (
	SymNone SymbolKind = iota
	SymVariable
	SymConstant
	SymStatic
	SymFunction
	SymMethod
	SymStruct
	SymEnum
	SymEnumVariant
	SymClass
	SymTrait
	SymImpl
	SymModule
	SymTypeAlias
	SymParameter
	SymField
	SymImport
)

var symbolKindNames = map[SymbolKind]string{
	SymNone:        "None",
	SymVariable:    "Variable",
	SymConstant:    "Constant",
	SymStatic:      "Static",
	SymFunction:    "Function",
	SymMethod:      "Method",
	SymStruct:      "Struct",
	SymEnum:        "Enum",
	SymEnumVariant: "EnumVariant",
	SymClass:       "Class",
	SymTrait:       "Trait",
	SymImpl:        "Impl",
	SymModule:      "Module",
	SymTypeAlias:   "TypeAlias",
	SymParameter:   "Parameter",
	SymField:       "Field",
	SymImport:      "Import",
}

func (k SymbolKind) String() string {
	if s, ok := symbolKindNames[k]; ok {
		return s
	}
	return "Unknown"
}
