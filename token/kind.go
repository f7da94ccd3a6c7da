package token

import "github.com/viant/llmcc/hir"

// ParseHirKind maps a config string to a hir.Kind, defaulting to Internal
// for anything unrecognized (matching the TOML default_hir_kind fallback).
func ParseHirKind(s string) hir.Kind {
	switch s {
	case "File":
		return hir.KindFile
	case "Scope":
		return hir.KindScope
	case "Identifier":
		return hir.KindIdentifier
	case "Text":
		return hir.KindText
	default:
		return hir.KindInternal
	}
}

// ParseSymbolKind maps a config string to a hir.SymbolKind, or SymNone if
// the string is empty or unrecognized (the node defines nothing).
func ParseSymbolKind(s string) hir.SymbolKind {
	switch s {
	case "Variable":
		return hir.SymVariable
	case "Constant":
		return hir.SymConstant
	case "Static":
		return hir.SymStatic
	case "Function":
		return hir.SymFunction
	case "Method":
		return hir.SymMethod
	case "Struct":
		return hir.SymStruct
	case "Enum":
		return hir.SymEnum
	case "EnumVariant":
		return hir.SymEnumVariant
	case "Class":
		return hir.SymClass
	case "Trait":
		return hir.SymTrait
	case "Impl":
		return hir.SymImpl
	case "Module":
		return hir.SymModule
	case "TypeAlias":
		return hir.SymTypeAlias
	case "Parameter":
		return hir.SymParameter
	case "Field":
		return hir.SymField
	case "Import":
		return hir.SymImport
	default:
		return hir.SymNone
	}
}

// ParseBlockKind maps a config string to a hir.BlockKind, or BlockNone if
// the string is empty or unrecognized.
func ParseBlockKind(s string) hir.BlockKind {
	switch s {
	case "Root":
		return hir.BlockRoot
	case "Func":
		return hir.BlockFunc
	case "Class":
		return hir.BlockClass
	case "Scope":
		return hir.BlockScope
	case "Call":
		return hir.BlockCall
	default:
		return hir.BlockNone
	}
}
