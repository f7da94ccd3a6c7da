// Package cpp is the C++ front end (spec section 3). tree-sitter-cpp wraps
// a definition's name in nested declarator layers (function_declarator,
// pointer_declarator, reference_declarator) rather than exposing it as a
// direct "name" field the way Rust/Python/TypeScript do; this front end
// relies on collect's resolveDefinedName fallback to unwrap that chain
// (see DESIGN.md) instead of needing C++-specific code here.
package cpp

import (
	_ "embed"

	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/viant/llmcc/descriptor"
	"github.com/viant/llmcc/lang"
	"github.com/viant/llmcc/token"
)

//go:embed tokens.toml
var tokensTOML []byte

// New builds the C++ Front.
func New() *lang.Front {
	cfg, err := token.Decode(tokensTOML)
	if err != nil {
		panic(err)
	}
	return &lang.Front{
		Language:   descriptor.LangCpp,
		Extensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".h"},
		Tokens:     token.NewTable(cfg),
		Grammar:    cpp.GetLanguage(),
	}
}
