// Package rust is the Rust front end (spec section 3): token-table
// grounded on tree-sitter-rust's grammar.js field names (pattern/type/
// argument, remapped below) and the teacher's inspector front-end shape.
package rust

import (
	_ "embed"

	"github.com/smacker/go-tree-sitter/rust"

	"github.com/viant/llmcc/descriptor"
	"github.com/viant/llmcc/lang"
	"github.com/viant/llmcc/token"
)

//go:embed tokens.toml
var tokensTOML []byte

// New builds the Rust Front, panicking on a malformed embedded token
// table since that would be a build-time, not a runtime, defect.
func New() *lang.Front {
	cfg, err := token.Decode(tokensTOML)
	if err != nil {
		panic(err)
	}
	return &lang.Front{
		Language:   descriptor.LangRust,
		Extensions: []string{".rs"},
		Tokens:     token.NewTable(cfg),
		Grammar:    rust.GetLanguage(),
	}
}
