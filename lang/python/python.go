// Package python is the Python front end (spec section 3). Grounded on
// tree-sitter-python's grammar field names and the limitation already
// recorded in DESIGN.md: Python's parameter and plain-assignment targets
// aren't field-labeled "name" the way Rust/C++/TypeScript are, so this
// front end tracks function/class/import definitions precisely and leaves
// bare variable bindings and positional parameters unmodeled as symbols.
package python

import (
	_ "embed"

	"github.com/smacker/go-tree-sitter/python"

	"github.com/viant/llmcc/descriptor"
	"github.com/viant/llmcc/lang"
	"github.com/viant/llmcc/token"
)

//go:embed tokens.toml
var tokensTOML []byte

// New builds the Python Front.
func New() *lang.Front {
	cfg, err := token.Decode(tokensTOML)
	if err != nil {
		panic(err)
	}
	return &lang.Front{
		Language:   descriptor.LangPython,
		Extensions: []string{".py", ".pyi"},
		Tokens:     token.NewTable(cfg),
		Grammar:    python.GetLanguage(),
	}
}
