// Package typescript is the TypeScript front end (spec section 3).
// Grounded on tree-sitter-typescript's grammar field names; method/class/
// function names are all direct "name" fields, unlike C++'s declarator
// nesting, so no fallback is needed beyond the "pattern" -> "name"
// parameter remap TypeScript shares with Rust.
package typescript

import (
	_ "embed"

	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/viant/llmcc/descriptor"
	"github.com/viant/llmcc/lang"
	"github.com/viant/llmcc/token"
)

//go:embed tokens.toml
var tokensTOML []byte

// New builds the TypeScript Front.
func New() *lang.Front {
	cfg, err := token.Decode(tokensTOML)
	if err != nil {
		panic(err)
	}
	return &lang.Front{
		Language:   descriptor.LangTypeScript,
		Extensions: []string{".ts", ".tsx"},
		Tokens:     token.NewTable(cfg),
		Grammar:    typescript.GetLanguage(),
	}
}
