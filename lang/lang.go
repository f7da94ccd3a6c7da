// Package lang is the front-end registry (spec section 3): one Front per
// supported language, each pairing a tree-sitter grammar with the token
// table that lowers its concrete syntax into HIR. Grounded on the teacher's
// per-language inspector split (inspector/java, inspector/jsx before this
// pass's deletion) generalized from hardcoded Go structs to the data-driven
// token.Table the rest of this module already uses, and on
// termfx-morfx's internal/lang/<name>/provider.go one-package-per-language
// layout (see DESIGN.md).
package lang

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/llmcc/descriptor"
	"github.com/viant/llmcc/token"
)

// Front is everything compile needs to turn one language's source files
// into a parsed, token-resolved unit: the tree-sitter grammar, the resolved
// token table, the language tag descriptor attaches to every TypeExpr it
// parses, and the file extensions that route a path to this front end.
type Front struct {
	Language   descriptor.LanguageKey
	Extensions []string
	Tokens     *token.Table
	Grammar    *sitter.Language
}

// Parse implements parse.Parser by running a fresh tree-sitter parser
// against src. A fresh *sitter.Parser is used per call rather than shared
// because sitter.Parser is not safe for concurrent reuse across goroutines
// and compile runs units through a worker pool (spec section 4.3).
func (f *Front) Parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	p := sitter.NewParser()
	p.SetLanguage(f.Grammar)
	return p.ParseCtx(ctx, nil, src)
}

// Registry maps file extensions to their Front.
type Registry struct {
	byExt map[string]*Front
}

// NewRegistry builds a Registry from a set of fronts, indexing each by
// every extension it declares.
func NewRegistry(fronts ...*Front) *Registry {
	r := &Registry{byExt: make(map[string]*Front)}
	for _, f := range fronts {
		for _, ext := range f.Extensions {
			r.byExt[ext] = f
		}
	}
	return r
}

// ForPath returns the Front registered for the file extension ext, if any.
func (r *Registry) ForPath(ext string) (*Front, bool) {
	f, ok := r.byExt[ext]
	return f, ok
}
