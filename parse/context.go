// Package parse produces, for each compilation unit, a concrete syntax tree
// via a tree-sitter-like parser, and records parse metrics. Node-name
// details and the exact grammar are a front-end concern (package lang);
// parse only knows how to drive a sitter.Parser against source bytes.
package parse

import (
	"context"
	"time"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/llmcc/cerr"
	"github.com/viant/llmcc/source"
)

// Parser produces a concrete tree for one compilation unit. Each language
// front-end supplies one, pre-configured with its tree-sitter Language.
type Parser interface {
	Parse(ctx context.Context, src []byte) (*sitter.Tree, error)
}

// Metrics records parse-time statistics for one unit.
type Metrics struct {
	Bytes    int
	Nodes    int
	Duration time.Duration
}

// Unit holds the concrete tree, the source it was parsed from, and parse
// metrics for one compilation unit. It is the "Parse context" of spec
// component C4; the HIR root and symbol/scope tables are attached later by
// hirbuild and collect respectively (see the unexported unit type in
// package compile).
type Unit struct {
	File    *source.File
	Tree    *sitter.Tree
	Metrics Metrics
}

// Parse runs parser against file's content and wraps failures per spec
// section 7 (ParseFailed; a failed read is reported separately as
// IoFailed by package source before Parse is ever called).
func Parse(ctx context.Context, parser Parser, file *source.File) (*Unit, error) {
	start := time.Now()
	tree, err := parser.Parse(ctx, file.Content())
	if err != nil {
		return nil, cerr.Wrap("parse.Parse", cerr.ParseFailed, err).WithUnit(file.LogicalPath)
	}
	if tree == nil || tree.RootNode() == nil {
		return nil, cerr.New("parse.Parse", cerr.ParseFailed, "empty parse tree").WithUnit(file.LogicalPath)
	}
	metrics := Metrics{
		Bytes:    file.Len(),
		Nodes:    countNodes(tree.RootNode()),
		Duration: time.Since(start),
	}
	return &Unit{File: file, Tree: tree, Metrics: metrics}, nil
}

func countNodes(n *sitter.Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for i := 0; i < int(n.ChildCount()); i++ {
		count += countNodes(n.Child(i))
	}
	return count
}
