// Package token decodes the language front-end's token-table configuration
// (spec section 6) and builds from it a Table usable by hirbuild; building
// the Table needs no tree-sitter Language.
package token

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/viant/llmcc/cerr"
	"github.com/viant/llmcc/hir"
)

// Config is the raw TOML shape:
//
//	default_hir_kind = "Internal"
//	[[text_tokens]]   name, literal, hir_kind?
//	[[nodes]]         ts_name, name?, hir_kind?, block_kind?, named?
//	[[fields]]        name, field_name, hir_kind?, block_kind?
type Config struct {
	DefaultHirKind string             `toml:"default_hir_kind"`
	TextTokens     []TextTokenConfig  `toml:"text_tokens"`
	Nodes          []NodeTokenConfig  `toml:"nodes"`
	Fields         []FieldTokenConfig `toml:"fields"`
}

// TextTokenConfig binds a literal grammar token (e.g. a keyword) to a HIR kind.
type TextTokenConfig struct {
	Name    string `toml:"name"`
	Literal string `toml:"literal"`
	HirKind string `toml:"hir_kind"`
}

// NodeTokenConfig binds a named or anonymous grammar node to a HIR/block kind.
type NodeTokenConfig struct {
	TSName     string `toml:"ts_name"`
	Name       string `toml:"name"`
	HirKind    string `toml:"hir_kind"`
	BlockKind  string `toml:"block_kind"`
	SymbolKind string `toml:"symbol_kind"`
	Named      *bool  `toml:"named"`
}

// FieldTokenConfig binds a grammar field name (e.g. "name", "parameters") to
// a role the builder should record as a HIR node's field label.
type FieldTokenConfig struct {
	Name      string `toml:"name"`
	FieldName string `toml:"field_name"`
	HirKind   string `toml:"hir_kind"`
	BlockKind string `toml:"block_kind"`
}

// Load reads and decodes a token-table TOML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cerr.Wrap("token.Load", cerr.IoFailed, err).WithUnit(path)
	}
	return Decode(data)
}

// Decode parses TOML bytes into a Config, applying the default_hir_kind.
func Decode(data []byte) (*Config, error) {
	cfg := &Config{DefaultHirKind: "Internal"}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, cerr.Wrap("token.Decode", cerr.ConfigInvalid, err)
	}
	return cfg, nil
}

func (c *Config) hirKindOr(override string) hir.Kind {
	if override != "" {
		return ParseHirKind(override)
	}
	return ParseHirKind(c.DefaultHirKind)
}
