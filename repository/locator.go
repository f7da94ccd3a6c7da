package repository

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/viant/llmcc/query"
)

var _ query.Locator = (*Locator)(nil)

// Locator implements query.Locator using Detector instead of query's bare
// path-segment heuristic (query.PathLocator{}), satisfying spec section
// 4.9 step 1's per-language crate/module rule rather than the
// language-agnostic fallback.
type Locator struct {
	detector *Detector
	cache    map[string]*Project
}

// NewLocator builds a Locator backed by a fresh Detector.
func NewLocator() *Locator {
	return &Locator{detector: New(), cache: make(map[string]*Project)}
}

func (l *Locator) projectFor(p string) *Project {
	dir := filepath.Dir(p)
	if proj, ok := l.cache[dir]; ok {
		return proj
	}
	proj := l.detector.DetectProject(p)
	l.cache[dir] = proj
	return proj
}

// CrateOf returns the crate/package name containing p: the nearest
// Cargo.toml's [package].name for Rust, the nearest go.mod/pyproject.toml
// name for other languages, falling back to the root directory's base name
// when no manifest declares one explicitly. A package.json's name is not
// read, so package.json and .git roots always use the base name.
func (l *Locator) CrateOf(p string) string {
	proj := l.projectFor(p)
	if proj.Name != "" {
		return proj.Name
	}
	return "unknown"
}

// ModuleOf returns the module path of p relative to its crate root. Rust
// follows the mod.rs/file-stem convention (src/lib.rs and src/main.rs are
// the crate root itself, src/foo/mod.rs is module "foo", src/foo/bar.rs is
// module "foo::bar"); other languages use the dotted relative path with the
// extension stripped, matching query.PathLocator's "::"-joined convention.
func (l *Locator) ModuleOf(p string) string {
	proj := l.projectFor(p)
	rel, err := filepath.Rel(proj.Root, p)
	if err != nil {
		rel = filepath.Base(p)
	}
	rel = filepath.ToSlash(rel)

	if proj.Kind == "rust" {
		return rustModulePath(rel)
	}

	ext := path.Ext(rel)
	rel = strings.TrimSuffix(rel, ext)
	rel = strings.TrimPrefix(rel, "src/")
	return strings.ReplaceAll(rel, "/", "::")
}

// rustModulePath applies cargo's layout convention: files under src/ map to
// module paths, src/main.rs and src/lib.rs are the crate root (module ""),
// a mod.rs file names its parent directory instead of itself.
func rustModulePath(rel string) string {
	rel = strings.TrimPrefix(rel, "src/")
	rel = strings.TrimSuffix(rel, ".rs")

	base := path.Base(rel)
	if base == "main" || base == "lib" {
		dir := path.Dir(rel)
		if dir == "." {
			return ""
		}
		return strings.ReplaceAll(dir, "/", "::")
	}
	if base == "mod" {
		rel = path.Dir(rel)
		if rel == "." {
			return ""
		}
	}
	return strings.ReplaceAll(rel, "/", "::")
}
