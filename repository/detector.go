// Package repository locates the project/crate/module a source file belongs
// to (spec section 4.9 step 1). Adapted from the teacher's
// inspector/repository/detector.go: same marker-file search up the
// directory tree, same Go-module handling via golang.org/x/mod/modfile, but
// narrowed to five markers (Cargo.toml for Rust crates,
// go.mod/pyproject.toml/package.json for everything else, .git as a last resort)
// and extended with Cargo.toml/pyproject.toml name extraction via
// github.com/BurntSushi/toml rather than the teacher's regexes.
package repository

import (
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// markers are searched in this order at each directory level; the first
// match wins, mirroring the teacher's single-marker-per-directory rule.
var markers = []string{"Cargo.toml", "go.mod", "pyproject.toml", "package.json", ".git"}

// Project describes the root directory and kind of project containing a
// file, analogous to the teacher's Project struct narrowed to what
// aggregation needs.
type Project struct {
	Root string
	Kind string // "rust", "go", "python", "javascript", "git", "unknown"
	Name string
}

// Detector walks up from a file to find its enclosing project root.
type Detector struct{}

// New creates a Detector.
func New() *Detector {
	return &Detector{}
}

// DetectProject searches startPath and its ancestors for the nearest marker
// file, returning the project root, kind and name. It never errors: an
// absent marker anywhere up to the filesystem root yields Kind "unknown"
// and Root set to startPath's directory, matching the teacher's fallback
// behavior.
func (d *Detector) DetectProject(startPath string) *Project {
	dir := startPath
	if info, err := os.Stat(startPath); err == nil && !info.IsDir() {
		dir = filepath.Dir(startPath)
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		dir = startPath
	}

	for {
		for _, marker := range markers {
			markerPath := filepath.Join(dir, marker)
			if _, err := os.Stat(markerPath); err == nil {
				return &Project{
					Root: dir,
					Kind: kindOf(marker),
					Name: nameFor(marker, markerPath, dir),
				}
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return &Project{Root: filepath.Dir(startPath), Kind: "unknown", Name: filepath.Base(filepath.Dir(startPath))}
}

func kindOf(marker string) string {
	switch marker {
	case "Cargo.toml":
		return "rust"
	case "go.mod":
		return "go"
	case "pyproject.toml":
		return "python"
	case "package.json":
		return "javascript"
	case ".git":
		return "git"
	default:
		return "unknown"
	}
}

func nameFor(marker, markerPath, dir string) string {
	switch marker {
	case "Cargo.toml":
		if name := cargoPackageName(markerPath); name != "" {
			return name
		}
	case "go.mod":
		if name := goModuleName(markerPath); name != "" {
			return name
		}
	case "pyproject.toml":
		if name := pyProjectName(markerPath); name != "" {
			return name
		}
	}
	return filepath.Base(dir)
}

func goModuleName(goModPath string) string {
	data, err := os.ReadFile(goModPath)
	if err != nil {
		return ""
	}
	mod, err := modfile.ParseLax(goModPath, data, nil)
	if err != nil || mod.Module == nil {
		return ""
	}
	return mod.Module.Mod.Path
}
