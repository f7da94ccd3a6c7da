package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocatorRustCrateAndModule(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[package]\nname = \"widgets\"\n")
	writeFile(t, filepath.Join(root, "src", "lib.rs"), "")
	writeFile(t, filepath.Join(root, "src", "shapes", "mod.rs"), "")
	writeFile(t, filepath.Join(root, "src", "shapes", "circle.rs"), "")

	loc := NewLocator()

	require.Equal(t, "widgets", loc.CrateOf(filepath.Join(root, "src", "shapes", "circle.rs")))
	require.Equal(t, "", loc.ModuleOf(filepath.Join(root, "src", "lib.rs")))
	require.Equal(t, "shapes", loc.ModuleOf(filepath.Join(root, "src", "shapes", "mod.rs")))
	require.Equal(t, "shapes::circle", loc.ModuleOf(filepath.Join(root, "src", "shapes", "circle.rs")))
}

func TestLocatorPythonCrateAndModule(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pyproject.toml"), "[project]\nname = \"widgets\"\n")
	writeFile(t, filepath.Join(root, "widgets", "shapes", "circle.py"), "")

	loc := NewLocator()

	require.Equal(t, "widgets", loc.CrateOf(filepath.Join(root, "widgets", "shapes", "circle.py")))
	require.Equal(t, "widgets::shapes::circle", loc.ModuleOf(filepath.Join(root, "widgets", "shapes", "circle.py")))
}
