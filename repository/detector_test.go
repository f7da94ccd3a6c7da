package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDetectProjectFindsCargoToml(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[package]\nname = \"widgets\"\nversion = \"0.1.0\"\n")
	filePath := filepath.Join(root, "src", "lib.rs")
	writeFile(t, filePath, "pub fn hi() {}\n")

	proj := New().DetectProject(filePath)
	require.Equal(t, "rust", proj.Kind)
	require.Equal(t, "widgets", proj.Name)
	require.Equal(t, root, proj.Root)
}

func TestDetectProjectFindsGoMod(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module github.com/example/widgets\n\ngo 1.23\n")
	filePath := filepath.Join(root, "internal", "widget.go")
	writeFile(t, filePath, "package internal\n")

	proj := New().DetectProject(filePath)
	require.Equal(t, "go", proj.Kind)
	require.Equal(t, "github.com/example/widgets", proj.Name)
}

func TestDetectProjectFindsPyProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pyproject.toml"), "[project]\nname = \"widgets\"\n")
	filePath := filepath.Join(root, "widgets", "__init__.py")
	writeFile(t, filePath, "")

	proj := New().DetectProject(filePath)
	require.Equal(t, "python", proj.Kind)
	require.Equal(t, "widgets", proj.Name)
}

func TestDetectProjectFallsBackToUnknown(t *testing.T) {
	root := t.TempDir()
	filePath := filepath.Join(root, "loose.rs")
	writeFile(t, filePath, "")

	proj := New().DetectProject(filePath)
	require.Equal(t, "unknown", proj.Kind)
}
