// Package snapshot provides golden-file comparison for pipeline output
// (spec section 5's note that "all downstream code must treat SymIds as
// opaque and sort by fqn when a stable order is required, e.g. snapshot
// tests"). Grounded on the teacher's analyzer_test.go, which already
// round-trips analyzer output through gopkg.in/yaml.v3 for test comparison
// (yaml.Marshal(dataPoints) printed against a yaml.Unmarshal'd expectation),
// generalized here into a reusable golden-file helper, and on
// crates/llmcc-test/src/snapshot/mod.rs's Snapshot trait (capture/render)
// for the shape of the three capture views in views.go.
package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// MatchYAML marshals value to YAML and compares it against
// testdata/<name>.snapshot.yaml, failing the test on a mismatch. A missing
// golden file is treated as "first run": it is written and the test passes,
// the same convention as the teacher's inline yaml.Unmarshal(tc.expectYaml)
// fixtures but kept out of the test source itself. Set UPDATE_SNAPSHOTS=1
// to regenerate an existing golden file instead of failing on drift.
func MatchYAML(t *testing.T, name string, value any) {
	t.Helper()

	actual, err := yaml.Marshal(value)
	require.NoError(t, err)

	path := filepath.Join("testdata", name+".snapshot.yaml")

	if os.Getenv("UPDATE_SNAPSHOTS") != "" {
		writeGolden(t, path, actual)
		return
	}

	expected, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		writeGolden(t, path, actual)
		t.Logf("snapshot: wrote new golden file %s", path)
		return
	}
	require.NoError(t, err)
	require.Equal(t, string(expected), string(actual),
		"snapshot %q mismatch; rerun with UPDATE_SNAPSHOTS=1 to refresh", name)
}

func writeGolden(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}
