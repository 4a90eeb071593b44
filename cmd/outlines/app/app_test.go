package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glacmap/outlines/pkg/logging"
)

func newTestApp(t *testing.T, config *Config) *App {
	t.Helper()
	if config.RGIVersion == "" {
		config.RGIVersion = "v7.0"
	}
	a, err := New("test", "none", "now", WithConfig(config), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	return a
}

// runCommand executes the CLI against args and returns captured stdout.
func runCommand(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := a.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

const squareFeature = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "id": "0",
      "properties": {},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[0,0],[0,1],[1,1],[1,0],[0,0]]]
      }
    }
  ]
}`

func writeDataset(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeDataset(t, dir, "survey.geojson", squareFeature)

	a := newTestApp(t, &Config{})
	out, err := runCommand(t, a, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "passed all checks")

	// Cleaned dataset lands next to the input
	_, statErr := os.Stat(filepath.Join(dir, "cleaned", "survey.geojson"))
	assert.NoError(t, statErr)
}

func TestValidateCommandFailure(t *testing.T) {
	dir := t.TempDir()
	multi := `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "id": "0",
      "properties": {},
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [
          [[[0,0],[0,1],[1,1],[1,0],[0,0]]],
          [[[3,3],[3,4],[4,4],[4,3],[3,3]]]
        ]
      }
    }
  ]
}`
	path := writeDataset(t, dir, "survey.geojson", multi)

	a := newTestApp(t, &Config{})
	out, err := runCommand(t, a, "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "multi-part")

	// Permitting multi-part outlines turns the same input into a pass
	a = newTestApp(t, &Config{})
	_, err = runCommand(t, a, "validate", path, "--multi-ok")
	assert.NoError(t, err)
}

func TestDiffCommand(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeDataset(t, dir, "old.geojson", squareFeature)
	newBody := strings.ReplaceAll(squareFeature, "[[[0,0],[0,1],[1,1],[1,0],[0,0]]]",
		"[[[10,10],[10,11],[11,11],[11,10],[10,10]]]")
	newPath := writeDataset(t, dir, "new.geojson", newBody)

	a := newTestApp(t, &Config{Format: "json"})
	out, err := runCommand(t, a, "diff", oldPath, newPath)
	require.NoError(t, err)

	var report struct {
		Added   int `json:"added"`
		Removed int `json:"removed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1, report.Added)
	assert.Equal(t, 1, report.Removed)
}

func TestReindexCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeDataset(t, dir, "survey.geojson", squareFeature)
	outPath := filepath.Join(dir, "renamed.geojson")

	a := newTestApp(t, &Config{})
	_, err := runCommand(t, a, "reindex", path, "--prefix", "ISL", "--write", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ISL.1"`)
}

func TestRegionsCommand(t *testing.T) {
	a := newTestApp(t, &Config{})
	out, err := runCommand(t, a, "regions")
	require.NoError(t, err)
	assert.Contains(t, out, "Iceland")
	assert.Contains(t, out, "RGI2000-v7.0-G-06_iceland")

	a = newTestApp(t, &Config{RGIVersion: "v2.3"})
	_, err = runCommand(t, a, "regions")
	assert.Error(t, err)
}

func TestJoinCommandRequiresRGIDir(t *testing.T) {
	dir := t.TempDir()
	path := writeDataset(t, dir, "survey.geojson", squareFeature)

	a := newTestApp(t, &Config{})
	_, err := runCommand(t, a, "join", path, "--region", "iceland")
	assert.Error(t, err)
}

func TestRegionDisplayName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"RGI2000-v7.0-G-06_iceland", "Iceland"},
		{"RGI2000-v7.0-G-13_asia_central", "Asia Central"},
		{"RGI2000-v7.0-G-05_greenland_periphery", "Greenland Periphery"},
		{"01_rgi60_Alaska", "Alaska"},
		{"10_rgi60_NorthAsia", "Northasia"},
	}
	for _, tt := range tests {
		if got := regionDisplayName(tt.name); got != tt.want {
			t.Errorf("regionDisplayName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
