// Package iotesting provides shared fixtures for tests of I/O packages
// and commands.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gndefrag/pkg/catalog"
)

// ScenarioText is a small text catalog. The greedy strategy orders its
// objects as 1, 3, 2.
const ScenarioText = `20 100
1 2.5 0.9
2 7.5 0.1
3 5.0 0.5
`

// ScenarioCatalog returns the catalog described by ScenarioText.
func ScenarioCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Object{
		{ID: 1, Size: 2.5, AccessFrequency: 0.9},
		{ID: 2, Size: 7.5, AccessFrequency: 0.1},
		{ID: 3, Size: 5.0, AccessFrequency: 0.5},
	}, 20, 100)
}

// WriteFile creates a file with the given content in a temporary
// directory of the test and returns its path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write %s: %s", path, err)
	}
	return path
}
