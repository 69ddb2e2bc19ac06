// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MorrowindIni is the canonical Morrowind.ini fixture, relative to the
// repository root.
const MorrowindIni = "testdata/Morrowind.ini"

// ReadFixture returns the contents of a fixture.
// Calls t.Skip if the fixture is not found.
func ReadFixture(t *testing.T, relativePath string) []byte {
	t.Helper()

	data, err := os.ReadFile(ResolvePath(t, relativePath))
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}
	return data
}

// CopyFixture copies a fixture into a temporary directory under the given
// name and returns the copy's path.
//
// Example:
//
//	path := testutil.CopyFixture(t, testutil.MorrowindIni, "Morrowind.ini")
func CopyFixture(t *testing.T, relativePath, name string) string {
	t.Helper()

	data := ReadFixture(t, relativePath)
	dst := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		t.Fatalf("Failed to copy fixture: %v", err)
	}
	return dst
}

// ResolvePath finds a repository-relative path from the package under test.
// Calls t.Skip if the path is not found.
func ResolvePath(t *testing.T, relativePath string) string {
	t.Helper()

	// Try paths in order of likelihood
	candidates := []string{
		relativePath,                  // Direct path (from repo root)
		"../../" + relativePath,       // From package two levels deep (e.g., pkg/ini/)
		"../" + relativePath,          // From package one level deep
		"../../../" + relativePath,    // From package three levels deep
		"../../../../" + relativePath, // From package four levels deep
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Skipf("Fixture not found at any candidate path starting from: %s", relativePath)
	return "" // unreachable
}
