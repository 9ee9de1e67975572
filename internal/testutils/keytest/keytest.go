// Package keytest verifies that content keys do not change unexpectedly.
//
// Expected keys are stored in *.expected files, one file per named key. When
// an implementation change alters a key on purpose, the files are regenerated
// by running the tests with STRM_UPDATE_KEYS=1.
package keytest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

const updateEnvVar = "STRM_UPDATE_KEYS"

func expectedFilePath(dir, name string) string {
	return filepath.Join(dir, name+".expected")
}

// Check compares every key in actual with the content of the file
// <dir>/<NAME>.expected.
// If a file is missing or a key differs, the test fails with a message
// listing all mismatches.
// If the environment variable STRM_UPDATE_KEYS is set to a non-empty value,
// the expected files are rewritten instead and the test passes.
func Check(t *testing.T, dir string, actual map[string]string) {
	t.Helper()

	if os.Getenv(updateEnvVar) != "" {
		Update(t, dir, actual)
		return
	}

	names := make([]string, 0, len(actual))
	for name := range actual {
		names = append(names, name)
	}
	sort.Strings(names)

	var mismatches []string

	for _, name := range names {
		path := expectedFilePath(dir, name)

		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				t.Fatalf("key test needs an update, expected file %s not found,\n"+
					"run the tests with %s=1 to create it", path, updateEnvVar)
			}

			t.Fatal(err)
		}

		expected := strings.TrimSpace(string(content))
		if actual[name] != expected {
			mismatches = append(mismatches, fmt.Sprintf(
				"  Name: %s\n    Expected: %s\n    Actual: %s",
				name, expected, actual[name]))
		}
	}

	if len(mismatches) != 0 {
		t.Fatalf("key mismatches occurred:\n%s\n"+
			"run the tests with %s=1 to update the expected files",
			strings.Join(mismatches, "\n"), updateEnvVar)
	}
}

// Update writes an .expected file in dir for every key in actual.
func Update(t *testing.T, dir string, actual map[string]string) {
	t.Helper()

	for name, key := range actual {
		path := expectedFilePath(dir, name)

		if err := os.MkdirAll(filepath.Dir(path), 0775); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, []byte(key+"\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}
