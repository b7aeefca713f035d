package dcl

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// TestCompatibility_ImplodedCorpus decodes reference streams produced by
// other DCL implementations (pklib, zlib's blast) when a corpus checkout is
// present next to the package. Each <name>.imploded file must decode to the
// matching <name> file.
func TestCompatibility_ImplodedCorpus(t *testing.T) {
	compressedDir := filepath.Join("ref", "test-data", "imploded")
	plainDir := filepath.Join("ref", "test-data", "plain")

	if _, err := os.Stat(compressedDir); err != nil {
		t.Skipf("compat corpus not found: %v", err)
	}

	entries, err := os.ReadDir(compressedDir)
	if err != nil {
		t.Fatalf("ReadDir(%q): %v", compressedDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if filepath.Ext(name) != ".imploded" {
			continue
		}

		testName := name
		t.Run(testName, func(t *testing.T) {
			compressedData, err := os.ReadFile(filepath.Join(compressedDir, testName))
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}

			baseName := testName[:len(testName)-len(".imploded")]
			plainData, err := os.ReadFile(filepath.Join(plainDir, baseName))
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}

			out, err := Decompress(compressedData, nil)
			if err != nil {
				t.Fatalf("Decompress(%q): %v", testName, err)
			}
			if !bytes.Equal(out, plainData) {
				t.Fatalf("decoded mismatch for %q: got=%d want=%d", testName, len(out), len(plainData))
			}

			// Our own streams for the same payload must decode everywhere,
			// so at minimum they must round-trip here.
			recompressed, err := Compress(plainData, nil)
			if err != nil {
				t.Fatalf("Compress(%q): %v", baseName, err)
			}
			again, err := Decompress(recompressed, nil)
			if err != nil {
				t.Fatalf("re-Decompress(%q): %v", baseName, err)
			}
			if !bytes.Equal(again, plainData) {
				t.Fatalf("re-compressed round-trip mismatch for %q", baseName)
			}
		})
	}
}
