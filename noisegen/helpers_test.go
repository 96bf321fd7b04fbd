package noisegen

import (
	"os"
	"testing"
)

// requireBookkeepingConsistent checks that the three path mappings share an
// identical key set equal to the generator's configuration names.
func requireBookkeepingConsistent(t *testing.T, gen Generator) {
	t.Helper()

	names := gen.ConfigNames()

	mappings := map[string]map[string]string{
		"NoisyPaths":     gen.NoisyPaths(),
		"ReferencePaths": gen.ReferencePaths(),
		"OutputDirs":     gen.OutputDirs(),
	}

	for label, m := range mappings {
		if len(m) != len(names) {
			t.Fatalf("%s has %d entries, want %d", label, len(m), len(names))
		}
		for _, name := range names {
			if _, ok := m[name]; !ok {
				t.Fatalf("%s missing configuration %q", label, name)
			}
		}
	}
}

// requireNames checks configuration names and their order.
func requireNames(t *testing.T, got, want []string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("ConfigNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ConfigNames() = %v, want %v", got, want)
		}
	}
}

// requireFileExists fails t when path does not exist.
func requireFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s: %v", path, err)
	}
}
