package noisegen

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cwbudde/algo-noisegen/internal/testutil/wavtest"
	"github.com/cwbudde/algo-noisegen/wav"
)

func TestWhiteNoiseGenerate(t *testing.T) {
	dir := t.TempDir()
	input := wavtest.SineWAV(t, dir, "speech.wav")
	cacheDir := filepath.Join(dir, "cache")

	g := NewWhiteNoise()
	if err := g.Generate(input, cacheDir, filepath.Join(dir, "out")); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	requireNames(t, g.ConfigNames(), []string{"20_30_SNR", "10_20_SNR", "5_15_SNR", "0_10_SNR"})
	requireBookkeepingConsistent(t, g)

	noisy := g.NoisyPaths()
	reference := g.ReferencePaths()
	for _, name := range g.ConfigNames() {
		if noisy[name] == reference[name] {
			t.Fatalf("config %q: noisy and reference point at the same file", name)
		}

		// Both tracks must exist and be decodable.
		for _, path := range []string{noisy[name], reference[name]} {
			s, err := wav.Read(path)
			if err != nil {
				t.Fatalf("config %q: reading %s: %v", name, path, err)
			}
			if s.Len() == 0 {
				t.Fatalf("config %q: %s is empty", name, path)
			}
		}
	}
}

func TestWhiteNoiseReferenceGap(t *testing.T) {
	g := NewWhiteNoise()

	for _, p := range g.snrPairs {
		if p.Reference-p.Noisy != 10 {
			t.Fatalf("pair %+v: reference gap = %d dB, want 10", p, p.Reference-p.Noisy)
		}
	}
}

func TestWhiteNoiseCacheGranularity(t *testing.T) {
	dir := t.TempDir()
	input := wavtest.SineWAV(t, dir, "speech.wav")
	cacheDir := filepath.Join(dir, "cache")

	// Pairs sharing the level 20 endpoint must produce exactly 3 cached
	// mixes (10, 20, 30), not 4.
	g := NewWhiteNoise(WithSNRPairs([]SNRPair{{20, 30}, {10, 20}}))
	if err := g.Generate(input, cacheDir, filepath.Join(dir, "out")); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	entries, err := os.ReadDir(cacheDir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("cache holds %d files, want 3", len(entries))
	}

	for _, name := range []string{"noise_10_SNR.wav", "noise_20_SNR.wav", "noise_30_SNR.wav"} {
		requireFileExists(t, filepath.Join(cacheDir, name))
	}
}

func TestWhiteNoiseIdempotent(t *testing.T) {
	dir := t.TempDir()
	input := wavtest.SineWAV(t, dir, "speech.wav")
	cacheDir := filepath.Join(dir, "cache")
	outBase := filepath.Join(dir, "out")

	g := NewWhiteNoise()
	if err := g.Generate(input, cacheDir, outBase); err != nil {
		t.Fatalf("first Generate() error: %v", err)
	}

	firstNoisy := g.NoisyPaths()
	mtimes := cacheModTimes(t, cacheDir)

	if err := g.Generate(input, cacheDir, outBase); err != nil {
		t.Fatalf("second Generate() error: %v", err)
	}

	for name, path := range g.NoisyPaths() {
		if firstNoisy[name] != path {
			t.Fatalf("config %q: noisy path changed between runs: %q vs %q",
				name, firstNoisy[name], path)
		}
	}

	// No cached mix may have been rewritten.
	for name, mtime := range cacheModTimes(t, cacheDir) {
		if !mtime.Equal(mtimes[name]) {
			t.Fatalf("cache file %s was rewritten on the second run", name)
		}
	}
}

func cacheModTimes(t *testing.T, dir string) map[string]time.Time {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}

	out := make(map[string]time.Time, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			t.Fatalf("Info() error: %v", err)
		}
		out[e.Name()] = info.ModTime()
	}

	return out
}

func TestWhiteNoiseMissingInput(t *testing.T) {
	dir := t.TempDir()

	g := NewWhiteNoise()
	err := g.Generate(filepath.Join(dir, "nope.wav"), filepath.Join(dir, "cache"), filepath.Join(dir, "out"))
	if err == nil {
		t.Fatal("Generate() with missing input succeeded, want error")
	}
}
