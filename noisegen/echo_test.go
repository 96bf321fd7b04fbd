package noisegen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-noisegen/internal/testutil"
	"github.com/cwbudde/algo-noisegen/internal/testutil/wavtest"
	"github.com/cwbudde/algo-noisegen/irdb"
	"github.com/cwbudde/algo-noisegen/wav"
)

// writeTestIRDatabase creates a database with a long and a short impulse
// response and returns its path.
func writeTestIRDatabase(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "rooms.irdb")

	entries := []irdb.Entry{
		{Name: "lecture", SampleRate: 8000, Samples: testutil.DeterministicNoise(21, 0.05, 1500)},
		{Name: "booth", SampleRate: 8000, Samples: testutil.DeterministicNoise(22, 0.05, 150)},
	}
	if err := irdb.Write(path, entries); err != nil {
		t.Fatalf("writing IR database: %v", err)
	}

	return path
}

func TestEchoGenerate(t *testing.T) {
	dir := t.TempDir()
	input := wavtest.SineWAV(t, dir, "speech.wav")
	cacheDir := filepath.Join(dir, "cache")
	dbPath := writeTestIRDatabase(t, dir)

	g := NewEcho(WithIRDatabasePath(dbPath))
	if err := g.Generate(input, cacheDir, filepath.Join(dir, "out")); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	requireNames(t, g.ConfigNames(), []string{
		"lecture_3_8_SNR", "lecture_-3_2_SNR", "booth_3_8_SNR", "booth_-3_2_SNR",
	})
	requireBookkeepingConsistent(t, g)

	// One reverberated noise track per impulse response, convolution
	// lengthened beyond the input.
	inputLen := 8000
	for _, irName := range []string{"lecture", "booth"} {
		track, err := wav.Read(filepath.Join(cacheDir, irName+".wav"))
		if err != nil {
			t.Fatalf("reading noise track %s: %v", irName, err)
		}
		if track.Len() <= inputLen {
			t.Fatalf("noise track %s has %d samples, want > %d", irName, track.Len(), inputLen)
		}
	}

	for _, name := range g.ConfigNames() {
		if _, err := wav.Read(g.NoisyPaths()[name]); err != nil {
			t.Fatalf("config %q: noisy track unreadable: %v", name, err)
		}
	}
}

func TestEchoReferenceGap(t *testing.T) {
	g := NewEcho(WithIRDatabasePath("unused.irdb"))

	for _, p := range g.snrPairs {
		if p.Reference-p.Noisy != 5 {
			t.Fatalf("pair %+v: reference gap = %d dB, want 5", p, p.Reference-p.Noisy)
		}
	}
}

func TestEchoNoDatabasePath(t *testing.T) {
	dir := t.TempDir()
	input := wavtest.SineWAV(t, dir, "speech.wav")

	g := NewEcho()
	err := g.Generate(input, filepath.Join(dir, "cache"), filepath.Join(dir, "out"))
	if !errors.Is(err, ErrNoDatabasePath) {
		t.Fatalf("Generate() error = %v, want ErrNoDatabasePath", err)
	}
}

func TestEchoMissingDatabaseLeavesNoCacheArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := wavtest.SineWAV(t, dir, "speech.wav")
	cacheDir := filepath.Join(dir, "cache")

	g := NewEcho(WithIRDatabasePath(filepath.Join(dir, "nope.irdb")))
	err := g.Generate(input, cacheDir, filepath.Join(dir, "out"))
	if err == nil {
		t.Fatal("Generate() with missing database succeeded, want error")
	}

	entries, err := os.ReadDir(cacheDir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("cache holds %d files after failed run, want 0", len(entries))
	}
}

func TestEchoMissingEntry(t *testing.T) {
	dir := t.TempDir()
	input := wavtest.SineWAV(t, dir, "speech.wav")
	dbPath := writeTestIRDatabase(t, dir)

	g := NewEcho(
		WithIRDatabasePath(dbPath),
		WithImpulseResponses([]string{"cathedral"}),
	)
	err := g.Generate(input, filepath.Join(dir, "cache"), filepath.Join(dir, "out"))
	if !errors.Is(err, irdb.ErrEntryNotFound) {
		t.Fatalf("Generate() error = %v, want irdb.ErrEntryNotFound", err)
	}
}

func TestEchoTruncatesImpulseResponse(t *testing.T) {
	dir := t.TempDir()
	input := wavtest.SineWAV(t, dir, "speech.wav")
	cacheDir := filepath.Join(dir, "cache")
	dbPath := writeTestIRDatabase(t, dir)

	const maxTaps = 64

	g := NewEcho(
		WithIRDatabasePath(dbPath),
		WithImpulseResponses([]string{"lecture"}),
		WithMaxImpulseResponseLength(maxTaps),
	)
	if err := g.Generate(input, cacheDir, filepath.Join(dir, "out")); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	track, err := wav.Read(filepath.Join(cacheDir, "lecture.wav"))
	if err != nil {
		t.Fatalf("reading noise track: %v", err)
	}

	wantLen := 8000 + maxTaps - 1
	if track.Len() != wantLen {
		t.Fatalf("noise track has %d samples, want %d (truncated convolution)", track.Len(), wantLen)
	}
}

func TestEchoReusesCachedNoiseTrack(t *testing.T) {
	dir := t.TempDir()
	input := wavtest.SineWAV(t, dir, "speech.wav")
	cacheDir := filepath.Join(dir, "cache")
	outBase := filepath.Join(dir, "out")
	dbPath := writeTestIRDatabase(t, dir)

	g := NewEcho(WithIRDatabasePath(dbPath))
	if err := g.Generate(input, cacheDir, outBase); err != nil {
		t.Fatalf("first Generate() error: %v", err)
	}

	firstNoisy := g.NoisyPaths()

	// Removing the database proves the second run never touches it: the
	// cached noise tracks short-circuit both the load and the convolution.
	if err := os.Remove(dbPath); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	if err := g.Generate(input, cacheDir, outBase); err != nil {
		t.Fatalf("second Generate() error: %v", err)
	}

	for name, path := range g.NoisyPaths() {
		if firstNoisy[name] != path {
			t.Fatalf("config %q: noisy path changed between runs", name)
		}
	}
}
