package wavtest

import (
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-noisegen/internal/testutil"
	"github.com/cwbudde/algo-noisegen/signal"
	"github.com/cwbudde/algo-noisegen/wav"
)

// WriteWAV writes a mono signal to dir/name and returns the file path.
func WriteWAV(t *testing.T, dir, name string, s signal.Signal) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := wav.Write(path, s); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}

	return path
}

// SineWAV writes a one-second 440 Hz sine fixture at 8 kHz to dir/name and
// returns the file path.
func SineWAV(t *testing.T, dir, name string) string {
	t.Helper()

	const sampleRate = 8000

	samples := testutil.DeterministicSine(440, sampleRate, 0.5, sampleRate)

	return WriteWAV(t, dir, name, signal.New(samples, sampleRate))
}
