package noisegen

import (
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-noisegen/internal/testutil"
	"github.com/cwbudde/algo-noisegen/signal"
	"github.com/cwbudde/algo-noisegen/wav"
)

func TestSNRLevelsDistinctSorted(t *testing.T) {
	pairs := []SNRPair{{20, 30}, {10, 20}, {5, 15}, {0, 10}}

	got := snrLevels(pairs)
	want := []int{0, 5, 10, 15, 20, 30}

	if len(got) != len(want) {
		t.Fatalf("snrLevels() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("snrLevels() = %v, want %v", got, want)
		}
	}
}

func TestSNRLevelsNegative(t *testing.T) {
	got := snrLevels([]SNRPair{{3, 8}, {-3, 2}})
	want := []int{-3, 2, 3, 8}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("snrLevels() = %v, want %v", got, want)
		}
	}
}

func TestCacheMiss(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "noise_10_SNR.wav")
	miss, err := cacheMiss(missing)
	if err != nil {
		t.Fatalf("cacheMiss() error: %v", err)
	}
	if !miss {
		t.Fatal("cacheMiss() = false for missing file, want true")
	}

	s := signal.New(testutil.DeterministicSine(440, 8000, 0.5, 64), 8000)
	if err := wav.Write(missing, s); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	miss, err = cacheMiss(missing)
	if err != nil {
		t.Fatalf("cacheMiss() error: %v", err)
	}
	if miss {
		t.Fatal("cacheMiss() = true for existing file, want false")
	}
}
