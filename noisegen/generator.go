package noisegen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Generator produces a set of noisy/reference fixture pairs from one clean
// input track.
//
// Generate resets all bookkeeping, enumerates the strategy's
// configurations, produces (or reuses from noiseCacheDir) the audio tracks
// each configuration needs, and records one (noisy, reference, output
// directory) triple per configuration under baseOutputDir. The run aborts
// on the first unrecoverable error.
type Generator interface {
	// Name returns the symbolic name the strategy is registered under.
	Name() string

	// Reset discards all configurations recorded by a previous run.
	Reset()

	// Generate enumerates the strategy's configurations for one input.
	Generate(inputPath, noiseCacheDir, baseOutputDir string) error

	// ConfigNames returns the configuration names of the last run.
	ConfigNames() []string

	// NoisyPaths, ReferencePaths and OutputDirs expose the bookkeeping of
	// the last run, keyed by configuration name.
	NoisyPaths() map[string]string
	ReferencePaths() map[string]string
	OutputDirs() map[string]string
}

// snrLevels returns the distinct SNR levels referenced by any pair,
// ascending. Pairs sharing an endpoint level contribute it once, so mixes
// for that level are produced once and reused.
func snrLevels(pairs []SNRPair) []int {
	seen := make(map[int]bool, 2*len(pairs))
	for _, p := range pairs {
		seen[p.Noisy] = true
		seen[p.Reference] = true
	}

	levels := make([]int, 0, len(seen))
	for level := range seen {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	return levels
}

// cacheMiss reports whether path needs to be generated. File existence is
// the cache-hit test.
func cacheMiss(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	return false, fmt.Errorf("noisegen: probing cache file %s: %w", path, err)
}

// addSNRPairs registers one configuration per (track, SNR pair)
// combination, pointing the noisy and reference paths at the cached mixes
// for the pair's two levels.
func addSNRPairs(ps *PairSet, baseOutputDir string, trackNames []string,
	mixes map[string]map[int]string, pairs []SNRPair,
) error {
	for _, track := range trackNames {
		for _, p := range pairs {
			name := fmt.Sprintf("%s_%d_%d_SNR", track, p.Noisy, p.Reference)

			err := ps.Add(name,
				mixes[track][p.Noisy],
				mixes[track][p.Reference],
				filepath.Join(baseOutputDir, name))
			if err != nil {
				return err
			}
		}
	}

	return nil
}
