package noisegen

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-noisegen/fixture"
	"github.com/cwbudde/algo-noisegen/signal"
	"github.com/cwbudde/algo-noisegen/wav"
)

// ErrMissingNoiseTrack is returned when a configured environmental noise
// track file does not exist. There is no fallback to a different track.
var ErrMissingNoiseTrack = errors.New("noisegen: missing noise track")

// defaultNoiseTracks lists the noise track file names expected in the
// noise tracks directory.
var defaultNoiseTracks = []string{"city.wav"}

// EnvironmentalGenerator degrades the input with pre-recorded environmental
// noise, one configuration per (noise track, SNR pair) combination.
type EnvironmentalGenerator struct {
	*PairSet

	tracksDir string
	tracks    []string
	snrPairs  []SNRPair
}

// NewEnvironmental creates an additive environmental noise generator.
func NewEnvironmental(opts ...Option) *EnvironmentalGenerator {
	cfg := applyOptions(opts...)

	tracks := cfg.noiseTracks
	if tracks == nil {
		tracks = defaultNoiseTracks
	}

	pairs := cfg.snrPairs
	if pairs == nil {
		pairs = defaultSNRPairs
	}

	return &EnvironmentalGenerator{
		PairSet:   NewPairSet(),
		tracksDir: cfg.noiseTracksDir,
		tracks:    tracks,
		snrPairs:  pairs,
	}
}

// Name returns "environmental".
func (g *EnvironmentalGenerator) Name() string {
	return "environmental"
}

// Generate mixes the normalized input with each normalized noise track once
// per distinct SNR level, caching each mix in noiseCacheDir, then registers
// one configuration per (track, SNR pair) combination.
func (g *EnvironmentalGenerator) Generate(inputPath, noiseCacheDir, baseOutputDir string) error {
	g.Reset()

	in, err := wav.Read(inputPath)
	if err != nil {
		return fmt.Errorf("noisegen: loading input signal: %w", err)
	}

	in, err = signal.Normalize(in)
	if err != nil {
		return err
	}

	if err := fixture.EnsureDirectory(noiseCacheDir); err != nil {
		return err
	}

	levels := snrLevels(g.snrPairs)

	trackNames := make([]string, 0, len(g.tracks))
	mixes := make(map[string]map[int]string, len(g.tracks))

	for _, trackFile := range g.tracks {
		trackName := strings.TrimSuffix(trackFile, filepath.Ext(trackFile))

		noise, err := wav.Read(filepath.Join(g.tracksDir, trackFile))
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissingNoiseTrack, trackFile)
		}
		if err != nil {
			return fmt.Errorf("noisegen: loading noise track %s: %w", trackFile, err)
		}

		noise, err = signal.Normalize(noise)
		if err != nil {
			return err
		}

		trackMixes := make(map[int]string, len(levels))
		for _, level := range levels {
			path := filepath.Join(noiseCacheDir,
				fmt.Sprintf("%s_%d_SNR.wav", trackName, level))

			miss, err := cacheMiss(path)
			if err != nil {
				return err
			}

			if miss {
				mixed, err := signal.Mix(in, noise, float64(level), false)
				if err != nil {
					return err
				}

				if err := wav.Write(path, mixed); err != nil {
					return err
				}
			}

			trackMixes[level] = path
		}

		trackNames = append(trackNames, trackName)
		mixes[trackName] = trackMixes
	}

	return addSNRPairs(g.PairSet, baseOutputDir, trackNames, mixes, g.snrPairs)
}
