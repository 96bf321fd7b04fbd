package noisegen

import (
	"fmt"
	"path/filepath"

	"github.com/cwbudde/algo-noisegen/fixture"
	"github.com/cwbudde/algo-noisegen/signal"
	"github.com/cwbudde/algo-noisegen/wav"
)

// defaultSNRPairs is the table shared by the white and environmental
// generators, ordered from least to most noise. The reference level sits
// 10 dB above the noisy level of every pair.
var defaultSNRPairs = []SNRPair{
	{Noisy: 20, Reference: 30},
	{Noisy: 10, Reference: 20},
	{Noisy: 5, Reference: 15},
	{Noisy: 0, Reference: 10},
}

// WhiteNoiseGenerator degrades the input with additive white noise, one
// configuration per SNR pair.
type WhiteNoiseGenerator struct {
	*PairSet

	seed     int64
	snrPairs []SNRPair
}

// NewWhiteNoise creates an additive white noise generator.
func NewWhiteNoise(opts ...Option) *WhiteNoiseGenerator {
	cfg := applyOptions(opts...)

	pairs := cfg.snrPairs
	if pairs == nil {
		pairs = defaultSNRPairs
	}

	return &WhiteNoiseGenerator{
		PairSet:  NewPairSet(),
		seed:     cfg.seed,
		snrPairs: pairs,
	}
}

// Name returns "white".
func (g *WhiteNoiseGenerator) Name() string {
	return "white"
}

// Generate mixes the normalized input with synthesized white noise once
// per distinct SNR level, caching each mix in noiseCacheDir, then registers
// one configuration per SNR pair pointing at the cached mixes.
func (g *WhiteNoiseGenerator) Generate(inputPath, noiseCacheDir, baseOutputDir string) error {
	g.Reset()

	in, err := wav.Read(inputPath)
	if err != nil {
		return fmt.Errorf("noisegen: loading input signal: %w", err)
	}

	in, err = signal.Normalize(in)
	if err != nil {
		return err
	}

	noise, err := signal.WhiteNoise(in, g.seed)
	if err != nil {
		return err
	}

	noise, err = signal.Normalize(noise)
	if err != nil {
		return err
	}

	if err := fixture.EnsureDirectory(noiseCacheDir); err != nil {
		return err
	}

	// One cached mix per distinct level; pairs sharing a level reuse it.
	mixes := make(map[int]string)
	for _, level := range snrLevels(g.snrPairs) {
		path := filepath.Join(noiseCacheDir, fmt.Sprintf("noise_%d_SNR.wav", level))

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

		mixes[level] = path
	}

	for _, p := range g.snrPairs {
		name := fmt.Sprintf("%d_%d_SNR", p.Noisy, p.Reference)

		err := g.Add(name, mixes[p.Noisy], mixes[p.Reference],
			filepath.Join(baseOutputDir, name))
		if err != nil {
			return err
		}
	}

	return nil
}
