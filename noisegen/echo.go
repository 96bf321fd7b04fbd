package noisegen

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/cwbudde/algo-noisegen/fixture"
	"github.com/cwbudde/algo-noisegen/irdb"
	"github.com/cwbudde/algo-noisegen/signal"
	"github.com/cwbudde/algo-noisegen/wav"
)

// ErrNoDatabasePath is returned when the echo generator runs without an
// impulse-response database configured.
var ErrNoDatabasePath = errors.New("noisegen: impulse response database path not set")

// defaultEchoSNRPairs has a 5 dB noisy-to-reference gap, smaller than the
// additive generators' 10 dB since reverberation degrades more subtly.
var defaultEchoSNRPairs = []SNRPair{
	{Noisy: 3, Reference: 8},
	{Noisy: -3, Reference: 2},
}

// defaultImpulseResponses names the database entries to reverberate with:
// a lecture hall (long echo) and a recording booth (short echo).
var defaultImpulseResponses = []string{"lecture", "booth"}

// EchoGenerator simulates acoustic reverberation by convolving the input
// with recorded impulse responses, then mixing the reverberated track back
// into the input at each SNR level. One configuration per (impulse
// response, SNR pair) combination.
type EchoGenerator struct {
	*PairSet

	databasePath     string
	impulseResponses []string
	snrPairs         []SNRPair
	maxIRLength      int
}

// NewEcho creates a reverberation generator. The impulse-response database
// path must be supplied via WithIRDatabasePath before Generate is called.
func NewEcho(opts ...Option) *EchoGenerator {
	cfg := applyOptions(opts...)

	irs := cfg.impulseResponses
	if irs == nil {
		irs = defaultImpulseResponses
	}

	pairs := cfg.snrPairs
	if pairs == nil {
		pairs = defaultEchoSNRPairs
	}

	return &EchoGenerator{
		PairSet:          NewPairSet(),
		databasePath:     cfg.irDatabasePath,
		impulseResponses: irs,
		snrPairs:         pairs,
		maxIRLength:      cfg.maxIRLength,
	}
}

// Name returns "echo".
func (g *EchoGenerator) Name() string {
	return "echo"
}

// Generate produces one reverberated noise track per impulse response
// (cached as "{name}.wav" in noiseCacheDir; a cache hit skips both the
// database load and the convolution), mixes it with the input once per
// distinct SNR level, and registers one configuration per (impulse
// response, SNR pair) combination.
func (g *EchoGenerator) Generate(inputPath, noiseCacheDir, baseOutputDir string) error {
	g.Reset()

	if g.databasePath == "" {
		return ErrNoDatabasePath
	}

	// The input stays unnormalized: the reverberated track is derived from
	// it and both operands of the mix must keep the same scale.
	in, err := wav.Read(inputPath)
	if err != nil {
		return fmt.Errorf("noisegen: loading input signal: %w", err)
	}

	if err := fixture.EnsureDirectory(noiseCacheDir); err != nil {
		return err
	}

	levels := snrLevels(g.snrPairs)

	mixes := make(map[string]map[int]string, len(g.impulseResponses))

	for _, irName := range g.impulseResponses {
		trackPath := filepath.Join(noiseCacheDir, irName+".wav")

		noise, err := wav.Read(trackPath)
		if errors.Is(err, fs.ErrNotExist) {
			noise, err = g.generateNoiseTrack(trackPath, in, irName)
		}
		if err != nil {
			return err
		}

		irMixes := make(map[int]string, len(levels))
		for _, level := range levels {
			path := filepath.Join(noiseCacheDir,
				fmt.Sprintf("%s_%d_SNR.wav", irName, level))

			miss, err := cacheMiss(path)
			if err != nil {
				return err
			}

			if miss {
				// Convolution lengthened the noise track, so the shorter
				// operand is zero-padded.
				mixed, err := signal.Mix(in, noise, float64(level), true)
				if err != nil {
					return err
				}

				if err := wav.Write(path, mixed); err != nil {
					return err
				}
			}

			irMixes[level] = path
		}

		mixes[irName] = irMixes
	}

	return addSNRPairs(g.PairSet, baseOutputDir, g.impulseResponses, mixes, g.snrPairs)
}

// generateNoiseTrack convolves the input with the named impulse response
// and caches the result at trackPath. The database is loaded before
// anything is written, so a missing or malformed database leaves no
// partial cache artifacts behind.
func (g *EchoGenerator) generateNoiseTrack(trackPath string, in signal.Signal, irName string) (signal.Signal, error) {
	entry, err := irdb.Load(g.databasePath, irName)
	if err != nil {
		return signal.Signal{}, fmt.Errorf("noisegen: loading impulse response %q: %w", irName, err)
	}

	ir := entry.Samples
	if g.maxIRLength > 0 && len(ir) > g.maxIRLength {
		ir = ir[:g.maxIRLength]
	}

	reverberated, err := signal.Convolve(in, ir)
	if err != nil {
		return signal.Signal{}, err
	}

	if err := wav.Write(trackPath, reverberated); err != nil {
		return signal.Signal{}, err
	}

	return reverberated, nil
}
