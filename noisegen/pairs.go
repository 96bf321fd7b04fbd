package noisegen

import (
	"fmt"
	"path/filepath"

	"github.com/cwbudde/algo-noisegen/fixture"
)

// PairSet is the bookkeeping every generator publishes its configurations
// through: for each configuration name it records the noisy track path, the
// reference track path, and the output directory a downstream evaluation of
// that configuration should write to. All paths are stored in absolute form
// so lookups do not depend on the working directory.
//
// A PairSet is owned by exactly one generator and reset at the start of
// every Generate call; entries never survive across runs.
type PairSet struct {
	names      []string
	noisy      map[string]string
	reference  map[string]string
	outputDirs map[string]string
}

// NewPairSet returns an empty pair set.
func NewPairSet() *PairSet {
	p := &PairSet{}
	p.Reset()
	return p
}

// Reset discards all recorded configurations.
func (p *PairSet) Reset() {
	p.names = nil
	p.noisy = make(map[string]string)
	p.reference = make(map[string]string)
	p.outputDirs = make(map[string]string)
}

// Add records one configuration. It resolves all three paths to absolute
// form, creates the output directory if missing, and persists the
// noisy/reference association for later retrieval by an evaluator.
//
// Registering the same configuration name twice within one run is a
// programming error and panics.
func (p *PairSet) Add(configName, noisyPath, referencePath, outputDir string) error {
	if _, exists := p.noisy[configName]; exists {
		panic("noisegen: duplicate configuration " + configName)
	}

	absNoisy, err := filepath.Abs(noisyPath)
	if err != nil {
		return fmt.Errorf("noisegen: resolving noisy path: %w", err)
	}

	absReference, err := filepath.Abs(referencePath)
	if err != nil {
		return fmt.Errorf("noisegen: resolving reference path: %w", err)
	}

	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("noisegen: resolving output dir: %w", err)
	}

	if err := fixture.EnsureDirectory(absOutput); err != nil {
		return err
	}

	if err := fixture.RecordPair(absOutput, absNoisy, absReference); err != nil {
		return err
	}

	p.names = append(p.names, configName)
	p.noisy[configName] = absNoisy
	p.reference[configName] = absReference
	p.outputDirs[configName] = absOutput

	return nil
}

// Len returns the number of recorded configurations.
func (p *PairSet) Len() int {
	return len(p.names)
}

// ConfigNames returns the configuration names in registration order.
func (p *PairSet) ConfigNames() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// NoisyPaths returns a copy of the configuration → noisy track mapping.
func (p *PairSet) NoisyPaths() map[string]string {
	return copyMap(p.noisy)
}

// ReferencePaths returns a copy of the configuration → reference track
// mapping.
func (p *PairSet) ReferencePaths() map[string]string {
	return copyMap(p.reference)
}

// OutputDirs returns a copy of the configuration → output directory
// mapping.
func (p *PairSet) OutputDirs() map[string]string {
	return copyMap(p.outputDirs)
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
