package noisegen

import "path/filepath"

// IdentityGenerator adds no noise: both the noisy and the reference track
// are the clean input itself. Useful as a control baseline for evaluation.
type IdentityGenerator struct {
	*PairSet
}

// NewIdentity creates the no-op generator.
func NewIdentity() *IdentityGenerator {
	return &IdentityGenerator{PairSet: NewPairSet()}
}

// Name returns "identity".
func (g *IdentityGenerator) Name() string {
	return "identity"
}

// Generate registers the single configuration "default" with the input
// path as both the noisy and the reference track.
func (g *IdentityGenerator) Generate(inputPath, _, baseOutputDir string) error {
	g.Reset()

	const configName = "default"

	return g.Add(configName, inputPath, inputPath,
		filepath.Join(baseOutputDir, configName))
}
