// Package fixture persists the bookkeeping a downstream evaluator needs to
// retrieve generated noisy/reference pairs: it creates per-configuration
// output directories and records the pair of audio file paths inside them.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// pairFilename is the metadata file written into each output directory.
const pairFilename = "noisy_ref_paths.json"

// PairRecord associates a noisy input track with its reference track.
type PairRecord struct {
	NoisyPath     string `json:"noisy_path"`
	ReferencePath string `json:"reference_path"`
}

// EnsureDirectory creates path and any missing parents. It is idempotent.
func EnsureDirectory(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("fixture: creating directory %s: %w", path, err)
	}
	return nil
}

// RecordPair writes the noisy/reference association into outputDir so an
// evaluator can later retrieve it with LoadPair.
func RecordPair(outputDir, noisyPath, referencePath string) error {
	rec := PairRecord{NoisyPath: noisyPath, ReferencePath: referencePath}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("fixture: encoding pair record: %w", err)
	}

	path := filepath.Join(outputDir, pairFilename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("fixture: writing pair record %s: %w", path, err)
	}

	return nil
}

// LoadPair reads the pair record previously written into outputDir.
func LoadPair(outputDir string) (PairRecord, error) {
	path := filepath.Join(outputDir, pairFilename)

	data, err := os.ReadFile(path)
	if err != nil {
		return PairRecord{}, err
	}

	var rec PairRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return PairRecord{}, fmt.Errorf("fixture: decoding pair record %s: %w", path, err)
	}

	return rec, nil
}
