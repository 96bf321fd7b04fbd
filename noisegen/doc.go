// Package noisegen manufactures matched pairs of degraded audio tracks used
// to evaluate an audio-processing pipeline: a noisy signal, obtained by
// corrupting a clean input at a chosen SNR, and a reference signal, the same
// input corrupted more gently (always at a higher SNR). The reference
// represents the best output the pipeline under test should produce when fed
// the noisy signal.
//
// Each strategy enumerates a discrete set of configurations (for example one
// per SNR pair), produces or reuses a cached noisy track per configuration,
// and records the resulting (noisy, reference, output directory) triple so a
// downstream evaluator can retrieve every pair. Strategies are selected by
// name through a Registry; see DefaultRegistry for the built-in set.
//
// Generated intermediate tracks are cached by deterministic file name in the
// noise cache directory, so repeated runs against the same cache reuse prior
// mixing and convolution work. The cache assumes a single writer: nothing
// guards against two processes generating into the same directory at once.
package noisegen
