// Package signal provides the in-memory audio primitives used to build
// noisy/reference fixture pairs: peak normalization, white-noise synthesis,
// SNR-controlled mixing, and impulse-response convolution.
//
// All operations work on mono float64 buffers tagged with a sample rate and
// return new buffers; inputs are never modified.
package signal

import "errors"

// Errors returned by signal operations.
var (
	ErrEmptySignal        = errors.New("signal: empty signal")
	ErrEmptyKernel        = errors.New("signal: empty impulse response")
	ErrSampleRateMismatch = errors.New("signal: sample rate mismatch")
	ErrSilentNoise        = errors.New("signal: noise signal has zero power")
	ErrInvalidSampleRate  = errors.New("signal: sample rate must be > 0")
)

// Signal holds a mono audio buffer and its sample rate in Hz.
type Signal struct {
	Samples    []float64
	SampleRate int
}

// New wraps samples and a sample rate into a Signal. The slice is shared,
// not copied.
func New(samples []float64, sampleRate int) Signal {
	return Signal{Samples: samples, SampleRate: sampleRate}
}

// Len returns the number of samples.
func (s Signal) Len() int {
	return len(s.Samples)
}

// Clone returns a deep copy of the signal.
func (s Signal) Clone() Signal {
	out := make([]float64, len(s.Samples))
	copy(out, s.Samples)
	return Signal{Samples: out, SampleRate: s.SampleRate}
}

func (s Signal) validate() error {
	if len(s.Samples) == 0 {
		return ErrEmptySignal
	}
	if s.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	return nil
}
