package signal

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Convolve returns the full linear convolution of the signal with an
// impulse response. The output is len(signal) + len(ir) - 1 samples long
// and keeps the signal's sample rate.
//
// Short kernels use direct time-domain convolution; longer ones go through
// a single FFT multiply.
func Convolve(s Signal, impulseResponse []float64) (Signal, error) {
	if err := s.validate(); err != nil {
		return Signal{}, err
	}
	if len(impulseResponse) == 0 {
		return Signal{}, ErrEmptyKernel
	}

	const directThreshold = 64

	var (
		out []float64
		err error
	)
	if len(impulseResponse) <= directThreshold {
		out = convolveDirect(s.Samples, impulseResponse)
	} else {
		out, err = convolveFFT(s.Samples, impulseResponse)
		if err != nil {
			return Signal{}, err
		}
	}

	return Signal{Samples: out, SampleRate: s.SampleRate}, nil
}

// convolveDirect performs O(N*M) time-domain convolution.
func convolveDirect(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			out[i+j] += a[i] * b[j]
		}
	}
	return out
}

// convolveFFT performs single-shot frequency-domain convolution.
func convolveFFT(a, b []float64) ([]float64, error) {
	outLen := len(a) + len(b) - 1
	fftSize := nextPowerOf2(outLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("signal: creating FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	for i, v := range a {
		aPadded[i] = complex(v, 0)
	}

	bPadded := make([]complex128, fftSize)
	for i, v := range b {
		bPadded[i] = complex(v, 0)
	}

	if err := plan.Forward(aPadded, aPadded); err != nil {
		return nil, fmt.Errorf("signal: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bPadded, bPadded); err != nil {
		return nil, fmt.Errorf("signal: forward FFT failed: %w", err)
	}

	for i := range aPadded {
		aPadded[i] *= bPadded[i]
	}

	if err := plan.Inverse(aPadded, aPadded); err != nil {
		return nil, fmt.Errorf("signal: inverse FFT failed: %w", err)
	}

	out := make([]float64, outLen)
	for i := range out {
		out[i] = real(aPadded[i])
	}

	return out, nil
}

// nextPowerOf2 returns the smallest power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
