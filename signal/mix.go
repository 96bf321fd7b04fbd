package signal

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Mix sums signal and noise with the noise scaled so that the resulting
// signal-to-noise power ratio equals snrDB.
//
// Without padding the output has the signal's length and the noise is
// truncated (or runs out) beyond its own length. With padShortest the
// output has the length of the longer operand and the shorter one is
// zero-extended; this is needed when the noise was produced by convolution
// and is therefore longer than the signal.
func Mix(sig, noise Signal, snrDB float64, padShortest bool) (Signal, error) {
	if err := sig.validate(); err != nil {
		return Signal{}, err
	}
	if err := noise.validate(); err != nil {
		return Signal{}, err
	}
	if sig.SampleRate != noise.SampleRate {
		return Signal{}, ErrSampleRateMismatch
	}

	noisePower := meanPower(noise.Samples)
	if noisePower == 0 {
		return Signal{}, ErrSilentNoise
	}

	// Gain that brings the signal-to-scaled-noise power ratio to snrDB.
	sigPower := meanPower(sig.Samples)
	gain := math.Sqrt(sigPower / (noisePower * math.Pow(10, snrDB/10)))

	n := len(sig.Samples)
	if padShortest && len(noise.Samples) > n {
		n = len(noise.Samples)
	}

	out := make([]float64, n)
	for i := range out {
		if i < len(sig.Samples) {
			out[i] = sig.Samples[i]
		}
		if i < len(noise.Samples) {
			out[i] += gain * noise.Samples[i]
		}
	}

	return Signal{Samples: out, SampleRate: sig.SampleRate}, nil
}

// meanPower returns the mean squared amplitude of samples.
func meanPower(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	squared := make([]float64, len(samples))
	vecmath.MulBlock(squared, samples, samples)

	sum := 0.0
	for _, v := range squared {
		sum += v
	}

	return sum / float64(len(samples))
}
