package signal

import (
	"math"
	"math/rand"
)

// Normalize scales the signal so its peak absolute amplitude is 1.0 and
// returns the result as a new signal. A silent signal normalizes to silence.
func Normalize(s Signal) (Signal, error) {
	if err := s.validate(); err != nil {
		return Signal{}, err
	}

	maxAbs := 0.0
	for _, v := range s.Samples {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(s.Samples))
	if maxAbs == 0 {
		return Signal{Samples: out, SampleRate: s.SampleRate}, nil
	}

	scale := 1.0 / maxAbs
	for i, v := range s.Samples {
		out[i] = v * scale
	}

	return Signal{Samples: out, SampleRate: s.SampleRate}, nil
}

// WhiteNoise generates deterministic white noise in [-1, 1] matching the
// duration and sample rate of the reference signal. The same seed always
// produces the same noise, so cached mixes derived from it stay valid
// across runs.
func WhiteNoise(reference Signal, seed int64) (Signal, error) {
	if err := reference.validate(); err != nil {
		return Signal{}, err
	}

	out := make([]float64, len(reference.Samples))
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return Signal{Samples: out, SampleRate: reference.SampleRate}, nil
}
