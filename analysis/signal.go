package analysis

// Signal is an immutable decoded mono audio buffer. Decoding itself happens
// outside this library; these helpers only adapt decoder output shapes to
// the pipeline's mono float64 contract.
type Signal struct {
	Samples    []float64 `json:"samples"`
	SampleRate int       `json:"sample_rate"`
}

// Duration returns the signal length in seconds
func (s Signal) Duration() float64 {
	if s.SampleRate <= 0 {
		return 0.0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}

// SignalFromFloat32 widens 32-bit decoder samples into a mono Signal
func SignalFromFloat32(samples []float32, sampleRate int) Signal {
	widened := make([]float64, len(samples))
	for i, s := range samples {
		widened[i] = float64(s)
	}
	return Signal{Samples: widened, SampleRate: sampleRate}
}

// SignalFromInterleaved reduces interleaved multi-channel samples to a mono
// Signal by taking channel 0. channels < 1 is treated as mono.
func SignalFromInterleaved(samples []float64, channels, sampleRate int) Signal {
	if channels <= 1 {
		mono := make([]float64, len(samples))
		copy(mono, samples)
		return Signal{Samples: mono, SampleRate: sampleRate}
	}

	mono := make([]float64, 0, len(samples)/channels)
	for i := 0; i < len(samples); i += channels {
		mono = append(mono, samples[i])
	}
	return Signal{Samples: mono, SampleRate: sampleRate}
}

// SignalFromInterleavedFloat32 combines widening and channel-0 reduction
func SignalFromInterleavedFloat32(samples []float32, channels, sampleRate int) Signal {
	widened := make([]float64, len(samples))
	for i, s := range samples {
		widened[i] = float64(s)
	}
	return SignalFromInterleaved(widened, channels, sampleRate)
}
