package spectral

import (
	"gonum.org/v1/gonum/floats"
)

// OverallSpectrum is a single frequency-magnitude curve with no time axis:
// the spectrogram's magnitude grid averaged over all frames.
type OverallSpectrum struct {
	Frequencies []float64 `json:"frequencies"` // Same bin centers as the source spectrogram
	Magnitudes  []float64 `json:"magnitudes"`  // Per-bin time-averaged magnitude
}

// SpectrumAggregator reduces a spectrogram to its time-averaged spectrum
type SpectrumAggregator struct {
	// No state needed - stateless calculation
}

// NewSpectrumAggregator creates a new spectrum aggregator
func NewSpectrumAggregator() *SpectrumAggregator {
	return &SpectrumAggregator{}
}

// Aggregate averages magnitude across all frames per bin. A spectrogram with
// zero frames yields all-zero magnitudes.
func (a *SpectrumAggregator) Aggregate(sg *Spectrogram) *OverallSpectrum {
	frequencies := make([]float64, sg.NumBins())
	copy(frequencies, sg.Frequencies)

	magnitudes := make([]float64, sg.NumBins())
	if sg.NumFrames() == 0 {
		return &OverallSpectrum{Frequencies: frequencies, Magnitudes: magnitudes}
	}

	for _, frame := range sg.Magnitudes {
		floats.Add(magnitudes, frame)
	}
	floats.Scale(1.0/float64(sg.NumFrames()), magnitudes)

	return &OverallSpectrum{
		Frequencies: frequencies,
		Magnitudes:  magnitudes,
	}
}
