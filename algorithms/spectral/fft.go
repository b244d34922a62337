package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT provides real-input Fast Fourier Transform functionality
type FFT struct {
	// No state needed - stateless calculation
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes the Fast Fourier Transform using mjibson/go-dsp.
// Takes []float64 input and returns the full []complex128 spectrum.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	return fft.FFTReal(x)
}

// MagnitudeSpectrum computes the magnitude of the first len(block)/2 bins of
// the real-input transform: sqrt(re^2 + im^2) per bin. The block is expected
// to be windowed already. Power-of-two block lengths are a caller
// precondition; they keep the transform on its fast path.
func (f *FFT) MagnitudeSpectrum(block []float64) []float64 {
	if len(block) == 0 {
		return []float64{}
	}

	spectrum := fft.FFTReal(block)
	bins := len(block) / 2

	magnitude := make([]float64, bins)
	for i := 0; i < bins; i++ {
		magnitude[i] = cmplx.Abs(spectrum[i])
	}

	return magnitude
}
