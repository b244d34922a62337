package spectral

import (
	"fmt"

	"github.com/RyanBlaney/sonido-pitch/algorithms/windowing"
)

// Default analysis parameters. A 2048-sample window at 44.1 kHz gives a bin
// width of ~21.5 Hz; a quarter-window hop gives 75% frame overlap.
const (
	DefaultWindowSize = 2048
	DefaultHopSize    = DefaultWindowSize / 4
)

// Window is the windowing function contract the builder needs. All window
// types in algorithms/windowing satisfy it.
type Window interface {
	ApplyInPlace(signal []float64) error
}

// SpectrogramParams contains parameters for spectrogram computation
type SpectrogramParams struct {
	WindowSize int    `json:"window_size"` // Samples per transform block (power of two)
	HopSize    int    `json:"hop_size"`    // Sample advance between frames
	Window     Window `json:"-"`           // Window function; nil selects a symmetric Hamming
}

// DefaultSpectrogramParams returns the standard 2048/512 Hamming configuration
func DefaultSpectrogramParams() SpectrogramParams {
	return SpectrogramParams{
		WindowSize: DefaultWindowSize,
		HopSize:    DefaultHopSize,
	}
}

// Spectrogram holds a time-frequency magnitude representation of a signal.
// It is produced once and read-only thereafter.
type Spectrogram struct {
	Frequencies    []float64   `json:"frequencies"`     // Bin centers in Hz, length WindowSize/2
	Times          []float64   `json:"times"`           // Frame start times in seconds
	Magnitudes     [][]float64 `json:"magnitudes"`      // Frame-major magnitude grid (frames x bins)
	SampleRate     int         `json:"sample_rate"`     // Sample rate of the analyzed signal
	WindowSize     int         `json:"window_size"`     // Transform block size
	HopSize        int         `json:"hop_size"`        // Hop between frames
	FreqResolution float64     `json:"freq_resolution"` // Bin spacing (Hz)
	TimeResolution float64     `json:"time_resolution"` // Frame spacing (seconds)
}

// NumFrames returns the number of time frames
func (s *Spectrogram) NumFrames() int {
	return len(s.Times)
}

// NumBins returns the number of frequency bins
func (s *Spectrogram) NumBins() int {
	return len(s.Frequencies)
}

// SpectrogramBuilder slides a windowed transform across a signal at a fixed
// hop, assembling the magnitude grid plus axis metadata.
type SpectrogramBuilder struct {
	fft *FFT
}

// NewSpectrogramBuilder creates a new spectrogram builder
func NewSpectrogramBuilder() *SpectrogramBuilder {
	return &SpectrogramBuilder{
		fft: NewFFT(),
	}
}

// Compute builds the spectrogram for a mono signal. Trailing samples shorter
// than one window are dropped; a signal shorter than the window yields a
// spectrogram with zero frames. The window is applied to every frame -- it
// controls spectral leakage and skipping it is not a supported mode.
func (b *SpectrogramBuilder) Compute(signal []float64, sampleRate int, params SpectrogramParams) (*Spectrogram, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}

	if params.WindowSize <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", params.WindowSize)
	}

	if params.HopSize <= 0 {
		return nil, fmt.Errorf("hop size must be positive, got %d", params.HopSize)
	}

	window := params.Window
	if window == nil {
		window = windowing.NewHamming(params.WindowSize, true)
	}

	numFrames := 0
	if len(signal) >= params.WindowSize {
		numFrames = (len(signal)-params.WindowSize)/params.HopSize + 1
	}

	freqBins := params.WindowSize / 2
	frequencies := make([]float64, freqBins)
	for i := 0; i < freqBins; i++ {
		frequencies[i] = float64(i) * float64(sampleRate) / float64(params.WindowSize)
	}

	times := make([]float64, numFrames)
	magnitudes := make([][]float64, numFrames)

	// Reused per-frame buffer so windowing never mutates the input signal
	frameBuffer := make([]float64, params.WindowSize)

	for frame := 0; frame < numFrames; frame++ {
		start := frame * params.HopSize
		copy(frameBuffer, signal[start:start+params.WindowSize])

		if err := window.ApplyInPlace(frameBuffer); err != nil {
			return nil, fmt.Errorf("applying window to frame %d: %w", frame, err)
		}

		magnitudes[frame] = b.fft.MagnitudeSpectrum(frameBuffer)
		times[frame] = float64(start) / float64(sampleRate)
	}

	return &Spectrogram{
		Frequencies:    frequencies,
		Times:          times,
		Magnitudes:     magnitudes,
		SampleRate:     sampleRate,
		WindowSize:     params.WindowSize,
		HopSize:        params.HopSize,
		FreqResolution: float64(sampleRate) / float64(params.WindowSize),
		TimeResolution: float64(params.HopSize) / float64(sampleRate),
	}, nil
}
