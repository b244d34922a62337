// Package analysis is the high-level facade over the spectral and pitch
// algorithm packages: one Analyzer exposing spectrogram computation,
// single-pitch and multi-pitch tracking, and spectrum aggregation over a
// pre-loaded mono buffer.
package analysis

import (
	"github.com/RyanBlaney/sonido-pitch/algorithms/pitch"
	"github.com/RyanBlaney/sonido-pitch/algorithms/spectral"
	"github.com/RyanBlaney/sonido-pitch/logging"
)

// Analyzer runs the spectral analysis and pitch estimation pipeline.
//
// The whole pipeline is synchronous, deterministic CPU work over the full
// buffer; nothing blocks or suspends. Analyzer instances are independent,
// but the cached sample rate is unsynchronized instance state, so a single
// instance must not be invoked concurrently.
type Analyzer struct {
	builder    *spectral.SpectrogramBuilder
	aggregator *spectral.SpectrumAggregator
	sampleRate int
	logger     logging.Logger
}

// NewAnalyzer creates an analyzer with default parameters
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		builder:    spectral.NewSpectrogramBuilder(),
		aggregator: spectral.NewSpectrumAggregator(),
		logger: logging.WithFields(logging.Fields{
			"component": "pitch_analyzer",
		}),
	}
}

// SampleRate returns the sample rate of the most recently computed
// spectrogram, or 0 if none has been computed yet.
func (a *Analyzer) SampleRate() int {
	return a.sampleRate
}

// ComputeSpectrogram builds the time-frequency magnitude grid for a mono
// signal with the default 2048/512 Hamming configuration.
func (a *Analyzer) ComputeSpectrogram(samples []float64, sampleRate int) (*spectral.Spectrogram, error) {
	return a.ComputeSpectrogramWithParams(samples, sampleRate, spectral.DefaultSpectrogramParams())
}

// ComputeSpectrogramWithParams builds the spectrogram with explicit framing
// parameters and caches the sample rate on the analyzer.
func (a *Analyzer) ComputeSpectrogramWithParams(samples []float64, sampleRate int, params spectral.SpectrogramParams) (*spectral.Spectrogram, error) {
	logger := a.logger.WithFields(logging.Fields{
		"function":      "ComputeSpectrogram",
		"signal_length": len(samples),
		"sample_rate":   sampleRate,
		"window_size":   params.WindowSize,
		"hop_size":      params.HopSize,
	})

	sg, err := a.builder.Compute(samples, sampleRate, params)
	if err != nil {
		logger.Error(err, "Spectrogram computation failed")
		return nil, err
	}

	a.sampleRate = sampleRate

	logger.Debug("Spectrogram computed", logging.Fields{
		"frames": sg.NumFrames(),
		"bins":   sg.NumBins(),
	})

	return sg, nil
}

// ComputeSignalSpectrogram is ComputeSpectrogram over a Signal value
func (a *Analyzer) ComputeSignalSpectrogram(sig Signal) (*spectral.Spectrogram, error) {
	return a.ComputeSpectrogram(sig.Samples, sig.SampleRate)
}

// EstimateFundamentalTrack derives one fundamental frequency and confidence
// per frame with default estimator parameters.
func (a *Analyzer) EstimateFundamentalTrack(sg *spectral.Spectrogram) *pitch.FundamentalTrack {
	return a.EstimateFundamentalTrackWithParams(sg, pitch.DefaultFundamentalParams())
}

// EstimateFundamentalTrackWithParams derives the fundamental track with
// explicit estimator parameters.
func (a *Analyzer) EstimateFundamentalTrackWithParams(sg *spectral.Spectrogram, params pitch.FundamentalParams) *pitch.FundamentalTrack {
	track := pitch.NewFundamentalEstimator(params).EstimateTrack(sg)

	a.logger.Debug("Fundamental track estimated", logging.Fields{
		"function": "EstimateFundamentalTrack",
		"frames":   track.NumFrames(),
	})

	return track
}

// DetectMultiNoteTrack detects up to maxNotes concurrent pitches per frame.
// maxNotes <= 0 selects the default cap of 5.
func (a *Analyzer) DetectMultiNoteTrack(sg *spectral.Spectrogram, maxNotes int) []pitch.NoteFrame {
	params := pitch.DefaultPolyphonicParams()
	if maxNotes > 0 {
		params.MaxNotes = maxNotes
	}
	return a.DetectMultiNoteTrackWithParams(sg, params)
}

// DetectMultiNoteTrackWithParams runs multi-pitch detection with explicit
// detector parameters.
func (a *Analyzer) DetectMultiNoteTrackWithParams(sg *spectral.Spectrogram, params pitch.PolyphonicParams) []pitch.NoteFrame {
	track := pitch.NewPolyphonicDetector(params).DetectTrack(sg)

	a.logger.Debug("Multi-note track detected", logging.Fields{
		"function": "DetectMultiNoteTrack",
		"frames":   len(track),
	})

	return track
}

// AggregateSpectrum time-averages the spectrogram into one overall
// frequency-magnitude curve.
func (a *Analyzer) AggregateSpectrum(sg *spectral.Spectrogram) *spectral.OverallSpectrum {
	return a.aggregator.Aggregate(sg)
}
