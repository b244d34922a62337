package pitch

import (
	"math"
	"sort"

	"github.com/RyanBlaney/sonido-pitch/algorithms/common"
	"github.com/RyanBlaney/sonido-pitch/algorithms/spectral"
)

// FundamentalTrack holds one fundamental frequency estimate per spectrogram
// frame as parallel arrays. Frequency 0 means no pitch was detected for that
// frame.
type FundamentalTrack struct {
	Times       []float64 `json:"times"`       // Frame start times in seconds
	Frequencies []float64 `json:"frequencies"` // Estimated fundamentals in Hz (0 = none)
	Confidences []float64 `json:"confidences"` // Per-frame confidence (0-1)
}

// NumFrames returns the number of frames in the track
func (t *FundamentalTrack) NumFrames() int {
	return len(t.Times)
}

// FundamentalEstimator selects one fundamental frequency and a confidence
// score per spectrogram frame, using the previous frame's result for
// temporal continuity.
type FundamentalEstimator struct {
	params FundamentalParams
}

// NewFundamentalEstimator creates a single-pitch estimator
func NewFundamentalEstimator(params FundamentalParams) *FundamentalEstimator {
	return &FundamentalEstimator{params: params}
}

// EstimateTrack walks the spectrogram frame by frame. The previous
// fundamental is threaded through as an explicit accumulator so each frame
// estimate stays a pure function of (frame, previousFreq).
func (fe *FundamentalEstimator) EstimateTrack(sg *spectral.Spectrogram) *FundamentalTrack {
	track := &FundamentalTrack{
		Times:       make([]float64, sg.NumFrames()),
		Frequencies: make([]float64, sg.NumFrames()),
		Confidences: make([]float64, sg.NumFrames()),
	}

	previousFreq := 0.0
	for i, frame := range sg.Magnitudes {
		freq, confidence := fe.EstimateFrame(frame, sg.Frequencies, sg.FreqResolution, previousFreq)

		track.Times[i] = sg.Times[i]
		track.Frequencies[i] = freq
		track.Confidences[i] = confidence

		previousFreq = freq
	}

	if fe.params.MedianFilter > 1 {
		track.Frequencies = medianFilter(track.Frequencies, fe.params.MedianFilter)
	}

	return track
}

// EstimateFrame estimates the fundamental for a single magnitude frame.
// previousFreq is the previous frame's fundamental (0 for frame 0 or after
// an unpitched frame). Returns frequency 0 and confidence 0 when no bin in
// the band clears the magnitude floor.
func (fe *FundamentalEstimator) EstimateFrame(magnitudes, frequencies []float64, freqResolution, previousFreq float64) (float64, float64) {
	bestStrength := 0.0
	bestFreq := 0.0
	bestMagnitude := 0.0
	bestHarmonic := 1.0

	for i, freq := range frequencies {
		if freq < fe.params.MinFreq || freq >= fe.params.MaxFreq {
			continue
		}

		magnitude := magnitudes[i]
		if magnitude <= fe.params.MagnitudeFloor {
			continue
		}

		hs := harmonicStrength(magnitudes, frequencies, freq, freqResolution)
		strength := magnitude * hs

		if strength > bestStrength {
			bestStrength = strength
			bestFreq = freq
			bestMagnitude = magnitude
			bestHarmonic = hs
		}
	}

	if bestFreq == 0 {
		return 0.0, 0.0
	}

	confidence := fe.confidence(magnitudes, bestFreq, bestMagnitude, bestHarmonic, previousFreq)
	return bestFreq, confidence
}

// confidence combines four sub-scores, each clamped to
// [0, FundamentalScoreCap]. Their sum is the [0,1] confidence, which equals
// the unweighted average of the four scores rescaled to [0,1].
func (fe *FundamentalEstimator) confidence(magnitudes []float64, freq, magnitude, harmonic, previousFreq float64) float64 {
	totalEnergy := common.SumSquares(magnitudes)
	energyScore := math.Min(magnitude*magnitude/(totalEnergy+common.Epsilon), FundamentalScoreCap)

	harmonicScore := math.Min((harmonic-1.0)/FundamentalHarmonicDivisor, FundamentalScoreCap)

	continuityScore := ContinuityNeutral
	if previousFreq > 0 {
		ratio := math.Min(freq, previousFreq) / math.Max(freq, previousFreq)
		continuityScore = math.Min(ratio, FundamentalScoreCap)
	}

	noise := noiseFloor(magnitudes, FundamentalNoiseFraction)
	snr := snrScore(magnitude, noise, FundamentalSNRDivisor, FundamentalScoreCap)

	return energyScore + harmonicScore + continuityScore + snr
}

// medianFilter smooths a track with a sliding median of odd length. The
// window shrinks symmetrically near the edges so it stays odd and centered.
func medianFilter(values []float64, length int) []float64 {
	filtered := make([]float64, len(values))
	window := make([]float64, 0, length)

	for i := range values {
		half := min(length/2, min(i, len(values)-1-i))

		window = window[:0]
		window = append(window, values[i-half:i+half+1]...)
		sort.Float64s(window)

		filtered[i] = window[len(window)/2]
	}

	return filtered
}
