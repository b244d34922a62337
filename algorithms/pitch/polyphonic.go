package pitch

import (
	"math"
	"sort"

	"github.com/RyanBlaney/sonido-pitch/algorithms/common"
	"github.com/RyanBlaney/sonido-pitch/algorithms/spectral"
)

// DetectedNote is one concurrent pitch found in a frame
type DetectedNote struct {
	Frequency  float64 `json:"frequency"`  // Note frequency in Hz
	Confidence float64 `json:"confidence"` // Confidence score (0-1)
	Magnitude  float64 `json:"magnitude"`  // Harmonic-boosted magnitude used for ranking
}

// NoteFrame holds the notes detected in one spectrogram frame, ordered by
// descending boosted magnitude.
type NoteFrame struct {
	Time  float64        `json:"time"`  // Frame start time in seconds
	Notes []DetectedNote `json:"notes"` // At most MaxNotes entries
}

// PolyphonicDetector detects multiple concurrent pitches per frame via
// peak picking, harmonic scoring, confidence scoring, and suppression of
// near-duplicate (harmonic/unison) peaks.
type PolyphonicDetector struct {
	params PolyphonicParams
}

// NewPolyphonicDetector creates a multi-pitch detector
func NewPolyphonicDetector(params PolyphonicParams) *PolyphonicDetector {
	return &PolyphonicDetector{params: params}
}

// DetectTrack runs frame-wise detection over the whole spectrogram
func (pd *PolyphonicDetector) DetectTrack(sg *spectral.Spectrogram) []NoteFrame {
	track := make([]NoteFrame, sg.NumFrames())

	for i, frame := range sg.Magnitudes {
		track[i] = NoteFrame{
			Time:  sg.Times[i],
			Notes: pd.DetectFrame(frame, sg.Frequencies, sg.FreqResolution),
		}
	}

	return track
}

// DetectFrame detects the notes in a single magnitude frame. An unpitched
// frame yields an empty (nil) note list, not an error.
func (pd *PolyphonicDetector) DetectFrame(magnitudes, frequencies []float64, freqResolution float64) []DetectedNote {
	candidates := pd.pickPeaks(magnitudes, frequencies, freqResolution)

	// Strongest boosted magnitude first, so the greedy suppression pass
	// keeps the dominant peak of each merged group
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Magnitude > candidates[j].Magnitude
	})

	notes := pd.suppressOverlaps(candidates)

	if len(notes) > pd.params.MaxNotes {
		notes = notes[:pd.params.MaxNotes]
	}

	return notes
}

// pickPeaks finds 5-point local maxima inside the band and scores them.
// The two band-interior indices nearest each edge are excluded; two-away
// neighbors outside the spectrum read as 0. Requiring the peak to top both
// two-away neighbors rejects single-bin noise spikes narrower than the
// window main lobe.
func (pd *PolyphonicDetector) pickPeaks(magnitudes, frequencies []float64, freqResolution float64) []DetectedNote {
	totalMagnitude := common.Sum(magnitudes)
	noise := noiseFloor(magnitudes, NoteNoiseFraction)

	magAt := func(i int) float64 {
		if i < 0 || i >= len(magnitudes) {
			return 0.0
		}
		return magnitudes[i]
	}

	var peaks []DetectedNote
	for i, freq := range frequencies {
		if freq < pd.params.MinFreq || freq >= pd.params.MaxFreq {
			continue
		}

		// Skip the two indices nearest each band edge so every 5-point
		// neighborhood stays inside the band
		if freq-2*freqResolution < pd.params.MinFreq || freq+2*freqResolution >= pd.params.MaxFreq {
			continue
		}

		magnitude := magnitudes[i]
		if magnitude <= pd.params.PeakFloor {
			continue
		}

		if magnitude <= magAt(i-1) || magnitude <= magAt(i+1) ||
			magnitude <= magAt(i-2) || magnitude <= magAt(i+2) {
			continue
		}

		hs := harmonicStrength(magnitudes, frequencies, freq, freqResolution)
		confidence := pd.confidence(magnitude, hs, totalMagnitude, noise)

		if confidence <= NoteConfidenceFloor {
			continue
		}

		peaks = append(peaks, DetectedNote{
			Frequency:  freq,
			Confidence: confidence,
			Magnitude:  magnitude * hs,
		})
	}

	return peaks
}

// confidence sums three capped components and clamps the result to [0,1]
func (pd *PolyphonicDetector) confidence(magnitude, harmonic, totalMagnitude, noise float64) float64 {
	energy := math.Min(NoteEnergyScale*magnitude/(totalMagnitude+common.Epsilon), NoteEnergyCap)
	harmonicScore := math.Min((harmonic-1.0)/NoteHarmonicDivisor, NoteHarmonicCap)
	snr := snrScore(magnitude, noise, NoteSNRDivisor, NoteSNRCap)

	return common.Clamp(energy+harmonicScore+snr, 0.0, 1.0)
}

// suppressOverlaps greedily scans the magnitude-sorted candidates and
// consumes every later peak whose frequency ratio to the current one is
// under the overlap ratio. Candidate counts per frame are small, so the
// quadratic index-marking pass is fine.
func (pd *PolyphonicDetector) suppressOverlaps(candidates []DetectedNote) []DetectedNote {
	consumed := make([]bool, len(candidates))

	var notes []DetectedNote
	for i := range candidates {
		if consumed[i] {
			continue
		}
		consumed[i] = true

		for j := i + 1; j < len(candidates); j++ {
			if consumed[j] {
				continue
			}

			ratio := frequencyRatio(candidates[i].Frequency, candidates[j].Frequency)
			if ratio < pd.params.OverlapRatio {
				// Same note seen in a near-adjacent bin or close harmonic;
				// the sort order guarantees candidates[i] is the stronger
				consumed[j] = true
			}
		}

		notes = append(notes, candidates[i])
	}

	return notes
}

// frequencyRatio returns max/min of two positive frequencies
func frequencyRatio(a, b float64) float64 {
	return math.Max(a, b) / math.Min(a, b)
}
