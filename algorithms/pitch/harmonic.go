package pitch

import (
	"math"
	"sort"

	"github.com/RyanBlaney/sonido-pitch/algorithms/common"
)

// Helpers shared by the single-pitch and multi-pitch estimators.

// closestBin returns the index of the bin whose center is nearest freq,
// clamped to the spectrum.
func closestBin(freq, freqResolution float64, numBins int) int {
	idx := int(math.Round(freq / freqResolution))
	if idx < 0 {
		return 0
	}
	if idx >= numBins {
		return numBins - 1
	}
	return idx
}

// harmonicStrength scores how much spectral energy sits at integer multiples
// of freq: 1 + sum over h=2..MaxHarmonic of magnitude[closestBin(h*freq)]/h.
// A harmonic contributes only when the nearest bin center lies within
// HarmonicToleranceHz of the exact harmonic frequency. The base value 1
// keeps a candidate with no harmonic support scoring by its own magnitude.
func harmonicStrength(magnitudes, frequencies []float64, freq, freqResolution float64) float64 {
	strength := 1.0

	for h := 2; h <= MaxHarmonic; h++ {
		target := freq * float64(h)
		bin := closestBin(target, freqResolution, len(magnitudes))

		if math.Abs(frequencies[bin]-target) <= HarmonicToleranceHz {
			strength += magnitudes[bin] / float64(h)
		}
	}

	return strength
}

// noiseFloor estimates the frame noise level as the mean of the quietest
// fraction of magnitudes by rank (descending sort, lowest tail).
func noiseFloor(magnitudes []float64, fraction float64) float64 {
	if len(magnitudes) == 0 {
		return 0.0
	}

	sorted := make([]float64, len(magnitudes))
	copy(sorted, magnitudes)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	count := int(fraction * float64(len(sorted)))
	if count < 1 {
		count = 1
	}

	return common.Mean(sorted[len(sorted)-count:])
}

// snrScore converts a magnitude-over-noise ratio into a capped sub-score:
// min(log10(snr+1)/divisor, limit).
func snrScore(magnitude, noise, divisor, limit float64) float64 {
	snr := magnitude / (noise + common.Epsilon)
	return math.Min(math.Log10(snr+1)/divisor, limit)
}
