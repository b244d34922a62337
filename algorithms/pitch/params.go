package pitch

// Heuristic tunables for the pitch estimators. These are the single source
// of truth for every constant the scoring formulas use; nothing re-derives
// them inline.

// Analysis band and detection floors. The floors are absolute magnitudes,
// not normalized to input level, so very quiet or very loud material may
// under- or over-detect; they are parameters on the Params structs so
// callers can calibrate without touching the algorithms.
const (
	// DefaultMinFrequency is the lower edge of the candidate band in Hz
	DefaultMinFrequency = 80.0

	// DefaultMaxFrequency is the upper edge (exclusive) of the candidate band in Hz
	DefaultMaxFrequency = 2000.0

	// DefaultMagnitudeFloor is the minimum bin magnitude for a single-pitch candidate
	DefaultMagnitudeFloor = 0.1

	// DefaultPeakFloor is the minimum bin magnitude for a multi-pitch peak
	DefaultPeakFloor = 0.05

	// DefaultMaxNotes caps the notes reported per frame
	DefaultMaxNotes = 5

	// DefaultOverlapRatio is the frequency ratio (max/min) under which two
	// detected peaks are considered the same note (~1.67 semitones)
	DefaultOverlapRatio = 1.1
)

// Harmonic scoring: strength = 1 + sum over harmonics 2..MaxHarmonic of
// magnitude[closestBin(h*f)]/h, each term gated on the bin center landing
// within HarmonicToleranceHz of the exact harmonic.
const (
	// MaxHarmonic is the highest harmonic multiple inspected
	MaxHarmonic = 5

	// HarmonicToleranceHz is the maximum bin-center distance from the exact
	// harmonic frequency for its energy to count
	HarmonicToleranceHz = 20.0
)

// Single-pitch confidence: four sub-scores, each clamped to
// [0, FundamentalScoreCap], whose sum is the [0,1] confidence (equivalent to
// scaling each by 4 and averaging).
const (
	// FundamentalScoreCap caps each of the four sub-scores
	FundamentalScoreCap = 0.25

	// FundamentalHarmonicDivisor scales (harmonicStrength-1) into a sub-score
	FundamentalHarmonicDivisor = 4.0

	// FundamentalSNRDivisor scales log10(snr+1) into a sub-score
	FundamentalSNRDivisor = 2.0

	// FundamentalNoiseFraction is the quietest-by-rank share of bins that
	// defines the frame noise level
	FundamentalNoiseFraction = 0.2

	// ContinuityNeutral is the continuity sub-score used when the previous
	// frame carried no pitch. It is deliberately the cap value, treated as
	// neutral/unknown rather than as evidence either way.
	ContinuityNeutral = FundamentalScoreCap
)

// Multi-pitch confidence: three capped components summed then clamped to [0,1].
const (
	// NoteEnergyScale multiplies magnitude/totalMagnitude before capping
	NoteEnergyScale = 10.0

	// NoteEnergyCap caps the energy component
	NoteEnergyCap = 0.4

	// NoteHarmonicDivisor scales (harmonicStrength-1) into the harmonic component
	NoteHarmonicDivisor = 3.0

	// NoteHarmonicCap caps the harmonic component
	NoteHarmonicCap = 0.3

	// NoteSNRDivisor scales log10(snr+1) into the SNR component
	NoteSNRDivisor = 3.0

	// NoteSNRCap caps the SNR component
	NoteSNRCap = 0.3

	// NoteNoiseFraction is the quietest-by-rank share of bins that defines
	// the frame noise level for multi-pitch scoring
	NoteNoiseFraction = 0.1

	// NoteConfidenceFloor discards peaks whose confidence does not exceed it
	NoteConfidenceFloor = 0.1
)

// FundamentalParams contains parameters for single-pitch estimation
type FundamentalParams struct {
	MinFreq        float64 `json:"min_freq"`        // Lower band edge (Hz), inclusive
	MaxFreq        float64 `json:"max_freq"`        // Upper band edge (Hz), exclusive
	MagnitudeFloor float64 `json:"magnitude_floor"` // Absolute candidate floor
	MedianFilter   int     `json:"median_filter"`   // Odd window length for track smoothing; 0 disables
}

// DefaultFundamentalParams returns the standard single-pitch configuration
func DefaultFundamentalParams() FundamentalParams {
	return FundamentalParams{
		MinFreq:        DefaultMinFrequency,
		MaxFreq:        DefaultMaxFrequency,
		MagnitudeFloor: DefaultMagnitudeFloor,
		MedianFilter:   0,
	}
}

// PolyphonicParams contains parameters for multi-pitch detection
type PolyphonicParams struct {
	MinFreq      float64 `json:"min_freq"`      // Lower band edge (Hz), inclusive
	MaxFreq      float64 `json:"max_freq"`      // Upper band edge (Hz), exclusive
	PeakFloor    float64 `json:"peak_floor"`    // Absolute peak floor
	MaxNotes     int     `json:"max_notes"`     // Notes reported per frame
	OverlapRatio float64 `json:"overlap_ratio"` // Suppression ratio for near-duplicate peaks
}

// DefaultPolyphonicParams returns the standard multi-pitch configuration
func DefaultPolyphonicParams() PolyphonicParams {
	return PolyphonicParams{
		MinFreq:      DefaultMinFrequency,
		MaxFreq:      DefaultMaxFrequency,
		PeakFloor:    DefaultPeakFloor,
		MaxNotes:     DefaultMaxNotes,
		OverlapRatio: DefaultOverlapRatio,
	}
}
