package spectral

import (
	"math"
	"testing"

	"github.com/RyanBlaney/sonido-pitch/algorithms/windowing"
)

func sine(freq float64, sampleRate, length int) []float64 {
	signal := make([]float64, length)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	}
	return signal
}

func TestFrameCount(t *testing.T) {
	builder := NewSpectrogramBuilder()
	params := SpectrogramParams{WindowSize: 2048, HopSize: 512}

	cases := []struct {
		length int
		want   int
	}{
		{2047, 0},
		{2048, 1},
		{2559, 1},
		{2560, 2},
		{44100, (44100-2048)/512 + 1},
		{0, 0},
	}

	for _, tc := range cases {
		sg, err := builder.Compute(make([]float64, tc.length), 44100, params)
		if err != nil {
			t.Fatalf("length %d: unexpected error: %v", tc.length, err)
		}
		if sg.NumFrames() != tc.want {
			t.Fatalf("length %d: got %d frames, want %d", tc.length, sg.NumFrames(), tc.want)
		}
		if len(sg.Magnitudes) != len(sg.Times) {
			t.Fatalf("length %d: %d magnitude frames vs %d times", tc.length, len(sg.Magnitudes), len(sg.Times))
		}
	}
}

func TestFrequencyAxis(t *testing.T) {
	builder := NewSpectrogramBuilder()
	sg, err := builder.Compute(make([]float64, 4096), 44100, SpectrogramParams{WindowSize: 2048, HopSize: 512})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sg.NumBins() != 1024 {
		t.Fatalf("bin count mismatch: got %d want 1024", sg.NumBins())
	}
	if sg.Frequencies[0] != 0 {
		t.Fatalf("first bin should be DC, got %f", sg.Frequencies[0])
	}

	binWidth := 44100.0 / 2048.0
	for i, f := range sg.Frequencies {
		want := float64(i) * binWidth
		if math.Abs(f-want) > 1e-9 {
			t.Fatalf("bin %d center mismatch: got %f want %f", i, f, want)
		}
		if i > 0 && f <= sg.Frequencies[i-1] {
			t.Fatalf("frequencies not strictly increasing at bin %d", i)
		}
	}
}

func TestTimeAxis(t *testing.T) {
	builder := NewSpectrogramBuilder()
	sg, err := builder.Compute(make([]float64, 4096), 44100, SpectrogramParams{WindowSize: 2048, HopSize: 512})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, tm := range sg.Times {
		want := float64(i*512) / 44100.0
		if math.Abs(tm-want) > 1e-12 {
			t.Fatalf("frame %d time mismatch: got %f want %f", i, tm, want)
		}
	}
}

func TestMagnitudesNonNegative(t *testing.T) {
	builder := NewSpectrogramBuilder()
	sg, err := builder.Compute(sine(523.25, 44100, 22050), 44100, DefaultSpectrogramParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for f, frame := range sg.Magnitudes {
		if len(frame) != sg.NumBins() {
			t.Fatalf("frame %d has %d bins, want %d", f, len(frame), sg.NumBins())
		}
		for b, mag := range frame {
			if mag < 0 {
				t.Fatalf("negative magnitude at frame %d bin %d: %f", f, b, mag)
			}
		}
	}
}

func TestPureTonePeakBin(t *testing.T) {
	sampleRate := 44100
	builder := NewSpectrogramBuilder()

	sg, err := builder.Compute(sine(440, sampleRate, sampleRate), sampleRate, DefaultSpectrogramParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	binWidth := float64(sampleRate) / 2048.0
	for f, frame := range sg.Magnitudes {
		peak := 0
		for b := range frame {
			if frame[b] > frame[peak] {
				peak = b
			}
		}
		if math.Abs(sg.Frequencies[peak]-440) > binWidth {
			t.Fatalf("frame %d peak at %f Hz, want within %f of 440", f, sg.Frequencies[peak], binWidth)
		}
	}
}

func TestSpectrogramDeterminism(t *testing.T) {
	signal := sine(330, 44100, 16384)
	builder := NewSpectrogramBuilder()

	first, err := builder.Compute(signal, 44100, DefaultSpectrogramParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := builder.Compute(signal, 44100, DefaultSpectrogramParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for f := range first.Magnitudes {
		for b := range first.Magnitudes[f] {
			if first.Magnitudes[f][b] != second.Magnitudes[f][b] {
				t.Fatalf("nondeterministic magnitude at frame %d bin %d", f, b)
			}
		}
	}
}

func TestComputeLeavesInputUntouched(t *testing.T) {
	signal := sine(440, 44100, 4096)
	original := make([]float64, len(signal))
	copy(original, signal)

	if _, err := NewSpectrogramBuilder().Compute(signal, 44100, DefaultSpectrogramParams()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range signal {
		if signal[i] != original[i] {
			t.Fatalf("input mutated at sample %d", i)
		}
	}
}

func TestComputeWithHannWindow(t *testing.T) {
	params := DefaultSpectrogramParams()
	params.Window = windowing.NewHann(params.WindowSize, true)

	sg, err := NewSpectrogramBuilder().Compute(sine(440, 44100, 8192), 44100, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sg.NumFrames() == 0 {
		t.Fatal("expected frames with Hann window")
	}
}

func TestComputeInvalidParams(t *testing.T) {
	builder := NewSpectrogramBuilder()

	if _, err := builder.Compute(make([]float64, 4096), 44100, SpectrogramParams{WindowSize: 0, HopSize: 512}); err == nil {
		t.Fatal("accepted zero window size")
	}
	if _, err := builder.Compute(make([]float64, 4096), 44100, SpectrogramParams{WindowSize: 2048, HopSize: 0}); err == nil {
		t.Fatal("accepted zero hop size")
	}
	if _, err := builder.Compute(make([]float64, 4096), 0, DefaultSpectrogramParams()); err == nil {
		t.Fatal("accepted zero sample rate")
	}
}
