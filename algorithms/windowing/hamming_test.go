package windowing

import (
	"math"
	"testing"
)

func TestHammingEndpoints(t *testing.T) {
	w := NewHamming(64, true)
	coeffs := w.Coefficients()

	// Symmetric Hamming starts and ends at 0.54-0.46 = 0.08
	if math.Abs(coeffs[0]-0.08) > 1e-12 {
		t.Fatalf("first coefficient mismatch: got %.12f want 0.08", coeffs[0])
	}
	if math.Abs(coeffs[63]-0.08) > 1e-9 {
		t.Fatalf("last coefficient mismatch: got %.12f want 0.08", coeffs[63])
	}
}

func TestHammingSymmetry(t *testing.T) {
	w := NewHamming(128, true)
	coeffs := w.Coefficients()

	for i := 0; i < len(coeffs)/2; i++ {
		j := len(coeffs) - 1 - i
		if math.Abs(coeffs[i]-coeffs[j]) > 1e-12 {
			t.Fatalf("asymmetry at %d/%d: %.12f vs %.12f", i, j, coeffs[i], coeffs[j])
		}
	}
}

func TestHammingPeakAtCenter(t *testing.T) {
	w := NewHamming(65, true)
	coeffs := w.Coefficients()

	// Odd symmetric window peaks at exactly 1.0 in the middle
	if math.Abs(coeffs[32]-1.0) > 1e-12 {
		t.Fatalf("center coefficient mismatch: got %.12f want 1.0", coeffs[32])
	}
}

func TestHammingApply(t *testing.T) {
	w := NewHamming(8, true)
	signal := []float64{1, 1, 1, 1, 1, 1, 1, 1}

	windowed := w.Apply(signal)
	if windowed == nil {
		t.Fatal("Apply returned nil for matching length")
	}

	coeffs := w.Coefficients()
	for i := range windowed {
		if math.Abs(windowed[i]-coeffs[i]) > 1e-12 {
			t.Fatalf("windowed[%d] mismatch: got %.12f want %.12f", i, windowed[i], coeffs[i])
		}
	}

	// Input must be untouched
	for i, s := range signal {
		if s != 1 {
			t.Fatalf("Apply mutated input at %d: %f", i, s)
		}
	}
}

func TestHammingApplyLengthMismatch(t *testing.T) {
	w := NewHamming(8, true)

	if got := w.Apply(make([]float64, 7)); got != nil {
		t.Fatalf("Apply accepted wrong length: %v", got)
	}
	if err := w.ApplyInPlace(make([]float64, 9)); err == nil {
		t.Fatal("ApplyInPlace accepted wrong length")
	}
}

func TestHannEndpoints(t *testing.T) {
	w := NewHann(64, true)
	coeffs := w.Coefficients()

	if math.Abs(coeffs[0]) > 1e-12 {
		t.Fatalf("Hann should start at 0, got %.12f", coeffs[0])
	}
	if math.Abs(coeffs[63]) > 1e-9 {
		t.Fatalf("Hann should end at 0, got %.12f", coeffs[63])
	}
}

func TestWindowTypes(t *testing.T) {
	if got := NewHamming(16, true).Type(); got != "hamming" {
		t.Fatalf("Hamming type mismatch: %q", got)
	}
	if got := NewHann(16, true).Type(); got != "hann" {
		t.Fatalf("Hann type mismatch: %q", got)
	}
}
