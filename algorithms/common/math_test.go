package common

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); math.Abs(got-2.5) > 1e-12 {
		t.Fatalf("mean mismatch: got %f want 2.5", got)
	}
	if got := Mean(nil); got != 0 {
		t.Fatalf("empty mean should be 0, got %f", got)
	}
}

func TestSum(t *testing.T) {
	if got := Sum([]float64{1.5, 2.5, -1}); math.Abs(got-3) > 1e-12 {
		t.Fatalf("sum mismatch: got %f want 3", got)
	}
	if got := Sum(nil); got != 0 {
		t.Fatalf("empty sum should be 0, got %f", got)
	}
}

func TestSumSquares(t *testing.T) {
	if got := SumSquares([]float64{3, 4}); math.Abs(got-25) > 1e-12 {
		t.Fatalf("sum of squares mismatch: got %f want 25", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		value, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
	}
	for _, tc := range cases {
		if got := Clamp(tc.value, tc.lo, tc.hi); got != tc.want {
			t.Fatalf("clamp(%f) mismatch: got %f want %f", tc.value, got, tc.want)
		}
	}
}

func TestRMS(t *testing.T) {
	if got := RMS([]float64{3, 4}); math.Abs(got-math.Sqrt(12.5)) > 1e-12 {
		t.Fatalf("rms mismatch: got %f", got)
	}
	if got := RMS(nil); got != 0 {
		t.Fatalf("empty rms should be 0, got %f", got)
	}
}
