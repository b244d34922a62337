package analysis_test

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-pitch/analysis"
	"github.com/RyanBlaney/sonido-pitch/notes"
)

func ExampleAnalyzer() {
	sampleRate := 44100
	samples := make([]float64, sampleRate)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 440 * float64(i) / float64(sampleRate))
	}

	analyzer := analysis.NewAnalyzer()
	sg, err := analyzer.ComputeSpectrogram(samples, sampleRate)
	if err != nil {
		panic(err)
	}

	track := analyzer.EstimateFundamentalTrack(sg)
	note, err := notes.FromFrequency(track.Frequencies[10])
	if err != nil {
		panic(err)
	}

	fmt.Printf("frames: %d\n", sg.NumFrames())
	fmt.Printf("bins: %d\n", sg.NumBins())
	fmt.Printf("note: %s%d\n", note.Name, note.Octave)
	// Output:
	// frames: 83
	// bins: 1024
	// note: A4
}
