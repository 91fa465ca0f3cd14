package audio

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

type ToneStats struct {
	Samples    int
	Duration   float64
	Peak       int16
	RMS        float64
	Dominant   float64
	BinWidthHz float64
}

// Analyze reports the level and dominant frequency of a PCM tone.
func Analyze(samples []int16, sampleRate int) ToneStats {
	stats := ToneStats{Samples: len(samples)}
	if len(samples) == 0 || sampleRate <= 0 {
		return stats
	}
	stats.Duration = float64(len(samples)) / float64(sampleRate)

	signal := make([]float64, len(samples))
	sumSq := 0.0
	for i, v := range samples {
		if v > stats.Peak {
			stats.Peak = v
		}
		x := float64(v) / 32768
		signal[i] = x
		sumSq += x * x
	}
	stats.RMS = math.Sqrt(sumSq / float64(len(samples)))

	spectrum := fft.FFTReal(signal)
	best, bestMag := 0, 0.0
	for i := 1; i < len(spectrum)/2; i++ {
		if mag := cmplx.Abs(spectrum[i]); mag > bestMag {
			best, bestMag = i, mag
		}
	}
	stats.BinWidthHz = float64(sampleRate) / float64(len(samples))
	stats.Dominant = float64(best) * stats.BinWidthHz
	return stats
}
