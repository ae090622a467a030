// Package dsp provides the shared numeric kernels used by the analyzers: zero-phase
// band-pass filtering, peak detection, Welch spectral estimation, Savitzky-Golay
// smoothing, and histogram entropy. All functions are pure and re-entrant; none of them
// mutates its input slice.
package dsp

import (
	"github.com/mjibson/go-dsp/fft"
)

// BandPass applies a zero-phase band-pass filter by masking frequency bins outside
// [lowHz, highHz] in the signal's spectrum. Conjugate symmetry is preserved so the
// inverse transform stays real.
func BandPass(signal []float64, sampleRate int, lowHz, highHz float64) []float64 {
	n := len(signal)
	if n == 0 {
		return nil
	}

	spectrum := fft.FFTReal(signal)
	binHz := float64(sampleRate) / float64(n)
	for k := range spectrum {
		freq := float64(k) * binHz
		if k > n/2 {
			// Mirror half of the spectrum.
			freq = float64(n-k) * binHz
		}
		if freq < lowHz || freq > highHz {
			spectrum[k] = 0
		}
	}

	filtered := fft.IFFT(spectrum)
	out := make([]float64, n)
	for i, v := range filtered {
		out[i] = real(v)
	}
	return out
}

// MovingAverage returns the centered moving average of x over the given window,
// matching same-mode convolution with a uniform kernel. Window values below 1 return
// a copy of the input.
func MovingAverage(x []float64, window int) []float64 {
	n := len(x)
	out := make([]float64, n)
	if window < 1 {
		copy(out, x)
		return out
	}
	// Same-mode alignment: kernel centered with the extra tap on the left for even windows.
	left := window / 2
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < window; j++ {
			idx := i - left + j
			if idx >= 0 && idx < n {
				sum += x[idx]
			}
		}
		out[i] = sum / float64(window)
	}
	return out
}
