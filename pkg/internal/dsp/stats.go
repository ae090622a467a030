package dsp

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// epsilon guards ratio denominators against zero-variance and zero-power inputs.
const epsilon = 1e-10

// Mean returns the arithmetic mean of x, or 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.Mean(x, nil)
}

// Std returns the population standard deviation of x, or 0 for an empty slice.
func Std(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(stat.PopVariance(x, nil))
}

// Variation returns the coefficient of variation (population std / mean) of x.
// It returns 0 when x is empty or its mean vanishes.
func Variation(x []float64) float64 {
	m := Mean(x)
	if math.Abs(m) <= epsilon {
		return 0
	}
	return Std(x) / m
}

// Median returns the median of x, averaging the two central values for even lengths.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, x)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Diff returns the first differences of x.
func Diff(x []float64) []float64 {
	if len(x) < 2 {
		return nil
	}
	out := make([]float64, len(x)-1)
	for i := 1; i < len(x); i++ {
		out[i-1] = x[i] - x[i-1]
	}
	return out
}

// HistogramEntropy computes the Shannon entropy of the signal's amplitude histogram
// (density-normalized, empty bins dropped), scaled by the maximum entropy of the
// occupied bins so the result lands in [0,1]. A flat signal yields 0.
func HistogramEntropy(signal []float64, bins int) float64 {
	if len(signal) == 0 || bins < 1 {
		return 0
	}

	lo, hi := signal[0], signal[0]
	for _, v := range signal {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	width := (hi - lo) / float64(bins)
	if width <= epsilon {
		return 0
	}

	counts := make([]float64, bins)
	for _, v := range signal {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	total := float64(len(signal))
	entropy := 0.0
	occupied := 0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		density := c / (total * width)
		entropy -= density * math.Log2(density)
		occupied++
	}

	maxEntropy := math.Log2(float64(occupied))
	if maxEntropy <= 0 {
		return 0
	}
	return entropy / maxEntropy
}
