package dsp

import "sort"

// FindPeaks returns the indices of local maxima in x that rise to at least minHeight,
// enforcing a minimum separation between accepted peaks. When two candidates fall
// within minDistance of each other the taller one wins. Returned indices are strictly
// increasing.
func FindPeaks(x []float64, minHeight float64, minDistance int) []int {
	n := len(x)
	if n < 3 {
		return nil
	}

	var candidates []int
	for i := 1; i < n-1; i++ {
		if x[i] > x[i-1] && x[i] >= x[i+1] && x[i] >= minHeight {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	if minDistance < 1 {
		minDistance = 1
	}

	// Tallest-first suppression, matching the usual distance-enforcement convention.
	order := make([]int, len(candidates))
	copy(order, candidates)
	sort.SliceStable(order, func(a, b int) bool {
		return x[order[a]] > x[order[b]]
	})

	keep := make(map[int]bool, len(order))
	for _, idx := range order {
		ok := true
		for kept := range keep {
			d := idx - kept
			if d < 0 {
				d = -d
			}
			if d < minDistance {
				ok = false
				break
			}
		}
		if ok {
			keep[idx] = true
		}
	}

	peaks := make([]int, 0, len(keep))
	for idx := range keep {
		peaks = append(peaks, idx)
	}
	sort.Ints(peaks)
	return peaks
}

// DiffInts returns the first differences of a strictly increasing index sequence,
// as floating point values.
func DiffInts(idx []int) []float64 {
	if len(idx) < 2 {
		return nil
	}
	out := make([]float64, len(idx)-1)
	for i := 1; i < len(idx); i++ {
		out[i-1] = float64(idx[i] - idx[i-1])
	}
	return out
}
