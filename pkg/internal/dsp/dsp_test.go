package dsp_test

import (
	"math"
	"testing"

	"github.com/cardiokit/ecgcore/pkg/internal/dsp"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMeanStdVariation(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	if got := dsp.Mean(x); !almostEqual(got, 5, 1e-9) {
		t.Errorf("Mean = %v, want 5", got)
	}
	if got := dsp.Std(x); !almostEqual(got, 2, 1e-9) {
		t.Errorf("Std = %v, want 2", got)
	}
	if got := dsp.Variation(x); !almostEqual(got, 0.4, 1e-9) {
		t.Errorf("Variation = %v, want 0.4", got)
	}
}

func TestMedian(t *testing.T) {
	if got := dsp.Median([]float64{3, 1, 2}); !almostEqual(got, 2, 1e-9) {
		t.Errorf("Median odd = %v, want 2", got)
	}
	if got := dsp.Median([]float64{4, 1, 3, 2}); !almostEqual(got, 2.5, 1e-9) {
		t.Errorf("Median even = %v, want 2.5", got)
	}
}

func TestDiff(t *testing.T) {
	got := dsp.Diff([]float64{1, 4, 9, 16})
	want := []float64{3, 5, 7}
	if len(got) != len(want) {
		t.Fatalf("Diff length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-9) {
			t.Errorf("Diff[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFindPeaksBasic(t *testing.T) {
	x := []float64{0, 1, 0, 0, 2, 0, 0, 3, 0}
	peaks := dsp.FindPeaks(x, 0.5, 0)

	want := []int{1, 4, 7}
	if len(peaks) != len(want) {
		t.Fatalf("FindPeaks = %v, want %v", peaks, want)
	}
	for i := range want {
		if peaks[i] != want[i] {
			t.Errorf("peak[%d] = %d, want %d", i, peaks[i], want[i])
		}
	}
}

func TestFindPeaksMinDistanceKeepsTallest(t *testing.T) {
	x := []float64{0, 1, 0, 5, 0, 1, 0}
	peaks := dsp.FindPeaks(x, 0.5, 3)

	if len(peaks) != 1 || peaks[0] != 3 {
		t.Errorf("FindPeaks with distance = %v, want [3]", peaks)
	}
}

func TestFindPeaksMinHeight(t *testing.T) {
	x := []float64{0, 1, 0, 3, 0}
	peaks := dsp.FindPeaks(x, 2, 0)

	if len(peaks) != 1 || peaks[0] != 3 {
		t.Errorf("FindPeaks with height = %v, want [3]", peaks)
	}
}

func TestDiffInts(t *testing.T) {
	got := dsp.DiffInts([]int{10, 25, 45})
	if len(got) != 2 || got[0] != 15 || got[1] != 20 {
		t.Errorf("DiffInts = %v, want [15 20]", got)
	}
}

func TestMovingAveragePreservesLength(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	got := dsp.MovingAverage(x, 3)
	if len(got) != len(x) {
		t.Fatalf("MovingAverage length = %d, want %d", len(got), len(x))
	}
	// Interior samples average the full window.
	if !almostEqual(got[2], 3, 1e-9) {
		t.Errorf("MovingAverage[2] = %v, want 3", got[2])
	}
}

func TestBandPassKeepsInBandTone(t *testing.T) {
	const sampleRate = 500
	const n = 2000

	signal := make([]float64, n)
	for i := range signal {
		tSec := float64(i) / sampleRate
		signal[i] = math.Sin(2 * math.Pi * 10 * tSec) // 10 Hz, inside 5-15 band
	}

	filtered := dsp.BandPass(signal, sampleRate, 5, 15)

	// Compare energy away from the edges.
	var inEnergy, outEnergy float64
	for i := n / 4; i < 3*n/4; i++ {
		inEnergy += signal[i] * signal[i]
		outEnergy += filtered[i] * filtered[i]
	}
	if outEnergy < 0.8*inEnergy {
		t.Errorf("in-band tone attenuated: kept %.2f of energy", outEnergy/inEnergy)
	}
}

func TestBandPassRemovesOutOfBandTone(t *testing.T) {
	const sampleRate = 500
	const n = 2000

	signal := make([]float64, n)
	for i := range signal {
		tSec := float64(i) / sampleRate
		signal[i] = math.Sin(2 * math.Pi * 0.5 * tSec) // 0.5 Hz drift
	}

	filtered := dsp.BandPass(signal, sampleRate, 5, 15)

	var inEnergy, outEnergy float64
	for i := range signal {
		inEnergy += signal[i] * signal[i]
		outEnergy += filtered[i] * filtered[i]
	}
	if outEnergy > 0.05*inEnergy {
		t.Errorf("out-of-band tone kept %.2f of energy", outEnergy/inEnergy)
	}
}

func TestBandPowerRatioFindsDominantBand(t *testing.T) {
	const sampleRate = 500
	const n = 4096

	signal := make([]float64, n)
	for i := range signal {
		tSec := float64(i) / sampleRate
		signal[i] = math.Sin(2 * math.Pi * 5 * tSec) // 5 Hz, inside 4-6 flutter band
	}

	ratio := dsp.BandPowerRatio(signal, sampleRate, 4, 6)
	if ratio < 0.5 {
		t.Errorf("BandPowerRatio = %v, want dominant in-band power", ratio)
	}

	ratioOutside := dsp.BandPowerRatio(signal, sampleRate, 20, 30)
	if ratioOutside > 0.1 {
		t.Errorf("BandPowerRatio outside = %v, want near zero", ratioOutside)
	}
}

func TestHistogramEntropy(t *testing.T) {
	flat := make([]float64, 500)
	if got := dsp.HistogramEntropy(flat, 50); got != 0 {
		t.Errorf("HistogramEntropy flat = %v, want 0", got)
	}

	// Uniform ramp spanning [0, 50) with 50 bins: unit-width bins, so the
	// density per bin equals its probability and the entropy normalizes to ~1.
	ramp := make([]float64, 5000)
	for i := range ramp {
		ramp[i] = float64(i) / 100
	}
	if got := dsp.HistogramEntropy(ramp, 50); got < 0.9 {
		t.Errorf("HistogramEntropy ramp = %v, want near 1", got)
	}

	// Densities shrink with bin width, so the same uniform shape over a wide
	// range scores far lower.
	wide := make([]float64, 5000)
	for i := range wide {
		wide[i] = float64(i)
	}
	if got := dsp.HistogramEntropy(wide, 50); got > 0.1 {
		t.Errorf("HistogramEntropy wide ramp = %v, want well below the unit-width score", got)
	}
}

func TestSavitzkyGolayPreservesQuadratic(t *testing.T) {
	n := 101
	x := make([]float64, n)
	for i := range x {
		tVal := float64(i-50) / 10
		x[i] = 2*tVal*tVal - 3*tVal + 1
	}

	smoothed := dsp.SavitzkyGolay(x, 11, 3)
	if len(smoothed) != n {
		t.Fatalf("SavitzkyGolay length = %d, want %d", len(smoothed), n)
	}
	// A cubic fit reproduces a quadratic exactly, up to numeric error.
	for i := 20; i < 80; i++ {
		if !almostEqual(smoothed[i], x[i], 1e-6) {
			t.Fatalf("SavitzkyGolay[%d] = %v, want %v", i, smoothed[i], x[i])
		}
	}
}

func TestSavitzkyGolayDegenerateWindows(t *testing.T) {
	x := []float64{1, 2, 3}
	got := dsp.SavitzkyGolay(x, 11, 3)
	for i := range x {
		if got[i] != x[i] {
			t.Errorf("degenerate window: got[%d] = %v, want %v", i, got[i], x[i])
		}
	}
}

func TestComputeIntervalsHeartRate(t *testing.T) {
	sampleRate := 500
	lead := make([]float64, 5000)
	for i := 200; i < len(lead); i += 400 {
		lead[i] = 1.0
	}

	iv := dsp.ComputeIntervals(map[string][]float64{"II": lead}, sampleRate)

	if iv.HeartRate == nil {
		t.Fatal("expected a heart rate for regularly spaced peaks")
	}
	if !almostEqual(*iv.HeartRate, 75, 1) {
		t.Errorf("HeartRate = %v, want 75", *iv.HeartRate)
	}
	if len(iv.RRIntervals) == 0 {
		t.Fatal("expected RR intervals")
	}
	for _, rr := range iv.RRIntervals {
		if !almostEqual(rr, 800, 1e-9) {
			t.Errorf("RR interval = %v ms, want 800", rr)
		}
	}
	if iv.PRInterval == nil || *iv.PRInterval != 150 {
		t.Errorf("PRInterval = %v, want nominal 150", iv.PRInterval)
	}
}

func TestComputeIntervalsEmptyInput(t *testing.T) {
	iv := dsp.ComputeIntervals(map[string][]float64{}, 500)
	if iv.HeartRate != nil {
		t.Errorf("HeartRate = %v, want nil for empty input", *iv.HeartRate)
	}
	if iv.RRIntervals != nil {
		t.Errorf("RRIntervals = %v, want nil for empty input", iv.RRIntervals)
	}
}
