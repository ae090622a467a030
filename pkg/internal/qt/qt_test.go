package qt_test

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/cardiokit/ecgcore/pkg/builder"
)

const sampleRate = 500

// synthesizeBeats builds a lead with one R spike and one T bump per beat and returns
// the signal together with the R-peak indices.
func synthesizeBeats(beats int, rrSamples int, amplitude float64) ([]float64, []int) {
	signal := make([]float64, beats*rrSamples+sampleRate)
	peaks := make([]int, beats)

	for b := 0; b < beats; b++ {
		rIdx := 100 + b*rrSamples
		peaks[b] = rIdx
		for i := 0; i < rrSamples && rIdx+i < len(signal); i++ {
			tSec := float64(i) / sampleRate
			signal[rIdx+i] += amplitude * math.Exp(-math.Pow(tSec/0.01, 2))
			signal[rIdx+i] += 0.3 * amplitude * math.Exp(-math.Pow((tSec-0.3)/0.05, 2))
		}
	}

	return signal, peaks
}

func TestAnalyzeMeasuresBeats(t *testing.T) {
	analyzer := builder.NewQTAnalyzer(context.Background(), sampleRate)

	signal, peaks := synthesizeBeats(10, sampleRate, 1.0) // 60 BPM
	signals := builder.SignalMap{"II": signal}
	rPeaks := builder.PeakMap{"II": peaks}

	analysis, err := analyzer.Analyze(signals, rPeaks, "M")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(analysis.Measurements) == 0 {
		t.Fatal("expected measurements, got none")
	}
	if analysis.MeanQT < 250 || analysis.MeanQT > 500 {
		t.Errorf("MeanQT = %v ms, want in [250, 500]", analysis.MeanQT)
	}
	// At 60 BPM the RR is exactly one second, so Bazett leaves QT unchanged.
	if !almostEqual(analysis.MeanQT, analysis.MeanQTc, 1.0) {
		t.Errorf("MeanQTc = %v, want equal to MeanQT %v at 60 BPM", analysis.MeanQTc, analysis.MeanQT)
	}
	if analysis.RiskLevel != builder.QTRiskNormal {
		t.Errorf("RiskLevel = %s, want normal", analysis.RiskLevel)
	}
	if !analysis.GenderSpecificNormal {
		t.Error("GenderSpecificNormal = false, want true when gender given")
	}
	if analysis.IsProlonged() {
		t.Error("IsProlonged = true, want false")
	}
	if analysis.Dispersion != nil {
		t.Error("Dispersion should be nil for a single lead")
	}

	for _, m := range analysis.Measurements {
		if m.LeadName != "II" {
			t.Fatalf("LeadName = %s, want II", m.LeadName)
		}
		if m.MeasurementQuality < 0 || m.MeasurementQuality > 1 {
			t.Fatalf("MeasurementQuality = %v, want in [0,1]", m.MeasurementQuality)
		}
		if !almostEqual(m.RRInterval, 1000, 1e-6) {
			t.Fatalf("RRInterval = %v, want 1000 ms", m.RRInterval)
		}
		if !almostEqual(m.HeartRate, 60, 1e-6) {
			t.Fatalf("HeartRate = %v, want 60", m.HeartRate)
		}
	}
}

func TestAnalyzeDispersionAcrossLeads(t *testing.T) {
	analyzer := builder.NewQTAnalyzer(context.Background(), sampleRate)

	signalA, peaksA := synthesizeBeats(8, sampleRate, 1.0)
	signalB, peaksB := synthesizeBeats(8, sampleRate, 0.8)
	signals := builder.SignalMap{"II": signalA, "V5": signalB}
	rPeaks := builder.PeakMap{"II": peaksA, "V5": peaksB}

	analysis, err := analyzer.Analyze(signals, rPeaks, "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if analysis.Dispersion == nil {
		t.Fatal("expected dispersion across two leads")
	}
	d := analysis.Dispersion
	if len(d.LeadMeasurements) != 2 {
		t.Errorf("LeadMeasurements = %v, want two leads", d.LeadMeasurements)
	}
	if d.MaxQT < d.MinQT {
		t.Errorf("MaxQT %v < MinQT %v", d.MaxQT, d.MinQT)
	}
	if !almostEqual(d.Dispersion, d.MaxQT-d.MinQT, 1e-9) {
		t.Errorf("Dispersion = %v, want MaxQT-MinQT", d.Dispersion)
	}
	if analysis.GenderSpecificNormal {
		t.Error("GenderSpecificNormal = true, want false without gender")
	}
}

func TestAnalyzeDefaultReportWhenUnmeasurable(t *testing.T) {
	analyzer := builder.NewQTAnalyzer(context.Background(), sampleRate)

	analysis, err := analyzer.Analyze(builder.SignalMap{}, nil, "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if analysis.MeanQT != 400 || analysis.MeanQTc != 420 || analysis.StdQT != 20 {
		t.Errorf("default stats = %v/%v/%v, want 400/420/20", analysis.MeanQT, analysis.MeanQTc, analysis.StdQT)
	}
	if analysis.RiskLevel != builder.QTRiskNormal {
		t.Errorf("RiskLevel = %s, want normal", analysis.RiskLevel)
	}
	if !strings.Contains(analysis.Interpretation, "Unable to measure") {
		t.Errorf("Interpretation = %q, want unable-to-measure notice", analysis.Interpretation)
	}
}

func TestAnalyzeSkipsLeadsWithoutPeaks(t *testing.T) {
	analyzer := builder.NewQTAnalyzer(context.Background(), sampleRate)

	signal, peaks := synthesizeBeats(6, sampleRate, 1.0)
	signals := builder.SignalMap{
		"II": signal,
		"V1": signal, // no peaks supplied for V1
	}
	rPeaks := builder.PeakMap{"II": peaks, "V1": {peaks[0]}}

	analysis, err := analyzer.Analyze(signals, rPeaks, "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for _, m := range analysis.Measurements {
		if m.LeadName != "II" {
			t.Fatalf("measurement from lead %s, want only II", m.LeadName)
		}
	}
}

func TestAnalyzeInvalidSampleRate(t *testing.T) {
	analyzer := builder.NewQTAnalyzer(context.Background(), -1)

	if _, err := analyzer.Analyze(builder.SignalMap{}, nil, ""); err == nil {
		t.Fatal("expected error for negative sample rate")
	}
}

func almostEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
