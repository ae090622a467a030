package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cardiokit/ecgcore/pkg/builder"
)

const sampleRate = 500

// synthesizeLead builds a crude ECG-like trace: a baseline with one sharp R-deflection
// and a broad T-deflection per beat.
func synthesizeLead(durationSec float64, heartRateBPM float64, amplitude float64) []float64 {
	n := int(durationSec * sampleRate)
	signal := make([]float64, n)

	beatPeriod := int(60.0 / heartRateBPM * sampleRate)
	for i := 0; i < n; i++ {
		phase := i % beatPeriod

		// R wave: narrow spike around 0 ms.
		r := float64(phase) / float64(sampleRate)
		signal[i] += amplitude * math.Exp(-math.Pow((r-0.02)/0.01, 2))

		// T wave: broad bump around 300 ms.
		signal[i] += 0.3 * amplitude * math.Exp(-math.Pow((r-0.3)/0.05, 2))
	}

	return signal
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithLevel("info"))

	signals := builder.SignalMap{
		"I":   synthesizeLead(10, 72, 0.8),
		"II":  synthesizeLead(10, 72, 1.0),
		"aVF": synthesizeLead(10, 72, 0.6),
	}

	detector := builder.NewArrhythmiaDetector(
		ctx,
		sampleRate,
		builder.ArrhythmiaDetectorWithLogger(logger),
		builder.ArrhythmiaDetectorWithComponentMetadata("ExampleDetector", "detector-001"),
	)

	report, err := detector.Detect(signals, nil)
	if err != nil {
		fmt.Printf("arrhythmia detection failed: %v\n", err)
		return
	}
	fmt.Printf("Primary rhythm: %s (mean HR %.0f BPM)\n", report.PrimaryRhythm, report.HeartRateMean)

	analyzer := builder.NewQTAnalyzer(
		ctx,
		sampleRate,
		builder.QTAnalyzerWithLogger(logger),
	)

	// Reuse the detector's preferred lead peaks by recomputing intervals from signals.
	intervals := builder.ComputeIntervals(signals, sampleRate)

	qtAnalysis, err := analyzer.Analyze(signals, nil, "M")
	if err != nil {
		fmt.Printf("qt analysis failed: %v\n", err)
		return
	}
	fmt.Printf("QT analysis: %s\n", qtAnalysis.Interpretation)

	interpreter := builder.NewClinicalInterpreter(
		ctx,
		builder.ClinicalInterpreterWithLogger(logger),
	)

	quality := builder.QualityMetrics{SNR: 18, BaselineDrift: 0.05, ClippingRatio: 0, Coverage: 1, Confidence: 0.9}
	age := 54
	patient := builder.PatientInfo{Age: &age, Gender: "M"}

	findings, err := interpreter.Interpret(signals, sampleRate, intervals, quality, report, qtAnalysis, patient)
	if err != nil {
		fmt.Printf("interpretation failed: %v\n", err)
		return
	}

	fmt.Printf("Primary diagnosis: %s\n", findings.Conclusion.PrimaryDiagnosis)
	fmt.Printf("Rhythm: %s\n", findings.RhythmDescription)
	fmt.Printf("Rate: %s\n", findings.RateDescription)
	fmt.Printf("Intervals: %s\n", findings.IntervalDescription)
	for _, f := range findings.Findings {
		fmt.Printf("  [%s/%s] %s\n", f.Category, f.Severity, f.Name)
	}
	for _, rec := range findings.Conclusion.Recommendations {
		fmt.Printf("  -> %s\n", rec)
	}
}
