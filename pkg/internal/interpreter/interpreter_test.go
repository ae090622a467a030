package interpreter_test

import (
	"context"
	"strings"
	"testing"

	"github.com/cardiokit/ecgcore/pkg/builder"
)

const sampleRate = 500

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func goodQuality() builder.QualityMetrics {
	return builder.QualityMetrics{SNR: 20, BaselineDrift: 0.05, ClippingRatio: 0, Coverage: 1, Confidence: 0.9}
}

// constantLead returns a lead pinned at a fixed voltage.
func constantLead(value float64, n int) []float64 {
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = value
	}
	return signal
}

func TestInterpretNormalECG(t *testing.T) {
	ci := builder.NewClinicalInterpreter(context.Background())

	signals := builder.SignalMap{
		"I":   constantLead(0.1, 5000),
		"aVF": constantLead(0.1, 5000),
	}
	intervals := builder.Intervals{
		HeartRate:   floatPtr(72),
		PRInterval:  floatPtr(160),
		QRSDuration: floatPtr(90),
		QTcInterval: floatPtr(410),
		RRIntervals: []float64{830, 832, 831, 829, 830},
	}

	findings, err := ci.Interpret(signals, sampleRate, intervals, goodQuality(), nil, nil, builder.PatientInfo{})
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}

	if findings.Conclusion.UrgentActionRequired {
		t.Error("urgent flag set for a normal ECG")
	}
	if findings.Axis != "Normal axis (0 to +90 degrees)" {
		t.Errorf("Axis = %q, want normal axis", findings.Axis)
	}
	if findings.RhythmDescription != "Regular sinus rhythm" {
		t.Errorf("RhythmDescription = %q", findings.RhythmDescription)
	}
	if findings.RateDescription != "Normal heart rate at 72 BPM" {
		t.Errorf("RateDescription = %q", findings.RateDescription)
	}
	if got := findings.ComparisonWithNormal["Heart Rate"]; got != "72 BPM (normal)" {
		t.Errorf("Heart Rate comparison = %q", got)
	}
	if len(findings.CriticalFindings()) != 0 {
		t.Errorf("CriticalFindings = %v, want none", findings.CriticalFindings())
	}
}

func TestInterpretBradycardiaWithFirstDegreeBlock(t *testing.T) {
	ci := builder.NewClinicalInterpreter(context.Background())

	intervals := builder.Intervals{
		HeartRate:  floatPtr(45),
		PRInterval: floatPtr(220),
	}

	findings, err := ci.Interpret(builder.SignalMap{}, sampleRate, intervals, goodQuality(), nil, nil, builder.PatientInfo{})
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}

	var names []string
	for _, f := range findings.Findings {
		names = append(names, f.Name)
	}
	if !contains(names, "Bradycardia") {
		t.Errorf("findings = %v, want Bradycardia", names)
	}
	if !contains(names, "Prolonged PR Interval (First-Degree AV Block)") {
		t.Errorf("findings = %v, want first-degree block", names)
	}

	// Both findings are moderate; the first assessed becomes the primary diagnosis.
	if findings.Conclusion.PrimaryDiagnosis != "Bradycardia" {
		t.Errorf("PrimaryDiagnosis = %q, want Bradycardia", findings.Conclusion.PrimaryDiagnosis)
	}
	if findings.Conclusion.UrgentActionRequired {
		t.Error("urgent flag set for moderate findings")
	}
	if findings.Conclusion.FollowUp != "Follow-up within 1-2 weeks" {
		t.Errorf("FollowUp = %q", findings.Conclusion.FollowUp)
	}
	if findings.RateDescription != "Bradycardia at 45 BPM" {
		t.Errorf("RateDescription = %q", findings.RateDescription)
	}
}

func TestInterpretPediatricRange(t *testing.T) {
	ci := builder.NewClinicalInterpreter(context.Background())

	intervals := builder.Intervals{HeartRate: floatPtr(110)}
	patient := builder.PatientInfo{Age: intPtr(5)}

	findings, err := ci.Interpret(builder.SignalMap{}, sampleRate, intervals, goodQuality(), nil, nil, patient)
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}

	// 110 BPM is inside the 70-120 pediatric range.
	for _, f := range findings.Findings {
		if f.Name == "Tachycardia" {
			t.Error("tachycardia flagged inside the pediatric normal range")
		}
	}
	if findings.RateDescription != "Heart rate 110 BPM (pediatric)" {
		t.Errorf("RateDescription = %q", findings.RateDescription)
	}
}

func TestInterpretCriticalQTProlongation(t *testing.T) {
	ci := builder.NewClinicalInterpreter(context.Background())

	qtAnalysis := &builder.QTAnalysis{
		MeanQT:         520,
		MeanQTc:        540,
		RiskLevel:      builder.QTRiskSeverelyProlonged,
		Interpretation: "QT interval: 520 ms, QTc (Bazett): 540 ms - SEVERELY PROLONGED. HIGH RISK of sudden cardiac death.",
		ClinicalNotes:  []string{"Review all medications for QT-prolonging drugs", "Check electrolytes (K+, Mg2+, Ca2+)"},
	}

	findings, err := ci.Interpret(builder.SignalMap{}, sampleRate, builder.Intervals{}, goodQuality(), nil, qtAnalysis, builder.PatientInfo{Gender: "F"})
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}

	critical := findings.CriticalFindings()
	if len(critical) != 1 || critical[0].Name != "Severely Prolonged QT Interval" {
		t.Fatalf("CriticalFindings = %v, want severely prolonged QT", critical)
	}
	if !findings.Conclusion.UrgentActionRequired {
		t.Error("urgent flag not set for critical finding")
	}
	if findings.Conclusion.Severity != builder.SeverityCritical {
		t.Errorf("Severity = %s, want critical", findings.Conclusion.Severity)
	}
	if findings.Conclusion.Prognosis != "Guarded - requires immediate intervention" {
		t.Errorf("Prognosis = %q", findings.Conclusion.Prognosis)
	}
	if len(findings.Conclusion.Recommendations) == 0 ||
		!strings.Contains(findings.Conclusion.Recommendations[0], "URGENT") {
		t.Errorf("Recommendations = %v, want urgent consult first", findings.Conclusion.Recommendations)
	}
	if got := findings.ComparisonWithNormal["QTc"]; got != "540 ms (prolonged (F))" {
		t.Errorf("QTc comparison = %q", got)
	}
}

func TestInterpretUsesArrhythmiaReport(t *testing.T) {
	ci := builder.NewClinicalInterpreter(context.Background())

	arrhythmia := &builder.ArrhythmiaReport{
		PrimaryRhythm:   builder.ArrhythmiaAFib,
		RRIrregularity:  0.42,
		Recommendations: []string{"Consider anticoagulation therapy (CHA2DS2-VASc score)"},
	}

	findings, err := ci.Interpret(builder.SignalMap{}, sampleRate, builder.Intervals{}, goodQuality(), arrhythmia, nil, builder.PatientInfo{})
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}

	var afib *builder.ClinicalFinding
	for i := range findings.Findings {
		if findings.Findings[i].Name == "Atrial Fibrillation" {
			afib = &findings.Findings[i]
		}
	}
	if afib == nil {
		t.Fatalf("findings = %v, want atrial fibrillation", findings.Findings)
	}
	if afib.Severity != builder.SeveritySevere {
		t.Errorf("afib severity = %s, want severe", afib.Severity)
	}
	if afib.ClinicalSignificance != "Stroke risk - Consider anticoagulation" {
		t.Errorf("afib significance = %q", afib.ClinicalSignificance)
	}
	if findings.RhythmDescription != "Atrial Fibrillation" {
		t.Errorf("RhythmDescription = %q", findings.RhythmDescription)
	}
	if !contains(findings.Conclusion.Recommendations, "Consider anticoagulation therapy (CHA2DS2-VASc score)") {
		t.Errorf("Recommendations = %v, want arrhythmia recommendation carried over", findings.Conclusion.Recommendations)
	}
}

func TestInterpretSTElevation(t *testing.T) {
	ci := builder.NewClinicalInterpreter(context.Background())

	// A step up inside the 80-120 ms ST window relative to the overall median.
	signal := make([]float64, 5000)
	for i := 40; i < 60; i++ { // 80-120 ms at 500 Hz
		signal[i] = 0.5
	}
	signals := builder.SignalMap{"V2": signal}

	findings, err := ci.Interpret(signals, sampleRate, builder.Intervals{}, goodQuality(), nil, nil, builder.PatientInfo{})
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}

	var found bool
	for _, f := range findings.Findings {
		if f.Name == "ST Elevation in V2" {
			found = true
			if f.Severity != builder.SeverityCritical {
				t.Errorf("ST elevation severity = %s, want critical", f.Severity)
			}
		}
	}
	if !found {
		t.Fatalf("findings = %v, want ST elevation in V2", findings.Findings)
	}
	if !findings.Conclusion.UrgentActionRequired {
		t.Error("urgent flag not set for ST elevation")
	}
}

func TestInterpretQualityArtifacts(t *testing.T) {
	ci := builder.NewClinicalInterpreter(context.Background())

	quality := builder.QualityMetrics{SNR: 6, BaselineDrift: 0.5, ClippingRatio: 0.1, Coverage: 0.7}

	findings, err := ci.Interpret(builder.SignalMap{}, sampleRate, builder.Intervals{}, quality, nil, nil, builder.PatientInfo{})
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}

	var names []string
	for _, f := range findings.Findings {
		if f.Category == builder.CategoryArtifact {
			names = append(names, f.Name)
		}
	}
	for _, want := range []string{"Poor Signal Quality", "Baseline Wander", "Signal Clipping"} {
		if !contains(names, want) {
			t.Errorf("artifact findings = %v, want %q", names, want)
		}
	}
}

func TestInterpretInvalidSampleRate(t *testing.T) {
	ci := builder.NewClinicalInterpreter(context.Background())

	if _, err := ci.Interpret(builder.SignalMap{}, 0, builder.Intervals{}, goodQuality(), nil, nil, builder.PatientInfo{}); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}

func contains(items []string, want string) bool {
	for _, s := range items {
		if s == want {
			return true
		}
	}
	return false
}
