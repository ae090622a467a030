package types_test

import (
	"math"
	"testing"

	"github.com/cardiokit/ecgcore/pkg/builder"
)

func floatPtr(v float64) *float64 { return &v }

func TestQualityMetricsOverallScore(t *testing.T) {
	perfect := builder.QualityMetrics{SNR: 30, BaselineDrift: 0, ClippingRatio: 0, Coverage: 1, Confidence: 1}
	if got := perfect.OverallScore(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("OverallScore perfect = %v, want 1", got)
	}

	// SNR saturates at 30 dB.
	saturated := builder.QualityMetrics{SNR: 90, BaselineDrift: 0, ClippingRatio: 0, Coverage: 1, Confidence: 1}
	if got := saturated.OverallScore(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("OverallScore saturated = %v, want 1", got)
	}

	half := builder.QualityMetrics{SNR: 15, BaselineDrift: 0.5, ClippingRatio: 0.5, Coverage: 0.5, Confidence: 0.5}
	want := 0.5*0.3 + 0.5*0.2 + 0.5*0.2 + 0.5*0.2 + 0.5*0.1
	if got := half.OverallScore(); math.Abs(got-want) > 1e-9 {
		t.Errorf("OverallScore half = %v, want %v", got, want)
	}
}

func TestQualityMetricsIsAcceptable(t *testing.T) {
	good := builder.QualityMetrics{SNR: 12, BaselineDrift: 0.2, ClippingRatio: 0.01, Coverage: 0.9}
	if !good.IsAcceptable() {
		t.Error("IsAcceptable = false for acceptable quality")
	}

	cases := []builder.QualityMetrics{
		{SNR: 9, BaselineDrift: 0.2, ClippingRatio: 0.01, Coverage: 0.9},
		{SNR: 12, BaselineDrift: 0.4, ClippingRatio: 0.01, Coverage: 0.9},
		{SNR: 12, BaselineDrift: 0.2, ClippingRatio: 0.1, Coverage: 0.9},
		{SNR: 12, BaselineDrift: 0.2, ClippingRatio: 0.01, Coverage: 0.7},
	}
	for i, q := range cases {
		if q.IsAcceptable() {
			t.Errorf("case %d: IsAcceptable = true, want false", i)
		}
	}
}

func TestIntervalsIsNormal(t *testing.T) {
	normal := builder.Intervals{
		PRInterval:  floatPtr(160),
		QRSDuration: floatPtr(90),
		QTcInterval: floatPtr(420),
	}
	if !normal.IsNormal() {
		t.Error("IsNormal = false for normal intervals")
	}

	longPR := builder.Intervals{PRInterval: floatPtr(220)}
	if longPR.IsNormal() {
		t.Error("IsNormal = true with prolonged PR")
	}

	empty := builder.Intervals{}
	if empty.IsNormal() {
		t.Error("IsNormal = true with no measurements")
	}
}

func TestQTDispersionIsAbnormal(t *testing.T) {
	normal := builder.QTDispersion{Dispersion: 60}
	if normal.IsAbnormal() {
		t.Error("IsAbnormal = true at 60 ms")
	}
	high := builder.QTDispersion{Dispersion: 120}
	if !high.IsAbnormal() {
		t.Error("IsAbnormal = false at 120 ms")
	}
}

func TestSeverityOrdering(t *testing.T) {
	order := []builder.Severity{
		builder.SeverityNormal,
		builder.SeverityBenign,
		builder.SeverityMild,
		builder.SeverityModerate,
		builder.SeveritySevere,
		builder.SeverityCritical,
	}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Fatalf("severity ordering broken at %s >= %s", order[i-1], order[i])
		}
	}
}

func TestQTRiskOrdering(t *testing.T) {
	order := []builder.QTRiskLevel{
		builder.QTRiskNormal,
		builder.QTRiskBorderline,
		builder.QTRiskProlonged,
		builder.QTRiskSeverelyProlonged,
	}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Fatalf("risk ordering broken at %s >= %s", order[i-1], order[i])
		}
	}
}

func TestAutomatedFindingsFilters(t *testing.T) {
	af := builder.AutomatedFindings{
		Findings: []builder.ClinicalFinding{
			{Name: "Regular Sinus Rhythm", Severity: builder.SeverityNormal},
			{Name: "PAC", Severity: builder.SeverityBenign},
			{Name: "Bradycardia", Severity: builder.SeverityModerate},
			{Name: "ST Elevation in V2", Severity: builder.SeverityCritical},
		},
	}

	critical := af.CriticalFindings()
	if len(critical) != 1 || critical[0].Name != "ST Elevation in V2" {
		t.Errorf("CriticalFindings = %v", critical)
	}

	abnormal := af.AbnormalFindings()
	if len(abnormal) != 2 {
		t.Errorf("AbnormalFindings = %v, want bradycardia and ST elevation", abnormal)
	}
}
