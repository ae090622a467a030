package interpreter

import (
	"fmt"

	"github.com/cardiokit/ecgcore/pkg/internal/types"
)

// Interpret runs every assessment pass over the recording and assembles the findings
// report. arrhythmia and qtAnalysis may be nil; the rhythm pass then falls back to
// interval-derived heuristics and the QT pass is skipped.
func (ci *ClinicalInterpreter) Interpret(
	signals types.SignalMap,
	sampleRate int,
	intervals types.Intervals,
	quality types.QualityMetrics,
	arrhythmia *types.ArrhythmiaReport,
	qtAnalysis *types.QTAnalysis,
	patient types.PatientInfo,
) (*types.AutomatedFindings, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("clinical interpreter requires a positive sample rate, got %d", sampleRate)
	}

	var findings []types.ClinicalFinding

	findings = append(findings, assessRhythm(intervals, arrhythmia)...)
	findings = append(findings, assessHeartRate(intervals, patient.Age)...)
	findings = append(findings, assessIntervals(intervals)...)
	if qtAnalysis != nil {
		findings = append(findings, assessQTIntervals(qtAnalysis)...)
	}

	axis, axisFindings := assessAxis(signals)
	findings = append(findings, axisFindings...)

	findings = append(findings, assessMorphology(signals)...)
	findings = append(findings, assessIschemia(signals, sampleRate)...)
	findings = append(findings, assessHypertrophy(signals)...)
	findings = append(findings, assessQualityIssues(quality)...)

	report := &types.AutomatedFindings{
		Findings:             findings,
		Conclusion:           generateConclusion(findings, arrhythmia, qtAnalysis),
		Axis:                 axis,
		RhythmDescription:    generateRhythmDescription(intervals, arrhythmia),
		RateDescription:      generateRateDescription(intervals, patient.Age),
		IntervalDescription:  generateIntervalDescription(intervals),
		MorphologyNotes:      generateMorphologyNotes(signals),
		ComparisonWithNormal: compareWithNormal(intervals, qtAnalysis, patient),
	}

	ci.NotifyLoggers(types.InfoLevel, "Interpret: interpretation complete",
		"component", ci.snapshotMetadata(),
		"findings", len(findings),
		"primary_diagnosis", report.Conclusion.PrimaryDiagnosis,
		"urgent", report.Conclusion.UrgentActionRequired,
	)

	return report, nil
}
