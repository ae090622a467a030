package interpreter

import (
	"fmt"
	"strings"

	"github.com/cardiokit/ecgcore/pkg/internal/dsp"
	"github.com/cardiokit/ecgcore/pkg/internal/types"
)

// assessRhythm prefers the arrhythmia report when present; otherwise it classifies
// rhythm regularity from the RR coefficient of variation alone.
func assessRhythm(intervals types.Intervals, arrhythmia *types.ArrhythmiaReport) []types.ClinicalFinding {
	var findings []types.ClinicalFinding

	if arrhythmia != nil {
		if arrhythmia.PrimaryRhythm != types.ArrhythmiaNormal {
			findings = append(findings, types.ClinicalFinding{
				Category:             types.CategoryRhythm,
				Name:                 arrhythmiaDisplayName(arrhythmia.PrimaryRhythm),
				Description:          fmt.Sprintf("Primary rhythm: %s", arrhythmia.PrimaryRhythm),
				Severity:             mapArrhythmiaSeverity(arrhythmia.PrimaryRhythm),
				Confidence:           0.85,
				Evidence:             []string{fmt.Sprintf("RR irregularity: %.2f", arrhythmia.RRIrregularity)},
				ClinicalSignificance: arrhythmiaSignificance(arrhythmia.PrimaryRhythm),
			})
		}
		return findings
	}

	if len(intervals.RRIntervals) > 0 {
		rrCV := dsp.Variation(intervals.RRIntervals)
		if rrCV < 0.1 {
			findings = append(findings, types.ClinicalFinding{
				Category:    types.CategoryRhythm,
				Name:        "Regular Sinus Rhythm",
				Description: "Normal sinus rhythm with regular RR intervals",
				Severity:    types.SeverityNormal,
				Confidence:  0.90,
				Evidence:    []string{fmt.Sprintf("RR variability: %.1f%%", rrCV*100)},
			})
		} else if rrCV > 0.3 {
			findings = append(findings, types.ClinicalFinding{
				Category:              types.CategoryRhythm,
				Name:                  "Irregular Rhythm",
				Description:           "Irregularly irregular rhythm detected",
				Severity:              types.SeverityModerate,
				Confidence:            0.80,
				Evidence:              []string{fmt.Sprintf("RR variability: %.1f%%", rrCV*100)},
				ClinicalSignificance:  "Consider atrial fibrillation",
				DifferentialDiagnoses: []string{"Atrial fibrillation", "Atrial flutter with variable block"},
			})
		}
	}

	return findings
}

// assessHeartRate classifies the measured rate against an age-adjusted normal range.
func assessHeartRate(intervals types.Intervals, patientAge *int) []types.ClinicalFinding {
	var findings []types.ClinicalFinding
	if intervals.HeartRate == nil {
		return findings
	}
	hr := *intervals.HeartRate

	lowNormal, highNormal := 60.0, 100.0
	if patientAge != nil {
		switch age := *patientAge; {
		case age < 1:
			lowNormal, highNormal = 100, 160
		case age < 3:
			lowNormal, highNormal = 90, 150
		case age < 10:
			lowNormal, highNormal = 70, 120
		}
	}

	if hr < lowNormal {
		severity := types.SeverityMild
		if hr < 40 {
			severity = types.SeveritySevere
		} else if hr < 50 {
			severity = types.SeverityModerate
		}
		findings = append(findings, types.ClinicalFinding{
			Category:             types.CategoryRhythm,
			Name:                 "Bradycardia",
			Description:          fmt.Sprintf("Heart rate %.0f BPM (normal: %.0f-%.0f)", hr, lowNormal, highNormal),
			Severity:             severity,
			Confidence:           0.95,
			Evidence:             []string{fmt.Sprintf("HR: %.0f BPM", hr)},
			ClinicalSignificance: "May indicate sinus node dysfunction, AV block, or vagal tone",
			DifferentialDiagnoses: []string{
				"Sinus bradycardia",
				"Second-degree AV block",
				"Third-degree AV block",
				"Medication effect (beta-blockers, calcium channel blockers)",
			},
		})
	} else if hr > highNormal {
		severity := types.SeverityMild
		if hr > 150 {
			severity = types.SeveritySevere
		} else if hr > 120 {
			severity = types.SeverityModerate
		}
		findings = append(findings, types.ClinicalFinding{
			Category:             types.CategoryRhythm,
			Name:                 "Tachycardia",
			Description:          fmt.Sprintf("Heart rate %.0f BPM (normal: %.0f-%.0f)", hr, lowNormal, highNormal),
			Severity:             severity,
			Confidence:           0.95,
			Evidence:             []string{fmt.Sprintf("HR: %.0f BPM", hr)},
			ClinicalSignificance: "May indicate sinus tachycardia, SVT, or VT",
			DifferentialDiagnoses: []string{
				"Sinus tachycardia",
				"Supraventricular tachycardia",
				"Atrial fibrillation with RVR",
				"Ventricular tachycardia",
			},
		})
	}

	return findings
}

// assessIntervals flags abnormal PR and QRS measurements.
func assessIntervals(intervals types.Intervals) []types.ClinicalFinding {
	var findings []types.ClinicalFinding

	if intervals.PRInterval != nil {
		pr := *intervals.PRInterval
		if pr < 120 {
			findings = append(findings, types.ClinicalFinding{
				Category:              types.CategoryConduction,
				Name:                  "Short PR Interval",
				Description:           fmt.Sprintf("PR interval %.0f ms (normal: 120-200)", pr),
				Severity:              types.SeverityMild,
				Confidence:            0.85,
				Evidence:              []string{fmt.Sprintf("PR: %.0f ms", pr)},
				ClinicalSignificance:  "May indicate pre-excitation (WPW syndrome)",
				DifferentialDiagnoses: []string{"WPW syndrome", "Lown-Ganong-Levine syndrome"},
			})
		} else if pr > 200 {
			severity := types.SeverityModerate
			if pr >= 250 {
				severity = types.SeveritySevere
			}
			findings = append(findings, types.ClinicalFinding{
				Category:              types.CategoryConduction,
				Name:                  "Prolonged PR Interval (First-Degree AV Block)",
				Description:           fmt.Sprintf("PR interval %.0f ms (normal: 120-200)", pr),
				Severity:              severity,
				Confidence:            0.90,
				Evidence:              []string{fmt.Sprintf("PR: %.0f ms", pr)},
				ClinicalSignificance:  "First-degree AV block, may progress",
				DifferentialDiagnoses: []string{"First-degree AV block", "Medication effect", "Ischemia"},
			})
		}
	}

	if intervals.QRSDuration != nil {
		qrs := *intervals.QRSDuration
		if qrs > 120 {
			severity := types.SeverityModerate
			if qrs >= 140 {
				severity = types.SeveritySevere
			}
			findings = append(findings, types.ClinicalFinding{
				Category:             types.CategoryConduction,
				Name:                 "Wide QRS Complex",
				Description:          fmt.Sprintf("QRS duration %.0f ms (normal: <120)", qrs),
				Severity:             severity,
				Confidence:           0.88,
				Evidence:             []string{fmt.Sprintf("QRS: %.0f ms", qrs)},
				ClinicalSignificance: "Bundle branch block or ventricular origin",
				DifferentialDiagnoses: []string{
					"Right bundle branch block",
					"Left bundle branch block",
					"Ventricular rhythm",
					"Hyperkalemia",
				},
			})
		}
	}

	return findings
}

// assessQTIntervals folds the QT analyzer's risk class and dispersion into findings.
func assessQTIntervals(qtAnalysis *types.QTAnalysis) []types.ClinicalFinding {
	var findings []types.ClinicalFinding

	switch qtAnalysis.RiskLevel {
	case types.QTRiskBorderline:
		var differentials []string
		if len(qtAnalysis.DrugInteractions) > 3 {
			differentials = qtAnalysis.DrugInteractions[:3]
		} else {
			differentials = qtAnalysis.DrugInteractions
		}
		findings = append(findings, types.ClinicalFinding{
			Category:              types.CategoryConduction,
			Name:                  "Borderline QT Prolongation",
			Description:           qtAnalysis.Interpretation,
			Severity:              types.SeverityMild,
			Confidence:            0.80,
			Evidence:              []string{fmt.Sprintf("QTc: %.0f ms", qtAnalysis.MeanQTc)},
			ClinicalSignificance:  "Monitor for progression, check medications",
			DifferentialDiagnoses: differentials,
		})
	case types.QTRiskProlonged:
		findings = append(findings, types.ClinicalFinding{
			Category:             types.CategoryConduction,
			Name:                 "Prolonged QT Interval",
			Description:          qtAnalysis.Interpretation,
			Severity:             types.SeveritySevere,
			Confidence:           0.88,
			Evidence:             []string{fmt.Sprintf("QTc: %.0f ms", qtAnalysis.MeanQTc)},
			ClinicalSignificance: "Risk of torsades de pointes and sudden cardiac death",
			DifferentialDiagnoses: []string{
				"Congenital long QT syndrome",
				"Drug-induced QT prolongation",
				"Electrolyte imbalance",
				"Myocardial ischemia",
			},
		})
	case types.QTRiskSeverelyProlonged:
		findings = append(findings, types.ClinicalFinding{
			Category:             types.CategoryConduction,
			Name:                 "Severely Prolonged QT Interval",
			Description:          qtAnalysis.Interpretation,
			Severity:             types.SeverityCritical,
			Confidence:           0.92,
			Evidence:             []string{fmt.Sprintf("QTc: %.0f ms", qtAnalysis.MeanQTc)},
			ClinicalSignificance: "CRITICAL: High risk of sudden cardiac death",
			DifferentialDiagnoses: []string{
				"Congenital long QT syndrome (types 1-17)",
				"Severe electrolyte abnormality",
				"Drug toxicity",
			},
		})
	}

	if qtAnalysis.Dispersion != nil && qtAnalysis.Dispersion.IsAbnormal() {
		findings = append(findings, types.ClinicalFinding{
			Category:             types.CategoryConduction,
			Name:                 "Increased QT Dispersion",
			Description:          fmt.Sprintf("QT dispersion %.0f ms (normal: <100)", qtAnalysis.Dispersion.Dispersion),
			Severity:             types.SeverityModerate,
			Confidence:           0.75,
			Evidence:             []string{fmt.Sprintf("Dispersion: %.0f ms", qtAnalysis.Dispersion.Dispersion)},
			ClinicalSignificance: "Associated with increased arrhythmia risk",
		})
	}

	return findings
}

// assessQualityIssues reports artifact-category findings for signals too degraded to
// interpret confidently.
func assessQualityIssues(quality types.QualityMetrics) []types.ClinicalFinding {
	var findings []types.ClinicalFinding

	if quality.SNR < 10 {
		findings = append(findings, types.ClinicalFinding{
			Category:             types.CategoryArtifact,
			Name:                 "Poor Signal Quality",
			Description:          fmt.Sprintf("Low signal-to-noise ratio (%.1f dB)", quality.SNR),
			Severity:             types.SeverityMild,
			Confidence:           0.95,
			Evidence:             []string{fmt.Sprintf("SNR: %.1f dB", quality.SNR)},
			ClinicalSignificance: "Interpretation may be limited by signal quality",
		})
	}

	if quality.BaselineDrift > 0.3 {
		findings = append(findings, types.ClinicalFinding{
			Category:             types.CategoryArtifact,
			Name:                 "Baseline Wander",
			Description:          "Significant baseline drift detected",
			Severity:             types.SeverityMild,
			Confidence:           0.90,
			Evidence:             []string{fmt.Sprintf("Drift: %.2f", quality.BaselineDrift)},
			ClinicalSignificance: "May affect ST segment interpretation",
		})
	}

	if quality.ClippingRatio > 0.05 {
		findings = append(findings, types.ClinicalFinding{
			Category:             types.CategoryArtifact,
			Name:                 "Signal Clipping",
			Description:          fmt.Sprintf("%.1f%% of signal clipped", quality.ClippingRatio*100),
			Severity:             types.SeverityModerate,
			Confidence:           0.95,
			Evidence:             []string{fmt.Sprintf("Clipping: %.1f%%", quality.ClippingRatio*100)},
			ClinicalSignificance: "Amplitude measurements may be inaccurate",
		})
	}

	return findings
}

// mapArrhythmiaSeverity grades each rhythm class for the findings list.
func mapArrhythmiaSeverity(arrType types.ArrhythmiaType) types.Severity {
	switch arrType {
	case types.ArrhythmiaVFib, types.ArrhythmiaVT, types.ArrhythmiaThirdDegreeBlock:
		return types.SeverityCritical
	case types.ArrhythmiaAFib, types.ArrhythmiaAFlutter:
		return types.SeveritySevere
	case types.ArrhythmiaSecondDegreeBlock, types.ArrhythmiaBradycardia, types.ArrhythmiaTachycardia:
		return types.SeverityModerate
	case types.ArrhythmiaPAC:
		return types.SeverityBenign
	default:
		return types.SeverityMild
	}
}

// arrhythmiaSignificance states the clinical consequence for the highest-stakes rhythms.
func arrhythmiaSignificance(arrType types.ArrhythmiaType) string {
	switch arrType {
	case types.ArrhythmiaVFib:
		return "FATAL - Immediate defibrillation required"
	case types.ArrhythmiaVT:
		return "Life-threatening - High risk of sudden cardiac death"
	case types.ArrhythmiaAFib:
		return "Stroke risk - Consider anticoagulation"
	case types.ArrhythmiaThirdDegreeBlock:
		return "Complete AV dissociation - Pacemaker needed"
	default:
		return ""
	}
}

// arrhythmiaDisplayName turns the snake_case rhythm identifier into title case.
func arrhythmiaDisplayName(arrType types.ArrhythmiaType) string {
	words := strings.Split(string(arrType), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
