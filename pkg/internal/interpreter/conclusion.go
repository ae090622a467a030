package interpreter

import "github.com/cardiokit/ecgcore/pkg/internal/types"

const maxAdditionalFindings = 5

// generateConclusion synthesizes the overall conclusion. The primary diagnosis is the
// first finding at the highest severity present; critical and severe findings force the
// urgent flag.
func generateConclusion(
	findings []types.ClinicalFinding,
	arrhythmia *types.ArrhythmiaReport,
	qtAnalysis *types.QTAnalysis,
) types.ClinicalConclusion {
	primaryDiagnosis := "Normal ECG"
	severity := types.SeverityNormal
	urgent := false

	if first := firstAtSeverity(findings, types.SeverityCritical); first != nil {
		primaryDiagnosis = first.Name
		severity = types.SeverityCritical
		urgent = true
	} else if first := firstAtSeverity(findings, types.SeveritySevere); first != nil {
		primaryDiagnosis = first.Name
		severity = types.SeveritySevere
		urgent = true
	} else {
		for _, sev := range []types.Severity{types.SeverityModerate, types.SeverityMild, types.SeverityBenign} {
			if first := firstAtSeverity(findings, sev); first != nil {
				primaryDiagnosis = first.Name
				severity = sev
				break
			}
		}
	}

	var additional []string
	for _, f := range findings {
		if f.Name == primaryDiagnosis {
			continue
		}
		additional = append(additional, f.Name)
		if len(additional) == maxAdditionalFindings {
			break
		}
	}

	var recommendations []string
	if urgent {
		recommendations = append(recommendations, "URGENT: Immediate cardiology consultation required")
	}
	if arrhythmia != nil {
		recommendations = append(recommendations, headOf(arrhythmia.Recommendations, 3)...)
	}
	if qtAnalysis != nil {
		recommendations = append(recommendations, headOf(qtAnalysis.ClinicalNotes, 2)...)
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"Continue routine cardiac monitoring",
			"Repeat ECG in 6-12 months or if symptoms develop",
		)
	}

	followUp := "Routine follow-up as scheduled"
	if urgent {
		followUp = "Immediate follow-up required"
	} else if severity == types.SeveritySevere || severity == types.SeverityModerate {
		followUp = "Follow-up within 1-2 weeks"
	}

	prognosis := "Good with monitoring"
	switch severity {
	case types.SeverityCritical:
		prognosis = "Guarded - requires immediate intervention"
	case types.SeveritySevere:
		prognosis = "Fair with appropriate treatment"
	}

	return types.ClinicalConclusion{
		PrimaryDiagnosis:     primaryDiagnosis,
		AdditionalFindings:   additional,
		Severity:             severity,
		UrgentActionRequired: urgent,
		Recommendations:      recommendations,
		FollowUp:             followUp,
		Prognosis:            prognosis,
	}
}

// firstAtSeverity returns the first finding carrying exactly the given severity.
func firstAtSeverity(findings []types.ClinicalFinding, severity types.Severity) *types.ClinicalFinding {
	for i := range findings {
		if findings[i].Severity == severity {
			return &findings[i]
		}
	}
	return nil
}

func headOf(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
