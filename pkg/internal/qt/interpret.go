package qt

import (
	"fmt"
	"strings"

	"github.com/cardiokit/ecgcore/pkg/internal/types"
)

// assessRisk classifies the mean QTc against gender-specific thresholds. Borderline
// starts 10 ms and prolonged 30 ms above the applicable normal maximum; an empty or
// unrecognized gender uses the neutral 460 ms bound.
func assessRisk(qtc float64, gender string) types.QTRiskLevel {
	normalMax := normalQTcNeutralMax
	switch strings.ToUpper(gender) {
	case "M":
		normalMax = normalQTcMaleMax
	case "F":
		normalMax = normalQTcFemaleMax
	}

	borderline := normalMax + borderlineOffset
	prolonged := normalMax + prolongedOffset

	switch {
	case qtc > prolonged:
		return types.QTRiskSeverelyProlonged
	case qtc > borderline:
		return types.QTRiskProlonged
	case qtc > normalMax:
		return types.QTRiskBorderline
	default:
		return types.QTRiskNormal
	}
}

// generateInterpretation renders the one-line clinical interpretation.
func generateInterpretation(qt, qtc float64, risk types.QTRiskLevel, gender string, dispersion *types.QTDispersion) string {
	genderStr := ""
	if gender != "" {
		genderStr = fmt.Sprintf("(%s) ", gender)
	}

	interpretation := fmt.Sprintf("QT interval: %.0f ms, QTc (Bazett): %.0f ms %s", qt, qtc, genderStr)

	switch risk {
	case types.QTRiskNormal:
		interpretation += "- Within normal limits."
	case types.QTRiskBorderline:
		interpretation += "- Borderline prolonged. Monitor and recheck."
	case types.QTRiskProlonged:
		interpretation += "- PROLONGED. Risk of torsades de pointes."
	case types.QTRiskSeverelyProlonged:
		interpretation += "- SEVERELY PROLONGED. HIGH RISK of sudden cardiac death."
	}

	if dispersion != nil && dispersion.IsAbnormal() {
		interpretation += fmt.Sprintf(" QT dispersion is elevated (%.0f ms).", dispersion.Dispersion)
	}

	return interpretation
}

// generateClinicalNotes lists recommendations keyed to the risk class and dispersion.
func generateClinicalNotes(risk types.QTRiskLevel, dispersion *types.QTDispersion) []string {
	var notes []string

	if risk == types.QTRiskProlonged || risk == types.QTRiskSeverelyProlonged {
		notes = append(notes,
			"Review all medications for QT-prolonging drugs",
			"Check electrolytes (K+, Mg2+, Ca2+)",
			"Consider genetic testing for congenital LQTS",
			"Avoid strenuous exercise",
		)
	}

	if risk == types.QTRiskSeverelyProlonged {
		notes = append(notes,
			"URGENT: Consider ICD placement if symptomatic",
			"Strict avoidance of QT-prolonging medications",
		)
	}

	if dispersion != nil && dispersion.IsAbnormal() {
		notes = append(notes,
			fmt.Sprintf("Elevated QT dispersion (%.0f ms) suggests increased arrhythmia risk", dispersion.Dispersion))
	}

	if len(notes) == 0 {
		notes = append(notes, "No specific interventions required")
	}

	return notes
}

// checkDrugInteractions lists the common QT-prolonging drug classes for any non-normal
// risk level.
func checkDrugInteractions(risk types.QTRiskLevel) []string {
	if risk == types.QTRiskNormal {
		return nil
	}

	return []string{
		"Antiarrhythmics: amiodarone, sotalol, quinidine",
		"Antibiotics: azithromycin, levofloxacin, moxifloxacin",
		"Antipsychotics: haloperidol, ziprasidone, quetiapine",
		"Antidepressants: citalopram, escitalopram",
		"Antiemetics: ondansetron, droperidol",
		"Antifungals: fluconazole, ketoconazole",
	}
}
