package interpreter

import (
	"fmt"
	"math"
	"sort"

	"github.com/cardiokit/ecgcore/pkg/internal/dsp"
	"github.com/cardiokit/ecgcore/pkg/internal/types"
)

// ST segment window after the R-peak, in seconds.
const (
	stWindowStartSec   = 0.08
	stWindowEndSec     = 0.12
	stElevationVolts   = 0.2  // >2 mm elevation.
	stDepressionVolts  = -0.1 // >1 mm depression.
	lowRAmplitudeVolts = 0.1
	sokolowLyonVolts   = 3.5 // 35 mm voltage criteria.
)

// assessAxis estimates the QRS axis from the mean polarity of leads I and aVF. Returns
// an empty axis when either lead is missing.
func assessAxis(signals types.SignalMap) (string, []types.ClinicalFinding) {
	var findings []types.ClinicalFinding

	leadI, okI := signals["I"]
	leadAVF, okAVF := signals["aVF"]
	if !okI || !okAVF {
		return "", findings
	}

	iAmplitude := dsp.Mean(leadI)
	avfAmplitude := dsp.Mean(leadAVF)

	var axis string
	switch {
	case iAmplitude > 0 && avfAmplitude > 0:
		axis = "Normal axis (0 to +90 degrees)"
	case iAmplitude > 0 && avfAmplitude < 0:
		axis = "Left axis deviation (-30 to -90 degrees)"
		findings = append(findings, types.ClinicalFinding{
			Category:             types.CategoryConduction,
			Name:                 "Left Axis Deviation",
			Description:          axis,
			Severity:             types.SeverityMild,
			Confidence:           0.75,
			Evidence:             []string{"Lead I: positive, aVF: negative"},
			ClinicalSignificance: "May indicate left ventricular hypertrophy or LAFB",
			DifferentialDiagnoses: []string{
				"Left anterior fascicular block",
				"Left ventricular hypertrophy",
				"Inferior MI",
			},
		})
	case iAmplitude < 0 && avfAmplitude > 0:
		axis = "Right axis deviation (+90 to +180 degrees)"
		findings = append(findings, types.ClinicalFinding{
			Category:             types.CategoryConduction,
			Name:                 "Right Axis Deviation",
			Description:          axis,
			Severity:             types.SeverityModerate,
			Confidence:           0.75,
			Evidence:             []string{"Lead I: negative, aVF: positive"},
			ClinicalSignificance: "May indicate right ventricular hypertrophy or pulmonary disease",
			DifferentialDiagnoses: []string{
				"Right ventricular hypertrophy",
				"Chronic lung disease",
				"Pulmonary embolism",
				"Left posterior fascicular block",
			},
		})
	default:
		axis = "Extreme axis deviation (northwest axis)"
		findings = append(findings, types.ClinicalFinding{
			Category:             types.CategoryConduction,
			Name:                 "Extreme Axis Deviation",
			Description:          axis,
			Severity:             types.SeveritySevere,
			Confidence:           0.70,
			Evidence:             []string{"Lead I: negative, aVF: negative"},
			ClinicalSignificance: "Unusual axis, consider lead misplacement or complex pathology",
		})
	}

	return axis, findings
}

// assessMorphology checks the early precordial leads for poor R-wave progression.
// Leads are visited in sorted name order for deterministic finding order.
func assessMorphology(signals types.SignalMap) []types.ClinicalFinding {
	var findings []types.ClinicalFinding

	for _, leadName := range sortedLeadNames(signals) {
		if leadName != "V1" && leadName != "V2" && leadName != "V3" {
			continue
		}
		signal := signals[leadName]
		if len(signal) == 0 {
			continue
		}

		maxVal := signal[0]
		for _, v := range signal {
			if v > maxVal {
				maxVal = v
			}
		}
		rAmplitude := maxVal - dsp.Median(signal)

		if rAmplitude < lowRAmplitudeVolts {
			findings = append(findings, types.ClinicalFinding{
				Category:             types.CategoryMorphology,
				Name:                 fmt.Sprintf("Poor R-Wave Progression in %s", leadName),
				Description:          fmt.Sprintf("Low R-wave amplitude in %s", leadName),
				Severity:             types.SeverityMild,
				Confidence:           0.65,
				Evidence:             []string{fmt.Sprintf("%s amplitude: %.2f mV", leadName, rAmplitude)},
				ClinicalSignificance: "May indicate anterior MI or lead misplacement",
			})
		}
	}

	return findings
}

// assessIschemia screens each lead for ST segment deviation in the 80-120 ms window
// after the start of the recording baseline.
func assessIschemia(signals types.SignalMap, sampleRate int) []types.ClinicalFinding {
	var findings []types.ClinicalFinding

	stStart := int(stWindowStartSec * float64(sampleRate))
	stEnd := int(stWindowEndSec * float64(sampleRate))

	for _, leadName := range sortedLeadNames(signals) {
		signal := signals[leadName]
		if stEnd > len(signal) || stStart >= stEnd {
			continue
		}

		baseline := dsp.Median(signal)
		stDeviation := dsp.Mean(signal[stStart:stEnd]) - baseline

		if stDeviation > stElevationVolts {
			findings = append(findings, types.ClinicalFinding{
				Category:             types.CategoryIschemia,
				Name:                 fmt.Sprintf("ST Elevation in %s", leadName),
				Description:          fmt.Sprintf("ST segment elevation detected in %s", leadName),
				Severity:             types.SeverityCritical,
				Confidence:           0.70,
				Evidence:             []string{fmt.Sprintf("ST elevation: %.2f mV", stDeviation)},
				ClinicalSignificance: "STEMI - requires immediate intervention",
				DifferentialDiagnoses: []string{
					"Acute myocardial infarction",
					"Pericarditis",
					"Early repolarization",
				},
			})
		} else if stDeviation < stDepressionVolts {
			findings = append(findings, types.ClinicalFinding{
				Category:             types.CategoryIschemia,
				Name:                 fmt.Sprintf("ST Depression in %s", leadName),
				Description:          fmt.Sprintf("ST segment depression detected in %s", leadName),
				Severity:             types.SeveritySevere,
				Confidence:           0.70,
				Evidence:             []string{fmt.Sprintf("ST depression: %.2f mV", stDeviation)},
				ClinicalSignificance: "Myocardial ischemia or NSTEMI",
				DifferentialDiagnoses: []string{
					"Myocardial ischemia",
					"NSTEMI",
					"Digitalis effect",
				},
			})
		}
	}

	return findings
}

// assessHypertrophy applies the Sokolow-Lyon voltage criteria (S in V1 plus R in V5
// above 35 mm) when both precordial leads are present.
func assessHypertrophy(signals types.SignalMap) []types.ClinicalFinding {
	var findings []types.ClinicalFinding

	v1, okV1 := signals["V1"]
	v5, okV5 := signals["V5"]
	if !okV1 || !okV5 || len(v1) == 0 || len(v5) == 0 {
		return findings
	}

	minV1 := v1[0]
	for _, v := range v1 {
		if v < minV1 {
			minV1 = v
		}
	}
	maxV5 := v5[0]
	for _, v := range v5 {
		if v > maxV5 {
			maxV5 = v
		}
	}

	sokolowLyon := math.Abs(minV1) + maxV5
	if sokolowLyon > sokolowLyonVolts {
		findings = append(findings, types.ClinicalFinding{
			Category:             types.CategoryHypertrophy,
			Name:                 "Left Ventricular Hypertrophy",
			Description:          fmt.Sprintf("Voltage criteria for LVH (Sokolow-Lyon: %.1f mV)", sokolowLyon),
			Severity:             types.SeverityModerate,
			Confidence:           0.75,
			Evidence:             []string{fmt.Sprintf("S(V1) + R(V5) = %.1f mV", sokolowLyon)},
			ClinicalSignificance: "Associated with hypertension and heart failure risk",
			DifferentialDiagnoses: []string{
				"Essential hypertension",
				"Aortic stenosis",
				"Athletic heart",
			},
		})
	}

	return findings
}

// sortedLeadNames returns the lead names in sorted order. Precordial leads sort after
// the limb leads lexically, which keeps finding order stable across runs.
func sortedLeadNames(signals types.SignalMap) []string {
	names := make([]string, 0, len(signals))
	for name := range signals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
