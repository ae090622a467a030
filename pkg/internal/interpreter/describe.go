package interpreter

import (
	"fmt"
	"strings"

	"github.com/cardiokit/ecgcore/pkg/internal/dsp"
	"github.com/cardiokit/ecgcore/pkg/internal/types"
)

// generateRhythmDescription summarizes the rhythm in one phrase, preferring the
// arrhythmia report over the RR-derived fallback.
func generateRhythmDescription(intervals types.Intervals, arrhythmia *types.ArrhythmiaReport) string {
	if arrhythmia != nil && arrhythmia.PrimaryRhythm != types.ArrhythmiaNormal {
		return arrhythmiaDisplayName(arrhythmia.PrimaryRhythm)
	}

	if len(intervals.RRIntervals) > 0 {
		if dsp.Variation(intervals.RRIntervals) < 0.1 {
			return "Regular sinus rhythm"
		}
		return "Irregularly irregular rhythm"
	}

	return "Rhythm assessment limited"
}

// generateRateDescription summarizes the heart rate in one phrase.
func generateRateDescription(intervals types.Intervals, patientAge *int) string {
	if intervals.HeartRate == nil {
		return "Heart rate could not be determined"
	}
	hr := *intervals.HeartRate

	switch {
	case patientAge != nil && *patientAge < 10:
		return fmt.Sprintf("Heart rate %.0f BPM (pediatric)", hr)
	case hr < 60:
		return fmt.Sprintf("Bradycardia at %.0f BPM", hr)
	case hr > 100:
		return fmt.Sprintf("Tachycardia at %.0f BPM", hr)
	default:
		return fmt.Sprintf("Normal heart rate at %.0f BPM", hr)
	}
}

// generateIntervalDescription renders the available intervals with a normal/abnormal
// tag each.
func generateIntervalDescription(intervals types.Intervals) string {
	var parts []string

	if intervals.PRInterval != nil {
		pr := *intervals.PRInterval
		if pr < 120 || pr > 200 {
			parts = append(parts, fmt.Sprintf("PR %.0f ms (abnormal)", pr))
		} else {
			parts = append(parts, fmt.Sprintf("PR %.0f ms (normal)", pr))
		}
	}

	if intervals.QRSDuration != nil {
		qrs := *intervals.QRSDuration
		if qrs > 120 {
			parts = append(parts, fmt.Sprintf("QRS %.0f ms (wide)", qrs))
		} else {
			parts = append(parts, fmt.Sprintf("QRS %.0f ms (normal)", qrs))
		}
	}

	if intervals.QTcInterval != nil {
		qtc := *intervals.QTcInterval
		if qtc > 450 {
			parts = append(parts, fmt.Sprintf("QTc %.0f ms (prolonged)", qtc))
		} else {
			parts = append(parts, fmt.Sprintf("QTc %.0f ms (normal)", qtc))
		}
	}

	if len(parts) == 0 {
		return "Intervals within normal limits"
	}
	return strings.Join(parts, ", ")
}

// generateMorphologyNotes records which precordial and limb leads the recording carries.
func generateMorphologyNotes(signals types.SignalMap) []string {
	var notes []string

	var vLeads []string
	for _, name := range sortedLeadNames(signals) {
		if strings.HasPrefix(name, "V") {
			vLeads = append(vLeads, name)
		}
	}
	if len(vLeads) > 0 {
		notes = append(notes, fmt.Sprintf("Precordial leads present: %s", strings.Join(vLeads, ", ")))
	}

	var limbLeads []string
	for _, candidate := range []string{"I", "II", "III", "aVR", "aVL", "aVF"} {
		if _, ok := signals[candidate]; ok {
			limbLeads = append(limbLeads, candidate)
		}
	}
	if len(limbLeads) > 0 {
		notes = append(notes, fmt.Sprintf("Limb leads present: %s", strings.Join(limbLeads, ", ")))
	}

	return notes
}

// compareWithNormal maps each available measurement to a phrase stating its value and
// the applicable normal range.
func compareWithNormal(intervals types.Intervals, qtAnalysis *types.QTAnalysis, patient types.PatientInfo) map[string]string {
	comparison := make(map[string]string)

	if intervals.HeartRate != nil {
		hr := *intervals.HeartRate
		normalRange := "60-100 BPM"
		if patient.Age != nil && *patient.Age < 10 {
			normalRange = "70-120 BPM (pediatric)"
		}
		switch {
		case hr < 60:
			comparison["Heart Rate"] = fmt.Sprintf("%.0f BPM (below normal %s)", hr, normalRange)
		case hr > 100:
			comparison["Heart Rate"] = fmt.Sprintf("%.0f BPM (above normal %s)", hr, normalRange)
		default:
			comparison["Heart Rate"] = fmt.Sprintf("%.0f BPM (normal)", hr)
		}
	}

	if intervals.PRInterval != nil {
		pr := *intervals.PRInterval
		switch {
		case pr < 120:
			comparison["PR Interval"] = fmt.Sprintf("%.0f ms (short, normal: 120-200 ms)", pr)
		case pr > 200:
			comparison["PR Interval"] = fmt.Sprintf("%.0f ms (long, normal: 120-200 ms)", pr)
		default:
			comparison["PR Interval"] = fmt.Sprintf("%.0f ms (normal)", pr)
		}
	}

	if intervals.QRSDuration != nil {
		qrs := *intervals.QRSDuration
		if qrs > 120 {
			comparison["QRS Duration"] = fmt.Sprintf("%.0f ms (wide, normal: <120 ms)", qrs)
		} else {
			comparison["QRS Duration"] = fmt.Sprintf("%.0f ms (normal)", qrs)
		}
	}

	if qtAnalysis != nil {
		genderStr := ""
		if patient.Gender != "" {
			genderStr = fmt.Sprintf(" (%s)", patient.Gender)
		}
		if qtAnalysis.IsProlonged() {
			comparison["QTc"] = fmt.Sprintf("%.0f ms (prolonged%s)", qtAnalysis.MeanQTc, genderStr)
		} else {
			comparison["QTc"] = fmt.Sprintf("%.0f ms (normal%s)", qtAnalysis.MeanQTc, genderStr)
		}
	}

	return comparison
}
