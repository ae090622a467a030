package arrhythmia

import (
	"fmt"

	"github.com/cardiokit/ecgcore/pkg/internal/dsp"
	"github.com/cardiokit/ecgcore/pkg/internal/types"
)

// lifeThreateningPriority orders the rhythms that override a most-common vote when
// detected with sufficient confidence.
var lifeThreateningPriority = []types.ArrhythmiaType{
	types.ArrhythmiaVFib,
	types.ArrhythmiaVT,
	types.ArrhythmiaAFib,
	types.ArrhythmiaAFlutter,
	types.ArrhythmiaThirdDegreeBlock,
}

// determinePrimaryRhythm selects the dominant rhythm: life-threatening types first
// (confidence above 0.7), otherwise the most frequently detected type with ties broken
// by earliest first occurrence.
func determinePrimaryRhythm(detections []types.ArrhythmiaDetection) types.ArrhythmiaType {
	if len(detections) == 0 {
		return types.ArrhythmiaNormal
	}

	for _, priority := range lifeThreateningPriority {
		for _, d := range detections {
			if d.Type == priority && d.Confidence > primaryConfidenceFloor {
				return priority
			}
		}
	}

	counts := make(map[types.ArrhythmiaType]int)
	firstSeen := make(map[types.ArrhythmiaType]int)
	for i, d := range detections {
		counts[d.Type]++
		if _, ok := firstSeen[d.Type]; !ok {
			firstSeen[d.Type] = i
		}
	}

	best := types.ArrhythmiaNormal
	bestCount := 0
	bestFirst := len(detections)
	for t, c := range counts {
		if c > bestCount || (c == bestCount && firstSeen[t] < bestFirst) {
			best = t
			bestCount = c
			bestFirst = firstSeen[t]
		}
	}
	return best
}

// heartRateStats converts each RR interval to an instantaneous heart rate and returns
// the mean and population standard deviation.
func (ad *ArrhythmiaDetector) heartRateStats(rrIntervals []float64) (float64, float64) {
	if len(rrIntervals) == 0 {
		return 0, 0
	}
	heartRates := make([]float64, len(rrIntervals))
	for i, rr := range rrIntervals {
		heartRates[i] = 60 * float64(ad.sampleRate) / rr
	}
	return dsp.Mean(heartRates), dsp.Std(heartRates)
}

// calculateBurden reports, per detected type, the percentage of the recording covered
// by detections carrying an explicit duration. Types with no detections are omitted.
func calculateBurden(detections []types.ArrhythmiaDetection, totalSamples int) map[types.ArrhythmiaType]float64 {
	burden := make(map[types.ArrhythmiaType]float64)
	if totalSamples <= 0 {
		return burden
	}

	for _, arrType := range types.AllArrhythmiaTypes {
		found := false
		totalDuration := 0
		for _, d := range detections {
			if d.Type != arrType {
				continue
			}
			found = true
			if d.DurationSamples != nil {
				totalDuration += *d.DurationSamples
			}
		}
		if found {
			burden[arrType] = float64(totalDuration) / float64(totalSamples) * 100
		}
	}
	return burden
}

// identifyCriticalFindings lists the findings demanding immediate clinical attention.
func identifyCriticalFindings(detections []types.ArrhythmiaDetection) []string {
	var critical []string
	for _, d := range detections {
		switch {
		case d.Type == types.ArrhythmiaVFib:
			critical = append(critical, "VENTRICULAR FIBRILLATION - IMMEDIATE DEFIBRILLATION REQUIRED")
		case d.Type == types.ArrhythmiaVT && d.Severity == types.DetectionSevere:
			critical = append(critical, "SEVERE VENTRICULAR TACHYCARDIA - URGENT INTERVENTION NEEDED")
		case d.Type == types.ArrhythmiaThirdDegreeBlock:
			critical = append(critical, "COMPLETE HEART BLOCK - PACEMAKER EVALUATION NEEDED")
		case d.Type == types.ArrhythmiaBradycardia && d.Severity == types.DetectionSevere:
			critical = append(critical, "SEVERE BRADYCARDIA - ASSESS FOR HEMODYNAMIC COMPROMISE")
		}
	}
	return critical
}

// generateRecommendations builds clinical follow-up guidance from the primary rhythm
// and the ectopic beat load.
func generateRecommendations(detections []types.ArrhythmiaDetection, primaryRhythm types.ArrhythmiaType) []string {
	var recommendations []string

	switch primaryRhythm {
	case types.ArrhythmiaAFib:
		recommendations = append(recommendations,
			"Consider anticoagulation therapy (CHA2DS2-VASc score)",
			"Rate control with beta-blockers or calcium channel blockers",
			"Consider rhythm control strategy if symptomatic",
		)
	case types.ArrhythmiaVT:
		recommendations = append(recommendations,
			"Immediate cardiology consultation",
			"Assess for underlying structural heart disease",
			"Consider ICD placement if recurrent",
		)
	}

	pvcCount := 0
	for _, d := range detections {
		if d.Type == types.ArrhythmiaPVC {
			pvcCount++
		}
	}
	if pvcCount > frequentPVCCount {
		recommendations = append(recommendations,
			fmt.Sprintf("Frequent PVCs detected (%d) - consider 24hr Holter monitoring", pvcCount))
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Continue routine cardiac monitoring")
	}

	return recommendations
}
