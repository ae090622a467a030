package qt

import (
	"fmt"
	"math"
	"sort"

	"github.com/cardiokit/ecgcore/pkg/internal/dsp"
	"github.com/cardiokit/ecgcore/pkg/internal/types"
	"github.com/cardiokit/ecgcore/pkg/internal/utils"
)

// Normal QTc upper bounds in ms. Borderline and prolonged thresholds sit 10 and 30 ms
// above the applicable bound.
const (
	normalQTcMaleMax    = 450.0
	normalQTcFemaleMax  = 470.0
	normalQTcNeutralMax = 460.0
	borderlineOffset    = 10.0
	prolongedOffset     = 30.0
)

// Beat segmentation and T-wave search constants, all in seconds of signal.
const (
	maxBeatWindowSec    = 0.8  // Cap on the analyzed segment after each R-peak.
	minBeatSegmentSec   = 0.2  // Segments shorter than this are skipped.
	qrsEndSec           = 0.15 // Assumed QRS end offset from the R-peak.
	tSearchEndSec       = 0.5  // Upper bound of the T-wave search window.
	defaultQTSec        = 0.4  // Fallback QT when no baseline return is found.
	expectedTEndSec     = 0.35 // Expected T-wave end used for quality scoring.
	tEndToleranceSec    = 0.2  // Deviation beyond this degrades quality.
	tEndThresholdFrac   = 0.1  // Baseline-return threshold as a fraction of T amplitude.
	savgolWindowSamples = 51
	savgolOrder         = 3
	baselineTailSamples = 50
)

// Defaults reported when no beat on any lead can be measured.
const (
	defaultMeanQT  = 400.0
	defaultMeanQTc = 420.0
	defaultStdQT   = 20.0
)

// Analyze measures QT intervals on every lead carrying at least two R-peaks and builds
// the aggregate analysis. Leads are visited in sorted name order so repeated runs over
// the same input produce identical measurement ordering. When no beat can be measured
// a fixed default report is returned rather than an error.
func (qa *QTAnalyzer) Analyze(signals types.SignalMap, rPeaks types.PeakMap, gender string) (*types.QTAnalysis, error) {
	if qa.sampleRate <= 0 {
		return nil, fmt.Errorf("qt analyzer requires a positive sample rate, got %d", qa.sampleRate)
	}

	leadNames := make([]string, 0, len(signals))
	for name := range signals {
		leadNames = append(leadNames, name)
	}
	sort.Strings(leadNames)

	var measurements []types.QTMeasurement
	for _, leadName := range leadNames {
		peaks, ok := rPeaks[leadName]
		if !ok || len(peaks) < 2 {
			continue
		}
		measurements = append(measurements, qa.measureQTIntervals(signals[leadName], peaks, leadName)...)
	}

	if len(measurements) == 0 {
		qa.NotifyLoggers(types.WarnLevel, "Analyze: no measurable beats, returning default analysis",
			"component", qa.snapshotMetadata(),
			"leads", len(signals),
		)
		return &types.QTAnalysis{
			MeanQT:         defaultMeanQT,
			MeanQTc:        defaultMeanQTc,
			StdQT:          defaultStdQT,
			RiskLevel:      types.QTRiskNormal,
			Interpretation: "Unable to measure QT intervals",
		}, nil
	}

	qtValues := make([]float64, len(measurements))
	qtcValues := make([]float64, len(measurements))
	for i, m := range measurements {
		qtValues[i] = m.QTInterval
		qtcValues[i] = m.QTcBazett
	}

	meanQT := dsp.Mean(qtValues)
	meanQTc := dsp.Mean(qtcValues)
	stdQT := dsp.Std(qtValues)

	dispersion := calculateDispersion(measurements)

	riskLevel := assessRisk(meanQTc, gender)

	analysis := &types.QTAnalysis{
		Measurements:         measurements,
		MeanQT:               meanQT,
		MeanQTc:              meanQTc,
		StdQT:                stdQT,
		Dispersion:           dispersion,
		RiskLevel:            riskLevel,
		GenderSpecificNormal: gender != "",
		Interpretation:       generateInterpretation(meanQT, meanQTc, riskLevel, gender, dispersion),
		ClinicalNotes:        generateClinicalNotes(riskLevel, dispersion),
		DrugInteractions:     checkDrugInteractions(riskLevel),
	}

	qa.NotifyLoggers(types.InfoLevel, "Analyze: qt analysis complete",
		"component", qa.snapshotMetadata(),
		"measurements", len(measurements),
		"mean_qtc", meanQTc,
		"risk_level", riskLevel.String(),
	)

	return analysis, nil
}

// measureQTIntervals walks consecutive R-peak pairs on one lead, locating the T-wave
// end in each beat segment and emitting one measurement per measurable beat.
func (qa *QTAnalyzer) measureQTIntervals(signal []float64, rPeaks []int, leadName string) []types.QTMeasurement {
	var measurements []types.QTMeasurement

	for i := 0; i < len(rPeaks)-1; i++ {
		rPeak := rPeaks[i]
		nextRPeak := rPeaks[i+1]

		beatStart := rPeak
		beatEnd := nextRPeak
		if limit := rPeak + int(maxBeatWindowSec*float64(qa.sampleRate)); limit < beatEnd {
			beatEnd = limit
		}
		if beatStart < 0 || beatEnd > len(signal) || beatStart >= beatEnd {
			continue
		}

		beatSegment := signal[beatStart:beatEnd]
		if len(beatSegment) < int(minBeatSegmentSec*float64(qa.sampleRate)) {
			continue
		}

		tEndOffset, ok := qa.findTWaveEnd(beatSegment)
		if !ok {
			continue
		}

		qtMs := float64(tEndOffset) / float64(qa.sampleRate) * 1000
		rrSec := float64(nextRPeak-rPeak) / float64(qa.sampleRate)
		heartRate := 60.0 / rrSec

		measurements = append(measurements, types.QTMeasurement{
			QTInterval:         qtMs,
			QTcBazett:          correctBazett(qtMs, rrSec),
			QTcFridericia:      correctFridericia(qtMs, rrSec),
			QTcFramingham:      correctFramingham(qtMs, rrSec),
			QTcHodges:          correctHodges(qtMs, heartRate),
			RRInterval:         rrSec * 1000,
			HeartRate:          heartRate,
			LeadName:           leadName,
			MeasurementQuality: qa.assessMeasurementQuality(beatSegment, tEndOffset),
		})
	}

	return measurements
}

// findTWaveEnd locates the T-wave end in a beat segment: smooth with a Savitzky-Golay
// filter, pick the largest deflection after the assumed QRS end, then walk forward to
// the first sample back within 10% of the T amplitude above baseline. Falls back to a
// nominal 400 ms offset when the signal never settles.
func (qa *QTAnalyzer) findTWaveEnd(beatSegment []float64) (int, bool) {
	if len(beatSegment) < 50 {
		return 0, false
	}

	windowLength := savgolWindowSamples
	if windowLength > len(beatSegment)-1 {
		windowLength = len(beatSegment) - 1
	}
	if windowLength%2 == 0 {
		windowLength--
	}
	if windowLength < 5 {
		return 0, false
	}

	smoothed := dsp.SavitzkyGolay(beatSegment, windowLength, savgolOrder)

	qrsEnd := int(qrsEndSec * float64(qa.sampleRate))
	tSearchStart := qrsEnd
	if limit := len(smoothed) - 10; tSearchStart > limit {
		tSearchStart = limit
	}
	tSearchEnd := int(tSearchEndSec * float64(qa.sampleRate))
	if tSearchEnd > len(smoothed) {
		tSearchEnd = len(smoothed)
	}
	if tSearchEnd <= tSearchStart {
		return 0, false
	}

	tPeakIdx := tSearchStart
	maxAbs := math.Abs(smoothed[tSearchStart])
	for i := tSearchStart + 1; i < tSearchEnd; i++ {
		if a := math.Abs(smoothed[i]); a > maxAbs {
			maxAbs = a
			tPeakIdx = i
		}
	}

	baseline := 0.0
	if len(smoothed) > baselineTailSamples {
		baseline = dsp.Median(smoothed[len(smoothed)-baselineTailSamples:])
	}
	threshold := tEndThresholdFrac * math.Abs(smoothed[tPeakIdx]-baseline)

	for i := tPeakIdx; i < len(smoothed); i++ {
		if math.Abs(smoothed[i]-baseline) < threshold {
			return i, true
		}
	}

	defaultQT := int(defaultQTSec * float64(qa.sampleRate))
	if limit := len(beatSegment) - 1; defaultQT > limit {
		defaultQT = limit
	}
	return defaultQT, true
}

// assessMeasurementQuality scores one measurement in [0,1]: noisy segments and T-wave
// ends far from the expected ~350 ms each degrade the score multiplicatively.
func (qa *QTAnalyzer) assessMeasurementQuality(beatSegment []float64, tEnd int) float64 {
	quality := 1.0

	noiseLevel := dsp.Std(dsp.Diff(beatSegment))
	if noiseLevel > 0.1*dsp.Std(beatSegment) {
		quality *= 0.8
	}

	expectedTEnd := int(expectedTEndSec * float64(qa.sampleRate))
	deviation := tEnd - expectedTEnd
	if deviation < 0 {
		deviation = -deviation
	}
	if deviation > int(tEndToleranceSec*float64(qa.sampleRate)) {
		quality *= 0.7
	}

	return utils.Clamp01(quality)
}
