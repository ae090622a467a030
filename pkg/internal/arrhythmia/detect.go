package arrhythmia

import (
	"fmt"
	"sort"

	"github.com/cardiokit/ecgcore/pkg/internal/dsp"
	"github.com/cardiokit/ecgcore/pkg/internal/types"
)

// Detector tuning constants. The P-wave regularity placeholder and the fixed flutter
// band mirror the reference analysis pipeline; they are heuristics, not calibrated
// clinical detectors.
const (
	qrsBandLowHz           = 5.0  // Lower edge of the QRS energy band.
	qrsBandHighHz          = 15.0 // Upper edge of the QRS energy band.
	integrationWindowSec   = 0.12 // Moving-average integration window (120 ms).
	peakThresholdFraction  = 0.5  // Peaks must exceed this fraction of the mean integrated signal.
	bradycardiaBPM         = 60.0
	tachycardiaBPM         = 100.0
	afibMinRRIntervals     = 10
	afibCVThreshold        = 0.3
	pWaveRegularityScore   = 0.5 // Placeholder score; full P-wave detection is out of scope.
	pWaveAbsenceThreshold  = 0.3
	flutterBandLowHz       = 4.0
	flutterBandHighHz      = 6.0
	flutterPowerRatio      = 0.2
	flutterConfidence      = 0.75
	vtRegularityCV         = 0.2
	wideQRSSec             = 0.12 // 120 ms
	qrsSearchWindowSec     = 0.1  // 100 ms either side of the peak.
	qrsWidthThresholdFrac  = 0.3  // Fraction of local peak amplitude bounding the complex.
	defaultQRSWidthSec     = 0.08 // Fallback width when no sample clears the threshold.
	vfibChaosCV            = 0.8
	entropyBins            = 50
	vfibEntropyThreshold   = 0.8
	prematurityFraction    = 0.8 // RR below this fraction of the mean marks a premature beat.
	compensatoryFraction   = 1.2 // Following RR above this fraction marks a compensatory pause.
	noCompensationFraction = 1.1
	blockMinRRIntervals    = 10
	blockRRRatio           = 1.8
	blockDroppedBeats      = 2
	primaryConfidenceFloor = 0.7
	frequentPVCCount       = 10
)

// Detect runs every detection pass over the preferred analysis lead and assembles the
// rhythm report. rPeaks may be nil or lack the analysis lead; peaks are then computed
// internally with the filter-square-integrate-threshold approach. Too-short inputs
// degrade to a reduced but fully populated report; only invalid configuration errors.
func (ad *ArrhythmiaDetector) Detect(signals types.SignalMap, rPeaks types.PeakMap) (*types.ArrhythmiaReport, error) {
	if ad.sampleRate <= 0 {
		return nil, fmt.Errorf("arrhythmia detector requires a positive sample rate, got %d", ad.sampleRate)
	}

	leadName, signal := selectPrimaryLead(signals)
	if signal == nil {
		ad.NotifyLoggers(types.WarnLevel, "Detect: no signals provided, returning empty report",
			"component", ad.snapshotMetadata(),
		)
		return &types.ArrhythmiaReport{
			PrimaryRhythm: types.ArrhythmiaNormal,
			BurdenPercent: map[types.ArrhythmiaType]float64{},
		}, nil
	}

	var peaks []int
	if provided, ok := rPeaks[leadName]; ok {
		peaks = provided
	} else {
		peaks = ad.detectRPeaks(signal)
	}

	rrIntervals := dsp.DiffInts(peaks)

	var detections []types.ArrhythmiaDetection
	detections = append(detections, ad.detectRateAbnormalities(rrIntervals)...)
	detections = append(detections, ad.detectAFib(rrIntervals, signal, peaks)...)
	detections = append(detections, ad.detectAFlutter(signal)...)
	detections = append(detections, ad.detectVentricularArrhythmias(signal, peaks, rrIntervals)...)
	detections = append(detections, ad.detectEctopicBeats(signal, peaks, rrIntervals)...)
	detections = append(detections, ad.detectHeartBlocks(rrIntervals)...)

	primaryRhythm := determinePrimaryRhythm(detections)
	heartRateMean, heartRateStd := ad.heartRateStats(rrIntervals)

	rrIrregularity := 0.0
	if len(rrIntervals) > 0 {
		rrIrregularity = dsp.Variation(rrIntervals)
	}

	ectopicBeats := 0
	for _, d := range detections {
		if d.Type == types.ArrhythmiaPVC || d.Type == types.ArrhythmiaPAC {
			ectopicBeats++
		}
	}

	report := &types.ArrhythmiaReport{
		Detections:       detections,
		PrimaryRhythm:    primaryRhythm,
		HeartRateMean:    heartRateMean,
		HeartRateStd:     heartRateStd,
		RRIrregularity:   rrIrregularity,
		EctopicBeats:     ectopicBeats,
		BurdenPercent:    calculateBurden(detections, len(signal)),
		CriticalFindings: identifyCriticalFindings(detections),
		Recommendations:  generateRecommendations(detections, primaryRhythm),
	}

	ad.NotifyLoggers(types.InfoLevel, "Detect: analysis complete",
		"component", ad.snapshotMetadata(),
		"lead", leadName,
		"peaks", len(peaks),
		"detections", len(detections),
		"primary_rhythm", string(primaryRhythm),
	)

	return report, nil
}

// selectPrimaryLead picks the analysis lead with the fixed preference II, then I, then
// the first remaining lead by name. Returns a nil signal when the map is empty.
func selectPrimaryLead(signals types.SignalMap) (string, []float64) {
	if s, ok := signals["II"]; ok {
		return "II", s
	}
	if s, ok := signals["I"]; ok {
		return "I", s
	}
	names := make([]string, 0, len(signals))
	for name := range signals {
		names = append(names, name)
	}
	if len(names) == 0 {
		return "", nil
	}
	sort.Strings(names)
	return names[0], signals[names[0]]
}

// detectRPeaks locates R-peaks: band-pass 5-15 Hz, square, integrate over 120 ms, then
// local maxima above half the mean integrated amplitude with a 300 ms minimum spacing.
func (ad *ArrhythmiaDetector) detectRPeaks(signal []float64) []int {
	filtered := dsp.BandPass(signal, ad.sampleRate, qrsBandLowHz, qrsBandHighHz)

	squared := make([]float64, len(filtered))
	for i, v := range filtered {
		squared[i] = v * v
	}

	window := int(integrationWindowSec * float64(ad.sampleRate))
	integrated := dsp.MovingAverage(squared, window)

	threshold := peakThresholdFraction * dsp.Mean(integrated)
	peaks := dsp.FindPeaks(integrated, threshold, ad.minRRInterval)

	ad.NotifyLoggers(types.DebugLevel, "detectRPeaks: internal peak detection",
		"component", ad.snapshotMetadata(),
		"peaks", len(peaks),
	)
	return peaks
}

// detectRateAbnormalities emits bradycardia below 60 BPM and tachycardia above 100 BPM,
// with severity escalating at 50/40 and 120/150 BPM respectively.
func (ad *ArrhythmiaDetector) detectRateAbnormalities(rrIntervals []float64) []types.ArrhythmiaDetection {
	var detections []types.ArrhythmiaDetection
	if len(rrIntervals) == 0 {
		return detections
	}

	meanRR := dsp.Mean(rrIntervals)
	heartRate := 60 * float64(ad.sampleRate) / meanRR

	if heartRate < bradycardiaBPM {
		severity := types.DetectionMild
		if heartRate < 40 {
			severity = types.DetectionSevere
		} else if heartRate < 50 {
			severity = types.DetectionModerate
		}
		detections = append(detections, types.ArrhythmiaDetection{
			Type:                 types.ArrhythmiaBradycardia,
			Confidence:           0.95,
			Severity:             severity,
			Description:          fmt.Sprintf("Heart rate %.0f BPM (normal: 60-100)", heartRate),
			ClinicalSignificance: "May indicate sinus node dysfunction or AV block",
		})
	} else if heartRate > tachycardiaBPM {
		severity := types.DetectionMild
		if heartRate > 150 {
			severity = types.DetectionSevere
		} else if heartRate > 120 {
			severity = types.DetectionModerate
		}
		detections = append(detections, types.ArrhythmiaDetection{
			Type:                 types.ArrhythmiaTachycardia,
			Confidence:           0.95,
			Severity:             severity,
			Description:          fmt.Sprintf("Heart rate %.0f BPM (normal: 60-100)", heartRate),
			ClinicalSignificance: "May indicate sinus tachycardia, SVT, or VT",
		})
	}

	return detections
}

// detectAFib flags atrial fibrillation on high RR irregularity combined with a low
// P-wave regularity score. The score is a fixed placeholder pending true P-wave
// detection, which keeps the pass deterministic.
func (ad *ArrhythmiaDetector) detectAFib(rrIntervals, signal []float64, peaks []int) []types.ArrhythmiaDetection {
	var detections []types.ArrhythmiaDetection
	if len(rrIntervals) < afibMinRRIntervals {
		return detections
	}

	cv := dsp.Variation(rrIntervals)
	if cv > afibCVThreshold {
		pWaveScore := assessPWaveRegularity(signal, peaks)
		if pWaveScore < pWaveAbsenceThreshold {
			confidence := cv
			if confidence > 0.95 {
				confidence = 0.95
			}
			detections = append(detections, types.ArrhythmiaDetection{
				Type:                 types.ArrhythmiaAFib,
				Confidence:           confidence,
				Severity:             types.DetectionModerate,
				Description:          fmt.Sprintf("Irregularly irregular rhythm (CV: %.2f), absent P-waves", cv),
				ClinicalSignificance: "Risk of stroke, requires anticoagulation consideration",
			})
		}
	}

	return detections
}

// detectAFlutter checks the Welch power spectrum for dominant 4-6 Hz flutter activity
// (characteristic ~300 BPM flutter waves).
func (ad *ArrhythmiaDetector) detectAFlutter(signal []float64) []types.ArrhythmiaDetection {
	var detections []types.ArrhythmiaDetection

	ratio := dsp.BandPowerRatio(signal, ad.sampleRate, flutterBandLowHz, flutterBandHighHz)
	if ratio > flutterPowerRatio {
		detections = append(detections, types.ArrhythmiaDetection{
			Type:                 types.ArrhythmiaAFlutter,
			Confidence:           flutterConfidence,
			Severity:             types.DetectionModerate,
			Description:          "Regular flutter waves detected at ~300 BPM",
			ClinicalSignificance: "Requires rate control and anticoagulation",
		})
	}

	return detections
}

// detectVentricularArrhythmias emits VT on a fast, regular, wide-complex rhythm and
// VFib on chaotic activity (few peaks or extreme RR variation plus high signal entropy).
func (ad *ArrhythmiaDetector) detectVentricularArrhythmias(signal []float64, peaks []int, rrIntervals []float64) []types.ArrhythmiaDetection {
	var detections []types.ArrhythmiaDetection
	if len(rrIntervals) < 3 {
		return detections
	}

	meanRR := dsp.Mean(rrIntervals)
	vtRate := 60 * float64(ad.sampleRate) / meanRR

	if vtRate > tachycardiaBPM && dsp.Variation(rrIntervals) < vtRegularityCV {
		meanWidth := dsp.Mean(ad.estimateQRSWidths(signal, peaks))
		if meanWidth > wideQRSSec*float64(ad.sampleRate) {
			severity := types.DetectionModerate
			if vtRate > 150 {
				severity = types.DetectionSevere
			}
			detections = append(detections, types.ArrhythmiaDetection{
				Type:                 types.ArrhythmiaVT,
				Confidence:           0.85,
				Severity:             severity,
				Description:          fmt.Sprintf("Wide complex tachycardia at %.0f BPM", vtRate),
				ClinicalSignificance: "Life-threatening, requires immediate intervention",
			})
		}
	}

	if len(peaks) < 3 || dsp.Variation(rrIntervals) > vfibChaosCV {
		entropy := dsp.HistogramEntropy(signal, entropyBins)
		if entropy > vfibEntropyThreshold {
			detections = append(detections, types.ArrhythmiaDetection{
				Type:                 types.ArrhythmiaVFib,
				Confidence:           0.90,
				Severity:             types.DetectionSevere,
				Description:          "Chaotic ventricular activity, no organized rhythm",
				ClinicalSignificance: "FATAL - requires immediate defibrillation",
			})
		}
	}

	return detections
}

// detectEctopicBeats scans interior RR triplets for premature beats: PVCs carry a
// compensatory pause and a wide following complex, PACs resume on schedule.
func (ad *ArrhythmiaDetector) detectEctopicBeats(signal []float64, peaks []int, rrIntervals []float64) []types.ArrhythmiaDetection {
	var detections []types.ArrhythmiaDetection
	if len(rrIntervals) < 3 {
		return detections
	}

	meanRR := dsp.Mean(rrIntervals)
	for i := 1; i < len(rrIntervals)-1; i++ {
		rrCurrent := rrIntervals[i]
		rrNext := rrIntervals[i+1]

		if rrCurrent < prematurityFraction*meanRR && rrNext > compensatoryFraction*meanRR {
			peakIdx := peaks[i+1]
			qrsWidth := ad.estimateSingleQRSWidth(signal, peakIdx)
			if qrsWidth > wideQRSSec*float64(ad.sampleRate) {
				onset := peakIdx
				duration := int(qrsWidth)
				detections = append(detections, types.ArrhythmiaDetection{
					Type:                 types.ArrhythmiaPVC,
					Confidence:           0.80,
					OnsetSample:          &onset,
					DurationSamples:      &duration,
					Severity:             types.DetectionMild,
					Description:          fmt.Sprintf("Premature ventricular beat at sample %d", peakIdx),
					ClinicalSignificance: "Usually benign if infrequent",
				})
			}
		} else if rrCurrent < prematurityFraction*meanRR && rrNext < noCompensationFraction*meanRR {
			onset := peaks[i+1]
			detections = append(detections, types.ArrhythmiaDetection{
				Type:                 types.ArrhythmiaPAC,
				Confidence:           0.75,
				OnsetSample:          &onset,
				Severity:             types.DetectionMild,
				Description:          fmt.Sprintf("Premature atrial beat at sample %d", onset),
				ClinicalSignificance: "Usually benign",
			})
		}
	}

	return detections
}

// detectHeartBlocks looks for repeated doubled RR intervals, the footprint of dropped
// beats in second-degree (Mobitz II) block. PR-based first and third degree detection
// needs P-wave localization and is handled downstream from interval measurements.
func (ad *ArrhythmiaDetector) detectHeartBlocks(rrIntervals []float64) []types.ArrhythmiaDetection {
	var detections []types.ArrhythmiaDetection
	if len(rrIntervals) <= blockMinRRIntervals {
		return detections
	}

	doubled := 0
	for i := 0; i < len(rrIntervals)-1; i++ {
		if rrIntervals[i] > 0 && rrIntervals[i+1]/rrIntervals[i] > blockRRRatio {
			doubled++
		}
	}

	if doubled > blockDroppedBeats {
		detections = append(detections, types.ArrhythmiaDetection{
			Type:                 types.ArrhythmiaSecondDegreeBlock,
			Confidence:           0.60,
			Severity:             types.DetectionModerate,
			Description:          fmt.Sprintf("Suspected second-degree AV block (%d dropped beats)", doubled),
			ClinicalSignificance: "May progress to complete heart block",
		})
	}

	return detections
}

// assessPWaveRegularity returns a fixed mid-range score. True P-wave delineation is
// out of scope for this stage; the constant keeps the AFib gate deterministic.
func assessPWaveRegularity(signal []float64, rPeaks []int) float64 {
	return pWaveRegularityScore
}

func (ad *ArrhythmiaDetector) estimateQRSWidths(signal []float64, peaks []int) []float64 {
	widths := make([]float64, 0, len(peaks))
	for _, peak := range peaks {
		widths = append(widths, ad.estimateSingleQRSWidth(signal, peak))
	}
	return widths
}

// estimateSingleQRSWidth bounds one QRS complex inside a 100 ms search window around
// the peak, thresholded at 30% of the local maximum absolute amplitude.
func (ad *ArrhythmiaDetector) estimateSingleQRSWidth(signal []float64, peakIdx int) float64 {
	searchWindow := int(qrsSearchWindowSec * float64(ad.sampleRate))

	startIdx := peakIdx - searchWindow
	if startIdx < 0 {
		startIdx = 0
	}
	endIdx := peakIdx + searchWindow
	if endIdx > len(signal) {
		endIdx = len(signal)
	}
	if startIdx >= endIdx {
		return defaultQRSWidthSec * float64(ad.sampleRate)
	}

	segment := signal[startIdx:endIdx]
	maxAbs := 0.0
	for _, v := range segment {
		if a := abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	threshold := qrsWidthThresholdFrac * maxAbs

	first, last := -1, -1
	for i, v := range segment {
		if abs(v) > threshold {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first >= 0 {
		return float64(last - first)
	}

	return defaultQRSWidthSec * float64(ad.sampleRate)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
