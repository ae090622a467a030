package types

// Intervals holds previously measured clinical intervals. Optional scalars are nil when
// the upstream measurement stage could not determine them.
type Intervals struct {
	HeartRate     *float64  // Heart rate in BPM.
	PRInterval    *float64  // PR interval in ms.
	QRSDuration   *float64  // QRS duration in ms.
	QTInterval    *float64  // QT interval in ms.
	QTcInterval   *float64  // Corrected QT interval in ms.
	RRIntervals   []float64 // RR intervals in ms.
	PWaveDuration *float64
	TWaveDuration *float64
}

// IsNormal reports whether every available interval falls in its normal range
// (PR 120-200 ms, QRS <=120 ms, QTc <=450 ms). False when nothing is available.
func (iv *Intervals) IsNormal() bool {
	checked := false
	if iv.PRInterval != nil {
		if *iv.PRInterval < 120 || *iv.PRInterval > 200 {
			return false
		}
		checked = true
	}
	if iv.QRSDuration != nil {
		if *iv.QRSDuration > 120 {
			return false
		}
		checked = true
	}
	if iv.QTcInterval != nil {
		if *iv.QTcInterval > 450 {
			return false
		}
		checked = true
	}
	return checked
}

// QualityMetrics summarizes signal quality as delivered by the upstream digitization stages.
type QualityMetrics struct {
	SNR           float64 // Signal-to-noise ratio in dB.
	BaselineDrift float64 // Baseline drift magnitude.
	ClippingRatio float64 // Fraction of clipped samples.
	Coverage      float64 // Fraction of valid signal coverage.
	Confidence    float64 // Overall confidence score.
	LeadQuality   map[string]float64
}

// OverallScore computes a weighted quality score in [0,1].
func (q *QualityMetrics) OverallScore() float64 {
	score := 0.0
	snr := q.SNR / 30.0
	if snr > 1 {
		snr = 1
	}
	score += snr * 0.3
	drift := q.BaselineDrift
	if drift > 1 {
		drift = 1
	}
	score += (1.0 - drift) * 0.2
	score += (1.0 - q.ClippingRatio) * 0.2
	score += q.Coverage * 0.2
	score += q.Confidence * 0.1
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// IsAcceptable reports whether the quality meets the minimum interpretation standards.
func (q *QualityMetrics) IsAcceptable() bool {
	return q.SNR >= 10.0 &&
		q.BaselineDrift <= 0.3 &&
		q.ClippingRatio <= 0.05 &&
		q.Coverage >= 0.8
}

// PatientInfo carries the optional demographic context used for age-adjusted heart-rate
// ranges and gender-specific QTc thresholds. A nil Age or empty Gender means unknown.
type PatientInfo struct {
	Age    *int
	Gender string // "M", "F" or empty.
}
