package types

// QTRiskLevel stratifies QT prolongation risk. The ordering is total:
// QTRiskNormal < QTRiskBorderline < QTRiskProlonged < QTRiskSeverelyProlonged.
type QTRiskLevel int

const (
	QTRiskNormal QTRiskLevel = iota
	QTRiskBorderline
	QTRiskProlonged
	QTRiskSeverelyProlonged
)

// String returns the lower-case label for the risk level.
func (r QTRiskLevel) String() string {
	switch r {
	case QTRiskBorderline:
		return "borderline"
	case QTRiskProlonged:
		return "prolonged"
	case QTRiskSeverelyProlonged:
		return "severely_prolonged"
	default:
		return "normal"
	}
}

// QTMeasurement captures one beat's QT interval together with every corrected variant.
type QTMeasurement struct {
	QTInterval         float64 // QT interval in ms.
	QTcBazett          float64 // QTc by Bazett formula in ms.
	QTcFridericia      float64 // QTc by Fridericia formula in ms.
	QTcFramingham      float64 // QTc by Framingham formula in ms.
	QTcHodges          float64 // QTc by Hodges formula in ms.
	RRInterval         float64 // Associated RR interval in ms.
	HeartRate          float64 // Heart rate in BPM.
	LeadName           string  // Lead where the measurement was taken.
	MeasurementQuality float64 // Confidence in the measurement, in [0,1].
}

// QTDispersion describes the spread of QT measurements across leads.
type QTDispersion struct {
	MaxQT            float64            // Maximum per-lead mean QT in ms.
	MinQT            float64            // Minimum per-lead mean QT in ms.
	Dispersion       float64            // MaxQT - MinQT in ms.
	DispersionQTc    float64            // Dispersion of the Bazett-corrected values in ms.
	LeadMeasurements map[string]float64 // Per-lead mean QT in ms.
}

// IsAbnormal reports whether the dispersion is abnormally high (>100 ms suggests increased risk).
func (d *QTDispersion) IsAbnormal() bool {
	return d.Dispersion > 100
}

// QTAnalysis is the complete QT interval analysis for one recording.
type QTAnalysis struct {
	Measurements         []QTMeasurement
	MeanQT               float64 // Mean QT interval in ms.
	MeanQTc              float64 // Mean QTc (Bazett) in ms.
	StdQT                float64 // QT interval standard deviation in ms.
	Dispersion           *QTDispersion
	RiskLevel            QTRiskLevel
	GenderSpecificNormal bool
	Interpretation       string
	ClinicalNotes        []string
	DrugInteractions     []string
}

// IsProlonged reports whether the QTc falls in a prolonged risk class.
func (a *QTAnalysis) IsProlonged() bool {
	return a.RiskLevel == QTRiskProlonged || a.RiskLevel == QTRiskSeverelyProlonged
}

// QTAnalyzer measures per-beat QT intervals and stratifies prolongation risk.
// Implementations are stateless across calls and safe for concurrent use on distinct inputs.
type QTAnalyzer interface {
	// Analyze measures QT intervals on every lead that carries at least two R-peaks.
	// gender is "M", "F" or empty for gender-neutral thresholds. Analyze returns a fixed
	// default report rather than failing when no beat can be measured.
	Analyze(signals SignalMap, rPeaks PeakMap, gender string) (*QTAnalysis, error)

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	GetSampleRate() int
}
