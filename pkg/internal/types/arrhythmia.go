package types

// ArrhythmiaType identifies a class of cardiac rhythm disturbance. The set is closed;
// priority and burden logic iterate over AllArrhythmiaTypes rather than arbitrary strings.
type ArrhythmiaType string

const (
	ArrhythmiaNormal            ArrhythmiaType = "normal"
	ArrhythmiaAFib              ArrhythmiaType = "atrial_fibrillation"
	ArrhythmiaAFlutter          ArrhythmiaType = "atrial_flutter"
	ArrhythmiaVT                ArrhythmiaType = "ventricular_tachycardia"
	ArrhythmiaVFib              ArrhythmiaType = "ventricular_fibrillation"
	ArrhythmiaPVC               ArrhythmiaType = "premature_ventricular_contraction"
	ArrhythmiaPAC               ArrhythmiaType = "premature_atrial_contraction"
	ArrhythmiaBradycardia       ArrhythmiaType = "bradycardia"
	ArrhythmiaTachycardia       ArrhythmiaType = "tachycardia"
	ArrhythmiaFirstDegreeBlock  ArrhythmiaType = "first_degree_av_block"
	ArrhythmiaSecondDegreeBlock ArrhythmiaType = "second_degree_av_block"
	ArrhythmiaThirdDegreeBlock  ArrhythmiaType = "third_degree_av_block"
	ArrhythmiaSinusArrhythmia   ArrhythmiaType = "sinus_arrhythmia"
)

// AllArrhythmiaTypes enumerates every arrhythmia type in a fixed order, used wherever
// deterministic iteration over the closed set is required (e.g. burden calculation).
var AllArrhythmiaTypes = []ArrhythmiaType{
	ArrhythmiaNormal,
	ArrhythmiaAFib,
	ArrhythmiaAFlutter,
	ArrhythmiaVT,
	ArrhythmiaVFib,
	ArrhythmiaPVC,
	ArrhythmiaPAC,
	ArrhythmiaBradycardia,
	ArrhythmiaTachycardia,
	ArrhythmiaFirstDegreeBlock,
	ArrhythmiaSecondDegreeBlock,
	ArrhythmiaThirdDegreeBlock,
	ArrhythmiaSinusArrhythmia,
}

// DetectionSeverity grades a single arrhythmia detection. The ordering is total:
// Mild < Moderate < Severe.
type DetectionSeverity int

const (
	DetectionMild DetectionSeverity = iota
	DetectionModerate
	DetectionSevere
)

// String returns the lower-case label for the detection severity.
func (s DetectionSeverity) String() string {
	switch s {
	case DetectionModerate:
		return "moderate"
	case DetectionSevere:
		return "severe"
	default:
		return "mild"
	}
}

// ArrhythmiaDetection is a single detected rhythm event. It is immutable once created
// and lives for the duration of one Detect call.
type ArrhythmiaDetection struct {
	Type                 ArrhythmiaType
	Confidence           float64 // Confidence in [0,1].
	OnsetSample          *int    // Sample index of onset, when known.
	DurationSamples      *int    // Duration of the event in samples, when known.
	Severity             DetectionSeverity
	Description          string
	ClinicalSignificance string
}

// ArrhythmiaReport aggregates the outcome of a full arrhythmia analysis pass.
// Detections preserve the order of assessment, not severity order.
type ArrhythmiaReport struct {
	Detections       []ArrhythmiaDetection
	PrimaryRhythm    ArrhythmiaType
	HeartRateMean    float64
	HeartRateStd     float64
	RRIrregularity   float64 // Coefficient of variation of the RR intervals.
	EctopicBeats     int
	BurdenPercent    map[ArrhythmiaType]float64
	CriticalFindings []string
	Recommendations  []string
}

// ArrhythmiaDetector analyzes calibrated lead signals for rhythm disturbances.
// Implementations are stateless across calls and safe for concurrent use on distinct inputs.
type ArrhythmiaDetector interface {
	// Detect runs every detection pass over the preferred analysis lead and returns the
	// assembled report. rPeaks may be nil; peaks for the analysis lead are then computed
	// internally. Detect fails only on invalid configuration, never on short inputs.
	Detect(signals SignalMap, rPeaks PeakMap) (*ArrhythmiaReport, error)

	// ConnectLogger attaches one or more loggers for telemetry of detection passes.
	ConnectLogger(...Logger)

	// NotifyLoggers sends a structured log message to all attached loggers at the given level.
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	// GetComponentMetadata retrieves the metadata associated with the detector.
	GetComponentMetadata() ComponentMetadata

	// SetComponentMetadata sets the human-facing name and identifier of the detector.
	SetComponentMetadata(name string, id string)

	// GetSampleRate returns the configured sampling rate in Hz.
	GetSampleRate() int
}
