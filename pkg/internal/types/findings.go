package types

// Severity ranks clinical findings. The ordering is total:
// SeverityNormal < SeverityBenign < SeverityMild < SeverityModerate < SeveritySevere < SeverityCritical.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityBenign
	SeverityMild
	SeverityModerate
	SeveritySevere
	SeverityCritical
)

// String returns the lower-case label for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityBenign:
		return "benign"
	case SeverityMild:
		return "mild"
	case SeverityModerate:
		return "moderate"
	case SeveritySevere:
		return "severe"
	case SeverityCritical:
		return "critical"
	default:
		return "normal"
	}
}

// FindingCategory groups clinical findings by the aspect of the ECG they describe.
type FindingCategory string

const (
	CategoryRhythm      FindingCategory = "rhythm"
	CategoryConduction  FindingCategory = "conduction"
	CategoryMorphology  FindingCategory = "morphology"
	CategoryIschemia    FindingCategory = "ischemia"
	CategoryHypertrophy FindingCategory = "hypertrophy"
	CategoryElectrolyte FindingCategory = "electrolyte"
	CategoryDrugEffect  FindingCategory = "drug_effect"
	CategoryArtifact    FindingCategory = "artifact"
)

// ClinicalFinding is a single interpreted abnormality (or normal observation).
type ClinicalFinding struct {
	Category              FindingCategory
	Name                  string
	Description           string
	Severity              Severity
	Confidence            float64 // Confidence in [0,1].
	Evidence              []string
	ClinicalSignificance  string
	DifferentialDiagnoses []string
}

// IsCritical reports whether the finding carries critical severity.
func (f *ClinicalFinding) IsCritical() bool {
	return f.Severity == SeverityCritical
}

// ClinicalConclusion is the synthesized overall assessment, derived deterministically
// from the ordered finding list.
type ClinicalConclusion struct {
	PrimaryDiagnosis     string
	AdditionalFindings   []string // Up to 5 other finding names.
	Severity             Severity
	UrgentActionRequired bool
	Recommendations      []string
	FollowUp             string
	Prognosis            string
}

// AutomatedFindings is the complete automated interpretation report.
type AutomatedFindings struct {
	Findings             []ClinicalFinding
	Conclusion           ClinicalConclusion
	Axis                 string // Axis description; empty when leads I/aVF are unavailable.
	RhythmDescription    string
	RateDescription      string
	IntervalDescription  string
	MorphologyNotes      []string
	ComparisonWithNormal map[string]string
}

// CriticalFindings returns all findings with critical severity, in assessment order.
func (af *AutomatedFindings) CriticalFindings() []ClinicalFinding {
	var out []ClinicalFinding
	for _, f := range af.Findings {
		if f.IsCritical() {
			out = append(out, f)
		}
	}
	return out
}

// AbnormalFindings returns all findings above benign severity, in assessment order.
func (af *AutomatedFindings) AbnormalFindings() []ClinicalFinding {
	var out []ClinicalFinding
	for _, f := range af.Findings {
		if f.Severity != SeverityNormal && f.Severity != SeverityBenign {
			out = append(out, f)
		}
	}
	return out
}

// ClinicalInterpreter fuses signals, interval measurements, quality metrics and the
// optional leaf-analyzer reports into a unified findings report. It is the fan-in point
// of the analysis chain; the leaf reports are treated as opaque inputs.
type ClinicalInterpreter interface {
	// Interpret runs every assessment pass and synthesizes the conclusion. arrhythmia and
	// qtAnalysis may be nil; the corresponding passes then fall back to interval-derived
	// heuristics or are skipped. Interpret fails only on a non-positive sample rate.
	Interpret(
		signals SignalMap,
		sampleRate int,
		intervals Intervals,
		quality QualityMetrics,
		arrhythmia *ArrhythmiaReport,
		qtAnalysis *QTAnalysis,
		patient PatientInfo,
	) (*AutomatedFindings, error)

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
