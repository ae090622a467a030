// Package builder is the public facade of the library. It re-exports the internal
// component constructors, functional options and data types so that applications
// depend on a single import path while the implementations stay internal.
package builder

import (
	"github.com/cardiokit/ecgcore/pkg/internal/types"
)

// ComponentMetadata is exported from the internal types package.
type ComponentMetadata = types.ComponentMetadata

// Option configures a component at construction time.
type Option[T any] = types.Option[T]

// SignalMap maps lead names to calibrated voltage samples.
type SignalMap = types.SignalMap

// PeakMap maps lead names to R-peak sample indices.
type PeakMap = types.PeakMap

// Shared clinical data types.
type (
	Intervals      = types.Intervals
	QualityMetrics = types.QualityMetrics
	PatientInfo    = types.PatientInfo
)

// Arrhythmia detection types.
type (
	ArrhythmiaType      = types.ArrhythmiaType
	DetectionSeverity   = types.DetectionSeverity
	ArrhythmiaDetection = types.ArrhythmiaDetection
	ArrhythmiaReport    = types.ArrhythmiaReport
	ArrhythmiaDetector  = types.ArrhythmiaDetector
)

// Arrhythmia type constants.
const (
	ArrhythmiaNormal            = types.ArrhythmiaNormal
	ArrhythmiaAFib              = types.ArrhythmiaAFib
	ArrhythmiaAFlutter          = types.ArrhythmiaAFlutter
	ArrhythmiaVT                = types.ArrhythmiaVT
	ArrhythmiaVFib              = types.ArrhythmiaVFib
	ArrhythmiaPVC               = types.ArrhythmiaPVC
	ArrhythmiaPAC               = types.ArrhythmiaPAC
	ArrhythmiaBradycardia       = types.ArrhythmiaBradycardia
	ArrhythmiaTachycardia       = types.ArrhythmiaTachycardia
	ArrhythmiaFirstDegreeBlock  = types.ArrhythmiaFirstDegreeBlock
	ArrhythmiaSecondDegreeBlock = types.ArrhythmiaSecondDegreeBlock
	ArrhythmiaThirdDegreeBlock  = types.ArrhythmiaThirdDegreeBlock
	ArrhythmiaSinusArrhythmia   = types.ArrhythmiaSinusArrhythmia
)

// Detection severity constants.
const (
	DetectionMild     = types.DetectionMild
	DetectionModerate = types.DetectionModerate
	DetectionSevere   = types.DetectionSevere
)

// QT analysis types.
type (
	QTRiskLevel   = types.QTRiskLevel
	QTMeasurement = types.QTMeasurement
	QTDispersion  = types.QTDispersion
	QTAnalysis    = types.QTAnalysis
	QTAnalyzer    = types.QTAnalyzer
)

// QT risk level constants.
const (
	QTRiskNormal            = types.QTRiskNormal
	QTRiskBorderline        = types.QTRiskBorderline
	QTRiskProlonged         = types.QTRiskProlonged
	QTRiskSeverelyProlonged = types.QTRiskSeverelyProlonged
)

// Clinical interpretation types.
type (
	Severity            = types.Severity
	FindingCategory     = types.FindingCategory
	ClinicalFinding     = types.ClinicalFinding
	ClinicalConclusion  = types.ClinicalConclusion
	AutomatedFindings   = types.AutomatedFindings
	ClinicalInterpreter = types.ClinicalInterpreter
)

// Finding severity constants.
const (
	SeverityNormal   = types.SeverityNormal
	SeverityBenign   = types.SeverityBenign
	SeverityMild     = types.SeverityMild
	SeverityModerate = types.SeverityModerate
	SeveritySevere   = types.SeveritySevere
	SeverityCritical = types.SeverityCritical
)

// Finding category constants.
const (
	CategoryRhythm      = types.CategoryRhythm
	CategoryConduction  = types.CategoryConduction
	CategoryMorphology  = types.CategoryMorphology
	CategoryIschemia    = types.CategoryIschemia
	CategoryHypertrophy = types.CategoryHypertrophy
	CategoryElectrolyte = types.CategoryElectrolyte
	CategoryDrugEffect  = types.CategoryDrugEffect
	CategoryArtifact    = types.CategoryArtifact
)
