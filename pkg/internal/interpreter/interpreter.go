// Package interpreter implements the automated clinical interpretation stage. It folds
// the interval measurements, quality metrics and the optional arrhythmia and QT reports
// into a list of categorized clinical findings, per-aspect narrative descriptions, a
// comparison against normal reference values, and a synthesized conclusion with primary
// diagnosis, urgency, recommendations, follow-up and prognosis.
package interpreter

import (
	"context"
	"sync"

	"github.com/cardiokit/ecgcore/pkg/internal/types"
	"github.com/cardiokit/ecgcore/pkg/internal/utils"
)

// ClinicalInterpreter holds no per-call state beyond configuration and loggers, so one
// instance may serve concurrent Interpret calls on distinct inputs.
type ClinicalInterpreter struct {
	ctx                 context.Context
	componentMetadata   types.ComponentMetadata
	metadataLock        sync.Mutex
	confidenceThreshold float64
	loggers             []types.Logger
	loggersLock         sync.Mutex
}

// NewClinicalInterpreter creates an interpreter with the default confidence threshold.
//
// Parameters:
// ctx - The parent context; retained for the lifetime of the component.
// options - A variadic list of configuration options, such as attaching loggers or
// overriding component metadata.
//
// Returns:
// A fully initialized ClinicalInterpreter satisfying types.ClinicalInterpreter.
func NewClinicalInterpreter(ctx context.Context, options ...types.Option[types.ClinicalInterpreter]) types.ClinicalInterpreter {
	ci := &ClinicalInterpreter{
		ctx: ctx,
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "CLINICAL_INTERPRETER",
		},
		confidenceThreshold: 0.6,
	}

	for _, option := range options {
		option(ci)
	}

	ci.NotifyLoggers(types.InfoLevel, "ClinicalInterpreter created",
		"component", ci.componentMetadata,
	)

	return ci
}
