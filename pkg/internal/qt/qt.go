// Package qt implements per-beat QT interval measurement and prolongation risk
// stratification. Each beat's QT is taken from the R-peak to an automatically located
// T-wave end, corrected with the Bazett, Fridericia, Framingham and Hodges formulas,
// and aggregated into per-recording statistics, cross-lead dispersion and a clinical
// interpretation with gender-specific thresholds.
package qt

import (
	"context"
	"sync"

	"github.com/cardiokit/ecgcore/pkg/internal/types"
	"github.com/cardiokit/ecgcore/pkg/internal/utils"
)

// QTAnalyzer measures QT intervals on every usable lead. Configuration is fixed at
// construction, so one instance may serve concurrent Analyze calls on distinct inputs.
type QTAnalyzer struct {
	ctx               context.Context
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex
	sampleRate        int
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// NewQTAnalyzer creates an analyzer tuned for the given sampling rate.
//
// Parameters:
// ctx - The parent context; retained for the lifetime of the component.
// sampleRate - Sampling rate of the input signals in Hz. Validated at Analyze time.
// options - A variadic list of configuration options, such as attaching loggers or
// overriding component metadata.
//
// Returns:
// A fully initialized QTAnalyzer satisfying types.QTAnalyzer.
func NewQTAnalyzer(ctx context.Context, sampleRate int, options ...types.Option[types.QTAnalyzer]) types.QTAnalyzer {
	qa := &QTAnalyzer{
		ctx: ctx,
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "QT_ANALYZER",
		},
		sampleRate: sampleRate,
	}

	for _, option := range options {
		option(qa)
	}

	qa.NotifyLoggers(types.InfoLevel, "QTAnalyzer created",
		"component", qa.componentMetadata,
		"sample_rate", sampleRate,
	)

	return qa
}
