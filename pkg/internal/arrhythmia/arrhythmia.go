// Package arrhythmia implements the rhythm-disturbance detector of the analysis chain.
// It consumes calibrated per-lead voltage samples, derives or accepts R-peak locations,
// and runs a cascade of independent detection passes (rate abnormalities, atrial
// fibrillation and flutter, ventricular arrhythmias, ectopic beats, heart blocks), each
// appending zero or more detections to one ordered list from which the primary rhythm,
// burden, critical findings and recommendations are derived.
package arrhythmia

import (
	"context"
	"sync"

	"github.com/cardiokit/ecgcore/pkg/internal/types"
	"github.com/cardiokit/ecgcore/pkg/internal/utils"
)

// ArrhythmiaDetector analyzes one preferred lead per call. All mutable state is
// construction-time configuration plus connected loggers, so a single instance is safe
// for concurrent Detect calls on distinct inputs.
type ArrhythmiaDetector struct {
	ctx               context.Context
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex
	sampleRate        int // Sampling rate in Hz; every time-domain threshold derives from it.
	minRRInterval     int // Physiologic lower RR bound in samples (300 ms).
	maxRRInterval     int // Physiologic upper RR bound in samples (2 s).
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// NewArrhythmiaDetector creates a detector tuned for the given sampling rate.
//
// Parameters:
// ctx - The parent context; retained for the lifetime of the component.
// sampleRate - Sampling rate of the input signals in Hz. Validated at Detect time.
// options - A variadic list of configuration options, such as attaching loggers or
// overriding component metadata.
//
// Returns:
// A fully initialized ArrhythmiaDetector satisfying types.ArrhythmiaDetector.
func NewArrhythmiaDetector(ctx context.Context, sampleRate int, options ...types.Option[types.ArrhythmiaDetector]) types.ArrhythmiaDetector {
	ad := &ArrhythmiaDetector{
		ctx: ctx,
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "ARRHYTHMIA_DETECTOR",
		},
		sampleRate:    sampleRate,
		minRRInterval: int(0.3 * float64(sampleRate)), // 300ms
		maxRRInterval: int(2.0 * float64(sampleRate)), // 2000ms
	}

	for _, option := range options {
		option(ad)
	}

	ad.NotifyLoggers(types.InfoLevel, "ArrhythmiaDetector created",
		"component", ad.componentMetadata,
		"sample_rate", sampleRate,
	)

	return ad
}
