package builder

import (
	"github.com/cardiokit/ecgcore/pkg/internal/dsp"
)

// ComputeIntervals derives a basic interval measurement set directly from the raw
// signals, for callers that have no upstream delineation stage.
func ComputeIntervals(signals SignalMap, sampleRate int) Intervals {
	return dsp.ComputeIntervals(signals, sampleRate)
}
