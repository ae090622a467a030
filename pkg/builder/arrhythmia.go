package builder

import (
	"context"

	"github.com/cardiokit/ecgcore/pkg/internal/arrhythmia"
	"github.com/cardiokit/ecgcore/pkg/internal/types"
)

// NewArrhythmiaDetector creates a rhythm-disturbance detector tuned for the given
// sampling rate.
func NewArrhythmiaDetector(ctx context.Context, sampleRate int, options ...types.Option[types.ArrhythmiaDetector]) types.ArrhythmiaDetector {
	return arrhythmia.NewArrhythmiaDetector(ctx, sampleRate, options...)
}

// ArrhythmiaDetectorWithLogger adds a logger to the ArrhythmiaDetector.
func ArrhythmiaDetectorWithLogger(logger ...types.Logger) types.Option[types.ArrhythmiaDetector] {
	return arrhythmia.WithLogger(logger...)
}

// ArrhythmiaDetectorWithComponentMetadata adds component metadata overrides.
func ArrhythmiaDetectorWithComponentMetadata(name string, id string) types.Option[types.ArrhythmiaDetector] {
	return arrhythmia.WithComponentMetadata(name, id)
}
