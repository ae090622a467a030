package builder

import (
	"context"

	"github.com/cardiokit/ecgcore/pkg/internal/qt"
	"github.com/cardiokit/ecgcore/pkg/internal/types"
)

// NewQTAnalyzer creates a QT interval analyzer tuned for the given sampling rate.
func NewQTAnalyzer(ctx context.Context, sampleRate int, options ...types.Option[types.QTAnalyzer]) types.QTAnalyzer {
	return qt.NewQTAnalyzer(ctx, sampleRate, options...)
}

// QTAnalyzerWithLogger adds a logger to the QTAnalyzer.
func QTAnalyzerWithLogger(logger ...types.Logger) types.Option[types.QTAnalyzer] {
	return qt.WithLogger(logger...)
}

// QTAnalyzerWithComponentMetadata adds component metadata overrides.
func QTAnalyzerWithComponentMetadata(name string, id string) types.Option[types.QTAnalyzer] {
	return qt.WithComponentMetadata(name, id)
}
