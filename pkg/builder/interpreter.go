package builder

import (
	"context"

	"github.com/cardiokit/ecgcore/pkg/internal/interpreter"
	"github.com/cardiokit/ecgcore/pkg/internal/types"
)

// NewClinicalInterpreter creates an automated clinical interpreter.
func NewClinicalInterpreter(ctx context.Context, options ...types.Option[types.ClinicalInterpreter]) types.ClinicalInterpreter {
	return interpreter.NewClinicalInterpreter(ctx, options...)
}

// ClinicalInterpreterWithLogger adds a logger to the ClinicalInterpreter.
func ClinicalInterpreterWithLogger(logger ...types.Logger) types.Option[types.ClinicalInterpreter] {
	return interpreter.WithLogger(logger...)
}

// ClinicalInterpreterWithComponentMetadata adds component metadata overrides.
func ClinicalInterpreterWithComponentMetadata(name string, id string) types.Option[types.ClinicalInterpreter] {
	return interpreter.WithComponentMetadata(name, id)
}
