// Package interpreter provides options for configuring ClinicalInterpreter components.
//
// This file defines the options used to customize interpreter behavior at construction
// time, such as attaching loggers or overriding component metadata.
package interpreter

import "github.com/cardiokit/ecgcore/pkg/internal/types"

// WithLogger creates an option to add a logger to a ClinicalInterpreter.
//
// Parameters:
//   - logger: One or more logger instances to be added to the interpreter for logging.
//
// Returns:
//
//	A function conforming to types.Option[types.ClinicalInterpreter] that, when called
//	with an interpreter component, connects the specified logger(s) to it.
func WithLogger(logger ...types.Logger) types.Option[types.ClinicalInterpreter] {
	return func(ci types.ClinicalInterpreter) {
		ci.ConnectLogger(logger...)
	}
}

// WithComponentMetadata creates an option to override the interpreter name and id.
//
// Parameters:
//   - name: The human-facing component name.
//   - id: The component identifier.
//
// Returns:
//
//	A function conforming to types.Option[types.ClinicalInterpreter] that, when called
//	with an interpreter component, applies the metadata.
func WithComponentMetadata(name string, id string) types.Option[types.ClinicalInterpreter] {
	return func(ci types.ClinicalInterpreter) {
		ci.SetComponentMetadata(name, id)
	}
}
