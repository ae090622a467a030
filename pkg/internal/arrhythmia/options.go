// Package arrhythmia provides options for configuring ArrhythmiaDetector components.
//
// This file defines the options used to customize detector behavior at construction
// time, such as attaching loggers or overriding component metadata.
package arrhythmia

import "github.com/cardiokit/ecgcore/pkg/internal/types"

// WithLogger creates an option to add a logger to an ArrhythmiaDetector.
//
// Parameters:
//   - logger: One or more logger instances to be added to the detector for logging.
//
// Returns:
//
//	A function conforming to types.Option[types.ArrhythmiaDetector] that, when called
//	with a detector component, connects the specified logger(s) to it.
func WithLogger(logger ...types.Logger) types.Option[types.ArrhythmiaDetector] {
	return func(ad types.ArrhythmiaDetector) {
		ad.ConnectLogger(logger...)
	}
}

// WithComponentMetadata creates an option to override the detector name and id.
//
// Parameters:
//   - name: The human-facing component name.
//   - id: The component identifier.
//
// Returns:
//
//	A function conforming to types.Option[types.ArrhythmiaDetector] that, when called
//	with a detector component, applies the metadata.
func WithComponentMetadata(name string, id string) types.Option[types.ArrhythmiaDetector] {
	return func(ad types.ArrhythmiaDetector) {
		ad.SetComponentMetadata(name, id)
	}
}
