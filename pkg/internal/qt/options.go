// Package qt provides options for configuring QTAnalyzer components.
//
// This file defines the options used to customize analyzer behavior at construction
// time, such as attaching loggers or overriding component metadata.
package qt

import "github.com/cardiokit/ecgcore/pkg/internal/types"

// WithLogger creates an option to add a logger to a QTAnalyzer.
//
// Parameters:
//   - logger: One or more logger instances to be added to the analyzer for logging.
//
// Returns:
//
//	A function conforming to types.Option[types.QTAnalyzer] that, when called with an
//	analyzer component, connects the specified logger(s) to it.
func WithLogger(logger ...types.Logger) types.Option[types.QTAnalyzer] {
	return func(qa types.QTAnalyzer) {
		qa.ConnectLogger(logger...)
	}
}

// WithComponentMetadata creates an option to override the analyzer name and id.
//
// Parameters:
//   - name: The human-facing component name.
//   - id: The component identifier.
//
// Returns:
//
//	A function conforming to types.Option[types.QTAnalyzer] that, when called with an
//	analyzer component, applies the metadata.
func WithComponentMetadata(name string, id string) types.Option[types.QTAnalyzer] {
	return func(qa types.QTAnalyzer) {
		qa.SetComponentMetadata(name, id)
	}
}
