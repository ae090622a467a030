package interpreter

import "github.com/cardiokit/ecgcore/pkg/internal/types"

// snapshotMetadata returns a copy of the component metadata for log fields.
func (ci *ClinicalInterpreter) snapshotMetadata() types.ComponentMetadata {
	ci.metadataLock.Lock()
	metadata := ci.componentMetadata
	ci.metadataLock.Unlock()
	return metadata
}
