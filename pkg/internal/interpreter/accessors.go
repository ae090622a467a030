package interpreter

import "github.com/cardiokit/ecgcore/pkg/internal/types"

// GetComponentMetadata returns the interpreter metadata.
func (ci *ClinicalInterpreter) GetComponentMetadata() types.ComponentMetadata {
	return ci.snapshotMetadata()
}

// SetComponentMetadata sets the interpreter name and id.
func (ci *ClinicalInterpreter) SetComponentMetadata(name string, id string) {
	ci.metadataLock.Lock()
	ci.componentMetadata.Name = name
	ci.componentMetadata.ID = id
	ci.metadataLock.Unlock()
}
