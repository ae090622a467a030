package qt

import "github.com/cardiokit/ecgcore/pkg/internal/types"

// snapshotMetadata returns a copy of the component metadata for log fields.
func (qa *QTAnalyzer) snapshotMetadata() types.ComponentMetadata {
	qa.metadataLock.Lock()
	metadata := qa.componentMetadata
	qa.metadataLock.Unlock()
	return metadata
}
