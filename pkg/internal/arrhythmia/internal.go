package arrhythmia

import "github.com/cardiokit/ecgcore/pkg/internal/types"

// snapshotMetadata returns a copy of the component metadata for log fields.
func (ad *ArrhythmiaDetector) snapshotMetadata() types.ComponentMetadata {
	ad.metadataLock.Lock()
	metadata := ad.componentMetadata
	ad.metadataLock.Unlock()
	return metadata
}
