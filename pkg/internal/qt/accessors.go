package qt

import "github.com/cardiokit/ecgcore/pkg/internal/types"

// GetComponentMetadata returns the analyzer metadata.
func (qa *QTAnalyzer) GetComponentMetadata() types.ComponentMetadata {
	return qa.snapshotMetadata()
}

// SetComponentMetadata sets the analyzer name and id.
func (qa *QTAnalyzer) SetComponentMetadata(name string, id string) {
	qa.metadataLock.Lock()
	qa.componentMetadata.Name = name
	qa.componentMetadata.ID = id
	qa.metadataLock.Unlock()
}

// GetSampleRate returns the configured sampling rate in Hz.
func (qa *QTAnalyzer) GetSampleRate() int {
	return qa.sampleRate
}
