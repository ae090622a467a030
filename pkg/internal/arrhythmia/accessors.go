package arrhythmia

import "github.com/cardiokit/ecgcore/pkg/internal/types"

// GetComponentMetadata returns the detector metadata.
func (ad *ArrhythmiaDetector) GetComponentMetadata() types.ComponentMetadata {
	return ad.snapshotMetadata()
}

// SetComponentMetadata sets the detector name and id.
func (ad *ArrhythmiaDetector) SetComponentMetadata(name string, id string) {
	ad.metadataLock.Lock()
	ad.componentMetadata.Name = name
	ad.componentMetadata.ID = id
	ad.metadataLock.Unlock()
}

// GetSampleRate returns the configured sampling rate in Hz.
func (ad *ArrhythmiaDetector) GetSampleRate() int {
	return ad.sampleRate
}
