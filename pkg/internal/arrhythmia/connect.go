package arrhythmia

import "github.com/cardiokit/ecgcore/pkg/internal/types"

// ConnectLogger registers loggers for detector output.
func (ad *ArrhythmiaDetector) ConnectLogger(loggers ...types.Logger) {
	if len(loggers) == 0 {
		return
	}

	n := 0
	for _, logger := range loggers {
		if logger != nil {
			loggers[n] = logger
			n++
		}
	}
	if n == 0 {
		return
	}
	loggers = loggers[:n]

	ad.loggersLock.Lock()
	ad.loggers = append(ad.loggers, loggers...)
	ad.loggersLock.Unlock()
}
