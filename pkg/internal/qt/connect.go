package qt

import "github.com/cardiokit/ecgcore/pkg/internal/types"

// ConnectLogger registers loggers for analyzer output.
func (qa *QTAnalyzer) ConnectLogger(loggers ...types.Logger) {
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

	qa.loggersLock.Lock()
	qa.loggers = append(qa.loggers, loggers...)
	qa.loggersLock.Unlock()
}
