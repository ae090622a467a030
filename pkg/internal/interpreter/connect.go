package interpreter

import "github.com/cardiokit/ecgcore/pkg/internal/types"

// ConnectLogger registers loggers for interpreter output.
func (ci *ClinicalInterpreter) ConnectLogger(loggers ...types.Logger) {
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

	ci.loggersLock.Lock()
	ci.loggers = append(ci.loggers, loggers...)
	ci.loggersLock.Unlock()
}
