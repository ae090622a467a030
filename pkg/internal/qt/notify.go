package qt

import (
	"github.com/cardiokit/ecgcore/pkg/internal/types"
)

// NotifyLoggers sends a structured log message to all attached loggers.
//
// Parameters:
//   - level: The log level of the message.
//   - msg: The log message.
//   - keysAndValues: Alternating key/value pairs attached to the message.
func (qa *QTAnalyzer) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	qa.loggersLock.Lock()
	loggers := make([]types.Logger, len(qa.loggers))
	copy(loggers, qa.loggers)
	qa.loggersLock.Unlock()

	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		type levelChecker interface {
			IsLevelEnabled(types.LogLevel) bool
		}
		if lc, ok := logger.(levelChecker); ok && !lc.IsLevelEnabled(level) {
			continue
		}

		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}
