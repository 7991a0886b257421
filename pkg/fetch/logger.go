package fetch

import "go.uber.org/zap"

var logSink = zap.NewNop()

// SetLogger allows callers/tests to inject a custom logger instead of the
// default no-op logger. Passing nil resets to the default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logSink = zap.NewNop()
		return
	}
	logSink = l
}
