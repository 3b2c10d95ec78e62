package contract

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type loggerHolder struct {
	logger logrus.FieldLogger
}

var logger atomic.Pointer[loggerHolder]

// SetLogger replaces the logger violations are reported to. A nil logger
// restores the logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		logger.Store(nil)
		return
	}
	logger.Store(&loggerHolder{logger: l})
}

func currentLogger() logrus.FieldLogger {
	if h := logger.Load(); h != nil {
		return h.logger
	}
	return logrus.StandardLogger()
}
