package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// InitLogger configures the shared logger. Only the first call sets the
// output and formatter; later calls just adjust the level.
func InitLogger(level logrus.Level) {
	once.Do(func() {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	})
	logger.SetLevel(level)
}

// GetLogger returns the shared logger, initializing it at warn level if
// InitLogger has not been called yet.
func GetLogger() *logrus.Logger {
	if logger == nil {
		InitLogger(logrus.WarnLevel)
	}
	return logger
}

// ParseLevel maps a level name to a logrus level. Unknown names fall back to warn.
func ParseLevel(name string) logrus.Level {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
