// Package logging pkg/logging/logger.go
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.FieldLogger
type Logger struct {
	logrus.FieldLogger
}

// Critical adds special critical-level fields for specially highlighted logging,
// since logrus lacks a distinct critical field and does not have configurable log levels
func (logger *Logger) Critical() logrus.FieldLogger {
	return logger.WithField(logPriorityKey, logPriorityCritical)
}

// MasterLogger wraps logrus.Logger and is able to create new package-aware loggers
type MasterLogger struct {
	*logrus.Logger
}

// NewMasterLogger creates a new package-aware logger with formatting string.
// Logs go to stderr so that stdout stays reserved for the command's own output.
func NewMasterLogger() *MasterLogger {
	hooks := make(logrus.LevelHooks)

	return &MasterLogger{
		Logger: &logrus.Logger{
			Out: os.Stderr,
			Formatter: &logrus.TextFormatter{
				FullTimestamp:    true,
				QuoteEmptyFields: true,
				DisableColors:    false,
				ForceColors:      false,
				TimestampFormat:  "2006-01-02T15:04:05.999999999Z07:00",
			},
			Hooks: hooks,
			Level: logrus.DebugLevel,
		},
	}
}

// PackageLogger instantiates a package-aware logger
func (logger *MasterLogger) PackageLogger(moduleName string) *Logger {
	return &Logger{
		FieldLogger: logger.WithField(logModuleKey, moduleName),
	}
}

const (
	logModuleKey        = "_module"
	logPriorityKey      = "log_priority"
	logPriorityCritical = "CRITICAL"
)

var log = NewMasterLogger()

// MustGetLogger returns a package-aware logger from the master logger.
func MustGetLogger(module string) *Logger {
	return log.PackageLogger(module)
}

// AddHook adds a hook to the global logger.
func AddHook(hook logrus.Hook) {
	log.AddHook(hook)
}

// SetLevel sets the global log level.
func SetLevel(level logrus.Level) {
	log.SetLevel(level)
}
