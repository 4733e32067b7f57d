package logging

import (
	"errors"

	"github.com/orandin/lumberjackrus"
	"github.com/sirupsen/logrus"
)

// ErrEmptyLogFile is returned when a file hook is requested without a path.
var ErrEmptyLogFile = errors.New("log file path cannot be empty")

// Rotation defaults for file hooks, in megabytes / days / files.
const (
	DefaultLogFileMaxSize    = 100
	DefaultLogFileMaxAge     = 7
	DefaultLogFileMaxBackups = 3
)

// NewFileHook returns a hook writing entries of minLevel and above into a
// size-rotated file.
func NewFileHook(path string, minLevel logrus.Level) (logrus.Hook, error) {
	if path == "" {
		return nil, ErrEmptyLogFile
	}

	hook, err := lumberjackrus.NewHook(
		&lumberjackrus.LogFile{
			Filename:   path,
			MaxSize:    DefaultLogFileMaxSize,
			MaxAge:     DefaultLogFileMaxAge,
			MaxBackups: DefaultLogFileMaxBackups,
			Compress:   true,
		},
		minLevel,
		&logrus.JSONFormatter{},
		nil,
	)
	if err != nil {
		return nil, err
	}
	return hook, nil
}
