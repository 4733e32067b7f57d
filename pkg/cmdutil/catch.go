// Package cmdutil pkg/cmdutil/catch.go
package cmdutil

import (
	"github.com/sirupsen/logrus"
)

// CatchWithLog calls Fatal() on the first non-nil error.
func CatchWithLog(log logrus.FieldLogger, msg string, v ...interface{}) {
	for _, val := range v {
		if err, ok := val.(error); ok && err != nil {
			log.WithError(err).Fatal(msg)
			return
		}
	}
}
