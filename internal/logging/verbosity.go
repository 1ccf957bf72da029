package logging

import (
	log "github.com/sirupsen/logrus"
	"strings"
)

// SetVerbosity defines the verbosity level of the application. Errors are always shown, every `-v`
// raises the level by one.
func SetVerbosity(v []bool) {
	verbosity := log.ErrorLevel + log.Level(len(v))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	log.SetLevel(verbosity)
}

func VerbosityName() string {
	return strings.ToUpper(log.GetLevel().String())
}
