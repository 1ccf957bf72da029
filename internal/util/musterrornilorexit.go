package util

import (
	"github.com/bokysan/artr/internal/util/enc"
	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	ErrInvalidSymbol = 65
	ErrUnexpectedEnd = 66
	ErrInvalidUTF8   = 67
	ErrGeneric       = 99
)

// ExitCode returns the process exit code for the given error. `flags.Error` objects return their type,
// decode errors are mapped to their kind and any other error returns a generic error code - 99.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	if flagsError, ok := err.(*flags.Error); ok {
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	}

	switch enc.KindOf(err) {
	case enc.KindInvalidSymbol:
		return ErrInvalidSymbol
	case enc.KindUnexpectedEnd:
		return ErrUnexpectedEnd
	case enc.KindInvalidUTF8:
		return ErrInvalidUTF8
	default:
		return ErrGeneric
	}
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code returned
// by ExitCode.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	if flagsError, ok := err.(*flags.Error); ok && flagsError.Type == flags.ErrHelp {
		os.Exit(0)
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(ExitCode(err))
}
