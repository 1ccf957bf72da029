package logging

import (
	"github.com/bokysan/artr/internal/args"
	"github.com/bokysan/artr/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"strings"
)

// SetupLogging configures the standard logrus logger from the general options. Logs always go to
// stderr (or the log file), as stdout carries the encoded / decoded data.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	log.SetFormatter(NewFormatter(args.General.LogFormat, args.General.LogColor, args.General.LogFullTimestamp))
	log.SetReportCaller(args.General.LogReportCaller)
	log.SetOutput(os.Stderr)

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		util.MustErrorNilOrExit(errors.WithStack(err))
		log.SetOutput(f)
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
}

// NewFormatter creates a logrus formatter for the given format ("json" or "text") and color setting
func NewFormatter(format, color string, fullTimestamp bool) log.Formatter {
	if format == "json" {
		return &log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		}
	}

	return &log.TextFormatter{
		ForceColors:   IsColorForced(color),
		DisableColors: IsColorDisabled(color),
		FullTimestamp: fullTimestamp,
	}
}

func normalizeColor(color string) string {
	return strings.TrimSpace(strings.ToLower(color))
}

// IsColorForced returns true if the color option requires colored output
func IsColorForced(color string) bool {
	color = normalizeColor(color)
	return color == "yes" || color == "true" || color == "1"
}

// IsColorDisabled returns true if the color option prohibits colored output
func IsColorDisabled(color string) bool {
	color = normalizeColor(color)
	return color == "no" || color == "false" || color == "0"
}
