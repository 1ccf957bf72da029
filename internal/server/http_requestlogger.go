package server

import (
	"github.com/bokysan/artr/internal/args"
	"github.com/bokysan/artr/internal/logging"
	"github.com/go-chi/chi/middleware"
	"net"
	"net/http"
)

type NextHandlerFunc func(next http.Handler) http.Handler

// GetRequestLogger returns the chi request logger matching the configured log format
func GetRequestLogger(address *net.TCPAddr) (logger NextHandlerFunc) {
	if args.General.LogFormat == "json" {
		logger = middleware.RequestLogger(
			&logging.JSONLogFormatter{
				ServerAddress: address,
			},
		)
	} else {
		logger = middleware.RequestLogger(
			&middleware.DefaultLogFormatter{
				Logger:  &logging.ChiLogWriter{},
				NoColor: !logging.IsColorForced(args.General.LogColor),
			},
		)
	}

	return
}
