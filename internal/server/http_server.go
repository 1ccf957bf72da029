package server

import (
	"context"
	"crypto/tls"
	"github.com/bokysan/artr/internal/util/addr"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net"
	"net/http"
	"time"
)

// ShutdownTimeout is how long Shutdown waits for running requests
const ShutdownTimeout = 5 * time.Second

// HttpServer exposes the codec over HTTP
type HttpServer struct {
	Address     string
	MaxBodySize int64
	TLS         *tls.Config // nil serves plain HTTP

	server *http.Server
	ln     net.Listener
}

func NewHttpServer(address string) *HttpServer {
	return &HttpServer{
		Address:     address,
		MaxBodySize: DefaultMaxBodySize,
	}
}

func (hs *HttpServer) String() string {
	scheme := "http://"
	if hs.TLS != nil {
		scheme = "https://"
	}
	if hs.ln != nil {
		return scheme + hs.ln.Addr().String()
	}
	return scheme + hs.Address
}

// Router creates the handler serving all the endpoints
func (hs *HttpServer) Router(address *net.TCPAddr) http.Handler {
	endpoint := &CodecEndpoint{
		MaxBodySize: hs.MaxBodySize,
	}

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID, // Set Request Id on all requests
		middleware.RealIP,    // Extract actual IP if running behind reverse proxy
		GetRequestLogger(address),
		middleware.RedirectSlashes, // Redirect slashes to no slash URLs
		middleware.Recoverer,       // Recover from panics without crashing the server
	)

	router.Post("/encode", endpoint.Encode)
	router.Post("/decode", endpoint.Decode)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeText(w, "OK")
	})

	return router
}

// Startup starts listening and serves requests in the background
func (hs *HttpServer) Startup() error {
	address, err := addr.ResolveHostAddress(hs.Address)
	if err != nil {
		return errors.WithStack(err)
	}

	hs.ln, err = net.Listen("tcp", address.String())
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %v", hs.Address)
	}

	hs.server = &http.Server{
		Handler:   hs.Router(address),
		TLSConfig: hs.TLS,
	}

	go func() {
		var err error
		if hs.TLS != nil {
			log.Infof("Starting HTTPS server at %v", hs)
			err = hs.server.ServeTLS(hs.ln, "", "")
		} else {
			log.Infof("Starting HTTP server at %v", hs)
			err = hs.server.Serve(hs.ln)
		}
		if err != http.ErrServerClosed {
			err = errors.WithStack(err)
			log.WithError(err).Errorf("Could not start the server %v", err)
		}
	}()

	return nil
}

// Shutdown gracefully stops the server
func (hs *HttpServer) Shutdown() error {
	if hs.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return hs.server.Shutdown(ctx)
}
