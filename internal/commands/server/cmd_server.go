package server

import (
	"github.com/bokysan/artr/internal/logging"
	"github.com/bokysan/artr/internal/server"
	"github.com/bokysan/artr/internal/util/cert"
	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
)

type Command struct {
	cert.ServerConfig `yaml:",inline"`

	Listen      []string `yaml:"listen"      short:"a" long:"listen"        env:"ARTR_LISTEN" env-delim:" " description:"Address to listen on, e.g. '127.0.0.1:8080'. May be repeated." default:"127.0.0.1:8080"`
	MaxBodySize int64    `yaml:"maxbodysize"           long:"max-body-size" env:"ARTR_MAX_BODY_SIZE"        description:"Largest accepted request body, in bytes" default:"1048576"`

	servers server.Servers
}

func NewCommand() *Command {
	return &Command{
		Listen:      make([]string, 0),
		MaxBodySize: server.DefaultMaxBodySize,
	}
}

// Startup starts all the servers. If any of them fails, the ones already started are shut down.
func (s *Command) Startup() error {
	var errs error

	tlsConfig, err := s.ServerConfig.GetTlsConfig()
	if err != nil {
		return err
	}

	s.servers = make(server.Servers, 0, len(s.Listen))
	for _, address := range s.Listen {
		srv := server.NewHttpServer(address)
		srv.MaxBodySize = s.MaxBodySize
		srv.TLS = tlsConfig
		if err := srv.Startup(); err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		s.servers = append(s.servers, srv)
	}

	if errs != nil {
		if err := s.servers.Shutdown(); err != nil {
			errs = multierror.Append(errs, err)
		}
		return errs
	}

	return nil
}

func (s *Command) Shutdown() error {
	log.Infof("Graceful server shutdown...")
	return s.servers.Shutdown()
}

func (s *Command) Execute(args []string) error {
	logging.SetupLogging()

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	if err := s.Startup(); err != nil {
		return err
	}

	<-interrupted
	return s.Shutdown()
}
