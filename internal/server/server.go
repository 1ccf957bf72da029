package server

import (
	"fmt"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"reflect"
)

type Servers []Server

// Server is anything exposing the codec to the outside world
type Server interface {
	fmt.Stringer

	Startup() error
	Shutdown() error
}

// Shutdown stops all the servers and collects the errors
func (se Servers) Shutdown() error {
	var errs error

	for _, srv := range se {
		srvType := reflect.TypeOf(reflect.Indirect(reflect.ValueOf(srv)).Interface())
		log.Debugf("[Server] Shutting down %v: %v", srvType, srv.String())
		if err := srv.Shutdown(); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not shutdown %v: %v", srvType, srv))
		}
	}

	return errs
}
