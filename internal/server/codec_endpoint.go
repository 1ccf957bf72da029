package server

import (
	"encoding/json"
	"github.com/bokysan/artr/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io/ioutil"
	"net/http"
)

// DefaultMaxBodySize is the largest request body accepted by the codec endpoints
const DefaultMaxBodySize = 1 << 20

// ErrorResponse is the body of a failed decode
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// CodecEndpoint serves `/encode` and `/decode`
type CodecEndpoint struct {
	MaxBodySize int64
}

func (ce *CodecEndpoint) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	limit := ce.MaxBodySize
	if limit <= 0 {
		limit = DefaultMaxBodySize
	}

	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		log.WithError(err).Debugf("Could not read request body: %v", err)
		http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
		return nil, false
	}
	return body, true
}

func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		log.WithError(err).Debugf("Could not write response: %v", err)
	}
}

// Encode encodes the request body
func (ce *CodecEndpoint) Encode(w http.ResponseWriter, r *http.Request) {
	body, ok := ce.readBody(w, r)
	if !ok {
		return
	}
	encoded := enc.Encode(body)
	log.Tracef("Encoded %d bytes into %d symbols", len(body), enc.EncodedLen(len(body)))
	writeText(w, encoded)
}

// Decode decodes the request body. Failures are reported as `400 Bad Request` with the kind of
// the error in a JSON body.
func (ce *CodecEndpoint) Decode(w http.ResponseWriter, r *http.Request) {
	body, ok := ce.readBody(w, r)
	if !ok {
		return
	}

	decoded, err := enc.DecodeString(string(body))
	if err != nil {
		log.WithError(err).Debugf("Could not decode request: %v", err)
		writeError(w, err)
		return
	}
	writeText(w, decoded)
}

func writeError(w http.ResponseWriter, err error) {
	res := ErrorResponse{
		Kind:    enc.KindOf(err).String(),
		Message: errors.Cause(err).Error(),
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(&res); err != nil {
		log.WithError(err).Debugf("Could not write error response: %v", err)
	}
}
