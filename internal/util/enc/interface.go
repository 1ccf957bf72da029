package enc

import (
	"fmt"

	"github.com/pkg/errors"
)

type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// BlocksizeRaw returns the block size (number of bytes) this encoder takes at one time
	BlocksizeRaw() int

	// BlocksizeEncoded returns the block size (number of symbols) output by this encoder for every input block
	BlocksizeEncoded() int

	// Return a list of test patterns for the specified encoding
	TestPatterns() []string
}

// Base8 is the one and only encoder instance
var Base8 Encoder = &Base8Encoder{}

var encoders = []Encoder{
	Base8,
}

// FromCode returns the encoder registered under the given one-letter code
func FromCode(code byte) (Encoder, error) {
	for _, e := range encoders {
		if e.Code() == code {
			return e, nil
		}
	}
	return nil, errors.Errorf("Unknown encoder code: %q", string(code))
}

func describe(e Encoder) string {
	return fmt.Sprintf("%v(%v)", e.Name(), string(e.Code()))
}
