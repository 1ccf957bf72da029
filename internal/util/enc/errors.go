package enc

import (
	"fmt"

	"github.com/pkg/errors"
)

// Declare the errors a decode may fail with
var (
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrUnexpectedEnd = errors.New("unexpected end of input")
	ErrInvalidUTF8   = errors.New("decoded data is not valid UTF-8")
)

// InvalidSymbolError is returned when a non-whitespace character outside of the alphabet is found.
// It matches ErrInvalidSymbol with errors.Is.
type InvalidSymbolError struct {
	Symbol rune // the offending character
	Offset int  // byte offset of the character in the decoded string, -1 if unknown
}

func (e *InvalidSymbolError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%v: %q", ErrInvalidSymbol, e.Symbol)
	}
	return fmt.Sprintf("%v: %q at offset %d", ErrInvalidSymbol, e.Symbol, e.Offset)
}

func (e *InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}

// Kind discriminates decode failures
type Kind int

const (
	KindNone Kind = iota
	KindInvalidSymbol
	KindUnexpectedEnd
	KindInvalidUTF8
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidSymbol:
		return "invalid-symbol"
	case KindUnexpectedEnd:
		return "unexpected-end"
	case KindInvalidUTF8:
		return "invalid-utf8"
	default:
		return "other"
	}
}

// KindOf returns the kind of the given (possibly wrapped) error
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidSymbol):
		return KindInvalidSymbol
	case errors.Is(err, ErrUnexpectedEnd):
		return KindUnexpectedEnd
	case errors.Is(err, ErrInvalidUTF8):
		return KindInvalidUTF8
	default:
		return KindOther
	}
}
