package enc

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// EncodedLen returns the number of symbols n bytes encode into
func EncodedLen(n int) int {
	return (n*8 + symbolBits - 1) / symbolBits
}

// DecodedLen returns the maximum number of bytes n symbols decode into
func DecodedLen(n int) int {
	return n * symbolBits / 8
}

// Encode will encode the given bytes into symbols, three bits per symbol. The last symbol is padded
// with zero bits if the input is not a multiple of three bits long.
func Encode(src []byte) string {
	var dst strings.Builder
	dst.Grow(EncodedLen(len(src)) * utf8.UTFMax)

	reg := NewBitRegister(symbolBits)
	for _, v := range src {
		reg.Push(uint32(v), 8)
		for {
			group, ok := reg.Pop()
			if !ok {
				break
			}
			dst.WriteRune(SymbolFor(byte(group)))
		}
	}
	if group, ok := reg.Flush(); ok {
		dst.WriteRune(SymbolFor(byte(group)))
	}

	return dst.String()
}

// EncodeString encodes the bytes of the given text
func EncodeString(text string) string {
	return Encode([]byte(text))
}

// Decode is the reverse of Encode. Whitespace is skipped. Decoding stops at the first character which
// is not part of the alphabet. The input may only end once the last symbol has contributed to a
// byte, otherwise ErrUnexpectedEnd is returned.
func Decode(src string) ([]byte, error) {
	dst := make([]byte, 0, DecodedLen(utf8.RuneCountInString(src)))

	reg := NewBitRegister(8)
	for offset, r := range src {
		if unicode.IsSpace(r) {
			continue
		}
		v, ok := cb8Invert[r]
		if !ok {
			return nil, errors.WithStack(&InvalidSymbolError{Symbol: r, Offset: offset})
		}
		reg.Push(uint32(v), symbolBits)
		if b, ok := reg.Pop(); ok {
			dst = append(dst, byte(b))
		}
	}

	// Three or more bits left over means a symbol that should have started a new byte
	if reg.Pending() >= symbolBits {
		return nil, errors.Wrapf(ErrUnexpectedEnd, "%d bits left after %d bytes", reg.Pending(), len(dst))
	}

	return dst, nil
}

// DecodeString decodes the given symbols and makes sure the result is valid UTF-8 text
func DecodeString(src string) (string, error) {
	res, err := Decode(src)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(res) {
		return "", errors.WithStack(ErrInvalidUTF8)
	}
	return string(res), nil
}

// -------------------------------------------------------

// Base8Encoder encodes 3 bytes into 8 symbols
type Base8Encoder struct {
}

func (b *Base8Encoder) Name() string {
	return "Base8"
}

func (b *Base8Encoder) String() string {
	return describe(b)
}

func (b *Base8Encoder) Code() byte {
	return 'E'
}

func (b *Base8Encoder) Encode(data []byte) string {
	return Encode(data)
}

func (b *Base8Encoder) Decode(data string) ([]byte, error) {
	return Decode(data)
}

func (b *Base8Encoder) BlocksizeRaw() int {
	return 3
}

func (b *Base8Encoder) BlocksizeEncoded() int {
	return 8
}

func (b *Base8Encoder) TestPatterns() []string {
	return []string{
		Alphabet(),
		"愛楽愛た楽し楽可",
		"。楽。楽楽か楽愛。楽。楽可愛可愛。楽。楽楽かし楽。楽。楽可愛可し",
	}
}
