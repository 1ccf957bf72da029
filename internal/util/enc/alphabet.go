package enc

import "github.com/pkg/errors"

// symbolBits is the number of bits every symbol carries
const symbolBits = 3

// cb8 holds the alphabet, indexed by the value of the symbol
var cb8 = [1 << symbolBits]rune{'楽', '可', '愛', 'っ', 'た', 'し', 'か', '。'}

var cb8Invert = func() map[rune]byte {
	res := make(map[rune]byte, len(cb8))
	for i, v := range cb8 {
		if _, ok := res[v]; ok {
			panic("alphabet contains a repeating character")
		}
		res[v] = byte(i)
	}
	return res
}()

// SymbolFor will convert the given number into a symbol from the alphabet. Only the lowest three bits
// are taken into account, so the function may be called with an unmasked value.
func SymbolFor(in byte) rune {
	return cb8[in&(1<<symbolBits-1)]
}

// ValueFor is the reverse of SymbolFor. It returns an *InvalidSymbolError if the rune is not part of the alphabet.
func ValueFor(in rune) (byte, error) {
	v, ok := cb8Invert[in]
	if !ok {
		return 0, errors.WithStack(&InvalidSymbolError{Symbol: in, Offset: -1})
	}
	return v, nil
}

// Alphabet returns the symbols ordered by their value
func Alphabet() string {
	return string(cb8[:])
}
