package enc

import (
	"strings"
	"unicode/utf8"
)

// Wrap will include a new line every `width` symbols. Decode skips whitespace, so wrapped output
// decodes to the same data. Zero or negative width returns the input unchanged.
func Wrap(encoded string, width int) string {
	if width <= 0 || utf8.RuneCountInString(encoded) <= width {
		return encoded
	}

	var res strings.Builder
	res.Grow(len(encoded) + len(encoded)/width)

	count := 0
	for _, r := range encoded {
		if count == width {
			res.WriteByte('\n')
			count = 0
		}
		res.WriteRune(r)
		count++
	}
	return res.String()
}
