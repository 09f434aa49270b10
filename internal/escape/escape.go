// Package escape decodes backslash escape sequences in command-line
// string options, so callers can pass separators and values like "\t"
// or "\n" literally on the shell command line.
package escape

import (
	"fmt"
	"strconv"
	"strings"
)

// Decode interprets backslash escape sequences in s and returns the
// decoded string. Recognized sequences: \t \n \r \f \v \a \b \0 \\
// \xNN \uNNNN \UNNNNNNNN. An unrecognized escape is kept verbatim,
// backslash included. A truncated hex or unicode escape is an error.
func Decode(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case '0':
			b.WriteByte(0)
		case '\\':
			b.WriteByte('\\')
		case 'x':
			r, n, err := hexRune(s[i+1:], 2)
			if err != nil {
				return "", fmt.Errorf("invalid escape sequence %q: %v", s[i-1:], err)
			}
			b.WriteByte(byte(r))
			i += n
		case 'u':
			r, n, err := hexRune(s[i+1:], 4)
			if err != nil {
				return "", fmt.Errorf("invalid escape sequence %q: %v", s[i-1:], err)
			}
			b.WriteRune(r)
			i += n
		case 'U':
			r, n, err := hexRune(s[i+1:], 8)
			if err != nil {
				return "", fmt.Errorf("invalid escape sequence %q: %v", s[i-1:], err)
			}
			b.WriteRune(r)
			i += n
		default:
			// Not a known escape; keep it as written.
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}

// hexRune parses exactly want hex digits from the front of s.
func hexRune(s string, want int) (rune, int, error) {
	if len(s) < want {
		return 0, 0, fmt.Errorf("need %d hex digits", want)
	}
	v, err := strconv.ParseUint(s[:want], 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("need %d hex digits", want)
	}
	return rune(v), want, nil
}
