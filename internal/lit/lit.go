// Package lit scans Verilog-style sized bit-vector literals such as
// "8'hA5", "4'b1010" or "12'd300".
package lit

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Lit is a scanned literal: its declared width, numeric base and
// magnitude. Whether the magnitude fits the width is for the caller to
// decide.
type Lit struct {
	Width int
	Base  int
	Value uint64
}

// Scan parses a sized literal of the form <width>'<base><digits> where
// base is one of b, o, d, h (case-insensitive) and digits may contain
// underscore separators.
func Scan(s string) (Lit, error) {
	var l Lit

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return l, scanError(s, 0, "missing width")
	}
	w, err := strconv.Atoi(s[:i])
	if err != nil {
		return l, scanError(s, 0, "bad width")
	}
	l.Width = w

	if i >= len(s) || s[i] != '\'' {
		return l, scanError(s, i, "expected ' after width")
	}
	i++
	if i >= len(s) {
		return l, scanError(s, i, "missing base")
	}
	switch s[i] {
	case 'b', 'B':
		l.Base = 2
	case 'o', 'O':
		l.Base = 8
	case 'd', 'D':
		l.Base = 10
	case 'h', 'H':
		l.Base = 16
	default:
		return l, scanError(s, i, "unknown base "+strconv.QuoteRune(rune(s[i])))
	}
	i++

	digits := strings.ReplaceAll(s[i:], "_", "")
	if digits == "" {
		return l, scanError(s, i, "missing digits")
	}
	v, err := strconv.ParseUint(digits, l.Base, 64)
	if err != nil {
		return l, scanError(s, i, "bad digits: "+err.Error())
	}
	l.Value = v
	return l, nil
}

func scanError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
