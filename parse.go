package synsim

import (
	"github.com/pkg/errors"

	"github.com/synsim/synsim/internal/lit"
)

// ParseLit converts a Verilog-style sized literal to a BitVector.
//
//	ParseLit("8'hA5")   // 8 bit vector holding 0xA5
//	ParseLit("4'b1010") // 4 bit vector holding 10
//	ParseLit("12'd300") // 12 bit vector holding 300
//
// Underscores may separate digit groups. A magnitude that does not fit the
// declared width fails with a RangeError.
func ParseLit(s string) (BitVector, error) {
	l, err := lit.Scan(s)
	if err != nil {
		return BitVector{}, err
	}
	bv, err := Width(l.Width).FromMagnitude(l.Value)
	if err != nil {
		return BitVector{}, errors.Wrapf(err, "literal %q", s)
	}
	return bv, nil
}
