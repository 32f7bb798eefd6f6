// Copyright 2024 The synsim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package synsim

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Width is the bit width of a BitVector. It is fixed at construction and
// queryable without an instance: component declarations hold a Width and
// derive their reset values from it.
type Width int

// MaxWidth is the largest supported BitVector width. Wider values compose
// from narrower lanes via Pair, Vec or Concat.
const MaxWidth Width = 64

func (w Width) valid() bool { return w >= 1 && w <= MaxWidth }

// Max returns the largest magnitude representable in w bits.
func (w Width) Max() uint64 {
	if w >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(w) - 1
}

// FromMagnitude builds a BitVector of width w holding the unsigned
// magnitude v. It fails with a RangeError unless 0 <= v < 2^w.
func (w Width) FromMagnitude(v uint64) (BitVector, error) {
	if !w.valid() {
		return BitVector{}, errors.Errorf("invalid bit vector width %d", w)
	}
	if v > w.Max() {
		return BitVector{}, &RangeError{Width: w, Value: v}
	}
	return BitVector{w: w, v: v}, nil
}

// Zero returns the canonical all-zero (reset) value of width w.
// Zero panics if w is not a valid width; widths are static properties of a
// circuit description, so an invalid one is a defect in the description.
func (w Width) Zero() BitVector {
	if !w.valid() {
		panic("invalid bit vector width " + strconv.Itoa(int(w)))
	}
	return BitVector{w: w}
}

// Ones returns the all-one value of width w.
func (w Width) Ones() BitVector {
	return BitVector{w: w, v: w.Max()}
}

// MustBits builds a BitVector of width w from v and panics if v does not
// fit. It is meant for constants in circuit descriptions and tests.
func MustBits(w Width, v uint64) BitVector {
	bv, err := w.FromMagnitude(v)
	if err != nil {
		panic(err)
	}
	return bv
}

// A BitVector is a fixed-width unsigned magnitude. The zero value has
// width 0 and is not usable; BitVectors are built through Width methods,
// MustBits or ParseLit.
//
// Values of different widths never combine implicitly: equal-width
// operations fail with a WidthMismatchError on mismatched operands, and the
// only width-changing combinator is Concat, which verifies its declared
// output width.
type BitVector struct {
	w Width
	v uint64
}

// Width returns the vector's width.
func (b BitVector) Width() Width { return b.w }

// Uint64 returns the vector's magnitude.
func (b BitVector) Uint64() uint64 { return b.v }

// BitWidth returns the vector's width as a bit count.
func (b BitVector) BitWidth() int { return int(b.w) }

// Bits returns the encoding of b, most significant bit first.
func (b BitVector) Bits() []Bit {
	bits := make([]Bit, b.w)
	for i := range bits {
		if b.v>>uint(int(b.w)-1-i)&1 == 1 {
			bits[i] = Hi
		}
	}
	return bits
}

// Reset returns the all-zero value of the same width.
func (b BitVector) Reset() BitVector { return BitVector{w: b.w} }

// Bit returns bit i, with bit 0 the least significant. It panics if i is
// out of range.
func (b BitVector) Bit(i int) Bit {
	if i < 0 || i >= int(b.w) {
		panic("bit index " + strconv.Itoa(i) + " out of range for width " + strconv.Itoa(int(b.w)))
	}
	if b.v>>uint(i)&1 == 1 {
		return Hi
	}
	return Lo
}

// String formats b as a sized hexadecimal literal, e.g. "8'hA5".
// ParseLit accepts the result.
func (b BitVector) String() string {
	return strconv.Itoa(int(b.w)) + "'h" + strconv.FormatUint(b.v, 16)
}

func (b BitVector) sameWidth(op string, o BitVector) error {
	if b.w != o.w {
		return &WidthMismatchError{Op: op, A: b.w, B: o.w}
	}
	return nil
}

// And returns the bitwise AND of b and o, which must have equal widths.
func (b BitVector) And(o BitVector) (BitVector, error) {
	if err := b.sameWidth("and", o); err != nil {
		return BitVector{}, err
	}
	return BitVector{w: b.w, v: b.v & o.v}, nil
}

// Or returns the bitwise OR of b and o, which must have equal widths.
func (b BitVector) Or(o BitVector) (BitVector, error) {
	if err := b.sameWidth("or", o); err != nil {
		return BitVector{}, err
	}
	return BitVector{w: b.w, v: b.v | o.v}, nil
}

// Xor returns the bitwise XOR of b and o, which must have equal widths.
func (b BitVector) Xor(o BitVector) (BitVector, error) {
	if err := b.sameWidth("xor", o); err != nil {
		return BitVector{}, err
	}
	return BitVector{w: b.w, v: b.v ^ o.v}, nil
}

// Not returns the bitwise complement of b.
func (b BitVector) Not() BitVector {
	return BitVector{w: b.w, v: ^b.v & b.w.Max()}
}

// Add returns b + o modulo 2^width. Operands must have equal widths.
func (b BitVector) Add(o BitVector) (BitVector, error) {
	if err := b.sameWidth("add", o); err != nil {
		return BitVector{}, err
	}
	return BitVector{w: b.w, v: (b.v + o.v) & b.w.Max()}, nil
}

// Sub returns b - o modulo 2^width. Operands must have equal widths.
func (b BitVector) Sub(o BitVector) (BitVector, error) {
	if err := b.sameWidth("sub", o); err != nil {
		return BitVector{}, err
	}
	return BitVector{w: b.w, v: (b.v - o.v) & b.w.Max()}, nil
}

// Shl returns b shifted left by n bits. Shifting by n >= width yields the
// all-zero value of the same width.
func (b BitVector) Shl(n uint) BitVector {
	if n >= uint(b.w) {
		return BitVector{w: b.w}
	}
	return BitVector{w: b.w, v: b.v << n & b.w.Max()}
}

// Shr returns b shifted right by n bits. Shifting by n >= width yields the
// all-zero value of the same width.
func (b BitVector) Shr(n uint) BitVector {
	if n >= uint(b.w) {
		return BitVector{w: b.w}
	}
	return BitVector{w: b.w, v: b.v >> n}
}

// Concat concatenates hi and lo into a vector of width out, with hi in the
// most significant position. It is the only width-changing combinator: out
// must equal the sum of the operand widths and is verified, never inferred.
func Concat(out Width, hi, lo BitVector) (BitVector, error) {
	if out != hi.w+lo.w || !out.valid() {
		return BitVector{}, &WidthMismatchError{Op: "concat", A: hi.w, B: lo.w, Out: out}
	}
	return BitVector{w: out, v: hi.v<<uint(lo.w) | lo.v}, nil
}
