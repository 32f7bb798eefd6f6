// Copyright 2024 The synsim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package synsim

// A Bit is the symbol a single wire carries in a trace: low, high, or
// unknown ("don't care").
type Bit uint8

// Bit symbols.
const (
	Lo Bit = iota
	Hi
	X
)

func (b Bit) String() string {
	switch b {
	case Lo:
		return "0"
	case Hi:
		return "1"
	default:
		return "x"
	}
}

// Digital is implemented by every value that may cross a component
// boundary: inputs, outputs and state. A Digital value has a fixed bit
// width, an ordered bit encoding and a canonical reset instance.
//
// Implementations must have value semantics: assignment is cloning, and
// equality is defined over the bit encoding (see Equal). The interface is
// self-referential; implementing types satisfy the constraint Digital[T]
// with T being the implementing type itself.
type Digital[T any] interface {
	// BitWidth returns the number of bits in the encoding of the value.
	BitWidth() int
	// Bits returns the encoding, most significant bit first. The returned
	// slice has length BitWidth() and is owned by the caller.
	Bits() []Bit
	// Reset returns the canonical reset instance of the type.
	Reset() T
}

// Equal reports whether a and b have the same bit encoding. Values of
// different widths are never equal.
func Equal[T Digital[T]](a, b T) bool {
	ab, bb := a.Bits(), b.Bits()
	if len(ab) != len(bb) {
		return false
	}
	for i := range ab {
		if ab[i] != bb[i] {
			return false
		}
	}
	return true
}

// Bool is a single-wire Digital value.
type Bool bool

// BitWidth returns 1.
func (b Bool) BitWidth() int { return 1 }

// Bits returns the single-bit encoding of b.
func (b Bool) Bits() []Bit {
	if b {
		return []Bit{Hi}
	}
	return []Bit{Lo}
}

// Reset returns false.
func (b Bool) Reset() Bool { return false }

// A Pair is the product of two Digital values. Its width is the sum of the
// component widths; Fst occupies the most significant bits.
type Pair[A Digital[A], B Digital[B]] struct {
	Fst A
	Snd B
}

// BitWidth returns the sum of the component widths.
func (p Pair[A, B]) BitWidth() int { return p.Fst.BitWidth() + p.Snd.BitWidth() }

// Bits returns the concatenated encodings of Fst and Snd.
func (p Pair[A, B]) Bits() []Bit { return append(p.Fst.Bits(), p.Snd.Bits()...) }

// Reset returns the pair of component resets.
func (p Pair[A, B]) Reset() Pair[A, B] {
	return Pair[A, B]{Fst: p.Fst.Reset(), Snd: p.Snd.Reset()}
}

// A Vec is a fixed-length sequence of homogeneous Digital values. The
// length, and therefore the width, is fixed at construction. A Vec is
// immutable; it is safe to copy by assignment.
type Vec[T Digital[T]] struct {
	elems []T
}

// VecOf builds a Vec from the given elements. The elements are copied.
func VecOf[T Digital[T]](elems ...T) Vec[T] {
	v := Vec[T]{elems: make([]T, len(elems))}
	copy(v.elems, elems)
	return v
}

// Len returns the number of elements.
func (v Vec[T]) Len() int { return len(v.elems) }

// At returns element i.
func (v Vec[T]) At(i int) T { return v.elems[i] }

// BitWidth returns the sum of the element widths.
func (v Vec[T]) BitWidth() int {
	w := 0
	for _, e := range v.elems {
		w += e.BitWidth()
	}
	return w
}

// Bits returns the concatenated element encodings, element 0 first.
func (v Vec[T]) Bits() []Bit {
	bits := make([]Bit, 0, v.BitWidth())
	for _, e := range v.elems {
		bits = append(bits, e.Bits()...)
	}
	return bits
}

// Reset returns a Vec of the same length holding element resets.
func (v Vec[T]) Reset() Vec[T] {
	r := Vec[T]{elems: make([]T, len(v.elems))}
	for i, e := range v.elems {
		r.elems[i] = e.Reset()
	}
	return r
}

// An Either is a two-variant tagged union. Its width is one discriminant
// bit plus the width of the wider variant; the encoding of the shorter
// variant is padded with X bits on the most significant side. Both variant
// fields must be populated (the unselected one typically with its reset
// value) since they fix the variant widths.
type Either[A Digital[A], B Digital[B]] struct {
	// Sel selects the active variant: Lo selects L, Hi selects R.
	Sel Bool
	L   A
	R   B
}

// BitWidth returns 1 plus the width of the wider variant.
func (e Either[A, B]) BitWidth() int {
	lw, rw := e.L.BitWidth(), e.R.BitWidth()
	if lw < rw {
		lw = rw
	}
	return 1 + lw
}

// Bits returns the discriminant bit followed by the active variant's
// encoding, X-padded to the union's payload width.
func (e Either[A, B]) Bits() []Bit {
	bits := make([]Bit, 1, e.BitWidth())
	bits[0] = e.Sel.Bits()[0]
	var payload []Bit
	if e.Sel {
		payload = e.R.Bits()
	} else {
		payload = e.L.Bits()
	}
	for n := e.BitWidth() - 1 - len(payload); n > 0; n-- {
		bits = append(bits, X)
	}
	return append(bits, payload...)
}

// Reset returns the union with the left variant selected and both variants
// reset.
func (e Either[A, B]) Reset() Either[A, B] {
	return Either[A, B]{Sel: false, L: e.L.Reset(), R: e.R.Reset()}
}
