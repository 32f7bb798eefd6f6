// Copyright 2024 The synsim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package synlib

import (
	"strconv"

	"github.com/synsim/synsim"
)

// SerialIn is the input of a shift-in register.
type SerialIn struct {
	Enable synsim.Bool
	Data   synsim.Bool
}

func (s SerialIn) BitWidth() int { return 2 }

func (s SerialIn) Bits() []synsim.Bit {
	return append(s.Enable.Bits(), s.Data.Bits()...)
}

func (s SerialIn) Reset() SerialIn { return SerialIn{} }

type shiftIn struct {
	w synsim.Width
}

// NewShiftIn returns a serial-in/parallel-out shift register of width w:
// while enabled, the register shifts left one position per cycle and the
// serial bit fills the least significant position.
//
//	Input: SerialIn{Enable, Data}
//	Output: out BitVector<w>
//	Function: out(t) = reg(t-1); reg <- reg<<1 | data when enabled.
func NewShiftIn(w synsim.Width) synsim.Synchronous[SerialIn, synsim.BitVector, synsim.BitVector] {
	return &shiftIn{w: w}
}

func (s *shiftIn) Init() synsim.BitVector { return s.w.Zero() }

func (s *shiftIn) Eval(cr synsim.ClockReset, in SerialIn, state synsim.BitVector) (synsim.BitVector, synsim.BitVector) {
	if cr.Reset {
		return s.w.Zero(), s.w.Zero()
	}
	if !in.Enable {
		return state, state
	}
	next := state.Shl(1)
	if in.Data {
		next = must(next.Or(synsim.MustBits(s.w, 1)))
	}
	return state, next
}

// ShiftOutIn is the input of a shift-out register. Data must be the
// register's width; Load takes precedence over Enable.
type ShiftOutIn struct {
	Enable synsim.Bool
	Load   synsim.Bool
	Data   synsim.BitVector
}

func (s ShiftOutIn) BitWidth() int { return 2 + s.Data.BitWidth() }

func (s ShiftOutIn) Bits() []synsim.Bit {
	bits := append(s.Enable.Bits(), s.Load.Bits()...)
	return append(bits, s.Data.Bits()...)
}

func (s ShiftOutIn) Reset() ShiftOutIn {
	return ShiftOutIn{Data: s.Data.Reset()}
}

type shiftOut struct {
	w synsim.Width
}

// NewShiftOut returns a parallel-in/serial-out shift register of width w:
// a load captures a full word, then one bit leaves per enabled cycle, most
// significant bit first.
//
//	Input: ShiftOutIn{Enable, Load, Data}
//	Output: out Bool
//	Function: out(t) = msb(reg(t-1)); reg <- data on load, reg<<1 when
//	enabled, held otherwise.
func NewShiftOut(w synsim.Width) synsim.Synchronous[ShiftOutIn, synsim.Bool, synsim.BitVector] {
	return &shiftOut{w: w}
}

func (s *shiftOut) Init() synsim.BitVector { return s.w.Zero() }

func (s *shiftOut) Eval(cr synsim.ClockReset, in ShiftOutIn, state synsim.BitVector) (synsim.Bool, synsim.BitVector) {
	if cr.Reset {
		return false, s.w.Zero()
	}
	out := synsim.Bool(state.Bit(int(s.w)-1) == synsim.Hi)
	switch {
	case bool(in.Load):
		if in.Data.Width() != s.w {
			panic("shiftout: load data width " + strconv.Itoa(in.Data.BitWidth()) +
				" does not match register width " + strconv.Itoa(int(s.w)))
		}
		return out, in.Data
	case bool(in.Enable):
		return out, state.Shl(1)
	default:
		return out, state
	}
}
