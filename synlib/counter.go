// Copyright 2024 The synsim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package synlib

import "github.com/synsim/synsim"

type counter struct {
	w synsim.Width
}

// NewCounter returns a counter of width w that counts rising edges while
// enabled, wrapping modulo 2^w.
//
//	Input: enable Bool
//	Output: out BitVector<w>
//	Function: out(t) = count(t-1); count <- count+1 when enabled.
func NewCounter(w synsim.Width) synsim.Synchronous[synsim.Bool, synsim.BitVector, synsim.BitVector] {
	return &counter{w: w}
}

func (c *counter) Init() synsim.BitVector { return c.w.Zero() }

func (c *counter) Eval(cr synsim.ClockReset, enable synsim.Bool, state synsim.BitVector) (synsim.BitVector, synsim.BitVector) {
	if cr.Reset {
		return c.w.Zero(), c.w.Zero()
	}
	if !enable {
		return state, state
	}
	return state, must(state.Add(synsim.MustBits(c.w, 1)))
}
