// Copyright 2024 The synsim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package synlib

import "github.com/synsim/synsim"

// AccIn is the input of an accumulator: Pair{Fst: enable, Snd: data}.
type AccIn = synsim.Pair[synsim.Bool, synsim.BitVector]

type accumulator struct {
	w synsim.Width
}

// NewAccumulator returns an accumulator of width w that adds its data
// input to a running sum at every enabled rising edge. Unlike the
// Moore-style components in this package its output is the freshly
// committed sum, so an input's contribution is visible in the same cycle
// it is sampled.
//
//	Input: AccIn{Fst: enable, Snd: data BitVector<w>}
//	Output: out BitVector<w>
//	Function: sum <- sum+data when enabled; out(t) = sum(t); reset forces
//	the sum to 0.
func NewAccumulator(w synsim.Width) synsim.Synchronous[AccIn, synsim.BitVector, synsim.BitVector] {
	return &accumulator{w: w}
}

func (a *accumulator) Init() synsim.BitVector { return a.w.Zero() }

func (a *accumulator) Eval(cr synsim.ClockReset, in AccIn, state synsim.BitVector) (synsim.BitVector, synsim.BitVector) {
	if cr.Reset {
		return a.w.Zero(), a.w.Zero()
	}
	next := state
	if in.Fst {
		next = must(state.Add(in.Snd))
	}
	return next, next
}
