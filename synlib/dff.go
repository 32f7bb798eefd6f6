// Copyright 2024 The synsim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package synlib

import "github.com/synsim/synsim"

type dff[T synsim.Digital[T]] struct {
	rst T
}

// NewDFF returns a data flip-flop whose state resets to reset.
//
//	Input: in T
//	Output: out T
//	Function: out(t) = in(t-1); reset forces the declared reset value.
func NewDFF[T synsim.Digital[T]](reset T) synsim.Synchronous[T, T, T] {
	return &dff[T]{rst: reset}
}

func (d *dff[T]) Init() T { return d.rst }

func (d *dff[T]) Eval(cr synsim.ClockReset, in T, state T) (T, T) {
	if cr.Reset {
		return d.rst, d.rst
	}
	return state, in
}

type register[T synsim.Digital[T]] struct {
	rst T
}

// NewRegister returns a flip-flop with a load enable.
//
//	Input: Pair{Fst: load, Snd: data T}
//	Output: out T
//	Function: out(t) = data(t') where t' is the last cycle load was
//	asserted; reset forces the declared reset value.
func NewRegister[T synsim.Digital[T]](reset T) synsim.Synchronous[synsim.Pair[synsim.Bool, T], T, T] {
	return &register[T]{rst: reset}
}

func (r *register[T]) Init() T { return r.rst }

func (r *register[T]) Eval(cr synsim.ClockReset, in synsim.Pair[synsim.Bool, T], state T) (T, T) {
	if cr.Reset {
		return r.rst, r.rst
	}
	next := state
	if in.Fst {
		next = in.Snd
	}
	return state, next
}
