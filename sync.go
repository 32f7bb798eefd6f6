// Copyright 2024 The synsim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package synsim

// ClockReset carries the clock and reset levels for the current simulation
// tick. It is valid only for the duration of one Eval call and must never
// be stored: every stateful computation receives its timing reference
// explicitly, so composed units cannot drift apart.
type ClockReset struct {
	Clock bool
	Reset bool
}

// Synchronous is the single contract a stateful unit implements. Output
// and next state are pure functions of the input and current state; no
// unit reads or writes state outside Eval, and no unit observes a clock
// other than the one passed in.
//
// I, O and S are the unit's input, output and state types. The caller owns
// the state: it passes the value returned by Init to the first Eval and
// feeds each returned next state back into the following call.
type Synchronous[I Digital[I], O Digital[O], S Digital[S]] interface {
	// Init returns the canonical reset state, independent of prior runs.
	Init() S
	// Eval computes the unit's output and next state. It is pure, total
	// and deterministic: it must not fail for any argument admitted by the
	// type system.
	Eval(cr ClockReset, in I, state S) (O, S)
}

// An EvalFunc is the required shape of an evaluation function.
type EvalFunc[I Digital[I], O Digital[O], S Digital[S]] func(cr ClockReset, in I, state S) (O, S)

// SynchronousOf wraps a reset state and an evaluation function into a
// Synchronous unit.
func SynchronousOf[I Digital[I], O Digital[O], S Digital[S]](reset S, fn EvalFunc[I, O, S]) Synchronous[I, O, S] {
	return &funcUnit[I, O, S]{reset: reset, fn: fn}
}

type funcUnit[I Digital[I], O Digital[O], S Digital[S]] struct {
	reset S
	fn    EvalFunc[I, O, S]
}

func (u *funcUnit[I, O, S]) Init() S { return u.reset }

func (u *funcUnit[I, O, S]) Eval(cr ClockReset, in I, state S) (O, S) {
	return u.fn(cr, in, state)
}
