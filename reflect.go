// Copyright 2024 The synsim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package synsim

import (
	"reflect"
)

var (
	clockResetType = reflect.TypeOf(ClockReset{})
	intType        = reflect.TypeOf(int(0))
	bitsType       = reflect.TypeOf([]Bit(nil))
)

// A ComponentSpec is the dynamically typed registration of a synchronous
// component: its name, the widths of its input, output and state types,
// and an untyped step function. The width metadata is all that external
// consumers (e.g. hardware-text generators) need; simulation code should
// prefer the typed Synchronous interface.
type ComponentSpec struct {
	Name        string
	InputWidth  int
	OutputWidth int
	StateWidth  int

	fn    reflect.Value
	reset reflect.Value
}

// MakeComponent validates fn against the required evaluation shape
//
//	func(ClockReset, I, S) (O, S)
//
// where I, O and S satisfy the Digital contract, and registers it under
// name. in and reset are prototype input and state values; they supply the
// width metadata and the canonical initial state. A fn whose signature
// does not match the shape, or whose parameter types do not agree with the
// prototypes, is rejected with a ShapeError before any simulation runs.
func MakeComponent(name string, fn, in, reset any) (*ComponentSpec, error) {
	shapeErr := func(reason string) error {
		return &ShapeError{Func: name, Reason: reason}
	}

	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return nil, shapeErr("not a function")
	}
	ft := fv.Type()
	if ft.NumIn() != 3 || ft.NumOut() != 2 || ft.IsVariadic() {
		return nil, shapeErr("signature must be func(ClockReset, input, state) (output, nextState)")
	}
	if ft.In(0) != clockResetType {
		return nil, shapeErr("first parameter must be ClockReset")
	}
	if ft.In(2) != ft.Out(1) {
		return nil, shapeErr("state parameter and next-state result types differ")
	}
	for i, t := range []reflect.Type{ft.In(1), ft.In(2), ft.Out(0)} {
		if !isDigital(t) {
			names := []string{"input", "state", "output"}
			return nil, shapeErr(names[i] + " type " + t.String() + " does not satisfy the Digital contract")
		}
	}

	iv, sv := reflect.ValueOf(in), reflect.ValueOf(reset)
	if !iv.IsValid() || iv.Type() != ft.In(1) {
		return nil, shapeErr("input prototype does not match the function's input type")
	}
	if !sv.IsValid() || sv.Type() != ft.In(2) {
		return nil, shapeErr("reset prototype does not match the function's state type")
	}

	// the evaluation function is pure, so one probe call is safe and
	// yields the output width.
	out := fv.Call([]reflect.Value{reflect.ValueOf(ClockReset{}), iv, sv})[0]

	return &ComponentSpec{
		Name:        name,
		InputWidth:  bitWidthOf(iv),
		OutputWidth: bitWidthOf(out),
		StateWidth:  bitWidthOf(sv),
		fn:          fv,
		reset:       sv,
	}, nil
}

// Init returns the component's canonical reset state.
func (s *ComponentSpec) Init() any { return s.reset.Interface() }

// Step evaluates one tick. The dynamic types of in and state must be the
// ones validated at registration; anything else is a programmer error and
// panics.
func (s *ComponentSpec) Step(cr ClockReset, in, state any) (out, next any) {
	res := s.fn.Call([]reflect.Value{
		reflect.ValueOf(cr), reflect.ValueOf(in), reflect.ValueOf(state),
	})
	return res[0].Interface(), res[1].Interface()
}

// isDigital reports whether t carries the Digital method set: BitWidth()
// int, Bits() []Bit and Reset() returning t itself. The check is
// structural since Digital is a generic interface.
func isDigital(t reflect.Type) bool {
	m, ok := t.MethodByName("BitWidth")
	if !ok || m.Type.NumIn() != 1 || m.Type.NumOut() != 1 || m.Type.Out(0) != intType {
		return false
	}
	m, ok = t.MethodByName("Bits")
	if !ok || m.Type.NumIn() != 1 || m.Type.NumOut() != 1 || m.Type.Out(0) != bitsType {
		return false
	}
	m, ok = t.MethodByName("Reset")
	if !ok || m.Type.NumIn() != 1 || m.Type.NumOut() != 1 || m.Type.Out(0) != t {
		return false
	}
	return true
}

func bitWidthOf(v reflect.Value) int {
	return int(v.MethodByName("BitWidth").Call(nil)[0].Int())
}
