// Copyright 2024 The synsim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package synsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// A RangeError reports a magnitude that does not fit its declared width.
// It is returned at value construction only; once a value exists, no
// operation on it can fail with a RangeError.
type RangeError struct {
	Width Width
	Value uint64
}

func (e *RangeError) Error() string {
	return "value " + strconv.FormatUint(e.Value, 10) +
		" out of range for " + strconv.Itoa(int(e.Width)) + " bit vector"
}

// A WidthMismatchError reports two values of incompatible widths combined
// under an operation that requires equal or explicitly related widths.
// For width-changing combinators, Out holds the declared output width that
// failed verification; it is zero for equal-width operations.
type WidthMismatchError struct {
	Op   string
	A, B Width
	Out  Width
}

func (e *WidthMismatchError) Error() string {
	if e.Out != 0 {
		return e.Op + ": declared output width " + strconv.Itoa(int(e.Out)) +
			" does not match " + strconv.Itoa(int(e.A)) + "+" + strconv.Itoa(int(e.B))
	}
	return e.Op + ": width mismatch: " + strconv.Itoa(int(e.A)) +
		" != " + strconv.Itoa(int(e.B))
}

// A ShapeError reports a candidate evaluation function whose signature does
// not match the required (ClockReset, input, state) -> (output, nextState)
// shape. It is returned at component registration, before any simulation
// runs.
type ShapeError struct {
	Func   string
	Reason string
}

func (e *ShapeError) Error() string {
	return e.Func + ": " + e.Reason
}

// IsRange reports whether the cause of err is a RangeError.
func IsRange(err error) bool {
	_, ok := errors.Cause(err).(*RangeError)
	return ok
}

// IsWidthMismatch reports whether the cause of err is a WidthMismatchError.
func IsWidthMismatch(err error) bool {
	_, ok := errors.Cause(err).(*WidthMismatchError)
	return ok
}

// IsShape reports whether the cause of err is a ShapeError.
func IsShape(err error) bool {
	_, ok := errors.Cause(err).(*ShapeError)
	return ok
}
