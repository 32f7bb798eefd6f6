// Copyright 2024 The synsim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package synlib provides a library of reusable synchronous components.
//
// Every component implements synsim.Synchronous. Unless a component's
// Function says otherwise, outputs are Moore-style: the value observed at
// a rising edge reflects the state committed at the previous edge.
package synlib

import "github.com/synsim/synsim"

// must unwraps equal-width operations between values whose widths are
// fixed by the component's own construction; a mismatch there is a defect
// in the component, not in its inputs.
func must(v synsim.BitVector, err error) synsim.BitVector {
	if err != nil {
		panic(err)
	}
	return v
}
