// Copyright 2024 The synsim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package syntest provides utility functions for testing synchronous
// components.
package syntest

import (
	"math/rand"
	"testing"
	"time"

	"github.com/synsim/synsim"
)

const comparePeriod = 8

// Compare drives a and b with the same expanded event stream and fails the
// test at the first cycle where their sampled outputs diverge. Both units
// must share input and output types; their state types may differ, which
// is the point: a reference model and an optimized implementation can be
// checked cycle for cycle.
func Compare[I synsim.Digital[I], O synsim.Digital[O], SA synsim.Digital[SA], SB synsim.Digital[SB]](
	t *testing.T, a synsim.Synchronous[I, O, SA], b synsim.Synchronous[I, O, SB], inputs []I, resetHold int,
) {
	t.Helper()

	events := synsim.ClockPosEdge(inputs, resetHold, comparePeriod)
	sa := synsim.Sample(synsim.Run(a, events))
	sb := synsim.Sample(synsim.Run(b, events))
	if len(sa) != len(sb) {
		t.Fatalf("sample count mismatch: %d != %d", len(sa), len(sb))
	}
	for i := range sa {
		if !synsim.Equal(sa[i], sb[i]) {
			t.Fatalf("cycle %d (input %+v): outputs diverge: %v != %v",
				i, events[i*synsim.PhasesPerCycle].In, sa[i], sb[i])
		}
	}
}

// CompareRandom runs Compare over n randomly generated inputs, preceded by
// one reset cycle. gen draws one input value from r.
func CompareRandom[I synsim.Digital[I], O synsim.Digital[O], SA synsim.Digital[SA], SB synsim.Digital[SB]](
	t *testing.T, a synsim.Synchronous[I, O, SA], b synsim.Synchronous[I, O, SB], gen func(r *rand.Rand) I, n int,
) {
	t.Helper()

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	inputs := make([]I, n)
	for i := range inputs {
		inputs[i] = gen(r)
	}
	Compare(t, a, b, inputs, 1)
}
