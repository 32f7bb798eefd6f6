// Copyright 2024 The synsim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package synsim

// A TimedSample pairs an expander event with the output a unit produced
// for it. A run's trace holds PhasesPerCycle samples per logical cycle.
type TimedSample[I Digital[I], O Digital[O]] struct {
	Event Event[I]
	Out   O
}

// Run drives m over the event stream and returns the raw output trace.
// The unit is evaluated at every event; its next state is committed only at
// rising-edge samples, so the low and lookahead samples observe the state
// combinationally. Run is pure over its inputs: m holds no state of its
// own, and the caller-visible state lives entirely inside the run.
func Run[I Digital[I], O Digital[O], S Digital[S]](m Synchronous[I, O, S], events []Event[I]) []TimedSample[I, O] {
	state := m.Init()
	trace := make([]TimedSample[I, O], 0, len(events))
	for _, ev := range events {
		out, next := m.Eval(ev.ClockReset(), ev.In, state)
		trace = append(trace, TimedSample[I, O]{Event: ev, Out: out})
		if ev.Phase == PhaseRisingEdge {
			state = next
		}
	}
	return trace
}

// Sample reduces a raw trace to one authoritative output per logical
// cycle: the rising-edge sample, at trace index 3*i+1 for cycle i. The
// low and lookahead duplicates are discarded. This is the primary test
// interface; consuming the raw trace directly requires the caller to
// respect the PhasesPerCycle multiplier.
func Sample[I Digital[I], O Digital[O]](trace []TimedSample[I, O]) []O {
	out := make([]O, 0, len(trace)/PhasesPerCycle)
	for i := int(PhaseRisingEdge); i < len(trace); i += PhasesPerCycle {
		out = append(out, trace[i].Out)
	}
	return out
}

// RunSampled expands inputs, runs m over the events and samples the trace,
// returning one output per cycle: resetHold reset cycles first, then one
// per input.
func RunSampled[I Digital[I], O Digital[O], S Digital[S]](m Synchronous[I, O, S], inputs []I, resetHold int, period uint64) []O {
	return Sample(Run(m, ClockPosEdge(inputs, resetHold, period)))
}
