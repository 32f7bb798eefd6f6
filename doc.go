/*
Package synsim provides clock-accurate simulation of synchronous digital
circuits with a type-safe value model.

Values crossing a component boundary implement the Digital contract: a
fixed bit width, an ordered bit encoding and a canonical reset instance.
BitVector is the workhorse implementation; Bool, Pair, Vec and Either
cover wires and composite signals. Width mismatches are rejected when
values are combined, never during stepping.

A stateful unit implements the Synchronous interface: an Init method
returning its reset state and a single pure evaluation function

	Eval(cr ClockReset, in I, state S) (O, S)

Output and next state are pure functions of input and current state; the
caller owns the state between calls.

Simulation is a synchronous pipeline. ClockPosEdge expands a sequence of
logical inputs and a reset-hold count into a timestamped event stream of
three samples per cycle; Run drives a unit over the stream, committing
state at rising edges; Sample collapses the raw trace back to one
authoritative output per cycle:

	acc := synlib.NewAccumulator(8)
	outs := synsim.RunSampled(acc, inputs, 1, 100)

Package synlib holds ready-made components, package syntest comparison
helpers for tests, and package bench a YAML testbench runner.
*/
package synsim
