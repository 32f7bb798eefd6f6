// Copyright 2024 The synsim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package synsim

// A Phase identifies one of the three samples within an expanded clock
// cycle. Each logical cycle expands to exactly Low, RisingEdge and
// HighLookahead, in that order.
type Phase uint8

const (
	// PhaseLow: clock low, the cycle's input is stable.
	PhaseLow Phase = iota
	// PhaseRisingEdge: clock high; the authoritative sample, at which a
	// unit observes its input and commits its next state.
	PhaseRisingEdge
	// PhaseHighLookahead: clock still high, input already advanced to the
	// next cycle's value. Models setup time ahead of the next edge.
	PhaseHighLookahead
)

func (p Phase) String() string {
	switch p {
	case PhaseLow:
		return "low"
	case PhaseRisingEdge:
		return "rising-edge"
	case PhaseHighLookahead:
		return "high-lookahead"
	default:
		return "invalid"
	}
}

// PhasesPerCycle is the number of samples one logical cycle expands to.
// Raw traces are indexed in multiples of it; see Sample.
const PhasesPerCycle = 3

// MinPeriod is the smallest usable clock period. ClockPosEdge clamps
// shorter periods so that the three per-cycle timestamps stay distinct.
const MinPeriod = 4

// An Event is one timestamped sample produced by the clock/reset expander.
// Timestamps are strictly increasing; their unit carries no meaning beyond
// ordering.
type Event[I Digital[I]] struct {
	Time  uint64
	Phase Phase
	Clock bool
	Reset bool
	// In is the input visible at this sample. At PhaseHighLookahead it has
	// already advanced to the next cycle's input.
	In I
	// Next is the following cycle's input, valid only when HasNext is set.
	// The final cycle of a sequence has no lookahead.
	Next    I
	HasNext bool
}

// ClockReset returns the clock/reset pair for the event's tick.
func (e Event[I]) ClockReset() ClockReset {
	return ClockReset{Clock: e.Clock, Reset: e.Reset}
}

// ClockPosEdge expands a sequence of logical inputs into the event stream a
// sampled testbench observes. resetHold cycles with reset asserted and the
// input held at its reset value come first, followed by one cycle per
// input with reset released. Each cycle expands to PhasesPerCycle events,
// so the result holds exactly 3*(resetHold+len(inputs)) events; an empty
// input with no reset hold yields none.
//
// period is the clock period in timestamp units, clamped to MinPeriod. The
// low sample of cycle i sits at i*period, the rising edge half a period
// later, the lookahead sample another quarter period after that.
//
// The expansion is a pure function of its arguments: calling it again with
// the same values reproduces the stream bit for bit.
func ClockPosEdge[I Digital[I]](inputs []I, resetHold int, period uint64) []Event[I] {
	if resetHold < 0 {
		resetHold = 0
	}
	if period < MinPeriod {
		period = MinPeriod
	}
	cycles := resetHold + len(inputs)
	if cycles == 0 {
		return nil
	}

	var rst I
	if len(inputs) > 0 {
		rst = inputs[0].Reset()
	} else {
		var zero I
		rst = zero.Reset()
	}
	at := func(i int) I {
		if i < resetHold {
			return rst
		}
		return inputs[i-resetHold]
	}

	events := make([]Event[I], 0, cycles*PhasesPerCycle)
	for i := 0; i < cycles; i++ {
		var (
			next    I
			hasNext = i+1 < cycles
		)
		if hasNext {
			next = at(i + 1)
		}
		in, reset, base := at(i), i < resetHold, uint64(i)*period

		events = append(events,
			Event[I]{
				Time: base, Phase: PhaseLow,
				Reset: reset, In: in, Next: next, HasNext: hasNext,
			},
			Event[I]{
				Time: base + period/2, Phase: PhaseRisingEdge, Clock: true,
				Reset: reset, In: in, Next: next, HasNext: hasNext,
			})
		// the lookahead sample holds the final input when there is no next
		// cycle to advance to.
		la := in
		if hasNext {
			la = next
		}
		events = append(events, Event[I]{
			Time: base + period/2 + period/4, Phase: PhaseHighLookahead, Clock: true,
			Reset: reset, In: la, Next: next, HasNext: hasNext,
		})
	}
	return events
}
