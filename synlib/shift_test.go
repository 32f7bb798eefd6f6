package synlib_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sim "github.com/synsim/synsim"
	"github.com/synsim/synsim/synlib"
)

func TestShiftIn_serialToParallel(t *testing.T) {
	sr := synlib.NewShiftIn(4)

	// shift in 1,0,1,1 then hold while disabled.
	inputs := []synlib.SerialIn{
		{Enable: true, Data: true},
		{Enable: true, Data: false},
		{Enable: true, Data: true},
		{Enable: true, Data: true},
		{Enable: false, Data: true}, // disabled: register holds 0b1011
	}
	got := sim.RunSampled(sr, inputs, 1, 100)

	require.Equal(t, []uint64{0, 0, 1, 2, 5, 11}, magnitudes(got))
}

func TestShiftIn_wraps(t *testing.T) {
	sr := synlib.NewShiftIn(4)

	// five enabled ones overflow a 4 bit register: the oldest bit drops.
	inputs := make([]synlib.SerialIn, 5)
	for i := range inputs {
		inputs[i] = synlib.SerialIn{Enable: true, Data: true}
	}
	got := sim.RunSampled(sr, inputs, 0, 100)

	require.Equal(t, []uint64{0, 1, 3, 7, 15}, magnitudes(got))
}

func TestShiftOut_parallelToSerial(t *testing.T) {
	so := synlib.NewShiftOut(8)

	inputs := []synlib.ShiftOutIn{
		{Load: true, Data: sim.MustBits(8, 0xA5)},
	}
	for i := 0; i < 8; i++ {
		inputs = append(inputs, synlib.ShiftOutIn{Enable: true, Data: sim.Width(8).Zero()})
	}
	got := sim.RunSampled(so, inputs, 1, 100)

	// reset cycle, load cycle, then 0xA5 = 0b10100101 msb first.
	want := []sim.Bool{
		false, false,
		true, false, true, false, false, true, false, true,
	}
	require.Equal(t, want, got)
}

func TestShiftOut_hold(t *testing.T) {
	so := synlib.NewShiftOut(4)

	inputs := []synlib.ShiftOutIn{
		{Load: true, Data: sim.MustBits(4, 0b1000)},
		{Data: sim.Width(4).Zero()}, // neither load nor enable: hold
		{Data: sim.Width(4).Zero()},
	}
	got := sim.RunSampled(so, inputs, 0, 100)

	require.Equal(t, []sim.Bool{false, true, true}, got)
}
