package synlib_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sim "github.com/synsim/synsim"
	"github.com/synsim/synsim/synlib"
)

func magnitudes(outs []sim.BitVector) []uint64 {
	vs := make([]uint64, len(outs))
	for i, o := range outs {
		vs[i] = o.Uint64()
	}
	return vs
}

func TestDFF_delaysByOneCycle(t *testing.T) {
	d := synlib.NewDFF(sim.Width(8).Zero())

	inputs := []sim.BitVector{sim.MustBits(8, 1), sim.MustBits(8, 2), sim.MustBits(8, 3)}
	got := sim.RunSampled(d, inputs, 0, 100)

	require.Equal(t, []uint64{0, 1, 2}, magnitudes(got))
}

func TestDFF_reset(t *testing.T) {
	d := synlib.NewDFF[sim.Bool](false)

	got := sim.RunSampled(d, []sim.Bool{true, false, true}, 1, 100)
	require.Equal(t, []sim.Bool{false, false, true, false}, got)
}

func TestRegister_loadEnable(t *testing.T) {
	reg := synlib.NewRegister(sim.Width(8).Zero())

	in := func(load bool, v uint64) sim.Pair[sim.Bool, sim.BitVector] {
		return sim.Pair[sim.Bool, sim.BitVector]{Fst: sim.Bool(load), Snd: sim.MustBits(8, v)}
	}
	inputs := []sim.Pair[sim.Bool, sim.BitVector]{
		in(true, 5),
		in(false, 9), // ignored: load not asserted
		in(true, 7),
		in(false, 0),
	}
	got := sim.RunSampled(reg, inputs, 1, 100)

	require.Equal(t, []uint64{0, 0, 5, 5, 7}, magnitudes(got))
}
