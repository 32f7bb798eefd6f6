package syntest_test

import (
	"math/rand"
	"testing"

	sim "github.com/synsim/synsim"
	"github.com/synsim/synsim/synlib"
	"github.com/synsim/synsim/syntest"
)

// a behavioural counter model to check the library one against.
func refCounter(w sim.Width) sim.Synchronous[sim.Bool, sim.BitVector, sim.BitVector] {
	return sim.SynchronousOf(w.Zero(),
		func(cr sim.ClockReset, enable sim.Bool, state sim.BitVector) (sim.BitVector, sim.BitVector) {
			if cr.Reset {
				return w.Zero(), w.Zero()
			}
			next := state
			if enable {
				next = sim.MustBits(w, (state.Uint64()+1)&w.Max())
			}
			return state, next
		})
}

func TestCompare_counter(t *testing.T) {
	inputs := []sim.Bool{true, false, true, true, false, true, true, true}
	syntest.Compare(t, synlib.NewCounter(4), refCounter(4), inputs, 2)
}

func TestCompareRandom_counter(t *testing.T) {
	syntest.CompareRandom(t, synlib.NewCounter(6), refCounter(6),
		func(r *rand.Rand) sim.Bool { return sim.Bool(r.Intn(2) == 1) }, 256)
}
