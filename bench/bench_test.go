package bench_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	sim "github.com/synsim/synsim"
	"github.com/synsim/synsim/bench"
	"github.com/synsim/synsim/synlib"
)

const accBench = `
name: accumulator smoke
reset_hold: 1
period: 100
inputs: ["8'd1", "8'd2", "8'd3"]
`

func TestLoad(t *testing.T) {
	b, err := bench.Load(strings.NewReader(accBench))
	require.NoError(t, err)

	require.Equal(t, "accumulator smoke", b.Name)
	require.Equal(t, 1, b.ResetHold)
	require.Equal(t, uint64(100), b.Period)

	in := b.InputVectors()
	require.Len(t, in, 3)
	for i, want := range []uint64{1, 2, 3} {
		require.Equal(t, sim.Width(8), in[i].Width())
		require.Equal(t, want, in[i].Uint64())
	}
}

func TestLoad_errors(t *testing.T) {
	td := []struct {
		name string
		yaml string
	}{
		{"unknown_field", "name: x\nfrequency: 10\n"},
		{"bad_literal", `inputs: ["8'x12"]`},
		{"out_of_range", `inputs: ["4'd16"]`},
		{"mixed_widths", `inputs: ["8'd1", "4'd2"]`},
		{"negative_reset_hold", "reset_hold: -1\n"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := bench.Load(strings.NewReader(d.yaml))
			require.Error(t, err)
		})
	}

	// typed causes survive the wrapping.
	_, err := bench.Load(strings.NewReader(`inputs: ["4'd16"]`))
	require.True(t, sim.IsRange(err))
	_, err = bench.Load(strings.NewReader(`inputs: ["8'd1", "4'd2"]`))
	require.True(t, sim.IsWidthMismatch(err))
}

func TestRun_accumulator(t *testing.T) {
	bench.SetLogger(zaptest.NewLogger(t))

	b, err := bench.Load(strings.NewReader(accBench))
	require.NoError(t, err)

	// adapt the accumulator's pair input: the bench drives plain
	// bit-vector sequences, enable is tied high.
	acc := synlib.NewAccumulator(8)
	unit := sim.SynchronousOf(sim.Width(8).Zero(),
		func(cr sim.ClockReset, in sim.BitVector, state sim.BitVector) (sim.BitVector, sim.BitVector) {
			return acc.Eval(cr, synlib.AccIn{Fst: true, Snd: in}, state)
		})

	got := bench.Run(b, unit)
	require.Len(t, got, 4)
	for i, want := range []uint64{0, 1, 3, 6} {
		require.Equal(t, want, got[i].Uint64())
	}
}
