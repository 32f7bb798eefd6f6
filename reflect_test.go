package synsim_test

import (
	"strings"
	"testing"

	sim "github.com/synsim/synsim"
)

func accEval(cr sim.ClockReset, in accInput, state sim.BitVector) (sim.BitVector, sim.BitVector) {
	if cr.Reset {
		return state.Reset(), state.Reset()
	}
	next := state
	if in.Fst {
		var err error
		if next, err = state.Add(in.Snd); err != nil {
			panic(err)
		}
	}
	return next, next
}

func TestMakeComponent(t *testing.T) {
	proto := accInput{Snd: sim.Width(8).Zero()}
	spec, err := sim.MakeComponent("acc8", accEval, proto, sim.Width(8).Zero())
	if err != nil {
		t.Fatal(err)
	}

	if spec.Name != "acc8" {
		t.Fatalf("name: got %q", spec.Name)
	}
	if spec.InputWidth != 9 || spec.OutputWidth != 8 || spec.StateWidth != 8 {
		t.Fatalf("widths: got in=%d out=%d state=%d", spec.InputWidth, spec.OutputWidth, spec.StateWidth)
	}

	state := spec.Init().(sim.BitVector)
	if state.Uint64() != 0 || state.Width() != 8 {
		t.Fatalf("Init: got %v", state)
	}

	out, next := spec.Step(sim.ClockReset{Clock: true},
		accInput{Fst: true, Snd: sim.MustBits(8, 5)}, state)
	if out.(sim.BitVector).Uint64() != 5 || next.(sim.BitVector).Uint64() != 5 {
		t.Fatalf("Step: got out=%v next=%v", out, next)
	}
}

func TestMakeComponent_shapeErrors(t *testing.T) {
	zero8 := sim.Width(8).Zero()
	proto := accInput{Snd: zero8}

	td := []struct {
		name   string
		fn     any
		reason string
	}{
		{"not_a_func", 42, "not a function"},
		{"too_few_args",
			func(in accInput, s sim.BitVector) (sim.BitVector, sim.BitVector) { return s, s },
			"signature must be"},
		{"too_many_results",
			func(cr sim.ClockReset, in accInput, s sim.BitVector) (sim.BitVector, sim.BitVector, error) {
				return s, s, nil
			},
			"signature must be"},
		{"missing_clock_reset",
			func(clk bool, in accInput, s sim.BitVector) (sim.BitVector, sim.BitVector) { return s, s },
			"first parameter must be ClockReset"},
		{"state_mismatch",
			func(cr sim.ClockReset, in accInput, s sim.BitVector) (sim.BitVector, sim.Bool) { return s, false },
			"next-state result types differ"},
		{"non_digital_input",
			func(cr sim.ClockReset, in int, s sim.BitVector) (sim.BitVector, sim.BitVector) { return s, s },
			"does not satisfy the Digital contract"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := sim.MakeComponent(d.name, d.fn, proto, zero8)
			if !sim.IsShape(err) {
				t.Fatalf("expected ShapeError, got %v", err)
			}
			if !strings.Contains(err.Error(), d.reason) {
				t.Fatalf("expected reason %q in %q", d.reason, err.Error())
			}
		})
	}

	// prototypes must match the validated parameter types.
	if _, err := sim.MakeComponent("acc8", accEval, zero8, zero8); !sim.IsShape(err) {
		t.Fatalf("input prototype: expected ShapeError, got %v", err)
	}
	if _, err := sim.MakeComponent("acc8", accEval, proto, sim.Bool(false)); !sim.IsShape(err) {
		t.Fatalf("reset prototype: expected ShapeError, got %v", err)
	}
}
