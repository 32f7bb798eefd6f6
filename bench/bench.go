// Copyright 2024 The synsim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package bench loads YAML testbench descriptions and runs them against
// synchronous components.
//
// A testbench file names the run, the reset-hold count, the clock period
// and the input sequence as sized bit-vector literals:
//
//	name: accumulator smoke
//	reset_hold: 1
//	period: 100
//	inputs: ["8'd1", "8'd2", "8'd3"]
package bench

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/synsim/synsim"
)

// A Bench is one testbench description.
type Bench struct {
	Name      string   `yaml:"name"`
	ResetHold int      `yaml:"reset_hold"`
	Period    uint64   `yaml:"period"`
	Inputs    []string `yaml:"inputs"`

	inputs []synsim.BitVector
}

// Load reads a YAML testbench description from r. Unknown fields are
// rejected, input literals are parsed eagerly and must all share one
// width.
func Load(r io.Reader) (*Bench, error) {
	var b Bench
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		return nil, errors.Wrap(err, "decode testbench")
	}
	if b.ResetHold < 0 {
		return nil, errors.Errorf("testbench %q: negative reset_hold %d", b.Name, b.ResetHold)
	}
	b.inputs = make([]synsim.BitVector, len(b.Inputs))
	for i, s := range b.Inputs {
		v, err := synsim.ParseLit(s)
		if err != nil {
			return nil, errors.Wrapf(err, "testbench %q: input %d", b.Name, i)
		}
		b.inputs[i] = v
	}
	for i := 1; i < len(b.inputs); i++ {
		if b.inputs[i].Width() != b.inputs[0].Width() {
			return nil, errors.Wrapf(
				&synsim.WidthMismatchError{Op: "testbench inputs", A: b.inputs[0].Width(), B: b.inputs[i].Width()},
				"testbench %q: input %d", b.Name, i)
		}
	}
	return &b, nil
}

// InputVectors returns the parsed input sequence.
func (b *Bench) InputVectors() []synsim.BitVector {
	return b.inputs
}

// Run executes the bench against m and returns one sampled output per
// cycle: b.ResetHold reset cycles followed by one cycle per input.
func Run[O synsim.Digital[O], S synsim.Digital[S]](b *Bench, m synsim.Synchronous[synsim.BitVector, O, S]) []O {
	start := time.Now()
	events := synsim.ClockPosEdge(b.inputs, b.ResetHold, b.Period)
	outs := synsim.Sample(synsim.Run(m, events))
	Logger().Info("bench run",
		zap.String("bench", b.Name),
		zap.String("run_id", uuid.NewString()),
		zap.Int("reset_hold", b.ResetHold),
		zap.Int("events", len(events)),
		zap.Int("cycles", len(outs)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return outs
}
