// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package model holds the container types produced by blif.Parse and
// consumed by opt.Optimize and blif.Write: a whole logic design (Model)
// made up of combinational gates, each with its own ON-set cover.
//
// Model owns the whole design (inputs, outputs, and per-output
// substructures) and is the unit of I/O and of transformation.
package model

import (
	"fmt"

	"github.com/go-air/ovl/cube"
	"github.com/go-air/ovl/opt"
)

// Gate is a single combinational output: its input labels (in
// declaration order), its output label, and its ON-set cover.
type Gate struct {
	Inputs []string
	Output string
	Cover  *cube.Cover
}

// Model is a whole BLIF design: a name, ordered input and output
// labels, the gates driving each output, and the latch/clock directive
// tokens carried opaquely (sequential behavior is not analyzed or
// optimized; the tokens are preserved verbatim so that serialization
// round-trips them unchanged).
type Model struct {
	Name    string
	Inputs  []string
	Outputs []string
	Gates   []*Gate
	Latches [][]string
	Clocks  [][]string
}

// New returns an empty model with the given name.
func New(name string) *Model {
	return &Model{Name: name}
}

// Gate looks up the gate driving the given output label.
func (m *Model) Gate(output string) (*Gate, bool) {
	for _, g := range m.Gates {
		if g.Output == output {
			return g, true
		}
	}
	return nil, false
}

// OptimizeAll replaces every gate's cover with opt.Optimize applied to
// its current cover. It stops at the first algebra error, leaving
// already-processed gates optimized and the rest untouched.
func (m *Model) OptimizeAll() error {
	for _, g := range m.Gates {
		optimized, err := opt.Optimize(g.Cover)
		if err != nil {
			return fmt.Errorf("model: optimizing gate %q: %w", g.Output, err)
		}
		g.Cover = optimized
	}
	return nil
}
