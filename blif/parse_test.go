// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package blif

import (
	"errors"
	"strings"
	"testing"
)

const sample = `.model top
.inputs a b c
.outputs f
.names a b c f
010 1
110 1
111 1
.end
`

func TestParseBasic(t *testing.T) {
	m, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "top" {
		t.Errorf("Name = %q, want top", m.Name)
	}
	if len(m.Inputs) != 3 || len(m.Outputs) != 1 {
		t.Errorf("Inputs/Outputs = %v/%v", m.Inputs, m.Outputs)
	}
	g, ok := m.Gate("f")
	if !ok {
		t.Fatal("gate f not found")
	}
	if g.Cover.Len() != 3 {
		t.Errorf("gate f cover has %d cubes, want 3", g.Cover.Len())
	}
}

func TestParseConstantGate(t *testing.T) {
	src := ".model top\n.inputs\n.outputs f\n.names f\n1\n.end\n"
	m, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	g, ok := m.Gate("f")
	if !ok || g.Cover.Len() != 1 {
		t.Fatalf("Gate(f) = %v, %v", g, ok)
	}
}

func TestParseRowOutsideNamesIsError(t *testing.T) {
	src := ".model top\n.inputs a\n.outputs f\n010 1\n.end\n"
	_, err := Parse(strings.NewReader(src))
	if !errors.Is(err, ErrRowOutsideNames) {
		t.Errorf("Parse error = %v, want %v", err, ErrRowOutsideNames)
	}
}

func TestParseUnknownDirective(t *testing.T) {
	src := ".model top\n.bogus x\n.end\n"
	_, err := Parse(strings.NewReader(src))
	if !errors.Is(err, ErrUnknownDirective) {
		t.Errorf("Parse error = %v, want %v", err, ErrUnknownDirective)
	}
}

func TestParseStopsAtEnd(t *testing.T) {
	src := sample + "garbage that would be a parse error if reached\n"
	if _, err := Parse(strings.NewReader(src)); err != nil {
		t.Fatalf("Parse should stop at .end, got error: %s", err)
	}
}

func TestParseLatchAndClockPreserved(t *testing.T) {
	src := ".model top\n.inputs a clk\n.outputs q\n.latch a q re clk 0\n.clock clk\n.end\n"
	m, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Latches) != 1 || len(m.Clocks) != 1 {
		t.Fatalf("Latches/Clocks = %v/%v", m.Latches, m.Clocks)
	}
}
