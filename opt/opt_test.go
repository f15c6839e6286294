// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package opt

import (
	"testing"

	"github.com/go-air/ovl/cube"
)

func vars(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = string(rune('a' + i))
	}
	return labels
}

func coverOf(t *testing.T, arity int, rows ...string) *cube.Cover {
	t.Helper()
	c := cube.NewCover()
	for _, row := range rows {
		cb, err := cube.New(vars(arity), "out", row+" 1")
		if err != nil {
			t.Fatalf("cube.New(%q): %s", row, err)
		}
		c.Add(cb)
	}
	return c
}

// full optimize, 3-var.
func TestOptimizeThreeVariable(t *testing.T) {
	c := coverOf(t, 3, "010", "110", "111")
	got, err := Optimize(c)
	if err != nil {
		t.Fatal(err)
	}
	want := coverOf(t, 3, "-10", "11-")
	if !got.Equal(want) {
		t.Errorf("Optimize(%v) = %v, want %v", c.Slice(), got.Slice(), want.Slice())
	}
}

// no-reducible cover (XOR-like); each minterm is its
// own essential prime of cost 3.
func TestOptimizeNoReducibleCover(t *testing.T) {
	c := coverOf(t, 3, "000", "011", "110", "101")
	got, err := Optimize(c)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(c) {
		t.Errorf("Optimize(%v) = %v, want unchanged", c.Slice(), got.Slice())
	}
}

// cover-preservation of optimize.
func TestOptimizePreservesOnSet(t *testing.T) {
	cases := [][]string{
		{"010", "110", "111"},
		{"000", "011", "110", "101"},
		{"000", "001", "010", "011", "100", "101", "110", "111"},
	}
	for _, rows := range cases {
		c := coverOf(t, 3, rows...)
		got, err := Optimize(c)
		if err != nil {
			t.Fatal(err)
		}
		if !cube.OnSetEqual(c, got) {
			t.Errorf("Optimize(%v) = %v does not preserve ON-set", c.Slice(), got.Slice())
		}
	}
}

// determinism.
func TestOptimizeDeterministic(t *testing.T) {
	c := coverOf(t, 4, "0000", "0001", "0011", "0111", "1111", "1110", "1100", "1000")
	first, err := Optimize(c)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		got, err := Optimize(c)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(first) {
			t.Errorf("Optimize is non-deterministic: run %d = %v, want %v", i, got.Slice(), first.Slice())
		}
	}
}

// primality — no cube returned by PrimeImplicants is
// strictly covered by another distinct cube in the same set.
func TestPrimeImplicantsMaximal(t *testing.T) {
	c := coverOf(t, 4, "0000", "0001", "0011", "0111", "1111", "1110", "1100", "1000")
	primes := PrimeImplicants(c).Slice()
	for i, a := range primes {
		for j, b := range primes {
			if i == j {
				continue
			}
			ok, err := b.Covers(a)
			if err != nil {
				t.Fatal(err)
			}
			if ok {
				t.Errorf("prime %s is covered by distinct prime %s", a, b)
			}
		}
	}
}

// essential soundness — every essential prime covers a
// minterm no other prime covers.
func TestEssentialSoundness(t *testing.T) {
	c := coverOf(t, 3, "010", "110", "111")
	primes := PrimeImplicants(c)
	essentials := EssentialPrimes(primes).Slice()
	all := primes.Slice()
	for _, e := range essentials {
		unique := false
		for m := range e.Minterms() {
			coveredByOther := false
			for _, other := range all {
				if other.Equal(e) {
					continue
				}
				if _, ok := other.Minterms()[m]; ok {
					coveredByOther = true
					break
				}
			}
			if !coveredByOther {
				unique = true
				break
			}
		}
		if !unique {
			t.Errorf("essential prime %s has no uniquely-covered minterm", e)
		}
	}
}

func TestOptimizeConstantGate(t *testing.T) {
	c := cube.NewCover()
	cb, err := cube.New(nil, "out", "1")
	if err != nil {
		t.Fatal(err)
	}
	c.Add(cb)
	got, err := Optimize(c)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 || !cube.OnSetEqual(c, got) {
		t.Errorf("Optimize(constant) = %v, want unchanged constant cover", got.Slice())
	}
}
