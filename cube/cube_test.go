// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cube

import (
	"reflect"
	"sort"
	"testing"
)

func vars(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = string(rune('a' + i))
	}
	return labels
}

func mustCube(t *testing.T, bits string, n int) Cube {
	t.Helper()
	c, err := New(vars(n), "out", bits)
	if err != nil {
		t.Fatalf("New(%q): %s", bits, err)
	}
	return c
}

func intKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// c = 0--01 over variables a..e yields {1, 5, 9, 13}.
func TestMintermsDontCareExpansion(t *testing.T) {
	c := mustCube(t, "0--01 1", 5)
	got := intKeys(c.Minterms())
	want := []int{1, 5, 9, 13}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Minterms() = %v, want %v", got, want)
	}
}

// Minterm boundaries: |minterms(c)| = 2^(#DC), cost(c) + #DC = arity.
func TestMintermAndCostBoundaries(t *testing.T) {
	cases := []string{"0--01 1", "0111 1", "---- 1", "01 0"}
	arities := []int{5, 4, 4, 2}
	for i, bits := range cases {
		c := mustCube(t, bits, arities[i])
		dc := 0
		for _, b := range c.Inputs {
			if b.Value == DC {
				dc++
			}
		}
		if got, want := len(c.Minterms()), 1<<uint(dc); got != want {
			t.Errorf("%q: len(Minterms()) = %d, want %d", bits, got, want)
		}
		if got, want := c.Cost()+dc, c.Arity(); got != want {
			t.Errorf("%q: Cost()+dc = %d, want arity %d", bits, got, want)
		}
	}
}

func TestCostOnNullPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Cost on null cube did not panic")
		}
	}()
	Null().Cost()
}

func TestMintermsOnNullPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Minterms on null cube did not panic")
		}
	}()
	Null().Minterms()
}

func TestCoversIgnoresOutput(t *testing.T) {
	a := mustCube(t, "1-0 1", 3)
	b := mustCube(t, "110 1", 3)
	ok, err := a.Covers(b)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Errorf("%s should cover %s", a, b)
	}
	ok, err = b.Covers(a)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Errorf("%s should not cover %s", b, a)
	}
}

func TestCoversArityMismatch(t *testing.T) {
	a := mustCube(t, "1-0 1", 3)
	b := mustCube(t, "10 1", 2)
	if _, err := a.Covers(b); err == nil {
		t.Fatal("expected arity mismatch error")
	}
}

func TestEqualityIgnoresLabels(t *testing.T) {
	a, err := New([]string{"x", "y"}, "f", "1- 1")
	if err != nil {
		t.Fatal(err)
	}
	b, err := New([]string{"p", "q"}, "g", "1- 1")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("cubes with renamed labels should compare equal: %s vs %s", a, b)
	}
}

func TestConstantCube(t *testing.T) {
	c, err := New(nil, "out", "1")
	if err != nil {
		t.Fatal(err)
	}
	if c.Arity() != 0 {
		t.Errorf("Arity() = %d, want 0", c.Arity())
	}
	ms := intKeys(c.Minterms())
	if !reflect.DeepEqual(ms, []int{0}) {
		t.Errorf("Minterms() = %v, want [0]", ms)
	}
}

func TestNewArityMismatch(t *testing.T) {
	if _, err := New(vars(3), "out", "10 1"); err == nil {
		t.Fatal("expected arity mismatch error")
	}
}
