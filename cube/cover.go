// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cube

import "sort"

// Cover is an unordered set of cubes of identical input arity and output
// label. Cover hash-conses cubes by their shape key: Add is a no-op if
// an equal cube is already present, so a Cover never holds duplicate
// cubes and membership tests are O(1) amortized rather than O(n).
type Cover struct {
	cubes  []Cube
	strash map[string][]int // shape key -> indices into cubes with that key
}

// NewCover builds a Cover from the given cubes, deduplicating as it goes.
func NewCover(cubes ...Cube) *Cover {
	c := &Cover{strash: make(map[string][]int, len(cubes))}
	for _, cube := range cubes {
		c.Add(cube)
	}
	return c
}

// Add inserts cube into the cover if no equal cube is already present.
// It reports whether cube was newly added.
func (c *Cover) Add(cube Cube) bool {
	if cube.IsNull() {
		return false
	}
	k := cube.key()
	for _, i := range c.strash[k] {
		if c.cubes[i].Equal(cube) {
			return false
		}
	}
	idx := len(c.cubes)
	c.cubes = append(c.cubes, cube)
	c.strash[k] = append(c.strash[k], idx)
	return true
}

// Remove deletes cube from the cover if present, reporting whether it was
// found.
func (c *Cover) Remove(cube Cube) bool {
	k := cube.key()
	slots := c.strash[k]
	for si, i := range slots {
		if c.cubes[i].Equal(cube) {
			c.cubes = append(c.cubes[:i], c.cubes[i+1:]...)
			c.strash[k] = append(slots[:si], slots[si+1:]...)
			c.reindexFrom(i)
			return true
		}
	}
	return false
}

// reindexFrom repairs the strash after a cube is removed at position i,
// since every subsequent cube's index shifted down by one.
func (c *Cover) reindexFrom(i int) {
	for k, slots := range c.strash {
		for si, idx := range slots {
			if idx > i {
				slots[si] = idx - 1
			}
		}
		c.strash[k] = slots
	}
}

// Contains reports whether an equal cube is already in the cover.
func (c *Cover) Contains(cube Cube) bool {
	for _, i := range c.strash[cube.key()] {
		if c.cubes[i].Equal(cube) {
			return true
		}
	}
	return false
}

// Len returns the number of cubes in the cover.
func (c *Cover) Len() int {
	if c == nil {
		return 0
	}
	return len(c.cubes)
}

// Slice returns the cover's cubes in a canonical, deterministic order:
// lexicographic on each cube's input-bit string, per the reproducibility
// guidance of the design notes. The returned slice is a copy; mutating
// it does not affect the cover.
func (c *Cover) Slice() []Cube {
	if c == nil {
		return nil
	}
	out := make([]Cube, len(c.cubes))
	copy(out, c.cubes)
	sort.Slice(out, func(i, j int) bool {
		return out[i].key() < out[j].key()
	})
	return out
}

// Clone returns an independent copy of c.
func (c *Cover) Clone() *Cover {
	out := NewCover()
	for _, cb := range c.Slice() {
		out.Add(cb)
	}
	return out
}

// Cost is the cover cost of spec section 3: the number of cubes plus the
// sum of each cube's literal count. The constant |cover| term biases
// toward fewer cubes and must be preserved verbatim for the branching
// optimizer's tie-breaks.
func (c *Cover) Cost() int {
	if c == nil {
		return 0
	}
	total := len(c.cubes)
	for _, cb := range c.cubes {
		total += cb.Cost()
	}
	return total
}

// Minterms is the ON-set of c: the union of the minterm sets of its
// cubes.
func (c *Cover) Minterms() map[int]struct{} {
	out := map[int]struct{}{}
	if c == nil {
		return out
	}
	for _, cb := range c.cubes {
		for m := range cb.Minterms() {
			out[m] = struct{}{}
		}
	}
	return out
}

// Equal reports whether c and o contain exactly the same set of distinct
// cubes (not just the same ON-set). This is the notion of equality used
// by the prime-implicant fixed-point loop (spec section 4.3), where S ==
// prev must mean "no cube was added or removed", not merely "same
// minterms".
func (c *Cover) Equal(o *Cover) bool {
	if c.Len() != o.Len() {
		return false
	}
	for _, cb := range c.Slice() {
		if !o.Contains(cb) {
			return false
		}
	}
	return true
}

// OnSetEqual reports whether a and b cover the same minterms, the
// semantic notion of "equivalent covers" from the data model (spec
// section 3), used to verify cover-preservation of optimize.
func OnSetEqual(a, b *Cover) bool {
	am, bm := a.Minterms(), b.Minterms()
	if len(am) != len(bm) {
		return false
	}
	for m := range am {
		if _, ok := bm[m]; !ok {
			return false
		}
	}
	return true
}

// Union returns a new cover containing every cube of a and b.
func Union(a, b *Cover) *Cover {
	out := NewCover()
	for _, cb := range a.Slice() {
		out.Add(cb)
	}
	for _, cb := range b.Slice() {
		out.Add(cb)
	}
	return out
}

// Minus returns a new cover containing the cubes of a that are not in b.
func Minus(a, b *Cover) *Cover {
	out := NewCover()
	for _, cb := range a.Slice() {
		if !b.Contains(cb) {
			out.Add(cb)
		}
	}
	return out
}
