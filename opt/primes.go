// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package opt

import (
	"fmt"

	"github.com/go-air/ovl/cube"
)

// PrimeImplicants computes the set of prime implicants of c by repeated
// starring followed by dominance cleanup, per spec section 4.3. The
// result is the fixed point of: star every pair of cubes, add any
// non-null products, then discard any cube strictly covered by another
// distinct cube, until the set stops changing.
//
// Termination is guaranteed by the dominance cleanup bounding the set to
// at most 3^n distinct cubes over an n-bit input word.
func PrimeImplicants(c *cube.Cover) *cube.Cover {
	s := c.Clone()
	for {
		prev := s.Clone()
		slice := prev.Slice()
		for i := 0; i < len(slice); i++ {
			for j := i + 1; j < len(slice); j++ {
				p, err := cube.Star(slice[i], slice[j])
				if err != nil {
					panic(fmt.Sprintf("opt: PrimeImplicants: %s", err))
				}
				if !p.IsNull() {
					s.Add(p)
				}
			}
		}
		removeDominated(s)
		if s.Equal(prev) {
			return s
		}
	}
}

// removeDominated discards any cube in s that is strictly covered by
// another, distinct cube also in s, per the dominance cleanup step of
// spec section 4.3.
func removeDominated(s *cube.Cover) {
	slice := s.Slice()
	var dominated []cube.Cube
	for i := range slice {
		for j := range slice {
			if i == j {
				continue
			}
			a, b := slice[i], slice[j]
			if a.Equal(b) {
				continue
			}
			ok, err := a.Covers(b)
			if err != nil {
				panic(fmt.Sprintf("opt: PrimeImplicants: %s", err))
			}
			if ok {
				dominated = append(dominated, b)
			}
		}
	}
	for _, b := range dominated {
		s.Remove(b)
	}
}
