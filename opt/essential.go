// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package opt

import (
	"fmt"

	"github.com/go-air/ovl/cube"
)

// EssentialPrimes identifies the essential primes of p: a prime is
// essential iff, after cascaded sharp against every other prime, some
// non-null remainder survives, i.e. the prime covers at least one
// minterm no other prime covers. See spec section 4.4.
func EssentialPrimes(p *cube.Cover) *cube.Cover {
	essential := cube.NewCover()
	primes := p.Slice()
	for _, candidate := range primes {
		remainder := []cube.Cube{candidate}
		for _, other := range primes {
			if other.Equal(candidate) {
				continue
			}
			remainder = sharpAll(remainder, other)
			if len(remainder) == 0 {
				break
			}
		}
		if len(remainder) > 0 {
			essential.Add(candidate)
		}
	}
	return essential
}

// sharpAll is the "flatten" operation of spec section 4.4: it applies
// Sharp(r, q) to every r in rs and unions the non-null results.
func sharpAll(rs []cube.Cube, q cube.Cube) []cube.Cube {
	var out []cube.Cube
	for _, r := range rs {
		diffs, err := cube.Sharp(r, q)
		if err != nil {
			panic(fmt.Sprintf("opt: EssentialPrimes: %s", err))
		}
		for _, d := range diffs {
			if !d.IsNull() {
				out = append(out, d)
			}
		}
	}
	return out
}
