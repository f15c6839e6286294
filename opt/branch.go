// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package opt

import "github.com/go-air/ovl/cube"

// Optimize computes a minimum-cost cover of c's ON-set: the union of
// c's essential primes and a branch-and-bound selection over the
// remaining primes, per spec section 4.5. Optimize never fails on
// well-formed input; invariant violations in the underlying cube
// algebra panic rather than returning an error, since they indicate a
// bug rather than a recoverable state (spec section 7).
func Optimize(c *cube.Cover) (*cube.Cover, error) {
	primes := PrimeImplicants(c)
	essentials := EssentialPrimes(primes)
	nonEssential := cube.Minus(primes, essentials)

	need := subtractMinterms(c.Minterms(), essentials.Minterms())
	reduceDominance(nonEssential, need)

	chosen := branch(need, nonEssential.Slice())

	result := cube.NewCover()
	for _, e := range essentials.Slice() {
		result.Add(e)
	}
	for _, c := range chosen {
		result.Add(c)
	}
	return result, nil
}

// reduceDominance implements dominance reduction step 5 of spec section
// 4.5: for each ordered pair (a, b) of distinct cubes in options, if
// cost(a) > cost(b) and the portion of a's minterms still needed is a
// subset of b's minterms, a is redundant and is removed.
//
// The subset test uses need, not the full minterm set of a - preserving
// this distinction is the resolution of the Open Question in spec
// section 9: minterms of a already covered by an essential prime don't
// have to be re-covered by b for a to be safely dropped.
func reduceDominance(options *cube.Cover, need map[int]struct{}) {
	slice := options.Slice()
	var redundant []cube.Cube
	for i := range slice {
		for j := range slice {
			if i == j {
				continue
			}
			a, b := slice[i], slice[j]
			if a.Equal(b) || a.Cost() <= b.Cost() {
				continue
			}
			aNeeded := intersectMinterms(a.Minterms(), need)
			if isSubsetMinterms(aNeeded, b.Minterms()) {
				redundant = append(redundant, a)
			}
		}
	}
	for _, a := range redundant {
		options.Remove(a)
	}
}

// branch is the outer commit loop of spec section 4.5: it walks a
// snapshot of options in order, greedily locking in any cube that
// branchHelper's probe concludes belongs in the minimum-cost cover.
func branch(need map[int]struct{}, options []cube.Cube) []cube.Cube {
	snapshot := append([]cube.Cube(nil), options...)
	opts := append([]cube.Cube(nil), options...)
	var chosen []cube.Cube
	for _, p := range snapshot {
		decision := branchHelper(need, opts, p)
		if containsCube(decision, p) {
			chosen = append(chosen, p)
			need = subtractMinterms(need, p.Minterms())
			opts = removeCube(opts, p)
		}
	}
	return chosen
}

// branchHelper is the recursive include-vs-exclude probe of spec
// section 4.5. options is filtered down to the cubes still relevant to
// need before splitting on p; the pivot for each recursive call is the
// first remaining option in canonical order, chosen only to shape
// exploration, not correctness, per spec section 4.5's design note.
func branchHelper(need map[int]struct{}, options []cube.Cube, p cube.Cube) []cube.Cube {
	options = filterIntersecting(options, need)
	if len(options) == 0 {
		return nil
	}
	rest := removeCube(options, p)
	var pivot cube.Cube
	if len(rest) > 0 {
		pivot = rest[0]
	}
	withP := append(branchHelper(subtractMinterms(need, p.Minterms()), rest, pivot), p)
	withoutP := branchHelper(need, rest, pivot)
	if cost(withoutP) < cost(withP) && isSuperset(unionMinterms(withoutP), need) {
		return withoutP
	}
	return withP
}

func cost(cubes []cube.Cube) int {
	total := len(cubes)
	for _, c := range cubes {
		total += c.Cost()
	}
	return total
}

func containsCube(cubes []cube.Cube, p cube.Cube) bool {
	for _, c := range cubes {
		if c.Equal(p) {
			return true
		}
	}
	return false
}

func removeCube(cubes []cube.Cube, p cube.Cube) []cube.Cube {
	out := make([]cube.Cube, 0, len(cubes))
	for _, c := range cubes {
		if !c.Equal(p) {
			out = append(out, c)
		}
	}
	return out
}

func filterIntersecting(cubes []cube.Cube, need map[int]struct{}) []cube.Cube {
	out := make([]cube.Cube, 0, len(cubes))
	for _, c := range cubes {
		if intersectsMinterms(c.Minterms(), need) {
			out = append(out, c)
		}
	}
	return out
}

func unionMinterms(cubes []cube.Cube) map[int]struct{} {
	out := map[int]struct{}{}
	for _, c := range cubes {
		for m := range c.Minterms() {
			out[m] = struct{}{}
		}
	}
	return out
}

func intersectsMinterms(a, b map[int]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for m := range a {
		if _, ok := b[m]; ok {
			return true
		}
	}
	return false
}

func intersectMinterms(a, b map[int]struct{}) map[int]struct{} {
	small, big := a, b
	if len(a) > len(b) {
		small, big = b, a
	}
	out := map[int]struct{}{}
	for m := range small {
		if _, ok := big[m]; ok {
			out[m] = struct{}{}
		}
	}
	return out
}

func subtractMinterms(a, b map[int]struct{}) map[int]struct{} {
	out := map[int]struct{}{}
	for m := range a {
		if _, ok := b[m]; !ok {
			out[m] = struct{}{}
		}
	}
	return out
}

func isSubsetMinterms(a, b map[int]struct{}) bool {
	for m := range a {
		if _, ok := b[m]; !ok {
			return false
		}
	}
	return true
}

func isSuperset(a, b map[int]struct{}) bool {
	return isSubsetMinterms(b, a)
}
