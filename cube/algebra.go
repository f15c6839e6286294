// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cube

import "fmt"

// Star computes the star product a * b: the largest common subcube of a
// and b, position-wise, promoting a single disagreement to DC.  Star is
// commutative and idempotent on non-null cubes.  If a and b disagree at
// more than one position, Star returns Null(), nil.  Star returns an
// error if a and b have different arity, either is null, or either
// carries an Epsilon or Null bit (an algebra precondition violation).
func Star(a, b Cube) (Cube, error) {
	if err := checkOperands(a, b); err != nil {
		return Cube{}, err
	}
	n := len(a.Inputs)
	vals := make([]Value, n)
	nCount := 0
	for i := 0; i < n; i++ {
		r := starOf(a.Inputs[i].Value, b.Inputs[i].Value)
		if r == nullValue {
			nCount++
		}
		vals[i] = r
	}
	if nCount > 1 {
		return Null(), nil
	}
	inputs := make([]Bit, n)
	for i := 0; i < n; i++ {
		v := vals[i]
		if v == nullValue {
			v = DC
		}
		inputs[i] = Bit{Value: v, Kind: Input, Label: a.Inputs[i].Label}
	}
	return Cube{Inputs: inputs, Output: Bit{Value: On, Kind: Output, Label: a.Output.Label}}, nil
}

// Sharp computes the sharp difference a # b: the set of cubes covering
// exactly the minterms of a not covered by b.  Sharp returns the same
// preconditions errors as Star.
func Sharp(a, b Cube) ([]Cube, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	n := len(a.Inputs)
	anyNull := false
	allEpsilon := true
	for i := 0; i < n; i++ {
		r := sharpOf(a.Inputs[i].Value, b.Inputs[i].Value)
		if r == nullValue {
			anyNull = true
		}
		if r != Epsilon {
			allEpsilon = false
		}
	}
	if anyNull {
		return []Cube{a}, nil
	}
	if allEpsilon {
		return []Cube{Null()}, nil
	}
	var result []Cube
	for i := 0; i < n; i++ {
		ai := a.Inputs[i].Value
		bi := b.Inputs[i].Value
		if ai != DC || bi == DC {
			continue
		}
		comp := On
		if bi == On {
			comp = Off
		}
		inputs := make([]Bit, n)
		copy(inputs, a.Inputs)
		inputs[i] = Bit{Value: comp, Kind: Input, Label: a.Inputs[i].Label}
		result = append(result, Cube{Inputs: inputs, Output: Bit{Value: On, Kind: Output, Label: a.Output.Label}})
	}
	return result, nil
}

func checkOperands(a, b Cube) error {
	if a.isNull || b.isNull {
		return fmt.Errorf("cube: algebra operand is the null cube")
	}
	if len(a.Inputs) != len(b.Inputs) {
		return fmt.Errorf("cube: algebra arity mismatch %d != %d", len(a.Inputs), len(b.Inputs))
	}
	if err := checkPersisted(a); err != nil {
		return err
	}
	return checkPersisted(b)
}

func checkPersisted(c Cube) error {
	for i, b := range c.Inputs {
		if !b.Value.valid() {
			return fmt.Errorf("cube: algebra operand has non-persisted value %s at position %d", b.Value, i)
		}
	}
	return nil
}

// starOf is one entry of the STAR table of spec section 4.2.
func starOf(a, b Value) Value {
	switch {
	case a == DC && b == DC:
		return DC
	case a == DC:
		return b
	case b == DC:
		return a
	case a == b:
		return a
	default:
		return nullValue
	}
}

// sharpOf is one entry of the SHARP table of spec section 4.2.
func sharpOf(a, b Value) Value {
	switch {
	case a == DC && b == DC:
		return Epsilon
	case a == DC:
		if b == On {
			return Off
		}
		return On
	case b == DC:
		return Epsilon
	case a == b:
		return Epsilon
	default:
		return nullValue
	}
}
