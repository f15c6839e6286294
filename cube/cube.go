// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cube

import (
	"fmt"
	"strings"
)

// Cube is an ordered sequence of input bits plus a single output bit,
// representing a product term.  Cubes are immutable value types: equality
// and hashing depend only on the bit-value sequence and the output bit's
// value, never on labels.
//
// A null cube (Null()) represents the empty product, the result of a
// subtractive operation (Sharp) that eliminated every minterm of its
// operand.  Calling Cost or Minterms on a null cube is an implementation
// error and panics; Covers returns an error instead.
type Cube struct {
	Inputs []Bit
	Output Bit
	isNull bool
}

// New builds a cube over the given input labels and output label from a
// bit string.  bits is either "<word> <obit>" (space-separated input word
// and output bit) or a single token "<obit>" when inputLabels is empty
// (constant gate).
func New(inputLabels []string, outputLabel string, bits string) (Cube, error) {
	fields := strings.Fields(bits)
	var word, obit string
	if len(inputLabels) == 0 {
		if len(fields) != 1 {
			return Cube{}, fmt.Errorf("cube: constant cube requires exactly one token, got %q", bits)
		}
		obit = fields[0]
	} else {
		if len(fields) != 2 {
			return Cube{}, fmt.Errorf("cube: expected \"<word> <obit>\", got %q", bits)
		}
		word, obit = fields[0], fields[1]
	}
	if len(word) != len(inputLabels) {
		return Cube{}, fmt.Errorf("cube: input word length %d does not match %d input labels", len(word), len(inputLabels))
	}
	if len(obit) != 1 {
		return Cube{}, fmt.Errorf("cube: output bit must be a single character, got %q", obit)
	}
	ov, err := charValue(rune(obit[0]))
	if err != nil {
		return Cube{}, fmt.Errorf("cube: invalid output bit: %w", err)
	}
	if ov == DC {
		return Cube{}, fmt.Errorf("cube: output bit cannot be don't-care")
	}
	inputs := make([]Bit, len(inputLabels))
	for i, ch := range word {
		v, err := charValue(ch)
		if err != nil {
			return Cube{}, fmt.Errorf("cube: input position %d: %w", i, err)
		}
		inputs[i] = Bit{Value: v, Kind: Input, Label: inputLabels[i]}
	}
	return Cube{Inputs: inputs, Output: Bit{Value: ov, Kind: Output, Label: outputLabel}}, nil
}

// Null returns the distinguished empty cube: no inputs, no output label,
// and IsNull() true.  A null cube covers no minterms.
func Null() Cube {
	return Cube{isNull: true}
}

// IsNull reports whether c is the empty cube produced by a subtractive
// operation that eliminated every minterm of its operand.
func (c Cube) IsNull() bool {
	return c.isNull
}

// Arity returns the number of input positions.
func (c Cube) Arity() int {
	return len(c.Inputs)
}

// Covers reports whether every minterm of other is also a minterm of c:
// for every position i, either c[i] == other[i] or c[i] is DC.  The
// output bit is not compared.  Covers returns an error if c and other
// have different arity, or if either is null.
func (c Cube) Covers(other Cube) (bool, error) {
	if c.isNull || other.isNull {
		return false, fmt.Errorf("cube: Covers is undefined on a null cube")
	}
	if len(c.Inputs) != len(other.Inputs) {
		return false, fmt.Errorf("cube: Covers arity mismatch %d != %d", len(c.Inputs), len(other.Inputs))
	}
	for i := range c.Inputs {
		if c.Inputs[i].Value == DC {
			continue
		}
		if c.Inputs[i].Value != other.Inputs[i].Value {
			return false, nil
		}
	}
	return true, nil
}

// Minterms enumerates the minterms of c by expanding each DC position to
// both 0 and 1.  Bit ordering is big-endian: Inputs[0] contributes the
// most-significant digit.  Minterms panics if c is null.
func (c Cube) Minterms() map[int]struct{} {
	if c.isNull {
		panic("cube: Minterms called on a null cube")
	}
	n := len(c.Inputs)
	base := 0
	var dcShifts []uint
	for i, b := range c.Inputs {
		shift := uint(n - 1 - i)
		switch b.Value {
		case On:
			base |= 1 << shift
		case DC:
			dcShifts = append(dcShifts, shift)
		}
	}
	k := len(dcShifts)
	result := make(map[int]struct{}, 1<<uint(k))
	for mask := 0; mask < (1 << uint(k)); mask++ {
		m := base
		for j, shift := range dcShifts {
			if mask&(1<<uint(j)) != 0 {
				m |= 1 << shift
			}
		}
		result[m] = struct{}{}
	}
	return result
}

// Cost is the literal count of c: the number of fixed (non-DC) input
// positions.  Cost panics if c is null.
func (c Cube) Cost() int {
	if c.isNull {
		panic("cube: Cost called on a null cube")
	}
	dc := 0
	for _, b := range c.Inputs {
		if b.Value == DC {
			dc++
		}
	}
	return len(c.Inputs) - dc
}

// Equal compares two cubes by input-bit sequence and output bit,
// ignoring labels, per the data model's equality invariant.
func (a Cube) Equal(b Cube) bool {
	if a.isNull || b.isNull {
		return a.isNull == b.isNull
	}
	if len(a.Inputs) != len(b.Inputs) {
		return false
	}
	for i := range a.Inputs {
		if !a.Inputs[i].Equal(b.Inputs[i]) {
			return false
		}
	}
	return a.Output.Equal(b.Output)
}

// key returns a string uniquely determined by a cube's (Value, Kind)
// shape, suitable for use as a hash-consing key in Cover's strash. Two
// cubes have equal keys iff Equal reports true.
func (c Cube) key() string {
	if c.isNull {
		return "N"
	}
	var sb strings.Builder
	sb.Grow(len(c.Inputs) + 2)
	for _, b := range c.Inputs {
		sb.WriteByte(valueChar(b.Value))
	}
	sb.WriteByte('|')
	sb.WriteByte(valueChar(c.Output.Value))
	return sb.String()
}

// String renders c in BLIF cube-row form: input word, a space, output bit.
func (c Cube) String() string {
	if c.isNull {
		return "<null>"
	}
	var sb strings.Builder
	for _, b := range c.Inputs {
		sb.WriteByte(valueChar(b.Value))
	}
	if len(c.Inputs) > 0 {
		sb.WriteByte(' ')
	}
	sb.WriteByte(valueChar(c.Output.Value))
	return sb.String()
}

func charValue(ch rune) (Value, error) {
	switch ch {
	case '0':
		return Off, nil
	case '1':
		return On, nil
	case '-':
		return DC, nil
	default:
		return 0, fmt.Errorf("invalid bit char %q", ch)
	}
}

func valueChar(v Value) byte {
	switch v {
	case Off:
		return '0'
	case On:
		return '1'
	case DC:
		return '-'
	default:
		panic(fmt.Sprintf("cube: value %s has no persisted char form", v))
	}
}
