// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cube

// Value is a ternary symbol. On, Off, and DC are user-visible; Epsilon and
// nullValue only ever appear as transient results of the star and sharp
// operators (see algebra.go) and must never be part of a persisted cube.
type Value byte

const (
	Off Value = iota
	On
	DC
	Epsilon
	nullValue
)

func (v Value) String() string {
	switch v {
	case Off:
		return "0"
	case On:
		return "1"
	case DC:
		return "-"
	case Epsilon:
		return "E"
	case nullValue:
		return "N"
	default:
		return "?"
	}
}

// valid reports whether v may appear in a persisted, user-visible bit.
func (v Value) valid() bool {
	return v == Off || v == On || v == DC
}

// Kind tags a Bit as belonging to the input word or the output position of
// a cube.
type Kind byte

const (
	Input Kind = iota
	Output
)

// Bit is a single ternary-valued, kind-tagged, labeled position of a cube.
// Equality and hashing are defined on (Value, Kind) alone: Label does not
// participate, so cubes built over renamed variables still compare equal
// by shape.
type Bit struct {
	Value Value
	Kind  Kind
	Label string
}

// Equal compares two bits by value and kind, ignoring Label.
func (b Bit) Equal(o Bit) bool {
	return b.Value == o.Value && b.Kind == o.Kind
}
