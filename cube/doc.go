// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package cube implements ternary-valued bit vectors (cubes) and the star
// and sharp algebra over them, as used by two-level logic minimization.
//
// A Cube represents a product term over a fixed set of input positions plus
// one output bit.  A Cover is an unordered set of cubes sharing the same
// input arity and output label.  Cubes are value types: equality and
// hashing are by content (bit sequence, not variable labels), so covers
// built from differently-labeled but shape-identical cubes compare equal.
package cube
