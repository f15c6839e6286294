// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package inter holds the small interfaces that decouple blif.Parse,
// gen's generators, and opt.Optimize from one another.
package inter

import "github.com/go-air/ovl/cube"

// CubeAdder receives the cubes of a single gate's cover one at a time.
// gen's generators write through a CubeAdder, so bench and tests can
// direct synthetic cubes into any destination. blif.Parse does not use
// it: it adds each row directly to the gate's *cube.Cover.
type CubeAdder interface {
	Add(c cube.Cube)
}

// Optimizer is satisfied by opt.Optimize (wrapped in OptimizerFunc) and
// by any drop-in stand-in
// used for comparison in benchmarks (e.g. an identity optimizer that
// returns its input unchanged, for measuring baseline cost).
type Optimizer interface {
	Optimize(c *cube.Cover) (*cube.Cover, error)
}

// OptimizerFunc adapts a plain function to the Optimizer interface.
type OptimizerFunc func(*cube.Cover) (*cube.Cover, error)

// Optimize calls f.
func (f OptimizerFunc) Optimize(c *cube.Cover) (*cube.Cover, error) {
	return f(c)
}
