// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen produces synthetic cubes and covers for tests,
// benchmarking, and fuzzing: a package-level seedable rng guarded by a
// mutex, feeding an inter.CubeAdder. It includes an adversarial
// generator whose all-DC-adjacent structure stresses opt's
// prime-generation bound.
package gen
