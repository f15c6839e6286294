// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package opt implements the star + sharp + branching two-level logic
// minimizer of Brown & Vranesic section 4.10.2: prime-implicant
// generation by repeated starring, essential-prime identification by
// cascaded sharp, dominance reduction, and a recursive branch-and-bound
// search over the remaining primes.
//
// Optimize is pure: it performs no I/O and holds no state across calls,
// so cmd/ovl and remote.Server may both call it freely from their own
// goroutines without coordination.
package opt
