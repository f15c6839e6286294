// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"
	"math/bits"
	"math/rand"
	"strings"
	"sync"

	"github.com/go-air/ovl/cube"
	"github.com/go-air/ovl/inter"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(33))
)

// Seed reseeds the package rng. RandCover reads through the single
// package-level rng, so reseeding makes its output reproducible;
// Parity and HardCover use no randomness.
func Seed(s int64) {
	rngMu.Lock()
	defer rngMu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// Labels returns the canonical input labels i0..i(n-1) shared by every
// generator in this package, so covers of equal arity emitted by
// different calls use the same labels.
func Labels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("i%d", i)
	}
	return labels
}

// RandCover emits nCubes random cubes of the given arity to dst, each
// input position independently DC with probability dcProb and
// otherwise uniformly 0 or 1; the output bit is always On.
func RandCover(dst inter.CubeAdder, arity, nCubes int, dcProb float64) {
	rngMu.Lock()
	defer rngMu.Unlock()
	labels := Labels(arity)
	var sb strings.Builder
	for i := 0; i < nCubes; i++ {
		sb.Reset()
		for j := 0; j < arity; j++ {
			switch {
			case rng.Float64() < dcProb:
				sb.WriteByte('-')
			case rng.Intn(2) == 0:
				sb.WriteByte('0')
			default:
				sb.WriteByte('1')
			}
		}
		sb.WriteString(" 1")
		c, err := cube.New(labels, "out", sb.String())
		if err != nil {
			panic(fmt.Sprintf("gen: RandCover produced an invalid cube: %s", err))
		}
		dst.Add(c)
	}
}

// Parity emits every arity-bit minterm of odd parity, the canonical
// cover on which no reduction is possible: any two odd-parity minterms
// differ in at least two positions, so Star always disagrees on more
// than one axis, for any arity.
func Parity(dst inter.CubeAdder, arity int) {
	labels := Labels(arity)
	for m := 0; m < 1<<uint(arity); m++ {
		if bits.OnesCount(uint(m))%2 == 0 {
			continue
		}
		c, err := cube.New(labels, "out", wordOf(m, arity)+" 1")
		if err != nil {
			panic(fmt.Sprintf("gen: Parity produced an invalid cube: %s", err))
		}
		dst.Add(c)
	}
}

// HardCover emits every minterm of the given arity as its own
// zero-DC cube: a worst case for opt.PrimeImplicants's iterated
// star-closure, since every pair of minterms one Hamming step apart
// combines, driving the closure toward its 3^n bound before it reaches
// a fixed point.
func HardCover(dst inter.CubeAdder, arity int) {
	labels := Labels(arity)
	for m := 0; m < 1<<uint(arity); m++ {
		c, err := cube.New(labels, "out", wordOf(m, arity)+" 1")
		if err != nil {
			panic(fmt.Sprintf("gen: HardCover produced an invalid cube: %s", err))
		}
		dst.Add(c)
	}
}

func wordOf(m, arity int) string {
	word := make([]byte, arity)
	for i := 0; i < arity; i++ {
		shift := arity - 1 - i
		if m&(1<<uint(shift)) != 0 {
			word[i] = '1'
		} else {
			word[i] = '0'
		}
	}
	return string(word)
}
