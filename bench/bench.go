// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bench runs an inter.Optimizer over one gate or a whole suite
// of models and reports cost deltas.
package bench

import (
	"time"

	"github.com/go-air/ovl/cube"
	"github.com/go-air/ovl/inter"
	"github.com/go-air/ovl/model"
)

// Result records the outcome of running one gate's cover through an
// Optimizer.
type Result struct {
	Name        string
	InputCost   int
	OutputCost  int
	InputCubes  int
	OutputCubes int
	Elapsed     time.Duration
	Err         error
}

// Delta returns the cost reduction achieved (InputCost - OutputCost);
// zero means no change and a negative value indicates a regression.
func (r Result) Delta() int {
	return r.InputCost - r.OutputCost
}

// Run applies opt to c and times it, tagging the result with name.
func Run(name string, c *cube.Cover, opt inter.Optimizer) Result {
	start := time.Now()
	out, err := opt.Optimize(c)
	elapsed := time.Since(start)
	r := Result{
		Name:       name,
		InputCost:  c.Cost(),
		InputCubes: c.Len(),
		Elapsed:    elapsed,
		Err:        err,
	}
	if err != nil {
		r.OutputCost = r.InputCost
		r.OutputCubes = r.InputCubes
		return r
	}
	r.OutputCost = out.Cost()
	r.OutputCubes = out.Len()
	return r
}

// RunSuite runs opt over every gate of every model, in order, naming
// each result "<model>.<gate>".
func RunSuite(models []*model.Model, opt inter.Optimizer) []Result {
	var results []Result
	for _, m := range models {
		for _, g := range m.Gates {
			results = append(results, Run(m.Name+"."+g.Output, g.Cover, opt))
		}
	}
	return results
}
