// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"testing"

	"github.com/go-air/ovl/cube"
	"github.com/go-air/ovl/gen"
	"github.com/go-air/ovl/inter"
	"github.com/go-air/ovl/model"
	"github.com/go-air/ovl/opt"
)

// benchmark non-increase — Run never reports a higher
// output cost than input cost.
func TestRunNeverIncreasesCost(t *testing.T) {
	optimizer := inter.OptimizerFunc(opt.Optimize)

	gen.Seed(7)
	for i := 0; i < 10; i++ {
		c := cube.NewCover()
		gen.RandCover(coverAdder{c}, 4, 12, 0.25)
		r := Run("random", c, optimizer)
		if r.Err != nil {
			t.Fatal(r.Err)
		}
		if r.Delta() < 0 {
			t.Errorf("run %d: OutputCost %d > InputCost %d", i, r.OutputCost, r.InputCost)
		}
	}
}

type coverAdder struct {
	c *cube.Cover
}

func (a coverAdder) Add(c cube.Cube) {
	a.c.Add(c)
}

func TestRunSuite(t *testing.T) {
	m := model.New("top")
	m.Inputs = gen.Labels(3)
	m.Outputs = []string{"f"}
	c := cube.NewCover()
	for _, row := range []string{"010 1", "110 1", "111 1"} {
		cb, err := cube.New(m.Inputs, "f", row)
		if err != nil {
			t.Fatal(err)
		}
		c.Add(cb)
	}
	m.Gates = append(m.Gates, &model.Gate{Inputs: m.Inputs, Output: "f", Cover: c})

	results := RunSuite([]*model.Model{m}, inter.OptimizerFunc(opt.Optimize))
	if len(results) != 1 {
		t.Fatalf("RunSuite returned %d results, want 1", len(results))
	}
	if results[0].Name != "top.f" {
		t.Errorf("Name = %q, want top.f", results[0].Name)
	}
	if results[0].Delta() < 0 {
		t.Errorf("Delta = %d, want >= 0", results[0].Delta())
	}
}
