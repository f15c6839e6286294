// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command ovlbench drives opt.Optimize over a suite of BLIF files (or
// a synthetic generated suite) and reports per-gate cost deltas.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-air/ovl/bench"
	"github.com/go-air/ovl/blif"
	"github.com/go-air/ovl/cube"
	"github.com/go-air/ovl/gen"
	"github.com/go-air/ovl/inter"
	"github.com/go-air/ovl/model"
	"github.com/go-air/ovl/opt"
)

// coverAdder adapts *cube.Cover to inter.CubeAdder so gen's generators
// can write directly into a gate's cover.
type coverAdder struct {
	cover *cube.Cover
}

func (a coverAdder) Add(c cube.Cube) {
	a.cover.Add(c)
}

func main() {
	var synthetic int
	var seed int64

	run := &cobra.Command{
		Use:   "run [dir]",
		Short: "run the optimizer over a suite of BLIF files and report cost deltas",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var models []*model.Model
			var err error
			switch {
			case synthetic > 0:
				models = syntheticSuite(seed, synthetic)
			case len(args) == 1:
				models, err = loadSuite(args[0])
			default:
				return fmt.Errorf("ovlbench run: need a directory argument or -synthetic")
			}
			if err != nil {
				return err
			}
			results := bench.RunSuite(models, inter.OptimizerFunc(opt.Optimize))
			printReport(results)
			return nil
		},
	}
	run.Flags().IntVar(&synthetic, "synthetic", 0, "run over N generated random gates instead of a directory")
	run.Flags().Int64Var(&seed, "seed", 1, "seed for -synthetic")

	root := &cobra.Command{Use: "ovlbench"}
	root.AddCommand(run)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func loadSuite(dir string) ([]*model.Model, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var models []*model.Model
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".blif") {
			continue
		}
		f, err := os.Open(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		m, err := blif.Parse(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", e.Name(), err)
		}
		models = append(models, m)
	}
	return models, nil
}

func syntheticSuite(seed int64, n int) []*model.Model {
	gen.Seed(seed)
	m := model.New("synthetic")
	for i := 0; i < n; i++ {
		out := fmt.Sprintf("f%d", i)
		m.Outputs = append(m.Outputs, out)
		cover := cube.NewCover()
		arity := 4 + i%4
		gen.RandCover(coverAdder{cover}, arity, 6+i%6, 0.3)
		m.Gates = append(m.Gates, &model.Gate{Inputs: gen.Labels(arity), Output: out, Cover: cover})
	}
	return []*model.Model{m}
}

func printReport(results []bench.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GATE\tCUBES IN\tCUBES OUT\tCOST IN\tCOST OUT\tDELTA\tTIME")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s\tERROR: %s\n", r.Name, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			r.Name, r.InputCubes, r.OutputCubes, r.InputCost, r.OutputCost, r.Delta(), r.Elapsed)
	}
	w.Flush()
}
