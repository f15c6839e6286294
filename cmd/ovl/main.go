// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command ovl optimizes the two-level covers of a BLIF design: it
// reads a model from a file or stdin, reduces every gate's cover with
// opt.Optimize, and writes the result back out as BLIF.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-air/ovl/blif"
)

// errTimedOut is returned by run when optimization does not finish
// within the -timeout duration; main maps it to exit code 2.
var errTimedOut = errors.New("ovl: optimization timed out")

var (
	statsFlag   bool
	timeoutFlag time.Duration
)

func main() {
	log.SetPrefix("ovl: ")
	log.SetFlags(0)

	root := &cobra.Command{
		Use:           "ovl [flags] [path|-]",
		Short:         "optimize the two-level covers of a BLIF design",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          run,
	}
	root.Flags().BoolVar(&statsFlag, "stats", false, "print per-gate cost reduction to stderr")
	root.Flags().DurationVar(&timeoutFlag, "timeout", 30*time.Second, "maximum total optimization time")

	switch err := root.Execute(); {
	case err == nil:
	case errors.Is(err, errTimedOut):
		log.Println(err)
		os.Exit(2)
	default:
		log.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	r, err := path2Reader(path)
	if err != nil {
		return err
	}

	m, err := blif.Parse(r)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	before := make(map[string]int, len(m.Gates))
	for _, g := range m.Gates {
		before[g.Output] = g.Cover.Cost()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeoutFlag)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- m.OptimizeAll() }()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		return errTimedOut
	}

	if statsFlag {
		for _, g := range m.Gates {
			fmt.Fprintf(os.Stderr, "%s: %d -> %d\n", g.Output, before[g.Output], g.Cover.Cost())
		}
	}
	return blif.Write(os.Stdout, m)
}
