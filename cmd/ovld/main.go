// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command ovld serves the remote optimize protocol over a unix socket
// or tcp address.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/go-air/ovl/remote"
)

func main() {
	var trace bool

	root := &cobra.Command{
		Use:   "ovld <addr>",
		Short: "serve remote model optimization",
		Long: "ovld listens on addr (a tcp address like \":6060\", or a unix\n" +
			"socket path prefixed with '@') and optimizes any BLIF model sent to it.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := remote.NewServer(args[0])
			if err != nil {
				return err
			}
			srv.Trace(trace)
			log.Printf("ovld: listening on %s\n", srv.Addr())
			return srv.Serve()
		},
	}
	root.Flags().BoolVar(&trace, "trace", false, "turn on connection tracing")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
