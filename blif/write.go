// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package blif

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-air/ovl/model"
)

// Write serializes m as BLIF text: .model, .inputs, .outputs, then one
// .names block per gate (each cube on its own row, input bits
// concatenated with no separator, a space, then the output bit),
// followed by any .latch and .clock directives, and a closing .end.
func Write(w io.Writer, m *model.Model) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, ".model %s\n", m.Name); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, ".inputs %s\n", strings.Join(m.Inputs, " ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, ".outputs %s\n", strings.Join(m.Outputs, " ")); err != nil {
		return err
	}

	for _, g := range m.Gates {
		header := append(append([]string(nil), g.Inputs...), g.Output)
		if _, err := fmt.Fprintf(bw, ".names %s\n", strings.Join(header, " ")); err != nil {
			return err
		}
		for _, cb := range g.Cover.Slice() {
			if _, err := fmt.Fprintf(bw, "%s\n", cb.String()); err != nil {
				return err
			}
		}
	}

	for _, l := range m.Latches {
		if _, err := fmt.Fprintf(bw, ".latch %s\n", strings.Join(l, " ")); err != nil {
			return err
		}
	}
	for _, c := range m.Clocks {
		if _, err := fmt.Fprintf(bw, ".clock %s\n", strings.Join(c, " ")); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(bw, ".end\n"); err != nil {
		return err
	}
	return bw.Flush()
}
