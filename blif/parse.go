// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package blif

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-air/ovl/cube"
	"github.com/go-air/ovl/model"
)

// Parse reads BLIF text from r and builds a *model.Model. It dispatches
// each logical line (as produced by Preprocess) on its leading
// directive token. Parsing stops at the first .end directive, or at
// end of input if none appears.
func Parse(r io.Reader) (*model.Model, error) {
	lines, err := Preprocess(r)
	if err != nil {
		return nil, fmt.Errorf("blif: %w", err)
	}

	m := model.New("")
	var current *model.Gate
	sawModel := false

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case ".model":
			if len(fields) != 2 {
				return nil, fmt.Errorf("%w: got %q", ErrModelArity, line)
			}
			m.Name = fields[1]
			sawModel = true
			current = nil

		case ".inputs":
			if !sawModel {
				return nil, fmt.Errorf("%w: %q", ErrNoModel, line)
			}
			m.Inputs = append(m.Inputs, fields[1:]...)
			current = nil

		case ".outputs":
			if !sawModel {
				return nil, fmt.Errorf("%w: %q", ErrNoModel, line)
			}
			m.Outputs = append(m.Outputs, fields[1:]...)
			current = nil

		case ".names":
			if !sawModel {
				return nil, fmt.Errorf("%w: %q", ErrNoModel, line)
			}
			if len(fields) < 2 {
				return nil, fmt.Errorf("%w: got %q", ErrNamesArity, line)
			}
			g := &model.Gate{
				Inputs: append([]string(nil), fields[1:len(fields)-1]...),
				Output: fields[len(fields)-1],
				Cover:  cube.NewCover(),
			}
			m.Gates = append(m.Gates, g)
			current = g

		case ".latch":
			if !sawModel {
				return nil, fmt.Errorf("%w: %q", ErrNoModel, line)
			}
			m.Latches = append(m.Latches, append([]string(nil), fields[1:]...))
			current = nil

		case ".clock":
			if !sawModel {
				return nil, fmt.Errorf("%w: %q", ErrNoModel, line)
			}
			m.Clocks = append(m.Clocks, append([]string(nil), fields[1:]...))
			current = nil

		case ".end":
			return m, nil

		default:
			if strings.HasPrefix(fields[0], ".") {
				return nil, fmt.Errorf("%w: %q", ErrUnknownDirective, fields[0])
			}
			if current == nil {
				return nil, fmt.Errorf("%w: %q", ErrRowOutsideNames, line)
			}
			cb, err := cube.New(current.Inputs, current.Output, line)
			if err != nil {
				return nil, fmt.Errorf("blif: cube row %q: %w", line, err)
			}
			current.Cover.Add(cb)
		}
	}
	return m, nil
}
