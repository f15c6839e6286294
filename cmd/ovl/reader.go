// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// path2Reader opens p for reading, transparently decompressing gzip or
// bzip2 content based on its suffix. "-" reads standard input
// uncompressed.
func path2Reader(p string) (io.Reader, error) {
	if p == "-" {
		return os.Stdin, nil
	}
	st, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if st.Mode()&os.ModeSymlink != 0 {
		q, err := os.Readlink(p)
		if err != nil {
			return nil, err
		}
		p = q
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(p, ".gz"):
		return gzip.NewReader(f)
	case strings.HasSuffix(p, ".bz2"):
		return bzip2.NewReader(f), nil
	default:
		return f, nil
	}
}
