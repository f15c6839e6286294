// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package blif

import (
	"bufio"
	"io"
	"strings"
)

// Preprocess turns raw BLIF text into logical lines: comments (from an
// unescaped '#' to end of line) are stripped, physical lines ending in
// a trailing '\' are joined to the next physical line with a single
// space in place of the backslash, and blank logical lines are
// dropped. The result is ready for directive dispatch by Parse.
func Preprocess(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var logical []string
	var buf strings.Builder
	building := false

	flush := func() {
		if s := strings.TrimSpace(buf.String()); s != "" {
			logical = append(logical, s)
		}
		buf.Reset()
		building = false
	}

	for sc.Scan() {
		line := stripComment(sc.Text())

		trimmed := strings.TrimRight(line, " \t")
		cont := strings.HasSuffix(trimmed, `\`)
		if cont {
			trimmed = trimmed[:len(trimmed)-1]
		}
		piece := strings.TrimSpace(trimmed)

		if building {
			if piece != "" {
				buf.WriteByte(' ')
				buf.WriteString(piece)
			}
		} else {
			buf.WriteString(piece)
			building = true
		}

		if !cont {
			flush()
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if building {
		flush()
	}
	return logical, nil
}

// stripComment removes everything from the first '#' in line to the
// end of line. BLIF has no escape mechanism for a literal '#'.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i != -1 {
		return line[:i]
	}
	return line
}
