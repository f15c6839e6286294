// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package blif

import (
	"strings"
	"testing"
)

// comment stripping, backslash continuation, blank
// line elision.
func TestPreprocessCommentsAndContinuations(t *testing.T) {
	src := "" +
		"# a full-line comment\n" +
		".model top # trailing comment\n" +
		"\n" +
		".inputs a\\\n" +
		"b\\\n" +
		"c d\n" +
		".outputs out\n" +
		".end\n"

	got, err := Preprocess(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		".model top",
		".inputs a b c d",
		".outputs out",
		".end",
	}
	if len(got) != len(want) {
		t.Fatalf("Preprocess got %d lines %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPreprocessBlankAndCommentOnlyLinesDropped(t *testing.T) {
	src := "\n# only a comment\n   \n.end\n"
	got, err := Preprocess(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != ".end" {
		t.Errorf("Preprocess(%q) = %v, want [%q]", src, got, ".end")
	}
}

func TestPreprocessHashInsideRowIsAComment(t *testing.T) {
	src := "010 1 # this bit pattern is arbitrary here\n"
	got, err := Preprocess(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "010 1" {
		t.Errorf("Preprocess(%q) = %v", src, got)
	}
}
