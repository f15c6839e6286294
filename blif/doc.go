// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package blif reads and writes a BLIF subset: a line-oriented
// preprocessor (comment stripping, backslash continuation, blank-line
// elision), a directive-dispatch parser producing a *model.Model, and
// a serializer producing the same text back.
package blif
