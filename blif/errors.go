// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package blif

import "errors"

// Sentinel errors returned by Parse.
var (
	// ErrNoModel is returned when a .inputs, .outputs, .names, .latch,
	// or .clock directive appears before any .model directive has been
	// seen.
	ErrNoModel = errors.New("blif: directive before .model")

	// ErrNamesArity is returned when a .names directive names fewer
	// than one field (it must name at least an output).
	ErrNamesArity = errors.New("blif: .names requires at least an output label")

	// ErrRowOutsideNames is returned when a cube row line appears
	// before any .names directive has opened a gate.
	ErrRowOutsideNames = errors.New("blif: cube row outside .names block")

	// ErrUnknownDirective is returned for a token beginning with '.'
	// that is not one of the directives this package understands.
	ErrUnknownDirective = errors.New("blif: unknown directive")

	// ErrModelArity is returned when .model does not carry exactly one
	// name field.
	ErrModelArity = errors.New("blif: .model requires exactly one name")
)
