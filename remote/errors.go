// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package remote

import "errors"

var (
	// ErrFrameTooLarge is returned by readFrame when a declared
	// payload length exceeds maxFrameBytes, guarding against a
	// corrupt or hostile length prefix driving an unbounded
	// allocation.
	ErrFrameTooLarge = errors.New("remote: frame exceeds maximum size")

	// ErrVersionMismatch is returned during the handshake when a
	// peer's major version differs from V's; minor versions are not
	// compared.
	ErrVersionMismatch = errors.New("remote: protocol version mismatch")
)
