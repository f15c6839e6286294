// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package remote

import (
	"encoding/binary"
	"fmt"
	"io"
)

// maxFrameBytes bounds a single frame's declared length, guarding
// against a corrupt length prefix driving an unbounded read.
const maxFrameBytes = 64 << 20

// frameIO is a length-prefixed byte-frame reader/writer over a single
// connection: a varint-coded length prefix ahead of the payload, the
// payload here being one opaque unit of exchange (BLIF text).
type frameIO struct {
	rw io.ReadWriter
}

func newFrameIO(rw io.ReadWriter) *frameIO {
	return &frameIO{rw: rw}
}

// writeFrame writes len(p) as a uvarint followed by p.
func (f *frameIO) writeFrame(p []byte) error {
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(p)))
	if _, err := f.rw.Write(lenBuf[:n]); err != nil {
		return fmt.Errorf("remote: writing frame length: %w", err)
	}
	if len(p) == 0 {
		return nil
	}
	if _, err := f.rw.Write(p); err != nil {
		return fmt.Errorf("remote: writing frame payload: %w", err)
	}
	return nil
}

// readFrame reads a uvarint length prefix and exactly that many
// payload bytes.
func (f *frameIO) readFrame() ([]byte, error) {
	n, err := binary.ReadUvarint(byteReader{f.rw})
	if err != nil {
		return nil, fmt.Errorf("remote: reading frame length: %w", err)
	}
	if n > maxFrameBytes {
		return nil, ErrFrameTooLarge
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(f.rw, buf); err != nil {
		return nil, fmt.Errorf("remote: reading frame payload: %w", err)
	}
	return buf, nil
}

// byteReader adapts an io.Reader to io.ByteReader one byte at a time,
// since binary.ReadUvarint requires one and frameIO's underlying
// io.ReadWriter (a net.Conn) does not implement it directly.
type byteReader struct {
	r io.Reader
}

func (b byteReader) ReadByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(b.r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}
