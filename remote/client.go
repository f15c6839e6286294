// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package remote

import (
	"bytes"
	"fmt"
	"net"

	"github.com/go-air/ovl/blif"
	"github.com/go-air/ovl/model"
)

// Client sends a model to a Server and receives the optimized model
// back, one connection per call.
type Client struct {
	addr *Addr
}

// Dial returns a Client that will connect to addr on each Optimize
// call. Unlike net.Dial, this cannot fail eagerly: ParseAddr never
// errors, and the actual connection is deferred to Optimize.
func Dial(addr string) *Client {
	return &Client{addr: ParseAddr(addr)}
}

// Optimize sends m to the server, which optimizes every gate and
// returns the result.
func (c *Client) Optimize(m *model.Model) (*model.Model, error) {
	conn, err := net.Dial(c.addr.Network, c.addr.NetAddr)
	if err != nil {
		return nil, fmt.Errorf("remote: dial %s: %w", c.addr, err)
	}
	defer conn.Close()

	if err := writeVersion(conn, V); err != nil {
		return nil, fmt.Errorf("remote: writing version: %w", err)
	}
	peer, err := readVersion(conn)
	if err != nil {
		return nil, fmt.Errorf("remote: reading peer version: %w", err)
	}
	if peer.Major() != V.Major() {
		return nil, ErrVersionMismatch
	}

	var buf bytes.Buffer
	if err := blif.Write(&buf, m); err != nil {
		return nil, fmt.Errorf("remote: serializing request: %w", err)
	}
	fio := newFrameIO(conn)
	if err := fio.writeFrame(buf.Bytes()); err != nil {
		return nil, err
	}

	respBytes, err := fio.readFrame()
	if err != nil {
		return nil, err
	}
	resp, err := blif.Parse(bytes.NewReader(respBytes))
	if err != nil {
		return nil, fmt.Errorf("remote: parsing response: %w", err)
	}
	return resp, nil
}
