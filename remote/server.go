// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package remote

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"net"

	"github.com/google/uuid"

	"github.com/go-air/ovl/blif"
)

// Server serves the remote optimize protocol: accept a connection,
// exchange a version handshake, read one framed BLIF model, optimize
// every gate, and write the optimized model back, framed the same way.
type Server struct {
	addr  *Addr
	ln    net.Listener
	trace bool
}

// NewServer listens on addr (see ParseAddr for the accepted formats).
func NewServer(addr string) (*Server, error) {
	a := ParseAddr(addr)
	ln, err := net.Listen(a.Network, a.NetAddr)
	if err != nil {
		return nil, fmt.Errorf("remote: listen %s: %w", a, err)
	}
	return &Server{addr: a, ln: ln}, nil
}

// Trace turns connection-lifecycle logging on or off.
func (s *Server) Trace(on bool) {
	s.trace = on
}

// Addr returns the address the server was constructed with.
func (s *Server) Addr() *Addr {
	return s.addr
}

// RealAddr returns the listener's actual bound address, useful when
// NewServer was given a port of 0.
func (s *Server) RealAddr() net.Addr {
	return s.ln.Addr()
}

// Serve accepts connections until the listener is closed or Accept
// returns an error, handling each on its own goroutine.
func (s *Server) Serve() error {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return err
		}
		id := uuid.NewString()
		go s.serveConn(conn, id)
	}
}

// Close stops accepting new connections.
func (s *Server) Close() error {
	return s.ln.Close()
}

func (s *Server) serveConn(conn net.Conn, id string) {
	defer conn.Close()
	if s.trace {
		log.Printf("remote %s: accepted %s", id, conn.RemoteAddr())
	}
	if err := s.handle(conn); err != nil {
		log.Printf("remote %s: error: %s", id, err)
		return
	}
	if s.trace {
		log.Printf("remote %s: done", id)
	}
}

func (s *Server) handle(conn net.Conn) error {
	peer, err := readVersion(conn)
	if err != nil {
		return fmt.Errorf("remote: reading peer version: %w", err)
	}
	if peer.Major() != V.Major() {
		return ErrVersionMismatch
	}
	if err := writeVersion(conn, V); err != nil {
		return fmt.Errorf("remote: writing version: %w", err)
	}

	fio := newFrameIO(conn)
	payload, err := fio.readFrame()
	if err != nil {
		return err
	}

	m, err := blif.Parse(bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("remote: parsing request: %w", err)
	}
	if err := m.OptimizeAll(); err != nil {
		return fmt.Errorf("remote: optimizing %q: %w", m.Name, err)
	}

	var buf bytes.Buffer
	if err := blif.Write(&buf, m); err != nil {
		return fmt.Errorf("remote: serializing response: %w", err)
	}
	return fio.writeFrame(buf.Bytes())
}

func writeVersion(w io.Writer, v Version) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	_, err := w.Write(b[:])
	return err
}

func readVersion(r io.Reader) (Version, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return Version(binary.BigEndian.Uint32(b[:])), nil
}
