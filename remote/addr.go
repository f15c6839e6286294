// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package remote

import (
	"fmt"
	"strings"
)

// Addr is a remote optimizer address: either a unix-domain socket
// path, prefixed with '@' (e.g. "@/tmp/ovld.sock"), or a tcp address
// (e.g. "localhost:6060").
type Addr struct {
	Network string
	NetAddr string
}

// ParseAddr determines whether s names a unix socket or a tcp
// address.
func ParseAddr(s string) *Addr {
	if strings.HasPrefix(s, "@") {
		return &Addr{Network: "unix", NetAddr: s[1:]}
	}
	return &Addr{Network: "tcp", NetAddr: s}
}

// String puts the address back in the format accepted by ParseAddr.
func (a *Addr) String() string {
	if a.Network == "unix" {
		return fmt.Sprintf("@%s", a.NetAddr)
	}
	return a.NetAddr
}
