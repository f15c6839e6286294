// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package remote exposes model optimization over the network: a
// length-prefixed, BLIF-over-the-wire protocol with unix-vs-tcp
// addressing and a version handshake. A client sends a model, the
// server optimizes every gate, and sends the optimized model back,
// exactly one framed payload each way per connection.
package remote
