// Copyright 2026 The core.matrix Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/SwamWithTurtles/core.matrix/internal/ndarray"
)

// Source is the shape-query capability: the minimal protocol a foreign
// array-like value must expose to be consumed by FromSource and coercion
// fallbacks. Array itself implements Source.
type Source = ndarray.Source

// Broadcaster is the broadcast-resolution capability, invoked once when a
// binary elementwise operation receives mismatched shapes.
type Broadcaster = ndarray.Broadcaster

// Coercer is the coercion capability, invoked when a binary operation
// receives an operand of a foreign representation.
type Coercer = ndarray.Coercer

// StdBroadcaster implements NumPy-style broadcasting rules and is the
// default Broadcaster.
type StdBroadcaster = ndarray.StdBroadcaster

// SetBroadcaster installs the broadcast-resolution capability.
// Passing nil restores the default NumPy-style broadcaster.
func SetBroadcaster(b Broadcaster) {
	ndarray.SetBroadcaster(b)
}

// SetCoercer installs the coercion capability consulted after the built-in
// conversions (Source values, nested float64 slices, plain numbers).
func SetCoercer(c Coercer) {
	ndarray.SetCoercer(c)
}
