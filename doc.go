// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bc implements a two-level Boolean function engine: cube
// lists (sum-of-products representations of Boolean functions) and
// the algebra needed to decide, transform and minimize them.
//
// A Problem owns the width (variable count) and scratch storage
// shared by every cube and List built against it. Cubes are
// bit-packed two-bit-per-variable vectors; Lists are ordered,
// tombstone-purgeable collections of cubes denoting the union of
// their live members.
//
// Problem is not safe for concurrent use; independent Problems may be
// used from separate goroutines without synchronization.
package bc
