// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package script executes a JSON array of commands against a slot
// bank of cube lists backed by a single bc.Problem, the machine-
// readable counterpart to the textual cube-file CLI: bcl2slot,
// show, intersection0, subtract0, equal0, exchange0 and copy0.
package script
