// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bc

// Minimize runs the heuristic widen-and-trim pipeline in place on l:
//
//  1. SingleCubeContainment
//  2. off := ComplementBySubtract(l)
//  3. ExpandWithOffSet(l, off) — grow every cube to a prime implicant
//     with respect to off
//  4. SingleCubeContainment again (expansion may have made cubes
//     subsume each other)
//  5. MultiCubeContainment — drop cubes now redundant
//
// The result denotes the same function as the input, is SCC- and
// MCC-free, and every cube is a prime implicant relative to the
// off-set computed in step 2. Global minimality (an optimal prime
// cover) is not attempted; this is a local heuristic only.
func (p *Problem) Minimize(l *List) {
	p.SingleCubeContainment(l)
	off := p.ComplementBySubtract(l)
	p.ExpandWithOffSet(l, off)
	p.SingleCubeContainment(l)
	p.MultiCubeContainment(l)
}
