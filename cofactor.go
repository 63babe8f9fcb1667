// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bc

// CofactorByVar builds the Shannon cofactor of l with respect to
// variable i, where polarity (Zero or One) names the value the
// cofactor removes: the result is l restricted to i = NOT polarity. A
// cube whose value at i is DontCare is copied unchanged; a cube whose
// value at i is the opposite of polarity (v|polarity == DontCare) has
// i widened to DontCare in the copy; a cube whose value at i equals
// polarity is dropped. The result is passed through
// SingleCubeContainment, since widening can make cubes subsume one
// another.
func (p *Problem) CofactorByVar(l *List, i int, polarity Value) *List {
	r := NewList(p)
	for j := 0; j < l.Count(); j++ {
		if !l.IsLive(j) {
			continue
		}
		c := l.Get(j)
		v := p.GetVar(c, i)
		if v == DontCare {
			r.AppendCopy(c)
			continue
		}
		if v|polarity == DontCare {
			pos := r.AppendCopy(c)
			p.SetVar(r.Get(pos), i, DontCare)
		}
		// otherwise drop the cube
	}
	p.SingleCubeContainment(r)
	return r
}

// CofactorByCube computes, for each live cube of l other than
// excludeIndex, the OR (within the dontcare lattice) with the
// bitwise-complement of c: each non-dontcare literal of c cofactors
// the list simultaneously. Followed by SingleCubeContainment. Used by
// the coverage tests in containment.go; excludeIndex may be -1 to
// exclude nothing.
func (p *Problem) CofactorByCube(l *List, c Cube, excludeIndex int) *List {
	r := NewList(p)
	for j := 0; j < l.Count(); j++ {
		if !l.IsLive(j) || j == excludeIndex {
			continue
		}
		pos := r.AppendCopy(l.Get(j))
		rc := r.Get(pos)
		for i := 0; i < p.varCnt; i++ {
			cv := p.GetVar(c, i)
			if cv == DontCare {
				continue
			}
			// widen rc at i to include the complement (within
			// dontcare) of c's literal at i, i.e. OR the
			// bit-negation of cv into rc's field.
			rv := p.GetVar(rc, i)
			p.SetVar(rc, i, rv|(cv^DontCare))
		}
	}
	p.SingleCubeContainment(r)
	return r
}
