// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bc

import "github.com/pkg/errors"

// IntersectionInto computes r = a AND b: every pairwise cube
// intersection that is legal is appended to r, which is then passed
// through SingleCubeContainment. r must be a distinct List from both
// a and b; passing r as a or b returns an error.
func (p *Problem) IntersectionInto(r, a, b *List) error {
	if r == a || r == b {
		return errors.New("bc: intersection result must not alias an operand")
	}
	frame := p.StartCubeStackFrame()
	defer p.EndCubeStackFrame(frame)
	tmp := p.GetTempCube()

	r.Clear()
	for i := 0; i < b.Count(); i++ {
		if !b.IsLive(i) {
			continue
		}
		for j := 0; j < a.Count(); j++ {
			if !a.IsLive(j) {
				continue
			}
			if p.IntersectionCube(tmp, a.Get(j), b.Get(i)) {
				r.AppendCopy(tmp)
			}
		}
	}
	p.SingleCubeContainment(r)
	return nil
}

// Intersection sets a = a AND b in place.
func (p *Problem) Intersection(a, b *List) error {
	result := NewList(p)
	if err := p.IntersectionInto(result, a, b); err != nil {
		return err
	}
	a.CopyFrom(result)
	return nil
}

// AddAll appends every live cube of b to a, without simplification
// (a plain set union of the two cube bags).
func (p *Problem) AddAll(a, b *List) {
	a.AppendAllFrom(b)
}
