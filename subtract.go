// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bc

// Sharp computes a # b (the cube difference a \ b) and appends the
// resulting (possibly empty) set of cubes to accum; the appended
// cubes may overlap one another. For each
// variable i where b is not DontCare, it tentatively restricts a's
// field at i to a(i) AND NOT-b(i); if that restriction is not
// Illegal, a copy of the modified a is appended before the field is
// restored. Appends are unconditional; SingleCubeContainment/
// MultiCubeContainment run later by the caller prune the result.
func (p *Problem) Sharp(accum *List, a, b Cube) {
	for i := 0; i < p.varCnt; i++ {
		bv := p.GetVar(b, i)
		if bv == DontCare {
			continue
		}
		origAV := p.GetVar(a, i)
		newAV := origAV & (bv ^ DontCare)
		if newAV != Illegal {
			p.SetVar(a, i, newAV)
			accum.AppendCopy(a)
			p.SetVar(a, i, origAV)
		}
	}
}

// Subtract computes a = a \ b in place. For each cube of b in turn,
// every live cube of a is sharped against it into a scratch list,
// which then replaces a; SingleCubeContainment always runs afterward,
// MultiCubeContainment only when doMCC is set.
//
// doMCC should be true when b is binate (sharp tends to generate many
// overlapping cubes there) and false when b is unate, where the extra
// MCC pass costs more than it reclaims. The minimization pipeline
// always sets it true.
func (p *Problem) Subtract(a, b *List, doMCC bool) {
	result := NewList(p)
	for i := 0; i < b.Count(); i++ {
		if !b.IsLive(i) {
			continue
		}
		result.Clear()
		for j := 0; j < a.Count(); j++ {
			if !a.IsLive(j) {
				continue
			}
			p.Sharp(result, a.Get(j), b.Get(i))
		}
		a.CopyFrom(result)
		p.SingleCubeContainment(a)
		if doMCC {
			p.MultiCubeContainment(a)
		}
	}
}
