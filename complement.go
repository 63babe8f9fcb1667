// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bc

// ComplementBySubtract computes the complement of l by subtracting l
// from the universal cube, then runs a small minimization pass
// (ExpandWithOffSet against l, then MultiCubeContainment) to shrink
// the result. This is the preferred, faster complement algorithm.
func (p *Problem) ComplementBySubtract(l *List) *List {
	result := NewList(p)
	p.ComputeCounts(l)
	doMCC := !p.IsUnate()

	result.AppendCopy(p.UniversalCube())
	p.Subtract(result, l, doMCC)

	p.ExpandWithOffSet(result, l)
	p.MultiCubeContainment(result)
	return result
}

// ComplementByCofactor computes the complement of l via recursive
// cofactor split on the max binate variable, falling back to
// ComplementBySubtract once the list is unate. Retained for
// completeness and cross-checking; ComplementBySubtract is the
// documented default and is what Complement calls.
func (p *Problem) ComplementByCofactor(l *List) *List {
	n := p.complementByCofactorSub(l, 0)
	p.MultiCubeContainment(n)
	return n
}

func (p *Problem) complementByCofactorSub(l *List, depth int) *List {
	if depth >= p.maxRecursionDepth {
		panic("bc: cofactor complement recursion depth exceeded")
	}
	p.ComputeCounts(l)
	varPos := p.MaxBinateSplitVar()
	if varPos == NoSplitVar {
		result := NewList(p)
		result.AppendCopy(p.UniversalCube())
		p.Subtract(result, l, false)
		return result
	}

	f1 := p.CofactorByVar(l, varPos, Zero)
	p.SimpleExpand(f1)

	f2 := p.CofactorByVar(l, varPos, One)
	p.SimpleExpand(f2)

	cf1 := p.complementByCofactorSub(f1, depth+1)
	cf2 := p.complementByCofactorSub(f2, depth+1)

	for i := 0; i < cf1.Count(); i++ {
		if cf1.IsLive(i) {
			p.SetVar(cf1.Get(i), varPos, One)
		}
	}
	p.SingleCubeContainment(cf1)

	for i := 0; i < cf2.Count(); i++ {
		if cf2.IsLive(i) {
			p.SetVar(cf2.Get(i), varPos, Zero)
		}
	}
	p.SingleCubeContainment(cf2)

	// merge: cubes in cf2 that, once temporarily flipped to the
	// varPos=One polarity cf1 uses, exactly equal some cf1 cube get
	// folded into that cf1 cube (widened to dontcare at varPos)
	// instead of being carried forward separately.
	for i := 0; i < cf2.Count(); i++ {
		if !cf2.IsLive(i) {
			continue
		}
		c := cf2.Get(i)
		p.SetVar(c, varPos, One)
		for j := 0; j < cf1.Count(); j++ {
			if !cf1.IsLive(j) {
				continue
			}
			if p.CompareCube(c, cf1.Get(j)) == 0 {
				p.SetVar(cf1.Get(j), varPos, DontCare)
				cf2.Kill(i)
				break
			}
		}
		p.SetVar(c, varPos, Zero)
	}

	cf1.AppendAllFrom(cf2)
	p.ExpandWithOffSet(cf1, l)
	p.SingleCubeContainment(cf1)
	return cf1
}

// Complement returns the complement of l using the default
// (subtract-based) algorithm.
func (p *Problem) Complement(l *List) *List {
	return p.ComplementBySubtract(l)
}
