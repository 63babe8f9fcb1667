// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bc

// SimpleExpand performs a nested pairwise scan over l: for every pair
// of live cubes at distance 1 (differing in exactly one variable), it
// attempts to widen one of them at the differing variable to DontCare
// if the half that the widening adds is already covered by the other
// cube (so the function l denotes does not change), and then kills
// any further cube that becomes subsumed by the widened cube. The
// transformation only ever grows cubes; which side of a symmetric
// pair widens first depends on cube order.
func (p *Problem) SimpleExpand(l *List) {
	cnt := l.Count()
	for i := 0; i < cnt; i++ {
		if !l.IsLive(i) {
			continue
		}
		for j := 0; j < cnt; j++ {
			if i == j || !l.IsLive(j) {
				continue
			}
			ci, cj := l.Get(i), l.Get(j)
			if p.Delta(ci, cj) != 1 {
				continue
			}
			v := p.diffVar(ci, cj)
			if p.tryWiden(l, i, j, v) {
				continue
			}
			p.tryWiden(l, j, i, v)
		}
	}
	l.Purge()
}

// diffVar returns the single variable at which a and b differ,
// assuming Delta(a, b) == 1.
func (p *Problem) diffVar(a, b Cube) int {
	for i := 0; i < p.varCnt; i++ {
		if p.GetVar(a, i)&p.GetVar(b, i) == 0 {
			return i
		}
	}
	return -1
}

// tryWiden attempts to widen l.Get(growPos) at variable v to DontCare,
// provided the minterms the widening adds (the cube with v flipped)
// already lie inside l.Get(coveredPos); on success it also kills any
// other live cube subsumed by the widened cube.
func (p *Problem) tryWiden(l *List, growPos, coveredPos, v int) bool {
	c := l.Get(growPos)
	orig := p.GetVar(c, v)
	p.SetVar(c, v, orig^DontCare)
	if !p.IsSubsetCube(l.Get(coveredPos), c) {
		p.SetVar(c, v, orig)
		return false
	}
	p.SetVar(c, v, DontCare)
	for k := 0; k < l.Count(); k++ {
		if k == growPos || !l.IsLive(k) {
			continue
		}
		if p.IsSubsetCube(c, l.Get(k)) {
			l.Kill(k)
		}
	}
	return true
}

// ExpandWithOffSet grows every live cube of l to the largest prime
// implicant that does not intersect off: for each non-dontcare
// variable of a cube, the variable is tentatively widened to
// DontCare; if the widened cube then intersects any live cube of off,
// the widening is reverted, otherwise it is kept. off must correctly
// denote an off-set of l's current function. No cube is added or
// removed; callers should re-run containment afterward.
func (p *Problem) ExpandWithOffSet(l *List, off *List) {
	for i := 0; i < l.Count(); i++ {
		if !l.IsLive(i) {
			continue
		}
		c := l.Get(i)
		for v := 0; v < p.varCnt; v++ {
			orig := p.GetVar(c, v)
			if orig == DontCare {
				continue
			}
			p.SetVar(c, v, DontCare)
			intersects := false
			for k := 0; k < off.Count(); k++ {
				if !off.IsLive(k) {
					continue
				}
				if p.IsIntersectionCube(c, off.Get(k)) {
					intersects = true
					break
				}
			}
			if intersects {
				p.SetVar(c, v, orig)
			}
		}
	}
}
