// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bc

// SingleCubeContainment removes every cube that is a proper subset of
// some other live cube in l, plus one of every equal pair, then
// purges. Comparisons are pruned using each cube's variable count (a
// subset cannot have fewer non-dontcare variables than its
// superset); ties are broken by keeping the lower-index cube.
func (p *Problem) SingleCubeContainment(l *List) {
	vcl := varCntList(p, l)
	cnt := l.Count()
	for i := 0; i < cnt; i++ {
		if !l.IsLive(i) {
			continue
		}
		c := l.Get(i)
		vc := vcl[i]
		for j := 0; j < cnt; j++ {
			if i == j || !l.IsLive(j) {
				continue
			}
			if vcl[j] >= vc && p.IsSubsetCube(c, l.Get(j)) {
				l.Kill(j)
			}
		}
	}
	l.Purge()
}

// IsCubeCovered reports whether cube c is entirely covered by the
// live cubes of l, i.e. c is a subset of the union l denotes.
// Implemented as CofactorByCube(l, c, -1) followed by a tautology
// test.
func (p *Problem) IsCubeCovered(l *List, c Cube) bool {
	cof := p.CofactorByCube(l, c, -1)
	return p.IsTautology(cof)
}

// IsCubeRedundant reports whether the cube at pos is covered by the
// rest of l, i.e. removing it would not shrink the function l
// denotes.
func (p *Problem) IsCubeRedundant(l *List, pos int) bool {
	cof := p.CofactorByCube(l, l.Get(pos), pos)
	return p.IsTautology(cof)
}

// MultiCubeContainment removes every cube whose coverage is subsumed
// by the union of the rest of the list (IsCubeRedundant), then
// purges. Cubes are tried largest-variable-count first (the smallest
// cubes), so the cubes with the fewest literals, which cover the
// most, are tried last and stay available to cover the rest.
func (p *Problem) MultiCubeContainment(l *List) {
	vcl := varCntList(p, l)
	order := make([]int, 0, l.Count())
	for i := 0; i < l.Count(); i++ {
		if l.IsLive(i) {
			order = append(order, i)
		}
	}
	// insertion sort by descending variable count; stable so ties
	// keep list order.
	for i := 1; i < len(order); i++ {
		j := i
		for j > 0 && vcl[order[j]] > vcl[order[j-1]] {
			order[j], order[j-1] = order[j-1], order[j]
			j--
		}
	}
	for _, pos := range order {
		if !l.IsLive(pos) {
			continue
		}
		if p.IsCubeRedundant(l, pos) {
			l.Kill(pos)
		}
	}
	l.Purge()
}
