// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bc

import "github.com/gammazero/deque"

type tautologyWork struct {
	l     *List
	depth int
}

// IsTautology decides whether l's union covers every minterm, via
// recursive Shannon expansion on the max binate split variable at
// each level. The recursion is implemented as an explicit LIFO
// worklist (github.com/gammazero/deque) rather than native call
// recursion, so MaxRecursionDepth is enforced as a counted invariant
// instead of risking a stack overflow; the depth-first visitation
// order, and hence the short-circuiting behavior, matches the
// reference recursive algorithm exactly.
func (p *Problem) IsTautology(l *List) bool {
	work := deque.New[tautologyWork]()
	work.PushBack(tautologyWork{l: l, depth: 0})

	for work.Len() > 0 {
		item := work.PopBack()
		cur := item.l

		if cur.Count() == 0 {
			return false
		}
		if item.depth >= p.maxRecursionDepth {
			panic("bc: tautology recursion depth exceeded")
		}

		p.ComputeCounts(cur)
		varPos := p.MaxBinateSplitVar()
		if varPos == NoSplitVar {
			found := false
			for i := 0; i < cur.Count(); i++ {
				if cur.IsLive(i) && p.IsTautologyCube(cur.Get(i)) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
			continue
		}

		f0 := p.CofactorByVar(cur, varPos, Zero)
		f1 := p.CofactorByVar(cur, varPos, One)
		// push f0 first so f1 is processed (and its whole subtree
		// exhausted) before f0, matching the reference's f1-then-f2
		// recursion order.
		work.PushBack(tautologyWork{l: f0, depth: item.depth + 1})
		work.PushBack(tautologyWork{l: f1, depth: item.depth + 1})
	}
	return true
}
