// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bc

import "math"

const maxCount = math.MaxInt16

// ComputeCounts recomputes, for each variable i, the number of live
// cubes of l where i is Zero and the number where i is One. The table
// is stored on p and is invalidated by any subsequent mutation of l;
// callers must recompute before consulting IsUnate/MaxBinateSplitVar/
// MaxSplitVar again for a different list, or after mutating l.
//
// Counts saturate at 2^15-1 rather than overflow their uint16 backing
// store.
func (p *Problem) ComputeCounts(l *List) {
	for i := range p.zeros {
		p.zeros[i] = 0
		p.ones[i] = 0
	}
	for j := 0; j < l.Count(); j++ {
		if !l.IsLive(j) {
			continue
		}
		c := l.Get(j)
		for i := 0; i < p.varCnt; i++ {
			switch p.GetVar(c, i) {
			case Zero:
				if p.zeros[i] < maxCount {
					p.zeros[i]++
				}
			case One:
				if p.ones[i] < maxCount {
					p.ones[i]++
				}
			}
		}
	}
}

// IsUnate reports whether every variable appears in at most one
// polarity across the list ComputeCounts was last run on.
func (p *Problem) IsUnate() bool {
	for i := 0; i < p.varCnt; i++ {
		if p.zeros[i] != 0 && p.ones[i] != 0 {
			return false
		}
	}
	return true
}

// sentinel returned by MaxBinateSplitVar/MaxSplitVar when no
// eligible variable exists.
const NoSplitVar = -1

// MaxBinateSplitVar returns the binate variable (zeros[i]>0 and
// ones[i]>0) maximizing zeros[i]+ones[i], breaking ties toward the
// lowest index. Returns NoSplitVar if the list is unate. Requires a
// prior ComputeCounts call.
func (p *Problem) MaxBinateSplitVar() int {
	best := NoSplitVar
	var bestScore uint32
	for i := 0; i < p.varCnt; i++ {
		if p.zeros[i] == 0 || p.ones[i] == 0 {
			continue
		}
		score := uint32(p.zeros[i]) + uint32(p.ones[i])
		if best == NoSplitVar || score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}

// MaxSplitVar is the non-binate-requiring variant of
// MaxBinateSplitVar: any variable with a non-zero count is eligible.
// Requires a prior ComputeCounts call.
func (p *Problem) MaxSplitVar() int {
	best := NoSplitVar
	var bestScore uint32
	for i := 0; i < p.varCnt; i++ {
		score := uint32(p.zeros[i]) + uint32(p.ones[i])
		if score == 0 {
			continue
		}
		if best == NoSplitVar || score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}
