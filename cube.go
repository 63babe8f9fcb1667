// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bc

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Cube is a fixed-width vector of two-bit variable fields. Variable i
// occupies bits 2i (low) and 2i+1 (high) of the underlying bitset;
// the pair (lo, hi) equals the Value encoding (Illegal=00, Zero=01,
// One=10, DontCare=11). All cubes belonging to the same Problem have
// the same bit length.
//
// A Cube is a thin handle over shared storage; copying a Cube value
// copies the pointer, not the bits. Use Problem.CopyCube to duplicate
// contents.
type Cube struct {
	bits *bitset.BitSet
}

func newCube(nbits uint) Cube {
	return Cube{bits: bitset.New(2 * nbits)}
}

// IsNil reports whether c has no backing storage.
func (c Cube) IsNil() bool {
	return c.bits == nil
}

// ClrCube resets every variable of c to DontCare (the universal cube
// over c's width).
func (p *Problem) ClrCube(c Cube) {
	for i := 0; i < p.varCnt; i++ {
		p.SetVar(c, i, DontCare)
	}
}

// SetVar writes value v at variable position i of cube c. Precondition:
// i < p.varCnt; violating it is a usage-contract error and panics.
func (p *Problem) SetVar(c Cube, i int, v Value) {
	if i < 0 || i >= p.varCnt {
		panic("bc: variable index out of range")
	}
	lo := uint(2 * i)
	c.bits.SetTo(lo, v&1 != 0)
	c.bits.SetTo(lo+1, v&2 != 0)
}

// GetVar reads the value of variable i of cube c.
func (p *Problem) GetVar(c Cube, i int) Value {
	if i < 0 || i >= p.varCnt {
		panic("bc: variable index out of range")
	}
	lo := uint(2 * i)
	var v Value
	if c.bits.Test(lo) {
		v |= 1
	}
	if c.bits.Test(lo + 1) {
		v |= 2
	}
	return v
}

// CopyCube copies the contents of src into dest. Both must belong to
// p and have equal width.
func (p *Problem) CopyCube(dest, src Cube) {
	dest.bits.ClearAll()
	dest.bits.InPlaceUnion(src.bits)
}

// CompareCube returns 0 if a and b encode identically, non-zero
// otherwise. It mirrors bcp_CompareCube's byte-equality semantics.
func (p *Problem) CompareCube(a, b Cube) int {
	if a.bits.Equal(b.bits) {
		return 0
	}
	return 1
}

// IsIllegal reports whether c contains any variable with the Illegal
// (00) code.
func (p *Problem) IsIllegal(c Cube) bool {
	for i := 0; i < p.varCnt; i++ {
		if p.GetVar(c, i) == Illegal {
			return true
		}
	}
	return false
}

// IsTautologyCube reports whether every variable of c is DontCare.
func (p *Problem) IsTautologyCube(c Cube) bool {
	return c.bits.All()
}

// IntersectionCube computes r = a AND b fieldwise and reports whether
// the result is legal (no variable field went to Illegal). r must be
// distinct storage from a and b.
func (p *Problem) IntersectionCube(r, a, b Cube) bool {
	r.bits.ClearAll()
	r.bits.InPlaceUnion(a.bits)
	r.bits.InPlaceIntersection(b.bits)
	return !p.IsIllegal(r)
}

// IsIntersectionCube reports whether a and b have a non-empty
// intersection, without materializing the result cube.
func (p *Problem) IsIntersectionCube(a, b Cube) bool {
	frame := p.StartCubeStackFrame()
	defer p.EndCubeStackFrame(frame)
	tmp := p.GetTempCube()
	return p.IntersectionCube(tmp, a, b)
}

// IsSubsetCube reports whether b is a subset of a, i.e. every minterm
// of b is also a minterm of a: (a AND b) == b.
func (p *Problem) IsSubsetCube(a, b Cube) bool {
	frame := p.StartCubeStackFrame()
	defer p.EndCubeStackFrame(frame)
	tmp := p.GetTempCube()
	tmp.bits.ClearAll()
	tmp.bits.InPlaceUnion(a.bits)
	tmp.bits.InPlaceIntersection(b.bits)
	return tmp.bits.Equal(b.bits)
}

// VariableCount returns the number of variables of c that are Zero or
// One (i.e. not DontCare). c must not contain Illegal fields.
func (p *Problem) VariableCount(c Cube) int {
	cnt := 0
	for i := 0; i < p.varCnt; i++ {
		if p.GetVar(c, i) != DontCare {
			cnt++
		}
	}
	return cnt
}

// Delta returns the number of variables where a and b disagree, i.e.
// where a(i) AND b(i) would be Illegal. Neither cube may contain
// Illegal fields.
func (p *Problem) Delta(a, b Cube) int {
	cnt := 0
	for i := 0; i < p.varCnt; i++ {
		av, bv := p.GetVar(a, i), p.GetVar(b, i)
		if av&bv == 0 {
			cnt++
		}
	}
	return cnt
}

// StringFromCube renders c using the textual cube alphabet (x, 0, 1, -).
func (p *Problem) StringFromCube(c Cube) string {
	var sb strings.Builder
	sb.Grow(p.varCnt)
	for i := 0; i < p.varCnt; i++ {
		sb.WriteString(p.GetVar(c, i).String())
	}
	return sb.String()
}

// SetCubeByString assigns c's variables from s, per the textual cube
// format: '0'->Zero, '1'->One, '-'->DontCare, 'x'->Illegal, any other
// non-terminator defaults to DontCare, ' '/'\t' are skipped, and
// '\0' (end of string)/'\r'/'\n' terminate early leaving trailing
// variables untouched. Returns the number of runes consumed from s.
func (p *Problem) SetCubeByString(c Cube, s string) int {
	i := 0
	consumed := 0
	runes := []rune(s)
	for pos := 0; i < p.varCnt && pos < len(runes); {
		r := runes[pos]
		if r == ' ' || r == '\t' {
			pos++
			consumed++
			continue
		}
		if r == '\r' || r == '\n' {
			break
		}
		p.SetVar(c, i, valueFromRune(r))
		i++
		pos++
		consumed = pos
	}
	return consumed
}
