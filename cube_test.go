// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProblem(t *testing.T, varCnt int) *Problem {
	p, err := NewProblem(varCnt)
	require.NoError(t, err)
	return p
}

func TestClrCubeIsUniversal(t *testing.T) {
	p := newTestProblem(t, 4)
	c := newCube(4)
	p.ClrCube(c)
	for i := 0; i < 4; i++ {
		assert.Equal(t, DontCare, p.GetVar(c, i))
	}
	assert.True(t, p.IsTautologyCube(c))
}

func TestSetGetVarRoundTrip(t *testing.T) {
	p := newTestProblem(t, 3)
	c := newCube(3)
	p.SetVar(c, 0, Zero)
	p.SetVar(c, 1, One)
	p.SetVar(c, 2, DontCare)
	assert.Equal(t, Zero, p.GetVar(c, 0))
	assert.Equal(t, One, p.GetVar(c, 1))
	assert.Equal(t, DontCare, p.GetVar(c, 2))
}

func TestSetVarOutOfRangePanics(t *testing.T) {
	p := newTestProblem(t, 2)
	c := newCube(2)
	assert.Panics(t, func() { p.SetVar(c, 2, Zero) })
	assert.Panics(t, func() { p.SetVar(c, -1, Zero) })
}

func TestCopyCubeIsIndependent(t *testing.T) {
	p := newTestProblem(t, 2)
	a := newCube(2)
	b := newCube(2)
	p.SetVar(a, 0, One)
	p.CopyCube(b, a)
	p.SetVar(a, 0, Zero)
	assert.Equal(t, One, p.GetVar(b, 0))
	assert.Equal(t, Zero, p.GetVar(a, 0))
}

func TestCompareCube(t *testing.T) {
	p := newTestProblem(t, 2)
	a, b := newCube(2), newCube(2)
	p.ClrCube(a)
	p.ClrCube(b)
	assert.Equal(t, 0, p.CompareCube(a, b))
	p.SetVar(b, 0, Zero)
	assert.NotEqual(t, 0, p.CompareCube(a, b))
}

func TestIsIllegal(t *testing.T) {
	p := newTestProblem(t, 2)
	c := newCube(2)
	p.ClrCube(c)
	assert.False(t, p.IsIllegal(c))
	p.SetVar(c, 0, Illegal)
	assert.True(t, p.IsIllegal(c))
}

func TestIntersectionCubeLegalAndIllegal(t *testing.T) {
	p := newTestProblem(t, 2)
	a, b, r := newCube(2), newCube(2), newCube(2)
	p.SetVar(a, 0, Zero)
	p.SetVar(a, 1, DontCare)
	p.SetVar(b, 0, DontCare)
	p.SetVar(b, 1, One)
	ok := p.IntersectionCube(r, a, b)
	assert.True(t, ok)
	assert.Equal(t, Zero, p.GetVar(r, 0))
	assert.Equal(t, One, p.GetVar(r, 1))

	p.SetVar(b, 0, One)
	ok = p.IntersectionCube(r, a, b)
	assert.False(t, ok)
}

func TestIsSubsetCube(t *testing.T) {
	p := newTestProblem(t, 2)
	a, b := newCube(2), newCube(2)
	p.SetVar(a, 0, DontCare)
	p.SetVar(a, 1, DontCare)
	p.SetVar(b, 0, Zero)
	p.SetVar(b, 1, One)
	assert.True(t, p.IsSubsetCube(a, b))
	assert.False(t, p.IsSubsetCube(b, a))
}

func TestVariableCountAndDelta(t *testing.T) {
	p := newTestProblem(t, 3)
	a, b := newCube(3), newCube(3)
	p.SetVar(a, 0, Zero)
	p.SetVar(a, 1, DontCare)
	p.SetVar(a, 2, One)
	assert.Equal(t, 2, p.VariableCount(a))

	p.CopyCube(b, a)
	assert.Equal(t, 0, p.Delta(a, b))
	p.SetVar(b, 2, Zero)
	assert.Equal(t, 1, p.Delta(a, b))
}

func TestStringFromCubeAndSetCubeByString(t *testing.T) {
	p := newTestProblem(t, 4)
	c := newCube(4)
	n := p.SetCubeByString(c, "10-x")
	assert.Equal(t, 4, n)
	assert.Equal(t, "10-x", p.StringFromCube(c))
}

func TestSetCubeByStringSkipsWhitespace(t *testing.T) {
	p := newTestProblem(t, 3)
	c := newCube(3)
	p.SetCubeByString(c, " 1 0-")
	assert.Equal(t, "10-", p.StringFromCube(c))
}
