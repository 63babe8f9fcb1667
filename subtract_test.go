// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharpExcludesSubtrahend(t *testing.T) {
	p := newTestProblem(t, 2)
	a := newCube(2)
	b := newCube(2)
	p.SetCubeByString(a, "--")
	p.SetCubeByString(b, "00")
	accum := NewList(p)
	p.Sharp(accum, a, b)
	p.SingleCubeContainment(accum)
	assert.True(t, p.IsSubset(accum, accum))
	// a \ b denotes everything except the 00 minterm.
	c := newCube(2)
	p.SetCubeByString(c, "00")
	assert.False(t, p.IsCubeCovered(accum, c))
}

func TestSubtractSelfIsEmpty(t *testing.T) {
	_, a, err := ParseString(nil, "---\n")
	require.NoError(t, err)
	p := a.Problem()
	_, b, err := ParseString(p, "---\n")
	require.NoError(t, err)
	p.Subtract(a, b, true)
	assert.Equal(t, 0, a.Count())
}

func TestSubtractLeavesComplementBehavior(t *testing.T) {
	_, a, err := ParseString(nil, "--\n")
	require.NoError(t, err)
	p := a.Problem()
	_, b, err := ParseString(p, "00\n")
	require.NoError(t, err)
	p.Subtract(a, b, true)
	require.True(t, a.Count() > 0)
	assert.False(t, p.IsTautologyCube(a.Get(0)) && a.Count() == 1)
	// re-union with b must be a tautology again.
	a.AppendAllFrom(b)
	assert.True(t, p.IsTautology(a))
}
