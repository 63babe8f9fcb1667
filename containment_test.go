// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleCubeContainmentRemovesSubsets(t *testing.T) {
	// "---" subsumes everything else.
	_, l, err := ParseString(nil, "0--\n---\n1--\n")
	require.NoError(t, err)
	p := l.Problem()
	p.SingleCubeContainment(l)
	assert.Equal(t, 1, l.Count())
	assert.Equal(t, "---", p.StringFromCube(l.Get(0)))
}

func TestSingleCubeContainmentDropsDuplicate(t *testing.T) {
	_, l, err := ParseString(nil, "10\n10\n01\n")
	require.NoError(t, err)
	p := l.Problem()
	p.SingleCubeContainment(l)
	assert.Equal(t, 2, l.Count())
}

func TestMultiCubeContainmentExample(t *testing.T) {
	// V=3 example: {-11, 110, 11-, 0--} reduces to {0--, 11-, -11}.
	_, l, err := ParseString(nil, "-11\n110\n11-\n0--\n")
	require.NoError(t, err)
	p := l.Problem()
	p.SingleCubeContainment(l)
	p.MultiCubeContainment(l)
	assert.Equal(t, 3, l.Count())

	want := map[string]bool{"0--": true, "11-": true, "-11": true}
	got := map[string]bool{}
	for i := 0; i < l.Count(); i++ {
		got[p.StringFromCube(l.Get(i))] = true
	}
	assert.Equal(t, want, got)
}

func TestIsCubeCoveredAndRedundant(t *testing.T) {
	_, l, err := ParseString(nil, "0-\n1-\n")
	require.NoError(t, err)
	p := l.Problem()
	c := newCube(2)
	p.SetCubeByString(c, "00")
	assert.True(t, p.IsCubeCovered(l, c))

	l.AppendFromString("00")
	assert.True(t, p.IsCubeRedundant(l, l.Count()-1))
}
