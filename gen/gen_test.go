// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"testing"

	"github.com/olikraus/bc"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomTautologyIsATautology(t *testing.T) {
	Seed(7)
	p, err := bc.NewProblem(6)
	require.NoError(t, err)
	l := RandomTautology(p, 12, 0)
	assert.True(t, p.IsTautology(l))
}

func TestRandomTautologyMinimizesToUniversalCube(t *testing.T) {
	// a random tautology built purely from splits, with no mutation,
	// minimizes back down to the single all-dontcare cube.
	Seed(11)
	for k := 17; k <= 25; k++ {
		p, err := bc.NewProblem(k)
		require.NoError(t, err)
		l := RandomTautology(p, k+2, 0)
		p.Minimize(l)
		require.Equal(t, 1, l.Count(), "size %d", k)
		assert.True(t, p.IsTautologyCube(l.Get(0)))
	}
}

func TestMutateBreaksTautology(t *testing.T) {
	Seed(3)
	p, err := bc.NewProblem(8)
	require.NoError(t, err)
	l := RandomTautology(p, 16, 0)
	require.True(t, p.IsTautology(l))
	Mutate(p, l, 8)
	assert.False(t, p.IsTautology(l))
}

func TestSeedIsReproducible(t *testing.T) {
	Seed(42)
	p1, _ := bc.NewProblem(5)
	l1 := RandomTautology(p1, 10, 0)

	Seed(42)
	p2, _ := bc.NewProblem(5)
	l2 := RandomTautology(p2, 10, 0)

	assert.Equal(t, l1.String(), l2.String())
}

func TestSelfTestPasses(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	for _, n := range []int{4, 6, 10} {
		Seed(int64(n))
		assert.NoError(t, SelfTest(n, 0, log))
	}
}
