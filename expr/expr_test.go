// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package expr

import (
	"testing"

	"github.com/olikraus/bc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifiers(t *testing.T) {
	n, err := Parse("a & !b | c")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, n.Identifiers())
}

func TestPushNegationDeMorgan(t *testing.T) {
	n, err := Parse("!(a & b)")
	require.NoError(t, err)
	pushed := n.PushNegation()
	assert.Equal(t, "(!a|!b)", pushed.String())
}

func TestPushNegationDoubleNegative(t *testing.T) {
	n, err := Parse("!!a")
	require.NoError(t, err)
	pushed := n.PushNegation()
	assert.Equal(t, "a", pushed.String())
}

func TestParseMissingParen(t *testing.T) {
	_, err := Parse("(a & b")
	assert.Error(t, err)
}

func newProblemWithVars(t *testing.T, names ...string) *bc.Problem {
	p, err := bc.NewProblem(len(names))
	require.NoError(t, err)
	require.NoError(t, p.SetVarNames(names))
	return p
}

func TestBuildIdentifierLiteral(t *testing.T) {
	p := newProblemWithVars(t, "a", "b")
	l, err := ParseAndBuild(p, "a")
	require.NoError(t, err)
	require.Equal(t, 1, l.Count())
	assert.Equal(t, bc.One, p.GetVar(l.Get(0), 0))
	assert.Equal(t, bc.DontCare, p.GetVar(l.Get(0), 1))
}

func TestBuildNegatedIdentifier(t *testing.T) {
	p := newProblemWithVars(t, "a")
	l, err := ParseAndBuild(p, "!a")
	require.NoError(t, err)
	assert.Equal(t, bc.Zero, p.GetVar(l.Get(0), 0))
}

func TestBuildAndOr(t *testing.T) {
	p := newProblemWithVars(t, "a", "b", "c")
	l, err := ParseAndBuild(p, "a & !b | c")
	require.NoError(t, err)
	assert.True(t, l.Count() > 0)

	// (a & !b) | c is not a tautology in general.
	assert.False(t, p.IsTautology(l))

	// a | !a is.
	l2, err := ParseAndBuild(p, "a | !a")
	require.NoError(t, err)
	assert.True(t, p.IsTautology(l2))
}

func TestBuildUnknownIdentifierErrors(t *testing.T) {
	p := newProblemWithVars(t, "a")
	_, err := ParseAndBuild(p, "z")
	assert.Error(t, err)
}

func TestCollectVars(t *testing.T) {
	vars, nodes, err := CollectVars([]string{"a & b", "!c | a"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, vars)
	assert.Len(t, nodes, 2)
}
