// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSubsetAgreesAcrossAlgorithms(t *testing.T) {
	_, a, err := ParseString(nil, "0-\n1-\n")
	require.NoError(t, err)
	p := a.Problem()
	_, b, err := ParseString(p, "00\n")
	require.NoError(t, err)

	assert.True(t, p.IsSubsetWithCofactor(a, b))
	assert.True(t, p.IsSubsetWithSubtract(a, b))
	assert.False(t, p.IsSubsetWithCofactor(b, a))
}

func TestIsEqual(t *testing.T) {
	_, a, err := ParseString(nil, "0-\n1-\n")
	require.NoError(t, err)
	p := a.Problem()
	_, b, err := ParseString(p, "--\n")
	require.NoError(t, err)
	assert.True(t, p.IsEqual(a, b))
}
