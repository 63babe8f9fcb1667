// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import "github.com/olikraus/bc"

// RandomTautology builds a list of size cubes that is provably
// tautological: starting from the single all-dontcare cube, it
// repeatedly picks a random live cube position and a random variable
// that is still DontCare in that cube, and splits the cube in two by
// setting the chosen variable to Zero in one copy and One in the
// other. Splitting preserves the union the list denotes, so the
// result stays a tautology at every step.
//
// If dc2one is non-zero, it then applies that many "dontcare-to-one"
// mutations (Mutate), which typically break tautology; callers that
// want a guaranteed-non-tautological list should pass dc2one > 0.
func RandomTautology(p *bc.Problem, size, dc2one int) *bc.List {
	l := bc.NewList(p)
	l.AppendCopy(p.UniversalCube())

	for l.Count() < size {
		cubePos := rng.Intn(l.Count())
		varPos := rng.Intn(p.VarCnt())
		c := l.Get(cubePos)
		if p.GetVar(c, varPos) != bc.DontCare {
			continue
		}
		p.SetVar(c, varPos, bc.Zero)
		newPos := l.AppendCopy(c)
		p.SetVar(l.Get(newPos), varPos, bc.One)
	}

	Mutate(p, l, dc2one)
	return l
}

// Mutate turns count individually-chosen DontCare fields into One,
// each at a random live cube and random still-dontcare variable. This
// typically breaks the tautology property of a list built by
// RandomTautology, producing a controlled non-tautological instance
// for negative-path testing.
func Mutate(p *bc.Problem, l *bc.List, count int) {
	for i := 0; i < count; i++ {
		for {
			cubePos := rng.Intn(l.Count())
			varPos := rng.Intn(p.VarCnt())
			c := l.Get(cubePos)
			if p.GetVar(c, varPos) == bc.DontCare {
				p.SetVar(c, varPos, bc.One)
				break
			}
		}
	}
}
