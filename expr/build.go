// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package expr

import (
	"github.com/olikraus/bc"
	"github.com/pkg/errors"
)

// Build lowers n (which must already have had PushNegation applied,
// so every remaining negation sits on a leaf) onto p, returning the
// cube list the expression denotes. Every identifier referenced by n
// must be resolvable via p.VarIndex (see bc.Problem.SetVarNames).
func Build(p *bc.Problem, n *Node) (*bc.List, error) {
	switch n.kind {
	case kindID:
		idx, ok := p.VarIndex(n.ident)
		if !ok {
			return nil, errors.Errorf("expr: unknown identifier %q", n.ident)
		}
		l := bc.NewList(p)
		pos := l.AppendCopy(p.UniversalCube())
		v := bc.One
		if n.negated {
			v = bc.Zero
		}
		p.SetVar(l.Get(pos), idx, v)
		return l, nil
	case kindNum:
		l := bc.NewList(p)
		truth := n.num != 0
		if n.negated {
			truth = !truth
		}
		if truth {
			l.AppendCopy(p.UniversalCube())
		}
		return l, nil
	case kindAnd:
		var acc *bc.List
		for _, c := range n.children {
			cl, err := Build(p, c)
			if err != nil {
				return nil, err
			}
			if acc == nil {
				acc = cl
				continue
			}
			if err := p.Intersection(acc, cl); err != nil {
				return nil, err
			}
		}
		if acc == nil {
			acc = bc.NewList(p)
			acc.AppendCopy(p.UniversalCube())
		}
		return acc, nil
	case kindOr:
		acc := bc.NewList(p)
		for _, c := range n.children {
			cl, err := Build(p, c)
			if err != nil {
				return nil, err
			}
			acc.AppendAllFrom(cl)
		}
		p.SingleCubeContainment(acc)
		return acc, nil
	}
	return nil, errors.Errorf("expr: unknown node kind %d", n.kind)
}

// ParseAndBuild parses s, resolves De Morgan negation to the leaves,
// and lowers the result onto p in one call.
func ParseAndBuild(p *bc.Problem, s string) (*bc.List, error) {
	n, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return Build(p, n.PushNegation())
}
