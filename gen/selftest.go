// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"github.com/olikraus/bc"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SelfTest runs the regression chain from the reference
// implementation's internal self-test against a fresh random
// tautology of the given width: tautology detection, copy, subtract,
// intersection, complement (both algorithms) and re-verification via
// tautology, logging each step through log. It returns the first
// violated invariant as an error, or nil if every check passed.
//
// maxRecursionDepth overrides the Problem's recursion depth bound
// (see bc.Problem.SetMaxRecursionDepth); pass 0 to keep the package
// default.
func SelfTest(varCnt int, maxRecursionDepth int, log *logrus.Logger) error {
	if log == nil {
		log = logrus.New()
	}
	p, err := bc.NewProblem(varCnt)
	if err != nil {
		return err
	}
	if maxRecursionDepth > 0 {
		p.SetMaxRecursionDepth(maxRecursionDepth)
	}

	t := RandomTautology(p, varCnt, 0)
	r := RandomTautology(p, varCnt, varCnt)

	log.WithField("size", t.Count()).Info("tautology test 1")
	if !p.IsTautology(t) {
		return errors.New("bc: freshly built random tautology failed IsTautology")
	}

	log.Info("copy test")
	l := bc.NewList(p)
	l.CopyFrom(t)
	if l.Count() != t.Count() {
		return errors.New("bc: CopyFrom did not preserve cube count")
	}

	log.Info("tautology test 2")
	if !p.IsTautology(l) {
		return errors.New("bc: copy of a tautology is not a tautology")
	}

	log.Info("subtract test 1")
	p.Subtract(l, t, true)
	if l.Count() != 0 {
		return errors.Errorf("bc: t \\ t should be empty, got %d cubes", l.Count())
	}

	log.Info("tautology test 3 (mutated list must not be a tautology)")
	if p.IsTautology(r) {
		return errors.New("bc: mutated random tautology unexpectedly still a tautology")
	}

	log.Info("subtract test 2 (complement via universal cube)")
	l.Clear()
	l.AppendCopy(p.UniversalCube())
	p.Subtract(l, r, true)
	if l.Count() == 0 {
		return errors.New("bc: complement of a non-tautology must be non-empty")
	}

	log.Info("intersection test")
	m := bc.NewList(p)
	if err := p.IntersectionInto(m, l, r); err != nil {
		return err
	}
	if m.Count() != 0 {
		return errors.Errorf("bc: complement(r) intersected with r should be empty, got %d cubes", m.Count())
	}

	log.Info("tautology test 4 (complement re-union with r)")
	l.AppendAllFrom(r)
	if !p.IsTautology(l) {
		return errors.New("bc: complement(r) union r must be a tautology")
	}

	log.Info("cofactor complement test")
	n := p.ComplementByCofactor(r)
	if n.Count() == 0 {
		return errors.New("bc: cofactor complement of a non-tautology must be non-empty")
	}

	log.Info("simple expand")
	p.SimpleExpand(n)

	log.Info("intersection test 2")
	m2 := bc.NewList(p)
	if err := p.IntersectionInto(m2, n, r); err != nil {
		return err
	}
	if m2.Count() != 0 {
		return errors.Errorf("bc: cofactor complement of r intersected with r should be empty, got %d cubes", m2.Count())
	}

	log.Info("tautology test 5 (cofactor complement re-union with r)")
	n.AppendAllFrom(r)
	if !p.IsTautology(n) {
		return errors.New("bc: cofactor complement(r) union r must be a tautology")
	}

	log.WithFields(logrus.Fields{"varCnt": varCnt}).Info("self-test passed")
	return nil
}
