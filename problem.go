// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bc

import (
	"strings"

	"github.com/pkg/errors"
)

// MaxStackFrameDepth bounds the nesting depth of scratch cube stack
// frames, mirroring BCP_MAX_STACK_FRAME_DEPTH in the reference
// implementation.
const MaxStackFrameDepth = 500

// MaxRecursionDepth bounds the recursion depth of the Shannon
// expansion decision procedures (IsTautology, cofactor-based
// complement). Exceeding it is a fatal usage-contract violation, per
// spec.
const MaxRecursionDepth = 2000

// index positions of the four constant cubes kept in a Problem's
// global cube list.
const (
	globalIllegal  = 0
	globalZero     = 1
	globalOne      = 2
	globalDontCare = 3
)

// Problem is a boolean cube problem handle: it owns the variable
// count, a scratch cube arena used as a LIFO temp-cube stack, and a
// small list of constant cubes (illegal/zero/one/dontcare-filled).
// Every List and Cube used with a Problem's methods must have been
// created by that Problem.
//
// Problem also optionally owns a name<->index table used by the expr
// and script packages to resolve identifiers to variable positions.
type Problem struct {
	varCnt int

	scratch    *List
	frameStack []int

	global *List

	zeros []uint16
	ones  []uint16

	varNames []string
	varIndex map[string]int

	maxRecursionDepth int
}

// NewProblem creates a Problem for varCnt variables. varCnt must be
// positive.
func NewProblem(varCnt int) (*Problem, error) {
	if varCnt <= 0 {
		return nil, errors.Errorf("bc: invalid variable count %d", varCnt)
	}
	p := &Problem{
		varCnt:            varCnt,
		zeros:             make([]uint16, varCnt),
		ones:              make([]uint16, varCnt),
		maxRecursionDepth: MaxRecursionDepth,
	}
	p.scratch = newList(p)
	p.global = newList(p)
	for i := 0; i < 4; i++ {
		p.global.AppendEmpty()
	}
	for i := 0; i < p.varCnt; i++ {
		p.SetVar(p.global.Get(globalIllegal), i, Illegal)
		p.SetVar(p.global.Get(globalZero), i, Zero)
		p.SetVar(p.global.Get(globalOne), i, One)
		p.SetVar(p.global.Get(globalDontCare), i, DontCare)
	}
	return p, nil
}

// VarCnt returns the width of the problem.
func (p *Problem) VarCnt() int {
	return p.varCnt
}

// GlobalCube returns the shared constant cube at pos (one of
// globalIllegal, globalZero, globalOne, globalDontCare). Callers must
// not mutate the returned cube.
func (p *Problem) GlobalCube(pos int) Cube {
	return p.global.Get(pos)
}

// UniversalCube returns the shared all-dontcare cube (the universe of
// 2^V minterms). Callers must not mutate the returned cube.
func (p *Problem) UniversalCube() Cube {
	return p.global.Get(globalDontCare)
}

// CopyGlobalCube copies the global constant cube at pos into r.
func (p *Problem) CopyGlobalCube(r Cube, pos int) {
	p.CopyCube(r, p.GlobalCube(pos))
}

// StartCubeStackFrame opens a new scratch frame. Every call must be
// matched by a later EndCubeStackFrame call, in strict LIFO order;
// nesting deeper than MaxStackFrameDepth is a fatal usage-contract
// violation.
func (p *Problem) StartCubeStackFrame() int {
	if len(p.frameStack) >= MaxStackFrameDepth {
		panic("bc: scratch stack frame depth exceeded")
	}
	depth := len(p.frameStack)
	p.frameStack = append(p.frameStack, p.scratch.Count())
	return depth
}

// EndCubeStackFrame closes the frame opened by the matching
// StartCubeStackFrame call, discarding every temp cube acquired since.
// frame is the depth value returned by that call, used only to catch
// misnesting.
func (p *Problem) EndCubeStackFrame(frame int) {
	if len(p.frameStack) == 0 || frame != len(p.frameStack)-1 {
		panic("bc: scratch stack frame underflow or misnesting")
	}
	savedLen := p.frameStack[len(p.frameStack)-1]
	p.frameStack = p.frameStack[:len(p.frameStack)-1]
	p.scratch.Truncate(savedLen)
}

// GetTempCube returns a fresh cube from the scratch arena, valid
// until the enclosing StartCubeStackFrame's matching EndCubeStackFrame
// call. Requires an open frame.
func (p *Problem) GetTempCube() Cube {
	if len(p.frameStack) == 0 {
		panic("bc: GetTempCube called without an open stack frame")
	}
	pos := p.scratch.AppendEmpty()
	if pos < p.frameStack[len(p.frameStack)-1] {
		panic("bc: scratch arena underflow")
	}
	return p.scratch.Get(pos)
}

// VarCountFromString infers a variable count from the first
// non-blank line of s: the number of non-whitespace,
// non-line-terminator characters before the line ends. Returns 0 if s
// has no such line.
func VarCountFromString(s string) int {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		cnt := 0
		for _, r := range line {
			if r == ' ' || r == '\t' {
				continue
			}
			cnt++
		}
		if cnt > 0 {
			return cnt
		}
	}
	return 0
}

// SetVarNames installs an explicit name<->index table, used by the
// expr and script packages to resolve identifiers. names[i] names
// variable i; len(names) must equal p.VarCnt().
func (p *Problem) SetVarNames(names []string) error {
	if len(names) != p.varCnt {
		return errors.Errorf("bc: expected %d variable names, got %d", p.varCnt, len(names))
	}
	idx := make(map[string]int, len(names))
	for i, n := range names {
		if _, dup := idx[n]; dup {
			return errors.Errorf("bc: duplicate variable name %q", n)
		}
		idx[n] = i
	}
	p.varNames = names
	p.varIndex = idx
	return nil
}

// VarIndex resolves a variable name to its index, as installed by
// SetVarNames.
func (p *Problem) VarIndex(name string) (int, bool) {
	i, ok := p.varIndex[name]
	return i, ok
}

// SetMaxRecursionDepth overrides the recursion depth bound (spec.
// default MaxRecursionDepth) that IsTautology and
// ComplementByCofactor enforce for this Problem. depth must be at
// least MaxRecursionDepth's documented floor of 2000; callers that
// need to raise it for exceptionally wide problems may do so.
func (p *Problem) SetMaxRecursionDepth(depth int) {
	p.maxRecursionDepth = depth
}

// VarName returns the name of variable i, or "" if none was set.
func (p *Problem) VarName(i int) string {
	if i < 0 || i >= len(p.varNames) {
		return ""
	}
	return p.varNames[i]
}
