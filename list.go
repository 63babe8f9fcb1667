// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bc

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	flagLive      byte = 0
	flagTombstone byte = 1
)

// List is an append-only, purge-compactable ordered sequence of
// cubes plus a parallel tombstone flag per cube. A List denotes the
// union (logical OR) of its live cubes; cube order carries no
// semantic weight but is used as a deterministic tie-break by several
// algorithms.
type List struct {
	p     *Problem
	cubes []Cube
	flags []byte
}

// NewList creates an empty cube list belonging to p.
func NewList(p *Problem) *List {
	return newList(p)
}

func newList(p *Problem) *List {
	return &List{p: p}
}

// Clone returns a new List with an independent copy of l's cubes and
// flags.
func (l *List) Clone() *List {
	n := newList(l.p)
	n.cubes = make([]Cube, len(l.cubes))
	n.flags = append([]byte(nil), l.flags...)
	for i, c := range l.cubes {
		nc := newCube(uint(l.p.varCnt))
		l.p.CopyCube(nc, c)
		n.cubes[i] = nc
	}
	return n
}

// CopyFrom makes l a copy of src's content, replacing whatever l held.
func (l *List) CopyFrom(src *List) {
	l.cubes = make([]Cube, len(src.cubes))
	l.flags = append([]byte(nil), src.flags...)
	for i, c := range src.cubes {
		nc := newCube(uint(l.p.varCnt))
		l.p.CopyCube(nc, c)
		l.cubes[i] = nc
	}
}

// Clear empties l without releasing capacity.
func (l *List) Clear() {
	l.cubes = l.cubes[:0]
	l.flags = l.flags[:0]
}

// Truncate shrinks l to its first n entries. Used by Problem's
// scratch-frame arena.
func (l *List) Truncate(n int) {
	l.cubes = l.cubes[:n]
	l.flags = l.flags[:n]
}

// Count returns the total number of entries (live and tombstoned).
func (l *List) Count() int {
	return len(l.cubes)
}

// LiveCount returns the number of non-tombstoned entries.
func (l *List) LiveCount() int {
	n := 0
	for _, f := range l.flags {
		if f == flagLive {
			n++
		}
	}
	return n
}

// Get returns the cube at pos. pos must be < Count().
func (l *List) Get(pos int) Cube {
	return l.cubes[pos]
}

// IsLive reports whether the cube at pos is not tombstoned.
func (l *List) IsLive(pos int) bool {
	return l.flags[pos] == flagLive
}

// Kill tombstones the cube at pos. Callers must Purge before relying
// on Count/Get again treating it as removed.
func (l *List) Kill(pos int) {
	l.flags[pos] = flagTombstone
}

// AppendEmpty appends a fresh all-dontcare cube and returns its
// position.
func (l *List) AppendEmpty() int {
	c := newCube(uint(l.p.varCnt))
	l.p.ClrCube(c)
	l.cubes = append(l.cubes, c)
	l.flags = append(l.flags, flagLive)
	return len(l.cubes) - 1
}

// AppendCopy appends a copy of c and returns its position.
func (l *List) AppendCopy(c Cube) int {
	pos := l.AppendEmpty()
	l.p.CopyCube(l.cubes[pos], c)
	return pos
}

// AppendAllFrom appends every live cube of other to l, without any
// simplification (a plain union of the two lists' cube bags).
func (l *List) AppendAllFrom(other *List) {
	for i := 0; i < other.Count(); i++ {
		if other.IsLive(i) {
			l.AppendCopy(other.Get(i))
		}
	}
}

// AppendFromString appends one cube per non-blank line of s.
func (l *List) AppendFromString(s string) int {
	added := 0
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		pos := l.AppendEmpty()
		l.p.SetCubeByString(l.cubes[pos], line)
		added++
	}
	return added
}

// ParseString builds a new List over p from a cube-list string, one
// cube per line, blank lines ignored. If p is nil, the variable count
// is inferred from the first non-blank line and a new Problem is
// created; either way the resulting Problem is returned alongside the
// List.
func ParseString(p *Problem, s string) (*Problem, *List, error) {
	if p == nil {
		vc := VarCountFromString(s)
		if vc <= 0 {
			return nil, nil, errors.New("bc: cannot infer variable count from empty input")
		}
		var err error
		p, err = NewProblem(vc)
		if err != nil {
			return nil, nil, err
		}
	}
	l := NewList(p)
	l.AppendFromString(s)
	return p, l, nil
}

// Purge removes tombstoned cubes in place, preserving the relative
// order of live cubes, and resets remaining flags to live.
func (l *List) Purge() {
	j := 0
	for i := 0; i < len(l.cubes); i++ {
		if l.flags[i] == flagLive {
			l.cubes[j] = l.cubes[i]
			j++
		}
	}
	l.cubes = l.cubes[:j]
	l.flags = l.flags[:j]
	for i := range l.flags {
		l.flags[i] = flagLive
	}
}

// Show writes l's row dump: "NNNN FF string\n" per entry, NNNN the
// zero-padded index, FF the flag byte in hex, string the cube's
// textual encoding.
func (l *List) Show(w io.Writer) error {
	for i := 0; i < l.Count(); i++ {
		_, err := fmt.Fprintf(w, "%04d %02x %s\n", i, l.flags[i], l.p.StringFromCube(l.cubes[i]))
		if err != nil {
			return err
		}
	}
	return nil
}

// String renders l's live cubes, one per line, in the textual cube
// alphabet, e.g. for use as a Problem-free round-trippable value.
func (l *List) String() string {
	var sb strings.Builder
	for i := 0; i < l.Count(); i++ {
		if !l.IsLive(i) {
			continue
		}
		sb.WriteString(l.p.StringFromCube(l.cubes[i]))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Problem returns the owning Problem.
func (l *List) Problem() *Problem {
	return l.p
}

// varCntList returns, per live cube (indexed by position, dead
// entries hold 0), the number of non-dontcare variables. Used by
// containment to prune subset comparisons: a subset can only have an
// equal-or-greater variable count than its superset.
func varCntList(p *Problem, l *List) []int {
	out := make([]int, l.Count())
	for i := 0; i < l.Count(); i++ {
		if l.IsLive(i) {
			out[i] = p.VariableCount(l.Get(i))
		}
	}
	return out
}
