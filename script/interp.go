// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package script

import (
	"encoding/json"
	"io"

	"github.com/olikraus/bc"
	"github.com/olikraus/bc/expr"
	"github.com/pkg/errors"
)

// Parse decodes a script's top-level JSON array of commands.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	dec := json.NewDecoder(r)
	if err := dec.Decode(&cmds); err != nil {
		return nil, errors.Wrap(err, "script: decoding command array")
	}
	return cmds, nil
}

func labelFor(c Command) string {
	if c.Label != "" {
		return c.Label
	}
	return c.Label0
}

// Run executes cmds in order against a fresh bc.Problem sized to fit
// every "bcl" and "expr" argument referenced, and returns a
// JSON-encodable map of every labelled command's output.
//
// Execution is two-phase, per the reference interpreter's contract:
// every "expr" field is parsed first (to collect the full set of
// variable identifiers used anywhere in the script) before the
// problem is sized and any command actually runs.
func Run(cmds []Command) (map[string]interface{}, error) {
	var exprs []string
	for _, c := range cmds {
		if c.Expr != "" {
			exprs = append(exprs, c.Expr)
		}
	}

	var varNames []string
	var nodes []*expr.Node
	if len(exprs) > 0 {
		names, ns, err := expr.CollectVars(exprs)
		if err != nil {
			return nil, err
		}
		varNames, nodes = names, ns
	}

	varCnt := len(varNames)
	if varCnt == 0 {
		for _, c := range cmds {
			for _, line := range c.Bcl {
				if n := bc.VarCountFromString(line); n > 0 {
					varCnt = n
					break
				}
			}
			if varCnt > 0 {
				break
			}
		}
	}
	if varCnt <= 0 {
		return nil, errors.New("script: cannot determine variable count from bcl or expr arguments")
	}

	p, err := bc.NewProblem(varCnt)
	if err != nil {
		return nil, err
	}
	if len(varNames) > 0 {
		if err := p.SetVarNames(varNames); err != nil {
			return nil, err
		}
	}

	slots := make([]*bc.List, slotCount)
	out := map[string]interface{}{}
	exprIdx := 0

	for _, c := range cmds {
		var arg *bc.List
		switch {
		case len(c.Bcl) > 0:
			l := bc.NewList(p)
			for _, line := range c.Bcl {
				l.AppendFromString(line)
			}
			arg = l
		case c.Expr != "":
			if exprIdx >= len(nodes) {
				return nil, errors.New("script: internal error walking parsed expressions")
			}
			built, err := expr.Build(p, nodes[exprIdx])
			if err != nil {
				return nil, err
			}
			exprIdx++
			arg = built
		default:
			if c.Slot >= 0 && c.Slot < slotCount {
				arg = slots[c.Slot]
			}
		}

		switch c.Cmd {
		case "bcl2slot":
			if arg == nil {
				return nil, errors.New("script: bcl2slot requires a bcl or expr argument")
			}
			slots[c.Slot] = arg

		case "show":
			if arg == nil {
				return nil, errors.Errorf("script: show has no argument (slot %d empty)", c.Slot)
			}
			out[labelFor(c)] = arg.String()

		case "intersection0":
			if arg == nil {
				return nil, errors.New("script: intersection0 requires an argument")
			}
			if slots[0] == nil {
				slots[0] = bc.NewList(p)
			}
			if err := p.Intersection(slots[0], arg); err != nil {
				return nil, err
			}
			out[labelFor(c)] = map[string]interface{}{"empty": slots[0].Count() == 0}

		case "subtract0":
			if arg == nil {
				return nil, errors.New("script: subtract0 requires an argument")
			}
			if slots[0] == nil {
				slots[0] = bc.NewList(p)
			}
			p.Subtract(slots[0], arg, true)
			out[labelFor(c)] = map[string]interface{}{"empty": slots[0].Count() == 0}

		case "equal0":
			if arg == nil {
				return nil, errors.New("script: equal0 requires an argument")
			}
			if slots[0] == nil {
				slots[0] = bc.NewList(p)
			}
			out[labelFor(c)] = map[string]interface{}{
				"superset": p.IsSubset(slots[0], arg),
				"subset":   p.IsSubset(arg, slots[0]),
			}

		case "exchange0":
			slots[0], slots[c.Slot] = slots[c.Slot], slots[0]

		case "copy0":
			if slots[0] == nil {
				return nil, errors.New("script: copy0 requires a non-empty slot 0")
			}
			slots[c.Slot] = slots[0].Clone()

		default:
			return nil, errors.Errorf("script: unknown command %q", c.Cmd)
		}
	}

	return out, nil
}
