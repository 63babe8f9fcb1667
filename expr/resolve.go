// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package expr

import "github.com/pkg/errors"

// CollectVars parses every expression in exprs and returns the union
// of their identifiers, in first-seen order across the whole batch.
// Callers use this to size a bc.Problem before any expression is
// lowered onto it: the reference implementation runs exactly this
// two-phase scheme, first collecting every variable name across a
// whole script, then resizing the problem, then evaluating.
func CollectVars(exprs []string) ([]string, []*Node, error) {
	seen := map[string]bool{}
	var vars []string
	nodes := make([]*Node, len(exprs))
	for i, s := range exprs {
		n, err := Parse(s)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "expr: parsing %q", s)
		}
		n = n.PushNegation()
		nodes[i] = n
		for _, id := range n.Identifiers() {
			if !seen[id] {
				seen[id] = true
				vars = append(vars, id)
			}
		}
	}
	return vars, nodes, nil
}
