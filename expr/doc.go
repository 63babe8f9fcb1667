// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package expr parses infix Boolean expressions ("a & !b | c") into an
// abstract syntax tree and lowers that tree onto a bc.Problem/bc.List,
// pushing De Morgan negation to the leaves before any cube-list
// algebra runs.
package expr
