// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen builds random Boolean cube lists of controllable size
// for regression testing, and a self-test harness exercising the bc
// package's decision procedures and algebra against them.
package gen
