// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/olikraus/bc/gen"
)

var selfTestSeed int64

var selfTestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the random-tautology regression harness",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen.Seed(selfTestSeed)
		log.WithFields(map[string]interface{}{
			"varCount": cfg.SelfTestVarCount,
			"seed":     selfTestSeed,
		}).Info("running selftest")
		return gen.SelfTest(cfg.SelfTestVarCount, cfg.MaxRecursionDepth, log)
	},
}

func init() {
	selfTestCmd.Flags().Int64Var(&selfTestSeed, "seed", 33, "random seed for the tautology generator")
}
