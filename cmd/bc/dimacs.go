// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/olikraus/bc"
)

var dimacsCmd = &cobra.Command{
	Use:   "dimacs <file>",
	Short: "Read a plain-text cube-list file and report its statistics",
	Long:  "Reads one cube per line in the textual cube alphabet; blank lines and lines starting with 'c' (the DIMACS comment convention) are ignored.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "dimacs: reading %s", args[0])
		}

		var kept []string
		for _, line := range strings.Split(string(raw), "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "c") {
				continue
			}
			kept = append(kept, line)
		}

		p, l, err := bc.ParseString(nil, strings.Join(kept, "\n"))
		if err != nil {
			return err
		}
		p.SetMaxRecursionDepth(cfg.MaxRecursionDepth)

		primes := l.Clone()
		p.SingleCubeContainment(primes)
		off := p.ComplementBySubtract(primes)
		p.ExpandWithOffSet(primes, off)
		p.SingleCubeContainment(primes)
		if cfg.DoMCCByDefault {
			p.MultiCubeContainment(primes)
		}

		log.WithFields(map[string]interface{}{
			"varCount":    p.VarCnt(),
			"cubeCount":   l.Count(),
			"isTautology": p.IsTautology(l),
			"primeCount":  primes.Count(),
		}).Info("dimacs stats")
		return nil
	},
}
