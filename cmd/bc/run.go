// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/olikraus/bc/script"
)

var runCmd = &cobra.Command{
	Use:   "run <script.json>",
	Short: "Execute a JSON command script against a fresh problem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrapf(err, "run: opening %s", args[0])
		}
		defer f.Close()

		cmds, err := script.Parse(f)
		if err != nil {
			return err
		}
		log.WithField("commands", len(cmds)).Debug("parsed script")

		out, err := script.Run(cmds)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}
