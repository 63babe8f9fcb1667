// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/olikraus/bc/internal/config"
)

// logFormat is defined directly on pflag.CommandLine, in the style of
// a standalone global flag, rather than through cobra's wrapper; it is
// merged into the root command's flag set in init below.
var logFormat = pflag.String("log-format", "text", "log output format: text or json")

var (
	log     = logrus.New()
	cfgPath string
	cfg     = config.Default()
	verbose bool
	rootCmd = &cobra.Command{
		Use:   "bc",
		Short: "Boolean cube-list algebra engine",
		Long:  "bc runs and inspects Boolean cube-list (sum-of-products) computations: JSON command scripts, a random-tautology regression harness, and a plain-text cube-file reader.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			if *logFormat == "json" {
				log.SetFormatter(&logrus.JSONFormatter{})
			}
			if cfgPath == "" {
				return nil
			}
			loaded, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().AddFlagSet(pflag.CommandLine)
	rootCmd.AddCommand(runCmd, selfTestCmd, dimacsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("bc failed")
		os.Exit(1)
	}
}
