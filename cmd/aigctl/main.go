// SPDX-License-Identifier: MIT
//
// Command aigctl is a small CLI wrapper around the aigkit codec. Its one
// documented subcommand, "live", retypes every OUTPUT PO in an AIGER file
// to JUSTICE and groups them into a single justice property before
// writing the result back out.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aigkit/aigkit/internal/obslog"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "aigctl",
	Short: "Inspect and transform AIGER files",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(liveCmd)
}

func newLogger() *logrus.Logger {
	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}
	return obslog.New(level)
}
