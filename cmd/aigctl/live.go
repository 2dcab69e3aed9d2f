// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aigkit/aigkit/aig"
	"github.com/aigkit/aigkit/aiger"
)

var liveCmd = &cobra.Command{
	Use:   "live <src> <dst>",
	Short: "Retype all OUTPUT POs to a single JUSTICE property",
	Long: `live reads an AIGER file, retypes every OUTPUT primary output to
JUSTICE, groups them into one justice property, and writes the result to
dst — turning a safety-style OUTPUT set into a liveness check.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLive(args[0], args[1])
	},
}

func runLive(src, dst string) error {
	log := newLogger()

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	g, err := aiger.ReadAIGER(in, aiger.WithReadLogger(log))
	if err != nil {
		return err
	}

	outputs := g.POsByType(aig.POOutput)
	ids := make([]int, len(outputs))
	for i, p := range outputs {
		ids[i] = p.ID
		if err := g.SetPOType(p.ID, aig.POJustice); err != nil {
			return err
		}
	}
	if _, err := g.CreateJustice(ids); err != nil {
		return err
	}
	log.WithField("count", len(ids)).Info("retyped OUTPUT POs to a single justice property")

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = aiger.WriteAIGER(out, g, aiger.WithWriteLogger(log))
	return err
}
