// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qudit-labs/hamsynth/hamio"
)

// inspectCmd summarizes a Hamiltonian document without synthesizing.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print structural facts about a Hamiltonian document",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("file", "", "Hamiltonian YAML document (required)")
	_ = inspectCmd.MarkFlagRequired("file")
}

func runInspect(cmd *cobra.Command, args []string) error {
	op, err := hamio.DecodeFile(viper.GetString("file"))
	if err != nil {
		return err
	}

	canon := op.Canonical()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "width:      %d\n", canon.Width())
	fmt.Fprintf(out, "terms:      %d\n", canon.Len())
	fmt.Fprintf(out, "weight:     %g\n", canon.Weight())
	fmt.Fprintf(out, "max |c|:    %g\n", canon.MaxCoeff())
	fmt.Fprintf(out, "commuting:  %t\n", canon.AllCommute())

	return nil
}
