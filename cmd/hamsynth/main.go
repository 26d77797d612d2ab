// SPDX-License-Identifier: MIT

// Command hamsynth synthesizes quantum circuits approximating exp(-iHt)
// for Pauli-sum Hamiltonians under an optional depth budget.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// envPrefix scopes environment overrides: HAMSYNTH_TIME, HAMSYNTH_MAX_DEPTH...
const envPrefix = "HAMSYNTH"

var (
	// Global flags
	verbose bool

	// Logger, built once in the root PersistentPreRunE.
	logger *zap.Logger
)

// rootCmd is the base command; subcommands do the actual work.
var rootCmd = &cobra.Command{
	Use:   "hamsynth",
	Short: "Product-formula circuit synthesis for Pauli-sum Hamiltonians",
	Long: `hamsynth compiles the time evolution exp(-iHt) of a Pauli-sum
Hamiltonian H into a one- and two-qubit gate circuit using Trotter-Suzuki
product formulas, picking the formula order and repetition count that
minimize the analytic error bound under a circuit-depth budget.

Hamiltonians are YAML documents:

  width: 3
  terms:
    - pauli: ZZI
      coeff: 1.0
    - pauli: XII
      coeff: -0.5

Every flag can also be set through the environment with the HAMSYNTH_
prefix (e.g. HAMSYNTH_MAX_DEPTH=128).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(synthCmd, inspectCmd, modelsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
