// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/qudit-labs/hamsynth/circuit"
	"github.com/qudit-labs/hamsynth/hamio"
	"github.com/qudit-labs/hamsynth/trotter"
)

// synthCmd compiles exp(-iHt) into a circuit under the given constraints.
var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Synthesize a circuit for exp(-iHt) under a depth budget",
	Long: `Reads a Hamiltonian document, picks the product-formula order and
repetition count minimizing the analytic error bound within the depth
budget, and emits the circuit as OpenQASM plus an optional YAML report.

Example:
  hamsynth synth --file h.yaml --time 1.0 --max-depth 128 --qasm out.qasm`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
	RunE: runSynth,
}

func init() {
	f := synthCmd.Flags()
	f.String("file", "", "Hamiltonian YAML document (required)")
	f.Float64("time", 1.0, "evolution time t in exp(-iHt)")
	f.Int("max-depth", 0, "circuit depth budget; 0 means unconstrained")
	f.Int("order", 0, "force a formula order (1 or even); 0 selects automatically")
	f.Int("reps", 0, "force the repetition count; 0 selects automatically")
	f.Float64("target", 0, "error-bound target; early-stop under a depth budget")
	f.String("qasm", "", "write the circuit as OpenQASM 3 to this path")
	f.String("report", "", "write a YAML synthesis report to this path")
	_ = synthCmd.MarkFlagRequired("file")
}

func runSynth(cmd *cobra.Command, args []string) error {
	runID := uuid.NewString()
	path := viper.GetString("file")

	op, err := hamio.DecodeFile(path)
	if err != nil {
		return err
	}
	logger.Info("Hamiltonian loaded",
		zap.String("run_id", runID),
		zap.String("file", path),
		zap.Int("width", op.Width()),
		zap.Int("terms", op.Len()))

	reg, err := circuit.NewRegister(op.Width())
	if err != nil {
		return err
	}

	opts := trotter.DefaultOptions(viper.GetFloat64("time"))
	opts.MaxDepth = viper.GetInt("max-depth")
	opts.Order = viper.GetInt("order")
	opts.Reps = viper.GetInt("reps")
	opts.Target = viper.GetFloat64("target")

	res, err := trotter.Synthesize(op, reg, opts)
	if err != nil {
		return err
	}
	logger.Info("Synthesis complete",
		zap.String("run_id", runID),
		zap.Int("order", res.Order),
		zap.Int("reps", res.Reps),
		zap.Int("depth", res.Depth),
		zap.Float64("error_bound", res.ErrorBound),
		zap.Int("gates", res.Circuit.Len()))

	if out := viper.GetString("qasm"); out != "" {
		if err = os.WriteFile(out, []byte(res.Circuit.QASM()), 0o644); err != nil {
			return fmt.Errorf("writing qasm: %w", err)
		}
		logger.Info("QASM written", zap.String("path", out))
	}
	if out := viper.GetString("report"); out != "" {
		rep := hamio.NewReport(runID, op, opts, res)
		if err = hamio.WriteReportFile(out, rep); err != nil {
			return err
		}
		logger.Info("Report written", zap.String("path", out))
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"run %s: order=%d reps=%d depth=%d bound=%.3g gates=%d\n",
		runID, res.Order, res.Reps, res.Depth, res.ErrorBound, res.Circuit.Len())

	return nil
}
