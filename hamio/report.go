// SPDX-License-Identifier: MIT
// Package: hamsynth/hamio
//
// report.go — building and writing synthesis reports.

package hamio

import (
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/qudit-labs/hamsynth/circuit"
	"github.com/qudit-labs/hamsynth/pauli"
	"github.com/qudit-labs/hamsynth/trotter"
)

// NewReport summarizes one synthesis run. runID is caller-supplied (the
// CLI uses a fresh UUID per run); op and res must be the inputs/outputs
// of the same Synthesize call for the counts to be coherent.
func NewReport(runID string, op *pauli.Operator, opts trotter.Options, res trotter.Result) Report {
	rep := Report{
		RunID:      runID,
		Width:      op.Width(),
		TermCount:  op.Canonical().Len(),
		Time:       opts.Time,
		Order:      res.Order,
		Reps:       res.Reps,
		Depth:      res.Depth,
		MaxDepth:   opts.MaxDepth,
		ErrorBound: round1e9(res.ErrorBound),
	}
	if c := res.Circuit; c != nil {
		rep.Gates = GateCounts{
			H:     c.CountKind(circuit.KindH),
			S:     c.CountKind(circuit.KindS),
			Sdg:   c.CountKind(circuit.KindSdg),
			Rz:    c.CountKind(circuit.KindRz),
			CNOT:  c.CountKind(circuit.KindCNOT),
			Total: c.Len(),
		}
	}

	return rep
}

// roundScale stabilizes reported bounds to 1e-9 so report files diff
// cleanly across platforms.
const roundScale = 1e9

func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// WriteReport writes rep as YAML to w.
func WriteReport(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("WriteReport: %w", err)
	}

	return enc.Close()
}

// WriteReportFile writes rep as YAML at path (truncating).
func WriteReportFile(path string, rep Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteReportFile(%s): %w", path, err)
	}

	if err = WriteReport(f, rep); err != nil {
		f.Close()
		return fmt.Errorf("WriteReportFile(%s): %w", path, err)
	}

	return f.Close()
}
