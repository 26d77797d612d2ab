// SPDX-License-Identifier: MIT

// Package trotter_test provides runnable examples for product-formula
// synthesis. Each example is runnable via "go test -run Example", showing
// both code and expected output.
package trotter_test

import (
	"fmt"

	"github.com/qudit-labs/hamsynth/circuit"
	"github.com/qudit-labs/hamsynth/pauli"
	"github.com/qudit-labs/hamsynth/trotter"
)

// ExampleSynthesize_commuting demonstrates exact synthesis for a
// pairwise-commuting Hamiltonian: one order-1 step, zero error bound.
func ExampleSynthesize_commuting() {
	// 1) Build H = ZZI + IZZ over three qubits. All terms commute.
	op, _ := pauli.NewOperator(3)
	_ = op.Add(pauli.MustWord("ZZI"), 1.0)
	_ = op.Add(pauli.MustWord("IZZ"), 1.0)

	// 2) A register of matching width.
	reg, _ := circuit.NewRegister(3)

	// 3) Synthesize exp(-iH·0.7) with the documented defaults.
	res, err := trotter.Synthesize(op, reg, trotter.DefaultOptions(0.7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) Commuting sums are exact at order 1 with a single repetition.
	fmt.Printf("order=%d reps=%d depth=%d bound=%g\n",
		res.Order, res.Reps, res.Depth, res.ErrorBound)
	// Output: order=1 reps=1 depth=6 bound=0
}

// ExampleSynthesize_depthBudget demonstrates depth-constrained synthesis
// of a transverse-field Ising Hamiltonian: the repetition count fills the
// budget and the reported bound shrinks accordingly.
func ExampleSynthesize_depthBudget() {
	// 1) H = ZZ + 0.5·XI + 0.5·IX over two qubits (non-commuting).
	op, _ := pauli.NewOperator(2)
	_ = op.Add(pauli.MustWord("ZZ"), 1.0)
	_ = op.Add(pauli.MustWord("XI"), 0.5)
	_ = op.Add(pauli.MustWord("IX"), 0.5)

	reg, _ := circuit.NewRegister(2)

	// 2) Cap the circuit at 60 layers.
	opts := trotter.DefaultOptions(1.0)
	opts.MaxDepth = 60

	res, err := trotter.Synthesize(op, reg, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) One order-1 step is 6 layers deep, so 10 repetitions fit; the
	//    first-order bound t²·Σ‖[H_i,H_j]‖/(2r) evaluates to 0.1.
	fmt.Printf("order=%d reps=%d depth=%d bound=%g\n",
		res.Order, res.Reps, res.Depth, res.ErrorBound)
	// Output: order=1 reps=10 depth=60 bound=0.1
}
