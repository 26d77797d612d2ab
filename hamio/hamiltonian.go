// SPDX-License-Identifier: MIT
// Package: hamsynth/hamio
//
// hamiltonian.go — YAML decode/encode for Pauli-sum Hamiltonians.
//
// Contract:
//   - Decode validates width, every word, and rejects near-complex
//     coefficients: |imag| > pauli.HermitianTol ⇒ pauli.ErrNotHermitian.
//   - Encode writes terms in the operator's held order; callers wanting a
//     stable layout canonicalize first.

package hamio

import (
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/qudit-labs/hamsynth/pauli"
)

// Decode parses one Hamiltonian document from r.
func Decode(r io.Reader) (*pauli.Operator, error) {
	var doc hamDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return fromDoc(doc)
}

// DecodeFile parses the Hamiltonian document at path.
func DecodeFile(path string) (*pauli.Operator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("DecodeFile(%s): %w", path, err)
	}
	defer f.Close()

	op, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("DecodeFile(%s): %w", path, err)
	}

	return op, nil
}

// fromDoc converts the raw document into a validated operator.
func fromDoc(doc hamDoc) (*pauli.Operator, error) {
	if len(doc.Terms) == 0 {
		return nil, ErrEmptyDocument
	}

	op, err := pauli.NewOperator(doc.Width)
	if err != nil {
		return nil, fmt.Errorf("%w: width=%d", ErrBadDocument, doc.Width)
	}

	for i, td := range doc.Terms {
		if math.Abs(td.Imag) > pauli.HermitianTol {
			return nil, fmt.Errorf("term %d (%q): imag=%g: %w",
				i, td.Pauli, td.Imag, pauli.ErrNotHermitian)
		}
		w, err := pauli.ParseWord(td.Pauli)
		if err != nil {
			return nil, fmt.Errorf("term %d: %w", i, err)
		}
		if err = op.Add(w, td.Coeff); err != nil {
			return nil, fmt.Errorf("term %d: %w", i, err)
		}
	}

	return op, nil
}

// Encode writes op as a YAML document to w.
func Encode(w io.Writer, op *pauli.Operator) error {
	if op == nil {
		return pauli.ErrNilOperator
	}

	doc := hamDoc{Width: op.Width()}
	for _, tm := range op.Terms() {
		doc.Terms = append(doc.Terms, termDoc{Pauli: tm.Word.String(), Coeff: tm.Coeff})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return enc.Close()
}

// EncodeFile writes op as a YAML document at path (0o644, truncating).
func EncodeFile(path string, op *pauli.Operator) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("EncodeFile(%s): %w", path, err)
	}

	if err = Encode(f, op); err != nil {
		f.Close()
		return fmt.Errorf("EncodeFile(%s): %w", path, err)
	}

	return f.Close()
}
