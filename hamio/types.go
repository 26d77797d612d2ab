// SPDX-License-Identifier: MIT

// Package hamio: document types and sentinel errors.
package hamio

import "errors"

// Sentinel errors for document decoding.
var (
	// ErrBadDocument indicates malformed YAML or a schema violation.
	ErrBadDocument = errors.New("hamio: malformed Hamiltonian document")

	// ErrEmptyDocument indicates a document with no terms.
	ErrEmptyDocument = errors.New("hamio: document has no terms")
)

// hamDoc is the on-disk Hamiltonian layout.
type hamDoc struct {
	Width int       `yaml:"width"`
	Terms []termDoc `yaml:"terms"`
}

// termDoc is one Pauli term entry. Imag is optional; values beyond
// pauli.HermitianTol fail decoding.
type termDoc struct {
	Pauli string  `yaml:"pauli"`
	Coeff float64 `yaml:"coeff"`
	Imag  float64 `yaml:"imag,omitempty"`
}

// GateCounts breaks a synthesized circuit down by gate kind.
type GateCounts struct {
	H     int `yaml:"h"`
	S     int `yaml:"s"`
	Sdg   int `yaml:"sdg"`
	Rz    int `yaml:"rz"`
	CNOT  int `yaml:"cx"`
	Total int `yaml:"total"`
}

// Report is the serialized outcome of one synthesis run.
type Report struct {
	RunID      string     `yaml:"run_id"`
	Width      int        `yaml:"width"`
	TermCount  int        `yaml:"term_count"`
	Time       float64    `yaml:"time"`
	Order      int        `yaml:"order"`
	Reps       int        `yaml:"reps"`
	Depth      int        `yaml:"depth"`
	MaxDepth   int        `yaml:"max_depth,omitempty"`
	ErrorBound float64    `yaml:"error_bound"`
	Gates      GateCounts `yaml:"gates"`
}
