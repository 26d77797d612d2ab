// Package model provides deterministic constructors for named model
// Hamiltonians expressed as Pauli operators.
//
// Constructors compose through Build: each one appends its terms to a
// shared operator, in call order, using the resolved configuration (seed,
// boundary policy, coefficient generator). The same width, options, and
// constructor order always produce the identical operator.
//
//	op, err := model.Build(6,
//	    []model.Option{model.WithPeriodic()},
//	    model.TransverseFieldIsing(1.0, 0.5),
//	)
//
// Constructors validate their parameters early and return sentinel errors;
// they never panic on user input.
package model
