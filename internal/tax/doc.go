// Package tax implements the progressive income tax engine.
//
// A Schedule holds one bracket table per fiscal year, in insertion order. It
// is validated once when built (contiguous brackets starting at zero, a single
// unbounded top bracket) and is read-only afterwards. The built-in tables are
// Australian resident rates; more can be merged from a YAML file with
// LoadSchedule.
//
// # Computation
//
// Engine.CalculateTax picks the last bracket whose lower bound is strictly
// below the income (see BoundaryRule) and returns
//
//	base tax + (income - lower bound) * rate
//
// rounded to the cent. Arithmetic uses shopspring/decimal throughout so
// bracket edges and cents are exact.
//
// # Validation
//
// ValidateYear and ValidateIncome turn raw strings into typed values. Every
// rejection is a *domain.ValidationError whose message is shown to the user
// as is.
package tax
