// Package calculator drives the interactive tax calculation.
//
// It asks the InputProvider for a fiscal year and an income, re-prompting
// after every validation failure, then computes the result with the
// TaxEngine and hands it to the OutputProvider. Retries are unbounded; the
// loop ends only on valid input or when the input source fails.
package calculator
