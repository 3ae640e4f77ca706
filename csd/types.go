// Package csd defines symbol constants and error definitions for
// Canonical Signed Digit conversion.
package csd

import "errors"

// Symbols of the CSD string alphabet.
const (
	// SymPlus marks a +1 digit at the current power of two.
	SymPlus byte = '+'

	// SymMinus marks a -1 digit at the current power of two.
	SymMinus byte = '-'

	// SymZero marks a zero digit.
	SymZero byte = '0'

	// SymPoint separates the integer part from the fractional part.
	SymPoint byte = '.'
)

// Sentinel errors for CSD conversion.
var (
	// ErrNotFinite is returned when an encoder receives NaN or ±Inf.
	ErrNotFinite = errors.New("csd: value must be finite")

	// ErrBadInput is returned for a negative places or nnz argument.
	ErrBadInput = errors.New("csd: digit count must be non-negative")

	// ErrBadSeparator is returned by ToDecimal when the input contains
	// more than one '.' separator.
	ErrBadSeparator = errors.New("csd: more than one '.' separator")
)

// residualEps bounds the residual magnitude below which the budgeted
// encoder considers a value fully represented and stops emitting digits.
const residualEps = 1e-100
