// Package csd converts numbers between decimal and Canonical Signed Digit
// (CSD) representation, with fixed fractional width or a fixed non-zero
// digit budget, and decodes CSD strings back to decimal.
//
// 🚀 What is CSD?
//
//	CSD is a radix-2 positional numeral system over the digit set {-1, 0, +1},
//	written with the symbols '-', '0' and '+', in which no two adjacent
//	digits are both non-zero (the "non-adjacent form"). A constant encoded
//	in CSD multiplies by shift-add/shift-subtract only, which is why it is
//	the standard coefficient format in DSP hardware design:
//	  • FIR/IIR filter coefficient quantization
//	  • multiplierless constant-multiplication blocks
//	  • adder-cost estimation for fixed-point datapaths
//
// ✨ Key features:
//   - ToCSD       — fixed number of fractional places (exact width control)
//   - ToCSDNNZ    — fixed budget of non-zero digits (exact adder-cost control)
//   - ToCSDInt / ToCSDNNZInt — exact integer arithmetic, no rounding at all
//   - ToDecimal   — decode any '+'/'-'/'0'/'.' string back to a float64
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/csdigit/csd"
//
//	s, err := csd.ToCSD(28.5, 2)      // "+00-00.+0"
//	v, err := csd.ToDecimal("0.-")    // -0.5
//	s, err = csd.ToCSDNNZ(28.5, 4)    // "+00-00.+"
//	s = csd.ToCSDInt(28)              // "+00-00"
//
// Every conversion is a pure function over its arguments: no shared state,
// no I/O, safe for concurrent use from any number of goroutines.
//
// Complexity:
//
//	Time   = O(places + log|value|) per encode, O(len) per decode
//	Memory = O(output length)
package csd
