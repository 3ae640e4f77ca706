// Package csdigit is a toolkit for Canonical Signed Digit (CSD)
// arithmetic — the radix-2 {-1, 0, +1} digit system used to build
// multiplierless constant multipliers in DSP hardware.
//
// 🚀 What is csdigit?
//
//	A small, pure-Go library that brings together:
//		• csd        — decimal ⇄ CSD conversion, by fractional width or
//		               by non-zero digit budget, float and exact-integer
//		• lcsre      — longest repeated non-overlapping substring, to
//		               spot shareable digit patterns in CSD output
//		• multiplier — Verilog emission for a CSD constant multiplier
//		• cmd/csdigit — a command-line front end over the conversions
//
// ✨ Why choose csdigit?
//
//   - Pure functions only – no shared state, safe from any goroutine
//   - Exact reference semantics – byte-for-byte compatible digit output
//   - Explicit errors – non-finite inputs and malformed strings fail
//     fast with sentinel errors, never loop or guess
//
// Quick taste:
//
//	s, _ := csd.ToCSD(28.5, 2)                             // "+00-00.+0"
//	v, _ := csd.ToDecimal(s)                               // 28.5
//	p := lcsre.LongestRepeatedSubstring("+-00+-00+-00+-0") // "+-00+-0"
//
// Dive into each package's doc.go for the algorithm walkthroughs, and
// into examples/ for end-to-end hardware-design scenarios.
//
//	go get github.com/katalvlaran/csdigit
package csdigit
