// Package multiplier emits Verilog for constant multipliers built from a
// CSD digit string.
//
// A CSD-encoded constant multiplies by shift-add/shift-subtract only:
// every '+' digit contributes a left-shifted copy of the input, every '-'
// digit subtracts one. GenerateMultiplier maps each non-zero digit of a
// CSD string to a sign-extended shifted wire and assembles the result as
// a single signed expression, producing a complete module of the form:
//
//	module csd_multiplier (
//	    input signed [N-1:0] x,
//	    output signed [N+M-1:0] result
//	);
//
// The package consumes the string format produced by csd.ToCSDInt /
// csd.ToCSDNNZInt; it has no dependency on the encoder itself.
package multiplier
