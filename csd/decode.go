package csd

import "strings"

// ToDecimal decodes a CSD string back to its decimal value.
//
// The integer part folds most-significant-first: acc = 2*acc + digit.
// Fractional digits after the '.' contribute digit * 2^-(position+1).
// Characters outside the CSD alphabet occupy a digit position but count
// as zero, mirroring the encoder's positional semantics; they never
// raise an error.
//
// Returns ErrBadSeparator when the input contains more than one '.'.
//
// The integer part accumulates in an int64, so digit sequences beyond
// 62 integer positions overflow; CSD strings for hardware constants
// stay far below that.
//
// Example:
//
//	v, _ := csd.ToDecimal("+00-00.+") // 28.5
func ToDecimal(csd string) (float64, error) {
	point := strings.IndexByte(csd, SymPoint)
	if point < 0 {
		return float64(foldIntegral(csd)), nil
	}
	if strings.IndexByte(csd[point+1:], SymPoint) >= 0 {
		return 0, ErrBadSeparator
	}
	return float64(foldIntegral(csd[:point])) + foldFractional(csd[point+1:]), nil
}

// foldIntegral folds an integer-part digit sequence, most significant
// digit first.
func foldIntegral(digits string) int64 {
	var acc int64
	for i := 0; i < len(digits); i++ {
		acc = acc*2 + int64(digitValue(digits[i]))
	}
	return acc
}

// foldFractional folds a fractional-part digit sequence with a halving
// scale starting at 1/2. The scale advances on every character, known
// or not.
func foldFractional(digits string) float64 {
	var acc float64
	scale := 0.5
	for i := 0; i < len(digits); i++ {
		acc += scale * float64(digitValue(digits[i]))
		scale /= 2
	}
	return acc
}

// digitValue maps a CSD symbol to its digit value; any unrecognized byte
// counts as zero.
func digitValue(ch byte) int {
	switch ch {
	case SymPlus:
		return +1
	case SymMinus:
		return -1
	default:
		return 0
	}
}
