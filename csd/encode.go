package csd

import (
	"math"
	"strings"
)

// ToCSD encodes value as a CSD string with exactly places fractional digits.
//
// The integer part spans ceil(log2(|value|*1.5)) digits (a single "0" when
// |value| < 1), followed by a '.' and places greedily selected fractional
// digits. Rounding error is bounded by 2^-places.
//
// Output is canonical (no two adjacent non-zero digits) except for
// magnitudes in (2/3, 1): the |value| < 1 rule pins the leading exponent
// to 0, so those values open the fraction with two non-zero digits.
//
// Returns ErrNotFinite for NaN or ±Inf, ErrBadInput for places < 0.
//
// Example:
//
//	s, _ := csd.ToCSD(28.5, 2) // "+00-00.+0"
func ToCSD(value float64, places int) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", ErrNotFinite
	}
	if places < 0 {
		return "", ErrBadInput
	}

	var sb strings.Builder
	rem, p2n := encodingRange(value)
	if rem == 0 {
		sb.WriteByte(SymZero)
	}

	// Integer part: rem greedy steps down to scale 1.
	for ; rem > 0; rem-- {
		p2n /= 2
		value = emitDigit(&sb, value, p2n)
	}
	sb.WriteByte(SymPoint)
	// Fractional part: places more steps at scales 1/2, 1/4, ...
	for i := 0; i < places; i++ {
		p2n /= 2
		value = emitDigit(&sb, value, p2n)
	}
	return sb.String(), nil
}

// ToCSDNNZ encodes value as a CSD string containing at most nnz non-zero
// digits. The integer part is always emitted in full (padded with zero
// digits once the budget is spent); fractional digits are produced only
// while budget remains and the residual is not negligible, so the result
// carries a '.' only when a fractional digit is actually needed.
//
// Returns ErrNotFinite for NaN or ±Inf, ErrBadInput for nnz < 0.
//
// Example:
//
//	s, _ := csd.ToCSDNNZ(28.5, 4) // "+00-00.+"
func ToCSDNNZ(value float64, nnz int) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", ErrNotFinite
	}
	if nnz < 0 {
		return "", ErrBadInput
	}

	var sb strings.Builder
	rem, p2n := encodingRange(value)
	if rem == 0 {
		sb.WriteByte(SymZero)
	}

	for rem > 0 || (nnz > 0 && math.Abs(value) > residualEps) {
		if rem == 0 {
			// Crossing from the integer part into the fractional part.
			sb.WriteByte(SymPoint)
		}
		p2n /= 2
		rem--
		d := 0
		if nnz > 0 {
			d = selectDigit(value, p2n)
		}
		switch d {
		case +1:
			sb.WriteByte(SymPlus)
			value -= p2n
			nnz--
		case -1:
			sb.WriteByte(SymMinus)
			value += p2n
			nnz--
		default:
			sb.WriteByte(SymZero)
		}
	}
	return sb.String(), nil
}

// ToCSDInt encodes an integer as a CSD string using exact integer
// arithmetic. The result never contains a '.' and round-trips exactly
// through ToDecimal.
//
// Example:
//
//	csd.ToCSDInt(28) // "+00-00"
func ToCSDInt(value int64) string {
	if value == 0 {
		return "0"
	}

	var sb strings.Builder
	p2n := int64(1) << uint(integerRange(value))
	for p2n > 1 {
		half := p2n >> 1
		// det = 3*v compared against ±p2n is the greedy rule scaled by 2
		// to stay in integer arithmetic.
		det := 3 * value
		switch {
		case det > p2n:
			sb.WriteByte(SymPlus)
			value -= half
		case det < -p2n:
			sb.WriteByte(SymMinus)
			value += half
		default:
			sb.WriteByte(SymZero)
		}
		p2n = half
	}
	return sb.String()
}

// ToCSDNNZInt encodes an integer as a CSD string containing at most nnz
// non-zero digits, using exact integer arithmetic. Dropping low-order
// non-zero digits truncates toward the nearest representable value with
// the given budget.
//
// Returns ErrBadInput for nnz < 0.
//
// Example:
//
//	s, _ := csd.ToCSDNNZInt(37, 2) // "+00+00"
func ToCSDNNZInt(value int64, nnz int) (string, error) {
	if nnz < 0 {
		return "", ErrBadInput
	}
	if value == 0 {
		return "0", nil
	}

	var sb strings.Builder
	p2n := int64(1) << uint(integerRange(value))
	for p2n > 1 {
		half := p2n >> 1
		det := int64(0)
		if nnz > 0 {
			det = 3 * value
		}
		switch {
		case det > p2n:
			sb.WriteByte(SymPlus)
			value -= half
			nnz--
		case det < -p2n:
			sb.WriteByte(SymMinus)
			value += half
			nnz--
		default:
			sb.WriteByte(SymZero)
		}
		p2n = half
	}
	return sb.String(), nil
}

// encodingRange computes the number of integer-part digit positions rem
// and the starting scale 2^rem for a float encoding. Values below 1 in
// magnitude need no integer digits beyond the leading "0".
func encodingRange(value float64) (rem int, p2n float64) {
	absnum := math.Abs(value)
	if absnum >= 1.0 {
		rem = int(math.Ceil(math.Log2(absnum * 1.5)))
	}
	return rem, math.Pow(2, float64(rem))
}

// integerRange is encodingRange for the exact-integer encoders: the bit
// position of the leading CSD digit of value (value != 0).
func integerRange(value int64) int {
	absnum := value
	if absnum < 0 {
		absnum = -absnum
	}
	return int(math.Ceil(math.Log2(float64(absnum) * 1.5)))
}

// selectDigit picks the canonical signed digit for residual v at scale p:
// +1 when 1.5*v > p, -1 when 1.5*v < -p, else 0. The 1.5 factor centers
// the decision band so that a non-zero digit leaves |v| <= p/3, forcing
// the next digit to 0. That yields non-adjacency whenever the starting
// scale satisfies |v| <= (2/3)*p — true for the computed leading
// exponent, bypassed by the |v| < 1 special case for magnitudes in
// (2/3, 1).
func selectDigit(v, p float64) int {
	det := 1.5 * v
	switch {
	case det > p:
		return +1
	case det < -p:
		return -1
	default:
		return 0
	}
}

// emitDigit runs one greedy step at scale p: appends the selected symbol
// to sb and returns the updated residual.
func emitDigit(sb *strings.Builder, v, p float64) float64 {
	switch selectDigit(v, p) {
	case +1:
		sb.WriteByte(SymPlus)
		return v - p
	case -1:
		sb.WriteByte(SymMinus)
		return v + p
	default:
		sb.WriteByte(SymZero)
		return v
	}
}
