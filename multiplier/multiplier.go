package multiplier

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for Verilog generation.
var (
	// ErrLengthMismatch is returned when len(csd) != m+1.
	ErrLengthMismatch = errors.New("multiplier: CSD length must equal m+1")

	// ErrBadDigit is returned for characters outside '+', '-', '0'.
	ErrBadDigit = errors.New("multiplier: CSD string may contain only '+', '-' and '0'")
)

// term is one non-zero CSD digit: its power of two and its sign symbol.
type term struct {
	power int
	op    byte
}

// GenerateMultiplier returns the Verilog text of a constant multiplier
// for the integer CSD pattern csd, with input bit width n and highest
// power m. The most significant digit of csd carries weight 2^m, so
// len(csd) must be m+1. A pattern with no non-zero digit produces the
// constant 0.
//
// Returns ErrLengthMismatch or ErrBadDigit on invalid input; no partial
// output is produced.
func GenerateMultiplier(csd string, n, m int) (string, error) {
	if len(csd) != m+1 {
		return "", fmt.Errorf("%w: len %d, m %d", ErrLengthMismatch, len(csd), m)
	}

	// Collect non-zero digits most-significant first, and the decoded
	// constant for the header comment.
	var terms []term
	var value int64
	for i := 0; i < len(csd); i++ {
		value *= 2
		switch csd[i] {
		case '+':
			value++
			terms = append(terms, term{power: m - i, op: '+'})
		case '-':
			value--
			terms = append(terms, term{power: m - i, op: '-'})
		case '0':
		default:
			return "", fmt.Errorf("%w: %q", ErrBadDigit, csd[i])
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n// CSD Multiplier for pattern: %s (value: %d)\n", csd, value)
	sb.WriteString("module csd_multiplier (\n")
	fmt.Fprintf(&sb, "    input signed [%d:0] x,      // Input value (signed)\n", n-1)
	fmt.Fprintf(&sb, "    output signed [%d:0] result // Result (signed)\n", n+m-1)
	sb.WriteString(");")

	if len(terms) > 0 {
		sb.WriteString("\n\n    // Signed shifted versions (Verilog handles sign extension)")
		for _, t := range terms {
			fmt.Fprintf(&sb, "\n    wire signed [%d:0] x_shift%d = $signed({ {%d{x[%d]}}, x }) << %d;",
				n+m-1, t.power, m-t.power, n-1, t.power)
		}
	}

	sb.WriteString("\n\n    // CSD implementation with signed arithmetic")
	if len(terms) == 0 {
		sb.WriteString("\n    assign result = 0;")
	} else {
		var expr strings.Builder
		if terms[0].op == '-' {
			expr.WriteByte('-')
		}
		fmt.Fprintf(&expr, "x_shift%d", terms[0].power)
		for _, t := range terms[1:] {
			fmt.Fprintf(&expr, " %c x_shift%d", t.op, t.power)
		}
		fmt.Fprintf(&sb, "\n    assign result = %s;", expr.String())
	}

	sb.WriteString("\nendmodule\n")
	return sb.String(), nil
}
