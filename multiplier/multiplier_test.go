package multiplier_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/csdigit/multiplier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateMultiplier_Widths verifies the declared port widths for an
// 8-bit input and a degree-7 pattern.
func TestGenerateMultiplier_Widths(t *testing.T) {
	out, err := multiplier.GenerateMultiplier("+00-00+0", 8, 7)
	require.NoError(t, err)

	assert.Contains(t, out, "input signed [7:0] x")
	assert.Contains(t, out, "output signed [14:0] result")
}

// TestGenerateMultiplier_ShiftWires verifies one sign-extended wire per
// non-zero digit, with shift amount m - index.
func TestGenerateMultiplier_ShiftWires(t *testing.T) {
	out, err := multiplier.GenerateMultiplier("+00-00+0", 8, 7)
	require.NoError(t, err)

	assert.Contains(t, out, "wire signed [14:0] x_shift7 = $signed({ {0{x[7]}}, x }) << 7;")
	assert.Contains(t, out, "wire signed [14:0] x_shift4 = $signed({ {3{x[7]}}, x }) << 4;")
	assert.Contains(t, out, "wire signed [14:0] x_shift1 = $signed({ {6{x[7]}}, x }) << 1;")
	assert.NotContains(t, out, "x_shift0")
}

// TestGenerateMultiplier_Expression verifies the signed sum is ordered
// most-significant digit first, '+' added and '-' subtracted.
func TestGenerateMultiplier_Expression(t *testing.T) {
	out, err := multiplier.GenerateMultiplier("+00-00+0", 8, 7)
	require.NoError(t, err)
	assert.Contains(t, out, "assign result = x_shift7 - x_shift4 + x_shift1;")

	// Leading '-' digit: no unary-plus artifacts, sign carried directly.
	out, err = multiplier.GenerateMultiplier("-0+", 8, 2)
	require.NoError(t, err)
	assert.Contains(t, out, "assign result = -x_shift2 + x_shift0;")
}

// TestGenerateMultiplier_HeaderValue verifies the decoded constant in the
// header comment.
func TestGenerateMultiplier_HeaderValue(t *testing.T) {
	out, err := multiplier.GenerateMultiplier("+00-00+0", 8, 7)
	require.NoError(t, err)
	assert.Contains(t, out, "// CSD Multiplier for pattern: +00-00+0 (value: 114)")
}

// TestGenerateMultiplier_ZeroPattern verifies an all-zero pattern
// collapses to the constant 0 with no shift wires.
func TestGenerateMultiplier_ZeroPattern(t *testing.T) {
	out, err := multiplier.GenerateMultiplier("0000", 8, 3)
	require.NoError(t, err)

	assert.Contains(t, out, "assign result = 0;")
	assert.NotContains(t, out, "x_shift")
}

// TestGenerateMultiplier_Invalid verifies both error conditions and that
// nothing is emitted alongside an error.
func TestGenerateMultiplier_Invalid(t *testing.T) {
	out, err := multiplier.GenerateMultiplier("+00", 8, 7)
	assert.ErrorIs(t, err, multiplier.ErrLengthMismatch)
	assert.Empty(t, out)

	out, err = multiplier.GenerateMultiplier("+0.", 8, 2)
	assert.ErrorIs(t, err, multiplier.ErrBadDigit)
	assert.Empty(t, out)

	out, err = multiplier.GenerateMultiplier("+0x", 8, 2)
	assert.ErrorIs(t, err, multiplier.ErrBadDigit)
	assert.Empty(t, out)
}

// TestGenerateMultiplier_ModuleShape verifies the overall module framing.
func TestGenerateMultiplier_ModuleShape(t *testing.T) {
	out, err := multiplier.GenerateMultiplier("+0-", 4, 2)
	require.NoError(t, err)

	assert.True(t, strings.Contains(out, "module csd_multiplier ("), "module header")
	assert.True(t, strings.HasSuffix(out, "endmodule\n"), "module footer")
}
