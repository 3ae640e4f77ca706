// Package lcsre finds the longest repeated non-overlapping substring of a
// string, the classic LRS problem solved by dynamic programming.
//
// 🚀 Why here?
//
//	A CSD digit string with a long repeated pattern encodes a constant
//	whose shift-add network contains a reusable sub-expression: every
//	occurrence of the pattern can share one adder tree. Running LRS over
//	encoder output is the cheapest way to spot that sharing opportunity.
//	The function itself is generic and works on any string.
//
// Algorithm Outline:
//  1. Let n = len(s). Allocate an (n+1)x(n+1) table L, flat row-major.
//  2. L[i][j] (1 ≤ i < j ≤ n) is the longest common suffix of s[0..i)
//     and s[0..j) whose occurrences do not overlap:
//     L[i][j] = L[i-1][j-1] + 1  if s[i-1] == s[j-1] and L[i-1][j-1] < j-i
//     L[i][j] = 0                otherwise
//  3. Track the maximum length and the largest end index i achieving it;
//     the result is s[i-length .. i).
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n²)
//
// CSD strings are bounded by the hardware word width (typically < 64
// digits), so the quadratic table stays tiny in practice.
package lcsre
