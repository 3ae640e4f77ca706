package lcsre

// LongestRepeatedSubstring returns the longest substring of s that occurs
// at least twice without its occurrences overlapping. Among equally long
// repeats it returns the one ending at the highest index. The empty
// string is returned when s has no repeated substring (in particular for
// len(s) < 2).
//
// The input is treated as a byte sequence; the CSD alphabet this package
// is built for is pure ASCII.
//
// Example:
//
//	lcsre.LongestRepeatedSubstring("+-00+-00+-00+-0") // "+-00+-0"
func LongestRepeatedSubstring(s string) string {
	n := len(s)
	if n < 2 {
		return ""
	}

	// Flat row-major (n+1)x(n+1) suffix-length table.
	stride := n + 1
	table := make([]int, stride*stride)

	best := 0  // longest repeat seen so far
	index := 0 // highest end index achieving best

	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			prev := table[(i-1)*stride+(j-1)]
			// prev < j-i keeps the two occurrences from overlapping.
			if s[i-1] != s[j-1] || prev >= j-i {
				continue
			}
			length := prev + 1
			table[i*stride+j] = length
			if length > best || (length == best && i > index) {
				best = length
				index = i
			}
		}
	}

	if best == 0 {
		return ""
	}
	return s[index-best : index]
}
