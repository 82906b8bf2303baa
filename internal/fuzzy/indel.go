package fuzzy

// CalculateIndelDistance computes the Indel distance between two strings.
// It represents the minimum number of single-character insertions and deletions
// required to change one string into the other. Substitutions are not allowed,
// so replacing a character costs two edits.
// This implementation properly handles Unicode characters by working with runes.
func CalculateIndelDistance(a, b string) int {
	runesA := []rune(a)
	runesB := []rune(b)

	lenA := len(runesA)
	lenB := len(runesB)

	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	return lenA + lenB - 2*longestCommonSubsequence(runesA, runesB)
}

// longestCommonSubsequence returns the length of the longest common subsequence of a and b.
// Only two rows of the matrix are kept: prevRow holds row i-1, currRow holds row i.
func longestCommonSubsequence(a, b []rune) int {
	lenB := len(b)

	prevRow := make([]int, lenB+1)
	currRow := make([]int, lenB+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= lenB; j++ {
			if a[i-1] == b[j-1] {
				currRow[j] = prevRow[j-1] + 1
				continue
			}
			currRow[j] = max(prevRow[j], currRow[j-1])
		}

		// Rotate rows: prevRow <- currRow
		prevRow, currRow = currRow, prevRow
	}

	return prevRow[lenB]
}
