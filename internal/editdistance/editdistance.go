// Package editdistance computes Levenshtein distances between words and the
// normalized similarity score used to rank dictionary candidates.
package editdistance

import "unicode/utf8"

// Distance returns the minimum number of single-rune insertions, deletions or
// substitutions needed to turn a into b. Each byte of invalid UTF-8 counts as
// one rune, distinct from every other byte and from utf8.RuneError, so the
// distance is zero only when a == b.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := runes(a), runes(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Only the previous and current rows of the matrix are kept. Each row is
	// indexed by position in b.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// runes splits s into runes like []rune(s), except that invalid bytes map to
// negative values so that no two different byte strings decode alike.
func runes(s string) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = -1 - rune(s[i])
		}
		out = append(out, r)
		i += size
	}
	return out
}

// Similarity returns 1 - Distance(a, b) / min(len(a), len(b)), with lengths
// counted in runes. Higher is closer. The score can be negative for words of
// very different length, so it is only meaningful for ranking.
//
// Both arguments must be non-empty; Similarity panics otherwise.
func Similarity(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		panic("editdistance: similarity of an empty string")
	}
	return 1 - float64(Distance(a, b))/float64(min(la, lb))
}
