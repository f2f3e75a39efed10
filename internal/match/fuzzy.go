package match

import (
	"strings"
	"unicode/utf8"
)

// levenshtein computes the classic edit distance between two strings.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// fuzzyTokenMatch reports whether two tokens match via exact equality,
// substring containment in either direction, a shared prefix of at least 4
// runes, or edit distance of at most 2. Tokens of length <= 2 only match
// exactly, to keep trivial tokens from producing noise.
func fuzzyTokenMatch(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return true
	}

	if utf8.RuneCountInString(a) <= 2 || utf8.RuneCountInString(b) <= 2 {
		return false
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	if sharedPrefixLen(a, b) >= 4 {
		return true
	}

	return levenshtein(a, b) <= 2
}

func sharedPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// containsToken reports whether any token of haystack fuzzily matches needle.
func containsToken(haystackTokens []string, needle string) bool {
	for _, token := range haystackTokens {
		if fuzzyTokenMatch(token, needle) {
			return true
		}
	}
	return false
}
