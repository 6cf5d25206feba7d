package domain

import (
	"strings"
	"unicode/utf8"
)

// LongestWordLength returns the rune length of the longest whitespace
// separated word in s. An empty or blank sentence yields 0.
func LongestWordLength(s string) int {
	longest := 0
	for _, w := range strings.Fields(s) {
		if n := utf8.RuneCountInString(w); n > longest {
			longest = n
		}
	}
	return longest
}

// LongestWord returns the first word with the longest length.
func LongestWord(s string) string {
	var best string
	longest := 0
	for _, w := range strings.Fields(s) {
		if n := utf8.RuneCountInString(w); n > longest {
			longest = n
			best = w
		}
	}
	return best
}
