package passgen

import "strings"

// blockedPatterns lists short sequences that make a password guessable:
// the left-hand keyboard-row starts, their reversals, and the most common
// numeric and alphabetic runs. Matched case-insensitively. The numeric
// and alphabetic entries overlap with the sequential-run scan but are
// kept so the blocklist stands alone as documentation of what is banned.
var blockedPatterns = []string{
	"123", "321",
	"abc", "cba",
	"qwe", "ewq",
	"asd", "dsa",
	"zxc", "cxz",
}

// HasPredictablePattern reports whether s contains a trivially guessable
// fragment: three identical characters in a row, three characters whose
// codes ascend or descend by one, or any blocklisted keyboard sequence.
// It is a pure predicate and draws no entropy.
func HasPredictablePattern(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == s[i+1] && s[i+1] == s[i+2] {
			return true
		}
		if s[i+1] == s[i]+1 && s[i+2] == s[i]+2 {
			return true
		}
		if s[i] == s[i+1]+1 && s[i+1] == s[i+2]+1 {
			return true
		}
	}

	lower := strings.ToLower(s)
	for _, p := range blockedPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
