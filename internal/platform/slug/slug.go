package slug

import (
	"strings"
	"unicode"
)

// Make lowercases input and collapses every run of characters that are not
// letters or digits into a single dash. Non-latin letters are kept so project
// names in any script produce distinct keys.
func Make(input string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "untitled"
	}
	return s
}
