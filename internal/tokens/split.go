package tokens

import (
	"strings"
	"unicode"
)

// SplitIdentifier breaks an identifier into lowercase sub-words, splitting on
// underscores and camel-case boundaries. Acronym runs stay together until the
// start of the next word ("HTTPServer" → "http", "server"). Digits attach to
// the preceding word ("base64" → "base64").
func SplitIdentifier(name string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.':
			flush()
		case unicode.IsUpper(r):
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (current.Len() > 0 && nextLower) {
				flush()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return words
}

// BagFromIdentifier is SplitIdentifier plus counting: duplicates within one
// name count multiply (get_user_get → get:2, user:1).
func BagFromIdentifier(name string) Bag {
	return NewBag(SplitIdentifier(name)...)
}

// LeadingWord returns the first sub-word of an identifier, or "" when the
// identifier yields no words. This is the "verb" of a callee name.
func LeadingWord(name string) string {
	words := SplitIdentifier(name)
	if len(words) == 0 {
		return ""
	}
	return words[0]
}
