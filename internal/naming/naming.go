package naming

import (
	"strings"
	"unicode"
)

var commonInitialisms = map[string]bool{
	"API":  true,
	"CPU":  true,
	"DNS":  true,
	"GUID": true,
	"HTTP": true,
	"ID":   true,
	"IP":   true,
	"JSON": true,
	"RAM":  true,
	"RPC":  true,
	"SLA":  true,
	"SQL":  true,
	"SSH":  true,
	"TLS":  true,
	"TTL":  true,
	"UID":  true,
	"URI":  true,
	"URL":  true,
	"UUID": true,
	"VM":   true,
	"XML":  true,
}

// Humanize renders a path segment as a display name: words split on
// separators and camel humps, each capitalized, initialisms upper-cased.
// "user_accounts" becomes "User Accounts", "apiKeys" becomes "API Keys".
func Humanize(s string) string {
	words := splitWords(s)
	for i, word := range words {
		upper := strings.ToUpper(word)
		if commonInitialisms[upper] {
			words[i] = upper
		} else {
			words[i] = capitalize(word)
		}
	}
	return strings.Join(words, " ")
}

func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			continue
		}

		if unicode.IsUpper(r) && i > 0 {
			prev := rune(s[i-1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				if current.Len() > 0 {
					words = append(words, current.String())
					current.Reset()
				}
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
