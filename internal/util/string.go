package util

import (
	"strings"
	"unicode"
)

// TruncateString cuts s to maxRunes runes and marks the cut with "...".
func TruncateString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var symbolWords = map[rune]string{
	'+': "plus",
	'#': "sharp",
	'.': "dot",
	'&': "and",
}

// NormalizeKey turns a technology name into an icon slug: "Node.js" becomes
// "nodedotjs" and "C++" becomes "cplusplus". Leading and trailing dots are
// dropped so ".NET" becomes "net".
func NormalizeKey(name string) string {
	name = strings.Trim(Normalize(name), ".")
	if name == "" {
		return ""
	}

	var builder strings.Builder
	for _, r := range name {
		if word, ok := symbolWords[r]; ok {
			builder.WriteString(word)
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
