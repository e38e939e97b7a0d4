package scan

import (
	"regexp"
	"strings"
)

const (
	tabExpansion      = "    "
	stringPlaceholder = `"STRING"`
)

var (
	eolStripper     = strings.NewReplacer("\r", "", "\n", "")
	trailingSpaceRe = regexp.MustCompile(`\s$`)
	stringLiteralRe = regexp.MustCompile(`"[^"]*"`)
)

func stripEOL(raw string) string {
	return eolStripper.Replace(raw)
}

func hasTrailingSpace(text string) bool {
	return trailingSpaceRe.MatchString(text)
}

// expandFirstTab replaces only the first tab; later tabs stay as they are.
func expandFirstTab(text string) string {
	return strings.Replace(text, "\t", tabExpansion, 1)
}

func isBlank(text string) bool {
	return len(strings.Fields(text)) == 0
}

// maskString drops the first escaped quote and then hides the first
// double-quoted literal behind a placeholder. Any later literal is left
// untouched.
func maskString(text string) string {
	text = strings.Replace(text, `\"`, "", 1)
	loc := stringLiteralRe.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + stringPlaceholder + text[loc[1]:]
}
