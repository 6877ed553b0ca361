package dump

import "strings"

// escaper rewrites the characters that would break a double-quoted JSON
// string. Backslash comes first so already-escaped output is never
// re-escaped by the later rules.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Escape returns s with backslashes, quotes, and control characters
// escaped for embedding in a JSON string literal. Every string the
// serializers emit (names, kinds, text values, error messages) goes
// through this one function.
func Escape(s string) string {
	return escaper.Replace(s)
}
