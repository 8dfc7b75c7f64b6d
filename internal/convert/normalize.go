package convert

import (
	"regexp"
	"strings"
)

var (
	reWordSep    = regexp.MustCompile(`_([a-zA-Z0-9])`)
	reScopeSep   = regexp.MustCompile(`\s(-|\|)\s`)
	reScopeParen = regexp.MustCompile(`\s*[()]\s*`)
)

// Key rewrites an underscore-separated settings key into medial-capital
// form: background_color → backgroundColor. Characters not part of an
// underscore pair pass through unchanged.
func Key(s string) string {
	return reWordSep.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// Scope rewrites a source scope selector into the flat target syntax:
// whitespace-surrounded "-" and "|" separators become ", ", and grouping
// parentheses collapse into a single separating space.
func Scope(s string) string {
	out := Key(s)
	out = reScopeSep.ReplaceAllString(out, ", ")
	out = reScopeParen.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
