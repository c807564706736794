package nameparse

import (
	"regexp"
	"strings"
)

var whitespaceRunRegexp = regexp.MustCompile(`\s+`)

// normalize trims the string, collapses whitespace runs to a single space and
// drops a trailing comma. Idempotent.
func normalize(s string) string {
	s = whitespaceRunRegexp.ReplaceAllString(strings.TrimSpace(s), " ")
	s = strings.TrimSuffix(s, ",")
	return strings.TrimSpace(s)
}
