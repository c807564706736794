// Package translit renders Han characters in a name as pinyin syllables so
// mixed-script name lists can be sorted and searched on one alphabet.
package translit

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

// HasHan reports whether s contains at least one Han character.
func HasHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// Romanize replaces every Han character in s with its pinyin reading,
// separating syllables (and the boundaries between Han and non-Han runs) with
// single spaces. Non-Han text passes through unchanged; characters without a
// reading are kept as-is.
func Romanize(s string) string {
	args := pinyin.NewArgs()
	var sb strings.Builder
	lastSpace := true
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			syllables := pinyin.SinglePinyin(r, args)
			if len(syllables) == 0 {
				sb.WriteRune(r)
				lastSpace = false
				continue
			}
			if !lastSpace {
				sb.WriteByte(' ')
			}
			sb.WriteString(syllables[0])
			sb.WriteByte(' ')
			lastSpace = true
			continue
		}
		if unicode.IsSpace(r) {
			if !lastSpace {
				sb.WriteRune(r)
			}
			lastSpace = true
			continue
		}
		sb.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(sb.String())
}
