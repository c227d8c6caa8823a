package capture

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining diacritical marks and
// recomposes, turning "às" into "as" and "manhã" into "manha".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepares a transcript for matching: diacritics removed, lowercase,
// runs of whitespace collapsed to a single space, trimmed. Normalization is
// idempotent and always succeeds; invalid UTF-8 sequences pass through
// unchanged.
func Normalize(text string) string {
	if stripped, _, err := transform.String(stripMarks, text); err == nil {
		text = stripped
	}
	text = strings.ToLower(text)
	return strings.Join(strings.Fields(text), " ")
}
