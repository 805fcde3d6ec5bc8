package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticStripper removes combining marks left behind by NFKD
// decomposition (accents, cedillas, etc).
var diacriticStripper = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize casefolds text, strips diacritics via compatibility
// decomposition, and collapses whitespace. It never fails: malformed UTF-8
// is passed through by the transform chain unchanged.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	stripped, _, err := transform.String(diacriticStripper, lowered)
	if err != nil {
		stripped = lowered
	}
	return strings.Join(strings.Fields(stripped), " ")
}
