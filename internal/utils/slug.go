package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugFold decomposes accented characters and strips combining marks so
// latin input like "Nagercoil Naveena" slugs cleanly.
var slugFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL-safe slug from a human-readable name: lowercase
// ASCII letters and digits, runs of anything else collapsed to single dashes.
// Non-latin scripts (Tamil titles) fold away entirely; callers must handle an
// empty result with their own fallback.
func Slugify(s string) string {
	folded, _, err := transform.String(slugFold, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	dashPending := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dashPending && b.Len() > 0 {
				b.WriteByte('-')
			}
			dashPending = false
			b.WriteRune(r)
		default:
			dashPending = true
		}
	}
	return b.String()
}
