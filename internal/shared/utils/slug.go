package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify turns a display name into a URL-safe identifier:
// "Ángela Núñez" → "angela-nunez".
//
// The function is pure and idempotent: Slugify(Slugify(x)) == Slugify(x),
// and Slugify("") == "".
func Slugify(input string) string {
	// Decompose accented characters and drop the combining marks,
	// so "é" becomes "e" instead of being thrown away.
	ascii := removeDiacritics(input)

	lower := strings.ToLower(ascii)

	// Collapse every run of characters outside [a-z0-9] into one hyphen.
	var b strings.Builder
	b.Grow(len(lower))
	lastHyphen := false
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}

func removeDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, input)
	if err != nil {
		// Transliteration is best-effort; the character filter in
		// Slugify still guarantees a URL-safe result.
		return input
	}
	return out
}
