package ocr

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrOCRNotEnabled is returned when OCR is used but support was not compiled
// in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Fold lowercases s and strips diacritics so "Décisions" matches "decisions".
// OCR often drops or confuses accents.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// words splits folded text into alphanumeric words.
func words(s string) []string {
	return strings.FieldsFunc(Fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Coverage returns the fraction of the words in expected that appear in
// recognized, ignoring case, accents and punctuation. An expected text with
// no words has full coverage.
func Coverage(recognized, expected string) float64 {
	want := words(expected)
	if len(want) == 0 {
		return 1
	}

	seen := make(map[string]int)
	for _, w := range words(recognized) {
		seen[w]++
	}

	found := 0
	for _, w := range want {
		if seen[w] > 0 {
			seen[w]--
			found++
		}
	}
	return float64(found) / float64(len(want))
}
