package track

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName folds a cardholder name into the Track 1 character set:
// diacritics are removed, letters upper-cased, unsupported characters
// replaced by a space, and the result cut to 26 characters.
func NormalizeName(name string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		return "", err
	}
	folded = cases.Upper(language.Und).String(folded)

	var b strings.Builder
	for _, r := range folded {
		if b.Len() == maxNameLen {
			break
		}
		if r > unicode.MaxASCII || !Track1.Valid(byte(r)) ||
			r == fieldSeparator1 || r == rune(Track1.StartSentinel) || r == rune(Track1.EndSentinel) {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " "), nil
}
