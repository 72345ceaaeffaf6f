// Package extraction implements the field-mapping engine: parsing raw
// vision-model output into a flat field map, matching free-form field labels
// against the canonical catalog, and populating the nested declaration
// schema with provenance tracking.
package extraction

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// germanTransliterations must run before the generic diacritic fold so the
// customary ae/oe/ue/ss spellings are preserved.
var germanTransliterations = strings.NewReplacer(
	"ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss",
)

var separatorStripper = strings.NewReplacer(" ", "", "-", "", "_", "")

// NormalizeFieldName canonicalizes a field label for comparison: lower-cased,
// separators stripped, German umlauts transliterated, remaining diacritics
// folded to their base letter. Total and idempotent for any input.
func NormalizeFieldName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = germanTransliterations.Replace(s)
	s = foldDiacritics(s)
	return separatorStripper.Replace(s)
}

func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
