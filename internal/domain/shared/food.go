// Package shared contains the small kernel shared by all domain packages.
package shared

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeFoodName produces the canonical form of a food name.
// It is the only join key between inventory rows and recipe ingredient rows,
// so the normalization must stay stable across the lifetime of stored data:
// trim, case-fold, diacritic-fold.
func NormalizeFoodName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	folded, _, err := transform.String(foldTransformer, name)
	if err != nil {
		// Fold failure leaves the lower-cased form, which is still a valid key.
		return name
	}
	return folded
}

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)
