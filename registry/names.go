/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Identifier builds the implementation identifier for a type key, e.g.
// Identifier("Geometries", "geo-tag") == "Geometries.Geo_Tag".
// An empty key yields an empty identifier.
func Identifier(prefix, key string) string {
	if key == "" {
		return ""
	}
	return prefix + "." + ClassName(key)
}

// ClassName upper-cases the first letter of each hyphen-delimited segment and
// joins the segments with underscores.
func ClassName(key string) string {
	segments := strings.Split(key, "-")
	caser := cases.Title(language.Und, cases.NoLower)
	for i, s := range segments {
		segments[i] = caser.String(s)
	}
	return strings.Join(segments, "_")
}

// Slug normalises a classification term name into a type key: accents are
// stripped, letters lower-cased, and runs of anything other than letters,
// digits and underscores collapse into a single dash.
func Slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
