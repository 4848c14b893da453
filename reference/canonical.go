package reference

import (
	"strings"
	"unicode"
)

// Canonicalize strips the separator characters commonly used when writing
// references (spaces, tabs, slashes, hyphens, periods and plus signs) from
// raw. References of TypeISO are additionally upper-cased, matching the
// case-insensitive entry of RF references.
//
// Canonicalize makes no validity judgement of its own: characters that
// survive separator removal but are not legal for the reference type are
// rejected by the corresponding validator, not here. The function is pure
// and idempotent.
func Canonicalize(raw string, typ Type) string {
	var buf strings.Builder
	buf.Grow(len(raw))

	for _, r := range raw {
		switch r {
		case ' ', '\t', '/', '-', '.', '+':
			continue
		}
		if typ == TypeISO {
			r = unicode.ToUpper(r)
		}
		buf.WriteRune(r)
	}

	return buf.String()
}
