// Package names canonicalizes free-text Vietnamese administrative names so
// that two independently authored name sets (address strings on one side,
// boundary-file labels on the other) can be compared for equality despite
// differences in accenting, spacing, and casing.
package names

import "strings"

// Diacritic folding table: each accented vowel family maps to its base
// letter, đ maps to d. Built once at package init.
var foldTable = map[rune]rune{}

func init() {
	families := map[rune]string{
		'a': "àáạảãâầấậẩẫăằắặẳẵ",
		'e': "èéẹẻẽêềếệểễ",
		'i': "ìíịỉĩ",
		'o': "òóọỏõôồốộổỗơờớợởỡ",
		'u': "ùúụủũưừứựửữ",
		'y': "ỳýỵỷỹ",
		'd': "đ",
	}
	for base, accented := range families {
		for _, r := range accented {
			foldTable[r] = base
		}
	}
}

// Normalize lowercases the name, removes all whitespace, folds Vietnamese
// diacritics to base letters, and drops every remaining character outside
// [a-z0-9]. Total on any input; the empty string normalizes to itself.
func Normalize(name string) string {
	lowered := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if folded, ok := foldTable[r]; ok {
			r = folded
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Match reports whether two names are equal after normalization
func Match(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
