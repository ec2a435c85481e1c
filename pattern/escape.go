package pattern

import "strings"

// metaChars is the set of characters that carry meaning in regex syntax and
// must be backslash-escaped when they appear in literal text.
const metaChars = `\.*+?^${}()[]|-`

// Escape returns text with every regex metacharacter preceded by a backslash,
// in a single left-to-right pass. All other characters pass through unchanged;
// the empty string escapes to itself.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 128 && strings.ContainsRune(metaChars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// classMetaChars are the characters that need escaping inside a bracket
// expression.
const classMetaChars = `\^]-`

// escapeClass escapes a character-set string for inclusion in [...].
func escapeClass(set string) string {
	var b strings.Builder
	b.Grow(len(set))
	for _, r := range set {
		if r < 128 && strings.ContainsRune(classMetaChars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// escapeClassRune escapes a single bracket-expression bound character.
func escapeClassRune(r rune) string {
	if r < 128 && strings.ContainsRune(classMetaChars, r) {
		return `\` + string(r)
	}
	return string(r)
}
