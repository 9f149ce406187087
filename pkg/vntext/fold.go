// Package vntext normalizes Vietnamese user text for keyword matching and
// date parsing: diacritic folding, punctuation collapsing, and translation of
// vernacular date/time phrases into parser-friendly tokens.
package vntext

import (
	"strings"
	"unicode"
)

// variants maps each base Latin letter to every Vietnamese diacritic form of it.
// The fold must be total: any Vietnamese vowel/consonant falls back to its base
// letter so downstream substring matching works on plain ASCII.
var variants = map[rune]string{
	'a': "àáảãạăằắẳẵặâầấẩẫậ",
	'e': "èéẻẽẹêềếểễệ",
	'i': "ìíỉĩị",
	'o': "òóỏõọôồốổỗộơờớởỡợ",
	'u': "ùúủũụưừứửữự",
	'y': "ỳýỷỹỵ",
	'd': "đ",
}

var foldTable = buildFoldTable()

func buildFoldTable() map[rune]rune {
	table := make(map[rune]rune, 180)
	for base, forms := range variants {
		for _, r := range forms {
			table[r] = base
			table[unicode.ToUpper(r)] = unicode.ToUpper(base)
		}
	}
	// Đ does not upper-case through the variant loop on all platforms, pin it.
	table['Đ'] = 'D'
	return table
}

// Fold replaces every Vietnamese diacritic letter with its base Latin letter.
// Non-Vietnamese runes pass through unchanged.
func Fold(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if base, ok := foldTable[r]; ok {
			sb.WriteRune(base)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Normalize lowercases, folds diacritics, and collapses punctuation runs into
// single spaces. Applying Normalize to its own output is a no-op.
func Normalize(s string) string {
	folded := strings.ToLower(Fold(s))

	var sb strings.Builder
	sb.Grow(len(folded))
	lastSpace := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			lastSpace = false
			continue
		}
		// Punctuation and whitespace both collapse to a single space.
		if !lastSpace {
			sb.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(sb.String())
}
