package vntext

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// phrase is one Vietnamese date/time expression and its English equivalent
// understood by the date parser.
type phrase struct {
	vi string
	en string
}

// datePhrases lists the vernacular expressions the translator recognizes.
// Matching happens on the raw (diacritic-bearing) text, longest phrase first,
// so that e.g. "ngày mai" wins over the bare "mai".
var datePhrases = []phrase{
	{"hôm nay", "today"},
	{"bữa nay", "today"},
	{"ngày mai", "tomorrow"},
	{"ngày mốt", "in 2 days"},
	{"ngày kia", "in 2 days"},
	{"hôm qua", "yesterday"},
	{"tuần sau", "next week"},
	{"tuần tới", "next week"},
	{"tháng sau", "next month"},
	{"tháng tới", "next month"},
	{"cuối tuần", "saturday"},
	{"chủ nhật", "sunday"},
	{"thứ hai", "monday"},
	{"thứ ba", "tuesday"},
	{"thứ tư", "wednesday"},
	{"thứ năm", "thursday"},
	{"thứ sáu", "friday"},
	{"thứ bảy", "saturday"},
	{"thứ 2", "monday"},
	{"thứ 3", "tuesday"},
	{"thứ 4", "wednesday"},
	{"thứ 5", "thursday"},
	{"thứ 6", "friday"},
	{"thứ 7", "saturday"},
	{"cn", "sunday"},
	{"mai", "tomorrow"},
	{"mốt", "in 2 days"},
	{"nay", "today"},
}

var sortedPhrases = sortPhrases()

func sortPhrases() []phrase {
	out := make([]phrase, len(datePhrases))
	copy(out, datePhrases)
	sort.SliceStable(out, func(i, j int) bool {
		return len([]rune(out[i].vi)) > len([]rune(out[j].vi))
	})
	return out
}

// TranslateDatePhrases replaces Vietnamese date expressions with their English
// equivalents. Only whole-word occurrences fire: "mai" inside a longer token
// (e.g. a name) is left alone. Longer phrases are tried first to avoid partial
// overlaps.
func TranslateDatePhrases(s string) string {
	orig := []rune(s)
	runes := []rune(strings.ToLower(s))
	if len(orig) != len(runes) {
		// Lowercasing changed rune counts (not possible for Vietnamese text);
		// fall back to matching on the lowered form directly.
		orig = runes
	}
	consumed := make([]bool, len(runes))
	type hit struct {
		start, end int // rune offsets
		en         string
	}
	var hits []hit

	for _, p := range sortedPhrases {
		pRunes := []rune(p.vi)
		for i := 0; i+len(pRunes) <= len(runes); i++ {
			if consumed[i] {
				continue
			}
			if !matchAt(runes, i, pRunes) {
				continue
			}
			end := i + len(pRunes)
			if !isBoundary(runes, i-1) || !isBoundary(runes, end) {
				continue
			}
			overlap := false
			for k := i; k < end; k++ {
				if consumed[k] {
					overlap = true
					break
				}
			}
			if overlap {
				continue
			}
			for k := i; k < end; k++ {
				consumed[k] = true
			}
			hits = append(hits, hit{start: i, end: end, en: p.en})
		}
	}

	if len(hits) == 0 {
		return s
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	var sb strings.Builder
	prev := 0
	for _, h := range hits {
		sb.WriteString(string(orig[prev:h.start]))
		sb.WriteString(h.en)
		prev = h.end
	}
	sb.WriteString(string(orig[prev:]))
	return sb.String()
}

func matchAt(runes []rune, at int, want []rune) bool {
	for k, r := range want {
		if runes[at+k] != r {
			return false
		}
	}
	return true
}

// isBoundary reports whether the rune at index i (may be out of range) does
// not continue a word.
func isBoundary(runes []rune, i int) bool {
	if i < 0 || i >= len(runes) {
		return true
	}
	return !unicode.IsLetter(runes[i]) && !unicode.IsDigit(runes[i])
}

var (
	hourMinutePattern = regexp.MustCompile(`(\d{1,2})h(\d{2})`)
	hourWordPattern   = regexp.MustCompile(`(\d{1,2})\s*giờ(?:\s*(\d{1,2})(?:\s*phút)?)?`)
	hourBarePattern   = regexp.MustCompile(`(\d{1,2})h\b`)
)

// RewriteClockTimes rewrites numeric Vietnamese hour notations (9h30, 9 giờ,
// 9h) into HH:MM so a generic time parser can read them. Applied before
// date parsing, after phrase translation.
func RewriteClockTimes(s string) string {
	s = hourMinutePattern.ReplaceAllStringFunc(s, func(m string) string {
		parts := hourMinutePattern.FindStringSubmatch(m)
		return fmt.Sprintf("%02d:%s", atoi(parts[1]), parts[2])
	})
	s = hourWordPattern.ReplaceAllStringFunc(s, func(m string) string {
		parts := hourWordPattern.FindStringSubmatch(m)
		minute := 0
		if parts[2] != "" {
			minute = atoi(parts[2])
		}
		return fmt.Sprintf("%02d:%02d", atoi(parts[1]), minute)
	})
	s = hourBarePattern.ReplaceAllStringFunc(s, func(m string) string {
		parts := hourBarePattern.FindStringSubmatch(m)
		return fmt.Sprintf("%02d:00", atoi(parts[1]))
	})
	return s
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
