// Package extract pulls structured slots (datetime, reminder offsets, course
// reference, title, event type) out of a Vietnamese chat message. It is
// deterministic, regex/pattern based, and never fails outward: whatever was
// recognized by the time something goes wrong is returned as-is.
package extract

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"study-assistant/internal/model"
	"study-assistant/pkg/datemath"
	"study-assistant/pkg/log"
	"study-assistant/pkg/vntext"
)

// Extractor parses entities from raw chat text.
type Extractor struct {
	dates *datemath.Parser
	l     log.Logger
}

// New creates a new entity extractor.
func New(dates *datemath.Parser, l log.Logger) *Extractor {
	return &Extractor{dates: dates, l: l}
}

var (
	// "nhắc trước 30 phút" / "nhắc lại 1 tiếng" on folded text.
	reminderPattern = regexp.MustCompile(`\bnhac (?:truoc|lai) (\d+) (phut|gio|tieng|ngay)\b`)
	// Course phrase opener on folded text; the phrase runs until a stopword.
	coursePattern = regexp.MustCompile(`\bmon ([a-z0-9 ]+)`)
	// Channel mentions on folded text.
	emailChannelPattern = regexp.MustCompile(`\b(?:qua |bang )?email\b`)
	inAppChannelPattern = regexp.MustCompile(`\b(?:trong )?(?:ung dung|app|in app)\b`)
)

// Extract runs the slot-filling steps in order: datetime, reminder offset,
// channel mention, course phrase, event type, title. On an internal panic the
// entities collected so far are returned.
func (e *Extractor) Extract(ctx context.Context, text string, now time.Time) (entities model.Entities) {
	defer func() {
		if r := recover(); r != nil {
			e.l.Errorf(ctx, "%s: recovered: %v", LogPrefixExtract, r)
		}
	}()

	entities.Type = model.EventTypeOther

	// Step 1: translate the vernacular date phrases and clock notations, then
	// locate the datetime in the translated text.
	translated := vntext.RewriteClockTimes(vntext.TranslateDatePhrases(text))
	working := translated

	if day, span, ok := e.dates.FindDate(translated, now); ok {
		entities.Date = &day
		working = removeSpan(working, span)
	}

	clocks := datemath.FindClocks(translated)
	if len(clocks) > 0 {
		entities.TimeStart = fmt.Sprintf("%02d:%02d", clocks[0].Hour, clocks[0].Minute)
		working = removeSpan(working, clocks[0].Span)
	}
	if len(clocks) > 1 {
		entities.TimeEnd = fmt.Sprintf("%02d:%02d", clocks[1].Hour, clocks[1].Minute)
		working = removeSpan(working, clocks[1].Span)
	}

	// Step 2 (continued in buildTitle): the matched spans are already gone
	// from the working copy; bare date/time keywords go later.

	// Step 3: explicit reminder offset phrase.
	working = e.extractReminderOffset(&entities, working)

	// Channel mention, when the user already named one.
	working = e.extractChannel(&entities, working)

	// Step 4: course-name phrase.
	e.extractCourseRef(&entities, working)

	// Step 5: event type by keyword family, first family wins.
	entities.Type = classifyType(foldLower(text))

	// Step 6: strip leftovers and action keywords, capitalize.
	entities.Title = buildTitle(working)

	e.l.Debugf(ctx, "%s: %q -> title=%q type=%s start=%s", LogPrefixExtract, text, entities.Title, entities.Type, entities.TimeStart)
	return entities
}

// extractReminderOffset parses "nhắc trước|lại N <unit>" into a negative
// offset in seconds and cuts the phrase from the working copy.
func (e *Extractor) extractReminderOffset(entities *model.Entities, working string) string {
	folded := foldLower(working)
	m := reminderPattern.FindStringSubmatchIndex(folded)
	if m == nil {
		return working
	}

	amount, err := strconv.Atoi(folded[m[2]:m[3]])
	if err != nil || amount <= 0 {
		return working
	}
	unit := offsetUnits[folded[m[4]:m[5]]]
	entities.ReminderOffsets = append(entities.ReminderOffsets, -amount*unit)

	return cutByFoldedBytes(working, folded, m[0], m[1])
}

// extractChannel records an explicitly mentioned delivery channel and removes
// the mention from the working copy.
func (e *Extractor) extractChannel(entities *model.Entities, working string) string {
	folded := foldLower(working)
	if m := emailChannelPattern.FindStringIndex(folded); m != nil {
		entities.ReminderChannel = model.ChannelEmail
		return cutByFoldedBytes(working, folded, m[0], m[1])
	}
	if m := inAppChannelPattern.FindStringIndex(folded); m != nil {
		entities.ReminderChannel = model.ChannelInApp
		return cutByFoldedBytes(working, folded, m[0], m[1])
	}
	return working
}

// extractCourseRef captures the phrase after "môn", stopping at the first
// time/connector word or number.
func (e *Extractor) extractCourseRef(entities *model.Entities, working string) {
	folded := foldLower(working)
	m := coursePattern.FindStringSubmatchIndex(folded)
	if m == nil {
		return
	}

	phrase := folded[m[2]:m[3]]
	end := m[2]
	for idx := 0; idx < len(phrase); {
		for idx < len(phrase) && phrase[idx] == ' ' {
			idx++
		}
		start := idx
		for idx < len(phrase) && phrase[idx] != ' ' {
			idx++
		}
		if start == idx {
			break
		}
		token := phrase[start:idx]
		if courseStopwords[token] || isNumeric(token) {
			break
		}
		end = m[2] + idx
	}
	if end == m[2] {
		return
	}

	entities.CourseRef = strings.TrimSpace(substrByFoldedBytes(working, folded, m[2], end))
}

// classifyType returns the first matching event-type family.
func classifyType(folded string) model.EventType {
	tokens := tokenSet(folded)
	for _, family := range typeKeywords {
		for _, kw := range family.keywords {
			if strings.Contains(kw, " ") {
				if strings.Contains(folded, kw) {
					return model.EventType(family.eventType)
				}
			} else if tokens[kw] {
				return model.EventType(family.eventType)
			}
		}
	}
	return model.EventTypeOther
}

// buildTitle drops date/time keyword tokens, repeatedly strips leading action
// keywords, and capitalizes the first letter of what remains.
func buildTitle(working string) string {
	var kept []string
	for _, token := range strings.Fields(working) {
		if dateTimeKeywords[foldLower(trimPunct(token))] {
			continue
		}
		kept = append(kept, token)
	}

	for len(kept) > 0 && actionKeywords[foldLower(trimPunct(kept[0]))] {
		kept = kept[1:]
	}

	title := strings.Trim(strings.Join(kept, " "), " ,.;:!?-")
	if title == "" {
		return PlaceholderTitle
	}

	runes := []rune(title)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// --- helpers ---

func foldLower(s string) string {
	return strings.ToLower(vntext.Fold(s))
}

// removeSpan cuts the first case-insensitive occurrence of span out of s.
func removeSpan(s, span string) string {
	if span == "" {
		return s
	}
	idx := strings.Index(strings.ToLower(s), strings.ToLower(span))
	if idx < 0 {
		return s
	}
	return strings.TrimSpace(s[:idx] + " " + s[idx+len(span):])
}

// substrByFoldedBytes maps a byte range in the folded form of s back onto s.
// Folding is rune-preserving, so rune offsets line up even though byte
// offsets do not.
func substrByFoldedBytes(s, folded string, start, end int) string {
	rs := utf8.RuneCountInString(folded[:start])
	re := utf8.RuneCountInString(folded[:end])
	runes := []rune(s)
	if re > len(runes) {
		re = len(runes)
	}
	if rs >= re {
		return ""
	}
	return string(runes[rs:re])
}

// cutByFoldedBytes removes the byte range (given in folded coordinates) from s.
func cutByFoldedBytes(s, folded string, start, end int) string {
	rs := utf8.RuneCountInString(folded[:start])
	re := utf8.RuneCountInString(folded[:end])
	runes := []rune(s)
	if re > len(runes) {
		re = len(runes)
	}
	return strings.TrimSpace(string(runes[:rs]) + " " + string(runes[re:]))
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func trimPunct(s string) string {
	return strings.Trim(s, ",.;:!?-")
}

func tokenSet(folded string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		set[tok] = true
	}
	return set
}
