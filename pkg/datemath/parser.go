package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative or explicit date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.nextWeekday(strings.TrimPrefix(relative, "next "), baseTime)
	}

	// Handle explicit day/month[/year]
	if t, ok := p.parseExplicitDate(relative, baseTime); ok {
		return t, nil
	}

	// Bare weekday means the next occurrence of that weekday.
	if _, ok := weekdays[relative]; ok {
		return p.nextWeekday(relative, baseTime)
	}

	// Fallback: treat unknown as today
	return p.startOfDay(baseTime), nil
}

var (
	explicitDatePattern = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
	relativePattern     = regexp.MustCompile(`\b(?:next\s+)?(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b|\b(?:today|tomorrow|yesterday)\b|\bin\s+\d+\s+(?:days?|weeks?|months?)\b`)
	clockPattern        = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
)

// FindDate scans free text (already translated to English tokens) for the
// first date expression. It returns the resolved start-of-day, the matched
// span of text, and whether anything matched. Explicit dd/mm dates win over
// relative expressions.
func (p *Parser) FindDate(text string, baseTime time.Time) (time.Time, string, bool) {
	lower := strings.ToLower(text)

	if span := explicitDatePattern.FindString(lower); span != "" {
		if t, ok := p.parseExplicitDate(span, baseTime); ok {
			return t, span, true
		}
	}

	if span := relativePattern.FindString(lower); span != "" {
		t, err := p.Parse(span, baseTime)
		if err == nil {
			return t, span, true
		}
	}

	return time.Time{}, "", false
}

// Clock is one HH:MM occurrence found in text.
type Clock struct {
	Hour   int
	Minute int
	Span   string
}

// FindClocks returns every valid HH:MM occurrence in order of appearance.
func FindClocks(text string) []Clock {
	var out []Clock
	for _, m := range clockPattern.FindAllStringSubmatch(text, -1) {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			continue
		}
		out = append(out, Clock{Hour: hour, Minute: minute, Span: m[0]})
	}
	return out
}

// At pins a clock time onto the given day in the parser's timezone.
func (p *Parser) At(day time.Time, hour, minute int) time.Time {
	day = day.In(p.location)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
}

// parseExplicitDate handles "12/12", "5/1/2026", "05/01/26".
// A day/month with no year resolves to the current year, rolling forward one
// year when the date has already passed.
func (p *Parser) parseExplicitDate(s string, baseTime time.Time) (time.Time, bool) {
	matches := explicitDatePattern.FindStringSubmatch(strings.TrimSpace(s))
	if len(matches) == 0 {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return time.Time{}, false
	}

	base := baseTime.In(p.location)
	year := base.Year()
	hasYear := matches[3] != ""
	if hasYear {
		year, _ = strconv.Atoi(matches[3])
		if year < 100 {
			year += 2000
		}
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	if !hasYear && t.Before(p.startOfDay(base)) {
		t = t.AddDate(1, 0, 0)
	}
	return t, true
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	re := regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	matches := re.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// nextWeekday resolves a weekday name to its next occurrence after baseTime.
// The same weekday as baseTime resolves one week out, never to baseTime itself.
func (p *Parser) nextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday, ok := weekdays[strings.TrimSpace(dayName)]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

