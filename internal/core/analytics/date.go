package analytics

import "time"

// DefaultPeriod is used when the caller sends no period token.
const DefaultPeriod = "12months"

// DefaultDays is the window length for DefaultPeriod and for any token that
// is not recognized.
const DefaultDays = 365

var periodDays = map[string]int{
	"7days":    7,
	"1month":   30,
	"3months":  90,
	"6months":  180,
	"9months":  270,
	"12months": 365,
}

// ResolvePeriod maps a period token to a day count. Unknown tokens resolve to
// DefaultDays; it never fails.
func ResolvePeriod(token string) int {
	if days, ok := periodDays[token]; ok {
		return days
	}
	return DefaultDays
}

// IsKnownPeriod reports whether token is one of the recognized period tokens.
func IsKnownPeriod(token string) bool {
	_, ok := periodDays[token]
	return ok
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Windows returns the current and previous comparison windows for a period
// of days ending with the calendar day of now. The previous window ends
// exactly where the current one starts and spans the same number of days.
func Windows(now time.Time, days int) (current, previous Window) {
	if days <= 0 {
		days = DefaultDays
	}
	anchor := StartOfDay(now).AddDate(0, 0, 1)
	currentStart := anchor.AddDate(0, 0, -days)

	current = Window{Start: currentStart, End: anchor}
	previous = Window{Start: currentStart.AddDate(0, 0, -days), End: currentStart}
	return current, previous
}

// Contains reports whether t falls in [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
