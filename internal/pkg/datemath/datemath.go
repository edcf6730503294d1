// Package datemath holds the pure date helpers used by deadlines, attendance
// and payslip periods. Nothing here reads the wall clock.
package datemath

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	InputLayout = "2006-01-02"
	MonthLayout = "2006-01"

	secondsPerDay = 24 * 60 * 60
)

var ErrInvalidDate = errors.New("invalid date")

// DaysRemaining returns ceil((deadline - today) / 1 day). Negative values
// mean the deadline has passed. It works on Unix seconds, so gaps beyond the
// ~292 year range of time.Duration stay exact.
func DaysRemaining(deadline, today time.Time) int {
	secs := deadline.Unix() - today.Unix()
	nanos := deadline.Nanosecond() - today.Nanosecond()
	if nanos < 0 {
		secs--
		nanos += int(time.Second)
	}

	days, rem := secs/secondsPerDay, secs%secondsPerDay
	if rem < 0 {
		days--
		rem += secondsPerDay
	}
	if rem > 0 || nanos > 0 {
		days++
	}
	return int(days)
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// CalendarDate returns the calendar date of t as seen in loc, anchored at
// midnight UTC like the dates read from storage. Use it for "today" so that
// DaysRemaining against stored dates yields whole days.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	d := StartOfDay(t, loc)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// Parse accepts YYYY-MM-DD and RFC3339 values.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	if t, err := time.Parse(InputLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// ParseMonth accepts YYYY-MM and returns the first day of that month in UTC.
func ParseMonth(value string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

// MonthRange returns [first day of month, first day of next month).
func MonthRange(month time.Time) (time.Time, time.Time) {
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// FormatForInput renders value as YYYY-MM-DD, the format of date inputs.
func FormatForInput(value string) (string, error) {
	t, err := Parse(value)
	if err != nil {
		return "", err
	}
	return t.Format(InputLayout), nil
}

// FormatForDisplay renders value for humans in the given BCP-47 locale.
// Unsupported locales fall back to en-US.
func FormatForDisplay(value, locale string) (string, error) {
	t, err := Parse(value)
	if err != nil {
		return "", err
	}
	return formatterFor(locale)(t), nil
}

// InputOrPlaceholder is FormatForInput with the error replaced by placeholder.
func InputOrPlaceholder(value, placeholder string) string {
	s, err := FormatForInput(value)
	if err != nil {
		return placeholder
	}
	return s
}

// DisplayOrPlaceholder is FormatForDisplay with the error replaced by placeholder.
func DisplayOrPlaceholder(value, locale, placeholder string) string {
	s, err := FormatForDisplay(value, locale)
	if err != nil {
		return placeholder
	}
	return s
}

var (
	enIN = language.MustParse("en-IN")
	idID = language.MustParse("id-ID")

	// first entry is the fallback
	supportedLocales = []language.Tag{language.AmericanEnglish, language.BritishEnglish, enIN, idID}
	localeMatcher    = language.NewMatcher(supportedLocales)
)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

func formatterFor(locale string) func(time.Time) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	_, index, _ := localeMatcher.Match(tag)

	switch supportedLocales[index] {
	case language.BritishEnglish:
		return func(t time.Time) string { return t.Format("2 January 2006") }
	case enIN:
		return func(t time.Time) string { return t.Format("02 Jan 2006") }
	case idID:
		return func(t time.Time) string {
			return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
		}
	default:
		return func(t time.Time) string { return t.Format("Jan 2, 2006") }
	}
}
