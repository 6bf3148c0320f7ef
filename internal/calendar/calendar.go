package calendar

import (
	"fmt"
	"time"
)

const Layout = "2006-01-02"

// Date is a calendar day in the caller's local time zone, without a
// time-of-day component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Parse reads "YYYY-MM-DD" as a local date. time.Parse alone would place
// the day at UTC midnight, which shifts the date in other time zones.
func Parse(s string) (Date, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return FromTime(t), nil
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

func (d Date) String() string {
	return d.Time().Format(Layout)
}

func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

func (d Date) After(o Date) bool {
	return d.Time().After(o.Time())
}

// StartOfISOWeek returns the Monday of the ISO week containing d.
func StartOfISOWeek(d Date) Date {
	offset := (int(d.Time().Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// EndOfISOWeek returns the Sunday of the ISO week containing d.
func EndOfISOWeek(d Date) Date {
	return StartOfISOWeek(d).AddDays(6)
}

// ClampEnd caps end at today so an ongoing week only covers days that
// have occurred.
func ClampEnd(end, today Date) Date {
	if end.After(today) {
		return today
	}
	return end
}

// EnumerateDays lists every day from start to end inclusive. Nil when
// end precedes start.
func EnumerateDays(start, end Date) []Date {
	if end.Before(start) {
		return nil
	}
	var days []Date
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// ISOWeekString formats d as "YYYY-Www", e.g. "2025-W41". The ISO week
// year can differ from the calendar year around New Year.
func ISOWeekString(d Date) string {
	year, week := d.Time().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
