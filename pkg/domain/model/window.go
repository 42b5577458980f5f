package model

import "time"

// TimeWindow is an inclusive [start, end] instant range. All calendar
// arithmetic happens in the constructors so that aggregation only ever sees
// concrete instants. An inverted window simply contains nothing.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewTimeWindow creates a window from explicit start and end instants
func NewTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{Start: start.UTC(), End: end.UTC()}
}

// DayWindow returns the window covering the calendar day of the given instant (UTC)
func DayWindow(day time.Time) TimeWindow {
	start := StartOfDay(day)
	return TimeWindow{Start: start, End: endOfSpan(start.AddDate(0, 0, 1))}
}

// WeekWindow returns the window from the given start date through +6 days inclusive
func WeekWindow(weekStart time.Time) TimeWindow {
	start := StartOfDay(weekStart)
	return TimeWindow{Start: start, End: endOfSpan(start.AddDate(0, 0, 7))}
}

// MonthWindow returns the window covering the full calendar month containing the anchor
func MonthWindow(anchor time.Time) TimeWindow {
	t := anchor.UTC()
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return TimeWindow{Start: start, End: endOfSpan(start.AddDate(0, 1, 0))}
}

// Contains reports whether ts falls inside the window, boundaries included
func (w TimeWindow) Contains(ts time.Time) bool {
	return !ts.Before(w.Start) && !ts.After(w.End)
}

// Days returns the number of calendar days spanned by the window, at least 0
func (w TimeWindow) Days() int {
	if w.End.Before(w.Start) {
		return 0
	}
	start := StartOfDay(w.Start)
	end := StartOfDay(w.End)
	return int(end.Sub(start).Hours()/24) + 1
}

// StartOfDay truncates an instant to midnight UTC
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfISOWeek returns the Monday 00:00 UTC of the ISO week containing t
func StartOfISOWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func endOfSpan(nextStart time.Time) time.Time {
	return nextStart.Add(-time.Nanosecond)
}
