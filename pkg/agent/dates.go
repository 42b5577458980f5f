package agent

import (
	"strings"
	"time"

	"github.com/secmon-lab/pulse/pkg/domain/model"
)

// The relative-date grammar accepts exactly three token forms:
// a literal ISO date, a weekday name, or yesterday/today/tomorrow.
// Weekday names resolve against the Monday of the anchor week (the reference
// week when one is given, otherwise the ISO week of the current instant).
// Anything else is unparseable and reported via the ok flag, not a sentinel.

var weekdayOffsets = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

func resolveDateToken(token string, now time.Time, weekAnchor *time.Time) (time.Time, bool) {
	token = strings.ToLower(strings.Trim(token, " \t?.!,'\""))
	if token == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.DateOnly, token); err == nil {
		return model.StartOfDay(t), true
	}

	today := model.StartOfDay(now)
	switch token {
	case "yesterday":
		return today.AddDate(0, 0, -1), true
	case "today":
		return today, true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	}

	if offset, ok := weekdayOffsets[token]; ok {
		anchor := model.StartOfISOWeek(now)
		if weekAnchor != nil {
			anchor = model.StartOfISOWeek(*weekAnchor)
		}
		return anchor.AddDate(0, 0, offset), true
	}

	return time.Time{}, false
}
