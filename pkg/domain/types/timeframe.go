package types

import "fmt"

// TimeframeType represents the granularity of a dashboard request
type TimeframeType string

const (
	TimeframeDaily   TimeframeType = "daily"
	TimeframeWeekly  TimeframeType = "weekly"
	TimeframeMonthly TimeframeType = "monthly"
)

// AllTimeframeTypes returns all valid timeframe types
func AllTimeframeTypes() []TimeframeType {
	return []TimeframeType{
		TimeframeDaily,
		TimeframeWeekly,
		TimeframeMonthly,
	}
}

// IsValid checks if the timeframe type is valid
func (t TimeframeType) IsValid() bool {
	switch t {
	case TimeframeDaily,
		TimeframeWeekly,
		TimeframeMonthly:
		return true
	default:
		return false
	}
}

// String returns the string representation of the timeframe type
func (t TimeframeType) String() string {
	return string(t)
}

// ParseTimeframeType parses a string into a TimeframeType
func ParseTimeframeType(s string) (TimeframeType, error) {
	tf := TimeframeType(s)
	if !tf.IsValid() {
		return "", fmt.Errorf("invalid timeframe type: %s", s)
	}
	return tf, nil
}
