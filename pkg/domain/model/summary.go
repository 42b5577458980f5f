package model

import (
	"time"

	"github.com/secmon-lab/pulse/pkg/domain/types"
)

// Summary aggregates a user's check-ins over a window. It is absent (nil),
// not an error, when no entries fall inside the window.
type Summary struct {
	Start               time.Time          `json:"start"`
	End                 time.Time          `json:"end"`
	TotalCheckins       int                `json:"total_checkins"`
	AverageQualityScore float64            `json:"average_quality_score"`
	Quality             types.QualityLabel `json:"quality"`
	Entries             []CheckinRecord    `json:"entries"`
}

// DailySummary is the single check-in selected for a calendar day
type DailySummary struct {
	Date    time.Time          `json:"date"`
	Checkin CheckinRecord      `json:"checkin"`
	Quality types.QualityLabel `json:"quality"`
}

// WeeklySummary adds blocker extraction to a one-week range summary
type WeeklySummary struct {
	Summary
	Blockers []BlockerMention `json:"blockers"`
}

// Consistency is the fraction of days in a period with at least one check-in
type Consistency struct {
	DaysCheckedIn int     `json:"days_checked_in"`
	PeriodLength  int     `json:"period_length"`
	Percentage    float64 `json:"percentage"`
}

// MonthlySummary covers a full calendar month. Consistency is always computed,
// even when the inner Summary is absent for lack of entries.
type MonthlySummary struct {
	Start       time.Time        `json:"start"`
	End         time.Time        `json:"end"`
	Summary     *Summary         `json:"summary"`
	Blockers    []BlockerMention `json:"blockers"`
	Consistency Consistency      `json:"consistency"`
}

// BlockerMention is one check-in whose text raised blocker language
type BlockerMention struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}
