package model

import (
	"github.com/secmon-lab/pulse/pkg/domain/types"
)

// UserRef identifies the user a report is generated for
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Timeframe is the explicit, non-inferred descriptor of a report period.
// Anchor fields are ISO dates ("2006-01-02"); Month also accepts "2006-01".
type Timeframe struct {
	Type  types.TimeframeType `json:"type"`
	Date  string              `json:"date,omitempty"`
	Start string              `json:"start,omitempty"`
	Month string              `json:"month,omitempty"`
}

// Dashboard is the public result of a timeframe-driven report request
type Dashboard struct {
	User      UserRef             `json:"user"`
	Type      types.TimeframeType `json:"type"`
	Date      string              `json:"date,omitempty"`
	WeekStart string              `json:"week_start,omitempty"`
	WeekEnd   string              `json:"week_end,omitempty"`
	Month     string              `json:"month,omitempty"`
	Summary   any                 `json:"summary"`
}
