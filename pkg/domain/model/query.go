package model

import (
	"github.com/secmon-lab/pulse/pkg/domain/types"
)

// RankedStudent is one row of a progress ranking
type RankedStudent struct {
	Student
	TotalCheckins       int                `json:"total_checkins"`
	AverageQualityScore float64            `json:"average_quality_score"`
	Quality             types.QualityLabel `json:"quality"`
}

// QueryResponse is the structured answer of the question interpreter. Which
// fields are populated depends on the matched intent. Ambiguous or unparseable
// input degrades into Answer/Note text; it never becomes an error.
type QueryResponse struct {
	Intent types.QueryIntent `json:"intent"`
	Answer string            `json:"answer,omitempty"`
	Note   string            `json:"note,omitempty"`

	Date  string `json:"date,omitempty"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
	Days  int    `json:"days,omitempty"`

	User    *Student           `json:"user,omitempty"`
	Quality types.QualityLabel `json:"quality,omitempty"`
	Message string             `json:"message,omitempty"`

	CheckedIn    []string         `json:"checked_in,omitempty"`
	Missing      []Student        `json:"missing,omitempty"`
	Ranking      []RankedStudent  `json:"ranking,omitempty"`
	Checkins     []CheckinRecord  `json:"checkins,omitempty"`
	Blockers     []BlockerMention `json:"blockers,omitempty"`
	Capabilities []string         `json:"capabilities,omitempty"`
}
