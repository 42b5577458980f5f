package types

// QueryIntent identifies which supported question pattern matched
type QueryIntent string

const (
	IntentYesterdayAttendance QueryIntent = "yesterday_attendance"
	IntentMissingRecent       QueryIntent = "missing_recent"
	IntentCheckinQuality      QueryIntent = "checkin_quality"
	IntentProgressRanking     QueryIntent = "progress_ranking"
	IntentRangeListing        QueryIntent = "range_listing"
	IntentWeeklyBlockers      QueryIntent = "weekly_blockers"
	IntentUnknown             QueryIntent = "unknown"
)

// String returns the string representation of the query intent
func (q QueryIntent) String() string {
	return string(q)
}
