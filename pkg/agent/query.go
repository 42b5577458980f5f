package agent

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/secmon-lab/pulse/pkg/domain/model"
	"github.com/secmon-lab/pulse/pkg/domain/types"
)

const defaultMissingDays = 3

const rankingLimit = 5

var capabilities = []string{
	"Who checked in yesterday and who did not?",
	"Who is missing? (optionally: past N days)",
	"What is the quality of <name>'s check-in on <date>?",
	"Who made the best progress this week?",
	"List check-ins from <date> to <date>",
	"What blockers came up this week?",
}

// intentHandler is one supported question pattern. Matching is ordered and
// first-match-wins; extraction happens inside the handler so each intent's
// parsing stays independently testable.
type intentHandler struct {
	name   types.QueryIntent
	match  func(lower string) bool
	handle func(a *Agent, question, lower string) *model.QueryResponse
}

func intents() []intentHandler {
	return []intentHandler{
		{
			name:   types.IntentYesterdayAttendance,
			match: func(q string) bool {
				return strings.Contains(q, "yesterday") && strings.Contains(q, "who")
			},
			handle: (*Agent).answerYesterdayAttendance,
		},
		{
			name: types.IntentMissingRecent,
			match: func(q string) bool {
				return strings.Contains(q, "missing") ||
					strings.Contains(q, "hasn't checked in") ||
					strings.Contains(q, "has not checked in") ||
					strings.Contains(q, "not checked in")
			},
			handle: (*Agent).answerMissingRecent,
		},
		{
			name:   types.IntentCheckinQuality,
			match:  func(q string) bool { return strings.Contains(q, "quality of") },
			handle: (*Agent).answerCheckinQuality,
		},
		{
			name: types.IntentProgressRanking,
			match: func(q string) bool {
				return strings.Contains(q, "progress") ||
					strings.Contains(q, "ranking") ||
					strings.Contains(q, "best")
			},
			handle: (*Agent).answerProgressRanking,
		},
		{
			name:   types.IntentRangeListing,
			match:  func(q string) bool { return rangePattern.MatchString(q) },
			handle: (*Agent).answerRangeListing,
		},
		{
			name:   types.IntentWeeklyBlockers,
			match:  func(q string) bool { return strings.Contains(q, "blocker") },
			handle: (*Agent).answerWeeklyBlockers,
		},
	}
}

// AnswerQuestion maps a free-text question to one of the supported intents
// and dispatches to the matching aggregation. Malformed or unrecognized input
// never fails; it degrades into an explanatory response payload.
func (a *Agent) AnswerQuestion(question string) *model.QueryResponse {
	lower := strings.ToLower(question)

	for _, intent := range intents() {
		if !intent.match(lower) {
			continue
		}
		resp := intent.handle(a, question, lower)
		resp.Intent = intent.name
		return resp
	}

	return &model.QueryResponse{
		Intent:       types.IntentUnknown,
		Answer:       "I could not match that question to a supported query. Here is what I can answer:",
		Capabilities: capabilities,
	}
}

func (a *Agent) answerYesterdayAttendance(_, _ string) *model.QueryResponse {
	w := model.DayWindow(a.today().AddDate(0, 0, -1))
	entries := a.CheckinsInWindow(w)

	checkedIn := make([]string, 0, len(entries))
	seen := make(map[string]bool)
	for _, rec := range entries {
		if seen[rec.UserID()] {
			continue
		}
		seen[rec.UserID()] = true
		name := rec.UserName()
		if name == "" {
			name = rec.UserID()
		}
		checkedIn = append(checkedIn, name)
	}

	resp := &model.QueryResponse{
		Date:      w.Start.Format(time.DateOnly),
		CheckedIn: checkedIn,
		Missing:   []model.Student{},
		Answer:    fmt.Sprintf("%d participant(s) checked in yesterday.", len(checkedIn)),
	}
	if a.HasRoster() {
		resp.Missing = a.MissingUsers(w)
	} else {
		resp.Note = "No roster was provided, so missing participants cannot be determined."
	}
	return resp
}

var recentDaysPattern = regexp.MustCompile(`(?:past|last)\s+(\d+)\s+days?`)

func (a *Agent) answerMissingRecent(_, lower string) *model.QueryResponse {
	days := defaultMissingDays
	if m := recentDaysPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			days = n
		}
	}

	w := model.TimeWindow{
		Start: a.today().AddDate(0, 0, -(days - 1)),
		End:   model.DayWindow(a.today()).End,
	}

	resp := &model.QueryResponse{
		Days:    days,
		Start:   w.Start.Format(time.DateOnly),
		End:     w.End.Format(time.DateOnly),
		Missing: []model.Student{},
	}
	if a.HasRoster() {
		resp.Missing = a.MissingUsers(w)
		resp.Answer = fmt.Sprintf("%d participant(s) have no check-in in the past %d day(s).", len(resp.Missing), days)
	} else {
		resp.Note = "No roster was provided, so missing participants cannot be determined."
	}
	return resp
}

func (a *Agent) answerCheckinQuality(question, lower string) *model.QueryResponse {
	name := extractQualityName(question)
	if name == "" {
		return &model.QueryResponse{
			Note: "Could not identify whose check-in you are asking about. Try: what is the quality of <name>'s check-in on <date>?",
		}
	}

	student := a.findStudent(name)
	if student == nil {
		return &model.QueryResponse{
			Note: fmt.Sprintf("%s is not on the roster and has no recorded check-ins.", name),
		}
	}

	date := a.today()
	if token, ok := tokenAfter(lower, " on "); ok {
		resolved, ok := resolveDateToken(token, a.now(), nil)
		if !ok {
			return &model.QueryResponse{
				User: student,
				Note: fmt.Sprintf("Could not understand the date %q. Use an ISO date, a weekday name, or yesterday/today/tomorrow.", token),
			}
		}
		date = resolved
	}

	summary := a.SummarizeDay(student.ID, date)
	if summary == nil {
		return &model.QueryResponse{
			User: student,
			Date: date.Format(time.DateOnly),
			Note: fmt.Sprintf("%s did not check in on %s.", student.Name, date.Format(time.DateOnly)),
		}
	}

	return &model.QueryResponse{
		User:    student,
		Date:    date.Format(time.DateOnly),
		Quality: summary.Quality,
		Message: summary.Checkin.Text(),
		Answer:  fmt.Sprintf("%s's check-in on %s was rated %s.", student.Name, date.Format(time.DateOnly), summary.Quality),
	}
}

func (a *Agent) answerProgressRanking(_, _ string) *model.QueryResponse {
	weekStart := model.StartOfISOWeek(a.now())
	w := model.WeekWindow(weekStart)

	ranking := make([]model.RankedStudent, 0, len(a.students))
	for _, s := range a.students {
		summary := a.SummarizeRange(s.ID, w)
		if summary == nil {
			continue
		}
		ranking = append(ranking, model.RankedStudent{
			Student:             s,
			TotalCheckins:       summary.TotalCheckins,
			AverageQualityScore: summary.AverageQualityScore,
			Quality:             summary.Quality,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].AverageQualityScore > ranking[j].AverageQualityScore
	})
	if len(ranking) > rankingLimit {
		ranking = ranking[:rankingLimit]
	}

	resp := &model.QueryResponse{
		Start:   w.Start.Format(time.DateOnly),
		End:     w.End.Format(time.DateOnly),
		Ranking: ranking,
	}
	if len(ranking) == 0 {
		resp.Note = "Nobody has checked in this week yet."
	}
	return resp
}

var rangePattern = regexp.MustCompile(`(?:from\s+(\S+)\s+to\s+(\S+))|(?:between\s+(\S+)\s+and\s+(\S+))`)

func (a *Agent) answerRangeListing(_, lower string) *model.QueryResponse {
	m := rangePattern.FindStringSubmatch(lower)
	startToken, endToken := m[1], m[2]
	if startToken == "" {
		startToken, endToken = m[3], m[4]
	}

	start, ok := resolveDateToken(startToken, a.now(), nil)
	if !ok {
		return &model.QueryResponse{
			Note: fmt.Sprintf("Could not understand the start date %q.", startToken),
		}
	}
	end, ok := resolveDateToken(endToken, a.now(), nil)
	if !ok {
		return &model.QueryResponse{
			Note: fmt.Sprintf("Could not understand the end date %q.", endToken),
		}
	}

	w := model.TimeWindow{Start: start, End: model.DayWindow(end).End}
	checkins := a.CheckinsInWindow(w)

	return &model.QueryResponse{
		Start:    start.Format(time.DateOnly),
		End:      end.Format(time.DateOnly),
		Checkins: checkins,
		Answer:   fmt.Sprintf("%d check-in(s) between %s and %s.", len(checkins), start.Format(time.DateOnly), end.Format(time.DateOnly)),
	}
}

func (a *Agent) answerWeeklyBlockers(_, _ string) *model.QueryResponse {
	w := model.WeekWindow(model.StartOfISOWeek(a.now()))
	blockers := a.ExtractBlockers(a.CheckinsInWindow(w))

	resp := &model.QueryResponse{
		Start:    w.Start.Format(time.DateOnly),
		End:      w.End.Format(time.DateOnly),
		Blockers: blockers,
		Answer:   fmt.Sprintf("%d blocker mention(s) this week.", len(blockers)),
	}
	if len(blockers) == 0 {
		resp.Answer = "No blockers were raised this week."
	}
	return resp
}

// extractQualityName pulls the student name out of a phrase shaped like
// "... quality of <name>'s check-in ...". Matching is case-insensitive but
// the extracted name keeps the original casing. The scan runs directly over
// the question so byte offsets stay valid for names whose lowercase form has
// a different encoded length.
func extractQualityName(question string) string {
	begin := indexFold(question, "quality of ")
	if begin < 0 {
		return ""
	}
	begin += len("quality of ")

	rest := question[begin:]
	for _, marker := range []string{"'s check-in", "'s checkin", "’s check-in", "’s checkin"} {
		if end := indexFold(rest, marker); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
	}
	return ""
}

// indexFold returns the byte offset of the first case-insensitive occurrence
// of substr in s, or -1. Only equal-length windows are considered, so the
// returned offset and the match length are exact for s.
func indexFold(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}

// tokenAfter returns the first whitespace-delimited token following the last
// occurrence of sep
func tokenAfter(s, sep string) (string, bool) {
	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return "", false
	}
	fields := strings.Fields(s[idx+len(sep):])
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

// findStudent resolves a student by case-insensitive name or ID match
func (a *Agent) findStudent(name string) *model.Student {
	for i, s := range a.students {
		if strings.EqualFold(s.Name, name) || strings.EqualFold(s.ID, name) {
			return &a.students[i]
		}
	}
	return nil
}
