package agent

import (
	"math"
	"time"

	"github.com/secmon-lab/pulse/pkg/domain/model"
	"github.com/secmon-lab/pulse/pkg/domain/types"
	"github.com/secmon-lab/pulse/pkg/service/quality"
)

// Agent answers operational questions over a fixed in-memory set of check-in
// records and an optional roster. Instances are built fresh per request and
// are read-only after construction; every operation is a deterministic, linear
// computation with no I/O.
type Agent struct {
	records    []model.CheckinRecord
	roster     model.Roster
	students   []model.Student
	classifier *quality.Classifier
	labels     []types.QualityLabel
	now        func() time.Time
}

// Option is a functional option for agent construction
type Option func(*Agent)

// WithClassifier sets the quality classifier (defaults to the built-in config)
func WithClassifier(c *quality.Classifier) Option {
	return func(a *Agent) {
		a.classifier = c
	}
}

// WithClock injects the time source used to resolve relative dates
func WithClock(now func() time.Time) Option {
	return func(a *Agent) {
		a.now = now
	}
}

// New creates an agent over the given check-ins and roster. The roster may be
// empty; users observed only via check-ins are merged into the student set.
func New(checkins []model.CheckinRecord, roster model.Roster, opts ...Option) *Agent {
	a := &Agent{
		records: append([]model.CheckinRecord(nil), checkins...),
		roster:  roster,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.classifier == nil {
		a.classifier = quality.New(nil)
	}

	a.students = model.MergeStudents(roster, a.records)
	a.labels = make([]types.QualityLabel, len(a.records))
	return a
}

// Students returns the reconciled participant set (roster first, then inferred)
func (a *Agent) Students() []model.Student {
	return a.students
}

// HasRoster reports whether a non-empty roster was supplied at construction
func (a *Agent) HasRoster() bool {
	return len(a.roster) > 0
}

// CheckinsInWindow returns all records whose timestamp falls inside the
// window, in input order. Derived quality labels are attached.
func (a *Agent) CheckinsInWindow(w model.TimeWindow) []model.CheckinRecord {
	result := make([]model.CheckinRecord, 0)
	for i, rec := range a.records {
		if w.Contains(rec.Timestamp()) {
			result = append(result, rec.WithQuality(a.labelAt(i)))
		}
	}
	return result
}

// CheckinsForUser returns the user's records, optionally window-filtered
func (a *Agent) CheckinsForUser(userID string, w *model.TimeWindow) []model.CheckinRecord {
	result := make([]model.CheckinRecord, 0)
	for i, rec := range a.records {
		if rec.UserID() != userID {
			continue
		}
		if w != nil && !w.Contains(rec.Timestamp()) {
			continue
		}
		result = append(result, rec.WithQuality(a.labelAt(i)))
	}
	return result
}

// SummarizeDay selects the user's earliest check-in of the calendar day.
// Ties on identical timestamps keep the first occurrence in input order.
// Returns nil when the user has no entry that day.
func (a *Agent) SummarizeDay(userID string, day time.Time) *model.DailySummary {
	w := model.DayWindow(day)
	entries := a.CheckinsForUser(userID, &w)
	if len(entries) == 0 {
		return nil
	}

	earliest := entries[0]
	for _, rec := range entries[1:] {
		if rec.Timestamp().Before(earliest.Timestamp()) {
			earliest = rec
		}
	}

	return &model.DailySummary{
		Date:    model.StartOfDay(day),
		Checkin: earliest,
		Quality: earliest.Quality(),
	}
}

// SummarizeRange aggregates the user's entries over the window. The average
// quality score is the mean of per-entry weights (Strong=3, Medium=2, Weak=1)
// rounded to 2 decimal places; the window-level label is derived from the
// average on its own threshold scale. Returns nil when no entries fall in the
// window.
func (a *Agent) SummarizeRange(userID string, w model.TimeWindow) *model.Summary {
	entries := a.CheckinsForUser(userID, &w)
	if len(entries) == 0 {
		return nil
	}

	var sum float64
	for _, rec := range entries {
		sum += rec.Quality().Weight()
	}
	average := round2(sum / float64(len(entries)))

	return &model.Summary{
		Start:               w.Start,
		End:                 w.End,
		TotalCheckins:       len(entries),
		AverageQualityScore: average,
		Quality:             a.classifier.WindowLabel(average),
		Entries:             entries,
	}
}

// SummarizeWeek aggregates the seven days starting at weekStartDate and adds
// blocker extraction over the window's entries
func (a *Agent) SummarizeWeek(userID string, weekStartDate time.Time) *model.WeeklySummary {
	s := a.SummarizeRange(userID, model.WeekWindow(weekStartDate))
	if s == nil {
		return nil
	}
	return &model.WeeklySummary{
		Summary:  *s,
		Blockers: a.ExtractBlockers(s.Entries),
	}
}

// SummarizeMonth aggregates the full calendar month containing the anchor.
// Consistency is always computed, even with zero entries; only the inner
// Summary is absent in that case.
func (a *Agent) SummarizeMonth(userID string, monthAnchor time.Time) *model.MonthlySummary {
	w := model.MonthWindow(monthAnchor)
	s := a.SummarizeRange(userID, w)

	days := make(map[string]bool)
	entries := []model.CheckinRecord{}
	if s != nil {
		entries = s.Entries
	}
	for _, rec := range entries {
		days[model.StartOfDay(rec.Timestamp()).Format(time.DateOnly)] = true
	}

	periodLength := w.Days()
	percentage := 0.0
	if periodLength > 0 {
		percentage = round2(float64(len(days)) / float64(periodLength) * 100)
	}

	return &model.MonthlySummary{
		Start:    w.Start,
		End:      w.End,
		Summary:  s,
		Blockers: a.ExtractBlockers(entries),
		Consistency: model.Consistency{
			DaysCheckedIn: len(days),
			PeriodLength:  periodLength,
			Percentage:    percentage,
		},
	}
}

// MissingUsers returns the reconciled student set minus users with at least
// one check-in inside the window. With an empty roster this degenerates to an
// empty or near-empty list; callers surface that via a note, not an error.
func (a *Agent) MissingUsers(w model.TimeWindow) []model.Student {
	present := make(map[string]bool)
	for _, rec := range a.records {
		if w.Contains(rec.Timestamp()) {
			present[rec.UserID()] = true
		}
	}

	missing := make([]model.Student, 0)
	for _, s := range a.students {
		if !present[s.ID] {
			missing = append(missing, s)
		}
	}
	return missing
}

// labelAt returns the quality label of the record at index i, deriving and
// memoizing it when the record was not tagged upstream
func (a *Agent) labelAt(i int) types.QualityLabel {
	if label := a.records[i].Quality(); label.IsValid() {
		return label
	}
	if !a.labels[i].IsValid() {
		a.labels[i] = a.classifier.Label(a.records[i].Text())
	}
	return a.labels[i]
}

func (a *Agent) today() time.Time {
	return model.StartOfDay(a.now())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
