package agent_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pulse/pkg/agent"
	"github.com/secmon-lab/pulse/pkg/domain/model"
	"github.com/secmon-lab/pulse/pkg/domain/types"
)

func TestGenerateDashboardValidation(t *testing.T) {
	a := testAgent(t)

	tests := []struct {
		name     string
		user     model.UserRef
		tf       model.Timeframe
		expected error
	}{
		{
			name:     "missing user",
			user:     model.UserRef{},
			tf:       model.Timeframe{Type: types.TimeframeDaily, Date: "2024-10-08"},
			expected: agent.ErrMissingUser,
		},
		{
			name:     "missing timeframe type",
			user:     model.UserRef{ID: "U001"},
			tf:       model.Timeframe{Date: "2024-10-08"},
			expected: agent.ErrMissingTimeframe,
		},
		{
			name:     "unsupported timeframe type",
			user:     model.UserRef{ID: "U001"},
			tf:       model.Timeframe{Type: types.TimeframeType("yearly")},
			expected: agent.ErrUnsupportedTimeframe,
		},
		{
			name:     "daily without date",
			user:     model.UserRef{ID: "U001"},
			tf:       model.Timeframe{Type: types.TimeframeDaily},
			expected: agent.ErrMissingDate,
		},
		{
			name:     "daily with malformed date",
			user:     model.UserRef{ID: "U001"},
			tf:       model.Timeframe{Type: types.TimeframeDaily, Date: "10/08/2024"},
			expected: agent.ErrInvalidDate,
		},
		{
			name:     "monthly with malformed anchor",
			user:     model.UserRef{ID: "U001"},
			tf:       model.Timeframe{Type: types.TimeframeMonthly, Month: "Sept"},
			expected: agent.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.GenerateDashboard(tt.user, tt.tf)
			gt.Error(t, err)
			gt.Value(t, errors.Is(err, tt.expected)).Equal(true)
		})
	}
}

func TestGenerateDailyDashboard(t *testing.T) {
	a := testAgent(t)

	d, err := a.GenerateDashboard(
		model.UserRef{ID: "U001", Name: "Alice"},
		model.Timeframe{Type: types.TimeframeDaily, Date: "2024-10-08"},
	)
	gt.NoError(t, err)
	gt.Value(t, d.Type).Equal(types.TimeframeDaily)
	gt.Value(t, d.Date).Equal("2024-10-08")

	summary, ok := d.Summary.(*model.DailySummary)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, summary).NotNil().Required()
	gt.Value(t, summary.Quality).Equal(types.QualityMedium)
	gt.Value(t, summary.Checkin.MessageID()).Equal("3")
}

func TestGenerateDailyDashboardAcceptsStart(t *testing.T) {
	a := testAgent(t)

	d, err := a.GenerateDashboard(
		model.UserRef{ID: "U001"},
		model.Timeframe{Type: types.TimeframeDaily, Start: "2024-10-07"},
	)
	gt.NoError(t, err)
	gt.Value(t, d.Date).Equal("2024-10-07")
}

func TestGenerateWeeklyDashboard(t *testing.T) {
	a := testAgent(t)

	// A mid-week anchor normalizes to the Monday of its ISO week
	d, err := a.GenerateDashboard(
		model.UserRef{ID: "U001"},
		model.Timeframe{Type: types.TimeframeWeekly, Start: "2024-10-09"},
	)
	gt.NoError(t, err)
	gt.Value(t, d.WeekStart).Equal("2024-10-07")
	gt.Value(t, d.WeekEnd).Equal("2024-10-13")

	summary, ok := d.Summary.(*model.WeeklySummary)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, summary).NotNil().Required()
	gt.Value(t, summary.TotalCheckins).Equal(3)
	gt.Array(t, summary.Blockers).Length(0)
}

func TestGenerateWeeklyDashboardDefaultsToCurrentWeek(t *testing.T) {
	a := testAgent(t)

	d, err := a.GenerateDashboard(
		model.UserRef{ID: "U002"},
		model.Timeframe{Type: types.TimeframeWeekly},
	)
	gt.NoError(t, err)
	gt.Value(t, d.WeekStart).Equal("2024-10-07")
	gt.Value(t, d.WeekEnd).Equal("2024-10-13")
}

func TestGenerateMonthlyDashboard(t *testing.T) {
	a := testAgent(t)

	d, err := a.GenerateDashboard(
		model.UserRef{ID: "U001"},
		model.Timeframe{Type: types.TimeframeMonthly, Month: "2024-10"},
	)
	gt.NoError(t, err)
	gt.Value(t, d.Month).Equal("2024-10")

	summary, ok := d.Summary.(*model.MonthlySummary)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, summary).NotNil().Required()
	gt.Value(t, summary.Consistency.DaysCheckedIn).Equal(2)
	gt.Value(t, summary.Consistency.PeriodLength).Equal(31)
}

func TestGenerateMonthlyDashboardWithoutEntries(t *testing.T) {
	a := testAgent(t)

	d, err := a.GenerateDashboard(
		model.UserRef{ID: "U003"},
		model.Timeframe{Type: types.TimeframeMonthly, Month: "2024-09"},
	)
	gt.NoError(t, err)
	gt.Value(t, d.Month).Equal("2024-09")

	summary, ok := d.Summary.(*model.MonthlySummary)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, summary).NotNil().Required()
	gt.Value(t, summary.Summary).Nil()
	gt.Value(t, summary.Consistency.PeriodLength).Equal(30)
}

func TestGenerateMonthlyDashboardDefaultsToCurrentMonth(t *testing.T) {
	a := testAgent(t)

	d, err := a.GenerateDashboard(
		model.UserRef{ID: "U001"},
		model.Timeframe{Type: types.TimeframeMonthly},
	)
	gt.NoError(t, err)
	gt.Value(t, d.Month).Equal("2024-10")
}
