package agent

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pulse/pkg/domain/model"
	"github.com/secmon-lab/pulse/pkg/domain/types"
)

// Hard validation failures of the dashboard generator. These indicate a
// caller contract violation and propagate as request errors, unlike the soft
// responses of the question interpreter.
var (
	ErrMissingUser          = goerr.New("user id is required")
	ErrMissingTimeframe     = goerr.New("timeframe type is required")
	ErrUnsupportedTimeframe = goerr.New("unsupported timeframe type")
	ErrMissingDate          = goerr.New("daily report requires a date")
	ErrInvalidDate          = goerr.New("invalid date")
)

// GenerateDashboard produces the report for an explicit, non-inferred
// timeframe descriptor, delegating to the matching summary operation.
func (a *Agent) GenerateDashboard(user model.UserRef, tf model.Timeframe) (*model.Dashboard, error) {
	if user.ID == "" {
		return nil, goerr.Wrap(ErrMissingUser, "cannot generate dashboard")
	}
	if tf.Type == "" {
		return nil, goerr.Wrap(ErrMissingTimeframe, "cannot generate dashboard", goerr.V("user_id", user.ID))
	}

	switch tf.Type {
	case types.TimeframeDaily:
		return a.dailyDashboard(user, tf)
	case types.TimeframeWeekly:
		return a.weeklyDashboard(user, tf)
	case types.TimeframeMonthly:
		return a.monthlyDashboard(user, tf)
	default:
		return nil, goerr.Wrap(ErrUnsupportedTimeframe, "cannot generate dashboard", goerr.V("type", tf.Type))
	}
}

func (a *Agent) dailyDashboard(user model.UserRef, tf model.Timeframe) (*model.Dashboard, error) {
	anchor := tf.Date
	if anchor == "" {
		anchor = tf.Start
	}
	if anchor == "" {
		return nil, goerr.Wrap(ErrMissingDate, "daily dashboard", goerr.V("user_id", user.ID))
	}

	date, err := parseISODate(anchor)
	if err != nil {
		return nil, err
	}

	return &model.Dashboard{
		User:    user,
		Type:    types.TimeframeDaily,
		Date:    date.Format(time.DateOnly),
		Summary: a.SummarizeDay(user.ID, date),
	}, nil
}

func (a *Agent) weeklyDashboard(user model.UserRef, tf model.Timeframe) (*model.Dashboard, error) {
	anchor := tf.Start
	if anchor == "" {
		anchor = tf.Date
	}

	weekStart := model.StartOfISOWeek(a.now())
	if anchor != "" {
		date, err := parseISODate(anchor)
		if err != nil {
			return nil, err
		}
		weekStart = model.StartOfISOWeek(date)
	}
	w := model.WeekWindow(weekStart)

	return &model.Dashboard{
		User:      user,
		Type:      types.TimeframeWeekly,
		WeekStart: w.Start.Format(time.DateOnly),
		WeekEnd:   w.End.Format(time.DateOnly),
		Summary:   a.SummarizeWeek(user.ID, weekStart),
	}, nil
}

func (a *Agent) monthlyDashboard(user model.UserRef, tf model.Timeframe) (*model.Dashboard, error) {
	anchor := tf.Month
	if anchor == "" {
		anchor = tf.Start
	}
	if anchor == "" {
		anchor = tf.Date
	}

	month := a.now().UTC()
	if anchor != "" {
		date, err := parseMonthAnchor(anchor)
		if err != nil {
			return nil, err
		}
		month = date
	}

	return &model.Dashboard{
		User:    user,
		Type:    types.TimeframeMonthly,
		Month:   month.Format("2006-01"),
		Summary: a.SummarizeMonth(user.ID, month),
	}, nil
}

func parseISODate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, goerr.Wrap(ErrInvalidDate, "expected YYYY-MM-DD", goerr.V("value", s))
	}
	return model.StartOfDay(t), nil
}

// parseMonthAnchor accepts a full date or a YYYY-MM month
func parseMonthAnchor(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return model.StartOfDay(t), nil
	}
	if t, err := time.Parse("2006-01", s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, goerr.Wrap(ErrInvalidDate, "expected YYYY-MM-DD or YYYY-MM", goerr.V("value", s))
}
