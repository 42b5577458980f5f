package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pulse/pkg/domain/model"
)

func TestDayWindow(t *testing.T) {
	w := model.DayWindow(time.Date(2024, 10, 8, 15, 30, 0, 0, time.UTC))

	gt.Value(t, w.Start).Equal(time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC))
	gt.B(t, w.Contains(time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC))).True()
	gt.B(t, w.Contains(time.Date(2024, 10, 8, 23, 59, 59, 999999999, time.UTC))).True()
	gt.B(t, w.Contains(time.Date(2024, 10, 9, 0, 0, 0, 0, time.UTC))).False()
	gt.B(t, w.Contains(time.Date(2024, 10, 7, 23, 59, 59, 999999999, time.UTC))).False()
	gt.Value(t, w.Days()).Equal(1)
}

func TestWeekWindow(t *testing.T) {
	w := model.WeekWindow(time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC))

	gt.Value(t, w.Start).Equal(time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC))
	gt.B(t, w.Contains(time.Date(2024, 10, 13, 23, 0, 0, 0, time.UTC))).True()
	gt.B(t, w.Contains(time.Date(2024, 10, 14, 0, 0, 0, 0, time.UTC))).False()
	gt.Value(t, w.Days()).Equal(7)
}

func TestMonthWindow(t *testing.T) {
	w := model.MonthWindow(time.Date(2024, 9, 17, 12, 0, 0, 0, time.UTC))

	gt.Value(t, w.Start).Equal(time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC))
	gt.B(t, w.Contains(time.Date(2024, 9, 30, 23, 59, 59, 0, time.UTC))).True()
	gt.B(t, w.Contains(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC))).False()
	gt.Value(t, w.Days()).Equal(30)

	feb := model.MonthWindow(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	gt.Value(t, feb.Days()).Equal(29)
}

func TestInvertedWindowContainsNothing(t *testing.T) {
	w := model.NewTimeWindow(
		time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
	)

	gt.B(t, w.Contains(time.Date(2024, 10, 4, 0, 0, 0, 0, time.UTC))).False()
	gt.Value(t, w.Days()).Equal(0)
}

func TestStartOfISOWeek(t *testing.T) {
	monday := time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   time.Time
	}{
		{"monday itself", time.Date(2024, 10, 7, 9, 0, 0, 0, time.UTC)},
		{"wednesday", time.Date(2024, 10, 9, 12, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2024, 10, 13, 23, 59, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, model.StartOfISOWeek(tt.in)).Equal(monday)
		})
	}

	prevSunday := time.Date(2024, 10, 6, 8, 0, 0, 0, time.UTC)
	gt.Value(t, model.StartOfISOWeek(prevSunday)).Equal(time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC))
}

func TestStartOfDayNormalizesToUTC(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	// 2024-10-08 02:00 JST is 2024-10-07 17:00 UTC
	in := time.Date(2024, 10, 8, 2, 0, 0, 0, jst)

	gt.Value(t, model.StartOfDay(in)).Equal(time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC))
}
