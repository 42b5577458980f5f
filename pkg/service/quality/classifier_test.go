package quality_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pulse/pkg/domain/model/config"
	"github.com/secmon-lab/pulse/pkg/domain/types"
	"github.com/secmon-lab/pulse/pkg/service/quality"
)

func TestClassifyEmptyText(t *testing.T) {
	c := quality.New(nil)

	for _, text := range []string{"", "   ", "\n\t"} {
		result := c.Classify(text)
		gt.Value(t, result.Label).Equal(types.QualityWeak)
		gt.Value(t, result.Score).Equal(0.0)
	}
}

func TestClassifyScoring(t *testing.T) {
	c := quality.New(nil)

	tests := []struct {
		name  string
		text  string
		score float64
		label types.QualityLabel
	}{
		{
			name: "single category with one numeric token",
			// 1 category (15) + 1 digit token (10) + 7 words (1.75)
			text:  "Finished the login feature, 3 PRs merged.",
			score: 26.75,
			label: types.QualityWeak,
		},
		{
			name: "two categories and a numeric token",
			// 2 categories (30) + 1 digit token (10) + 8 words (2.0)
			text:  "Done with task 12, will write docs next",
			score: 42.0,
			label: types.QualityMedium,
		},
		{
			name: "full report with bullets and blockers",
			// 3 categories (45) + capped signals (30) + 37 words (9.25)
			text: "Completed the payments service and deployed it to staging.\n" +
				"- merged 4 PRs\n" +
				"- fixed 2 flaky tests\n" +
				"- planning to start the billing integration next\n" +
				"Still blocked on the review for PR 118, waiting on infra.",
			score: 84.25,
			label: types.QualityStrong,
		},
		{
			name: "no signal at all",
			// 0 categories + 0 signals + 2 words (0.5)
			text:  "hello world",
			score: 0.5,
			label: types.QualityWeak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.text)
			gt.Value(t, result.Score).Equal(tt.score)
			gt.Value(t, result.Label).Equal(tt.label)
			gt.Value(t, c.Label(tt.text)).Equal(tt.label)
		})
	}
}

func labelRank(label types.QualityLabel) int {
	switch label {
	case types.QualityStrong:
		return 3
	case types.QualityMedium:
		return 2
	default:
		return 1
	}
}

func TestClassifyLabelNeverDrops(t *testing.T) {
	c := quality.New(nil)

	// One keyword per category group, so each step adds exactly one category
	categoryWords := []string{"merged", "planning", "blocked"}

	build := func(categories, signals, words int) string {
		parts := make([]string, 0, categories+signals+words)
		parts = append(parts, categoryWords[:categories]...)
		for i := 0; i < signals; i++ {
			parts = append(parts, fmt.Sprintf("pr%d", i+1))
		}
		for i := 0; i < words; i++ {
			parts = append(parts, "lorem")
		}
		return strings.Join(parts, " ")
	}

	t.Run("more categories", func(t *testing.T) {
		prev := 0
		for categories := 0; categories <= len(categoryWords); categories++ {
			rank := labelRank(c.Classify(build(categories, 3, 40)).Label)
			gt.B(t, rank >= prev).True()
			prev = rank
		}
		gt.Value(t, prev).Equal(labelRank(types.QualityStrong))
	})

	t.Run("more signals past the cap", func(t *testing.T) {
		prev := 0
		for signals := 0; signals <= 6; signals++ {
			rank := labelRank(c.Classify(build(2, signals, 40)).Label)
			gt.B(t, rank >= prev).True()
			prev = rank
		}
	})

	t.Run("more words past the cap", func(t *testing.T) {
		prev := 0
		for words := 0; words <= 140; words += 20 {
			rank := labelRank(c.Classify(build(2, 2, words)).Label)
			gt.B(t, rank >= prev).True()
			prev = rank
		}
		gt.Value(t, prev).Equal(labelRank(types.QualityStrong))
	})
}

func TestClassifyKeywordMatchingIsCaseInsensitive(t *testing.T) {
	c := quality.New(nil)

	lower := c.Classify("finished the migration")
	upper := c.Classify("FINISHED the migration")
	gt.Value(t, upper.Score).Equal(lower.Score)
}

func TestWindowLabel(t *testing.T) {
	c := quality.New(nil)

	tests := []struct {
		average  float64
		expected types.QualityLabel
	}{
		{3.0, types.QualityStrong},
		{2.5, types.QualityStrong},
		{2.49, types.QualityMedium},
		{1.75, types.QualityMedium},
		{1.74, types.QualityWeak},
		{1.0, types.QualityWeak},
	}

	for _, tt := range tests {
		gt.Value(t, c.WindowLabel(tt.average)).Equal(tt.expected)
	}
}

func TestHasBlockerLanguage(t *testing.T) {
	c := quality.New(nil)

	tests := []struct {
		text     string
		expected bool
	}{
		{"I am blocked on the DB migration", true},
		{"Waiting on the security review", true},
		{"Can't proceed until the API key arrives", true},
		{"This is a major impediment", true},
		{"All good, shipping tomorrow", false},
		{"waiting for feedback", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			gt.Value(t, c.HasBlockerLanguage(tt.text)).Equal(tt.expected)
		})
	}
}

func TestClassifierCustomConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Message.Strong = 20
	cfg.Message.Medium = 10

	c := quality.New(cfg)

	// 1 category (15) + 4 words (1.0) = 16.0 under the lowered thresholds
	result := c.Classify("shipped the new dashboard")
	gt.Value(t, result.Score).Equal(16.0)
	gt.Value(t, result.Label).Equal(types.QualityMedium)
}
