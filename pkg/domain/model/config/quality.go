package config

import (
	"github.com/m-mizutani/goerr/v2"
)

// KeywordGroups holds the keyword categories used by the classifier and the
// blocker extractor. All matching is case-insensitive substring matching.
// The extractor list is distinct from, but overlaps, the classifier's blocker
// category.
type KeywordGroups struct {
	Progress []string `toml:"progress"`
	Plan     []string `toml:"plan"`
	Blocker  []string `toml:"blocker"`
	Extract  []string `toml:"extract"`
}

// ScoringWeights parameterize the per-message score formula
type ScoringWeights struct {
	CategoryWeight float64 `toml:"category_weight"`
	SignalWeight   float64 `toml:"signal_weight"`
	SignalCap      int     `toml:"signal_cap"`
	WordWeight     float64 `toml:"word_weight"`
	WordCap        int     `toml:"word_cap"`
}

// MessageThresholds map per-message scores to Strong/Medium labels
type MessageThresholds struct {
	Strong float64 `toml:"strong"`
	Medium float64 `toml:"medium"`
}

// WindowThresholds map window-level average weights (1-3 scale) to labels.
// This is a deliberately independent derivation from MessageThresholds.
type WindowThresholds struct {
	Strong float64 `toml:"strong"`
	Medium float64 `toml:"medium"`
}

// QualityConfig is the named configuration for all quality scoring knobs
type QualityConfig struct {
	Keywords KeywordGroups     `toml:"keywords"`
	Scoring  ScoringWeights    `toml:"scoring"`
	Message  MessageThresholds `toml:"message"`
	Window   WindowThresholds  `toml:"window"`
}

// Default returns the built-in quality configuration
func Default() *QualityConfig {
	return &QualityConfig{
		Keywords: KeywordGroups{
			Progress: []string{"completed", "done", "finished", "merged", "shipped", "fixed", "implemented", "deployed"},
			Plan:     []string{"planning", "plan to", "will", "next", "going to", "today i"},
			Blocker:  []string{"blocked", "blocker", "stuck", "waiting", "help", "issue"},
			Extract:  []string{"blocked", "blocker", "stuck", "waiting on", "impediment", "need help", "can't proceed", "cannot proceed"},
		},
		Scoring: ScoringWeights{
			CategoryWeight: 15,
			SignalWeight:   10,
			SignalCap:      3,
			WordWeight:     0.25,
			WordCap:        120,
		},
		Message: MessageThresholds{
			Strong: 80,
			Medium: 40,
		},
		Window: WindowThresholds{
			Strong: 2.5,
			Medium: 1.75,
		},
	}
}

// Validate checks if the QualityConfig is valid
func (c *QualityConfig) Validate() error {
	for _, group := range []struct {
		name     string
		keywords []string
	}{
		{"progress", c.Keywords.Progress},
		{"plan", c.Keywords.Plan},
		{"blocker", c.Keywords.Blocker},
		{"extract", c.Keywords.Extract},
	} {
		if len(group.keywords) == 0 {
			return goerr.New("keyword group must not be empty", goerr.V("group", group.name))
		}
		seen := make(map[string]bool, len(group.keywords))
		for _, kw := range group.keywords {
			if kw == "" {
				return goerr.New("empty keyword", goerr.V("group", group.name))
			}
			if seen[kw] {
				return goerr.New("duplicate keyword", goerr.V("group", group.name), goerr.V("keyword", kw))
			}
			seen[kw] = true
		}
	}

	if c.Scoring.CategoryWeight < 0 || c.Scoring.SignalWeight < 0 || c.Scoring.WordWeight < 0 {
		return goerr.New("scoring weights must not be negative")
	}
	if c.Scoring.SignalCap < 0 || c.Scoring.WordCap < 0 {
		return goerr.New("scoring caps must not be negative")
	}
	if c.Message.Strong < c.Message.Medium {
		return goerr.New("message strong threshold must not be below medium",
			goerr.V("strong", c.Message.Strong), goerr.V("medium", c.Message.Medium))
	}
	if c.Window.Strong < c.Window.Medium {
		return goerr.New("window strong threshold must not be below medium",
			goerr.V("strong", c.Window.Strong), goerr.V("medium", c.Window.Medium))
	}
	return nil
}
