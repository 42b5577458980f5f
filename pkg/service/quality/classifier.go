package quality

import (
	"strings"
	"unicode"

	"github.com/secmon-lab/pulse/pkg/domain/model/config"
	"github.com/secmon-lab/pulse/pkg/domain/types"
)

// Result is the outcome of a quality assessment
type Result struct {
	Label types.QualityLabel `json:"quality"`
	Score float64            `json:"score"`
}

// Classifier scores and labels the text of one check-in. It is a pure
// function over its configuration: no side effects, safe for concurrent use.
type Classifier struct {
	cfg *config.QualityConfig
}

// New creates a classifier with the given configuration (nil means defaults)
func New(cfg *config.QualityConfig) *Classifier {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Classifier{cfg: cfg}
}

// Config returns the configuration the classifier operates on
func (c *Classifier) Config() *config.QualityConfig {
	return c.cfg
}

// Classify scores the text and derives the per-message label.
// Empty or whitespace-only text scores 0 and is Weak.
//
//	score = categoryWeight*categoriesPresent
//	      + signalWeight*min(signalCap, digitTokens+bulletLines)
//	      + wordWeight*min(wordCap, wordCount)
func (c *Classifier) Classify(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Label: types.QualityWeak, Score: 0}
	}

	lower := strings.ToLower(text)

	categories := 0
	for _, group := range [][]string{c.cfg.Keywords.Progress, c.cfg.Keywords.Plan, c.cfg.Keywords.Blocker} {
		if containsAny(lower, group) {
			categories++
		}
	}

	signals := digitTokens(text) + bulletLines(text)
	if signals > c.cfg.Scoring.SignalCap {
		signals = c.cfg.Scoring.SignalCap
	}

	words := len(strings.Fields(text))
	if words > c.cfg.Scoring.WordCap {
		words = c.cfg.Scoring.WordCap
	}

	score := c.cfg.Scoring.CategoryWeight*float64(categories) +
		c.cfg.Scoring.SignalWeight*float64(signals) +
		c.cfg.Scoring.WordWeight*float64(words)

	return Result{Label: c.messageLabel(score), Score: score}
}

// Label returns only the per-message label for the text
func (c *Classifier) Label(text string) types.QualityLabel {
	return c.Classify(text).Label
}

// WindowLabel derives the window-level label from an average of per-entry
// quality weights (1-3 scale). The thresholds here are independent from the
// per-message scale.
func (c *Classifier) WindowLabel(average float64) types.QualityLabel {
	switch {
	case average >= c.cfg.Window.Strong:
		return types.QualityStrong
	case average >= c.cfg.Window.Medium:
		return types.QualityMedium
	default:
		return types.QualityWeak
	}
}

// HasBlockerLanguage reports whether the text matches the extractor keyword list
func (c *Classifier) HasBlockerLanguage(text string) bool {
	return containsAny(strings.ToLower(text), c.cfg.Keywords.Extract)
}

func (c *Classifier) messageLabel(score float64) types.QualityLabel {
	switch {
	case score >= c.cfg.Message.Strong:
		return types.QualityStrong
	case score >= c.cfg.Message.Medium:
		return types.QualityMedium
	default:
		return types.QualityWeak
	}
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func digitTokens(text string) int {
	count := 0
	for _, field := range strings.Fields(text) {
		if strings.ContainsFunc(field, unicode.IsDigit) {
			count++
		}
	}
	return count
}

func bulletLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "•") {
			count++
			continue
		}
		if isNumberedItem(trimmed) {
			count++
		}
	}
	return count
}

// isNumberedItem matches lines like "1. did something"
func isNumberedItem(line string) bool {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	return i > 0 && i < len(line) && line[i] == '.'
}
