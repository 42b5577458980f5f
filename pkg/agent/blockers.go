package agent

import (
	"github.com/secmon-lab/pulse/pkg/domain/model"
)

// ExtractBlockers scans the given records for blocker language and returns a
// structured mention per matching record, preserving input order. The keyword
// list is the extractor group of the quality configuration.
func (a *Agent) ExtractBlockers(entries []model.CheckinRecord) []model.BlockerMention {
	mentions := make([]model.BlockerMention, 0)
	for _, rec := range entries {
		if !a.classifier.HasBlockerLanguage(rec.Text()) {
			continue
		}
		mentions = append(mentions, model.BlockerMention{
			UserID:    rec.UserID(),
			UserName:  rec.UserName(),
			Timestamp: rec.Timestamp(),
			Message:   rec.Text(),
		})
	}
	return mentions
}
