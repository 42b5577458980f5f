package usecase

import (
	"time"

	"github.com/secmon-lab/pulse/pkg/domain/model"
	"github.com/secmon-lab/pulse/pkg/service/quality"
	slacksvc "github.com/secmon-lab/pulse/pkg/service/slack"
)

// Dataset is the caller-supplied input of one analysis invocation: the raw
// check-in records plus the optional roster. Nothing is retained between
// invocations; a fresh agent is built from the dataset every time.
type Dataset struct {
	Checkins []model.CheckinRecord `json:"checkins"`
	Roster   model.Roster          `json:"roster,omitempty"`
}

type UseCases struct {
	slackService slacksvc.Service
	channelID    string
	classifier   *quality.Classifier
	now          func() time.Time
}

type Option func(*UseCases)

// WithSlackService enables live ingestion from the given channel
func WithSlackService(svc slacksvc.Service, channelID string) Option {
	return func(uc *UseCases) {
		uc.slackService = svc
		uc.channelID = channelID
	}
}

// WithClassifier sets the quality classifier (defaults to the built-in config)
func WithClassifier(c *quality.Classifier) Option {
	return func(uc *UseCases) {
		uc.classifier = c
	}
}

// WithClock injects the time source for relative-date resolution
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(opts ...Option) *UseCases {
	uc := &UseCases{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.classifier == nil {
		uc.classifier = quality.New(nil)
	}
	return uc
}

// HasSlack reports whether live Slack ingestion is configured
func (uc *UseCases) HasSlack() bool {
	return uc.slackService != nil && uc.channelID != ""
}
