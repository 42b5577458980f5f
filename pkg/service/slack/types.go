package slack

import (
	"context"
	"time"

	"github.com/secmon-lab/pulse/pkg/domain/model"
)

// Service provides the interface to the Slack API for check-in ingestion
type Service interface {
	// FetchChannelHistory retrieves all channel messages inside the window,
	// oldest first, with display names resolved
	FetchChannelHistory(ctx context.Context, channelID string, window model.TimeWindow) ([]Message, error)

	// ListRoster retrieves all non-deleted, non-bot workspace users as a roster
	ListRoster(ctx context.Context) (model.Roster, error)
}

// Message is one raw channel message handed to the analysis layer
type Message struct {
	ID        string
	UserID    string
	UserName  string
	Timestamp time.Time
	Text      string
}
