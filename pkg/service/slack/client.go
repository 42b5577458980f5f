package slack

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pulse/pkg/domain/model"
	"github.com/slack-go/slack"
)

const historyPageSize = 200

// client implements Service interface
type client struct {
	api *slack.Client
}

// Option is a functional option for client configuration
type Option func(*client)

// New creates a new Slack service with the provided bot token
func New(token string, opts ...Option) (Service, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}

	c := &client{
		api: slack.New(token),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// FetchChannelHistory retrieves all messages of the channel inside the window
// via cursor pagination. User display names are resolved through a memo table
// scoped to this call and discarded with it.
func (c *client) FetchChannelHistory(ctx context.Context, channelID string, window model.TimeWindow) ([]Message, error) {
	memo := newNameMemo(c.api)

	var messages []Message
	var cursor string

	for {
		resp, err := c.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
			ChannelID: channelID,
			Oldest:    slackTS(window.Start),
			Latest:    slackTS(window.End),
			Inclusive: true,
			Limit:     historyPageSize,
			Cursor:    cursor,
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get channel history", goerr.V("channel_id", channelID))
		}

		for _, raw := range resp.Messages {
			if raw.Type != "message" || raw.SubType != "" || raw.User == "" {
				continue
			}
			text := strings.TrimSpace(raw.Text)
			if text == "" {
				continue
			}

			ts, err := parseSlackTS(raw.Timestamp)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to parse message timestamp", goerr.V("ts", raw.Timestamp))
			}
			if !window.Contains(ts) {
				continue
			}

			messages = append(messages, Message{
				ID:        raw.Timestamp,
				UserID:    raw.User,
				UserName:  memo.resolve(ctx, raw.User),
				Timestamp: ts,
				Text:      text,
			})
		}

		if !resp.HasMore || resp.ResponseMetaData.NextCursor == "" {
			break
		}
		cursor = resp.ResponseMetaData.NextCursor
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})

	return messages, nil
}

// ListRoster retrieves all non-deleted, non-bot users in the workspace
func (c *client) ListRoster(ctx context.Context) (model.Roster, error) {
	users, err := c.api.GetUsersContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list users")
	}

	roster := make(model.Roster, 0, len(users))
	for _, u := range users {
		if u.Deleted || u.IsBot || u.ID == "USLACKBOT" {
			continue
		}

		name := u.RealName
		if name == "" {
			name = u.Profile.RealName
		}
		if name == "" {
			name = u.Name
		}
		if name == "" {
			name = u.ID
		}

		roster = append(roster, model.RosterEntry{ID: u.ID, Name: name})
	}

	return roster, nil
}

// nameMemo caches user name lookups for the lifetime of one ingestion call
type nameMemo struct {
	api   *slack.Client
	names map[string]string
}

func newNameMemo(api *slack.Client) *nameMemo {
	return &nameMemo{
		api:   api,
		names: make(map[string]string),
	}
}

func (m *nameMemo) resolve(ctx context.Context, userID string) string {
	if name, ok := m.names[userID]; ok {
		return name
	}

	name := userID
	if user, err := m.api.GetUserInfoContext(ctx, userID); err == nil {
		switch {
		case user.RealName != "":
			name = user.RealName
		case user.Name != "":
			name = user.Name
		}
	}

	// Failed lookups memoize the fallback to avoid repeated API calls
	m.names[userID] = name
	return name
}

// slackTS renders an instant in Slack's seconds.microseconds wire format
func slackTS(t time.Time) string {
	return fmt.Sprintf("%d.%06d", t.Unix(), t.Nanosecond()/1000)
}

func parseSlackTS(ts string) (time.Time, error) {
	f, err := strconv.ParseFloat(ts, 64)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "invalid slack timestamp")
	}
	sec := int64(f)
	nsec := int64((f - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC(), nil
}
