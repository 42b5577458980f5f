package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	slacksvc "github.com/secmon-lab/pulse/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds CLI flags for the ingestion collaborator
type Slack struct {
	botToken  string
	channelID string
}

// Flags returns CLI flags for Slack configuration
func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token (for channel history and roster)",
			Category:    "Slack",
			Sources:     cli.EnvVars("PULSE_SLACK_BOT_TOKEN"),
			Destination: &x.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Slack channel ID to ingest check-ins from",
			Category:    "Slack",
			Sources:     cli.EnvVars("PULSE_SLACK_CHANNEL_ID"),
			Destination: &x.channelID,
		},
	}
}

// LogValue implements slog.LogValuer without exposing the token
func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.String("channel-id", x.channelID),
	)
}

// IsConfigured checks if Slack ingestion is fully configured
func (x *Slack) IsConfigured() bool {
	return x.botToken != "" && x.channelID != ""
}

// Configure creates the Slack service when configured. Both flags absent
// means inline-dataset mode; only one of the two is a configuration error.
func (x *Slack) Configure() (slacksvc.Service, string, error) {
	if x.botToken == "" && x.channelID == "" {
		return nil, "", nil
	}
	if !x.IsConfigured() {
		return nil, "", goerr.New("both --slack-bot-token and --slack-channel-id are required for ingestion")
	}

	svc, err := slacksvc.New(x.botToken)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to create Slack service")
	}
	return svc, x.channelID, nil
}
