package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pulse/pkg/domain/model"
	slacksvc "github.com/secmon-lab/pulse/pkg/service/slack"
	"github.com/secmon-lab/pulse/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// ErrSlackNotConfigured is returned when live ingestion is requested without
// a configured Slack service
var ErrSlackNotConfigured = goerr.New("slack ingestion is not configured")

// Ingest fetches the channel history and workspace roster for the window and
// normalizes them into a dataset. Records are tagged with their quality label
// at ingest time.
func (uc *UseCases) Ingest(ctx context.Context, window model.TimeWindow) (Dataset, error) {
	if !uc.HasSlack() {
		return Dataset{}, goerr.Wrap(ErrSlackNotConfigured, "cannot ingest")
	}

	var messages []slacksvc.Message
	var roster model.Roster

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		messages, err = uc.slackService.FetchChannelHistory(egCtx, uc.channelID, window)
		return err
	})
	eg.Go(func() error {
		var err error
		roster, err = uc.slackService.ListRoster(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return Dataset{}, goerr.Wrap(err, "failed to ingest channel", goerr.V("channel_id", uc.channelID))
	}

	checkins := make([]model.CheckinRecord, 0, len(messages))
	for _, msg := range messages {
		rec := model.NewCheckinRecord(msg.ID, msg.UserID, msg.UserName, msg.Timestamp, msg.Text)
		checkins = append(checkins, rec.WithQuality(uc.classifier.Label(msg.Text)))
	}

	logging.From(ctx).Info("ingested channel",
		"channel_id", uc.channelID,
		"checkins", len(checkins),
		"roster", len(roster),
	)

	return Dataset{Checkins: checkins, Roster: roster}, nil
}
