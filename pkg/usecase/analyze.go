package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pulse/pkg/agent"
	"github.com/secmon-lab/pulse/pkg/domain/model"
	"github.com/secmon-lab/pulse/pkg/service/quality"
	"github.com/secmon-lab/pulse/pkg/utils/logging"
)

// AnswerQuestion runs the question interpreter over a fresh agent built from
// the dataset. Natural-language problems degrade into the response payload;
// this never fails for malformed questions.
func (uc *UseCases) AnswerQuestion(ctx context.Context, question string, ds Dataset) *model.QueryResponse {
	queryID := uuid.Must(uuid.NewV7()).String()
	logger := logging.From(ctx)

	a := uc.buildAgent(ds)
	resp := a.AnswerQuestion(question)

	logger.Info("answered question",
		"query_id", queryID,
		"intent", resp.Intent,
		"checkins", len(ds.Checkins),
		"roster", len(ds.Roster),
	)
	return resp
}

// GenerateDashboard produces a timeframe-driven report. Missing or invalid
// structured parameters are hard failures.
func (uc *UseCases) GenerateDashboard(ctx context.Context, user model.UserRef, tf model.Timeframe, ds Dataset) (*model.Dashboard, error) {
	dashboard, err := uc.buildAgent(ds).GenerateDashboard(user, tf)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate dashboard", goerr.V("user_id", user.ID), goerr.V("type", tf.Type))
	}
	return dashboard, nil
}

// Classify exposes the quality classifier to the ingestion boundary: it
// returns the 3-way label together with the raw numeric score.
func (uc *UseCases) Classify(ctx context.Context, text string) quality.Result {
	return uc.classifier.Classify(text)
}

func (uc *UseCases) buildAgent(ds Dataset) *agent.Agent {
	return agent.New(ds.Checkins, ds.Roster,
		agent.WithClassifier(uc.classifier),
		agent.WithClock(uc.now),
	)
}
