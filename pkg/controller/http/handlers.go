package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pulse/pkg/agent"
	"github.com/secmon-lab/pulse/pkg/domain/model"
	"github.com/secmon-lab/pulse/pkg/usecase"
	"github.com/secmon-lab/pulse/pkg/utils/errutil"
	"github.com/secmon-lab/pulse/pkg/utils/safe"
)

type queryRequest struct {
	Question string `json:"question"`
	usecase.Dataset
}

type dashboardRequest struct {
	User      model.UserRef   `json:"user"`
	Timeframe model.Timeframe `json:"timeframe"`
	usecase.Dataset
}

type classifyRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid query request"), http.StatusBadRequest)
		return
	}

	ds, err := s.resolveDataset(ctx, req.Dataset)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadGateway)
		return
	}

	respondJSON(ctx, w, s.uc.AnswerQuestion(ctx, req.Question, ds))
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dashboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid dashboard request"), http.StatusBadRequest)
		return
	}

	ds, err := s.resolveDataset(ctx, req.Dataset)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadGateway)
		return
	}

	dashboard, err := s.uc.GenerateDashboard(ctx, req.User, req.Timeframe, ds)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	respondJSON(ctx, w, dashboard)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid classify request"), http.StatusBadRequest)
		return
	}

	respondJSON(ctx, w, s.uc.Classify(ctx, req.Text))
}

// resolveDataset falls back to live Slack ingestion over the trailing window
// when the request carries no check-ins of its own
func (s *Server) resolveDataset(ctx context.Context, ds usecase.Dataset) (usecase.Dataset, error) {
	if len(ds.Checkins) > 0 || !s.uc.HasSlack() {
		return ds, nil
	}

	now := time.Now()
	window := model.NewTimeWindow(
		model.StartOfDay(now.AddDate(0, 0, -(defaultIngestDays-1))),
		model.DayWindow(now).End,
	)
	return s.uc.Ingest(ctx, window)
}

// statusOf maps caller contract violations to 400; everything else is a 500
func statusOf(err error) int {
	for _, target := range []error{
		agent.ErrMissingUser,
		agent.ErrMissingTimeframe,
		agent.ErrUnsupportedTimeframe,
		agent.ErrMissingDate,
		agent.ErrInvalidDate,
	} {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func respondJSON(ctx context.Context, w http.ResponseWriter, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safe.Write(ctx, w, data)
}
