package service

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"connectrpc.com/connect"

	"github.com/wodomi/HomiMeet-FullApp/internal/metrics"
	"github.com/wodomi/HomiMeet-FullApp/internal/middleware"
	"github.com/wodomi/HomiMeet-FullApp/internal/models"
	"github.com/wodomi/HomiMeet-FullApp/internal/storage"
	apiv1 "github.com/wodomi/HomiMeet-FullApp/pkg/api/v1"
	"github.com/wodomi/HomiMeet-FullApp/pkg/api/v1/apiv1connect"
)

var _ apiv1connect.PunctualityServiceHandler = (*PunctualityService)(nil)

// PunctualityService records arrival outcomes and reports scores.
type PunctualityService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewPunctualityService creates a PunctualityService backed by store.
func NewPunctualityService(store storage.Store, logger *slog.Logger) *PunctualityService {
	return &PunctualityService{store: store, logger: logger}
}

// SubmitPunctuality records how a user arrived at a meetup.
func (s *PunctualityService) SubmitPunctuality(ctx context.Context, req *connect.Request[apiv1.SubmitPunctualityRequest]) (*connect.Response[apiv1.SubmitPunctualityResponse], error) {
	if _, err := callerID(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("SubmitPunctuality request received",
		"user_id", req.Msg.UserID,
		"meetup_id", req.Msg.MeetupID,
		"status", req.Msg.Status,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if _, err := s.store.GetMeetup(ctx, req.Msg.MeetupID); err != nil {
		return nil, storageError(err)
	}
	user, err := s.store.GetUserByID(ctx, req.Msg.UserID)
	if err != nil {
		return nil, storageError(err)
	}
	if user == nil {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("user not found"))
	}

	status := models.PunctualityStatus(req.Msg.Status)
	log := &models.PunctualityLog{
		UserID:   req.Msg.UserID,
		MeetupID: req.Msg.MeetupID,
		Status:   status,
		Score:    status.Score(),
	}
	if err := s.store.RecordPunctuality(ctx, log); err != nil {
		s.logger.Error("SubmitPunctuality failed", "meetup_id", req.Msg.MeetupID, "error", err)
		return nil, storageError(err)
	}
	metrics.PunctualityRecorded(string(status))

	return connect.NewResponse(&apiv1.SubmitPunctualityResponse{ID: log.ID, Score: log.Score}), nil
}

// GetDashboard returns the caller's name and average score.
func (s *PunctualityService) GetDashboard(ctx context.Context, req *connect.Request[apiv1.GetDashboardRequest]) (*connect.Response[apiv1.GetDashboardResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("GetDashboard request received", "user_id", userID)

	avg, err := s.store.AverageScore(ctx, userID)
	if err != nil {
		s.logger.Error("GetDashboard failed", "user_id", userID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&apiv1.GetDashboardResponse{
		Username: middleware.GetUsername(ctx),
		AvgScore: math.Round(avg*100) / 100,
	}), nil
}

// ListMyScores returns the caller's punctuality history, latest meetup first.
func (s *PunctualityService) ListMyScores(ctx context.Context, req *connect.Request[apiv1.ListMyScoresRequest]) (*connect.Response[apiv1.ListMyScoresResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("ListMyScores request received", "user_id", userID)

	entries, err := s.store.ScoresForUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListMyScores failed", "user_id", userID, "error", err)
		return nil, storageError(err)
	}

	logs := make([]apiv1.ScoreLog, len(entries))
	for i, e := range entries {
		logs[i] = apiv1.ScoreLog{
			Location:      e.Location,
			ScheduledTime: timePtr(e.ScheduledAt),
			Status:        string(e.Status),
			Score:         e.Score,
		}
	}

	return connect.NewResponse(&apiv1.ListMyScoresResponse{Logs: logs}), nil
}

// GetLeaderboard ranks a group's members by total score, highest first unless order is asc.
func (s *PunctualityService) GetLeaderboard(ctx context.Context, req *connect.Request[apiv1.GetLeaderboardRequest]) (*connect.Response[apiv1.GetLeaderboardResponse], error) {
	s.logger.Info("GetLeaderboard request received", "group_id", req.Msg.GroupID, "order", req.Msg.Order)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	order := req.Msg.Order
	if order == "" {
		order = "desc"
	}

	entries, err := s.store.Leaderboard(ctx, req.Msg.GroupID, order == "asc")
	if err != nil {
		s.logger.Error("GetLeaderboard failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, storageError(err)
	}

	scores := make([]apiv1.LeaderboardEntry, len(entries))
	for i, e := range entries {
		scores[i] = apiv1.LeaderboardEntry{Username: e.Username, TotalScore: e.TotalScore}
	}

	return connect.NewResponse(&apiv1.GetLeaderboardResponse{
		GroupID: req.Msg.GroupID,
		Order:   order,
		Scores:  scores,
	}), nil
}
