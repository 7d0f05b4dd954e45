package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/wodomi/HomiMeet-FullApp/internal/metrics"
	"github.com/wodomi/HomiMeet-FullApp/internal/models"
	"github.com/wodomi/HomiMeet-FullApp/internal/roster"
	"github.com/wodomi/HomiMeet-FullApp/internal/storage"
	apiv1 "github.com/wodomi/HomiMeet-FullApp/pkg/api/v1"
	"github.com/wodomi/HomiMeet-FullApp/pkg/api/v1/apiv1connect"
)

var _ apiv1connect.MeetupServiceHandler = (*MeetupService)(nil)

// MeetupService implements the Connect MeetupService.
type MeetupService struct {
	store      storage.Store
	aggregator *roster.Aggregator
	loc        *time.Location
	logger     *slog.Logger
}

// NewMeetupService creates a MeetupService. Dates without a zone are read in server local time.
func NewMeetupService(store storage.Store, logger *slog.Logger) *MeetupService {
	return &MeetupService{
		store:      store,
		aggregator: roster.NewAggregator(store),
		loc:        time.Local,
		logger:     logger,
	}
}

// WithClock replaces the clock used for the listing's date buckets.
func (s *MeetupService) WithClock(now func() time.Time) *MeetupService {
	s.aggregator = s.aggregator.WithClock(now)
	return s
}

// ScheduleMeetup creates a meetup owned by the caller.
func (s *MeetupService) ScheduleMeetup(ctx context.Context, req *connect.Request[apiv1.ScheduleMeetupRequest]) (*connect.Response[apiv1.ScheduleMeetupResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ScheduleMeetup request received",
		"user_id", userID,
		"location", req.Msg.Location,
		"group_id", req.Msg.GroupID,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	lat, lng, err := parseCoordinates(req.Msg.Lat, req.Msg.Lng)
	if err != nil {
		return nil, err
	}
	scheduledAt, err := parseScheduledTime(req.Msg.ScheduledTime, s.loc)
	if err != nil {
		return nil, err
	}
	if req.Msg.GroupID != "" {
		if _, err := s.store.GetGroup(ctx, req.Msg.GroupID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, invalidArgument("group_id", "Unknown group.")
			}
			s.logger.Error("ScheduleMeetup group lookup failed", "group_id", req.Msg.GroupID, "error", err)
			return nil, storageError(err)
		}
	}

	meetup := &models.Meetup{
		Location:    req.Msg.Location,
		ScheduledAt: scheduledAt,
		CreatorID:   userID,
		GroupID:     req.Msg.GroupID,
		Lat:         lat,
		Lng:         lng,
		Status:      models.MeetupScheduled,
	}
	if err := s.store.CreateMeetup(ctx, meetup); err != nil {
		s.logger.Error("ScheduleMeetup failed", "error", err)
		return nil, storageError(err)
	}
	metrics.MeetupScheduled()

	s.logger.Info("Meetup scheduled", "meetup_id", meetup.ID)

	return connect.NewResponse(&apiv1.ScheduleMeetupResponse{MeetupID: meetup.ID}), nil
}

// ListMeetups returns the caller's owned and accepted meetups with their rosters.
func (s *MeetupService) ListMeetups(ctx context.Context, req *connect.Request[apiv1.ListMeetupsRequest]) (*connect.Response[apiv1.ListMeetupsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ListMeetups request received",
		"user_id", userID,
		"status", req.Msg.Status,
		"after", req.Msg.After,
		"before", req.Msg.Before,
	)

	filter, err := roster.ParseFilter(req.Msg.Status, req.Msg.After, req.Msg.Before, s.loc)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	listing, err := s.aggregator.List(ctx, userID, filter)
	if err != nil {
		s.logger.Error("ListMeetups failed", "user_id", userID, "error", err)
		return nil, storageError(err)
	}
	others, err := s.store.ListOtherUsers(ctx, userID)
	if err != nil {
		s.logger.Error("ListMeetups user lookup failed", "user_id", userID, "error", err)
		return nil, storageError(err)
	}

	meetups := make([]apiv1.Meetup, len(listing.Meetups))
	for i, v := range listing.Meetups {
		meetups[i] = toAPIMeetup(v)
	}

	current := string(filter.Status)
	if current == "" {
		current = roster.StatusAll
	}

	s.logger.Info("ListMeetups successful", "user_id", userID, "count", len(meetups))

	return connect.NewResponse(&apiv1.ListMeetupsResponse{
		Meetups:       meetups,
		CurrentFilter: current,
		After:         req.Msg.After,
		Before:        req.Msg.Before,
		Today:         listing.Today,
		WeekStart:     listing.WeekStart,
		WeekEnd:       listing.WeekEnd,
		Users:         toAPIUserRefs(others),
	}), nil
}

// GetMeetup returns one meetup with its creator and invited users.
func (s *MeetupService) GetMeetup(ctx context.Context, req *connect.Request[apiv1.GetMeetupRequest]) (*connect.Response[apiv1.GetMeetupResponse], error) {
	s.logger.Info("GetMeetup request received", "meetup_id", req.Msg.MeetupID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	detail, err := s.store.GetMeetupDetail(ctx, req.Msg.MeetupID)
	if err != nil {
		s.logger.Error("GetMeetup failed", "meetup_id", req.Msg.MeetupID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&apiv1.GetMeetupResponse{Meetup: toAPIMeetupDetail(detail)}), nil
}

// CancelMeetup marks a meetup canceled. Only the creator may cancel.
func (s *MeetupService) CancelMeetup(ctx context.Context, req *connect.Request[apiv1.CancelMeetupRequest]) (*connect.Response[apiv1.CancelMeetupResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CancelMeetup request received", "meetup_id", req.Msg.MeetupID, "user_id", userID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if _, err := requireOwner(ctx, s.store, req.Msg.MeetupID, userID); err != nil {
		return nil, err
	}

	if err := s.store.SetMeetupStatus(ctx, req.Msg.MeetupID, models.MeetupCanceled); err != nil {
		s.logger.Error("CancelMeetup failed", "meetup_id", req.Msg.MeetupID, "error", err)
		return nil, storageError(err)
	}

	s.logger.Info("Meetup canceled", "meetup_id", req.Msg.MeetupID)
	return connect.NewResponse(&apiv1.CancelMeetupResponse{}), nil
}

// DeleteMeetup removes a meetup with its invitations and punctuality logs.
func (s *MeetupService) DeleteMeetup(ctx context.Context, req *connect.Request[apiv1.DeleteMeetupRequest]) (*connect.Response[apiv1.DeleteMeetupResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("DeleteMeetup request received", "meetup_id", req.Msg.MeetupID, "user_id", userID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if _, err := requireOwner(ctx, s.store, req.Msg.MeetupID, userID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteMeetup(ctx, req.Msg.MeetupID); err != nil {
		s.logger.Error("DeleteMeetup failed", "meetup_id", req.Msg.MeetupID, "error", err)
		return nil, storageError(err)
	}

	s.logger.Info("Meetup deleted", "meetup_id", req.Msg.MeetupID)
	return connect.NewResponse(&apiv1.DeleteMeetupResponse{}), nil
}

// KickUser removes a user's invitation from a meetup the caller owns.
func (s *MeetupService) KickUser(ctx context.Context, req *connect.Request[apiv1.KickUserRequest]) (*connect.Response[apiv1.KickUserResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("KickUser request received",
		"meetup_id", req.Msg.MeetupID,
		"user_id", userID,
		"kicked_user_id", req.Msg.UserID,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if _, err := requireOwner(ctx, s.store, req.Msg.MeetupID, userID); err != nil {
		return nil, err
	}

	if err := s.store.RemoveInvitation(ctx, req.Msg.MeetupID, req.Msg.UserID); err != nil {
		s.logger.Error("KickUser failed", "meetup_id", req.Msg.MeetupID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&apiv1.KickUserResponse{}), nil
}
