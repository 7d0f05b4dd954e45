package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/wodomi/HomiMeet-FullApp/internal/models"
	"github.com/wodomi/HomiMeet-FullApp/internal/storage"
	apiv1 "github.com/wodomi/HomiMeet-FullApp/pkg/api/v1"
	"github.com/wodomi/HomiMeet-FullApp/pkg/api/v1/apiv1connect"
)

var _ apiv1connect.ProfileServiceHandler = (*ProfileService)(nil)

// ProfileService manages the caller's bio and last known position.
type ProfileService struct {
	store  storage.ProfileStore
	logger *slog.Logger
}

// NewProfileService creates a ProfileService backed by store.
func NewProfileService(store storage.ProfileStore, logger *slog.Logger) *ProfileService {
	return &ProfileService{store: store, logger: logger}
}

// GetProfile returns the caller's bio, empty when never set, and the last
// reported location if any.
func (s *ProfileService) GetProfile(ctx context.Context, req *connect.Request[apiv1.GetProfileRequest]) (*connect.Response[apiv1.GetProfileResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		s.logger.Error("GetProfile failed", "user_id", userID, "error", err)
		return nil, storageError(err)
	}

	loc, err := s.store.GetLocation(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.Error("GetProfile location lookup failed", "user_id", userID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&apiv1.GetProfileResponse{
		Bio:      profile.Bio,
		Location: toAPILocation(loc),
	}), nil
}

// UpdateProfile replaces the caller's bio.
func (s *ProfileService) UpdateProfile(ctx context.Context, req *connect.Request[apiv1.UpdateProfileRequest]) (*connect.Response[apiv1.UpdateProfileResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("UpdateProfile request received", "user_id", userID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	profile := &models.Profile{UserID: userID, Bio: req.Msg.Bio}
	if err := s.store.UpsertProfile(ctx, profile); err != nil {
		s.logger.Error("UpdateProfile failed", "user_id", userID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&apiv1.UpdateProfileResponse{Bio: profile.Bio}), nil
}

// UpdateLocation stores the caller's device position.
func (s *ProfileService) UpdateLocation(ctx context.Context, req *connect.Request[apiv1.UpdateLocationRequest]) (*connect.Response[apiv1.UpdateLocationResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if req.Msg.Lat == nil || req.Msg.Lng == nil {
		return nil, invalidArgument("lat", msgMissingCoords)
	}
	lat, lng := *req.Msg.Lat, *req.Msg.Lng
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, invalidArgument("lat", msgInvalidCoords)
	}

	loc := &models.UserLocation{
		UserID:   userID,
		Lat:      lat,
		Lng:      lng,
		Accuracy: req.Msg.Accuracy,
	}
	if err := s.store.UpsertLocation(ctx, loc); err != nil {
		s.logger.Error("UpdateLocation failed", "user_id", userID, "error", err)
		return nil, storageError(err)
	}

	s.logger.Debug("Location updated", "user_id", userID)
	return connect.NewResponse(&apiv1.UpdateLocationResponse{OK: true}), nil
}
