package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/wodomi/HomiMeet-FullApp/internal/metrics"
	"github.com/wodomi/HomiMeet-FullApp/internal/models"
	"github.com/wodomi/HomiMeet-FullApp/internal/storage"
	apiv1 "github.com/wodomi/HomiMeet-FullApp/pkg/api/v1"
	"github.com/wodomi/HomiMeet-FullApp/pkg/api/v1/apiv1connect"
)

var _ apiv1connect.InvitationServiceHandler = (*InvitationService)(nil)

// InvitationService implements the Connect InvitationService.
type InvitationService struct {
	store  storage.Store
	loc    *time.Location
	logger *slog.Logger
}

// NewInvitationService creates an InvitationService backed by store.
func NewInvitationService(store storage.Store, logger *slog.Logger) *InvitationService {
	return &InvitationService{store: store, loc: time.Local, logger: logger}
}

// Invite creates a pending invitation for one user. Inviting the same user twice is a no-op.
func (s *InvitationService) Invite(ctx context.Context, req *connect.Request[apiv1.InviteRequest]) (*connect.Response[apiv1.InviteResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Invite request received",
		"meetup_id", req.Msg.MeetupID,
		"user_id", userID,
		"invitee_id", req.Msg.UserID,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if _, err := requireOwner(ctx, s.store, req.Msg.MeetupID, userID); err != nil {
		return nil, err
	}
	if err := s.checkInvitees(ctx, []string{req.Msg.UserID}); err != nil {
		return nil, err
	}

	created, err := s.store.InviteUsers(ctx, req.Msg.MeetupID, []string{req.Msg.UserID})
	if err != nil {
		s.logger.Error("Invite failed", "meetup_id", req.Msg.MeetupID, "error", err)
		return nil, storageError(err)
	}
	metrics.InvitationsCreated(created)

	return connect.NewResponse(&apiv1.InviteResponse{Created: created > 0}), nil
}

// CreateInvitations invites several users at once. Without a meetup ID a new
// meetup is created from the request fields in the same transaction.
func (s *InvitationService) CreateInvitations(ctx context.Context, req *connect.Request[apiv1.CreateInvitationsRequest]) (*connect.Response[apiv1.CreateInvitationsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CreateInvitations request received",
		"meetup_id", req.Msg.MeetupID,
		"user_id", userID,
		"invitees_count", len(req.Msg.Invitees),
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	invitees := dedupe(req.Msg.Invitees)
	if len(invitees) == 0 {
		return nil, invalidArgument("invitees", msgNoInvitees)
	}
	if err := s.checkInvitees(ctx, invitees); err != nil {
		return nil, err
	}

	meetupID := req.Msg.MeetupID
	var created int
	if meetupID == 0 {
		meetup, err := s.meetupFromRequest(userID, req.Msg)
		if err != nil {
			return nil, err
		}
		created, err = s.store.CreateMeetupWithInvites(ctx, meetup, invitees)
		if err != nil {
			s.logger.Error("CreateInvitations failed", "user_id", userID, "error", err)
			return nil, storageError(err)
		}
		metrics.MeetupScheduled()
		meetupID = meetup.ID
	} else {
		if _, err := requireOwner(ctx, s.store, meetupID, userID); err != nil {
			return nil, err
		}
		created, err = s.store.InviteUsers(ctx, meetupID, invitees)
		if err != nil {
			s.logger.Error("CreateInvitations failed", "meetup_id", meetupID, "error", err)
			return nil, storageError(err)
		}
	}
	metrics.InvitationsCreated(created)

	s.logger.Info("Invitations created", "meetup_id", meetupID, "created", created)

	return connect.NewResponse(&apiv1.CreateInvitationsResponse{
		MeetupID: meetupID,
		Created:  created,
	}), nil
}

func (s *InvitationService) meetupFromRequest(userID string, msg *apiv1.CreateInvitationsRequest) (*models.Meetup, error) {
	lat, lng, err := optionalCoordinates(msg.Lat, msg.Lng)
	if err != nil {
		return nil, err
	}
	scheduledAt, err := parseScheduledTime(msg.ScheduledTime, s.loc)
	if err != nil {
		return nil, err
	}
	location := strings.TrimSpace(msg.Location)
	if location == "" {
		location = defaultMeetupPlace
	}
	return &models.Meetup{
		Location:    location,
		ScheduledAt: scheduledAt,
		CreatorID:   userID,
		Lat:         lat,
		Lng:         lng,
		Status:      models.MeetupScheduled,
	}, nil
}

// checkInvitees rejects IDs that do not belong to a registered user.
func (s *InvitationService) checkInvitees(ctx context.Context, ids []string) error {
	for _, id := range ids {
		user, err := s.store.GetUserByID(ctx, id)
		if err != nil {
			return storageError(err)
		}
		if user == nil {
			return invalidArgument("invitees", "Unknown user: "+id)
		}
	}
	return nil
}

// RespondInvitation accepts or declines the caller's own invitation.
func (s *InvitationService) RespondInvitation(ctx context.Context, req *connect.Request[apiv1.RespondInvitationRequest]) (*connect.Response[apiv1.RespondInvitationResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("RespondInvitation request received",
		"invite_id", req.Msg.InviteID,
		"user_id", userID,
		"action", req.Msg.Action,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	var status models.InvitationStatus
	switch req.Msg.Action {
	case "accept":
		status = models.InvitationAccepted
	case "decline":
		status = models.InvitationDeclined
	default:
		return nil, invalidArgument("action", msgUnknownAction)
	}

	if err := s.store.RespondInvitation(ctx, req.Msg.InviteID, userID, status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("RespondInvitation on foreign or missing invitation", "invite_id", req.Msg.InviteID, "user_id", userID)
		} else {
			s.logger.Error("RespondInvitation failed", "invite_id", req.Msg.InviteID, "error", err)
		}
		return nil, storageError(err)
	}
	metrics.InvitationAnswered(string(status))

	return connect.NewResponse(&apiv1.RespondInvitationResponse{Status: string(status)}), nil
}

// ListInvitations returns the caller's pending invitations, their own meetups
// and the users they could invite.
func (s *InvitationService) ListInvitations(ctx context.Context, req *connect.Request[apiv1.ListInvitationsRequest]) (*connect.Response[apiv1.ListInvitationsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("ListInvitations request received", "user_id", userID)

	pending, err := s.store.PendingInvitations(ctx, userID)
	if err != nil {
		s.logger.Error("ListInvitations failed", "user_id", userID, "error", err)
		return nil, storageError(err)
	}
	owned, err := s.store.ListMeetupsByCreator(ctx, userID)
	if err != nil {
		s.logger.Error("ListInvitations failed", "user_id", userID, "error", err)
		return nil, storageError(err)
	}
	others, err := s.store.ListOtherUsers(ctx, userID)
	if err != nil {
		s.logger.Error("ListInvitations failed", "user_id", userID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&apiv1.ListInvitationsResponse{
		Invitations: toAPIPendingInvitations(pending),
		Meetups:     toAPIOwnedMeetups(owned),
		Users:       toAPIUserRefs(others),
	}), nil
}

// dedupe drops blank and repeated IDs, keeping first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
