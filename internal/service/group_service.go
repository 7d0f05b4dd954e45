package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/wodomi/HomiMeet-FullApp/internal/models"
	"github.com/wodomi/HomiMeet-FullApp/internal/storage"
	apiv1 "github.com/wodomi/HomiMeet-FullApp/pkg/api/v1"
	"github.com/wodomi/HomiMeet-FullApp/pkg/api/v1/apiv1connect"
)

var _ apiv1connect.GroupServiceHandler = (*GroupService)(nil)

// GroupService implements the Connect GroupService
type GroupService struct {
	store  storage.GroupStore
	logger *slog.Logger
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.GroupStore, logger *slog.Logger) *GroupService {
	return &GroupService{store: store, logger: logger}
}

// CreateGroup creates a new group owned by the caller.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[apiv1.CreateGroupRequest]) (*connect.Response[apiv1.CreateGroupResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CreateGroup request received", "name", req.Msg.Name, "user_id", userID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	// Save to storage (generates ID and CreatedAt)
	group := &models.Group{
		Name:      req.Msg.Name,
		CreatedBy: userID,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		s.logger.Error("CreateGroup failed", "error", err)
		return nil, storageError(err)
	}

	s.logger.Info("Group created", "group_id", group.ID)

	return connect.NewResponse(&apiv1.CreateGroupResponse{Group: toAPIGroup(group)}), nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[apiv1.GetGroupRequest]) (*connect.Response[apiv1.GetGroupResponse], error) {
	s.logger.Info("GetGroup request received", "group_id", req.Msg.GroupID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		s.logger.Error("GetGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&apiv1.GetGroupResponse{Group: toAPIGroup(group)}), nil
}
