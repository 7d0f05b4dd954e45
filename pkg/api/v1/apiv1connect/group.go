package apiv1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	apiv1 "github.com/wodomi/HomiMeet-FullApp/pkg/api/v1"
)

// GroupServiceName is the fully-qualified name of the GroupService.
const GroupServiceName = "homimeet.v1.GroupService"

// Procedure paths of the GroupService.
const (
	GroupServiceCreateGroupProcedure = "/homimeet.v1.GroupService/CreateGroup"
	GroupServiceGetGroupProcedure    = "/homimeet.v1.GroupService/GetGroup"
)

// GroupServiceHandler is implemented by the server side of the GroupService.
// GroupService manages leaderboard groups.
type GroupServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[apiv1.CreateGroupRequest]) (*connect.Response[apiv1.CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[apiv1.GetGroupRequest]) (*connect.Response[apiv1.GetGroupResponse], error)
}

// NewGroupServiceHandler builds an HTTP handler serving every GroupService procedure.
// It returns the path prefix to mount the handler on.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	s := newServiceMux(GroupServiceName, opts)
	handle(s, GroupServiceCreateGroupProcedure, svc.CreateGroup)
	handle(s, GroupServiceGetGroupProcedure, svc.GetGroup)
	return s.handler()
}

// GroupServiceClient is a client for the GroupService.
type GroupServiceClient interface {
	CreateGroup(context.Context, *connect.Request[apiv1.CreateGroupRequest]) (*connect.Response[apiv1.CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[apiv1.GetGroupRequest]) (*connect.Response[apiv1.GetGroupResponse], error)
}

// NewGroupServiceClient creates a GroupService client talking to baseURL (e.g. http://localhost:8080).
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GroupServiceClient {
	return &groupServiceClient{
		createGroup: newClient[apiv1.CreateGroupRequest, apiv1.CreateGroupResponse](httpClient, baseURL, GroupServiceCreateGroupProcedure, opts),
		getGroup: newClient[apiv1.GetGroupRequest, apiv1.GetGroupResponse](httpClient, baseURL, GroupServiceGetGroupProcedure, opts),
	}
}

type groupServiceClient struct {
	createGroup *connect.Client[apiv1.CreateGroupRequest, apiv1.CreateGroupResponse]
	getGroup    *connect.Client[apiv1.GetGroupRequest, apiv1.GetGroupResponse]
}

func (c *groupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[apiv1.CreateGroupRequest]) (*connect.Response[apiv1.CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) GetGroup(ctx context.Context, req *connect.Request[apiv1.GetGroupRequest]) (*connect.Response[apiv1.GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}
