package apiv1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	apiv1 "github.com/wodomi/HomiMeet-FullApp/pkg/api/v1"
)

// MeetupServiceName is the fully-qualified name of the MeetupService.
const MeetupServiceName = "homimeet.v1.MeetupService"

// Procedure paths of the MeetupService.
const (
	MeetupServiceScheduleMeetupProcedure = "/homimeet.v1.MeetupService/ScheduleMeetup"
	MeetupServiceListMeetupsProcedure    = "/homimeet.v1.MeetupService/ListMeetups"
	MeetupServiceGetMeetupProcedure      = "/homimeet.v1.MeetupService/GetMeetup"
	MeetupServiceCancelMeetupProcedure   = "/homimeet.v1.MeetupService/CancelMeetup"
	MeetupServiceDeleteMeetupProcedure   = "/homimeet.v1.MeetupService/DeleteMeetup"
	MeetupServiceKickUserProcedure       = "/homimeet.v1.MeetupService/KickUser"
)

// MeetupServiceHandler is implemented by the server side of the MeetupService.
// MeetupService schedules meetups and lists them with resolved rosters.
type MeetupServiceHandler interface {
	ScheduleMeetup(context.Context, *connect.Request[apiv1.ScheduleMeetupRequest]) (*connect.Response[apiv1.ScheduleMeetupResponse], error)
	ListMeetups(context.Context, *connect.Request[apiv1.ListMeetupsRequest]) (*connect.Response[apiv1.ListMeetupsResponse], error)
	GetMeetup(context.Context, *connect.Request[apiv1.GetMeetupRequest]) (*connect.Response[apiv1.GetMeetupResponse], error)
	CancelMeetup(context.Context, *connect.Request[apiv1.CancelMeetupRequest]) (*connect.Response[apiv1.CancelMeetupResponse], error)
	DeleteMeetup(context.Context, *connect.Request[apiv1.DeleteMeetupRequest]) (*connect.Response[apiv1.DeleteMeetupResponse], error)
	KickUser(context.Context, *connect.Request[apiv1.KickUserRequest]) (*connect.Response[apiv1.KickUserResponse], error)
}

// NewMeetupServiceHandler builds an HTTP handler serving every MeetupService procedure.
// It returns the path prefix to mount the handler on.
func NewMeetupServiceHandler(svc MeetupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	s := newServiceMux(MeetupServiceName, opts)
	handle(s, MeetupServiceScheduleMeetupProcedure, svc.ScheduleMeetup)
	handle(s, MeetupServiceListMeetupsProcedure, svc.ListMeetups)
	handle(s, MeetupServiceGetMeetupProcedure, svc.GetMeetup)
	handle(s, MeetupServiceCancelMeetupProcedure, svc.CancelMeetup)
	handle(s, MeetupServiceDeleteMeetupProcedure, svc.DeleteMeetup)
	handle(s, MeetupServiceKickUserProcedure, svc.KickUser)
	return s.handler()
}

// MeetupServiceClient is a client for the MeetupService.
type MeetupServiceClient interface {
	ScheduleMeetup(context.Context, *connect.Request[apiv1.ScheduleMeetupRequest]) (*connect.Response[apiv1.ScheduleMeetupResponse], error)
	ListMeetups(context.Context, *connect.Request[apiv1.ListMeetupsRequest]) (*connect.Response[apiv1.ListMeetupsResponse], error)
	GetMeetup(context.Context, *connect.Request[apiv1.GetMeetupRequest]) (*connect.Response[apiv1.GetMeetupResponse], error)
	CancelMeetup(context.Context, *connect.Request[apiv1.CancelMeetupRequest]) (*connect.Response[apiv1.CancelMeetupResponse], error)
	DeleteMeetup(context.Context, *connect.Request[apiv1.DeleteMeetupRequest]) (*connect.Response[apiv1.DeleteMeetupResponse], error)
	KickUser(context.Context, *connect.Request[apiv1.KickUserRequest]) (*connect.Response[apiv1.KickUserResponse], error)
}

// NewMeetupServiceClient creates a MeetupService client talking to baseURL (e.g. http://localhost:8080).
func NewMeetupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MeetupServiceClient {
	return &meetupServiceClient{
		scheduleMeetup: newClient[apiv1.ScheduleMeetupRequest, apiv1.ScheduleMeetupResponse](httpClient, baseURL, MeetupServiceScheduleMeetupProcedure, opts),
		listMeetups: newClient[apiv1.ListMeetupsRequest, apiv1.ListMeetupsResponse](httpClient, baseURL, MeetupServiceListMeetupsProcedure, opts),
		getMeetup: newClient[apiv1.GetMeetupRequest, apiv1.GetMeetupResponse](httpClient, baseURL, MeetupServiceGetMeetupProcedure, opts),
		cancelMeetup: newClient[apiv1.CancelMeetupRequest, apiv1.CancelMeetupResponse](httpClient, baseURL, MeetupServiceCancelMeetupProcedure, opts),
		deleteMeetup: newClient[apiv1.DeleteMeetupRequest, apiv1.DeleteMeetupResponse](httpClient, baseURL, MeetupServiceDeleteMeetupProcedure, opts),
		kickUser: newClient[apiv1.KickUserRequest, apiv1.KickUserResponse](httpClient, baseURL, MeetupServiceKickUserProcedure, opts),
	}
}

type meetupServiceClient struct {
	scheduleMeetup *connect.Client[apiv1.ScheduleMeetupRequest, apiv1.ScheduleMeetupResponse]
	listMeetups    *connect.Client[apiv1.ListMeetupsRequest, apiv1.ListMeetupsResponse]
	getMeetup      *connect.Client[apiv1.GetMeetupRequest, apiv1.GetMeetupResponse]
	cancelMeetup   *connect.Client[apiv1.CancelMeetupRequest, apiv1.CancelMeetupResponse]
	deleteMeetup   *connect.Client[apiv1.DeleteMeetupRequest, apiv1.DeleteMeetupResponse]
	kickUser       *connect.Client[apiv1.KickUserRequest, apiv1.KickUserResponse]
}

func (c *meetupServiceClient) ScheduleMeetup(ctx context.Context, req *connect.Request[apiv1.ScheduleMeetupRequest]) (*connect.Response[apiv1.ScheduleMeetupResponse], error) {
	return c.scheduleMeetup.CallUnary(ctx, req)
}

func (c *meetupServiceClient) ListMeetups(ctx context.Context, req *connect.Request[apiv1.ListMeetupsRequest]) (*connect.Response[apiv1.ListMeetupsResponse], error) {
	return c.listMeetups.CallUnary(ctx, req)
}

func (c *meetupServiceClient) GetMeetup(ctx context.Context, req *connect.Request[apiv1.GetMeetupRequest]) (*connect.Response[apiv1.GetMeetupResponse], error) {
	return c.getMeetup.CallUnary(ctx, req)
}

func (c *meetupServiceClient) CancelMeetup(ctx context.Context, req *connect.Request[apiv1.CancelMeetupRequest]) (*connect.Response[apiv1.CancelMeetupResponse], error) {
	return c.cancelMeetup.CallUnary(ctx, req)
}

func (c *meetupServiceClient) DeleteMeetup(ctx context.Context, req *connect.Request[apiv1.DeleteMeetupRequest]) (*connect.Response[apiv1.DeleteMeetupResponse], error) {
	return c.deleteMeetup.CallUnary(ctx, req)
}

func (c *meetupServiceClient) KickUser(ctx context.Context, req *connect.Request[apiv1.KickUserRequest]) (*connect.Response[apiv1.KickUserResponse], error) {
	return c.kickUser.CallUnary(ctx, req)
}
