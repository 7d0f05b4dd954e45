package apiv1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	apiv1 "github.com/wodomi/HomiMeet-FullApp/pkg/api/v1"
)

// InvitationServiceName is the fully-qualified name of the InvitationService.
const InvitationServiceName = "homimeet.v1.InvitationService"

// Procedure paths of the InvitationService.
const (
	InvitationServiceInviteProcedure            = "/homimeet.v1.InvitationService/Invite"
	InvitationServiceCreateInvitationsProcedure = "/homimeet.v1.InvitationService/CreateInvitations"
	InvitationServiceRespondInvitationProcedure = "/homimeet.v1.InvitationService/RespondInvitation"
	InvitationServiceListInvitationsProcedure   = "/homimeet.v1.InvitationService/ListInvitations"
)

// InvitationServiceHandler is implemented by the server side of the InvitationService.
// InvitationService invites users to meetups and records their answers.
type InvitationServiceHandler interface {
	Invite(context.Context, *connect.Request[apiv1.InviteRequest]) (*connect.Response[apiv1.InviteResponse], error)
	CreateInvitations(context.Context, *connect.Request[apiv1.CreateInvitationsRequest]) (*connect.Response[apiv1.CreateInvitationsResponse], error)
	RespondInvitation(context.Context, *connect.Request[apiv1.RespondInvitationRequest]) (*connect.Response[apiv1.RespondInvitationResponse], error)
	ListInvitations(context.Context, *connect.Request[apiv1.ListInvitationsRequest]) (*connect.Response[apiv1.ListInvitationsResponse], error)
}

// NewInvitationServiceHandler builds an HTTP handler serving every InvitationService procedure.
// It returns the path prefix to mount the handler on.
func NewInvitationServiceHandler(svc InvitationServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	s := newServiceMux(InvitationServiceName, opts)
	handle(s, InvitationServiceInviteProcedure, svc.Invite)
	handle(s, InvitationServiceCreateInvitationsProcedure, svc.CreateInvitations)
	handle(s, InvitationServiceRespondInvitationProcedure, svc.RespondInvitation)
	handle(s, InvitationServiceListInvitationsProcedure, svc.ListInvitations)
	return s.handler()
}

// InvitationServiceClient is a client for the InvitationService.
type InvitationServiceClient interface {
	Invite(context.Context, *connect.Request[apiv1.InviteRequest]) (*connect.Response[apiv1.InviteResponse], error)
	CreateInvitations(context.Context, *connect.Request[apiv1.CreateInvitationsRequest]) (*connect.Response[apiv1.CreateInvitationsResponse], error)
	RespondInvitation(context.Context, *connect.Request[apiv1.RespondInvitationRequest]) (*connect.Response[apiv1.RespondInvitationResponse], error)
	ListInvitations(context.Context, *connect.Request[apiv1.ListInvitationsRequest]) (*connect.Response[apiv1.ListInvitationsResponse], error)
}

// NewInvitationServiceClient creates a InvitationService client talking to baseURL (e.g. http://localhost:8080).
func NewInvitationServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) InvitationServiceClient {
	return &invitationServiceClient{
		invite: newClient[apiv1.InviteRequest, apiv1.InviteResponse](httpClient, baseURL, InvitationServiceInviteProcedure, opts),
		createInvitations: newClient[apiv1.CreateInvitationsRequest, apiv1.CreateInvitationsResponse](httpClient, baseURL, InvitationServiceCreateInvitationsProcedure, opts),
		respondInvitation: newClient[apiv1.RespondInvitationRequest, apiv1.RespondInvitationResponse](httpClient, baseURL, InvitationServiceRespondInvitationProcedure, opts),
		listInvitations: newClient[apiv1.ListInvitationsRequest, apiv1.ListInvitationsResponse](httpClient, baseURL, InvitationServiceListInvitationsProcedure, opts),
	}
}

type invitationServiceClient struct {
	invite            *connect.Client[apiv1.InviteRequest, apiv1.InviteResponse]
	createInvitations *connect.Client[apiv1.CreateInvitationsRequest, apiv1.CreateInvitationsResponse]
	respondInvitation *connect.Client[apiv1.RespondInvitationRequest, apiv1.RespondInvitationResponse]
	listInvitations   *connect.Client[apiv1.ListInvitationsRequest, apiv1.ListInvitationsResponse]
}

func (c *invitationServiceClient) Invite(ctx context.Context, req *connect.Request[apiv1.InviteRequest]) (*connect.Response[apiv1.InviteResponse], error) {
	return c.invite.CallUnary(ctx, req)
}

func (c *invitationServiceClient) CreateInvitations(ctx context.Context, req *connect.Request[apiv1.CreateInvitationsRequest]) (*connect.Response[apiv1.CreateInvitationsResponse], error) {
	return c.createInvitations.CallUnary(ctx, req)
}

func (c *invitationServiceClient) RespondInvitation(ctx context.Context, req *connect.Request[apiv1.RespondInvitationRequest]) (*connect.Response[apiv1.RespondInvitationResponse], error) {
	return c.respondInvitation.CallUnary(ctx, req)
}

func (c *invitationServiceClient) ListInvitations(ctx context.Context, req *connect.Request[apiv1.ListInvitationsRequest]) (*connect.Response[apiv1.ListInvitationsResponse], error) {
	return c.listInvitations.CallUnary(ctx, req)
}
