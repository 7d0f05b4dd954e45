package apiv1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	apiv1 "github.com/wodomi/HomiMeet-FullApp/pkg/api/v1"
)

// PunctualityServiceName is the fully-qualified name of the PunctualityService.
const PunctualityServiceName = "homimeet.v1.PunctualityService"

// Procedure paths of the PunctualityService.
const (
	PunctualityServiceSubmitPunctualityProcedure = "/homimeet.v1.PunctualityService/SubmitPunctuality"
	PunctualityServiceGetDashboardProcedure      = "/homimeet.v1.PunctualityService/GetDashboard"
	PunctualityServiceListMyScoresProcedure      = "/homimeet.v1.PunctualityService/ListMyScores"
	PunctualityServiceGetLeaderboardProcedure    = "/homimeet.v1.PunctualityService/GetLeaderboard"
)

// PunctualityServiceHandler is implemented by the server side of the PunctualityService.
// PunctualityService records arrival outcomes and ranks users.
type PunctualityServiceHandler interface {
	SubmitPunctuality(context.Context, *connect.Request[apiv1.SubmitPunctualityRequest]) (*connect.Response[apiv1.SubmitPunctualityResponse], error)
	GetDashboard(context.Context, *connect.Request[apiv1.GetDashboardRequest]) (*connect.Response[apiv1.GetDashboardResponse], error)
	ListMyScores(context.Context, *connect.Request[apiv1.ListMyScoresRequest]) (*connect.Response[apiv1.ListMyScoresResponse], error)
	GetLeaderboard(context.Context, *connect.Request[apiv1.GetLeaderboardRequest]) (*connect.Response[apiv1.GetLeaderboardResponse], error)
}

// NewPunctualityServiceHandler builds an HTTP handler serving every PunctualityService procedure.
// It returns the path prefix to mount the handler on.
func NewPunctualityServiceHandler(svc PunctualityServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	s := newServiceMux(PunctualityServiceName, opts)
	handle(s, PunctualityServiceSubmitPunctualityProcedure, svc.SubmitPunctuality)
	handle(s, PunctualityServiceGetDashboardProcedure, svc.GetDashboard)
	handle(s, PunctualityServiceListMyScoresProcedure, svc.ListMyScores)
	handle(s, PunctualityServiceGetLeaderboardProcedure, svc.GetLeaderboard)
	return s.handler()
}

// PunctualityServiceClient is a client for the PunctualityService.
type PunctualityServiceClient interface {
	SubmitPunctuality(context.Context, *connect.Request[apiv1.SubmitPunctualityRequest]) (*connect.Response[apiv1.SubmitPunctualityResponse], error)
	GetDashboard(context.Context, *connect.Request[apiv1.GetDashboardRequest]) (*connect.Response[apiv1.GetDashboardResponse], error)
	ListMyScores(context.Context, *connect.Request[apiv1.ListMyScoresRequest]) (*connect.Response[apiv1.ListMyScoresResponse], error)
	GetLeaderboard(context.Context, *connect.Request[apiv1.GetLeaderboardRequest]) (*connect.Response[apiv1.GetLeaderboardResponse], error)
}

// NewPunctualityServiceClient creates a PunctualityService client talking to baseURL (e.g. http://localhost:8080).
func NewPunctualityServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PunctualityServiceClient {
	return &punctualityServiceClient{
		submitPunctuality: newClient[apiv1.SubmitPunctualityRequest, apiv1.SubmitPunctualityResponse](httpClient, baseURL, PunctualityServiceSubmitPunctualityProcedure, opts),
		getDashboard: newClient[apiv1.GetDashboardRequest, apiv1.GetDashboardResponse](httpClient, baseURL, PunctualityServiceGetDashboardProcedure, opts),
		listMyScores: newClient[apiv1.ListMyScoresRequest, apiv1.ListMyScoresResponse](httpClient, baseURL, PunctualityServiceListMyScoresProcedure, opts),
		getLeaderboard: newClient[apiv1.GetLeaderboardRequest, apiv1.GetLeaderboardResponse](httpClient, baseURL, PunctualityServiceGetLeaderboardProcedure, opts),
	}
}

type punctualityServiceClient struct {
	submitPunctuality *connect.Client[apiv1.SubmitPunctualityRequest, apiv1.SubmitPunctualityResponse]
	getDashboard      *connect.Client[apiv1.GetDashboardRequest, apiv1.GetDashboardResponse]
	listMyScores      *connect.Client[apiv1.ListMyScoresRequest, apiv1.ListMyScoresResponse]
	getLeaderboard    *connect.Client[apiv1.GetLeaderboardRequest, apiv1.GetLeaderboardResponse]
}

func (c *punctualityServiceClient) SubmitPunctuality(ctx context.Context, req *connect.Request[apiv1.SubmitPunctualityRequest]) (*connect.Response[apiv1.SubmitPunctualityResponse], error) {
	return c.submitPunctuality.CallUnary(ctx, req)
}

func (c *punctualityServiceClient) GetDashboard(ctx context.Context, req *connect.Request[apiv1.GetDashboardRequest]) (*connect.Response[apiv1.GetDashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}

func (c *punctualityServiceClient) ListMyScores(ctx context.Context, req *connect.Request[apiv1.ListMyScoresRequest]) (*connect.Response[apiv1.ListMyScoresResponse], error) {
	return c.listMyScores.CallUnary(ctx, req)
}

func (c *punctualityServiceClient) GetLeaderboard(ctx context.Context, req *connect.Request[apiv1.GetLeaderboardRequest]) (*connect.Response[apiv1.GetLeaderboardResponse], error) {
	return c.getLeaderboard.CallUnary(ctx, req)
}
