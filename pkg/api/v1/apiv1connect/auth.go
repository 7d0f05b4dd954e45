package apiv1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	apiv1 "github.com/wodomi/HomiMeet-FullApp/pkg/api/v1"
)

// AuthServiceName is the fully-qualified name of the AuthService.
const AuthServiceName = "homimeet.v1.AuthService"

// Procedure paths of the AuthService.
const (
	AuthServiceRegisterProcedure       = "/homimeet.v1.AuthService/Register"
	AuthServiceLoginProcedure          = "/homimeet.v1.AuthService/Login"
	AuthServiceLogoutProcedure         = "/homimeet.v1.AuthService/Logout"
	AuthServiceGetCurrentUserProcedure = "/homimeet.v1.AuthService/GetCurrentUser"
)

// AuthServiceHandler is implemented by the server side of the AuthService.
// AuthService registers users and issues session tokens.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[apiv1.RegisterRequest]) (*connect.Response[apiv1.RegisterResponse], error)
	Login(context.Context, *connect.Request[apiv1.LoginRequest]) (*connect.Response[apiv1.LoginResponse], error)
	Logout(context.Context, *connect.Request[apiv1.LogoutRequest]) (*connect.Response[apiv1.LogoutResponse], error)
	GetCurrentUser(context.Context, *connect.Request[apiv1.GetCurrentUserRequest]) (*connect.Response[apiv1.GetCurrentUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler serving every AuthService procedure.
// It returns the path prefix to mount the handler on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	s := newServiceMux(AuthServiceName, opts)
	handle(s, AuthServiceRegisterProcedure, svc.Register)
	handle(s, AuthServiceLoginProcedure, svc.Login)
	handle(s, AuthServiceLogoutProcedure, svc.Logout)
	handle(s, AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser)
	return s.handler()
}

// AuthServiceClient is a client for the AuthService.
type AuthServiceClient interface {
	Register(context.Context, *connect.Request[apiv1.RegisterRequest]) (*connect.Response[apiv1.RegisterResponse], error)
	Login(context.Context, *connect.Request[apiv1.LoginRequest]) (*connect.Response[apiv1.LoginResponse], error)
	Logout(context.Context, *connect.Request[apiv1.LogoutRequest]) (*connect.Response[apiv1.LogoutResponse], error)
	GetCurrentUser(context.Context, *connect.Request[apiv1.GetCurrentUserRequest]) (*connect.Response[apiv1.GetCurrentUserResponse], error)
}

// NewAuthServiceClient creates a AuthService client talking to baseURL (e.g. http://localhost:8080).
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	return &authServiceClient{
		register: newClient[apiv1.RegisterRequest, apiv1.RegisterResponse](httpClient, baseURL, AuthServiceRegisterProcedure, opts),
		login: newClient[apiv1.LoginRequest, apiv1.LoginResponse](httpClient, baseURL, AuthServiceLoginProcedure, opts),
		logout: newClient[apiv1.LogoutRequest, apiv1.LogoutResponse](httpClient, baseURL, AuthServiceLogoutProcedure, opts),
		getCurrentUser: newClient[apiv1.GetCurrentUserRequest, apiv1.GetCurrentUserResponse](httpClient, baseURL, AuthServiceGetCurrentUserProcedure, opts),
	}
}

type authServiceClient struct {
	register       *connect.Client[apiv1.RegisterRequest, apiv1.RegisterResponse]
	login          *connect.Client[apiv1.LoginRequest, apiv1.LoginResponse]
	logout         *connect.Client[apiv1.LogoutRequest, apiv1.LogoutResponse]
	getCurrentUser *connect.Client[apiv1.GetCurrentUserRequest, apiv1.GetCurrentUserResponse]
}

func (c *authServiceClient) Register(ctx context.Context, req *connect.Request[apiv1.RegisterRequest]) (*connect.Response[apiv1.RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[apiv1.LoginRequest]) (*connect.Response[apiv1.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) Logout(ctx context.Context, req *connect.Request[apiv1.LogoutRequest]) (*connect.Response[apiv1.LogoutResponse], error) {
	return c.logout.CallUnary(ctx, req)
}

func (c *authServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[apiv1.GetCurrentUserRequest]) (*connect.Response[apiv1.GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}
