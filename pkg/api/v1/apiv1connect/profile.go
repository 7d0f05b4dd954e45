package apiv1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	apiv1 "github.com/wodomi/HomiMeet-FullApp/pkg/api/v1"
)

// ProfileServiceName is the fully-qualified name of the ProfileService.
const ProfileServiceName = "homimeet.v1.ProfileService"

// Procedure paths of the ProfileService.
const (
	ProfileServiceGetProfileProcedure     = "/homimeet.v1.ProfileService/GetProfile"
	ProfileServiceUpdateProfileProcedure  = "/homimeet.v1.ProfileService/UpdateProfile"
	ProfileServiceUpdateLocationProcedure = "/homimeet.v1.ProfileService/UpdateLocation"
)

// ProfileServiceHandler is implemented by the server side of the ProfileService.
// ProfileService manages the caller's profile text and last location.
type ProfileServiceHandler interface {
	GetProfile(context.Context, *connect.Request[apiv1.GetProfileRequest]) (*connect.Response[apiv1.GetProfileResponse], error)
	UpdateProfile(context.Context, *connect.Request[apiv1.UpdateProfileRequest]) (*connect.Response[apiv1.UpdateProfileResponse], error)
	UpdateLocation(context.Context, *connect.Request[apiv1.UpdateLocationRequest]) (*connect.Response[apiv1.UpdateLocationResponse], error)
}

// NewProfileServiceHandler builds an HTTP handler serving every ProfileService procedure.
// It returns the path prefix to mount the handler on.
func NewProfileServiceHandler(svc ProfileServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	s := newServiceMux(ProfileServiceName, opts)
	handle(s, ProfileServiceGetProfileProcedure, svc.GetProfile)
	handle(s, ProfileServiceUpdateProfileProcedure, svc.UpdateProfile)
	handle(s, ProfileServiceUpdateLocationProcedure, svc.UpdateLocation)
	return s.handler()
}

// ProfileServiceClient is a client for the ProfileService.
type ProfileServiceClient interface {
	GetProfile(context.Context, *connect.Request[apiv1.GetProfileRequest]) (*connect.Response[apiv1.GetProfileResponse], error)
	UpdateProfile(context.Context, *connect.Request[apiv1.UpdateProfileRequest]) (*connect.Response[apiv1.UpdateProfileResponse], error)
	UpdateLocation(context.Context, *connect.Request[apiv1.UpdateLocationRequest]) (*connect.Response[apiv1.UpdateLocationResponse], error)
}

// NewProfileServiceClient creates a ProfileService client talking to baseURL (e.g. http://localhost:8080).
func NewProfileServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ProfileServiceClient {
	return &profileServiceClient{
		getProfile: newClient[apiv1.GetProfileRequest, apiv1.GetProfileResponse](httpClient, baseURL, ProfileServiceGetProfileProcedure, opts),
		updateProfile: newClient[apiv1.UpdateProfileRequest, apiv1.UpdateProfileResponse](httpClient, baseURL, ProfileServiceUpdateProfileProcedure, opts),
		updateLocation: newClient[apiv1.UpdateLocationRequest, apiv1.UpdateLocationResponse](httpClient, baseURL, ProfileServiceUpdateLocationProcedure, opts),
	}
}

type profileServiceClient struct {
	getProfile     *connect.Client[apiv1.GetProfileRequest, apiv1.GetProfileResponse]
	updateProfile  *connect.Client[apiv1.UpdateProfileRequest, apiv1.UpdateProfileResponse]
	updateLocation *connect.Client[apiv1.UpdateLocationRequest, apiv1.UpdateLocationResponse]
}

func (c *profileServiceClient) GetProfile(ctx context.Context, req *connect.Request[apiv1.GetProfileRequest]) (*connect.Response[apiv1.GetProfileResponse], error) {
	return c.getProfile.CallUnary(ctx, req)
}

func (c *profileServiceClient) UpdateProfile(ctx context.Context, req *connect.Request[apiv1.UpdateProfileRequest]) (*connect.Response[apiv1.UpdateProfileResponse], error) {
	return c.updateProfile.CallUnary(ctx, req)
}

func (c *profileServiceClient) UpdateLocation(ctx context.Context, req *connect.Request[apiv1.UpdateLocationRequest]) (*connect.Response[apiv1.UpdateLocationResponse], error) {
	return c.updateLocation.CallUnary(ctx, req)
}
