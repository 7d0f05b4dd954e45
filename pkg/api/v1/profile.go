package apiv1

import "time"

type GetProfileRequest struct{}

// GetProfileResponse carries the bio and, once the device has reported one,
// the last known position.
type GetProfileResponse struct {
	Bio      string        `json:"bio"`
	Location *UserLocation `json:"location,omitempty"`
}

type UserLocation struct {
	Lat      float64    `json:"lat"`
	Lng      float64    `json:"lng"`
	Accuracy *float64   `json:"accuracy,omitempty"`
	LastSeen *time.Time `json:"last_seen,omitempty"`
}

type UpdateProfileRequest struct {
	Bio string `json:"bio" validate:"max=2000"`
}

type UpdateProfileResponse struct {
	Bio string `json:"bio"`
}

// UpdateLocationRequest reports the device position. Lat and Lng are required.
type UpdateLocationRequest struct {
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
	Accuracy *float64 `json:"accuracy,omitempty"`
}

type UpdateLocationResponse struct {
	OK bool `json:"ok"`
}
