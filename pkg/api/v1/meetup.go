package apiv1

import "time"

// Member is one participant of a meetup roster. Status is an invitation
// status or "host" for a creator without an invitation.
type Member struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Status string `json:"status"`
}

// Meetup is a meetup as listed for the requesting user.
type Meetup struct {
	ID            int64      `json:"id"`
	Location      string     `json:"location"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	Status        string     `json:"status"`
	Members       []Member   `json:"members"`
	IsOwner       bool       `json:"is_owner"`
	Creator       string     `json:"creator,omitempty"`
	Lat           *float64   `json:"lat,omitempty"`
	Lng           *float64   `json:"lng,omitempty"`
}

// Invitation is one invitee of a meetup.
type Invitation struct {
	ID       int64  `json:"id"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Status   string `json:"status"`
}

// MeetupDetail is a single meetup with every invitation.
type MeetupDetail struct {
	ID            int64        `json:"id"`
	Location      string       `json:"location"`
	ScheduledTime *time.Time   `json:"scheduled_time,omitempty"`
	Status        string       `json:"status"`
	CreatorID     string       `json:"creator_id"`
	Creator       string       `json:"creator,omitempty"`
	GroupID       string       `json:"group_id,omitempty"`
	Lat           *float64     `json:"lat,omitempty"`
	Lng           *float64     `json:"lng,omitempty"`
	InvitedUsers  []Invitation `json:"invited_users"`
}

// ScheduleMeetupRequest creates a meetup. Coordinates arrive as the raw
// strings of the map picker and are validated server side.
type ScheduleMeetupRequest struct {
	Location      string `json:"location" validate:"required,max=200"`
	ScheduledTime string `json:"scheduled_time" validate:"required"`
	Lat           string `json:"lat"`
	Lng           string `json:"lng"`
	GroupID       string `json:"group_id,omitempty"`
}

type ScheduleMeetupResponse struct {
	MeetupID int64 `json:"meetup_id"`
}

// ListMeetupsRequest filters the caller's meetups. Status is all, scheduled or
// canceled; After and Before are dates (2006-01-02) or RFC 3339 timestamps.
type ListMeetupsRequest struct {
	Status string `json:"status,omitempty"`
	After  string `json:"after,omitempty"`
	Before string `json:"before,omitempty"`
}

type ListMeetupsResponse struct {
	Meetups       []Meetup  `json:"meetups"`
	CurrentFilter string    `json:"current_filter"`
	After         string    `json:"after,omitempty"`
	Before        string    `json:"before,omitempty"`
	Today         string    `json:"today"`
	WeekStart     string    `json:"week_start"`
	WeekEnd       string    `json:"week_end"`
	Users         []UserRef `json:"users"`
}

type GetMeetupRequest struct {
	MeetupID int64 `json:"meetup_id" validate:"required"`
}

type GetMeetupResponse struct {
	Meetup *MeetupDetail `json:"meetup"`
}

type CancelMeetupRequest struct {
	MeetupID int64 `json:"meetup_id" validate:"required"`
}

type CancelMeetupResponse struct{}

type DeleteMeetupRequest struct {
	MeetupID int64 `json:"meetup_id" validate:"required"`
}

type DeleteMeetupResponse struct{}

type KickUserRequest struct {
	MeetupID int64  `json:"meetup_id" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
}

type KickUserResponse struct{}
