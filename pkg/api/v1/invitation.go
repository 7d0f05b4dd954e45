package apiv1

import "time"

// PendingInvitation is an unanswered invitation with its meetup.
type PendingInvitation struct {
	InviteID      int64      `json:"invite_id"`
	MeetupID      int64      `json:"meetup_id"`
	Location      string     `json:"location"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	Lat           *float64   `json:"lat,omitempty"`
	Lng           *float64   `json:"lng,omitempty"`
}

// OwnedMeetup is a meetup the caller created, as shown on the invitations page.
type OwnedMeetup struct {
	ID            int64      `json:"id"`
	Location      string     `json:"location"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	Status        string     `json:"status"`
	Lat           *float64   `json:"lat,omitempty"`
	Lng           *float64   `json:"lng,omitempty"`
}

type InviteRequest struct {
	MeetupID int64  `json:"meetup_id" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
}

type InviteResponse struct {
	// Created is false when the user was already invited.
	Created bool `json:"created"`
}

// CreateInvitationsRequest invites users to an existing meetup, or to a new
// meetup built from the remaining fields when MeetupID is zero.
type CreateInvitationsRequest struct {
	MeetupID      int64    `json:"meetup_id,omitempty"`
	Invitees      []string `json:"invitees"`
	Location      string   `json:"location,omitempty" validate:"max=200"`
	ScheduledTime string   `json:"scheduled_time,omitempty"`
	Lat           string   `json:"lat,omitempty"`
	Lng           string   `json:"lng,omitempty"`
}

type CreateInvitationsResponse struct {
	MeetupID int64 `json:"meetup_id"`
	Created  int   `json:"created"`
}

// RespondInvitationRequest answers an invitation. Action is accept or decline.
type RespondInvitationRequest struct {
	InviteID int64  `json:"invite_id" validate:"required"`
	Action   string `json:"action"`
}

type RespondInvitationResponse struct {
	Status string `json:"status"`
}

type ListInvitationsRequest struct{}

type ListInvitationsResponse struct {
	Invitations []PendingInvitation `json:"invitations"`
	Meetups     []OwnedMeetup       `json:"meetups"`
	Users       []UserRef           `json:"users"`
}
