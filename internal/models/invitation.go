package models

import "time"

// InvitationStatus is an invitee's response to a meetup.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

// Invitation links one invitee to one meetup.
// At most one invitation exists per (MeetupID, UserID) pair.
type Invitation struct {
	ID       int64            `db:"id"`
	MeetupID int64            `db:"meetup_id"`
	UserID   string           `db:"user_id"`
	Status   InvitationStatus `db:"status"`

	// Username is filled by queries that join users.
	Username string `db:"username"`
}

// PendingInvitation is an open invitation together with the meetup it is for.
type PendingInvitation struct {
	InviteID    int64
	MeetupID    int64
	Location    string
	ScheduledAt time.Time
	Lat         *float64
	Lng         *float64
}
