package models

import "time"

// MeetupStatus is the lifecycle state of a meetup.
type MeetupStatus string

const (
	MeetupScheduled MeetupStatus = "scheduled"
	MeetupCanceled  MeetupStatus = "canceled"
)

// Meetup is a scheduled in-person gathering owned by one creator.
type Meetup struct {
	// ID is the database-assigned identifier.
	ID int64

	// Location is the free-text place name shown to members.
	Location string

	// ScheduledAt is when the meetup happens. The zero value means unscheduled.
	ScheduledAt time.Time

	// CreatorID is the user ID of the owner.
	CreatorID string

	// GroupID links the meetup to a leaderboard group. Empty when ungrouped.
	GroupID string

	// Lat and Lng are the map coordinates, nil when no pin was placed.
	Lat *float64
	Lng *float64

	Status MeetupStatus

	// CreatedAt is the Unix timestamp when the meetup was created.
	CreatedAt int64
}

// MeetupFilter narrows meetup listings. Nil bounds are open; both bounds are inclusive.
type MeetupFilter struct {
	// Status is empty for all meetups, or one of the MeetupStatus values.
	Status MeetupStatus
	After  *time.Time
	Before *time.Time
}

// MemberStatusHost marks the synthetic roster entry for an uninvited creator.
const MemberStatusHost = "host"

// Member is one participant in a meetup roster.
type Member struct {
	UserID string `db:"id"`
	Name   string `db:"name"`
	// Status is an InvitationStatus value or MemberStatusHost.
	Status string `db:"status"`
}

// MeetupView is a meetup as seen by one requesting user.
type MeetupView struct {
	ID          int64
	Location    string
	ScheduledAt time.Time
	Status      MeetupStatus
	Members     []Member
	IsOwner     bool

	// Creator is the creator's display name, empty when the creator no longer exists.
	Creator string
	Lat     *float64
	Lng     *float64
}

// MeetupDetail is a single meetup with its creator name and invitations.
type MeetupDetail struct {
	Meetup
	Creator     string
	Invitations []Invitation
}
