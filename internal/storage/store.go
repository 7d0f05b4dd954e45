// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/wodomi/HomiMeet-FullApp/internal/models"
)

// ErrNotFound is returned (wrapped) when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByUsername and GetUserByID return (nil, nil) when the user does not exist.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	// ListOtherUsers returns every user except the given one, ordered by username.
	ListOtherUsers(ctx context.Context, exceptID string) ([]models.UserRef, error)
}

// MeetupStore persists meetups and their rosters.
type MeetupStore interface {
	CreateMeetup(ctx context.Context, meetup *models.Meetup) error
	GetMeetup(ctx context.Context, id int64) (*models.Meetup, error)
	GetMeetupDetail(ctx context.Context, id int64) (*models.MeetupDetail, error)
	ListMeetupsByCreator(ctx context.Context, creatorID string) ([]models.Meetup, error)
	SetMeetupStatus(ctx context.Context, id int64, status models.MeetupStatus) error
	// DeleteMeetup removes the meetup, its invitations and its punctuality logs atomically.
	DeleteMeetup(ctx context.Context, id int64) error

	OwnedMeetups(ctx context.Context, userID string, filter models.MeetupFilter) ([]models.Meetup, error)
	AcceptedMeetups(ctx context.Context, userID string, filter models.MeetupFilter) ([]models.Meetup, error)
	Roster(ctx context.Context, meetupID int64) ([]models.Member, error)
	DisplayName(ctx context.Context, userID string) (string, bool, error)
}

// InvitationStore persists invitations.
type InvitationStore interface {
	// InviteUsers creates a pending invitation for each user that does not already have one.
	// It returns the number of invitations created.
	InviteUsers(ctx context.Context, meetupID int64, userIDs []string) (int, error)
	// CreateMeetupWithInvites creates the meetup and its invitations in one transaction.
	CreateMeetupWithInvites(ctx context.Context, meetup *models.Meetup, userIDs []string) (int, error)
	// RespondInvitation sets the status of the invitee's own invitation.
	// It returns ErrNotFound when no invitation matches both IDs.
	RespondInvitation(ctx context.Context, inviteID int64, userID string, status models.InvitationStatus) error
	RemoveInvitation(ctx context.Context, meetupID int64, userID string) error
	PendingInvitations(ctx context.Context, userID string) ([]models.PendingInvitation, error)
}

// PunctualityStore persists punctuality logs and derives scores.
type PunctualityStore interface {
	RecordPunctuality(ctx context.Context, log *models.PunctualityLog) error
	// AverageScore returns 0 when the user has no logs.
	AverageScore(ctx context.Context, userID string) (float64, error)
	ScoresForUser(ctx context.Context, userID string) ([]models.ScoreEntry, error)
	Leaderboard(ctx context.Context, groupID string, ascending bool) ([]models.LeaderboardEntry, error)
}

// GroupStore persists groups.
type GroupStore interface {
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, id string) (*models.Group, error)
}

// ProfileStore persists per-user profile data and locations.
type ProfileStore interface {
	UpsertProfile(ctx context.Context, profile *models.Profile) error
	// GetProfile returns an empty bio when the user has no profile yet.
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpsertLocation(ctx context.Context, loc *models.UserLocation) error
	// GetLocation returns ErrNotFound until the user reports a position.
	GetLocation(ctx context.Context, userID string) (*models.UserLocation, error)
}

// Store defines every storage operation the services need.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	UserStore
	MeetupStore
	InvitationStore
	PunctualityStore
	GroupStore
	ProfileStore

	// Ping checks connectivity and returns the database's current time.
	Ping(ctx context.Context) (time.Time, error)

	// Close releases any resources held by the store.
	Close() error
}
