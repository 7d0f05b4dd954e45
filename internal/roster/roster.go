// Package roster builds a user's meetup listing: owned and accepted meetups merged
// in order, deduplicated, and annotated with resolved member rosters.
package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/wodomi/HomiMeet-FullApp/internal/models"
)

// Source is the data the aggregator reads. storage/sqlite.SQLiteStore implements it.
type Source interface {
	// OwnedMeetups returns meetups created by userID, latest first.
	OwnedMeetups(ctx context.Context, userID string, filter models.MeetupFilter) ([]models.Meetup, error)
	// AcceptedMeetups returns meetups where userID accepted an invitation, latest first.
	AcceptedMeetups(ctx context.Context, userID string, filter models.MeetupFilter) ([]models.Meetup, error)
	// Roster returns one member per invitation row of the meetup.
	Roster(ctx context.Context, meetupID int64) ([]models.Member, error)
	// DisplayName resolves a user's name; ok is false when the user does not exist.
	DisplayName(ctx context.Context, userID string) (name string, ok bool, err error)
}

// Listing is the aggregated result for one requesting user.
type Listing struct {
	Meetups []models.MeetupView

	// Date bucket boundaries, formatted as 2006-01-02 in server local time.
	Today     string
	WeekStart string
	WeekEnd   string
}

// Aggregator merges meetup sets into a Listing.
type Aggregator struct {
	src Source
	now func() time.Time
}

// NewAggregator creates an Aggregator reading from src and using the wall clock.
func NewAggregator(src Source) *Aggregator {
	return &Aggregator{src: src, now: time.Now}
}

// WithClock returns a copy of the aggregator that reads the current time from now.
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	return &Aggregator{src: a.src, now: now}
}

// List returns the user's owned meetups followed by meetups they accepted, each at most once.
func (a *Aggregator) List(ctx context.Context, userID string, filter models.MeetupFilter) (*Listing, error) {
	owned, err := a.src.OwnedMeetups(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	accepted, err := a.src.AcceptedMeetups(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(owned)+len(accepted))
	views := make([]models.MeetupView, 0, len(owned)+len(accepted))
	for _, set := range [][]models.Meetup{owned, accepted} {
		for _, m := range set {
			if seen[m.ID] {
				continue
			}
			seen[m.ID] = true

			view, err := a.view(ctx, userID, m)
			if err != nil {
				return nil, err
			}
			views = append(views, view)
		}
	}

	today, weekStart, weekEnd := WeekBounds(a.now())
	return &Listing{
		Meetups:   views,
		Today:     today,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
	}, nil
}

func (a *Aggregator) view(ctx context.Context, userID string, m models.Meetup) (models.MeetupView, error) {
	members, err := a.src.Roster(ctx, m.ID)
	if err != nil {
		return models.MeetupView{}, fmt.Errorf("roster for meetup %d: %w", m.ID, err)
	}

	creator, _, err := a.src.DisplayName(ctx, m.CreatorID)
	if err != nil {
		return models.MeetupView{}, fmt.Errorf("creator of meetup %d: %w", m.ID, err)
	}

	if !hasMember(members, m.CreatorID) {
		host := models.Member{UserID: m.CreatorID, Name: creator, Status: models.MemberStatusHost}
		members = append([]models.Member{host}, members...)
	}

	return models.MeetupView{
		ID:          m.ID,
		Location:    m.Location,
		ScheduledAt: m.ScheduledAt,
		Status:      m.Status,
		Members:     members,
		IsOwner:     m.CreatorID == userID,
		Creator:     creator,
		Lat:         m.Lat,
		Lng:         m.Lng,
	}, nil
}

func hasMember(members []models.Member, userID string) bool {
	for _, m := range members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// WeekBounds returns today's date and the Monday..Sunday week containing it.
func WeekBounds(now time.Time) (today, weekStart, weekEnd string) {
	const layout = "2006-01-02"

	// time.Weekday counts from Sunday; shift so Monday is 0.
	offset := (int(now.Weekday()) + 6) % 7
	start := now.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)

	return now.Format(layout), start.Format(layout), end.Format(layout)
}
