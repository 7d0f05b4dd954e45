package service

import (
	"time"

	"github.com/wodomi/HomiMeet-FullApp/internal/models"
	apiv1 "github.com/wodomi/HomiMeet-FullApp/pkg/api/v1"
)

func toAPILocation(loc *models.UserLocation) *apiv1.UserLocation {
	if loc == nil {
		return nil
	}
	return &apiv1.UserLocation{
		Lat:      loc.Lat,
		Lng:      loc.Lng,
		Accuracy: loc.Accuracy,
		LastSeen: timePtr(time.Unix(loc.LastSeen, 0)),
	}
}

// timePtr maps the zero time to nil so unscheduled meetups omit the field.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func toAPIUser(u *models.User) *apiv1.User {
	return &apiv1.User{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: time.Unix(u.CreatedAt, 0).UTC(),
	}
}

func toAPIUserRefs(users []models.UserRef) []apiv1.UserRef {
	out := make([]apiv1.UserRef, len(users))
	for i, u := range users {
		out[i] = apiv1.UserRef{ID: u.ID, Username: u.Username}
	}
	return out
}

func toAPIMeetup(v models.MeetupView) apiv1.Meetup {
	members := make([]apiv1.Member, len(v.Members))
	for i, m := range v.Members {
		members[i] = apiv1.Member{ID: m.UserID, Name: m.Name, Status: m.Status}
	}
	return apiv1.Meetup{
		ID:            v.ID,
		Location:      v.Location,
		ScheduledTime: timePtr(v.ScheduledAt),
		Status:        string(v.Status),
		Members:       members,
		IsOwner:       v.IsOwner,
		Creator:       v.Creator,
		Lat:           v.Lat,
		Lng:           v.Lng,
	}
}

func toAPIMeetupDetail(d *models.MeetupDetail) *apiv1.MeetupDetail {
	invited := make([]apiv1.Invitation, len(d.Invitations))
	for i, inv := range d.Invitations {
		invited[i] = apiv1.Invitation{
			ID:       inv.ID,
			UserID:   inv.UserID,
			Username: inv.Username,
			Status:   string(inv.Status),
		}
	}
	return &apiv1.MeetupDetail{
		ID:            d.ID,
		Location:      d.Location,
		ScheduledTime: timePtr(d.ScheduledAt),
		Status:        string(d.Status),
		CreatorID:     d.CreatorID,
		Creator:       d.Creator,
		GroupID:       d.GroupID,
		Lat:           d.Lat,
		Lng:           d.Lng,
		InvitedUsers:  invited,
	}
}

func toAPIOwnedMeetups(meetups []models.Meetup) []apiv1.OwnedMeetup {
	out := make([]apiv1.OwnedMeetup, len(meetups))
	for i, m := range meetups {
		out[i] = apiv1.OwnedMeetup{
			ID:            m.ID,
			Location:      m.Location,
			ScheduledTime: timePtr(m.ScheduledAt),
			Status:        string(m.Status),
			Lat:           m.Lat,
			Lng:           m.Lng,
		}
	}
	return out
}

func toAPIPendingInvitations(invites []models.PendingInvitation) []apiv1.PendingInvitation {
	out := make([]apiv1.PendingInvitation, len(invites))
	for i, inv := range invites {
		out[i] = apiv1.PendingInvitation{
			InviteID:      inv.InviteID,
			MeetupID:      inv.MeetupID,
			Location:      inv.Location,
			ScheduledTime: timePtr(inv.ScheduledAt),
			Lat:           inv.Lat,
			Lng:           inv.Lng,
		}
	}
	return out
}

func toAPIGroup(g *models.Group) *apiv1.Group {
	return &apiv1.Group{
		ID:        g.ID,
		Name:      g.Name,
		CreatedBy: g.CreatedBy,
		CreatedAt: time.Unix(g.CreatedAt, 0).UTC(),
	}
}
