package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	apiv1 "github.com/wodomi/HomiMeet-FullApp/pkg/api/v1"
)

func TestPunctualityScoring(t *testing.T) {
	env := setupTestServer(t)
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	ctx := context.Background()

	group, err := env.groups.CreateGroup(ctx, as(alice, &apiv1.CreateGroupRequest{Name: "Book Club"}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	groupID := group.Msg.Group.ID

	meetup, err := env.meetups.ScheduleMeetup(ctx, as(alice, &apiv1.ScheduleMeetupRequest{
		Location:      "Library",
		ScheduledTime: "2024-06-12T18:00",
		Lat:           "1",
		Lng:           "2",
		GroupID:       groupID,
	}))
	if err != nil {
		t.Fatalf("ScheduleMeetup failed: %v", err)
	}
	meetupID := meetup.Msg.MeetupID

	submit := func(u testUser, status string) *apiv1.SubmitPunctualityResponse {
		t.Helper()
		resp, err := env.punctuality.SubmitPunctuality(ctx, as(alice, &apiv1.SubmitPunctualityRequest{
			UserID:   u.ID,
			MeetupID: meetupID,
			Status:   status,
		}))
		if err != nil {
			t.Fatalf("SubmitPunctuality(%s, %s) failed: %v", u.Name, status, err)
		}
		return resp.Msg
	}

	if got := submit(alice, "on_time").Score; got != 3 {
		t.Errorf("on_time score: got %d, want 3", got)
	}
	if got := submit(bob, "late").Score; got != -1 {
		t.Errorf("late score: got %d, want -1", got)
	}
	if got := submit(bob, "absent").Score; got != -3 {
		t.Errorf("absent score: got %d, want -3", got)
	}

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := env.punctuality.SubmitPunctuality(ctx, as(alice, &apiv1.SubmitPunctualityRequest{
			UserID:   bob.ID,
			MeetupID: meetupID,
			Status:   "early",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("rejects missing meetup", func(t *testing.T) {
		_, err := env.punctuality.SubmitPunctuality(ctx, as(alice, &apiv1.SubmitPunctualityRequest{
			UserID:   bob.ID,
			MeetupID: 9999,
			Status:   "late",
		}))
		assertCode(t, err, connect.CodeNotFound)
	})

	t.Run("dashboard", func(t *testing.T) {
		resp, err := env.punctuality.GetDashboard(ctx, as(bob, &apiv1.GetDashboardRequest{}))
		if err != nil {
			t.Fatalf("GetDashboard failed: %v", err)
		}
		if resp.Msg.Username != "bob" || resp.Msg.AvgScore != -2 {
			t.Errorf("got %+v, want bob with -2", resp.Msg)
		}
	})

	t.Run("my scores", func(t *testing.T) {
		resp, err := env.punctuality.ListMyScores(ctx, as(bob, &apiv1.ListMyScoresRequest{}))
		if err != nil {
			t.Fatalf("ListMyScores failed: %v", err)
		}
		if len(resp.Msg.Logs) != 2 {
			t.Fatalf("expected 2 logs, got %d", len(resp.Msg.Logs))
		}
		if resp.Msg.Logs[0].Location != "Library" {
			t.Errorf("location: got %q, want Library", resp.Msg.Logs[0].Location)
		}
	})

	t.Run("leaderboard", func(t *testing.T) {
		desc, err := env.punctuality.GetLeaderboard(ctx, as(alice, &apiv1.GetLeaderboardRequest{GroupID: groupID}))
		if err != nil {
			t.Fatalf("GetLeaderboard failed: %v", err)
		}
		if desc.Msg.Order != "desc" {
			t.Errorf("order: got %q, want desc", desc.Msg.Order)
		}
		want := []apiv1.LeaderboardEntry{{Username: "alice", TotalScore: 3}, {Username: "bob", TotalScore: -4}}
		if len(desc.Msg.Scores) != len(want) {
			t.Fatalf("got %+v, want %+v", desc.Msg.Scores, want)
		}
		for i := range want {
			if desc.Msg.Scores[i] != want[i] {
				t.Errorf("entry %d: got %+v, want %+v", i, desc.Msg.Scores[i], want[i])
			}
		}

		asc, err := env.punctuality.GetLeaderboard(ctx, as(alice, &apiv1.GetLeaderboardRequest{GroupID: groupID, Order: "asc"}))
		if err != nil {
			t.Fatalf("GetLeaderboard failed: %v", err)
		}
		if len(asc.Msg.Scores) != 2 || asc.Msg.Scores[0].Username != "bob" {
			t.Errorf("asc: got %+v", asc.Msg.Scores)
		}

		_, err = env.punctuality.GetLeaderboard(ctx, as(alice, &apiv1.GetLeaderboardRequest{GroupID: groupID, Order: "sideways"}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("deleting the meetup drops its scores", func(t *testing.T) {
		if _, err := env.meetups.DeleteMeetup(ctx, as(alice, &apiv1.DeleteMeetupRequest{MeetupID: meetupID})); err != nil {
			t.Fatalf("DeleteMeetup failed: %v", err)
		}
		resp, err := env.punctuality.GetDashboard(ctx, as(alice, &apiv1.GetDashboardRequest{}))
		if err != nil {
			t.Fatalf("GetDashboard failed: %v", err)
		}
		if resp.Msg.AvgScore != 0 {
			t.Errorf("avg score: got %v, want 0", resp.Msg.AvgScore)
		}
	})
}
