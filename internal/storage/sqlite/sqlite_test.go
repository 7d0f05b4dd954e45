package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/wodomi/HomiMeet-FullApp/internal/models"
	"github.com/wodomi/HomiMeet-FullApp/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustCreateUser(t *testing.T, store *SQLiteStore, username string) *models.User {
	t.Helper()

	user := models.NewUser(username, "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", username, err)
	}
	return user
}

func mustCreateMeetup(t *testing.T, store *SQLiteStore, creator, location string, at time.Time) *models.Meetup {
	t.Helper()

	meetup := &models.Meetup{Location: location, ScheduledAt: at, CreatorID: creator}
	if err := store.CreateMeetup(context.Background(), meetup); err != nil {
		t.Fatalf("CreateMeetup(%s) failed: %v", location, err)
	}
	return meetup
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustCreateUser(t, store, "alice")
	mustCreateUser(t, store, "carol")
	mustCreateUser(t, store, "bob")

	t.Run("lookup by username and ID", func(t *testing.T) {
		byName, err := store.GetUserByUsername(ctx, "alice")
		if err != nil || byName == nil || byName.ID != alice.ID {
			t.Fatalf("GetUserByUsername: got %+v, %v", byName, err)
		}
		byID, err := store.GetUserByID(ctx, alice.ID)
		if err != nil || byID == nil || byID.Username != "alice" {
			t.Fatalf("GetUserByID: got %+v, %v", byID, err)
		}
	})

	t.Run("missing user is nil without error", func(t *testing.T) {
		user, err := store.GetUserByUsername(ctx, "nobody")
		if err != nil || user != nil {
			t.Errorf("got %+v, %v; want nil, nil", user, err)
		}
	})

	t.Run("duplicate username fails", func(t *testing.T) {
		if err := store.CreateUser(ctx, models.NewUser("alice", "hash")); err == nil {
			t.Error("expected unique constraint violation")
		}
	})

	t.Run("ListOtherUsers is sorted and excludes caller", func(t *testing.T) {
		users, err := store.ListOtherUsers(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListOtherUsers failed: %v", err)
		}
		if len(users) != 2 || users[0].Username != "bob" || users[1].Username != "carol" {
			t.Errorf("got %+v, want bob, carol", users)
		}
	})

	t.Run("DisplayName", func(t *testing.T) {
		name, ok, err := store.DisplayName(ctx, alice.ID)
		if err != nil || !ok || name != "alice" {
			t.Errorf("got %q, %v, %v", name, ok, err)
		}
		name, ok, err = store.DisplayName(ctx, "ghost")
		if err != nil || ok || name != "" {
			t.Errorf("missing user: got %q, %v, %v", name, ok, err)
		}
	})
}

func TestMeetups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustCreateUser(t, store, "alice")
	bob := mustCreateUser(t, store, "bob")

	early := time.Date(2024, 6, 10, 18, 0, 0, 0, time.UTC)
	late := time.Date(2024, 6, 14, 18, 0, 0, 0, time.UTC)

	t.Run("CreateMeetup assigns ID and defaults", func(t *testing.T) {
		lat, lng := 52.5, 13.4
		m := &models.Meetup{Location: "Cafe", ScheduledAt: early, CreatorID: alice.ID, Lat: &lat, Lng: &lng}
		if err := store.CreateMeetup(ctx, m); err != nil {
			t.Fatalf("CreateMeetup failed: %v", err)
		}
		if m.ID == 0 || m.CreatedAt == 0 || m.Status != models.MeetupScheduled {
			t.Fatalf("unexpected meetup: %+v", m)
		}

		got, err := store.GetMeetup(ctx, m.ID)
		if err != nil {
			t.Fatalf("GetMeetup failed: %v", err)
		}
		if !got.ScheduledAt.Equal(early) || got.Lat == nil || *got.Lat != 52.5 || got.GroupID != "" {
			t.Errorf("round trip mismatch: %+v", got)
		}
	})

	t.Run("unscheduled meetup keeps zero time", func(t *testing.T) {
		m := mustCreateMeetup(t, store, alice.ID, "Somewhere", time.Time{})
		got, err := store.GetMeetup(ctx, m.ID)
		if err != nil {
			t.Fatalf("GetMeetup failed: %v", err)
		}
		if !got.ScheduledAt.IsZero() || got.Lat != nil {
			t.Errorf("expected zero time and no pin, got %+v", got)
		}
	})

	t.Run("GetMeetup missing", func(t *testing.T) {
		_, err := store.GetMeetup(ctx, 424242)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("OwnedMeetups filters and orders", func(t *testing.T) {
		store := newTestStore(t)
		alice := mustCreateUser(t, store, "alice")
		first := mustCreateMeetup(t, store, alice.ID, "First", early)
		second := mustCreateMeetup(t, store, alice.ID, "Second", late)

		all, err := store.OwnedMeetups(ctx, alice.ID, models.MeetupFilter{})
		if err != nil {
			t.Fatalf("OwnedMeetups failed: %v", err)
		}
		if len(all) != 2 || all[0].ID != second.ID || all[1].ID != first.ID {
			t.Fatalf("expected latest first, got %+v", all)
		}

		if err := store.SetMeetupStatus(ctx, first.ID, models.MeetupCanceled); err != nil {
			t.Fatalf("SetMeetupStatus failed: %v", err)
		}
		canceled, err := store.OwnedMeetups(ctx, alice.ID, models.MeetupFilter{Status: models.MeetupCanceled})
		if err != nil {
			t.Fatalf("OwnedMeetups failed: %v", err)
		}
		if len(canceled) != 1 || canceled[0].ID != first.ID {
			t.Errorf("status filter: got %+v", canceled)
		}

		after := early.Add(time.Hour)
		ranged, err := store.OwnedMeetups(ctx, alice.ID, models.MeetupFilter{After: &after})
		if err != nil {
			t.Fatalf("OwnedMeetups failed: %v", err)
		}
		if len(ranged) != 1 || ranged[0].ID != second.ID {
			t.Errorf("after filter: got %+v", ranged)
		}

		before := early
		ranged, err = store.OwnedMeetups(ctx, alice.ID, models.MeetupFilter{Before: &before})
		if err != nil {
			t.Fatalf("OwnedMeetups failed: %v", err)
		}
		if len(ranged) != 1 || ranged[0].ID != first.ID {
			t.Errorf("inclusive before filter: got %+v", ranged)
		}
	})

	t.Run("SetMeetupStatus missing", func(t *testing.T) {
		err := store.SetMeetupStatus(ctx, 424242, models.MeetupCanceled)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("AcceptedMeetups only returns accepted invitations", func(t *testing.T) {
		m := mustCreateMeetup(t, store, alice.ID, "Party", late)
		if _, err := store.InviteUsers(ctx, m.ID, []string{bob.ID}); err != nil {
			t.Fatalf("InviteUsers failed: %v", err)
		}

		accepted, err := store.AcceptedMeetups(ctx, bob.ID, models.MeetupFilter{})
		if err != nil {
			t.Fatalf("AcceptedMeetups failed: %v", err)
		}
		if len(accepted) != 0 {
			t.Fatalf("pending invitation should not be listed, got %+v", accepted)
		}

		pending, err := store.PendingInvitations(ctx, bob.ID)
		if err != nil || len(pending) != 1 {
			t.Fatalf("PendingInvitations: got %+v, %v", pending, err)
		}
		if err := store.RespondInvitation(ctx, pending[0].InviteID, bob.ID, models.InvitationAccepted); err != nil {
			t.Fatalf("RespondInvitation failed: %v", err)
		}

		accepted, err = store.AcceptedMeetups(ctx, bob.ID, models.MeetupFilter{})
		if err != nil {
			t.Fatalf("AcceptedMeetups failed: %v", err)
		}
		if len(accepted) != 1 || accepted[0].ID != m.ID {
			t.Errorf("got %+v, want meetup %d", accepted, m.ID)
		}
	})
}

func TestInvitations(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustCreateUser(t, store, "alice")
	bob := mustCreateUser(t, store, "bob")
	carol := mustCreateUser(t, store, "carol")
	meetup := mustCreateMeetup(t, store, alice.ID, "Cafe", time.Now())

	t.Run("InviteUsers is idempotent", func(t *testing.T) {
		created, err := store.InviteUsers(ctx, meetup.ID, []string{bob.ID, carol.ID})
		if err != nil || created != 2 {
			t.Fatalf("first invite: got %d, %v", created, err)
		}
		created, err = store.InviteUsers(ctx, meetup.ID, []string{bob.ID, carol.ID})
		if err != nil || created != 0 {
			t.Fatalf("second invite: got %d, %v", created, err)
		}

		members, err := store.Roster(ctx, meetup.ID)
		if err != nil {
			t.Fatalf("Roster failed: %v", err)
		}
		if len(members) != 2 {
			t.Fatalf("expected one row per invitee, got %+v", members)
		}
		if members[0].Name != "bob" || members[1].Name != "carol" || members[0].Status != "pending" {
			t.Errorf("roster: got %+v", members)
		}
	})

	t.Run("RespondInvitation only changes the invitee's row", func(t *testing.T) {
		pending, err := store.PendingInvitations(ctx, bob.ID)
		if err != nil || len(pending) != 1 {
			t.Fatalf("PendingInvitations: got %+v, %v", pending, err)
		}

		err = store.RespondInvitation(ctx, pending[0].InviteID, carol.ID, models.InvitationAccepted)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound for foreign invitation, got %v", err)
		}
		if err := store.RespondInvitation(ctx, pending[0].InviteID, bob.ID, models.InvitationDeclined); err != nil {
			t.Fatalf("RespondInvitation failed: %v", err)
		}

		detail, err := store.GetMeetupDetail(ctx, meetup.ID)
		if err != nil {
			t.Fatalf("GetMeetupDetail failed: %v", err)
		}
		if detail.Creator != "alice" || len(detail.Invitations) != 2 {
			t.Fatalf("unexpected detail: %+v", detail)
		}
		if detail.Invitations[0].Status != models.InvitationDeclined || detail.Invitations[1].Status != models.InvitationPending {
			t.Errorf("statuses: got %+v", detail.Invitations)
		}
	})

	t.Run("CreateMeetupWithInvites", func(t *testing.T) {
		m := &models.Meetup{Location: "Untitled Meetup", CreatorID: alice.ID}
		created, err := store.CreateMeetupWithInvites(ctx, m, []string{bob.ID})
		if err != nil || created != 1 || m.ID == 0 {
			t.Fatalf("got %d, %v, meetup %+v", created, err, m)
		}
	})

	t.Run("CreateMeetupWithInvites rolls back on failure", func(t *testing.T) {
		before, err := store.ListMeetupsByCreator(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListMeetupsByCreator failed: %v", err)
		}

		m := &models.Meetup{Location: "Doomed", CreatorID: alice.ID}
		if _, err := store.CreateMeetupWithInvites(ctx, m, []string{"ghost"}); err == nil {
			t.Fatal("expected foreign key violation for unknown invitee")
		}

		after, err := store.ListMeetupsByCreator(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListMeetupsByCreator failed: %v", err)
		}
		if len(after) != len(before) {
			t.Errorf("meetup should not persist: before %d, after %d", len(before), len(after))
		}
	})

	t.Run("RemoveInvitation", func(t *testing.T) {
		if err := store.RemoveInvitation(ctx, meetup.ID, carol.ID); err != nil {
			t.Fatalf("RemoveInvitation failed: %v", err)
		}
		err := store.RemoveInvitation(ctx, meetup.ID, carol.ID)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestDeleteMeetupCascades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustCreateUser(t, store, "alice")
	bob := mustCreateUser(t, store, "bob")
	meetup := mustCreateMeetup(t, store, alice.ID, "Cafe", time.Now())

	if _, err := store.InviteUsers(ctx, meetup.ID, []string{bob.ID}); err != nil {
		t.Fatalf("InviteUsers failed: %v", err)
	}
	if err := store.RecordPunctuality(ctx, &models.PunctualityLog{
		UserID: bob.ID, MeetupID: meetup.ID, Status: models.PunctualityLate, Score: -1,
	}); err != nil {
		t.Fatalf("RecordPunctuality failed: %v", err)
	}

	if err := store.DeleteMeetup(ctx, meetup.ID); err != nil {
		t.Fatalf("DeleteMeetup failed: %v", err)
	}

	var invitations, logs int
	if err := store.db.GetContext(ctx, &invitations, "SELECT COUNT(*) FROM invitations WHERE meetup_id = ?", meetup.ID); err != nil {
		t.Fatalf("count invitations: %v", err)
	}
	if err := store.db.GetContext(ctx, &logs, "SELECT COUNT(*) FROM punctuality_logs WHERE meetup_id = ?", meetup.ID); err != nil {
		t.Fatalf("count logs: %v", err)
	}
	if invitations != 0 || logs != 0 {
		t.Errorf("expected cascade, got %d invitations and %d logs", invitations, logs)
	}

	if err := store.DeleteMeetup(ctx, meetup.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestMissingCreator(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ghost := mustCreateUser(t, store, "ghost")
	meetup := mustCreateMeetup(t, store, ghost.ID, "Haunted house", time.Now())

	if _, err := store.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", ghost.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	detail, err := store.GetMeetupDetail(ctx, meetup.ID)
	if err != nil {
		t.Fatalf("GetMeetupDetail failed: %v", err)
	}
	if detail.Creator != "" {
		t.Errorf("expected empty creator, got %q", detail.Creator)
	}

	_, ok, err := store.DisplayName(ctx, ghost.ID)
	if err != nil || ok {
		t.Errorf("DisplayName: ok=%v err=%v, want false, nil", ok, err)
	}
}

func TestPunctuality(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustCreateUser(t, store, "alice")
	bob := mustCreateUser(t, store, "bob")
	carol := mustCreateUser(t, store, "carol")

	group := &models.Group{Name: "Runners", CreatedBy: alice.ID}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	grouped := &models.Meetup{Location: "Track", ScheduledAt: time.Now(), CreatorID: alice.ID, GroupID: group.ID}
	if err := store.CreateMeetup(ctx, grouped); err != nil {
		t.Fatalf("CreateMeetup failed: %v", err)
	}
	loose := mustCreateMeetup(t, store, alice.ID, "Elsewhere", time.Now())

	record := func(user *models.User, meetupID int64, status models.PunctualityStatus) {
		t.Helper()
		log := &models.PunctualityLog{UserID: user.ID, MeetupID: meetupID, Status: status, Score: status.Score()}
		if err := store.RecordPunctuality(ctx, log); err != nil {
			t.Fatalf("RecordPunctuality failed: %v", err)
		}
		if log.ID == 0 || log.CreatedAt == 0 {
			t.Fatalf("expected ID and CreatedAt, got %+v", log)
		}
	}

	record(alice, grouped.ID, models.PunctualityOnTime)
	record(alice, grouped.ID, models.PunctualityOnTime)
	record(bob, grouped.ID, models.PunctualityLate)
	record(carol, grouped.ID, models.PunctualityAbsent)
	record(carol, loose.ID, models.PunctualityOnTime) // outside the group

	t.Run("AverageScore", func(t *testing.T) {
		avg, err := store.AverageScore(ctx, carol.ID)
		if err != nil || avg != 0 {
			t.Errorf("carol: got %v, %v; want 0", avg, err)
		}
		avg, err = store.AverageScore(ctx, alice.ID)
		if err != nil || avg != 3 {
			t.Errorf("alice: got %v, %v; want 3", avg, err)
		}
		none := mustCreateUser(t, store, "dave")
		avg, err = store.AverageScore(ctx, none.ID)
		if err != nil || avg != 0 {
			t.Errorf("no logs: got %v, %v; want 0", avg, err)
		}
	})

	t.Run("ScoresForUser", func(t *testing.T) {
		entries, err := store.ScoresForUser(ctx, carol.ID)
		if err != nil {
			t.Fatalf("ScoresForUser failed: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %+v", entries)
		}
	})

	t.Run("Leaderboard", func(t *testing.T) {
		desc, err := store.Leaderboard(ctx, group.ID, false)
		if err != nil {
			t.Fatalf("Leaderboard failed: %v", err)
		}
		want := []models.LeaderboardEntry{
			{Username: "alice", TotalScore: 6},
			{Username: "bob", TotalScore: -1},
			{Username: "carol", TotalScore: -3},
		}
		if len(desc) != len(want) {
			t.Fatalf("got %+v, want %+v", desc, want)
		}
		for i := range want {
			if desc[i] != want[i] {
				t.Errorf("desc[%d]: got %+v, want %+v", i, desc[i], want[i])
			}
		}

		asc, err := store.Leaderboard(ctx, group.ID, true)
		if err != nil {
			t.Fatalf("Leaderboard failed: %v", err)
		}
		if len(asc) != 3 || asc[0].Username != "carol" || asc[2].Username != "alice" {
			t.Errorf("asc: got %+v", asc)
		}
	})
}

func TestGroups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := &models.Group{Name: "Book Club", CreatedBy: "someone"}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if group.ID == "" || group.CreatedAt == 0 {
		t.Fatalf("expected generated ID and CreatedAt, got %+v", group)
	}

	got, err := store.GetGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if *got != *group {
		t.Errorf("got %+v, want %+v", got, group)
	}

	if _, err := store.GetGroup(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProfilesAndLocations(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := mustCreateUser(t, store, "alice")

	t.Run("profile upsert", func(t *testing.T) {
		profile, err := store.GetProfile(ctx, alice.ID)
		if err != nil || profile.Bio != "" {
			t.Fatalf("empty profile: got %+v, %v", profile, err)
		}
		for _, bio := range []string{"one", "two"} {
			if err := store.UpsertProfile(ctx, &models.Profile{UserID: alice.ID, Bio: bio}); err != nil {
				t.Fatalf("UpsertProfile failed: %v", err)
			}
		}
		profile, err = store.GetProfile(ctx, alice.ID)
		if err != nil || profile.Bio != "two" {
			t.Errorf("got %+v, %v; want bio two", profile, err)
		}
	})

	t.Run("location upsert keeps one row", func(t *testing.T) {
		if _, err := store.GetLocation(ctx, alice.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected ErrNotFound before first update, got %v", err)
		}

		acc := 12.5
		if err := store.UpsertLocation(ctx, &models.UserLocation{UserID: alice.ID, Lat: 1, Lng: 2, Accuracy: &acc}); err != nil {
			t.Fatalf("UpsertLocation failed: %v", err)
		}
		if err := store.UpsertLocation(ctx, &models.UserLocation{UserID: alice.ID, Lat: 3, Lng: 4}); err != nil {
			t.Fatalf("UpsertLocation failed: %v", err)
		}

		var rows int
		if err := store.db.GetContext(ctx, &rows, "SELECT COUNT(*) FROM user_locations WHERE user_id = ?", alice.ID); err != nil {
			t.Fatalf("count: %v", err)
		}
		if rows != 1 {
			t.Errorf("expected one row, got %d", rows)
		}

		loc, err := store.GetLocation(ctx, alice.ID)
		if err != nil {
			t.Fatalf("GetLocation failed: %v", err)
		}
		if loc.Lat != 3 || loc.Lng != 4 || loc.Accuracy != nil {
			t.Errorf("got %+v, want latest position without accuracy", loc)
		}
	})
}

func TestPing(t *testing.T) {
	store := newTestStore(t)

	now, err := store.Ping(context.Background())
	if err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
	if d := time.Since(now); d < -time.Minute || d > time.Minute {
		t.Errorf("database clock off by %v", d)
	}
}

func TestListingFiltersApplyToBothSets(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustCreateUser(t, store, "alice")
	bob := mustCreateUser(t, store, "bob")

	day := func(d int) time.Time { return time.Date(2024, 6, d, 12, 0, 0, 0, time.UTC) }
	accept := func(m *models.Meetup) {
		t.Helper()
		if _, err := store.InviteUsers(ctx, m.ID, []string{alice.ID}); err != nil {
			t.Fatalf("InviteUsers failed: %v", err)
		}
		pending, err := store.PendingInvitations(ctx, alice.ID)
		if err != nil || len(pending) != 1 {
			t.Fatalf("PendingInvitations: got %+v, %v", pending, err)
		}
		if err := store.RespondInvitation(ctx, pending[0].InviteID, alice.ID, models.InvitationAccepted); err != nil {
			t.Fatalf("RespondInvitation failed: %v", err)
		}
	}

	ownedLive := mustCreateMeetup(t, store, alice.ID, "owned live", day(10))
	ownedCanceled := mustCreateMeetup(t, store, alice.ID, "owned canceled", day(11))
	ownedJuly := mustCreateMeetup(t, store, alice.ID, "owned july", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	invitedLive := mustCreateMeetup(t, store, bob.ID, "invited live", day(12))
	accept(invitedLive)
	invitedCanceled := mustCreateMeetup(t, store, bob.ID, "invited canceled", day(13))
	accept(invitedCanceled)
	invitedMay := mustCreateMeetup(t, store, bob.ID, "invited may", time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC))
	accept(invitedMay)

	for _, m := range []*models.Meetup{ownedCanceled, invitedCanceled} {
		if err := store.SetMeetupStatus(ctx, m.ID, models.MeetupCanceled); err != nil {
			t.Fatalf("SetMeetupStatus failed: %v", err)
		}
	}

	ids := func(meetups []models.Meetup) map[int64]bool {
		set := make(map[int64]bool, len(meetups))
		for _, m := range meetups {
			set[m.ID] = true
		}
		return set
	}

	t.Run("status scheduled excludes canceled", func(t *testing.T) {
		filter := models.MeetupFilter{Status: models.MeetupScheduled}
		owned, err := store.OwnedMeetups(ctx, alice.ID, filter)
		if err != nil {
			t.Fatalf("OwnedMeetups failed: %v", err)
		}
		accepted, err := store.AcceptedMeetups(ctx, alice.ID, filter)
		if err != nil {
			t.Fatalf("AcceptedMeetups failed: %v", err)
		}
		if ids(owned)[ownedCanceled.ID] || ids(accepted)[invitedCanceled.ID] {
			t.Errorf("canceled meetups leaked: owned %+v accepted %+v", owned, accepted)
		}
		if !ids(owned)[ownedLive.ID] || !ids(accepted)[invitedLive.ID] {
			t.Errorf("scheduled meetups missing: owned %+v accepted %+v", owned, accepted)
		}
	})

	t.Run("inclusive June range", func(t *testing.T) {
		after := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		before := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)
		filter := models.MeetupFilter{After: &after, Before: &before}

		owned, err := store.OwnedMeetups(ctx, alice.ID, filter)
		if err != nil {
			t.Fatalf("OwnedMeetups failed: %v", err)
		}
		accepted, err := store.AcceptedMeetups(ctx, alice.ID, filter)
		if err != nil {
			t.Fatalf("AcceptedMeetups failed: %v", err)
		}
		if ids(owned)[ownedJuly.ID] || ids(accepted)[invitedMay.ID] {
			t.Errorf("out-of-range meetups leaked: owned %+v accepted %+v", owned, accepted)
		}
		if len(owned) != 2 || len(accepted) != 2 {
			t.Errorf("expected 2 owned and 2 accepted in June, got %d and %d", len(owned), len(accepted))
		}
	})
}
