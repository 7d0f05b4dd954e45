package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/wodomi/HomiMeet-FullApp/internal/models"
)

// inviteUsers inserts a pending invitation per user, skipping users already invited.
// The unique (meetup_id, user_id) index makes each insert atomic.
func inviteUsers(ctx context.Context, tx *sqlx.Tx, meetupID int64, userIDs []string) (int, error) {
	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO invitations (meetup_id, user_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(meetup_id, user_id) DO NOTHING
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare invitation insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	created := 0
	for _, userID := range userIDs {
		res, err := stmt.ExecContext(ctx, meetupID, userID, string(models.InvitationPending), now, now)
		if err != nil {
			return 0, fmt.Errorf("failed to insert invitation: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read affected rows: %w", err)
		}
		created += int(n)
	}
	return created, nil
}

// InviteUsers creates pending invitations for users not yet invited to the meetup.
func (s *SQLiteStore) InviteUsers(ctx context.Context, meetupID int64, userIDs []string) (int, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	created, err := inviteUsers(ctx, tx, meetupID, userIDs)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return created, nil
}

// CreateMeetupWithInvites creates a meetup and invites users to it in one transaction.
func (s *SQLiteStore) CreateMeetupWithInvites(ctx context.Context, meetup *models.Meetup, userIDs []string) (int, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertMeetup(ctx, tx, meetup); err != nil {
		return 0, err
	}

	created, err := inviteUsers(ctx, tx, meetup.ID, userIDs)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return created, nil
}

// RespondInvitation records the invitee's answer. Only the invitee's own row can change.
func (s *SQLiteStore) RespondInvitation(ctx context.Context, inviteID int64, userID string, status models.InvitationStatus) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE invitations SET status = ?, updated_at = ? WHERE id = ? AND user_id = ?",
		string(status), time.Now().Unix(), inviteID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update invitation: %w", err)
	}
	return requireAffected(res, "invitation", inviteID)
}

// RemoveInvitation deletes a user's invitation to a meetup.
func (s *SQLiteStore) RemoveInvitation(ctx context.Context, meetupID int64, userID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM invitations WHERE meetup_id = ? AND user_id = ?",
		meetupID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}
	return requireAffected(res, "invitation for user", userID)
}

// PendingInvitations lists the user's unanswered invitations with their meetups.
func (s *SQLiteStore) PendingInvitations(ctx context.Context, userID string) ([]models.PendingInvitation, error) {
	var rows []struct {
		InviteID    int64           `db:"invite_id"`
		MeetupID    int64           `db:"meetup_id"`
		Location    string          `db:"location"`
		ScheduledAt sql.NullInt64   `db:"scheduled_time"`
		Lat         sql.NullFloat64 `db:"lat"`
		Lng         sql.NullFloat64 `db:"lng"`
	}
	err := s.db.SelectContext(ctx, &rows,
		`SELECT i.id AS invite_id, m.id AS meetup_id, m.location, m.scheduled_time, m.lat, m.lng
		 FROM invitations i
		 JOIN meetups m ON m.id = i.meetup_id
		 WHERE i.user_id = ? AND i.status = ?
		 ORDER BY m.scheduled_time DESC, i.id DESC`,
		userID, string(models.InvitationPending),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending invitations: %w", err)
	}

	invites := make([]models.PendingInvitation, len(rows))
	for i, r := range rows {
		invites[i] = models.PendingInvitation{
			InviteID:    r.InviteID,
			MeetupID:    r.MeetupID,
			Location:    r.Location,
			ScheduledAt: fromUnix(r.ScheduledAt),
			Lat:         floatPtr(r.Lat),
			Lng:         floatPtr(r.Lng),
		}
	}
	return invites, nil
}
