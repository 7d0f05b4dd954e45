package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/wodomi/HomiMeet-FullApp/internal/models"
	"github.com/wodomi/HomiMeet-FullApp/internal/storage"
)

const meetupColumns = "m.id, m.location, m.scheduled_time, m.user_id, m.group_id, m.lat, m.lng, m.status, m.created_at"

// meetupRow mirrors the meetups table. It is converted to models.Meetup
// before leaving this package.
type meetupRow struct {
	ID          int64           `db:"id"`
	Location    string          `db:"location"`
	ScheduledAt sql.NullInt64   `db:"scheduled_time"`
	CreatorID   string          `db:"user_id"`
	GroupID     sql.NullString  `db:"group_id"`
	Lat         sql.NullFloat64 `db:"lat"`
	Lng         sql.NullFloat64 `db:"lng"`
	Status      string          `db:"status"`
	CreatedAt   int64           `db:"created_at"`
}

func (r meetupRow) toModel() models.Meetup {
	return models.Meetup{
		ID:          r.ID,
		Location:    r.Location,
		ScheduledAt: fromUnix(r.ScheduledAt),
		CreatorID:   r.CreatorID,
		GroupID:     r.GroupID.String,
		Lat:         floatPtr(r.Lat),
		Lng:         floatPtr(r.Lng),
		Status:      models.MeetupStatus(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

func toMeetups(rows []meetupRow) []models.Meetup {
	meetups := make([]models.Meetup, len(rows))
	for i, r := range rows {
		meetups[i] = r.toModel()
	}
	return meetups
}

// insertMeetup writes the meetup and fills in its ID, status and CreatedAt.
func insertMeetup(ctx context.Context, ex execer, meetup *models.Meetup) error {
	if meetup.Status == "" {
		meetup.Status = models.MeetupScheduled
	}
	if meetup.CreatedAt == 0 {
		meetup.CreatedAt = time.Now().Unix()
	}

	res, err := ex.ExecContext(ctx,
		`INSERT INTO meetups (user_id, location, scheduled_time, lat, lng, status, group_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		meetup.CreatorID, meetup.Location, toUnix(meetup.ScheduledAt),
		nullFloat(meetup.Lat), nullFloat(meetup.Lng), string(meetup.Status),
		nullString(meetup.GroupID), meetup.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert meetup: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read meetup id: %w", err)
	}
	meetup.ID = id
	return nil
}

// CreateMeetup persists a new meetup and assigns its ID.
func (s *SQLiteStore) CreateMeetup(ctx context.Context, meetup *models.Meetup) error {
	return insertMeetup(ctx, s.db, meetup)
}

// GetMeetup retrieves a meetup by ID.
func (s *SQLiteStore) GetMeetup(ctx context.Context, id int64) (*models.Meetup, error) {
	var row meetupRow
	err := s.db.GetContext(ctx, &row, "SELECT "+meetupColumns+" FROM meetups m WHERE m.id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("meetup %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meetup: %w", err)
	}

	meetup := row.toModel()
	return &meetup, nil
}

// GetMeetupDetail retrieves a meetup with its creator name and every invitation.
func (s *SQLiteStore) GetMeetupDetail(ctx context.Context, id int64) (*models.MeetupDetail, error) {
	var row struct {
		meetupRow
		Creator sql.NullString `db:"creator"`
	}
	err := s.db.GetContext(ctx, &row,
		"SELECT "+meetupColumns+", u.username AS creator FROM meetups m LEFT JOIN users u ON u.id = m.user_id WHERE m.id = ?",
		id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("meetup %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meetup detail: %w", err)
	}

	var invitations []models.Invitation
	err = s.db.SelectContext(ctx, &invitations,
		`SELECT i.id, i.meetup_id, i.user_id, i.status, u.username
		 FROM invitations i
		 JOIN users u ON u.id = i.user_id
		 WHERE i.meetup_id = ?
		 ORDER BY i.id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get meetup invitations: %w", err)
	}

	return &models.MeetupDetail{
		Meetup:      row.meetupRow.toModel(),
		Creator:     row.Creator.String,
		Invitations: invitations,
	}, nil
}

// ListMeetupsByCreator returns every meetup the user created, latest first.
func (s *SQLiteStore) ListMeetupsByCreator(ctx context.Context, creatorID string) ([]models.Meetup, error) {
	var rows []meetupRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT "+meetupColumns+" FROM meetups m WHERE m.user_id = ? ORDER BY m.scheduled_time DESC, m.id DESC",
		creatorID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetups by creator: %w", err)
	}
	return toMeetups(rows), nil
}

// SetMeetupStatus updates a meetup's lifecycle status.
func (s *SQLiteStore) SetMeetupStatus(ctx context.Context, id int64, status models.MeetupStatus) error {
	res, err := s.db.ExecContext(ctx, "UPDATE meetups SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update meetup status: %w", err)
	}
	return requireAffected(res, "meetup", id)
}

// DeleteMeetup removes a meetup together with its invitations and punctuality logs.
func (s *SQLiteStore) DeleteMeetup(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM punctuality_logs WHERE meetup_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete punctuality logs: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM invitations WHERE meetup_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete invitations: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM meetups WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete meetup: %w", err)
	}
	if err := requireAffected(res, "meetup", id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// OwnedMeetups returns meetups created by userID that match the filter, latest first.
func (s *SQLiteStore) OwnedMeetups(ctx context.Context, userID string, filter models.MeetupFilter) ([]models.Meetup, error) {
	conds := []string{"m.user_id = ?"}
	args := []any{userID}
	conds, args = appendFilter(conds, args, filter)

	query := "SELECT " + meetupColumns + " FROM meetups m WHERE " +
		strings.Join(conds, " AND ") + " ORDER BY m.scheduled_time DESC, m.id DESC"

	rows, err := s.selectMeetups(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned meetups: %w", err)
	}
	return rows, nil
}

// AcceptedMeetups returns meetups where userID accepted an invitation and that match the filter.
func (s *SQLiteStore) AcceptedMeetups(ctx context.Context, userID string, filter models.MeetupFilter) ([]models.Meetup, error) {
	conds := []string{"i.user_id = ?", "i.status = ?"}
	args := []any{userID, string(models.InvitationAccepted)}
	conds, args = appendFilter(conds, args, filter)

	query := "SELECT DISTINCT " + meetupColumns + " FROM meetups m JOIN invitations i ON i.meetup_id = m.id WHERE " +
		strings.Join(conds, " AND ") + " ORDER BY m.scheduled_time DESC, m.id DESC"

	rows, err := s.selectMeetups(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("failed to list accepted meetups: %w", err)
	}
	return rows, nil
}

func (s *SQLiteStore) selectMeetups(ctx context.Context, query string, args []any) ([]models.Meetup, error) {
	var rows []meetupRow
	if err := sqlx.SelectContext(ctx, s.db, &rows, query, args...); err != nil {
		return nil, err
	}
	return toMeetups(rows), nil
}

// appendFilter adds the status and scheduled-time conditions shared by both listing queries.
func appendFilter(conds []string, args []any, filter models.MeetupFilter) ([]string, []any) {
	if filter.Status != "" {
		conds = append(conds, "m.status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.After != nil {
		conds = append(conds, "m.scheduled_time >= ?")
		args = append(args, filter.After.Unix())
	}
	if filter.Before != nil {
		conds = append(conds, "m.scheduled_time <= ?")
		args = append(args, filter.Before.Unix())
	}
	return conds, args
}

// Roster returns every invitee of a meetup with their invitation status, in invitation order.
func (s *SQLiteStore) Roster(ctx context.Context, meetupID int64) ([]models.Member, error) {
	var members []models.Member
	err := s.db.SelectContext(ctx, &members,
		`SELECT u.id AS id, u.username AS name, i.status AS status
		 FROM invitations i
		 JOIN users u ON u.id = i.user_id
		 WHERE i.meetup_id = ?
		 ORDER BY i.id`,
		meetupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}
	return members, nil
}
