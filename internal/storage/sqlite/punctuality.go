package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wodomi/HomiMeet-FullApp/internal/models"
)

// RecordPunctuality persists a punctuality log and assigns its ID.
func (s *SQLiteStore) RecordPunctuality(ctx context.Context, log *models.PunctualityLog) error {
	if log.CreatedAt == 0 {
		log.CreatedAt = time.Now().Unix()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO punctuality_logs (user_id, meetup_id, status, score, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		log.UserID, log.MeetupID, string(log.Status), log.Score, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert punctuality log: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read punctuality log id: %w", err)
	}
	log.ID = id
	return nil
}

// AverageScore returns the mean score across all of a user's logs.
func (s *SQLiteStore) AverageScore(ctx context.Context, userID string) (float64, error) {
	var avg sql.NullFloat64
	err := s.db.GetContext(ctx, &avg, "SELECT AVG(score) FROM punctuality_logs WHERE user_id = ?", userID)
	if err != nil {
		return 0, fmt.Errorf("failed to average scores: %w", err)
	}
	return avg.Float64, nil
}

// ScoresForUser lists a user's punctuality logs with their meetups, latest meetup first.
func (s *SQLiteStore) ScoresForUser(ctx context.Context, userID string) ([]models.ScoreEntry, error) {
	var rows []struct {
		Location    string        `db:"location"`
		ScheduledAt sql.NullInt64 `db:"scheduled_time"`
		Status      string        `db:"status"`
		Score       int           `db:"score"`
	}
	err := s.db.SelectContext(ctx, &rows,
		`SELECT m.location, m.scheduled_time, p.status, p.score
		 FROM punctuality_logs p
		 JOIN meetups m ON m.id = p.meetup_id
		 WHERE p.user_id = ?
		 ORDER BY m.scheduled_time DESC, p.id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}

	entries := make([]models.ScoreEntry, len(rows))
	for i, r := range rows {
		entries[i] = models.ScoreEntry{
			Location:    r.Location,
			ScheduledAt: fromUnix(r.ScheduledAt),
			Status:      models.PunctualityStatus(r.Status),
			Score:       r.Score,
		}
	}
	return entries, nil
}

// Leaderboard sums scores per user over the group's meetups.
func (s *SQLiteStore) Leaderboard(ctx context.Context, groupID string, ascending bool) ([]models.LeaderboardEntry, error) {
	order := "DESC"
	if ascending {
		order = "ASC"
	}

	var entries []models.LeaderboardEntry
	err := s.db.SelectContext(ctx, &entries,
		`SELECT u.username, SUM(p.score) AS total_score
		 FROM punctuality_logs p
		 JOIN users u ON u.id = p.user_id
		 JOIN meetups m ON m.id = p.meetup_id
		 WHERE m.group_id = ?
		 GROUP BY p.user_id, u.username
		 ORDER BY total_score `+order+`, u.username ASC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build leaderboard: %w", err)
	}
	return entries, nil
}
