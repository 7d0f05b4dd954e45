package models

import "time"

// PunctualityStatus is how a user arrived at a meetup.
type PunctualityStatus string

const (
	PunctualityOnTime PunctualityStatus = "on_time"
	PunctualityLate   PunctualityStatus = "late"
	PunctualityAbsent PunctualityStatus = "absent"
)

// Score returns the leaderboard points for a status. Unknown statuses score zero.
func (s PunctualityStatus) Score() int {
	switch s {
	case PunctualityOnTime:
		return 3
	case PunctualityLate:
		return -1
	case PunctualityAbsent:
		return -3
	default:
		return 0
	}
}

// PunctualityLog is one recorded outcome for one user at one meetup.
type PunctualityLog struct {
	ID        int64
	UserID    string
	MeetupID  int64
	Status    PunctualityStatus
	Score     int
	CreatedAt int64
}

// ScoreEntry is a user's punctuality log joined with the meetup it belongs to.
type ScoreEntry struct {
	Location    string
	ScheduledAt time.Time
	Status      PunctualityStatus
	Score       int
}

// LeaderboardEntry is one user's total score within a group.
type LeaderboardEntry struct {
	Username   string `db:"username"`
	TotalScore int    `db:"total_score"`
}
