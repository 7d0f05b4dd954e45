package apiv1

import "time"

type SubmitPunctualityRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	MeetupID int64  `json:"meetup_id" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=on_time late absent"`
}

type SubmitPunctualityResponse struct {
	ID    int64 `json:"id"`
	Score int   `json:"score"`
}

type GetDashboardRequest struct{}

type GetDashboardResponse struct {
	Username string  `json:"username"`
	AvgScore float64 `json:"avg_score"`
}

// ScoreLog is one punctuality record with its meetup.
type ScoreLog struct {
	Location      string     `json:"location"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	Status        string     `json:"status"`
	Score         int        `json:"score"`
}

type ListMyScoresRequest struct{}

type ListMyScoresResponse struct {
	Logs []ScoreLog `json:"logs"`
}

// GetLeaderboardRequest ranks a group's members. Order is asc or desc (default).
type GetLeaderboardRequest struct {
	GroupID string `json:"group_id" validate:"required"`
	Order   string `json:"order,omitempty" validate:"omitempty,oneof=asc desc"`
}

type LeaderboardEntry struct {
	Username   string `json:"username"`
	TotalScore int    `json:"total_score"`
}

type GetLeaderboardResponse struct {
	GroupID string             `json:"group_id"`
	Order   string             `json:"order"`
	Scores  []LeaderboardEntry `json:"scores"`
}
