package models

// Group collects meetups that share a punctuality leaderboard.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `db:"id"`

	// Name is the display name of the group (e.g., "Book Club").
	Name string `db:"name"`

	// CreatedBy is the user ID of the group's creator.
	CreatedBy string `db:"created_by"`

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64 `db:"created_at"`
}
