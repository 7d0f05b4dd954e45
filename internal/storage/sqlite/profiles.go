package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wodomi/HomiMeet-FullApp/internal/models"
	"github.com/wodomi/HomiMeet-FullApp/internal/storage"
)

// UpsertProfile creates or replaces the user's profile.
func (s *SQLiteStore) UpsertProfile(ctx context.Context, profile *models.Profile) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_profiles (user_id, bio) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET bio = excluded.bio`,
		profile.UserID, profile.Bio,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// GetProfile returns the user's profile, or an empty one if none was saved.
func (s *SQLiteStore) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile := &models.Profile{}
	err := s.db.GetContext(ctx, profile, "SELECT user_id, bio FROM user_profiles WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.Profile{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// UpsertLocation stores the user's latest position in a single statement.
func (s *SQLiteStore) UpsertLocation(ctx context.Context, loc *models.UserLocation) error {
	if loc.LastSeen == 0 {
		loc.LastSeen = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_locations (user_id, lat, lng, accuracy, last_seen)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
			lat = excluded.lat,
			lng = excluded.lng,
			accuracy = excluded.accuracy,
			last_seen = excluded.last_seen`,
		loc.UserID, loc.Lat, loc.Lng, nullFloat(loc.Accuracy), loc.LastSeen,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert location: %w", err)
	}
	return nil
}

// GetLocation returns the user's last reported position.
func (s *SQLiteStore) GetLocation(ctx context.Context, userID string) (*models.UserLocation, error) {
	loc := &models.UserLocation{}
	err := s.db.GetContext(ctx, loc,
		"SELECT user_id, lat, lng, accuracy, last_seen FROM user_locations WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("location for %s: %w", userID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return loc, nil
}
