package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wodomi/HomiMeet-FullApp/internal/models"
)

const userColumns = "id, username, password_hash, created_at, updated_at"

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByUsername retrieves a user by their username.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := s.db.GetContext(ctx, user, "SELECT "+userColumns+" FROM users WHERE username = ?", username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	err := s.db.GetContext(ctx, user, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// ListOtherUsers returns every user except exceptID, for invitee pickers.
func (s *SQLiteStore) ListOtherUsers(ctx context.Context, exceptID string) ([]models.UserRef, error) {
	var users []models.UserRef
	err := s.db.SelectContext(ctx, &users,
		"SELECT id, username FROM users WHERE id != ? ORDER BY username",
		exceptID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// DisplayName resolves a user's display name. ok is false when the user does not exist.
func (s *SQLiteStore) DisplayName(ctx context.Context, userID string) (string, bool, error) {
	var name string
	err := s.db.GetContext(ctx, &name, "SELECT username FROM users WHERE id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get display name: %w", err)
	}
	return name, true, nil
}
