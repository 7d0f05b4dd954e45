package auth

import (
	"context"

	"github.com/wodomi/HomiMeet-FullApp/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// Services depend on this interface so the credential scheme can change
// without touching the service layer.
type Authenticator interface {
	// Register creates a new user account with the given username and credential.
	Register(ctx context.Context, username, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	Authenticate(ctx context.Context, username, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
