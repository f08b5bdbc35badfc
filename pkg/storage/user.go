package storage

import (
	"context"
	"eventbot/pkg/domain"
)

// UserStorage defines persistence operations for Telegram users and admins.
type UserStorage interface {
	// EnsureUser inserts the user if it does not exist yet and returns the
	// stored row. Name fields of an existing user are left untouched.
	EnsureUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID fetches a user by Telegram ID. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// SetAdmin promotes an existing user to admin (or creates the row) and
	// stores the given bcrypt password hash.
	SetAdmin(ctx context.Context, id domain.UserID, passwordHash string) error
	// UpdatePasswordHash replaces the password hash of an existing admin.
	// Returns false when the user does not exist or is not an admin.
	UpdatePasswordHash(ctx context.Context, id domain.UserID, passwordHash string) (bool, error)
	// AllUserIDs returns the Telegram IDs of every known user.
	AllUserIDs(ctx context.Context) ([]domain.UserID, error)
	// Admins returns all users with the admin flag set.
	Admins(ctx context.Context) ([]domain.User, error)
}
