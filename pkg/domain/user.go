package domain

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UserID is the Telegram user identifier. Telegram guarantees it fits in a
// signed 64-bit integer.
type UserID int64

// BcryptCost is the work factor used when hashing admin passwords.
const BcryptCost = 12

// User represents a Telegram user known to the bot. Admins additionally carry
// a bcrypt password hash that gates administrative commands.
type User struct {
	// ID is the Telegram user ID.
	ID UserID `json:"id"`
	// FirstName and LastName are taken from the Telegram profile as seen at
	// first contact.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// IsAdmin marks the user as an administrator.
	IsAdmin bool `json:"isAdmin"`
	// PasswordHash is the bcrypt hash of the admin password. Empty for
	// regular users.
	PasswordHash string `json:"-"`

	// CreatedAt is the time the user first talked to the bot.
	CreatedAt time.Time `json:"createdAt"`
}

// VerifyPassword reports whether the given plaintext password matches the
// stored admin password hash.
func (u User) VerifyPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// HashPassword returns the bcrypt hash for an admin password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
