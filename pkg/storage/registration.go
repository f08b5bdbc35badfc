package storage

import (
	"context"
	"eventbot/pkg/domain"
)

// RegistrationStorage defines persistence operations for event registrations
// and questionnaire answers.
type RegistrationStorage interface {
	// StoreRegistration inserts a registration. Returns ErrDuplicate when the
	// user is already registered for the event.
	StoreRegistration(ctx context.Context, reg domain.Registration) error
	// RegistrationExists reports whether the user is registered for the event.
	RegistrationExists(ctx context.Context, userID domain.UserID, eventID domain.EventID) (bool, error)
	// Attendees returns display info for every user registered for the event.
	Attendees(ctx context.Context, eventID domain.EventID) ([]domain.Attendee, error)
	// RegisteredUserIDs returns the IDs of users registered for the event.
	RegisteredUserIDs(ctx context.Context, eventID domain.EventID) ([]domain.UserID, error)

	// StoreAnswers inserts questionnaire answers. The corresponding
	// registration must already exist in the same transaction.
	StoreAnswers(ctx context.Context, answers ...domain.Answer) error
	// AnswersByEvent returns all answers for the event joined with question
	// text, ordered by question position. Used for the Excel export.
	AnswersByEvent(ctx context.Context, eventID domain.EventID) ([]domain.QuestionAnswer, error)
}

// SettingStorage defines persistence operations for key/value system settings.
type SettingStorage interface {
	// Setting fetches a setting by key. Returns nil when not found.
	Setting(ctx context.Context, key string) (*domain.Setting, error)
	// PutSetting inserts or replaces a setting.
	PutSetting(ctx context.Context, setting domain.Setting) error
	// SeedSettings inserts the given settings, skipping keys that already
	// exist. Used to install defaults on first start.
	SeedSettings(ctx context.Context, defaults []domain.Setting) error
}

// BroadcastStorage defines persistence operations for queued broadcasts.
type BroadcastStorage interface {
	// StoreBroadcast inserts a pending broadcast and returns the stored row.
	StoreBroadcast(ctx context.Context, b domain.Broadcast) (*domain.Broadcast, error)
	// BroadcastByID fetches a broadcast by ID. Returns nil when not found.
	BroadcastByID(ctx context.Context, id domain.BroadcastID) (*domain.Broadcast, error)
	// MarkBroadcastSent transitions a broadcast to sent and records how many
	// users it reached.
	MarkBroadcastSent(ctx context.Context, id domain.BroadcastID, sentCount int) error
}
