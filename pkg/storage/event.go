package storage

import (
	"context"
	"eventbot/pkg/domain"
)

// EventStorage defines persistence operations for events and their
// questionnaire questions.
type EventStorage interface {
	// StoreEvent inserts a new event and returns the stored row including
	// generated fields.
	StoreEvent(ctx context.Context, event domain.Event) (*domain.Event, error)
	// EventByID fetches an event by ID. Returns nil when not found.
	EventByID(ctx context.Context, id domain.EventID) (*domain.Event, error)
	// ActiveEvents returns all events in the active state ordered by date.
	ActiveEvents(ctx context.Context) ([]domain.Event, error)
	// EventsWithAnswers returns active events that have at least one question
	// and at least one recorded answer. Used as the export source list.
	EventsWithAnswers(ctx context.Context) ([]domain.Event, error)
	// DeleteEvent removes an event; questions, registrations and answers
	// cascade. Returns false when the event does not exist.
	DeleteEvent(ctx context.Context, id domain.EventID) (bool, error)
	// SetWelcomeVideo stores the Telegram file ID of the event's welcome
	// video. Returns false when the event does not exist.
	SetWelcomeVideo(ctx context.Context, id domain.EventID, fileID string) (bool, error)
	// MarkReminderSent flips the sent flag of the given reminder tier. Flags
	// are monotonic: there is no way to clear them.
	MarkReminderSent(ctx context.Context, id domain.EventID, tier domain.ReminderTier) error
	// CompleteEvent transitions an event from active to completed.
	CompleteEvent(ctx context.Context, id domain.EventID) error

	// StoreQuestions inserts questions and returns the stored rows.
	StoreQuestions(ctx context.Context, questions ...domain.Question) ([]domain.Question, error)
	// QuestionsByEvent returns the event's questions ordered by position.
	QuestionsByEvent(ctx context.Context, eventID domain.EventID) ([]domain.Question, error)
	// QuestionByID fetches a question by ID. Returns nil when not found.
	QuestionByID(ctx context.Context, id domain.QuestionID) (*domain.Question, error)
	// UpdateQuestion replaces the text of a question. Returns false when the
	// question does not exist.
	UpdateQuestion(ctx context.Context, id domain.QuestionID, text string) (bool, error)
}
