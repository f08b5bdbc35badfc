package organizer

import (
	"context"
	"eventbot/pkg/domain"
)

// EventDraft carries everything an admin collected while composing a new
// event: the event fields plus the questionnaire question texts in order.
type EventDraft struct {
	Name        string
	Description string
	Date        string
	Time        string
	Questions   []string
}

// CancelledEvent is the result of cancelling an event: the removed event plus
// the users that have to be notified about the cancellation.
type CancelledEvent struct {
	Event       domain.Event
	Registrants []domain.UserID
	Admins      []domain.UserID
}

//go:generate mockgen -package mockorganizer -source=interface.go -destination=mock/mockorganizer.go *
type Organizer interface {
	// EnsureUser records the user on first contact and returns the stored row.
	EnsureUser(ctx context.Context, user domain.User) (*domain.User, error)
	// IsAdmin reports whether the user carries the admin flag.
	IsAdmin(ctx context.Context, id domain.UserID) (bool, error)
	// AuthenticateAdmin checks the admin password of the given user.
	AuthenticateAdmin(ctx context.Context, id domain.UserID, password string) error
	// AddAdmin promotes a user to admin with the given plaintext password.
	AddAdmin(ctx context.Context, id domain.UserID, password string) error
	// ChangePassword replaces the admin password of the given user.
	ChangePassword(ctx context.Context, id domain.UserID, newPassword string) error
	// AllUserIDs returns every user known to the bot.
	AllUserIDs(ctx context.Context) ([]domain.UserID, error)
	// AdminIDs returns the IDs of all admins.
	AdminIDs(ctx context.Context) ([]domain.UserID, error)

	// CreateEvent stores a new event together with its questionnaire.
	CreateEvent(ctx context.Context, draft EventDraft) (*domain.Event, error)
	// ActiveEvents returns upcoming events, served from a short-lived cache.
	ActiveEvents(ctx context.Context) ([]domain.Event, error)
	// EventByID fetches a single event.
	EventByID(ctx context.Context, id domain.EventID) (*domain.Event, error)
	// CancelEvent removes an event and returns the audience that has to be
	// told about it.
	CancelEvent(ctx context.Context, id domain.EventID) (*CancelledEvent, error)
	// SetWelcomeVideo attaches a welcome video to an event.
	SetWelcomeVideo(ctx context.Context, id domain.EventID, fileID string) error
	// Questions returns the event's questionnaire in order.
	Questions(ctx context.Context, eventID domain.EventID) ([]domain.Question, error)
	// Question returns a single questionnaire question.
	Question(ctx context.Context, id domain.QuestionID) (*domain.Question, error)
	// AddQuestions appends questions to an event's questionnaire.
	AddQuestions(ctx context.Context, eventID domain.EventID, texts []string) error
	// ReplaceQuestion rewrites the text of an existing question.
	ReplaceQuestion(ctx context.Context, id domain.QuestionID, text string) error
	// EventsWithAnswers lists events that have answers to export.
	EventsWithAnswers(ctx context.Context) ([]domain.Event, error)

	// Register signs the user up for an event and records their questionnaire
	// answers in a single unit of work.
	Register(ctx context.Context, userID domain.UserID, eventID domain.EventID, answers []domain.Answer) error
	// IsRegistered reports whether the user already signed up for the event.
	IsRegistered(ctx context.Context, userID domain.UserID, eventID domain.EventID) (bool, error)
	// Attendees returns who signed up for the event.
	Attendees(ctx context.Context, eventID domain.EventID) ([]domain.Attendee, error)
	// RegisteredUserIDs returns the IDs of users signed up for the event.
	RegisteredUserIDs(ctx context.Context, eventID domain.EventID) ([]domain.UserID, error)
	// AnswersForEvent returns the questionnaire answers for the export.
	AnswersForEvent(ctx context.Context, eventID domain.EventID) ([]domain.QuestionAnswer, error)

	// Setting returns the value of a system setting, served from cache.
	Setting(ctx context.Context, key string) (string, error)
	// UpdateSetting replaces a setting value.
	UpdateSetting(ctx context.Context, key, value string) error
	// SeedDefaultSettings installs the default settings on first start.
	SeedDefaultSettings(ctx context.Context) error

	// EnqueueBroadcast stores a broadcast and schedules its delivery job in a
	// single unit of work.
	EnqueueBroadcast(ctx context.Context, b domain.Broadcast) (*domain.Broadcast, error)
	// Broadcast fetches a stored broadcast, for the delivery worker.
	Broadcast(ctx context.Context, id domain.BroadcastID) (*domain.Broadcast, error)
	// FinishBroadcast marks a broadcast as delivered.
	FinishBroadcast(ctx context.Context, id domain.BroadcastID, sentCount int) error

	// MarkReminderSent records that a reminder tier went out for an event.
	MarkReminderSent(ctx context.Context, id domain.EventID, tier domain.ReminderTier) error
	// CompleteEvent closes an event whose start time has passed.
	CompleteEvent(ctx context.Context, id domain.EventID) error
}
