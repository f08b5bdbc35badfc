package domain

import "time"

// EventID uniquely identifies an event.
type EventID int64

// QuestionID uniquely identifies a questionnaire question.
type QuestionID int64

// EventStatus represents the lifecycle state of an event.
type EventStatus string

const (
	// EventStatusActive indicates the event is upcoming and open for registration.
	EventStatusActive EventStatus = "active"
	// EventStatusCompleted indicates the event start time has passed and the
	// reminder sweep has closed it.
	EventStatusCompleted EventStatus = "completed"
)

// ReminderTier identifies one of the fixed reminder slots sent before an
// event starts. Each tier is sent at most once per event.
type ReminderTier string

const (
	ReminderTierWeek     ReminderTier = "week"
	ReminderTier3Days    ReminderTier = "3days"
	ReminderTierDay      ReminderTier = "day"
	ReminderTierHours    ReminderTier = "hours"
	ReminderTierHour     ReminderTier = "hour"
)

// ReminderTiers lists all tiers in decreasing lead-time order.
var ReminderTiers = []ReminderTier{
	ReminderTierWeek,
	ReminderTier3Days,
	ReminderTierDay,
	ReminderTierHours,
	ReminderTierHour,
}

// Event represents a single organized event users can register for.
type Event struct {
	// ID is the unique identifier of the event.
	ID EventID `json:"id"`
	// Name is a short human-readable title.
	Name string `json:"name"`
	// Description is the long-form description shown to users.
	Description string `json:"description"`
	// Date is the scheduled start time.
	Date time.Time `json:"date"`
	// Status is the current lifecycle state.
	Status EventStatus `json:"status"`

	// RemindersSent tracks which reminder tiers have already been delivered.
	RemindersSent map[ReminderTier]bool `json:"remindersSent"`

	// WelcomeVideoID is the Telegram file ID of the video sent to users after
	// they finish registration. Empty when no video is configured.
	WelcomeVideoID string `json:"welcomeVideoId"`

	// CreatedAt is the time the event was created.
	CreatedAt time.Time `json:"createdAt"`
}

// ReminderSent reports whether the given tier was already delivered for this
// event. A nil RemindersSent map means nothing was sent yet.
func (e Event) ReminderSent(tier ReminderTier) bool {
	return e.RemindersSent[tier]
}

// Question is a single questionnaire question attached to an event. Questions
// are asked in Position order during registration.
type Question struct {
	ID       QuestionID `json:"id"`
	EventID  EventID    `json:"eventId"`
	Text     string     `json:"text"`
	Position int        `json:"position"`
}

// Registration links a user to an event they signed up for.
type Registration struct {
	UserID       UserID    `json:"userId"`
	EventID      EventID   `json:"eventId"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// Answer is a user's reply to one questionnaire question, recorded under the
// user's registration for the event.
type Answer struct {
	ID         int64      `json:"id"`
	UserID     UserID     `json:"userId"`
	EventID    EventID    `json:"eventId"`
	QuestionID QuestionID `json:"questionId"`
	Text       string     `json:"text"`
}

// Attendee is a registered user's display info, used for registration lists.
type Attendee struct {
	UserID    UserID `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// QuestionAnswer is one row of the answers export: a user's reply to a single
// question. Rows are ordered by question position.
type QuestionAnswer struct {
	UserID   UserID `json:"userId"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Setting is a key/value system setting editable by admins (start message,
// welcome video, admin help text).
type Setting struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Well-known setting keys seeded on first start.
const (
	SettingWelcomeVideoID   = "VIDEO_FILE_ID"
	SettingStartMessage     = "START_MESSAGE"
	SettingWelcomeMessage   = "WELCOME_MESSAGE"
	SettingAdminCommandsTxt = "ADMIN_COMMANDS_TEXT"
)
