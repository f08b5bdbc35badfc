package postgres

import (
	"database/sql"
	"eventbot/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgUser struct {
	ID           int64          `db:"user_id"`
	FirstName    sql.NullString `db:"first_name"`
	LastName     sql.NullString `db:"last_name"`
	IsAdmin      bool           `db:"is_admin"`
	PasswordHash sql.NullString `db:"password_hash"`
	CreatedAt    time.Time      `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		FirstName:    p.FirstName.String,
		LastName:     p.LastName.String,
		IsAdmin:      p.IsAdmin,
		PasswordHash: p.PasswordHash.String,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           int64(user.ID),
		FirstName:    nullString(user.FirstName),
		LastName:     nullString(user.LastName),
		IsAdmin:      user.IsAdmin,
		PasswordHash: nullString(user.PasswordHash),
		CreatedAt:    user.CreatedAt,
	}
}

type PgEvent struct {
	ID             int64          `db:"id"               goqu:"skipinsert"`
	Name           string         `db:"name"`
	Description    string         `db:"description"`
	EventDate      time.Time      `db:"event_date"`
	Status         string         `db:"status"`
	ReminderWeek   bool           `db:"reminder_week"    goqu:"skipinsert"`
	Reminder3Days  bool           `db:"reminder_3days"   goqu:"skipinsert"`
	ReminderDay    bool           `db:"reminder_day"     goqu:"skipinsert"`
	ReminderHours  bool           `db:"reminder_hours"   goqu:"skipinsert"`
	ReminderHour   bool           `db:"reminder_hour"    goqu:"skipinsert"`
	WelcomeVideoID sql.NullString `db:"welcome_video_id" goqu:"skipinsert"`
	CreatedAt      time.Time      `db:"created_at"       goqu:"skipinsert"`
}

// reminderColumns maps reminder tiers to their event table columns.
var reminderColumns = map[domain.ReminderTier]string{
	domain.ReminderTierWeek:  "reminder_week",
	domain.ReminderTier3Days: "reminder_3days",
	domain.ReminderTierDay:   "reminder_day",
	domain.ReminderTierHours: "reminder_hours",
	domain.ReminderTierHour:  "reminder_hour",
}

func (p *PgEvent) ToDomain() *domain.Event {
	return &domain.Event{
		ID:          domain.EventID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Date:        p.EventDate,
		Status:      domain.EventStatus(p.Status),
		RemindersSent: map[domain.ReminderTier]bool{
			domain.ReminderTierWeek:  p.ReminderWeek,
			domain.ReminderTier3Days: p.Reminder3Days,
			domain.ReminderTierDay:   p.ReminderDay,
			domain.ReminderTierHours: p.ReminderHours,
			domain.ReminderTierHour:  p.ReminderHour,
		},
		WelcomeVideoID: p.WelcomeVideoID.String,
		CreatedAt:      p.CreatedAt,
	}
}

func (p *PgEvent) FromDomain(event domain.Event) {
	*p = PgEvent{
		ID:             int64(event.ID),
		Name:           event.Name,
		Description:    event.Description,
		EventDate:      event.Date,
		Status:         string(event.Status),
		ReminderWeek:   event.ReminderSent(domain.ReminderTierWeek),
		Reminder3Days:  event.ReminderSent(domain.ReminderTier3Days),
		ReminderDay:    event.ReminderSent(domain.ReminderTierDay),
		ReminderHours:  event.ReminderSent(domain.ReminderTierHours),
		ReminderHour:   event.ReminderSent(domain.ReminderTierHour),
		WelcomeVideoID: nullString(event.WelcomeVideoID),
		CreatedAt:      event.CreatedAt,
	}
}

func pgEventsToDomain(events []PgEvent) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	for i := range events {
		out = append(out, *events[i].ToDomain())
	}

	return out
}

type PgQuestion struct {
	ID       int64  `db:"id"       goqu:"skipinsert"`
	EventID  int64  `db:"event_id"`
	Text     string `db:"question_text"`
	Position int    `db:"position"`
}

func (p *PgQuestion) ToDomain() *domain.Question {
	return &domain.Question{
		ID:       domain.QuestionID(p.ID),
		EventID:  domain.EventID(p.EventID),
		Text:     p.Text,
		Position: p.Position,
	}
}

func (p *PgQuestion) FromDomain(q domain.Question) {
	*p = PgQuestion{
		ID:       int64(q.ID),
		EventID:  int64(q.EventID),
		Text:     q.Text,
		Position: q.Position,
	}
}

type PgRegistration struct {
	UserID       int64     `db:"user_id"`
	EventID      int64     `db:"event_id"`
	RegisteredAt time.Time `db:"registration_date" goqu:"skipinsert"`
}

type PgAnswer struct {
	ID         int64  `db:"id" goqu:"skipinsert"`
	UserID     int64  `db:"user_id"`
	EventID    int64  `db:"event_id"`
	QuestionID int64  `db:"question_id"`
	Text       string `db:"answer_text"`
}

type PgSetting struct {
	Key         string         `db:"key"`
	Value       sql.NullString `db:"value"`
	Description sql.NullString `db:"description"`
}

func (p *PgSetting) ToDomain() *domain.Setting {
	return &domain.Setting{
		Key:         p.Key,
		Value:       p.Value.String,
		Description: p.Description.String,
	}
}

type PgBroadcast struct {
	ID        uuid.UUID    `db:"id"         goqu:"skipinsert"`
	MediaType string       `db:"media_type"`
	Text      string       `db:"text"`
	MediaID   string       `db:"media_id"`
	Status    string       `db:"status"`
	SentCount int          `db:"sent_count" goqu:"skipinsert"`
	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	SentAt    sql.NullTime `db:"sent_at"    goqu:"skipinsert"`
}

func (p *PgBroadcast) ToDomain() *domain.Broadcast {
	return &domain.Broadcast{
		ID:        domain.BroadcastID(p.ID),
		Kind:      domain.MediaKind(p.MediaType),
		Text:      p.Text,
		MediaID:   p.MediaID,
		Status:    domain.BroadcastStatus(p.Status),
		SentCount: p.SentCount,
		CreatedAt: p.CreatedAt,
		SentAt:    p.SentAt.Time,
	}
}

func (p *PgBroadcast) FromDomain(b domain.Broadcast) {
	*p = PgBroadcast{
		ID:        uuid.UUID(b.ID),
		MediaType: string(b.Kind),
		Text:      b.Text,
		MediaID:   b.MediaID,
		Status:    string(b.Status),
		SentCount: b.SentCount,
		CreatedAt: b.CreatedAt,
		SentAt: sql.NullTime{
			Time:  b.SentAt,
			Valid: !b.SentAt.IsZero(),
		},
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
