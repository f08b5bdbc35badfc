// Package organizer implements the event management service: events and their
// questionnaires, registrations, admins, settings and broadcast scheduling.
package organizer

import (
	"context"
	"errors"
	"eventbot/internal/config"
	"eventbot/pkg/domain"
	"eventbot/pkg/metrics"
	"eventbot/pkg/serrors"
	"eventbot/pkg/storage"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	activeEventsCacheKey = "active-events"
)

// Options configure questionnaire limits and cache lifetimes.
// These settings are typically derived from application configuration.
type Options struct {
	// MaxQuestions is the maximum number of questionnaire questions an event
	// can carry.
	MaxQuestions int
	// EventCacheTTL is how long the active event list is served from cache
	// before hitting the database again.
	EventCacheTTL time.Duration
	// SettingCacheTTL is how long setting values are served from cache.
	SettingCacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxQuestions:    cfg.Bot.MaxQuestions,
		EventCacheTTL:   cfg.Bot.EventCacheTTL,
		SettingCacheTTL: cfg.Bot.SettingCacheTTL,
	}
}

// organizer is the concrete implementation of the Organizer interface.
// It coordinates persistence with the storage layer, job enqueueing and
// read-side caching.
type organizer struct {
	// options holds runtime configuration that affects limits and caching.
	options Options
	// storage is the persistence layer used for all state.
	storage storage.Storage

	// eventCache holds the active event list under a single key.
	eventCache *ttlcache.Cache[string, []domain.Event]
	// settingCache holds setting values keyed by setting key.
	settingCache *ttlcache.Cache[string, string]
}

// defaultSettings are installed on first start and can be edited by admins
// afterwards.
var defaultSettings = []domain.Setting{
	{
		Key:         domain.SettingStartMessage,
		Value:       "Hello! Pick an event below to sign up.",
		Description: "greeting shown on /start",
	},
	{
		Key:         domain.SettingWelcomeMessage,
		Value:       "How interested are you in our events? Rate from 1 to 3:",
		Description: "poll prompt shown after the greeting",
	},
	{
		Key:         domain.SettingWelcomeVideoID,
		Value:       "",
		Description: "Telegram file ID of the video sent on /start",
	},
	{
		Key:         domain.SettingAdminCommandsTxt,
		Value:       "Available admin commands: /add_event, /cancel_event, /edit_questions, /set_welcome_video, /broadcast, /export_answers, /view_registrations, /add_admin, /change_password, /edit_settings", //nolint: lll
		Description: "command overview shown to authenticated admins",
	},
}

// EnsureUser records the user on first contact and returns the stored row.
func (o *organizer) EnsureUser(ctx context.Context, user domain.User) (*domain.User, error) {
	stored, err := o.storage.EnsureUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("could not ensure user: %w", err)
	}

	return stored, nil
}

// IsAdmin reports whether the user carries the admin flag.
func (o *organizer) IsAdmin(ctx context.Context, id domain.UserID) (bool, error) {
	user, err := o.storage.UserByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("could not get user: %w", err)
	}

	return user != nil && user.IsAdmin, nil
}

// AuthenticateAdmin checks the admin password of the given user. It returns an
// unauthorized error both for unknown users and for wrong passwords, so the
// caller cannot tell the two apart.
func (o *organizer) AuthenticateAdmin(ctx context.Context, id domain.UserID, password string) error {
	user, err := o.storage.UserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || !user.IsAdmin || !user.VerifyPassword(password) {
		return serrors.With(serrors.ErrUnauthorized, "wrong password")
	}

	return nil
}

// AddAdmin promotes a user to admin with the given plaintext password.
func (o *organizer) AddAdmin(ctx context.Context, id domain.UserID, password string) error {
	hash, err := domain.HashPassword(password)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}

	if err := o.storage.SetAdmin(ctx, id, hash); err != nil {
		return fmt.Errorf("could not set admin: %w", err)
	}

	return nil
}

// ChangePassword replaces the admin password of the given user.
func (o *organizer) ChangePassword(ctx context.Context, id domain.UserID, newPassword string) error {
	hash, err := domain.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}

	updated, err := o.storage.UpdatePasswordHash(ctx, id, hash)
	if err != nil {
		return fmt.Errorf("could not update password hash: %w", err)
	}
	if !updated {
		return serrors.With(serrors.ErrUnauthorized, "user is not an admin")
	}

	return nil
}

// AllUserIDs returns every user known to the bot.
func (o *organizer) AllUserIDs(ctx context.Context) ([]domain.UserID, error) {
	ids, err := o.storage.AllUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get user ids: %w", err)
	}

	return ids, nil
}

// AdminIDs returns the IDs of all admins.
func (o *organizer) AdminIDs(ctx context.Context) ([]domain.UserID, error) {
	admins, err := o.storage.Admins(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get admins: %w", err)
	}

	ids := make([]domain.UserID, 0, len(admins))
	for _, admin := range admins {
		ids = append(ids, admin.ID)
	}

	return ids, nil
}

// CreateEvent stores a new event together with its questionnaire in a single
// transaction and invalidates the event cache.
func (o *organizer) CreateEvent(ctx context.Context, draft EventDraft) (*domain.Event, error) {
	if draft.Name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "event name is empty")
	}
	if len(draft.Questions) > o.options.MaxQuestions {
		return nil, serrors.With(serrors.ErrBadRequest,
			"an event can carry at most %d questions", o.options.MaxQuestions)
	}

	date, err := ParseSchedule(draft.Date, draft.Time)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid event schedule")
	}
	if date.Before(time.Now()) {
		return nil, serrors.With(serrors.ErrBadRequest, "event date is in the past")
	}

	var event *domain.Event
	if err := o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreEvent(ctx, domain.Event{
			Name:        draft.Name,
			Description: draft.Description,
			Date:        date,
			Status:      domain.EventStatusActive,
		})
		if err != nil {
			return fmt.Errorf("could not store event: %w", err)
		}
		event = stored

		if len(draft.Questions) > 0 {
			questions := make([]domain.Question, 0, len(draft.Questions))
			for i, text := range draft.Questions {
				questions = append(questions, domain.Question{
					EventID:  event.ID,
					Text:     text,
					Position: i + 1,
				})
			}
			if _, err := tx.StoreQuestions(ctx, questions...); err != nil {
				return fmt.Errorf("could not store questions: %w", err)
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create event: %w", err)
	}

	o.eventCache.Delete(activeEventsCacheKey)

	return event, nil
}

// ActiveEvents returns upcoming events. The list is served from a short-lived
// cache so browsing users do not hammer the database.
func (o *organizer) ActiveEvents(ctx context.Context) ([]domain.Event, error) {
	if item := o.eventCache.Get(activeEventsCacheKey); item != nil {
		return item.Value(), nil
	}

	events, err := o.storage.ActiveEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get active events: %w", err)
	}

	o.eventCache.Set(activeEventsCacheKey, events, ttlcache.DefaultTTL)

	return events, nil
}

// EventByID fetches a single event. It returns a not-found error when no such
// event exists.
func (o *organizer) EventByID(ctx context.Context, id domain.EventID) (*domain.Event, error) {
	event, err := o.storage.EventByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get event: %w", err)
	}
	if event == nil {
		return nil, serrors.With(serrors.ErrNotFound, "event not found")
	}

	return event, nil
}

// CancelEvent removes an event and returns the registrants and admins that
// have to be told about the cancellation. Registrations and answers cascade
// away with the event.
func (o *organizer) CancelEvent(ctx context.Context, id domain.EventID) (*CancelledEvent, error) {
	var cancelled CancelledEvent
	if err := o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		event, err := tx.EventByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get event: %w", err)
		}
		if event == nil {
			return serrors.With(serrors.ErrNotFound, "event not found")
		}
		cancelled.Event = *event

		registrants, err := tx.RegisteredUserIDs(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get registrants: %w", err)
		}
		cancelled.Registrants = registrants

		admins, err := tx.Admins(ctx)
		if err != nil {
			return fmt.Errorf("could not get admins: %w", err)
		}
		for _, admin := range admins {
			cancelled.Admins = append(cancelled.Admins, admin.ID)
		}

		if _, err := tx.DeleteEvent(ctx, id); err != nil {
			return fmt.Errorf("could not delete event: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not cancel event: %w", err)
	}

	o.eventCache.Delete(activeEventsCacheKey)

	return &cancelled, nil
}

// SetWelcomeVideo attaches a welcome video to an event.
func (o *organizer) SetWelcomeVideo(ctx context.Context, id domain.EventID, fileID string) error {
	updated, err := o.storage.SetWelcomeVideo(ctx, id, fileID)
	if err != nil {
		return fmt.Errorf("could not set welcome video: %w", err)
	}
	if !updated {
		return serrors.With(serrors.ErrNotFound, "event not found")
	}

	o.eventCache.Delete(activeEventsCacheKey)

	return nil
}

// Questions returns the event's questionnaire in order.
func (o *organizer) Questions(ctx context.Context, eventID domain.EventID) ([]domain.Question, error) {
	questions, err := o.storage.QuestionsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("could not get questions: %w", err)
	}

	return questions, nil
}

// AddQuestions appends questions to the end of an existing event's
// questionnaire, keeping the total within the configured limit.
func (o *organizer) AddQuestions(ctx context.Context, eventID domain.EventID, texts []string) error {
	if len(texts) == 0 {
		return serrors.With(serrors.ErrBadRequest, "no questions given")
	}

	if err := o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		event, err := tx.EventByID(ctx, eventID)
		if err != nil {
			return fmt.Errorf("could not get event: %w", err)
		}
		if event == nil {
			return serrors.With(serrors.ErrNotFound, "event not found")
		}

		existing, err := tx.QuestionsByEvent(ctx, eventID)
		if err != nil {
			return fmt.Errorf("could not get questions: %w", err)
		}
		if len(existing)+len(texts) > o.options.MaxQuestions {
			return serrors.With(serrors.ErrBadRequest,
				"an event can carry at most %d questions", o.options.MaxQuestions)
		}

		questions := make([]domain.Question, 0, len(texts))
		for i, text := range texts {
			questions = append(questions, domain.Question{
				EventID:  eventID,
				Text:     text,
				Position: len(existing) + i + 1,
			})
		}
		if _, err := tx.StoreQuestions(ctx, questions...); err != nil {
			return fmt.Errorf("could not store questions: %w", err)
		}

		return nil
	}); err != nil {
		var serr *serrors.Error
		if errors.As(err, &serr) {
			return err
		}

		return fmt.Errorf("could not add questions: %w", err)
	}

	return nil
}

// ReplaceQuestion rewrites the text of an existing question.
// Question returns a single questionnaire question by its ID.
func (o *organizer) Question(ctx context.Context, id domain.QuestionID) (*domain.Question, error) {
	question, err := o.storage.QuestionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get question: %w", err)
	}
	if question == nil {
		return nil, serrors.With(serrors.ErrNotFound, "question not found")
	}

	return question, nil
}

func (o *organizer) ReplaceQuestion(ctx context.Context, id domain.QuestionID, text string) error {
	if text == "" {
		return serrors.With(serrors.ErrBadRequest, "question text is empty")
	}

	updated, err := o.storage.UpdateQuestion(ctx, id, text)
	if err != nil {
		return fmt.Errorf("could not update question: %w", err)
	}
	if !updated {
		return serrors.With(serrors.ErrNotFound, "question not found")
	}

	return nil
}

// EventsWithAnswers lists events that have answers to export.
func (o *organizer) EventsWithAnswers(ctx context.Context) ([]domain.Event, error) {
	events, err := o.storage.EventsWithAnswers(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get events with answers: %w", err)
	}

	return events, nil
}

// Register signs the user up for an event and records their questionnaire
// answers in a single transaction. Signing up twice yields a conflict error.
func (o *organizer) Register(ctx context.Context,
	userID domain.UserID,
	eventID domain.EventID,
	answers []domain.Answer) error {
	if err := o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		event, err := tx.EventByID(ctx, eventID)
		if err != nil {
			return fmt.Errorf("could not get event: %w", err)
		}
		if event == nil || event.Status != domain.EventStatusActive {
			return serrors.With(serrors.ErrNotFound, "event not found")
		}

		if err := tx.StoreRegistration(ctx, domain.Registration{
			UserID:  userID,
			EventID: eventID,
		}); err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.Wrap(serrors.ErrConflict, err, "already registered")
			}

			return fmt.Errorf("could not store registration: %w", err)
		}

		for i := range answers {
			answers[i].UserID = userID
			answers[i].EventID = eventID
		}
		if err := tx.StoreAnswers(ctx, answers...); err != nil {
			return fmt.Errorf("could not store answers: %w", err)
		}

		return nil
	}); err != nil {
		// keep semantic kinds visible to the handler layer
		var serr *serrors.Error
		if errors.As(err, &serr) {
			return err
		}

		return fmt.Errorf("could not register: %w", err)
	}

	metrics.Registrations.Inc()

	return nil
}

// IsRegistered reports whether the user already signed up for the event.
func (o *organizer) IsRegistered(ctx context.Context, userID domain.UserID, eventID domain.EventID) (bool, error) {
	exists, err := o.storage.RegistrationExists(ctx, userID, eventID)
	if err != nil {
		return false, fmt.Errorf("could not check registration: %w", err)
	}

	return exists, nil
}

// Attendees returns who signed up for the event.
func (o *organizer) Attendees(ctx context.Context, eventID domain.EventID) ([]domain.Attendee, error) {
	attendees, err := o.storage.Attendees(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("could not get attendees: %w", err)
	}

	return attendees, nil
}

// RegisteredUserIDs returns the IDs of users signed up for the event.
func (o *organizer) RegisteredUserIDs(ctx context.Context, eventID domain.EventID) ([]domain.UserID, error) {
	ids, err := o.storage.RegisteredUserIDs(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("could not get registered user ids: %w", err)
	}

	return ids, nil
}

// AnswersForEvent returns the questionnaire answers for the export.
func (o *organizer) AnswersForEvent(ctx context.Context, eventID domain.EventID) ([]domain.QuestionAnswer, error) {
	answers, err := o.storage.AnswersByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("could not get answers: %w", err)
	}

	return answers, nil
}

// Setting returns the value of a system setting, served from cache. Unknown
// keys yield a not-found error.
func (o *organizer) Setting(ctx context.Context, key string) (string, error) {
	if item := o.settingCache.Get(key); item != nil {
		return item.Value(), nil
	}

	setting, err := o.storage.Setting(ctx, key)
	if err != nil {
		return "", fmt.Errorf("could not get setting: %w", err)
	}
	if setting == nil {
		return "", serrors.With(serrors.ErrNotFound, "setting %q not found", key)
	}

	o.settingCache.Set(key, setting.Value, ttlcache.DefaultTTL)

	return setting.Value, nil
}

// UpdateSetting replaces a setting value and drops it from the cache.
func (o *organizer) UpdateSetting(ctx context.Context, key, value string) error {
	if err := o.storage.PutSetting(ctx, domain.Setting{Key: key, Value: value}); err != nil {
		return fmt.Errorf("could not put setting: %w", err)
	}

	o.settingCache.Delete(key)

	return nil
}

// SeedDefaultSettings installs the default settings, keeping values an admin
// already customized.
func (o *organizer) SeedDefaultSettings(ctx context.Context) error {
	if err := o.storage.SeedSettings(ctx, defaultSettings); err != nil {
		return fmt.Errorf("could not seed settings: %w", err)
	}

	return nil
}

// EnqueueBroadcast stores a broadcast row and schedules its delivery job in
// the same transaction, so a crash between the two cannot produce a broadcast
// that is never delivered or a job without a payload.
func (o *organizer) EnqueueBroadcast(ctx context.Context, b domain.Broadcast) (*domain.Broadcast, error) {
	if b.Kind == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "broadcast media kind is empty")
	}
	if b.Kind == domain.MediaKindText && b.Text == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "broadcast text is empty")
	}
	if b.Kind != domain.MediaKindText && b.MediaID == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "broadcast media id is empty")
	}
	b.Status = domain.BroadcastStatusPending

	var broadcast *domain.Broadcast
	if err := o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreBroadcast(ctx, b)
		if err != nil {
			return fmt.Errorf("could not store broadcast: %w", err)
		}
		broadcast = stored

		if _, err := tx.AddJob(ctx, BroadcastJobArgs{
			BroadcastID: broadcast.ID.String(),
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue broadcast: %w", err)
	}

	return broadcast, nil
}

// Broadcast fetches a stored broadcast, for the delivery worker.
func (o *organizer) Broadcast(ctx context.Context, id domain.BroadcastID) (*domain.Broadcast, error) {
	broadcast, err := o.storage.BroadcastByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get broadcast: %w", err)
	}
	if broadcast == nil {
		return nil, serrors.With(serrors.ErrNotFound, "broadcast not found")
	}

	return broadcast, nil
}

// FinishBroadcast marks a broadcast as delivered.
func (o *organizer) FinishBroadcast(ctx context.Context, id domain.BroadcastID, sentCount int) error {
	if err := o.storage.MarkBroadcastSent(ctx, id, sentCount); err != nil {
		return fmt.Errorf("could not mark broadcast sent: %w", err)
	}

	return nil
}

// MarkReminderSent records that a reminder tier went out for an event and
// invalidates the event cache, so the next sweep observes the flag no matter
// how the sweep interval relates to the cache TTL.
func (o *organizer) MarkReminderSent(ctx context.Context, id domain.EventID, tier domain.ReminderTier) error {
	if err := o.storage.MarkReminderSent(ctx, id, tier); err != nil {
		return fmt.Errorf("could not mark reminder sent: %w", err)
	}

	o.eventCache.Delete(activeEventsCacheKey)

	return nil
}

// CompleteEvent closes an event whose start time has passed and invalidates
// the event cache.
func (o *organizer) CompleteEvent(ctx context.Context, id domain.EventID) error {
	if err := o.storage.CompleteEvent(ctx, id); err != nil {
		return fmt.Errorf("could not complete event: %w", err)
	}

	o.eventCache.Delete(activeEventsCacheKey)

	return nil
}

// New creates a new Organizer instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Organizer {
	eventCache := ttlcache.New[string, []domain.Event](
		ttlcache.WithTTL[string, []domain.Event](options.EventCacheTTL),
		ttlcache.WithDisableTouchOnHit[string, []domain.Event](),
	)
	settingCache := ttlcache.New[string, string](
		ttlcache.WithTTL[string, string](options.SettingCacheTTL),
		ttlcache.WithDisableTouchOnHit[string, string](),
	)
	go eventCache.Start()
	go settingCache.Start()

	return &organizer{
		options:      options,
		storage:      storage,
		eventCache:   eventCache,
		settingCache: settingCache,
	}
}
