package organizer_test

import (
	"context"
	"testing"
	"time"

	"eventbot/internal/organizer"
	"eventbot/pkg/domain"
	"eventbot/pkg/serrors"
	"eventbot/pkg/storage"
	mockstorage "eventbot/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestOrganizer(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, organizer.Organizer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	o := organizer.New(st, organizer.Options{
		MaxQuestions:    5,
		EventCacheTTL:   time.Minute,
		SettingCacheTTL: time.Minute,
	})

	return ctrl, st, o
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			// provide a tx mock that implements AllStorage
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func futureDate(t *testing.T) (string, string, time.Time) {
	t.Helper()

	start := time.Now().AddDate(0, 1, 0)
	start = time.Date(start.Year(), start.Month(), start.Day(), 18, 30, 0, 0, time.Local)

	return start.Format(organizer.DateLayout), start.Format(organizer.TimeLayout), start
}

func TestOrganizer_CreateEvent(t *testing.T) {
	ctrl, st, o := newTestOrganizer(t)

	date, startTime, start := futureDate(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event domain.Event) (*domain.Event, error) {
				require.Equal(t, "Meetup", event.Name)
				require.Equal(t, domain.EventStatusActive, event.Status)
				require.True(t, event.Date.Equal(start))
				event.ID = 7

				return &event, nil
			},
		)
		tx.EXPECT().StoreQuestions(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, questions ...domain.Question) ([]domain.Question, error) {
				require.Len(t, questions, 2)
				require.Equal(t, domain.EventID(7), questions[0].EventID)
				require.Equal(t, 1, questions[0].Position)
				require.Equal(t, 2, questions[1].Position)

				return questions, nil
			},
		)
	})

	event, err := o.CreateEvent(context.Background(), organizer.EventDraft{
		Name:        "Meetup",
		Description: "monthly meetup",
		Date:        date,
		Time:        startTime,
		Questions:   []string{"Name?", "Diet?"},
	})
	require.NoError(t, err)
	require.Equal(t, domain.EventID(7), event.ID)
}

func TestOrganizer_CreateEvent_Validation(t *testing.T) {
	_, _, o := newTestOrganizer(t)

	date, startTime, _ := futureDate(t)

	t.Run("too many questions", func(t *testing.T) {
		_, err := o.CreateEvent(context.Background(), organizer.EventDraft{
			Name:      "Meetup",
			Date:      date,
			Time:      startTime,
			Questions: []string{"1", "2", "3", "4", "5", "6"},
		})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("past date", func(t *testing.T) {
		_, err := o.CreateEvent(context.Background(), organizer.EventDraft{
			Name: "Meetup",
			Date: "01.01.2020",
			Time: "18:30",
		})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := o.CreateEvent(context.Background(), organizer.EventDraft{
			Date: date,
			Time: startTime,
		})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("garbage date", func(t *testing.T) {
		_, err := o.CreateEvent(context.Background(), organizer.EventDraft{
			Name: "Meetup",
			Date: "tomorrow",
			Time: startTime,
		})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestOrganizer_Register(t *testing.T) {
	ctrl, st, o := newTestOrganizer(t)

	event := &domain.Event{ID: 3, Status: domain.EventStatusActive}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().EventByID(gomock.Any(), domain.EventID(3)).Return(event, nil)
		tx.EXPECT().StoreRegistration(gomock.Any(), domain.Registration{UserID: 9, EventID: 3}).Return(nil)
		tx.EXPECT().StoreAnswers(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, answers ...domain.Answer) error {
				require.Len(t, answers, 1)
				// answers are stamped with the registering user and event
				require.Equal(t, domain.UserID(9), answers[0].UserID)
				require.Equal(t, domain.EventID(3), answers[0].EventID)

				return nil
			},
		)
	})

	err := o.Register(context.Background(), 9, 3, []domain.Answer{{QuestionID: 1, Text: "Carol"}})
	require.NoError(t, err)
}

func TestOrganizer_Register_Duplicate(t *testing.T) {
	ctrl, st, o := newTestOrganizer(t)

	event := &domain.Event{ID: 3, Status: domain.EventStatusActive}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().EventByID(gomock.Any(), domain.EventID(3)).Return(event, nil)
		tx.EXPECT().StoreRegistration(gomock.Any(), gomock.Any()).Return(storage.ErrDuplicate)
	})

	err := o.Register(context.Background(), 9, 3, nil)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestOrganizer_Register_CompletedEvent(t *testing.T) {
	ctrl, st, o := newTestOrganizer(t)

	event := &domain.Event{ID: 3, Status: domain.EventStatusCompleted}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().EventByID(gomock.Any(), domain.EventID(3)).Return(event, nil)
	})

	err := o.Register(context.Background(), 9, 3, nil)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestOrganizer_EnqueueBroadcast(t *testing.T) {
	ctrl, st, o := newTestOrganizer(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreBroadcast(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b domain.Broadcast) (*domain.Broadcast, error) {
				require.Equal(t, domain.BroadcastStatusPending, b.Status)

				return &b, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	b, err := o.EnqueueBroadcast(context.Background(), domain.Broadcast{
		Kind: domain.MediaKindText,
		Text: "hello everyone",
	})
	require.NoError(t, err)
	require.Equal(t, domain.BroadcastStatusPending, b.Status)
}

func TestOrganizer_EnqueueBroadcast_Validation(t *testing.T) {
	_, _, o := newTestOrganizer(t)

	t.Run("text broadcast without text", func(t *testing.T) {
		_, err := o.EnqueueBroadcast(context.Background(), domain.Broadcast{Kind: domain.MediaKindText})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("media broadcast without file id", func(t *testing.T) {
		_, err := o.EnqueueBroadcast(context.Background(), domain.Broadcast{Kind: domain.MediaKindPhoto})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestOrganizer_AuthenticateAdmin(t *testing.T) {
	_, st, o := newTestOrganizer(t)

	hash, err := domain.HashPassword("secret")
	require.NoError(t, err)
	admin := &domain.User{ID: 1, IsAdmin: true, PasswordHash: hash}

	t.Run("correct password", func(t *testing.T) {
		st.EXPECT().UserByID(gomock.Any(), domain.UserID(1)).Return(admin, nil)
		require.NoError(t, o.AuthenticateAdmin(context.Background(), 1, "secret"))
	})

	t.Run("wrong password", func(t *testing.T) {
		st.EXPECT().UserByID(gomock.Any(), domain.UserID(1)).Return(admin, nil)
		err := o.AuthenticateAdmin(context.Background(), 1, "nope")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		st.EXPECT().UserByID(gomock.Any(), domain.UserID(2)).Return(nil, nil)
		err := o.AuthenticateAdmin(context.Background(), 2, "secret")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("non-admin user", func(t *testing.T) {
		st.EXPECT().UserByID(gomock.Any(), domain.UserID(3)).Return(&domain.User{ID: 3}, nil)
		err := o.AuthenticateAdmin(context.Background(), 3, "secret")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})
}

func TestOrganizer_ActiveEvents_Cached(t *testing.T) {
	_, st, o := newTestOrganizer(t)

	events := []domain.Event{{ID: 1, Name: "Meetup", Status: domain.EventStatusActive}}

	// the storage is hit exactly once; the second call is served from cache
	st.EXPECT().ActiveEvents(gomock.Any()).Return(events, nil).Times(1)

	first, err := o.ActiveEvents(context.Background())
	require.NoError(t, err)
	require.Equal(t, events, first)

	second, err := o.ActiveEvents(context.Background())
	require.NoError(t, err)
	require.Equal(t, events, second)
}

func TestOrganizer_MarkReminderSent_InvalidatesEventCache(t *testing.T) {
	_, st, o := newTestOrganizer(t)

	stale := []domain.Event{{ID: 1, Name: "Meetup", Status: domain.EventStatusActive}}
	fresh := []domain.Event{{
		ID:            1,
		Name:          "Meetup",
		Status:        domain.EventStatusActive,
		RemindersSent: map[domain.ReminderTier]bool{domain.ReminderTierDay: true},
	}}

	gomock.InOrder(
		st.EXPECT().ActiveEvents(gomock.Any()).Return(stale, nil),
		st.EXPECT().MarkReminderSent(gomock.Any(), domain.EventID(1), domain.ReminderTierDay).Return(nil),
		st.EXPECT().ActiveEvents(gomock.Any()).Return(fresh, nil),
	)

	_, err := o.ActiveEvents(context.Background())
	require.NoError(t, err)

	// the flag write must not be masked by a previously cached event list,
	// regardless of how the sweep interval relates to the cache TTL
	require.NoError(t, o.MarkReminderSent(context.Background(), 1, domain.ReminderTierDay))

	after, err := o.ActiveEvents(context.Background())
	require.NoError(t, err)
	require.True(t, after[0].ReminderSent(domain.ReminderTierDay))
}

func TestOrganizer_Setting(t *testing.T) {
	_, st, o := newTestOrganizer(t)

	t.Run("cached after first read", func(t *testing.T) {
		st.EXPECT().Setting(gomock.Any(), domain.SettingStartMessage).Return(&domain.Setting{
			Key:   domain.SettingStartMessage,
			Value: "hi",
		}, nil).Times(1)

		for range 2 {
			value, err := o.Setting(context.Background(), domain.SettingStartMessage)
			require.NoError(t, err)
			require.Equal(t, "hi", value)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		st.EXPECT().Setting(gomock.Any(), "MISSING").Return(nil, nil)

		_, err := o.Setting(context.Background(), "MISSING")
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("update drops cache", func(t *testing.T) {
		st.EXPECT().Setting(gomock.Any(), "KEY").Return(&domain.Setting{Key: "KEY", Value: "old"}, nil)
		value, err := o.Setting(context.Background(), "KEY")
		require.NoError(t, err)
		require.Equal(t, "old", value)

		st.EXPECT().PutSetting(gomock.Any(), domain.Setting{Key: "KEY", Value: "new"}).Return(nil)
		require.NoError(t, o.UpdateSetting(context.Background(), "KEY", "new"))

		st.EXPECT().Setting(gomock.Any(), "KEY").Return(&domain.Setting{Key: "KEY", Value: "new"}, nil)
		value, err = o.Setting(context.Background(), "KEY")
		require.NoError(t, err)
		require.Equal(t, "new", value)
	})
}

func TestOrganizer_CancelEvent(t *testing.T) {
	ctrl, st, o := newTestOrganizer(t)

	event := &domain.Event{ID: 4, Name: "Doomed", Status: domain.EventStatusActive}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().EventByID(gomock.Any(), domain.EventID(4)).Return(event, nil)
		tx.EXPECT().RegisteredUserIDs(gomock.Any(), domain.EventID(4)).Return([]domain.UserID{10, 11}, nil)
		tx.EXPECT().Admins(gomock.Any()).Return([]domain.User{{ID: 1, IsAdmin: true}}, nil)
		tx.EXPECT().DeleteEvent(gomock.Any(), domain.EventID(4)).Return(true, nil)
	})

	cancelled, err := o.CancelEvent(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, "Doomed", cancelled.Event.Name)
	require.Equal(t, []domain.UserID{10, 11}, cancelled.Registrants)
	require.Equal(t, []domain.UserID{1}, cancelled.Admins)
}

func TestOrganizer_CancelEvent_NotFound(t *testing.T) {
	ctrl, st, o := newTestOrganizer(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().EventByID(gomock.Any(), domain.EventID(999)).Return(nil, nil)
	})

	_, err := o.CancelEvent(context.Background(), 999)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestOrganizer_ChangePassword_NotAdmin(t *testing.T) {
	_, st, o := newTestOrganizer(t)

	st.EXPECT().UpdatePasswordHash(gomock.Any(), domain.UserID(5), gomock.Any()).Return(false, nil)

	err := o.ChangePassword(context.Background(), 5, "newpass")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestOrganizer_AddQuestions(t *testing.T) {
	ctrl, st, o := newTestOrganizer(t)

	event := &domain.Event{ID: 4, Name: "Meetup", Status: domain.EventStatusActive}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().EventByID(gomock.Any(), domain.EventID(4)).Return(event, nil)
		tx.EXPECT().QuestionsByEvent(gomock.Any(), domain.EventID(4)).Return([]domain.Question{
			{ID: 1, EventID: 4, Text: "Name?", Position: 1},
		}, nil)
		tx.EXPECT().StoreQuestions(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, questions ...domain.Question) ([]domain.Question, error) {
				require.Len(t, questions, 2)
				require.Equal(t, 2, questions[0].Position)
				require.Equal(t, 3, questions[1].Position)
				require.Equal(t, "Diet?", questions[0].Text)

				return questions, nil
			},
		)
	})

	err := o.AddQuestions(context.Background(), 4, []string{"Diet?", "Allergies?"})
	require.NoError(t, err)
}

func TestOrganizer_AddQuestions_LimitReached(t *testing.T) {
	ctrl, st, o := newTestOrganizer(t)

	event := &domain.Event{ID: 4, Status: domain.EventStatusActive}
	existing := make([]domain.Question, 4)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().EventByID(gomock.Any(), domain.EventID(4)).Return(event, nil)
		tx.EXPECT().QuestionsByEvent(gomock.Any(), domain.EventID(4)).Return(existing, nil)
	})

	err := o.AddQuestions(context.Background(), 4, []string{"One?", "Two?"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestOrganizer_AddQuestions_MissingEvent(t *testing.T) {
	ctrl, st, o := newTestOrganizer(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().EventByID(gomock.Any(), domain.EventID(999)).Return(nil, nil)
	})

	err := o.AddQuestions(context.Background(), 999, []string{"One?"})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestOrganizer_Question(t *testing.T) {
	_, st, o := newTestOrganizer(t)

	t.Run("found", func(t *testing.T) {
		st.EXPECT().QuestionByID(gomock.Any(), domain.QuestionID(5)).Return(&domain.Question{
			ID:   5,
			Text: "Diet?",
		}, nil)

		question, err := o.Question(context.Background(), 5)
		require.NoError(t, err)
		require.Equal(t, "Diet?", question.Text)
	})

	t.Run("missing", func(t *testing.T) {
		st.EXPECT().QuestionByID(gomock.Any(), domain.QuestionID(6)).Return(nil, nil)

		_, err := o.Question(context.Background(), 6)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}
