package postgres_test

import (
	"context"
	"eventbot/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testEvent(name string, date time.Time) domain.Event {
	return domain.Event{
		Name:        name,
		Description: "description of " + name,
		Date:        date,
		Status:      domain.EventStatusActive,
	}
}

func TestPgSQL_StoreEvent(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	ev, err := pgSQL.StoreEvent(ctx, testEvent("Meetup", time.Now().Add(48*time.Hour)))
	require.NoError(t, err)
	require.NotZero(t, ev.ID)
	require.Equal(t, "Meetup", ev.Name)
	require.Equal(t, domain.EventStatusActive, ev.Status)
	require.False(t, ev.CreatedAt.IsZero())
	for _, tier := range domain.ReminderTiers {
		require.False(t, ev.ReminderSent(tier))
	}
}

func TestPgSQL_ActiveEvents(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	later, err := pgSQL.StoreEvent(ctx, testEvent("Later", time.Now().Add(72*time.Hour)))
	require.NoError(t, err)
	sooner, err := pgSQL.StoreEvent(ctx, testEvent("Sooner", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)
	done, err := pgSQL.StoreEvent(ctx, testEvent("Done", time.Now().Add(time.Hour)))
	require.NoError(t, err)
	require.NoError(t, pgSQL.CompleteEvent(ctx, done.ID))

	events, err := pgSQL.ActiveEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	// ordered by start time
	require.Equal(t, sooner.ID, events[0].ID)
	require.Equal(t, later.ID, events[1].ID)
}

func TestPgSQL_EventsWithAnswers(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	_, err := pgSQL.EnsureUser(ctx, domain.User{ID: 500})
	require.NoError(t, err)

	// event with question and answer
	withAnswers, err := pgSQL.StoreEvent(ctx, testEvent("Answered", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)
	qs, err := pgSQL.StoreQuestions(ctx, domain.Question{EventID: withAnswers.ID, Text: "Name?", Position: 1})
	require.NoError(t, err)
	require.NoError(t, pgSQL.StoreRegistration(ctx, domain.Registration{UserID: 500, EventID: withAnswers.ID}))
	require.NoError(t, pgSQL.StoreAnswers(ctx, domain.Answer{
		UserID:     500,
		EventID:    withAnswers.ID,
		QuestionID: qs[0].ID,
		Text:       "Alice",
	}))

	// event with question but no answers
	questionsOnly, err := pgSQL.StoreEvent(ctx, testEvent("Unanswered", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)
	_, err = pgSQL.StoreQuestions(ctx, domain.Question{EventID: questionsOnly.ID, Text: "Name?", Position: 1})
	require.NoError(t, err)

	// event with nothing
	_, err = pgSQL.StoreEvent(ctx, testEvent("Bare", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)

	events, err := pgSQL.EventsWithAnswers(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, withAnswers.ID, events[0].ID)
}

func TestPgSQL_DeleteEvent(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	ev, err := pgSQL.StoreEvent(ctx, testEvent("Doomed", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)
	_, err = pgSQL.StoreQuestions(ctx, domain.Question{EventID: ev.ID, Text: "Q?", Position: 1})
	require.NoError(t, err)

	ok, err := pgSQL.DeleteEvent(ctx, ev.ID)
	require.NoError(t, err)
	require.True(t, ok)

	fetched, err := pgSQL.EventByID(ctx, ev.ID)
	require.NoError(t, err)
	require.Nil(t, fetched)

	// questions cascade
	questions, err := pgSQL.QuestionsByEvent(ctx, ev.ID)
	require.NoError(t, err)
	require.Empty(t, questions)

	ok, err = pgSQL.DeleteEvent(ctx, ev.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPgSQL_SetWelcomeVideo(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	ev, err := pgSQL.StoreEvent(ctx, testEvent("Video", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)

	ok, err := pgSQL.SetWelcomeVideo(ctx, ev.ID, "file-id-123")
	require.NoError(t, err)
	require.True(t, ok)

	fetched, err := pgSQL.EventByID(ctx, ev.ID)
	require.NoError(t, err)
	require.Equal(t, "file-id-123", fetched.WelcomeVideoID)

	ok, err = pgSQL.SetWelcomeVideo(ctx, 999999, "file-id-123")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPgSQL_MarkReminderSent(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	ev, err := pgSQL.StoreEvent(ctx, testEvent("Reminded", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)

	require.NoError(t, pgSQL.MarkReminderSent(ctx, ev.ID, domain.ReminderTierDay))
	require.NoError(t, pgSQL.MarkReminderSent(ctx, ev.ID, domain.ReminderTierHour))

	fetched, err := pgSQL.EventByID(ctx, ev.ID)
	require.NoError(t, err)
	require.True(t, fetched.ReminderSent(domain.ReminderTierDay))
	require.True(t, fetched.ReminderSent(domain.ReminderTierHour))
	require.False(t, fetched.ReminderSent(domain.ReminderTierWeek))

	err = pgSQL.MarkReminderSent(ctx, ev.ID, domain.ReminderTier("bogus"))
	require.Error(t, err)
}

func TestPgSQL_Questions(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	ev, err := pgSQL.StoreEvent(ctx, testEvent("Quiz", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)

	stored, err := pgSQL.StoreQuestions(ctx,
		domain.Question{EventID: ev.ID, Text: "Second?", Position: 2},
		domain.Question{EventID: ev.ID, Text: "First?", Position: 1},
	)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	questions, err := pgSQL.QuestionsByEvent(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	// ordered by position
	require.Equal(t, "First?", questions[0].Text)
	require.Equal(t, "Second?", questions[1].Text)

	ok, err := pgSQL.UpdateQuestion(ctx, questions[0].ID, "First, really?")
	require.NoError(t, err)
	require.True(t, ok)

	q, err := pgSQL.QuestionByID(ctx, questions[0].ID)
	require.NoError(t, err)
	require.Equal(t, "First, really?", q.Text)

	ok, err = pgSQL.UpdateQuestion(ctx, 999999, "nope")
	require.NoError(t, err)
	require.False(t, ok)

	// empty insert is a no-op
	none, err := pgSQL.StoreQuestions(ctx)
	require.NoError(t, err)
	require.Empty(t, none)
}
