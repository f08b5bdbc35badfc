package postgres_test

import (
	"context"
	"eventbot/pkg/domain"
	"eventbot/pkg/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreRegistration(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	_, err := pgSQL.EnsureUser(ctx, domain.User{ID: 100, FirstName: "Alice"})
	require.NoError(t, err)
	ev, err := pgSQL.StoreEvent(ctx, testEvent("Party", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)

	require.NoError(t, pgSQL.StoreRegistration(ctx, domain.Registration{UserID: 100, EventID: ev.ID}))

	exists, err := pgSQL.RegistrationExists(ctx, 100, ev.ID)
	require.NoError(t, err)
	require.True(t, exists)

	// second registration for the same event is a duplicate
	err = pgSQL.StoreRegistration(ctx, domain.Registration{UserID: 100, EventID: ev.ID})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	exists, err = pgSQL.RegistrationExists(ctx, 101, ev.ID)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestPgSQL_AttendeesAndRegisteredUserIDs(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	_, err := pgSQL.EnsureUser(ctx, domain.User{ID: 200, FirstName: "Alice", LastName: "Smith"})
	require.NoError(t, err)
	_, err = pgSQL.EnsureUser(ctx, domain.User{ID: 201, FirstName: "Bob"})
	require.NoError(t, err)
	ev, err := pgSQL.StoreEvent(ctx, testEvent("Workshop", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)

	require.NoError(t, pgSQL.StoreRegistration(ctx, domain.Registration{UserID: 200, EventID: ev.ID}))
	require.NoError(t, pgSQL.StoreRegistration(ctx, domain.Registration{UserID: 201, EventID: ev.ID}))

	attendees, err := pgSQL.Attendees(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, attendees, 2)
	require.Equal(t, "Alice", attendees[0].FirstName)
	require.Equal(t, "Smith", attendees[0].LastName)

	ids, err := pgSQL.RegisteredUserIDs(ctx, ev.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.UserID{200, 201}, ids)
}

func TestPgSQL_Answers(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	_, err := pgSQL.EnsureUser(ctx, domain.User{ID: 300, FirstName: "Carol"})
	require.NoError(t, err)
	ev, err := pgSQL.StoreEvent(ctx, testEvent("Survey", time.Now().Add(24*time.Hour)))
	require.NoError(t, err)
	questions, err := pgSQL.StoreQuestions(ctx,
		domain.Question{EventID: ev.ID, Text: "Name?", Position: 1},
		domain.Question{EventID: ev.ID, Text: "Diet?", Position: 2},
	)
	require.NoError(t, err)
	require.NoError(t, pgSQL.StoreRegistration(ctx, domain.Registration{UserID: 300, EventID: ev.ID}))

	require.NoError(t, pgSQL.StoreAnswers(ctx,
		domain.Answer{UserID: 300, EventID: ev.ID, QuestionID: questions[1].ID, Text: "Vegan"},
		domain.Answer{UserID: 300, EventID: ev.ID, QuestionID: questions[0].ID, Text: "Carol"},
	))

	rows, err := pgSQL.AnswersByEvent(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// ordered by question position
	require.Equal(t, "Name?", rows[0].Question)
	require.Equal(t, "Carol", rows[0].Answer)
	require.Equal(t, "Diet?", rows[1].Question)
	require.Equal(t, "Vegan", rows[1].Answer)

	// empty insert is a no-op
	require.NoError(t, pgSQL.StoreAnswers(ctx))
}
