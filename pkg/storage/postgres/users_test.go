package postgres_test

import (
	"context"
	"eventbot/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_EnsureUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("inserts new user", func(t *testing.T) {
		u, err := pgSQL.EnsureUser(ctx, domain.User{
			ID:        1001,
			FirstName: "Alice",
			LastName:  "Smith",
		})
		require.NoError(t, err)
		require.NotNil(t, u)
		require.Equal(t, domain.UserID(1001), u.ID)
		require.Equal(t, "Alice", u.FirstName)
		require.False(t, u.IsAdmin)
		require.False(t, u.CreatedAt.IsZero())
	})

	t.Run("existing user keeps stored fields", func(t *testing.T) {
		_, err := pgSQL.EnsureUser(ctx, domain.User{ID: 1002, FirstName: "Bob"})
		require.NoError(t, err)

		u, err := pgSQL.EnsureUser(ctx, domain.User{ID: 1002, FirstName: "Robert"})
		require.NoError(t, err)
		require.NotNil(t, u)
		require.Equal(t, "Bob", u.FirstName)
	})
}

func TestPgSQL_UserByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	_, err := pgSQL.EnsureUser(ctx, domain.User{ID: 42, FirstName: "Carol"})
	require.NoError(t, err)

	u, err := pgSQL.UserByID(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, "Carol", u.FirstName)

	missing, err := pgSQL.UserByID(ctx, 999999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_SetAdmin(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("promotes existing user", func(t *testing.T) {
		_, err := pgSQL.EnsureUser(ctx, domain.User{ID: 2001, FirstName: "Dave"})
		require.NoError(t, err)

		require.NoError(t, pgSQL.SetAdmin(ctx, 2001, "hash-1"))

		u, err := pgSQL.UserByID(ctx, 2001)
		require.NoError(t, err)
		require.True(t, u.IsAdmin)
		require.Equal(t, "hash-1", u.PasswordHash)
		require.Equal(t, "Dave", u.FirstName)
	})

	t.Run("creates row for unknown user", func(t *testing.T) {
		require.NoError(t, pgSQL.SetAdmin(ctx, 2002, "hash-2"))

		u, err := pgSQL.UserByID(ctx, 2002)
		require.NoError(t, err)
		require.NotNil(t, u)
		require.True(t, u.IsAdmin)
	})
}

func TestPgSQL_UpdatePasswordHash(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	require.NoError(t, pgSQL.SetAdmin(ctx, 3001, "old-hash"))

	t.Run("updates admin", func(t *testing.T) {
		ok, err := pgSQL.UpdatePasswordHash(ctx, 3001, "new-hash")
		require.NoError(t, err)
		require.True(t, ok)

		u, err := pgSQL.UserByID(ctx, 3001)
		require.NoError(t, err)
		require.Equal(t, "new-hash", u.PasswordHash)
	})

	t.Run("refuses non-admin", func(t *testing.T) {
		_, err := pgSQL.EnsureUser(ctx, domain.User{ID: 3002})
		require.NoError(t, err)

		ok, err := pgSQL.UpdatePasswordHash(ctx, 3002, "new-hash")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("refuses unknown user", func(t *testing.T) {
		ok, err := pgSQL.UpdatePasswordHash(ctx, 999999, "new-hash")
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestPgSQL_AllUserIDsAndAdmins(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	_, err := pgSQL.EnsureUser(ctx, domain.User{ID: 1})
	require.NoError(t, err)
	_, err = pgSQL.EnsureUser(ctx, domain.User{ID: 2})
	require.NoError(t, err)
	require.NoError(t, pgSQL.SetAdmin(ctx, 3, "hash"))

	ids, err := pgSQL.AllUserIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.UserID{1, 2, 3}, ids)

	admins, err := pgSQL.Admins(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	require.Equal(t, domain.UserID(3), admins[0].ID)
}
