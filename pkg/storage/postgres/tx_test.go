package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"eventbot/pkg/domain"
	"eventbot/pkg/storage"
	"eventbot/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func settingExists(t *testing.T, pg *postgres.PgSQL, key string) bool {
	t.Helper()
	s, err := pg.Setting(context.Background(), key)
	require.NoError(t, err)

	return s != nil
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	// Cleanup the opened transaction
	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Error path: calling Commit on non-tx
	err := pg.Commit()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	// Success path: commit makes writes visible
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, txStorage.PutSetting(ctx, domain.Setting{Key: "COMMIT_TEST", Value: "1"}))
	require.NoError(t, txStorage.Commit())

	require.True(t, settingExists(t, pg, "COMMIT_TEST"))
}

func TestPgSQL_Rollback_DiscardsWrites(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Error path: calling Rollback on non-tx
	err := pg.Rollback()
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, txStorage.PutSetting(ctx, domain.Setting{Key: "ROLLBACK_TEST", Value: "1"}))
	require.NoError(t, txStorage.Rollback())

	require.False(t, settingExists(t, pg, "ROLLBACK_TEST"))
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			return s.PutSetting(ctx, domain.Setting{Key: "WITHTX_OK", Value: "1"})
		})
		require.NoError(t, err)
		require.True(t, settingExists(t, pg, "WITHTX_OK"))
	})

	t.Run("rolls back on error", func(t *testing.T) {
		sentinel := errors.New("boom")
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			if err := s.PutSetting(ctx, domain.Setting{Key: "WITHTX_FAIL", Value: "1"}); err != nil {
				return err
			}

			return sentinel
		})
		require.ErrorIs(t, err, sentinel)
		require.False(t, settingExists(t, pg, "WITHTX_FAIL"))
	})
}
