package postgres

import (
	"context"
	"eventbot/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	usersTable = "users"
)

// EnsureUser inserts the user if it is not known yet and returns the stored
// row. Name fields of an existing user are left untouched so an admin's
// display name does not flip on every /start.
func (p *PgSQL) EnsureUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var pgUser PgUser
	pgUser.FromDomain(user)

	var row PgUser
	found, err := p.Builder.Insert(usersTable).
		Rows(pgUser).
		OnConflict(goqu.DoNothing()).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}
	if found {
		return row.ToDomain(), nil
	}

	// conflict path: the row already exists, fetch it
	return p.UserByID(ctx, user.ID)
}

// UserByID returns a user by Telegram ID, or nil when unknown.
func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("user_id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// SetAdmin promotes the user to admin with the given password hash, creating
// the row when the user never talked to the bot before.
func (p *PgSQL) SetAdmin(ctx context.Context, id domain.UserID, passwordHash string) error {
	_, err := p.Builder.Insert(usersTable).
		Rows(PgUser{
			ID:           int64(id),
			IsAdmin:      true,
			PasswordHash: nullString(passwordHash),
		}).
		OnConflict(goqu.DoUpdate("user_id", goqu.Record{
			"is_admin":      true,
			"password_hash": passwordHash,
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not set admin in pg: %w", err)
	}

	return nil
}

// UpdatePasswordHash replaces an admin's password hash. Returns false when the
// user does not exist or is not an admin.
func (p *PgSQL) UpdatePasswordHash(ctx context.Context, id domain.UserID, passwordHash string) (bool, error) {
	res, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"password_hash": passwordHash,
		}).Where(
		goqu.I("user_id").Eq(int64(id)),
		goqu.I("is_admin").IsTrue(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not update password hash in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

// AllUserIDs returns the Telegram IDs of every known user.
func (p *PgSQL) AllUserIDs(ctx context.Context) ([]domain.UserID, error) {
	var ids []int64
	if err := p.Builder.From(usersTable).
		Select(goqu.I("user_id")).
		Order(goqu.I("user_id").Asc()).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch user ids from pg: %w", err)
	}

	out := make([]domain.UserID, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.UserID(id))
	}

	return out, nil
}

// Admins returns all users with the admin flag set.
func (p *PgSQL) Admins(ctx context.Context) ([]domain.User, error) {
	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Where(goqu.I("is_admin").IsTrue()).
		Order(goqu.I("user_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch admins from pg: %w", err)
	}

	out := make([]domain.User, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}
