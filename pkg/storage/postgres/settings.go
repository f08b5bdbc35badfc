package postgres

import (
	"context"
	"eventbot/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	settingsTable = "settings"
)

// Setting returns a setting by key, or nil when not found.
func (p *PgSQL) Setting(ctx context.Context, key string) (*domain.Setting, error) {
	var row PgSetting
	found, err := p.Builder.From(settingsTable).
		Where(goqu.I("key").Eq(key)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch setting from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// PutSetting inserts or replaces a setting.
func (p *PgSQL) PutSetting(ctx context.Context, setting domain.Setting) error {
	_, err := p.Builder.Insert(settingsTable).
		Rows(PgSetting{
			Key:         setting.Key,
			Value:       nullString(setting.Value),
			Description: nullString(setting.Description),
		}).
		OnConflict(goqu.DoUpdate("key", goqu.Record{
			"value": setting.Value,
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not put setting into pg: %w", err)
	}

	return nil
}

// SeedSettings inserts the given settings, skipping keys that already exist.
func (p *PgSQL) SeedSettings(ctx context.Context, defaults []domain.Setting) error {
	if len(defaults) == 0 {
		return nil
	}

	rows := make([]PgSetting, len(defaults))
	for i, s := range defaults {
		rows[i] = PgSetting{
			Key:         s.Key,
			Value:       nullString(s.Value),
			Description: nullString(s.Description),
		}
	}

	if _, err := p.Builder.Insert(settingsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not seed settings into pg: %w", err)
	}

	return nil
}
