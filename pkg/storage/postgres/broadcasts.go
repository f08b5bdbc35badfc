package postgres

import (
	"context"
	"eventbot/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	broadcastsTable = "broadcasts"
)

// StoreBroadcast inserts a pending broadcast and returns the stored row.
func (p *PgSQL) StoreBroadcast(ctx context.Context, b domain.Broadcast) (*domain.Broadcast, error) {
	var pgBroadcast PgBroadcast
	pgBroadcast.FromDomain(b)

	var row PgBroadcast
	if _, err := p.Builder.Insert(broadcastsTable).
		Rows(pgBroadcast).
		Returning(&PgBroadcast{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store broadcast into pg: %w", err)
	}

	return row.ToDomain(), nil
}

// BroadcastByID returns a broadcast by ID, or nil when not found.
func (p *PgSQL) BroadcastByID(ctx context.Context, id domain.BroadcastID) (*domain.Broadcast, error) {
	var row PgBroadcast
	found, err := p.Builder.From(broadcastsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch broadcast by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// MarkBroadcastSent transitions a broadcast to sent and records how many users
// it reached.
func (p *PgSQL) MarkBroadcastSent(ctx context.Context, id domain.BroadcastID, sentCount int) error {
	_, err := p.Builder.Update(broadcastsTable).
		Set(goqu.Record{
			"status":     string(domain.BroadcastStatusSent),
			"sent_count": sentCount,
			"sent_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not mark broadcast sent in pg: %w", err)
	}

	return nil
}
