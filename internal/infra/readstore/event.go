package readstore

import (
	"context"
	"errors"
	"time"

	"campus-tickets/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jinzhu/copier"
)

// EventView is the read model handed to usecases and handlers.
type EventView struct {
	ID               uuid.UUID
	Name             string
	Date             string
	TicketsRemaining int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type eventRow struct {
	ID               uuid.UUID `db:"id"`
	Name             string    `db:"name"`
	Date             string    `db:"date"`
	TicketsRemaining int       `db:"tickets_remaining"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type EventReadStore struct {
	pool *pgxpool.Pool
}

func NewEventReadStore(pool *pgxpool.Pool) *EventReadStore {
	return &EventReadStore{pool: pool}
}

// FindAll returns a snapshot of all events in stable id order so matcher
// tie-breaking is deterministic across calls.
func (r *EventReadStore) FindAll(ctx context.Context) ([]*EventView, error) {
	const query = `
SELECT id, name, date, tickets_remaining, created_at, updated_at
FROM events
ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}

	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[eventRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan events", err)
	}

	views := make([]*EventView, len(collected))
	for i, row := range collected {
		view := &EventView{}
		if err := copier.Copy(view, &row); err != nil {
			return nil, infra.WrapRepoErr("failed to convert event row", err)
		}
		views[i] = view
	}
	return views, nil
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	const query = `
SELECT id, name, date, tickets_remaining, created_at, updated_at
FROM events
WHERE id = $1`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find event by id", err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[eventRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by id", err)
	}

	view := &EventView{}
	if err := copier.Copy(view, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to convert event row", err)
	}
	return view, nil
}
