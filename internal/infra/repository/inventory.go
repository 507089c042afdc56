package repository

import (
	"context"
	"errors"

	"campus-tickets/internal/domain/event"
	"campus-tickets/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InventoryRepository is the sole writer of tickets_remaining. Every
// decrement goes through Purchase's single conditional UPDATE, which is the
// serialization point for the no-oversell guarantee; no other statement may
// touch that column except the administrative absolute set.
type InventoryRepository struct {
	pool *pgxpool.Pool
}

func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{pool: pool}
}

// Purchase atomically decrements the event's remaining tickets by quantity.
// The availability check and the decrement are one statement, so concurrent
// purchases can never observe an intermediate state or drive the count
// negative. A zero-row result is disambiguated with a secondary read:
// missing id reports KindNotFound, present id reports KindConflict.
func (r *InventoryRepository) Purchase(ctx context.Context, id uuid.UUID, quantity int) (*event.Event, error) {
	const stmt = `
UPDATE events
SET tickets_remaining = tickets_remaining - $2, updated_at = now()
WHERE id = $1 AND tickets_remaining >= $2
RETURNING id, name, date, tickets_remaining`

	var (
		eventID   uuid.UUID
		name      string
		date      string
		remaining int
	)
	err := r.pool.QueryRow(ctx, stmt, id, quantity).Scan(&eventID, &name, &date, &remaining)
	if err == nil {
		return event.ReconstructEvent(eventID, name, date, remaining), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr("failed to purchase tickets", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, infra.WrapRepoErr("failed to check event existence", err)
	}
	if !exists {
		return nil, infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil, infra.WrapRepoErr("insufficient tickets remaining", nil, infra.KindConflict)
}

func (r *InventoryRepository) Create(ctx context.Context, e *event.Event) error {
	const stmt = `
INSERT INTO events (id, name, date, tickets_remaining)
VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, stmt, e.ID(), e.Name(), e.Date(), e.TicketsRemaining())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("event already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create event", err)
	}
	return nil
}

// SetTickets is the administrative absolute set; it bypasses the purchase
// condition but still rejects negative counts via the table CHECK constraint.
func (r *InventoryRepository) SetTickets(ctx context.Context, id uuid.UUID, tickets int) (*event.Event, error) {
	const stmt = `
UPDATE events
SET tickets_remaining = $2, updated_at = now()
WHERE id = $1
RETURNING id, name, date, tickets_remaining`

	var (
		eventID   uuid.UUID
		name      string
		date      string
		remaining int
	)
	err := r.pool.QueryRow(ctx, stmt, id, tickets).Scan(&eventID, &name, &date, &remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to set tickets", err)
	}
	return event.ReconstructEvent(eventID, name, date, remaining), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
